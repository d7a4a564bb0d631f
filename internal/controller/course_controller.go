package controller

import (
	"net/http"

	"ossu_arabic_backend/internal/service"
	"ossu_arabic_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CatalogService *service.CatalogService
}

func NewCourseController(catalogService *service.CatalogService) *CourseController {
	return &CourseController{CatalogService: catalogService}
}

// ListCourses godoc
// @Summary Full curriculum document
// @Description Returns the complete curriculum, from cache when available
// @Tags courses
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	doc, err := c.CatalogService.Document(ctx.Request.Context())
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "application/json", doc)
}

// GetCourse godoc
// @Summary Course lookup by id
// @Tags courses
// @Produce json
// @Param id path string true "Course id"
// @Success 200 {object} curriculum.Course
// @Failure 404 {object} map[string]string
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	courseID := ctx.Param("id")
	course, ok := c.CatalogService.FindCourse(courseID)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{
			"error":    "Course not found",
			"courseId": courseID,
		})
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// SaveCourses godoc
// @Summary Replace the curriculum document
// @Description Stores an administrative full-document override
// @Tags courses
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /api/courses [post]
func (c *CourseController) SaveCourses(ctx *gin.Context) {
	var doc interface{}
	if err := ctx.ShouldBindJSON(&doc); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.CatalogService.Replace(ctx.Request.Context(), doc); err != nil {
		util.InternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Course data saved successfully",
	})
}
