package controller

import (
	"fmt"
	"net/http"
	"time"

	"ossu_arabic_backend/internal/middleware"
	"ossu_arabic_backend/internal/model"
	"ossu_arabic_backend/internal/service"
	"ossu_arabic_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const anonymousUser = "anonymous"

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

func userIDOrAnonymous(ctx *gin.Context) string {
	if id := ctx.Query("userId"); id != "" {
		return id
	}
	if claims := middleware.IdentityFromContext(ctx); claims != nil {
		return claims.UserID
	}
	return anonymousUser
}

// GetProgress godoc
// @Summary Progress overview
// @Description Returns the raw per-course mapping plus the computed summary
// @Tags progress
// @Produce json
// @Param userId query string false "User id, defaults to anonymous"
// @Success 200 {object} map[string]interface{}
// @Router /api/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	userID := userIDOrAnonymous(ctx)

	mapping, err := c.ProgressService.Get(ctx.Request.Context(), userID)
	if err != nil {
		util.InternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"userId":   userID,
		"progress": mapping,
		"summary":  service.Summarize(mapping),
	})
}

// GetCourseProgress godoc
// @Summary Per-course progress rows
// @Tags progress
// @Produce json
// @Param id path string true "Course id"
// @Param userId query string false "User id, defaults to anonymous"
// @Success 200 {object} map[string]interface{}
// @Router /api/progress/course/{id} [get]
func (c *ProgressController) GetCourseProgress(ctx *gin.Context) {
	courseID := ctx.Param("id")
	userID := userIDOrAnonymous(ctx)

	rows, err := c.ProgressService.GetCourseRows(ctx.Request.Context(), userID, courseID)
	if err != nil {
		util.InternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"userId":   userID,
		"courseId": courseID,
		"progress": rows,
	})
}

type updateProgressRequest struct {
	UserID    string `json:"userId"`
	CourseID  string `json:"courseId" binding:"required"`
	LessonID  string `json:"lessonId" binding:"required"`
	Progress  int    `json:"progress"`
	Completed bool   `json:"completed"`
	TimeSpent int    `json:"timeSpent"`
}

// UpdateProgress godoc
// @Summary Upsert one lesson record
// @Description Writes the relational row then rebuilds the cached mapping
// @Tags progress
// @Accept json
// @Produce json
// @Param body body updateProgressRequest true "Progress record"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/progress [post]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	var req updateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if req.UserID == "" {
		req.UserID = anonymousUser
	}

	rec := &model.UserProgress{
		UserID:    req.UserID,
		CourseID:  req.CourseID,
		LessonID:  req.LessonID,
		Progress:  req.Progress,
		Completed: req.Completed,
		TimeSpent: req.TimeSpent,
		Timestamp: time.Now(),
	}

	if err := c.ProgressService.Update(ctx.Request.Context(), rec); err != nil {
		util.InternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Progress updated successfully",
		"data": gin.H{
			"userId":    req.UserID,
			"courseId":  req.CourseID,
			"lessonId":  req.LessonID,
			"progress":  req.Progress,
			"completed": req.Completed,
		},
	})
}

type bulkProgressRequest struct {
	UserID          string                  `json:"userId"`
	ProgressUpdates []updateProgressRequest `json:"progressUpdates" binding:"required"`
}

// BulkUpdateProgress godoc
// @Summary Apply an ordered batch of upserts
// @Tags progress
// @Accept json
// @Produce json
// @Param body body bulkProgressRequest true "Batch of progress records"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/progress [put]
func (c *ProgressController) BulkUpdateProgress(ctx *gin.Context) {
	var req bulkProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if req.UserID == "" {
		req.UserID = anonymousUser
	}

	now := time.Now()
	recs := make([]model.UserProgress, 0, len(req.ProgressUpdates))
	for _, u := range req.ProgressUpdates {
		recs = append(recs, model.UserProgress{
			UserID:    req.UserID,
			CourseID:  u.CourseID,
			LessonID:  u.LessonID,
			Progress:  u.Progress,
			Completed: u.Completed,
			TimeSpent: u.TimeSpent,
			Timestamp: now,
		})
	}

	count, err := c.ProgressService.BatchUpdate(ctx.Request.Context(), req.UserID, recs)
	if err != nil {
		util.InternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Updated %d progress entries", count),
		"userId":  req.UserID,
	})
}
