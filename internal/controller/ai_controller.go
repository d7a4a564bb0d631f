package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ossu_arabic_backend/internal/model"
	"ossu_arabic_backend/internal/repository"
	"ossu_arabic_backend/internal/service"
	"ossu_arabic_backend/internal/util"
	"ossu_arabic_backend/pkg/logger"
	"ossu_arabic_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultSessionID = "default"

type AIController struct {
	AIService    *service.AIService
	History      *repository.ChatHistoryRepository
	Interactions *repository.InteractionRepository
}

func NewAIController(aiService *service.AIService, history *repository.ChatHistoryRepository, interactions *repository.InteractionRepository) *AIController {
	return &AIController{
		AIService:    aiService,
		History:      history,
		Interactions: interactions,
	}
}

type chatRequest struct {
	Message   string `json:"message"`
	UserID    string `json:"userId"`
	SessionID string `json:"sessionId"`
	Language  string `json:"language"`
}

// Chat godoc
// @Summary Tutoring chat turn
// @Description Forwards the message with rolling history to the upstream model
// @Tags ai
// @Accept json
// @Produce json
// @Param body body chatRequest true "Chat turn"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]interface{}
// @Router /api/ai/chat [post]
func (c *AIController) Chat(ctx *gin.Context) {
	var req chatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Message == "" {
		util.BadRequest(ctx, "Message is required")
		return
	}
	if req.UserID == "" {
		req.UserID = anonymousUser
	}
	if req.SessionID == "" {
		req.SessionID = defaultSessionID
	}
	if req.Language == "" {
		req.Language = "ar"
	}

	history := c.History.Get(ctx.Request.Context(), req.UserID, req.SessionID)

	messages := make([]model.ChatMessage, 0, len(history)+2)
	messages = append(messages, model.ChatMessage{Role: model.RoleSystem, Content: service.ChatSystemPrompt(req.Language)})
	messages = append(messages, history...)
	messages = append(messages, model.ChatMessage{Role: model.RoleUser, Content: req.Message})

	started := time.Now()
	reply, err := c.AIService.Complete(ctx.Request.Context(), messages, 1000, 0.7)
	if err != nil {
		monitoring.UpstreamAIFailures.Inc()
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"message": service.ChatFallback(req.Language),
			"error":   "AI service temporarily unavailable",
		})
		return
	}

	if err := c.History.Append(ctx.Request.Context(), req.UserID, req.SessionID, history, req.Message, reply); err != nil {
		logger.Log.Warn("chat history write failed",
			zap.String("userId", req.UserID), zap.Error(err))
	}

	go c.Interactions.Log(&model.AIInteraction{
		UserID:       req.UserID,
		SessionID:    req.SessionID,
		MessageType:  "chat",
		UserMessage:  req.Message,
		AIResponse:   reply,
		Timestamp:    started,
		ResponseTime: int(time.Since(started).Milliseconds()),
	})

	ctx.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   reply,
		"sessionId": req.SessionID,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

type codeHelpRequest struct {
	Code         string `json:"code"`
	Problem      string `json:"problem"`
	Language     string `json:"language"`
	UserLanguage string `json:"userLanguage"`
}

// CodeHelp godoc
// @Summary Code review and debugging help
// @Tags ai
// @Accept json
// @Produce json
// @Param body body codeHelpRequest true "Code and problem description"
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/ai/code-help [post]
func (c *AIController) CodeHelp(ctx *gin.Context) {
	var req codeHelpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Language == "" {
		req.Language = "python"
	}
	if req.UserLanguage == "" {
		req.UserLanguage = "ar"
	}

	content := ""
	if req.Problem != "" {
		content = fmt.Sprintf("المشكلة: %s\n\n", req.Problem)
	}
	content += fmt.Sprintf("الكود:\n```%s\n%s\n```", req.Language, req.Code)

	messages := []model.ChatMessage{
		{Role: model.RoleSystem, Content: service.CodeHelpPrompt(req.UserLanguage)},
		{Role: model.RoleUser, Content: content},
	}

	analysis, err := c.AIService.Complete(ctx.Request.Context(), messages, 1500, 0.3)
	if err != nil {
		monitoring.UpstreamAIFailures.Inc()
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "Code analysis service temporarily unavailable",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":   true,
		"analysis":  analysis,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

type lessonExplainRequest struct {
	Topic        string `json:"topic"`
	Level        string `json:"level"`
	UserLanguage string `json:"userLanguage"`
}

// LessonExplain godoc
// @Summary Lesson topic explanation
// @Tags ai
// @Accept json
// @Produce json
// @Param body body lessonExplainRequest true "Topic and level"
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/ai/lesson-explain [post]
func (c *AIController) LessonExplain(ctx *gin.Context) {
	var req lessonExplainRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Level == "" {
		req.Level = "beginner"
	}
	if req.UserLanguage == "" {
		req.UserLanguage = "ar"
	}

	content := fmt.Sprintf("اشرح موضوع \"%s\" لطالب في المستوى %s. قدم أمثلة عملية وتمارين بسيطة.",
		req.Topic, service.LevelNameAr(req.Level))

	messages := []model.ChatMessage{
		{Role: model.RoleSystem, Content: service.LessonExplainPrompt(req.UserLanguage)},
		{Role: model.RoleUser, Content: content},
	}

	explanation, err := c.AIService.Complete(ctx.Request.Context(), messages, 2000, 0.5)
	if err != nil {
		monitoring.UpstreamAIFailures.Inc()
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "Explanation service temporarily unavailable",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":     true,
		"explanation": explanation,
		"topic":       req.Topic,
		"level":       req.Level,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}

type progressAnalysisRequest struct {
	UserID       string      `json:"userId"`
	ProgressData interface{} `json:"progressData"`
	UserLanguage string      `json:"userLanguage"`
}

// ProgressAnalysis godoc
// @Summary Study-plan analysis of progress data
// @Tags ai
// @Accept json
// @Produce json
// @Param body body progressAnalysisRequest true "Progress data to analyze"
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/ai/progress-analysis [post]
func (c *AIController) ProgressAnalysis(ctx *gin.Context) {
	var req progressAnalysisRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.UserLanguage == "" {
		req.UserLanguage = "ar"
	}

	data, err := json.MarshalIndent(req.ProgressData, "", "  ")
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	messages := []model.ChatMessage{
		{Role: model.RoleSystem, Content: service.ProgressAnalysisPrompt(req.UserLanguage)},
		{Role: model.RoleUser, Content: fmt.Sprintf("حلل تقدم الطالب التالي وقدم توصيات:\n%s", data)},
	}

	analysis, err := c.AIService.Complete(ctx.Request.Context(), messages, 1500, 0.6)
	if err != nil {
		monitoring.UpstreamAIFailures.Inc()
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "Progress analysis service temporarily unavailable",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":   true,
		"analysis":  analysis,
		"userId":    req.UserID,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
