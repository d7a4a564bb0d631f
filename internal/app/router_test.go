package app

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ossu_arabic_backend/internal/config"
	"ossu_arabic_backend/internal/service"
	"ossu_arabic_backend/pkg/database"
	"ossu_arabic_backend/pkg/logger"
	"ossu_arabic_backend/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestConfig(t *testing.T, aiBaseURL string) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{
			Port:      "8080",
			Mode:      gin.TestMode,
			StaticDir: t.TempDir(),
		},
		Storage: config.StorageConfig{
			Type:      "local",
			LocalPath: t.TempDir(),
		},
		AI: config.AIConfig{
			BaseURL:        aiBaseURL,
			APIKey:         "test-key",
			Model:          "gpt-4",
			TimeoutSeconds: 5,
		},
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			ExpireTime: time.Hour,
		},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	logger.Log = zap.NewNop()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	a := &App{Config: cfg, DB: db}
	repos := a.initRepositories(db, nil)
	svcs := a.initServices(repos, cfg)
	ctrls := a.initControllers(svcs, repos, db)

	router := gin.New()
	router.Use(security.CORS())
	a.registerRoutes(router, ctrls, cfg)
	return router
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestListCourses(t *testing.T) {
	router := newTestRouter(t, newTestConfig(t, "http://127.0.0.1:0"))

	w := doJSON(router, http.MethodGet, "/api/courses", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Contains(t, body, "prerequisites")
	assert.Contains(t, body, "coreCS")
}

func TestGetCourseNotFound(t *testing.T) {
	router := newTestRouter(t, newTestConfig(t, "http://127.0.0.1:0"))

	w := doJSON(router, http.MethodGet, "/api/courses/nonexistent-id", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Course not found", body["error"])
	assert.Equal(t, "nonexistent-id", body["courseId"])
}

func TestGetCourseByID(t *testing.T) {
	router := newTestRouter(t, newTestConfig(t, "http://127.0.0.1:0"))

	w := doJSON(router, http.MethodGet, "/api/courses/intro-cs-python", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "intro-cs-python", body["id"])
}

func TestUnknownAPIEndpoint(t *testing.T) {
	router := newTestRouter(t, newTestConfig(t, "http://127.0.0.1:0"))

	w := doJSON(router, http.MethodGet, "/api/unknown/thing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "API endpoint not found", body["error"])
	assert.Equal(t, "/api/unknown/thing", body["path"])
}

func TestMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, newTestConfig(t, "http://127.0.0.1:0"))

	w := doJSON(router, http.MethodDelete, "/api/courses", nil)
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "Method not allowed", decodeBody(t, w)["error"])
}

func TestOptionsShortCircuitsWithCORS(t *testing.T) {
	router := newTestRouter(t, newTestConfig(t, "http://127.0.0.1:0"))

	req := httptest.NewRequest(http.MethodOptions, "/api/courses", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSHeadersOnErrorResponses(t *testing.T) {
	router := newTestRouter(t, newTestConfig(t, "http://127.0.0.1:0"))

	w := doJSON(router, http.MethodGet, "/api/unknown", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRegisterAndConflict(t *testing.T) {
	router := newTestRouter(t, newTestConfig(t, "http://127.0.0.1:0"))

	payload := map[string]string{
		"username":    "ahmad",
		"email":       "ahmad@example.com",
		"displayName": "Ahmad",
	}

	w := doJSON(router, http.MethodPost, "/api/auth/register", payload)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "ahmad", user["username"])
	assert.True(t, strings.HasPrefix(user["id"].(string), "user_"))

	w = doJSON(router, http.MethodPost, "/api/auth/register", payload)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Username or email already exists", decodeBody(t, w)["error"])
}

func TestRegisterMissingFields(t *testing.T) {
	router := newTestRouter(t, newTestConfig(t, "http://127.0.0.1:0"))

	w := doJSON(router, http.MethodPost, "/api/auth/register", map[string]string{"username": "solo"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Username and email are required", decodeBody(t, w)["error"])
}

func TestLogin(t *testing.T) {
	router := newTestRouter(t, newTestConfig(t, "http://127.0.0.1:0"))

	w := doJSON(router, http.MethodPost, "/api/auth/login", map[string]string{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Username or email is required", decodeBody(t, w)["error"])

	w = doJSON(router, http.MethodPost, "/api/auth/login", map[string]string{"username": "nobody"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decodeBody(t, w)["error"])

	doJSON(router, http.MethodPost, "/api/auth/register", map[string]string{
		"username": "saleh",
		"email":    "saleh@example.com",
	})

	w = doJSON(router, http.MethodPost, "/api/auth/login", map[string]string{"email": "saleh@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Login successful", body["message"])
}

func TestGuestSession(t *testing.T) {
	router := newTestRouter(t, newTestConfig(t, "http://127.0.0.1:0"))

	w := doJSON(router, http.MethodPost, "/api/auth/guest", map[string]string{})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "guest", body["sessionType"])
	assert.Equal(t, "ar", body["preferredLanguage"])
	assert.True(t, strings.HasPrefix(body["userId"].(string), "guest_"))
	assert.NotEmpty(t, body["token"])
}

func TestProfileRequiresUserID(t *testing.T) {
	router := newTestRouter(t, newTestConfig(t, "http://127.0.0.1:0"))

	w := doJSON(router, http.MethodGet, "/api/auth/profile", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User ID is required", decodeBody(t, w)["error"])

	// no session store backing means any id resolves to not found
	w = doJSON(router, http.MethodGet, "/api/auth/profile?userId=ghost", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Session not found", decodeBody(t, w)["error"])
}

func TestProgressRoundTrip(t *testing.T) {
	router := newTestRouter(t, newTestConfig(t, "http://127.0.0.1:0"))

	w := doJSON(router, http.MethodPost, "/api/progress", map[string]interface{}{
		"userId":    "user_x",
		"courseId":  "intro-cs-python",
		"lessonId":  "week-1",
		"progress":  100,
		"completed": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Progress updated successfully", body["message"])

	w = doJSON(router, http.MethodGet, "/api/progress?userId=user_x", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body = decodeBody(t, w)
	assert.Equal(t, "user_x", body["userId"])

	progress := body["progress"].(map[string]interface{})
	course := progress["intro-cs-python"].(map[string]interface{})
	lesson := course["week-1"].(map[string]interface{})
	assert.Equal(t, true, lesson["completed"])

	summary := body["summary"].(map[string]interface{})
	assert.Equal(t, float64(1), summary["totalLessons"])
	assert.Equal(t, float64(1), summary["completedLessons"])
	assert.Equal(t, float64(100), summary["overallProgress"])
}

func TestProgressDefaultsToAnonymous(t *testing.T) {
	router := newTestRouter(t, newTestConfig(t, "http://127.0.0.1:0"))

	w := doJSON(router, http.MethodGet, "/api/progress", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", decodeBody(t, w)["userId"])
}

func TestProgressBulkUpdate(t *testing.T) {
	router := newTestRouter(t, newTestConfig(t, "http://127.0.0.1:0"))

	w := doJSON(router, http.MethodPut, "/api/progress", map[string]interface{}{
		"userId": "user_y",
		"progressUpdates": []map[string]interface{}{
			{"courseId": "c1", "lessonId": "l1", "progress": 100, "completed": true},
			{"courseId": "c1", "lessonId": "l2", "progress": 40, "completed": false},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Updated 2 progress entries", body["message"])
	assert.Equal(t, "user_y", body["userId"])
}

func TestCourseProgressRows(t *testing.T) {
	router := newTestRouter(t, newTestConfig(t, "http://127.0.0.1:0"))

	doJSON(router, http.MethodPost, "/api/progress", map[string]interface{}{
		"userId":    "user_z",
		"courseId":  "c1",
		"lessonId":  "l1",
		"progress":  100,
		"completed": true,
	})

	w := doJSON(router, http.MethodGet, "/api/progress/course/c1?userId=user_z", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "c1", body["courseId"])
	rows := body["progress"].([]interface{})
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, "l1", row["lesson_id"])
	assert.Equal(t, true, row["completed"])
}

func stubUpstream(t *testing.T, status int, reply string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": reply}},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAIChatSuccess(t *testing.T) {
	upstream := stubUpstream(t, http.StatusOK, "مرحبا بك")
	router := newTestRouter(t, newTestConfig(t, upstream.URL))

	w := doJSON(router, http.MethodPost, "/api/ai/chat", map[string]string{
		"message": "ما هي البرمجة؟",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "مرحبا بك", body["message"])
	assert.Equal(t, "default", body["sessionId"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestAIChatFallbackArabic(t *testing.T) {
	upstream := stubUpstream(t, http.StatusInternalServerError, "")
	router := newTestRouter(t, newTestConfig(t, upstream.URL))

	w := doJSON(router, http.MethodPost, "/api/ai/chat", map[string]string{
		"message": "سؤال",
	})
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, service.ChatFallback("ar"), body["message"])
	assert.Equal(t, "AI service temporarily unavailable", body["error"])
}

func TestAIChatFallbackEnglish(t *testing.T) {
	upstream := stubUpstream(t, http.StatusInternalServerError, "")
	router := newTestRouter(t, newTestConfig(t, upstream.URL))

	w := doJSON(router, http.MethodPost, "/api/ai/chat", map[string]string{
		"message":  "question",
		"language": "en",
	})
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, service.ChatFallback("en"), decodeBody(t, w)["message"])
}

func TestAIChatRequiresMessage(t *testing.T) {
	router := newTestRouter(t, newTestConfig(t, "http://127.0.0.1:0"))

	w := doJSON(router, http.MethodPost, "/api/ai/chat", map[string]string{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Message is required", decodeBody(t, w)["error"])
}

func TestAICodeHelpUnavailable(t *testing.T) {
	upstream := stubUpstream(t, http.StatusInternalServerError, "")
	router := newTestRouter(t, newTestConfig(t, upstream.URL))

	w := doJSON(router, http.MethodPost, "/api/ai/code-help", map[string]string{
		"code": "print('hi')",
	})
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Code analysis service temporarily unavailable", decodeBody(t, w)["error"])
}

func TestAILessonExplainSuccess(t *testing.T) {
	upstream := stubUpstream(t, http.StatusOK, "شرح الموضوع")
	router := newTestRouter(t, newTestConfig(t, upstream.URL))

	w := doJSON(router, http.MethodPost, "/api/ai/lesson-explain", map[string]string{
		"topic": "المتغيرات",
		"level": "intermediate",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "شرح الموضوع", body["explanation"])
	assert.Equal(t, "المتغيرات", body["topic"])
	assert.Equal(t, "intermediate", body["level"])
}

func TestMediaUploadAndFetch(t *testing.T) {
	router := newTestRouter(t, newTestConfig(t, "http://127.0.0.1:0"))

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "notes.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("lesson notes"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("userId", "user_m"))
	require.NoError(t, mw.WriteField("category", "docs"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/media/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "notes.txt", body["originalName"])
	fileName := body["fileName"].(string)
	assert.True(t, strings.HasPrefix(fileName, "docs/user_m/"))

	get := httptest.NewRequest(http.MethodGet, "/api/media/"+fileName, nil)
	gw := httptest.NewRecorder()
	router.ServeHTTP(gw, get)
	require.Equal(t, http.StatusOK, gw.Code)
	assert.Equal(t, "lesson notes", gw.Body.String())
	assert.Equal(t, "public, max-age=31536000", gw.Header().Get("cache-control"))
}

func TestMediaUploadRequiresFile(t *testing.T) {
	router := newTestRouter(t, newTestConfig(t, "http://127.0.0.1:0"))

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/media/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No file provided", decodeBody(t, w)["error"])
}

func TestMediaRejectsPathTraversal(t *testing.T) {
	cfg := newTestConfig(t, "http://127.0.0.1:0")
	router := newTestRouter(t, cfg)

	outside := filepath.Join(filepath.Dir(cfg.Storage.LocalPath), "outside.txt")
	require.NoError(t, os.WriteFile(outside, []byte("not yours"), 0644))

	w := doJSON(router, http.MethodGet, "/api/media/../outside.txt", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "File not found", decodeBody(t, w)["error"])
}

func TestMediaNotFound(t *testing.T) {
	router := newTestRouter(t, newTestConfig(t, "http://127.0.0.1:0"))

	w := doJSON(router, http.MethodGet, "/api/media/docs/nobody/missing.txt", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "File not found", decodeBody(t, w)["error"])
}
