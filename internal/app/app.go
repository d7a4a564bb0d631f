package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ossu_arabic_backend/internal/config"
	"ossu_arabic_backend/internal/controller"
	"ossu_arabic_backend/internal/repository"
	"ossu_arabic_backend/internal/service"
	"ossu_arabic_backend/pkg/database"
	"ossu_arabic_backend/pkg/logger"
	"ossu_arabic_backend/pkg/monitoring"
	"ossu_arabic_backend/pkg/security"
	"ossu_arabic_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user        *repository.UserRepository
	progress    *repository.ProgressRepository
	cache       *repository.ProgressCache
	session     *repository.SessionRepository
	chatHistory *repository.ChatHistoryRepository
	catalog     *repository.CatalogRepository
	interaction *repository.InteractionRepository
}

type services struct {
	auth     *service.AuthService
	progress *service.ProgressService
	catalog  *service.CatalogService
	ai       *service.AIService
	storage  *service.StorageService
}

type controllers struct {
	health   *controller.HealthController
	course   *controller.CourseController
	progress *controller.ProgressController
	auth     *controller.AuthController
	ai       *controller.AIController
	media    *controller.MediaController
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		progress:    repository.NewProgressRepository(db),
		cache:       repository.NewProgressCache(rdb),
		session:     repository.NewSessionRepository(rdb),
		chatHistory: repository.NewChatHistoryRepository(rdb),
		catalog:     repository.NewCatalogRepository(rdb),
		interaction: repository.NewInteractionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, repos.session, cfg)
	s.progress = service.NewProgressService(repos.progress, repos.cache)
	s.catalog = service.NewCatalogService(repos.catalog)
	s.ai = service.NewAIService(cfg.AI)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB) *controllers {
	return &controllers{
		health:   controller.NewHealthController(db),
		course:   controller.NewCourseController(s.catalog),
		progress: controller.NewProgressController(s.progress),
		auth:     controller.NewAuthController(s.auth, s.progress, a.Config),
		ai:       controller.NewAIController(s.ai, repos.chatHistory, repos.interaction),
		media:    controller.NewMediaController(s.storage),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS())
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, repos, db)

	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("ossu-arabic-platform", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
