package app

import (
	"adaptive_learning_backend/internal/config"
	"adaptive_learning_backend/internal/controller"
	"adaptive_learning_backend/internal/repository"
	"adaptive_learning_backend/internal/service"
	"adaptive_learning_backend/pkg/configwatcher"
	"adaptive_learning_backend/pkg/database"
	"adaptive_learning_backend/pkg/logger"
	"adaptive_learning_backend/pkg/monitoring"
	"adaptive_learning_backend/pkg/security"
	"adaptive_learning_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	services *services
	tracer   *sdktrace.TracerProvider
	stopSim  chan struct{}
}

type repositories struct {
	cohort      *repository.CohortRepository
	trajectory  *repository.TrajectoryRepository
	autonomyLog *repository.AutonomyLogRepository
}

type services struct {
	cohort         *service.CohortService
	simulation     *service.SimulationService
	analytics      *service.AnalyticsService
	recommendation *service.RecommendationService
	planning       *service.PlanningService
	assessment     *service.AssessmentService
	explanation    *service.ExplanationService
	mentor         *service.MentorService
}

type controllers struct {
	cohort         *controller.CohortController
	analytics      *controller.AnalyticsController
	recommendation *controller.RecommendationController
	planning       *controller.PlanningController
	assessment     *controller.AssessmentController
	mentor         *controller.MentorController
	health         *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB, cfg *config.Config) *repositories {
	return &repositories{
		cohort:      repository.NewCohortRepository(db),
		trajectory:  repository.NewTrajectoryRepository(db),
		autonomyLog: repository.NewAutonomyLogRepository(cfg.Mentor.LogCapacity),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.cohort = service.NewCohortService(repos.cohort, cfg.Engine)
	s.simulation = service.NewSimulationService(repos.trajectory, cfg.Engine)
	s.analytics = service.NewAnalyticsService(repos.cohort, repos.trajectory, cfg.Engine)
	s.recommendation = service.NewRecommendationService(repos.cohort, repos.trajectory, cfg.Engine)
	s.planning = service.NewPlanningService(repos.cohort, repos.trajectory, cfg.Engine)
	s.assessment = service.NewAssessmentService(s.recommendation)
	s.explanation = service.NewExplanationService(cfg.AI)
	s.mentor = service.NewMentorService(repos.autonomyLog)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		cohort:         controller.NewCohortController(s.cohort),
		analytics:      controller.NewAnalyticsController(s.analytics),
		recommendation: controller.NewRecommendationController(s.recommendation, s.explanation),
		planning:       controller.NewPlanningController(s.planning),
		assessment:     controller.NewAssessmentController(s.assessment),
		mentor:         controller.NewMentorController(s.mentor, s.explanation),
		health:         controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// seedEngine 启动时一次性生成群体、题库与轨迹
func (a *App) seedEngine(s *services) {
	learners, items, err := s.cohort.Generate()
	if err != nil {
		logger.Log.Fatal("Failed to generate cohort", zap.Error(err))
	}

	records, err := s.simulation.Run(learners, time.Now())
	if err != nil {
		logger.Log.Fatal("Failed to simulate trajectories", zap.Error(err))
	}

	logger.Log.Info("Engine seeded",
		zap.Int("learners", len(learners)),
		zap.Int("items", len(items)),
		zap.Int("trajectoryRecords", len(records)),
		zap.Uint64("seed", a.Config.Engine.Seed),
	)
}

// startBackgroundTasks 启动自主性漂移模拟定时器（唯一写者）
func (a *App) startBackgroundTasks(s *services, cfg *config.Config) {
	a.stopSim = make(chan struct{})
	go func() {
		ticker := time.NewTicker(cfg.Mentor.UpdateInterval)
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				event := s.mentor.Tick(now)
				logger.Log.Debug("Autonomy update",
					zap.String("mentee", event.MenteeName),
					zap.Float64("autonomyPct", event.AutonomyPct),
				)
			case <-a.stopSim:
				return
			}
		}
	}()
}

func NewApp(cfg *config.Config, configPath string) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB("adaptive_learning")
	if err != nil {
		logger.Log.Fatal("Failed to initialize engine store", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db, cfg)
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, db)

	app.seedEngine(services)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("adaptive-learning-engine", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	app.registerRoutes(router, controllers)

	app.startBackgroundTasks(services, cfg)

	// 监听配置变更，运行期热更新 AI 凭证（不触碰已生成的引擎数据）
	go configwatcher.WatchConfig(filepath.Join(configPath, "config.yaml"), func(newCfg *config.Config) {
		services.explanation.UpdateCredential(newCfg.AI)
		logger.Log.Info("AI credential reloaded from config")
	})

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

	if a.stopSim != nil {
		close(a.stopSim)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
