package app

import (
	"context"
	"courseware_backend/internal/config"
	"courseware_backend/internal/controller"
	"courseware_backend/internal/fixtures"
	"courseware_backend/internal/repository"
	"courseware_backend/internal/repository/memrepo"
	"courseware_backend/internal/repository/mongorepo"
	"courseware_backend/internal/repository/sqlrepo"
	"courseware_backend/internal/service"
	"courseware_backend/pkg/configwatcher"
	"courseware_backend/pkg/database"
	"courseware_backend/pkg/logger"
	"courseware_backend/pkg/monitoring"
	"courseware_backend/pkg/tracing"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	Repos    *repository.Repositories
	Services *Services

	// 关闭时按逆序执行
	closers []func(context.Context) error
}

// Deps 外部依赖，测试中直接注入内存实现
type Deps struct {
	Repos    *repository.Repositories
	Notifier service.Notifier
	Storage  *service.StorageService
	Health   map[string]controller.Pinger
}

type Services struct {
	Auth     *service.AuthService
	Progress *service.ProgressService
	Course   *service.CourseService
	Unit     *service.UnitService
	Storage  *service.StorageService
}

type controllers struct {
	auth     *controller.AuthController
	progress *controller.ProgressController
	course   *controller.CourseController
	unit     *controller.UnitController
	health   *controller.HealthController
}

func initServices(cfg *config.Config, deps Deps) *Services {
	return &Services{
		Auth:     service.NewAuthService(deps.Repos.User, cfg.JWT),
		Progress: service.NewProgressService(deps.Repos, deps.Notifier),
		Course:   service.NewCourseService(deps.Repos, deps.Storage),
		Unit:     service.NewUnitService(deps.Repos),
		Storage:  deps.Storage,
	}
}

func initControllers(cfg *config.Config, s *Services, health map[string]controller.Pinger) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.Auth, cfg),
		progress: controller.NewProgressController(s.Progress),
		course:   controller.NewCourseController(s.Course),
		unit:     controller.NewUnitController(s.Unit),
		health:   controller.NewHealthController(health),
	}
}

// NewWithDeps 只组装服务与路由，不连接任何外部组件
func NewWithDeps(cfg *config.Config, deps Deps) *App {
	if deps.Notifier == nil {
		deps.Notifier = service.NoopNotifier{}
	}
	if deps.Storage == nil {
		deps.Storage = &service.StorageService{Provider: &service.LocalStorageProvider{Config: &cfg.Storage}}
	}

	if cfg.Server.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	}

	a := &App{
		Config: cfg,
		Repos:  deps.Repos,
	}
	a.Services = initServices(cfg, deps)
	c := initControllers(cfg, a.Services, deps.Health)

	router := gin.New()
	router.Use(gin.Recovery())
	a.setupMiddlewares(router, cfg)
	a.registerRoutes(router, c, cfg)
	a.Router = router
	return a
}

func (a *App) onClose(fn func(context.Context) error) {
	a.closers = append(a.closers, fn)
}

// OpenRepositories 按 database.driver 选择存储
func OpenRepositories(cfg *config.Config) (*repository.Repositories, map[string]controller.Pinger, []func(context.Context) error, error) {
	health := map[string]controller.Pinger{}
	var closers []func(context.Context) error

	switch cfg.Database.Driver {
	case config.DriverMongo:
		db, err := database.InitMongo(&cfg.Mongo)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := mongorepo.EnsureIndexes(context.Background(), db); err != nil {
			return nil, nil, nil, err
		}
		health["database"] = func(ctx context.Context) error { return db.Client().Ping(ctx, nil) }
		closers = append(closers, db.Client().Disconnect)
		return mongorepo.New(db), health, closers, nil

	case config.DriverMemory:
		repos := memrepo.Open().Repositories()
		set, err := fixtures.Load(context.Background(), repos)
		if err != nil {
			return nil, nil, nil, err
		}
		logger.Log.Info("memory store seeded",
			zap.String("course", set.Course.ID),
			zap.String("teacher", set.Teacher.Email),
			zap.String("student", set.Student.Email))
		return repos, health, closers, nil
	}

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		return nil, nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, nil, err
	}
	health["database"] = sqlDB.PingContext
	closers = append(closers, func(context.Context) error { return sqlDB.Close() })
	return sqlrepo.New(db), health, closers, nil
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	repos, health, closers, err := OpenRepositories(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}

	deps := Deps{Repos: repos, Health: health}

	if cfg.Redis.Enabled {
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		}
		notifier := service.NewRedisNotifier(rdb, cfg.Redis.Channel)
		logger.Log.Info("Publishing progress events", zap.String("channel", notifier.Channel()))
		deps.Notifier = notifier
		health["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		closers = append(closers, func(context.Context) error { return rdb.Close() })
	}

	storage, err := service.NewStorageService(&cfg.Storage)
	if err != nil {
		logger.Log.Warn("object storage unavailable, falling back to local", zap.String("type", cfg.Storage.Type), zap.Error(err))
	}
	deps.Storage = storage

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		closers = append(closers, tp.Shutdown)
	}

	monitoring.Init()

	a := NewWithDeps(cfg, deps)
	for _, c := range closers {
		a.onClose(c)
	}
	return a
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	watchCtx, stopWatch := context.WithCancel(context.Background())
	go func() {
		if err := configwatcher.WatchConfig(watchCtx, a.Config.Path, logger.Reload); err != nil {
			logger.Log.Warn("config watcher disabled", zap.Error(err))
		}
	}()

	// 等待中断信号，5 秒内优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	stopWatch()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			logger.Log.Warn("close dependency", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
