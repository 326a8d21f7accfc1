package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dermatriagem-api/config"
	deliveryHttp "dermatriagem-api/internal/delivery/http"
	"dermatriagem-api/internal/delivery/http/handler"
	"dermatriagem-api/internal/delivery/http/middleware"
	"dermatriagem-api/internal/infrastructure/cache"
	"dermatriagem-api/internal/infrastructure/database"
	"dermatriagem-api/internal/infrastructure/mail"
	"dermatriagem-api/internal/infrastructure/queue"
	"dermatriagem-api/internal/repository"
	"dermatriagem-api/internal/service"
	"dermatriagem-api/internal/usecase"
	"dermatriagem-api/pkg/jwt"
	"dermatriagem-api/pkg/validator"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	NotifierMemory   = "memory"
	NotifierRabbitMQ = "rabbitmq"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	RabbitMQ    *queue.RabbitMQ
	Server      *http.Server

	dispatcher *service.InviteDispatcher
	worker     *queue.InviteWorker
	stopWorker context.CancelFunc
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	log := SetupLogger(cfg.App.LogLevel)
	log.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.IsDevelopment())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	log.Info("Redis connected successfully")

	notifier, err := app.initializeNotifier(log)
	if err != nil {
		app.Close()
		return nil, err
	}

	app.Server = initializeServer(cfg, log, db, redisClient, app.rabbitConn(), notifier)

	return app, nil
}

// SetupLogger configures the standard logrus logger and returns it.
func SetupLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

func newMailer(cfg config.SMTPConfig, log *logrus.Logger) service.InviteMailer {
	if cfg.Host == "" {
		log.Warn("SMTP_HOST not set, invitation emails will only be logged")
		return mail.NewLogSender(log)
	}
	return mail.NewEmailSender(cfg)
}

// initializeNotifier builds the invite notifier for the configured backend.
func (app *App) initializeNotifier(log *logrus.Logger) (service.InviteNotifier, error) {
	cfg := app.Config.Notifier
	mailer := newMailer(app.Config.SMTP, log)

	switch cfg.Backend {
	case NotifierRabbitMQ:
		rabbit, err := queue.NewRabbitMQ(cfg.RabbitMQ)
		if err != nil {
			return nil, err
		}
		app.RabbitMQ = rabbit

		// Consumer gets its own channel; the shared one is used for publishing.
		workerCh, err := rabbit.Conn.Channel()
		if err != nil {
			return nil, fmt.Errorf("failed to open consumer channel: %w", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		worker := queue.NewInviteWorker(workerCh, mailer, log)
		if err := worker.Start(ctx); err != nil {
			cancel()
			return nil, err
		}
		app.worker = worker
		app.stopWorker = cancel

		return queue.NewInvitePublisher(rabbit.Ch, log), nil

	case NotifierMemory, "":
		app.dispatcher = service.NewInviteDispatcher(mailer, log, cfg.Workers, cfg.QueueSize)
		log.WithFields(logrus.Fields{
			"workers":    cfg.Workers,
			"queue_size": cfg.QueueSize,
		}).Info("In-memory invite dispatcher started")
		return app.dispatcher, nil

	default:
		return nil, fmt.Errorf("unknown notifier backend %q", cfg.Backend)
	}
}

func (app *App) rabbitConn() *amqp.Connection {
	if app.RabbitMQ == nil {
		return nil
	}
	return app.RabbitMQ.Conn
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client, rabbitConn *amqp.Connection, notifier service.InviteNotifier) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	membershipRepo := repository.NewMembershipRepository()
	roleRepo := repository.NewRoleRepository()
	unidadeSaudeRepo := repository.NewUnidadeSaudeRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	tokenStore := service.NewTokenStore(redisClient)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, auditService, jwtService, tokenStore)
	adminUsecase := usecase.NewAdminUsecase(db, log, userRepo, membershipRepo, roleRepo, unidadeSaudeRepo,
		auditService, tokenStore, notifier, jwtService, cfg.Invite.BaseURL)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	adminHandler := handler.NewAdminHandler(adminUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)
	healthHandler := handler.NewHealthHandler(db, redisClient, rabbitConn)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUsecase, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigins)

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, adminHandler, auditLogHandler, healthHandler, authMiddleware, corsMiddleware)

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close stops the notifier, then closes RabbitMQ, the database and Redis.
// Pending in-memory invitations are delivered before returning.
func (app *App) Close() {
	if app.dispatcher != nil {
		app.dispatcher.Stop()
	}

	if app.stopWorker != nil {
		app.stopWorker()
		select {
		case <-app.worker.Done():
		case <-time.After(5 * time.Second):
			logrus.Warn("Invite worker did not stop in time")
		}
	}

	if app.RabbitMQ != nil {
		if err := app.RabbitMQ.Close(); err != nil {
			logrus.Warnf("Failed to close RabbitMQ: %+v", err)
		}
	}

	if app.DB != nil {
		if err := database.Close(app.DB); err != nil {
			logrus.Warnf("Failed to close database: %+v", err)
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
