package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"github.com/talentforge/jobboard-service/internal/config"
	eventHandlers "github.com/talentforge/jobboard-service/internal/events/handlers"
	"github.com/talentforge/jobboard-service/internal/events/kafka"
	httpHandler "github.com/talentforge/jobboard-service/internal/handler/http"
	"github.com/talentforge/jobboard-service/internal/infrastructure/cache"
	"github.com/talentforge/jobboard-service/internal/infrastructure/database"
	"github.com/talentforge/jobboard-service/internal/infrastructure/database/postgres"
	"github.com/talentforge/jobboard-service/internal/infrastructure/mail"
	"github.com/talentforge/jobboard-service/internal/infrastructure/security"
	"github.com/talentforge/jobboard-service/internal/infrastructure/storage"
	"github.com/talentforge/jobboard-service/internal/scheduler"
	"github.com/talentforge/jobboard-service/internal/service"
	"github.com/talentforge/jobboard-service/internal/utils/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Environment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	if cfg.Database.AutoMigrate {
		if err := runMigrations(cfg.Database, log); err != nil {
			log.Fatal("failed to apply migrations", zap.Error(err))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := postgres.NewDBPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	s3Client, err := storage.NewS3Client(cfg.Storage)
	if err != nil {
		log.Fatal("failed to initialize object storage", zap.Error(err))
	}

	producer := kafka.NewKafkaEventProducer(cfg.Kafka.Brokers, "jobboard-service",
		cfg.Kafka.EventsTopic, cfg.Kafka.MailTopic, logger.WithComponent(log, "kafka"))
	defer producer.Close()

	// Repositories.
	userRepo := database.NewPgxUserRepository(dbPool)
	profileRepo := database.NewPgxProfileRepository(dbPool)
	careerRepo := database.NewPgxCareerHistoryRepository(dbPool)
	companyRepo := database.NewPgxCompanyRepository(dbPool)
	jobRepo := database.NewPgxJobRepository(dbPool)
	applicationRepo := database.NewPgxApplicationRepository(dbPool)
	engagementRepo := database.NewPgxEngagementRepository(dbPool)
	notificationRepo := database.NewPgxNotificationRepository(dbPool)
	blogRepo := database.NewPgxBlogRepository(dbPool)
	txManager := database.NewTxManager(dbPool)

	// Security.
	passwordService := security.NewPasswordService(security.Argon2idParams{
		Memory:      cfg.Security.PasswordHash.Memory,
		Iterations:  cfg.Security.PasswordHash.Iterations,
		Parallelism: cfg.Security.PasswordHash.Parallelism,
		SaltLength:  cfg.Security.PasswordHash.SaltLength,
		KeyLength:   cfg.Security.PasswordHash.KeyLength,
	})
	jwtService, err := security.NewJWTService(cfg.JWT)
	if err != nil {
		log.Fatal("failed to initialize jwt service", zap.Error(err))
	}

	listingCache := cache.NewJobListingCache(redisClient, cfg.Redis.JobTTL, logger.WithComponent(log, "cache"))

	// Services.
	authService := service.NewAuthService(userRepo, passwordService, jwtService, logger.WithComponent(log, "auth"))
	userService := service.NewUserService(userRepo, profileRepo, careerRepo, companyRepo, jobRepo,
		applicationRepo, engagementRepo, notificationRepo, blogRepo, txManager, producer,
		logger.WithComponent(log, "users"))
	profileService := service.NewProfileService(profileRepo, careerRepo, s3Client, logger.WithComponent(log, "profiles"))
	companyService := service.NewCompanyService(companyRepo, notificationRepo, s3Client, logger.WithComponent(log, "companies"))
	jobService := service.NewJobService(jobRepo, companyRepo, applicationRepo, engagementRepo,
		notificationRepo, txManager, listingCache, logger.WithComponent(log, "jobs"))
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, companyRepo, userRepo,
		notificationRepo, txManager, producer, logger.WithComponent(log, "applications"))
	engagementService := service.NewEngagementService(engagementRepo, jobRepo, logger.WithComponent(log, "engagements"))
	notificationService := service.NewNotificationService(notificationRepo, logger.WithComponent(log, "notifications"))
	blogService := service.NewBlogService(blogRepo, logger.WithComponent(log, "blog"))

	// Mail worker consuming digest events.
	smtpClient := mail.NewSMTPClient(cfg.Mail)
	mailWorker := eventHandlers.NewMailWorker(smtpClient, logger.WithComponent(log, "mail"))
	mailConsumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroup,
		cfg.Kafka.MailTopic, logger.WithComponent(log, "kafka"), mailWorker.Handler())
	mailConsumer.Start(ctx)
	defer mailConsumer.Close()

	// Scheduler for the posting-expiry sweep.
	sched, err := scheduler.New(cfg.Scheduler, jobService, logger.WithComponent(log, "scheduler"))
	if err != nil {
		log.Fatal("failed to initialize scheduler", zap.Error(err))
	}
	sched.Start()
	defer sched.Stop()

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Auth:          authService,
		Users:         userService,
		Profiles:      profileService,
		Companies:     companyService,
		Jobs:          jobService,
		Applications:  applicationService,
		Engagements:   engagementService,
		Notifications: notificationService,
		Blog:          blogService,
		Tokens:        jwtService,
		DB:            dbPool,
		Logger:        logger.WithComponent(log, "http"),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("http server starting", zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown failed", zap.Error(err))
	}
}

func runMigrations(cfg config.DatabaseConfig, log *zap.Logger) error {
	path := cfg.MigrationsPath
	if path == "" {
		path = "migrations"
	}
	url := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, cfg.SSLMode)

	m, err := migrate.New("file://"+path, url)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	log.Info("migrations applied")
	return nil
}
