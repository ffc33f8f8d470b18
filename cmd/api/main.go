package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/pathtwo/pathtwo/internal/config"
	"github.com/pathtwo/pathtwo/internal/handler"
	"github.com/pathtwo/pathtwo/internal/middleware"
	"github.com/pathtwo/pathtwo/internal/repository"
	"github.com/pathtwo/pathtwo/internal/seo"
	"github.com/pathtwo/pathtwo/internal/service"
	"github.com/pathtwo/pathtwo/internal/uploads"
	"github.com/pathtwo/pathtwo/internal/utils/email"
	"github.com/pathtwo/pathtwo/internal/wealth"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	engine := wealth.NewEngine(wealth.Options{IncludeZero: cfg.AllocationZeros})
	var mailer *email.Sender
	if cfg.SMTPHost != "" {
		mailer = email.NewSender(cfg, logger)
	}
	svc := service.NewService(repo, engine, mailer, logger, cfg)

	uploadStore, err := uploads.NewStore(cfg.UploadDir)
	if err != nil {
		logger.Fatalf("Failed to initialize upload store: %v", err)
	}

	seoGen := seo.NewGenerator(cfg.SiteURL, repo, logger)
	if err := seoGen.Refresh(context.Background()); err != nil {
		logger.Warnf("Initial sitemap build failed: %v", err)
	}

	// Rebuild sitemap and feed on a schedule
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.SitemapCron, func() {
		if err := seoGen.Refresh(context.Background()); err != nil {
			logger.Errorf("Scheduled sitemap rebuild failed: %v", err)
		}
	}); err != nil {
		logger.Fatalf("Invalid SITEMAP_CRON expression: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	h := handler.NewHandler(svc, seoGen, uploadStore, logger)

	// Setup router
	r := mux.NewRouter()
	h.RegisterRoutes(r, middleware.AuthMiddleware(cfg, logger))
	r.PathPrefix(uploads.URLPrefix).Handler(
		http.StripPrefix(uploads.URLPrefix, http.FileServer(http.Dir(uploadStore.Dir()))))

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
