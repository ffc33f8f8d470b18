package service

import (
	"github.com/sirupsen/logrus"

	"github.com/pathtwo/pathtwo/internal/config"
	"github.com/pathtwo/pathtwo/internal/repository"
	"github.com/pathtwo/pathtwo/internal/utils/email"
	"github.com/pathtwo/pathtwo/internal/wealth"
)

// Service handles business logic
type Service struct {
	repo   *repository.Repository
	engine *wealth.Engine
	mailer *email.Sender
	log    *logrus.Logger
	config *config.Config
}

// NewService initializes a new service
func NewService(repo *repository.Repository, engine *wealth.Engine, mailer *email.Sender, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{
		repo:   repo,
		engine: engine,
		mailer: mailer,
		log:    log,
		config: cfg,
	}
}
