package service

import (
	"github.com/usell/billing/internal/config"
	"github.com/usell/billing/internal/domain/billing"
	"github.com/usell/billing/internal/logger"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	// Repositories
	BillingRepo billing.Repository
}

// NewServiceParams assembles the common service dependencies
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	billingRepo billing.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:      logger,
		Config:      config,
		BillingRepo: billingRepo,
	}
}
