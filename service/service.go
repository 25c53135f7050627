// Package service wires the dataset, classifier, stats collector, and API
// server into a managed service lifecycle.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/academe-go/academe/api"
	"github.com/academe-go/academe/classifier"
	"github.com/academe-go/academe/dataset"
	"github.com/academe-go/academe/stats"
	"go.uber.org/zap"
)

// Config is the main configuration structure.
// It may be marshaled as or unmarshaled from JSON.
type Config struct {
	Dataset dataset.Config `json:"dataset"`
	Stats   stats.Config   `json:"stats"`
	API     api.Config     `json:"api"`
}

// Service is a background service.
type Service interface {
	// String returns the service's name.
	String() string

	// Start starts the service.
	Start(ctx context.Context) error

	// Stop stops the service.
	Stop() error
}

// Manager initializes the service manager.
//
// Initialization order: dataset -> classifier -> stats -> API
func (cfg *Config) Manager(logger *zap.Logger) (*Manager, error) {
	if !cfg.API.Enabled {
		return nil, errors.New("no services to start")
	}

	ds := cfg.Dataset.Dataset(logger)
	logger.Info("Loaded dataset",
		zap.Int("institutions", len(ds.Institutions)),
		zap.Int("stoplisted", len(ds.Stoplist)),
		zap.Int("tlds", len(ds.TLDs)),
	)

	collector := cfg.Stats.Collector()

	apiServer, err := cfg.API.Server(logger, classifier.New(ds), ds, collector)
	if err != nil {
		return nil, fmt.Errorf("failed to create API server: %w", err)
	}

	return &Manager{
		services: []Service{apiServer},
		logger:   logger,
	}, nil
}

// Manager manages the services.
type Manager struct {
	services []Service
	logger   *zap.Logger
}

// Start starts all configured services.
func (m *Manager) Start(ctx context.Context) error {
	for _, s := range m.services {
		if err := s.Start(ctx); err != nil {
			return fmt.Errorf("failed to start %s: %w", s.String(), err)
		}
	}
	return nil
}

// Stop stops all running services.
func (m *Manager) Stop() {
	for _, s := range m.services {
		if err := s.Stop(); err != nil {
			m.logger.Warn("Failed to stop service", zap.Stringer("service", s), zap.Error(err))
			continue
		}
		m.logger.Info("Stopped service", zap.Stringer("service", s))
	}
}
