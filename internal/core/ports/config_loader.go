package ports

import "go.trai.ch/yarnix/internal/core/domain"

// ConfigLoader defines the interface for loading run settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads settings from the given working directory, falling back to
	// defaults when no config file is present.
	Load(cwd string) (domain.Settings, error)
}
