// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/fileslist/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path. An empty path discovers fileslist.yaml
	// by walking up from cwd.
	Load(cwd, path string) (*domain.Project, error)
}
