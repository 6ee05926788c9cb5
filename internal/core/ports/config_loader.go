package ports

import "github.com/hotpatchkit/dexopt/internal/core/domain"

// ConfigLoader defines the interface for loading the agent configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory. A
	// missing file yields the defaults, not an error.
	Load(cwd string) (*domain.Config, error)
}
