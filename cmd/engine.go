package cmd

import (
	"os"

	"github.com/conneroisu/curricula/internal/config"
	"github.com/conneroisu/curricula/internal/content"
	"github.com/conneroisu/curricula/internal/logging"
	"github.com/conneroisu/curricula/internal/registry"
	"github.com/conneroisu/curricula/internal/types"
	"github.com/conneroisu/curricula/internal/validate"
)

// loadModules resolves the corpus source: an explicit content directory
// from config, or the corpus embedded in the binary.
func loadModules(cfg *config.Config) ([]types.Module, error) {
	if cfg.Content.Dir != "" {
		return content.LoadDir(cfg.Content.Dir)
	}

	return content.Embedded()
}

// loadRegistry builds the registry from the configured corpus source.
// The validation report is returned alongside the error so commands can
// render findings even when the load fails.
func loadRegistry(cfg *config.Config) (*registry.Registry, *validate.Report, error) {
	modules, err := loadModules(cfg)
	if err != nil {
		return nil, nil, err
	}

	return registry.Load(modules)
}

// newLogger builds the CLI logger from config.
func newLogger(cfg *config.Config, component string) logging.Logger {
	return logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.ParseLevel(cfg.Log.Level),
		Format:    cfg.Log.Format,
		Output:    os.Stderr,
		Component: component,
	})
}
