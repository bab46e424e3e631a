// Package portal wires configuration parsing and startup for the employee
// portal server command.
package portal

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/louisbranch/employee-portal/internal/platform/config"
	"github.com/louisbranch/employee-portal/internal/portal"
)

const defaultHTTPAddr = "localhost:3206"

// Config holds the portal command configuration.
type Config struct {
	HTTPAddr string
	DBPath   string
}

// portalEnv captures startup defaults for the portal process.
type portalEnv struct {
	HTTPAddr string `env:"PORTAL_HTTP_ADDR"`
	DBPath   string `env:"PORTAL_DB_PATH"`
}

func loadPortalEnv() portalEnv {
	var cfg portalEnv
	_ = config.ParseEnv(&cfg)
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = defaultHTTPAddr
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join("data", "portal.db")
	}
	return cfg
}

// ParseConfig parses flags into a Config. Environment variables supply the
// defaults; flags override them.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	envCfg := loadPortalEnv()
	cfg := Config{
		HTTPAddr: envCfg.HTTPAddr,
		DBPath:   envCfg.DBPath,
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the portal server and blocks until the context is canceled.
func Run(ctx context.Context, cfg Config) error {
	server, err := portal.NewServer(ctx, portal.Config{
		HTTPAddr: cfg.HTTPAddr,
		DBPath:   cfg.DBPath,
	})
	if err != nil {
		return fmt.Errorf("init portal server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve portal: %w", err)
	}
	return nil
}
