package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ChintyaPuja/technical/internal/catalog"
	"github.com/ChintyaPuja/technical/internal/config"
	"github.com/ChintyaPuja/technical/internal/editor"
	"github.com/ChintyaPuja/technical/internal/idgen"
	"github.com/ChintyaPuja/technical/internal/kvstore"
	"github.com/ChintyaPuja/technical/internal/logging"
	"github.com/ChintyaPuja/technical/internal/storage"
	"github.com/ChintyaPuja/technical/internal/utils"
)

// environment bundles everything a command needs to work on the catalog
type environment struct {
	cfg     *config.Config
	logger  *slog.Logger
	adapter *storage.KVAdapter
	catalog *catalog.Catalog
	session *editor.Session
}

// loadConfig reads and validates the config file, exiting on failure
func loadConfig() *config.Config {
	if !utils.FileExists(configPath) {
		utils.PrintError("%s not found. Run 'catalog init' first", configPath)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		utils.PrintError("Failed to load config: %v", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		utils.PrintError("Invalid config: %v", err)
		os.Exit(1)
	}
	return cfg
}

// openEnvironment connects to the configured store and loads the catalog
func openEnvironment(cfg *config.Config) (*environment, error) {
	logger := logging.New(cfg.LogLevel)

	store, err := kvstore.Open(cfg.DatabaseURL, cfg.KVTable, logging.ParseLevel(cfg.LogLevel) == slog.LevelDebug)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return newEnvironment(cfg, store, logger)
}

func newEnvironment(cfg *config.Config, store kvstore.Store, logger *slog.Logger) (*environment, error) {
	adapter := storage.New(store, cfg.StorageKey, logger)
	cat := catalog.New(adapter, idgen.New(), logger)
	session := editor.New(cat, cfg.PageSize)
	if err := session.Open(); err != nil {
		return nil, err
	}

	return &environment{
		cfg:     cfg,
		logger:  logger,
		adapter: adapter,
		catalog: cat,
		session: session,
	}, nil
}

// mustOpen loads the config and opens the environment, exiting on failure
func mustOpen() *environment {
	cfg := loadConfig()
	env, err := openEnvironment(cfg)
	if err != nil {
		utils.PrintError("Failed to open catalog: %v", err)
		os.Exit(1)
	}
	return env
}

// parseIDs converts command arguments into product ids
func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid product id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
