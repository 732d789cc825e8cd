package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"forge3d/internal/bridge"
	"forge3d/internal/config"
	"forge3d/internal/forge3d"
	"forge3d/internal/history"
	"forge3d/internal/logging"
)

type commandContext struct {
	configFlag *string
	serverFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, serverFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		serverFlag: serverFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.serverFlag != nil && strings.TrimSpace(*c.serverFlag) != "" {
			cfg.Server.URL = strings.TrimSpace(*c.serverFlag)
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

func (c *commandContext) newClient() (*forge3d.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return forge3d.New(forge3d.Config{
		BaseURL: cfg.Server.URL,
		Logger:  c.ensureLogger(),
	}), nil
}

func (c *commandContext) withSession(fn func(*bridge.Session) error) error {
	client, err := c.newClient()
	if err != nil {
		return err
	}
	session, err := bridge.NewSession(bridge.Options{
		Client: client,
		Logger: c.ensureLogger(),
	})
	if err != nil {
		return err
	}
	return fn(session)
}

// withHistory runs fn against the download history store when history is
// enabled. When disabled it invokes fn with a nil store so callers degrade
// gracefully.
func (c *commandContext) withHistory(fn func(*history.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if !cfg.History.Enabled {
		return fn(nil)
	}
	store, err := history.Open(cfg.HistoryPath())
	if err != nil {
		return fmt.Errorf("open download history: %w", err)
	}
	defer store.Close()
	return fn(store)
}

// lockStaging guards the staging directory against concurrent forge3d
// invocations writing the same asset files. The returned release function is
// safe to call once.
func (c *commandContext) lockStaging() (func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	lock := flock.New(filepath.Join(cfg.Paths.StagingDir, ".forge3d.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire staging lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another forge3d download is already writing to the staging directory")
	}
	return func() { _ = lock.Unlock() }, nil
}

// await drives one asynchronous session operation to completion from a
// synchronous command handler.
func await[T any](start func(bridge.Callback[T])) bridge.Outcome[T] {
	done := make(chan bridge.Outcome[T], 1)
	start(func(outcome bridge.Outcome[T]) {
		done <- outcome
	})
	return <-done
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
