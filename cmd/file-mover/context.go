package main

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"file-mover/internal/config"
	"file-mover/internal/logger"
)

type commandContext struct {
	flags   *rootFlags
	session string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(flags *rootFlags) *commandContext {
	return &commandContext{
		flags:   flags,
		session: uuid.NewString(),
	}
}

// ensureConfig loads the configuration once and applies flag overrides.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		path := strings.TrimSpace(c.flags.config)
		if path == "" {
			defaultPath, err := config.DefaultPath()
			if err == nil {
				path = defaultPath
			}
		}
		c.configPath = path

		cfg, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}

		if v := strings.TrimSpace(c.flags.registry); v != "" {
			cfg.RegistryPath = v
		}
		if v := strings.TrimSpace(c.flags.journal); v != "" {
			cfg.JournalPath = v
		}
		if v := strings.TrimSpace(c.flags.logLevel); v != "" {
			cfg.Logging.Level = strings.ToLower(v)
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// logger builds the process logger. Headless commands stay quiet below
// warnings unless --log-level was given.
func (c *commandContext) logger(cfg *config.Config, headless bool) (logger.Logger, error) {
	level, err := logger.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	if headless && strings.TrimSpace(c.flags.logLevel) == "" && level < zerolog.WarnLevel {
		level = zerolog.WarnLevel
	}
	return logger.New(logger.Options{
		Level:   level,
		Format:  logger.Format(cfg.Logging.Format),
		Session: c.session,
	}), nil
}
