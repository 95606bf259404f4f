package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/abhisek/phantomledger/internal/bank"
	"github.com/abhisek/phantomledger/internal/config"
	"github.com/abhisek/phantomledger/internal/judge"
	"github.com/abhisek/phantomledger/internal/logger"
	"github.com/abhisek/phantomledger/internal/progress"
	"github.com/abhisek/phantomledger/internal/session"
	"github.com/abhisek/phantomledger/internal/store"
)

// deps holds the collaborators shared by every command.
type deps struct {
	cfg    config.Config
	log    *logger.Logger
	redis  *redis.Client
	db     *store.Store
	store  progress.Store
	events store.EventRepo
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	overrides := []struct {
		name   string
		target *string
	}{
		{"db", &cfg.DBPath},
		{"player", &cfg.Player},
		{"mode", &cfg.Mode},
		{"questions", &cfg.QuestionsFile},
		{"redis-addr", &cfg.Redis.Addr},
		{"log-file", &cfg.LogFile},
	}
	for _, o := range overrides {
		if f := flags.Lookup(o.name); f != nil && f.Changed {
			*o.target = f.Value.String()
		}
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openDeps opens the progress store the configuration selects. Redis wins
// over SQLite; the Redis backend keeps no event log.
func openDeps(cmd *cobra.Command) (*deps, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	if cfg.DBPath == "" {
		cfg.DBPath, err = store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
	} else if err := store.EnsureDir(cfg.DBPath); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(filepath.Dir(cfg.DBPath), "phantom.log")
	}

	log, err := logger.New(cfg.LogMode, cfg.LogFile)
	if err != nil {
		return nil, err
	}
	d := &deps{cfg: cfg, log: log}

	if cfg.Redis.Enabled() {
		d.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		d.store = store.NewRedisProgress(d.redis, "phantom")
		log.Info("using redis progress store", "redis_addr", cfg.Redis.Addr)
		return d, nil
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}
	d.db = st
	d.store = st.ProgressRepo()
	d.events = st.EventRepo()
	return d, nil
}

func (d *deps) Close() {
	if d.db != nil {
		if err := d.db.Close(); err != nil {
			d.log.Warn("close store", "error", err)
		}
	}
	if d.redis != nil {
		if err := d.redis.Close(); err != nil {
			d.log.Warn("close redis", "error", err)
		}
	}
	d.log.Sync()
}

// catalog resolves the question set: a JSON file, then the Redis
// collection for the mode, then the compiled-in set.
func (d *deps) catalog(ctx context.Context) (*bank.Catalog, error) {
	if d.cfg.QuestionsFile != "" {
		return bank.FileSource{Path: d.cfg.QuestionsFile}.Load(ctx)
	}
	if d.redis != nil {
		c, err := bank.RedisSource{Client: d.redis, Collection: d.cfg.Mode}.Load(ctx)
		if err == nil {
			return c, nil
		}
		d.log.Warn("remote question collection unavailable, using built-in set",
			"collection", d.cfg.Mode, "error", err)
	}
	return bank.ForMode(d.cfg.Mode)
}

// player returns the configured wallet address.
func (d *deps) player(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if d.cfg.Player == "" {
		return "", errors.New("no player address: pass --player or set PHANTOM_PLAYER")
	}
	return d.cfg.Player, nil
}

// engineFactory builds a fresh engine per session.
func (d *deps) engineFactory(playerID string, catalog *bank.Catalog) func() *session.Engine {
	j := judge.ForMode(judge.Mode(d.cfg.Mode))
	return func() *session.Engine {
		return session.New(session.Config{
			PlayerID:      playerID,
			Network:       d.cfg.Network,
			Store:         d.store,
			Catalog:       catalog,
			Judge:         j,
			QuestionTime:  d.cfg.QuestionTime,
			ResyncDelay:   d.cfg.ResyncDelay,
			StartingLives: d.cfg.StartingLives,
			Logger:        d.log,
		})
	}
}
