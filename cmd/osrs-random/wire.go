package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/osrs-random/internal/clients/github"
	"github.com/KirkDiggler/osrs-random/internal/config"
	"github.com/KirkDiggler/osrs-random/internal/entities/osrs"
	"github.com/KirkDiggler/osrs-random/internal/errors"
	"github.com/KirkDiggler/osrs-random/internal/handlers/cli"
	"github.com/KirkDiggler/osrs-random/internal/orchestrators/picker"
	"github.com/KirkDiggler/osrs-random/internal/orchestrators/update"
	"github.com/KirkDiggler/osrs-random/internal/pkg/clock"
	"github.com/KirkDiggler/osrs-random/internal/pkg/idgen"
	"github.com/KirkDiggler/osrs-random/internal/pkg/rng"
	"github.com/KirkDiggler/osrs-random/internal/redis"
	releasecache "github.com/KirkDiggler/osrs-random/internal/repositories/release_cache"
)

// buildHandler wires the picker and the optional update checker. The
// returned cleanup releases any connections.
func buildHandler(cfg *config.Config, out io.Writer, version string) (*cli.Handler, func(), error) {
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	var roller dice.Roller = dice.DefaultRoller
	var ids idgen.Generator = idgen.NewUUID("draw")
	if cfg.Seeded {
		roller = rng.NewSeeded(cfg.Seed)
		ids = idgen.NewSequential("draw")
	}

	bus := events.NewBus()
	logPick := func(_ context.Context, e events.Event) error {
		attrs := []any{"event_type", e.Type()}
		if target := e.Target(); target != nil {
			attrs = append(attrs, "target", target.GetID())
		}
		slog.Info("Pick published", attrs...)
		return nil
	}
	bus.SubscribeFunc(picker.EventBossPicked, 0, logPick)
	bus.SubscribeFunc(picker.EventSkillPicked, 0, logPick)

	pickerSvc, err := picker.New(&picker.Config{
		Catalog:     osrs.Categories(),
		Roller:      roller,
		IDGenerator: ids,
		EventBus:    bus,
		SkillPolicy: picker.SkillPolicy(cfg.SkillPolicy),
	})
	if err != nil {
		return nil, cleanup, errors.Wrap(err, "failed to create picker")
	}

	var checker update.Checker
	if !cfg.NoUpdateCheck {
		checker, cleanups, err = buildChecker(cfg, cleanups)
		if err != nil {
			cleanup()
			return nil, func() {}, err
		}
	}

	handler, err := cli.NewHandler(&cli.HandlerConfig{
		Picker:  pickerSvc,
		Checker: checker,
		Out:     out,
		Styles:  cli.NewStyles(out, cfg.NoColor),
		Version: version,
	})
	if err != nil {
		cleanup()
		return nil, func() {}, errors.Wrap(err, "failed to create handler")
	}

	return handler, cleanup, nil
}

func buildChecker(cfg *config.Config, cleanups []func()) (update.Checker, []func(), error) {
	client, err := github.New(&github.Config{Timeout: cfg.UpdateCheck.Timeout})
	if err != nil {
		return nil, cleanups, errors.Wrap(err, "failed to create github client")
	}

	var cache releasecache.Repository
	if cfg.Redis.Addr == "" {
		cache = releasecache.NewInMemory(clock.New())
	} else {
		redisClient, err := redis.NewClient(cfg.Redis.Addr, &redis.Options{
			DB:          cfg.Redis.DB,
			Password:    cfg.Redis.Password,
			DialTimeout: cfg.Redis.Timeout,
			ReadTimeout: cfg.Redis.Timeout,
		})
		if err != nil {
			return nil, cleanups, errors.Wrap(err, "failed to create redis client")
		}
		cleanups = append(cleanups, func() { _ = redisClient.Close() })
		slog.Debug("Release cache backed by redis", "addr", cfg.Redis.Addr)

		cache, err = releasecache.NewRedisRepository(&releasecache.Config{
			Client: redisClient,
			Clock:  clock.New(),
		})
		if err != nil {
			return nil, cleanups, errors.Wrap(err, "failed to create release cache")
		}
	}

	checker, err := update.New(&update.Config{
		Client:   client,
		Cache:    cache,
		CacheTTL: cfg.UpdateCheck.CacheTTL,
		Repo:     cfg.UpdateCheck.Repo,
		Timeout:  cfg.UpdateCheck.Timeout,
	})
	if err != nil {
		return nil, cleanups, errors.Wrap(err, "failed to create update checker")
	}

	return checker, cleanups, nil
}
