package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/agentcircle/agentcircle/ai"
	"github.com/agentcircle/agentcircle/api"
	"github.com/agentcircle/agentcircle/api/handlers"
	"github.com/agentcircle/agentcircle/chat"
	"github.com/agentcircle/agentcircle/config"
	"github.com/agentcircle/agentcircle/content"
	"github.com/agentcircle/agentcircle/events"
	"github.com/agentcircle/agentcircle/lifecycle"
	"github.com/agentcircle/agentcircle/persona"
	"github.com/agentcircle/agentcircle/scheduler"
	"github.com/agentcircle/agentcircle/social"
	"github.com/agentcircle/agentcircle/storage"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := config.Load()
	ctx := context.Background()

	// Local store is mandatory; the remote one is optional and degraded
	// to on failure.
	local, err := storage.NewBadgerStore(storage.DefaultBadgerConfig(cfg.DataDir))
	if err != nil {
		log.Fatal("open local store", zap.Error(err))
	}

	var remote storage.Store
	if cfg.DatabaseURL != "" {
		pg, err := storage.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Warn("remote store unreachable, running local-only", zap.Error(err))
		} else {
			remote = pg
		}
	}

	store := storage.NewDualStore(remote, local, log)
	defer store.Close()

	if remote != nil {
		if err := store.SyncFromRemote(ctx); err != nil {
			log.Warn("startup sync incomplete", zap.Error(err))
		}
	}

	var pub events.Publisher = events.NopPublisher{}
	if cfg.NATSURL != "" {
		np, err := events.NewNATSPublisher(cfg.NATSURL, log)
		if err != nil {
			log.Warn("nats unreachable, events disabled", zap.Error(err))
		} else {
			pub = np
			defer np.Close()
		}
	}

	if cfg.OpenAIKey == "" {
		log.Warn("no OPENAI_API_KEY set, all content will use fallback templates")
	}
	gen := ai.NewOpenAIGenerator(cfg.OpenAIKey, cfg.GenerationTimeout, log)

	// The four jobs run on separate goroutines and may overlap, so they
	// share a generator whose source is safe for concurrent use.
	rng := persona.NewRand(time.Now().UnixNano())
	sched := scheduler.New(log)
	sched.Register("content_generation", cfg.ContentInterval,
		content.NewPublisher(store, gen, rng, pub, log))
	sched.Register("life_cycle_update", cfg.LifecycleInterval,
		lifecycle.NewEngine(store, rng, pub, log))
	sched.Register("social_interaction", cfg.SocialInterval,
		social.NewSynthesizer(store, rng, pub, log))
	sched.Register("chat_activity", cfg.ChatInterval,
		chat.NewOrchestrator(store, gen, rng, pub, log))

	if cfg.AutoStart {
		sched.Start()
	}

	srv := api.NewServer(cfg.APIPort, &handlers.Handler{Store: store, Sched: sched})
	go func() {
		log.Info("api listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("api server exited", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	sched.Stop()
	if err := api.Shutdown(srv); err != nil {
		log.Error("api shutdown", zap.Error(err))
	}
}
