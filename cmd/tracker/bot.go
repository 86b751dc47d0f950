package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"max.ks1230/expense-tracker/internal/admin"
	"max.ks1230/expense-tracker/internal/clients/cache"
	"max.ks1230/expense-tracker/internal/clients/google"
	"max.ks1230/expense-tracker/internal/clients/identity"
	"max.ks1230/expense-tracker/internal/clients/kafka"
	"max.ks1230/expense-tracker/internal/clients/tg"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/auth"
	"max.ks1230/expense-tracker/internal/model/expenses"
	"max.ks1230/expense-tracker/internal/model/feed"
	"max.ks1230/expense-tracker/internal/model/messages"
	"max.ks1230/expense-tracker/internal/model/session"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/tracing"
)

func newBotCmd(configPath *string) *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return runBot(ctx, *configPath, local)
		},
	}
	cmd.Flags().BoolVar(&local, "local", false, "keep expenses in memory and skip Kafka")
	return cmd
}

// hubFeed exposes the hub as the session change feed.
func hubFeed(hub *feed.Hub) session.Feed {
	return session.FeedFunc(func(owner string, onChange func(expense.ChangeEvent)) (session.Subscription, error) {
		sub, err := hub.Subscribe(owner, onChange)
		if err != nil {
			return nil, err
		}
		return sub, nil
	})
}

func runBot(ctx context.Context, configPath string, local bool) error {
	logger.Info("Bot init - start")

	conf, err := config.New(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to init config")
	}
	validate := conf.Validate
	if local {
		validate = conf.ValidateLocal
	}
	if err = validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}

	closer, err := tracing.Init(conf.Tracing())
	if err != nil {
		return err
	}
	defer closer.Close()

	g, gctx := errgroup.WithContext(ctx)
	hub := feed.NewHub()
	checks := make(map[string]admin.Check)

	var store expenses.Store
	if local {
		logger.Warn("running with in-memory storage")
		store = storage.NewInMemStorage(hub)
	} else {
		producer, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			return errors.Wrap(err, "failed to init kafka producer")
		}
		defer producer.Close()

		db, err := storage.NewPostgresStorage(conf.Postgres(), producer)
		if err != nil {
			return errors.Wrap(err, "failed to init postgres")
		}
		defer db.Close()
		checks["postgres"] = db.Ping
		store = db

		consumer, err := kafka.NewConsumer(conf.Kafka(), hub)
		if err != nil {
			return errors.Wrap(err, "failed to init kafka consumer")
		}
		defer consumer.Close()
		g.Go(func() error { return consumer.StartConsuming(gctx) })
	}

	identityCache, err := cache.NewMemcache(conf.Memcached())
	if err != nil {
		return errors.Wrap(err, "failed to init memcached")
	}
	checks["memcached"] = func(context.Context) error { return identityCache.Ping() }

	sessions := session.NewManager(store, hubFeed(hub), conf.App().DefaultCurrency())
	defer sessions.Close()

	authService := auth.NewService(
		identity.New(conf.Identity()),
		google.NewOAuth(conf.Google()),
		identityCache,
		sessions.OnIdentityChange,
	)

	tgClient, err := tg.New(conf.Telegram())
	if err != nil {
		return errors.Wrap(err, "failed to init telegram client")
	}
	msgService := messages.NewService(tgClient, authService, sessions)

	adminServer := admin.New(conf.App(), checks)
	g.Go(func() error { return adminServer.Run(gctx) })
	g.Go(func() error { return tgClient.ListenUpdates(gctx, msgService) })

	logger.Info("Bot init - end")
	return g.Wait()
}
