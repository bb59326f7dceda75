package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"max.ks1230/ledger-bot/internal/clients/cache"
	"max.ks1230/ledger-bot/internal/clients/calendar"
	"max.ks1230/ledger-bot/internal/clients/kafka"
	"max.ks1230/ledger-bot/internal/clients/tg"
	"max.ks1230/ledger-bot/internal/config"
	"max.ks1230/ledger-bot/internal/logger"
	"max.ks1230/ledger-bot/internal/model/classifier"
	"max.ks1230/ledger-bot/internal/model/digest"
	"max.ks1230/ledger-bot/internal/model/messages"
	"max.ks1230/ledger-bot/internal/model/reports"
	"max.ks1230/ledger-bot/internal/model/storage"
	"max.ks1230/ledger-bot/internal/ops"
	"max.ks1230/ledger-bot/internal/tracing"
)

func main() {
	defer logger.Sync()
	logger.Info("Bot init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	closer, err := tracing.Init(conf.Tracing())
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer func() { _ = closer.Close() }()

	store, err := storage.Open(conf.Storage(), conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init storage:", zap.Error(err))
	}
	defer func() { _ = store.Close() }()

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init client:", zap.Error(err))
	}

	renderer, err := newRenderer(conf)
	if err != nil {
		logger.Fatal("failed to init calendar renderer:", zap.Error(err))
	}

	engine := reports.NewEngine(conf.App(), store)
	deps := messages.Deps{
		Registrar:  store,
		Classifier: classifier.New(store, conf.App()),
		Reports:    engine,
		Renderer:   renderer,
	}
	if conf.Kafka().Enabled() {
		producer, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			logger.Fatal("failed to init kafka producer:", zap.Error(err))
		}
		defer producer.Close()
		deps.Publisher = producer
	}

	msgService := messages.NewService(client, deps, conf.Schedule())
	scheduler := digest.NewScheduler(conf.Schedule(), conf.App().Location(), engine, store, client)
	opsServer := ops.NewServer(conf.Ops())

	logger.Info("Bot init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		scheduler.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		if err := opsServer.Run(ctx); err != nil {
			logger.Error("ops server failed", zap.Error(err))
		}
	}()

	client.ListenUpdates(ctx, msgService)
	wg.Wait()
}

type calendarRenderer interface {
	Render(day string, descriptions []string) ([]byte, error)
}

func newRenderer(conf *config.Service) (calendarRenderer, error) {
	renderer, err := calendar.NewRenderer(conf.Calendar())
	if err != nil {
		return nil, err
	}
	if !conf.Memcached().Enabled() {
		return renderer, nil
	}
	mc, err := cache.NewMemcache(conf.Memcached())
	if err != nil {
		logger.Warn("memcached unavailable, calendar cache disabled", zap.Error(err))
		return renderer, nil
	}
	return calendar.NewCachedRenderer(renderer, mc), nil
}
