package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/storefront/config"
	cachemem "github.com/Gunvolt24/storefront/internal/cache/memory"
	"github.com/Gunvolt24/storefront/internal/graphql"
	"github.com/Gunvolt24/storefront/internal/kafka"
	"github.com/Gunvolt24/storefront/internal/messaging"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/internal/repo/postgres"
	"github.com/Gunvolt24/storefront/internal/session"
	rest "github.com/Gunvolt24/storefront/internal/transport/http"
	"github.com/Gunvolt24/storefront/internal/usecase"
	"github.com/Gunvolt24/storefront/pkg/httpx"
	"github.com/Gunvolt24/storefront/pkg/logger"
	"github.com/Gunvolt24/storefront/pkg/metrics"
	"github.com/Gunvolt24/storefront/pkg/telemetry"
	"github.com/Gunvolt24/storefront/pkg/validate"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer).
type App struct {
	Logger        ports.Logger          // логгер
	HTTPServer    *http.Server          // HTTP-сервер
	MetricsServer *http.Server          // отдельный /metrics; nil — только на основном роутере
	KafkaConsumer ports.MessageConsumer // консьюмер событий каталога; nil — выключен
	// Drain — остановка сессий и клиента API после HTTP-сервера, в порядке добавления.
	Drain           []func()
	gracefulTimeout time.Duration // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}
	closeLogger := func() {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	links, err := messaging.NewLinkBuilder(messaging.LinkOptions{
		BaseURL:    cfg.Messaging.BaseURL,
		Phone:      cfg.Messaging.Phone,
		Origin:     cfg.Messaging.Origin,
		OrderRoute: cfg.Messaging.OrderRoute,
	})
	if err != nil {
		closeLogger()
		return nil, func() {}, err
	}

	// Пул подключений Postgres и миграции архива заказов.
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		closeLogger()
		return nil, func() {}, err
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		closeLogger()
		return nil, func() {}, err
	}

	// Трейсинг OTEL; при выключенной конфигурации — только пропагаторы.
	shutdownTrace, err := telemetry.SetupTracing(ctx, telemetry.Options{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		logg.Warnf(ctx, "failed to setup tracing: %v", err)
		shutdownTrace = func(context.Context) error { return nil }
	} else if cfg.Tracing.Enabled {
		logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
			cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
	}

	// Архив заказов.
	orderCache := cachemem.NewOrderCache(cfg.Cache.Capacity, cfg.Cache.TTL)
	orderRepo := postgres.NewOrderRepository(pool)
	orderService := usecase.NewOrderService(orderRepo, orderCache, logg)

	// Прогрев кэша
	if n := cfg.Cache.WarmUpN; n > 0 {
		if err := orderService.WarmUpCache(ctx, n); err != nil {
			logg.Warnf(ctx, "warm-up cache failed: %v", err)
		}
	}

	// Клиент удалённого GraphQL API.
	client := graphql.NewClient(graphql.Options{
		Endpoint:      cfg.API.Endpoint,
		Timeout:       cfg.API.Timeout,
		RetryAttempts: cfg.API.RetryAttempts,
		RetryInitial:  cfg.API.RetryInitial,
		RetryMax:      cfg.API.RetryMax,
		PageCapacity:  cfg.Cache.PageCapacity,
		PageTTL:       cfg.Cache.PageTTL,
	}, logg)

	// Наблюдатели оформленного заказа: архив и (опционально) публикация в Kafka.
	observers := []ports.OrderObserver{orderService}
	var publisher *messaging.KafkaPublisher
	if cfg.Messaging.Publish {
		publisher = messaging.NewKafkaPublisher(cfg.Messaging.Brokers, cfg.Messaging.Topic, links, logg)
		observers = append(observers, publisher)
	}

	// Подписки сессий живут дольше ctx запуска и гасятся в Drain.
	sessionsCtx, stopSessions := context.WithCancel(context.WithoutCancel(ctx))
	registry := session.NewRegistry(sessionsCtx, session.Deps{
		Querier:   client,
		Orders:    client,
		Observers: observers,
		Log:       logg,
	}, cfg.Session.MaxOpen)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(rest.Deps{
		Sessions: registry,
		Orders:   orderService,
		Products: usecase.NewProductService(client, validate.NewProductValidator(), logg),
		Links:    links,
	}, logg, cfg.HTTP.HandlerTimeout, rest.Limits{
		DefaultLimit: cfg.Listing.DefaultLimit,
		MaxLimit:     cfg.Listing.MaxLimit,
	})
	router := rest.NewRouter(httpHandler, "./web", otelServiceName, httpx.CORS(cfg.HTTP.CORSOrigins))

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		MetricsServer:   newMetricsServer(cfg.Metrics.Addr, cfg.HTTP.Addr),
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
		Drain: []func(){
			registry.CloseAll,
			stopSessions,
			client.Close,
		},
	}

	// Консьюмер событий каталога: инвалидация живых запросов.
	var consumer *kafka.Consumer
	if cfg.Kafka.Enabled {
		kafkaCfg := kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.Topic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}
		consumer = kafka.NewConsumer(&kafkaCfg, usecase.NewCatalogService(client, logg), logg)
		app.KafkaConsumer = consumer
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if consumer != nil {
			if err := consumer.Close(); err != nil {
				logg.Warnf(ctx, "kafka consumer close error: %v", err)
			}
		}
		if publisher != nil {
			if err := publisher.Close(); err != nil {
				logg.Warnf(ctx, "kafka publisher close error: %v", err)
			}
		}
		pool.Close()
		closeLogger()
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	// Запуск консьюмера.
	if a.KafkaConsumer != nil {
		go func() {
			a.Logger.Infof(ctx, "kafka consumer starting")
			if err := a.KafkaConsumer.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	if a.MetricsServer != nil {
		go func() {
			a.Logger.Infof(ctx, "metrics server starting (addr=%s)", a.MetricsServer.Addr)
			if err := a.MetricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.Logger.Warnf(ctx, "metrics server stopped: %v", err)
			}
		}()
	}

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	if a.MetricsServer != nil {
		if err := a.MetricsServer.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "metrics server shutdown failed: %v", err)
		}
	}

	// Остановка Kafka-консьюмера
	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}

	// Сессии: отписка листингов и ожидание наблюдателей оформленных заказов.
	for _, fn := range a.Drain {
		fn()
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}

// newMetricsServer — отдельный listener для Prometheus, если адрес задан и не совпадает с основным.
func newMetricsServer(addr, httpAddr string) *http.Server {
	if addr == "" || addr == httpAddr {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
