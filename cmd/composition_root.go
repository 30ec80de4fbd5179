package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/kafka"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/rabbitmq"
	redisadapter "logistics/internal/adapters/out/redis"
	"logistics/internal/core/application/dispatch"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	redisNamespace = "logistics"

	// driverStatusSyncTTL matches the default coverage poll interval.
	driverStatusSyncTTL = 30 * time.Second
)

// Runner is a background loop started by main. It returns when ctx is done.
type Runner struct {
	Name string
	Run  func(ctx context.Context) error
}

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	clock      kernel.Clock
	uowFactory *postgres.GormUnitOfWorkFactory

	caps         ports.Capabilities
	cache        *redisadapter.DriverStatusCache
	publisher    ports.EventPublisher
	board        *dispatch.Board
	orchestrator *dispatch.Orchestrator
	notifier     commands.Notifier

	runners []Runner
	closers []io.Closer
}

// NewCompositionRoot connects the optional infrastructure (Redis, event bus)
// and builds the coverage loop. Close releases what it opened.
func NewCompositionRoot(ctx context.Context, cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		logger:     logger,
		clock:      kernel.SystemClock{},
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		caps:       postgres.NewCapabilities(gormDB),
		board:      dispatch.NewBoard(),
	}

	if err := c.connectRedis(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}

	orchestrator, err := dispatch.NewOrchestrator(c.caps, c.board, c.clock, logger)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.orchestrator = orchestrator
	c.runners = append(c.runners, Runner{Name: "dispatch-orchestrator", Run: orchestrator.Run})

	if err = c.connectEventBus(); err != nil {
		_ = c.Close()
		return nil, err
	}
	c.notifier = commands.NewNotifier(c.publisher, orchestrator, logger)

	listener := postgres.NewChangeListener(cfg.DSN(), orchestrator, logger)
	c.runners = append(c.runners, Runner{Name: "postgres-listener", Run: listener.Run})

	return c, nil
}

func (c *CompositionRoot) connectRedis(ctx context.Context) error {
	if c.cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: c.cfg.RedisAddr})
	c.closers = append(c.closers, client)
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis %s: %w", c.cfg.RedisAddr, err)
	}

	load := c.caps.ListDriverStatuses
	cache := redisadapter.NewDriverStatusCache(client, redisNamespace)
	synced, err := cache.Resync(ctx, load, driverStatusSyncTTL)
	if err != nil {
		return fmt.Errorf("sync driver status cache: %w", err)
	}
	c.logger.Info("driver status cache ready", "addr", c.cfg.RedisAddr, "drivers", synced)

	c.cache = cache
	c.caps = c.caps.Merge(cache.Capabilities(load, driverStatusSyncTTL))
	return nil
}

func (c *CompositionRoot) connectEventBus() error {
	bus, err := c.cfg.Bus()
	if err != nil {
		return err
	}

	switch bus {
	case EventBusKafka:
		brokers := c.cfg.KafkaBrokers()
		publisher, err := kafka.NewOrderEventPublisher(brokers, c.cfg.KafkaOrderChangedTopic, c.logger)
		if err != nil {
			return fmt.Errorf("create kafka producer: %w", err)
		}
		c.publisher = publisher
		c.closers = append(c.closers, publisher)

		consumer, err := kafka.NewOrderEventConsumer(brokers, c.cfg.KafkaConsumerGroup, c.cfg.KafkaOrderChangedTopic, c.orchestrator, c.logger)
		if err != nil {
			return fmt.Errorf("create kafka consumer: %w", err)
		}
		c.runners = append(c.runners, Runner{Name: "kafka-consumer", Run: consumer.Run})

	case EventBusRabbitMQ:
		client, err := rabbitmq.Dial(c.cfg.RabbitMQURL, c.cfg.RabbitMQExchange)
		if err != nil {
			return fmt.Errorf("connect rabbitmq: %w", err)
		}
		c.closers = append(c.closers, client)

		publisher, err := rabbitmq.NewOrderEventPublisher(client, c.logger)
		if err != nil {
			return fmt.Errorf("create rabbitmq publisher: %w", err)
		}
		// Closed before the connection.
		c.closers = append(c.closers, publisher)
		c.publisher = publisher

		consumer := rabbitmq.NewOrderEventConsumer(client, c.orchestrator, c.logger)
		c.runners = append(c.runners, Runner{Name: "rabbitmq-consumer", Run: consumer.Run})
	}

	c.logger.Info("event bus selected", "bus", bus)
	return nil
}

// Runners returns the background loops to start.
func (c *CompositionRoot) Runners() []Runner {
	return c.runners
}

// Orchestrator returns the coverage refresh loop.
func (c *CompositionRoot) Orchestrator() *dispatch.Orchestrator {
	return c.orchestrator
}

// Close releases connections in reverse order of creation.
func (c *CompositionRoot) Close() error {
	var errList []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			errList = append(errList, err)
		}
	}
	c.closers = nil
	return errors.Join(errList...)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock, c.notifier)
}

func (c *CompositionRoot) CreatePerformOrderActionCommandHandler() commands.PerformOrderActionCommandHandler {
	return commands.NewPerformOrderActionCommandHandler(c.orderUoWFactory(), c.clock, c.notifier)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.orderUoWFactory(), c.clock, c.notifier)
}

func (c *CompositionRoot) CreateUpdateOrderItemsCommandHandler() commands.UpdateOrderItemsCommandHandler {
	return commands.NewUpdateOrderItemsCommandHandler(c.orderUoWFactory(), c.clock, c.notifier)
}

func (c *CompositionRoot) CreateSetDriverStatusCommandHandler() commands.SetDriverStatusCommandHandler {
	if c.cache == nil {
		return commands.NewSetDriverStatusCommandHandler(c.driverUoWFactory(), nil, c.clock, c.notifier, c.logger)
	}
	return commands.NewSetDriverStatusCommandHandler(c.driverUoWFactory(), c.cache, c.clock, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateGetCoverageQueryHandler() queries.GetCoverageQueryHandler {
	return queries.NewGetCoverageQueryHandler(c.orchestrator)
}

func (c *CompositionRoot) CreateGetOutstandingOrdersQueryHandler() queries.GetOutstandingOrdersQueryHandler {
	return queries.NewGetOutstandingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetEscalatedOrdersQueryHandler() queries.GetEscalatedOrdersQueryHandler {
	return queries.NewGetEscalatedOrdersQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.caps)
}

// CreateHTTPHandlers bundles every use case the API serves.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		PerformOrderAction:   c.CreatePerformOrderActionCommandHandler(),
		TransitionOrder:      c.CreateTransitionOrderCommandHandler(),
		UpdateOrderItems:     c.CreateUpdateOrderItemsCommandHandler(),
		SetDriverStatus:      c.CreateSetDriverStatusCommandHandler(),
		GetCoverage:          c.CreateGetCoverageQueryHandler(),
		GetOutstandingOrders: c.CreateGetOutstandingOrdersQueryHandler(),
		GetEscalatedOrders:   c.CreateGetEscalatedOrdersQueryHandler(),
		GetOrder:             c.CreateGetOrderQueryHandler(),
		Loop:                 c.orchestrator,
		Dashboard:            c.board,
		Setup:                postgres.NewSetupStore(c.gormDB),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.Schedules{
			CoverageRefresh: c.cfg.CoveragePollSchedule,
			EscalationScan:  c.cfg.EscalationScanSchedule,
		},
		c.orchestrator,
		c.CreateGetEscalatedOrdersQueryHandler(),
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}
