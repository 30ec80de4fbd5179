package commands_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	now   = time.Date(2025, 4, 2, 10, 30, 0, 0, time.UTC)
	clock = kernel.FixedClock(now)
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id string) (order.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(order.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) ListStatuses(ctx context.Context) ([]driver.StatusRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]driver.StatusRecord), args.Error(1)
}

func (m *MockDriverRepository) SaveStatus(ctx context.Context, rec driver.StatusRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockDriverRepository) ListZoneAssignments(ctx context.Context, activeOnly bool) ([]driver.ZoneAssignment, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]driver.ZoneAssignment), args.Error(1)
}

func (m *MockDriverRepository) ListInventory(ctx context.Context, driverIDs []string) ([]driver.InventoryRecord, error) {
	args := m.Called(ctx, driverIDs)
	return args.Get(0).([]driver.InventoryRecord), args.Error(1)
}

type MockDriverUoW struct{ mock.Mock }

func (m *MockDriverUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDriverUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDriverUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDriverUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockTrigger struct{ mock.Mock }

func (m *MockTrigger) Trigger(reason ports.RefreshReason) {
	m.Called(reason)
}

type MockStatusCache struct{ mock.Mock }

func (m *MockStatusCache) Save(ctx context.Context, rec driver.StatusRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockStatusCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// orderUoW wires a repository into a unit of work that expects one transaction.
func orderUoW(repo *MockOrderRepository) (*MockOrderUoWFactory, *MockOrderUoW) {
	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Maybe()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow
}

var happyPath = []order.Status{
	order.Confirmed, order.Preparing, order.ReadyForPickup, order.Assigned,
	order.PickedUp, order.InTransit, order.Delivered,
}

// storedOrder builds an order and walks it along the happy path until it reaches target.
// Failed and Cancelled are reached from InTransit and Pending.
func storedOrder(t *testing.T, target order.Status, driverID string) order.Order {
	t.Helper()
	coords, err := kernel.NewCoordinates(31.25, 34.79)
	require.NoError(t, err)

	o, err := order.NewOrder(order.NewOrderParams{
		ID:         "7f1d0c7e-0000-4000-8000-000000000001",
		BusinessID: "biz-1",
		Customer: order.Customer{
			Name: "Rina", Phone: "052",
			Address: kernel.NewAddress("12 Rager Blvd", "Beer Sheva", &coords),
		},
		Items:     []order.Item{{ProductID: "p1", Quantity: 2, UnitPrice: 1000}},
		ZoneID:    "south",
		CreatedBy: "manager-1",
		CreatedAt: now.Add(-time.Hour),
	})
	require.NoError(t, err)

	walk := func(to order.Status) {
		for _, next := range happyPath {
			if o.Status() == to {
				return
			}
			if next == order.Assigned {
				o, err = o.AssignDriver(driverID, "Avi", "dispatcher-1", now.Add(-time.Hour))
			} else {
				o, err = o.UpdateStatus(next, "manager-1", "", now.Add(-time.Hour))
			}
			require.NoError(t, err)
		}
	}

	switch target {
	case order.Pending:
	case order.Cancelled:
		o, err = o.UpdateStatus(order.Cancelled, "manager-1", "", now.Add(-time.Hour))
		require.NoError(t, err)
	case order.Failed:
		walk(order.InTransit)
		o, err = o.UpdateStatus(order.Failed, driverID, "", now.Add(-time.Hour))
		require.NoError(t, err)
	default:
		walk(target)
	}
	require.Equal(t, target, o.Status())
	return o
}
