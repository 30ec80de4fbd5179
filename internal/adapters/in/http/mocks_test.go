package http

import (
	"context"

	"logistics/internal/core/application/dispatch"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreateOrderResult), args.Error(1)
}

type MockPerformOrderActionHandler struct{ mock.Mock }

func (m *MockPerformOrderActionHandler) Handle(ctx context.Context, cmd commands.PerformOrderActionCommand) (order.Order, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(order.Order), args.Error(1)
}

type MockSetDriverStatusHandler struct{ mock.Mock }

func (m *MockSetDriverStatusHandler) Handle(ctx context.Context, cmd commands.SetDriverStatusCommand) (driver.StatusRecord, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(driver.StatusRecord), args.Error(1)
}

type MockGetCoverageHandler struct{ mock.Mock }

func (m *MockGetCoverageHandler) Handle(ctx context.Context, query queries.GetCoverageQuery) (dispatch.CoverageResult, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(dispatch.CoverageResult), args.Error(1)
}

type MockGetOutstandingOrdersHandler struct{ mock.Mock }

func (m *MockGetOutstandingOrdersHandler) Handle(ctx context.Context, query queries.GetOutstandingOrdersQuery) ([]queries.OrderSummary, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.OrderSummary), args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderQueryResponse), args.Error(1)
}

type MockRefreshLoop struct{ mock.Mock }

func (m *MockRefreshLoop) Trigger(reason ports.RefreshReason) {
	m.Called(reason)
}

func (m *MockRefreshLoop) Stats() dispatch.Stats {
	args := m.Called()
	return args.Get(0).(dispatch.Stats)
}

type MockDashboardReader struct{ mock.Mock }

func (m *MockDashboardReader) Latest() (dispatch.Refresh, bool) {
	args := m.Called()
	return args.Get(0).(dispatch.Refresh), args.Bool(1)
}

type MockSetupStore struct{ mock.Mock }

func (m *MockSetupStore) SaveZone(ctx context.Context, z zone.Zone) error {
	return m.Called(ctx, z).Error(0)
}

func (m *MockSetupStore) AssignZone(ctx context.Context, a driver.ZoneAssignment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockSetupStore) SetInventory(ctx context.Context, rec driver.InventoryRecord) error {
	return m.Called(ctx, rec).Error(0)
}
