package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"logistics/internal/core/application/dispatch"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/role"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	assert.ErrorIs(t, queries.GetOutstandingOrdersQuery{}.Validate(), queries.ErrGetOutstandingOrdersQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetEscalatedOrdersQuery{}.Validate(), queries.ErrGetEscalatedOrdersQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetCoverageQuery{}.Validate(), queries.ErrGetCoverageQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("role is optional", func(t *testing.T) {
		q, err := queries.NewGetOrderQuery("o-1", "")

		require.NoError(t, err)
		assert.Equal(t, role.Unknown, q.Role())
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery("o-1", "pilot")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("order id is required", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(" ", "admin")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

type MockOrderGetter struct{ mock.Mock }

func (m *MockOrderGetter) GetOrder(ctx context.Context, id string) (order.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(order.Order), args.Error(1)
}

func readyOrder(t *testing.T) order.Order {
	t.Helper()
	at := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(order.NewOrderParams{ID: "o-1", BusinessID: "biz-1", CreatedBy: "manager-1", CreatedAt: at})
	require.NoError(t, err)
	for _, st := range []order.Status{order.Confirmed, order.Preparing, order.ReadyForPickup} {
		o, err = o.UpdateStatus(st, "manager-1", "", at)
		require.NoError(t, err)
	}
	return o
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	t.Run("resolves actions for the role", func(t *testing.T) {
		getter := new(MockOrderGetter)
		getter.On("GetOrder", mock.Anything, "o-1").Return(readyOrder(t), nil).Once()
		q, err := queries.NewGetOrderQuery("o-1", "manager")
		require.NoError(t, err)

		res, err := queries.NewGetOrderQueryHandler(getter).Handle(t.Context(), q)

		require.NoError(t, err)
		assert.Equal(t, []services.Action{services.ActionCancel, services.ActionAssignDriver}, res.Actions)
		assert.Equal(t, order.ReadyForPickup, res.Order.Status())
	})

	t.Run("no role means no actions", func(t *testing.T) {
		getter := new(MockOrderGetter)
		getter.On("GetOrder", mock.Anything, "o-1").Return(readyOrder(t), nil).Once()
		q, err := queries.NewGetOrderQuery("o-1", "")
		require.NoError(t, err)

		res, err := queries.NewGetOrderQueryHandler(getter).Handle(t.Context(), q)

		require.NoError(t, err)
		assert.Nil(t, res.Actions)
	})

	t.Run("role without actions gets an empty list", func(t *testing.T) {
		getter := new(MockOrderGetter)
		getter.On("GetOrder", mock.Anything, "o-1").Return(readyOrder(t), nil).Once()
		q, err := queries.NewGetOrderQuery("o-1", "sales")
		require.NoError(t, err)

		res, err := queries.NewGetOrderQueryHandler(getter).Handle(t.Context(), q)

		require.NoError(t, err)
		assert.NotNil(t, res.Actions)
		assert.Empty(t, res.Actions)
	})

	t.Run("store errors pass through", func(t *testing.T) {
		getter := new(MockOrderGetter)
		getter.On("GetOrder", mock.Anything, "o-1").
			Return(order.Order{}, errs.NewObjectNotFoundError("order", "o-1")).Once()
		q, err := queries.NewGetOrderQuery("o-1", "admin")
		require.NoError(t, err)

		_, err = queries.NewGetOrderQueryHandler(getter).Handle(t.Context(), q)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

type MockCoverageSource struct{ mock.Mock }

func (m *MockCoverageSource) GetCoverage(ctx context.Context) (dispatch.CoverageResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(dispatch.CoverageResult), args.Error(1)
}

func TestGetCoverageQueryHandler_Handle(t *testing.T) {
	t.Run("returns the computed coverage", func(t *testing.T) {
		at := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)
		source := new(MockCoverageSource)
		source.On("GetCoverage", mock.Anything).Return(dispatch.CoverageResult{ComputedAt: at}, nil).Once()

		res, err := queries.NewGetCoverageQueryHandler(source).Handle(t.Context(), queries.NewGetCoverageQuery())

		require.NoError(t, err)
		assert.Equal(t, at, res.ComputedAt)
	})

	t.Run("store errors pass through", func(t *testing.T) {
		source := new(MockCoverageSource)
		source.On("GetCoverage", mock.Anything).
			Return(dispatch.CoverageResult{}, errors.Join(errors.New("list zones"), errs.NewCapabilityUnavailableError("list_zones"))).Once()

		_, err := queries.NewGetCoverageQueryHandler(source).Handle(t.Context(), queries.NewGetCoverageQuery())

		require.ErrorIs(t, err, errs.ErrCapabilityUnavailable)
	})

	t.Run("unconstructed query is refused", func(t *testing.T) {
		source := new(MockCoverageSource)

		_, err := queries.NewGetCoverageQueryHandler(source).Handle(t.Context(), queries.GetCoverageQuery{})

		require.ErrorIs(t, err, queries.ErrGetCoverageQueryIsNotConstructed)
		source.AssertNotCalled(t, "GetCoverage", mock.Anything)
	})
}
