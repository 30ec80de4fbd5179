package commands_test

import (
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/role"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewPerformOrderActionCommand(t *testing.T) {
	t.Run("should parse role and action", func(t *testing.T) {
		cmd, err := commands.NewPerformOrderActionCommand(commands.PerformOrderActionParams{
			OrderID: "o-1", Role: "business_owner", Action: "confirm", ActorID: "owner-1",
		})

		require.NoError(t, err)
		assert.Equal(t, role.BusinessOwner, cmd.Role())
		assert.Equal(t, services.ActionConfirm, cmd.Action())
	})

	t.Run("assign_driver should require a driver id", func(t *testing.T) {
		_, err := commands.NewPerformOrderActionCommand(commands.PerformOrderActionParams{
			OrderID: "o-1", Role: "dispatcher", Action: "assign_driver", ActorID: "dispatcher-1",
		})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "driver id")
	})

	t.Run("should reject unknown role and action", func(t *testing.T) {
		_, err := commands.NewPerformOrderActionCommand(commands.PerformOrderActionParams{
			OrderID: "o-1", Role: "janitor", Action: "teleport", ActorID: "x",
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func actionCmd(t *testing.T, p commands.PerformOrderActionParams) commands.PerformOrderActionCommand {
	t.Helper()
	cmd, err := commands.NewPerformOrderActionCommand(p)
	require.NoError(t, err)
	return cmd
}

func TestPerformOrderActionCommandHandler_Handle(t *testing.T) {
	t.Run("manager confirms a pending order", func(t *testing.T) {
		current := storedOrder(t, order.Pending, "")
		repo := new(MockOrderRepository)
		factory, uow := orderUoW(repo)
		repo.On("Get", mock.Anything, current.ID()).Return(current, nil).Once()
		repo.On("Update", mock.Anything, mock.MatchedBy(func(o order.Order) bool {
			return o.Status() == order.Confirmed && o.UpdatedBy() == "manager-2"
		})).Return(nil).Once()
		uow.On("Commit", mock.Anything).Return(nil).Once()
		trigger := new(MockTrigger)
		trigger.On("Trigger", ports.RefreshOrderChanged).Once()

		h := commands.NewPerformOrderActionCommandHandler(factory, clock, commands.NewNotifier(nil, trigger, nil))
		got, err := h.Handle(t.Context(), actionCmd(t, commands.PerformOrderActionParams{
			OrderID: current.ID(), Role: "manager", Action: "confirm", ActorID: "manager-2",
		}))

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, got.Status())
		assert.Equal(t, now, got.UpdatedAt())
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
		trigger.AssertExpectations(t)
	})

	t.Run("dispatcher assigns a driver", func(t *testing.T) {
		current := storedOrder(t, order.ReadyForPickup, "")
		repo := new(MockOrderRepository)
		factory, uow := orderUoW(repo)
		repo.On("Get", mock.Anything, current.ID()).Return(current, nil).Once()
		repo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
		uow.On("Commit", mock.Anything).Return(nil).Once()

		h := commands.NewPerformOrderActionCommandHandler(factory, clock, commands.NewNotifier(nil, nil, nil))
		got, err := h.Handle(t.Context(), actionCmd(t, commands.PerformOrderActionParams{
			OrderID: current.ID(), Role: "dispatcher", Action: "assign_driver", ActorID: "dispatcher-1",
			DriverID: "D1", DriverName: "Avi",
		}))

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, got.Status())
		assert.Equal(t, "D1", got.Delivery().DriverID)
		assert.Equal(t, "Avi", got.Delivery().DriverName)
	})

	t.Run("driver completes with proof of delivery", func(t *testing.T) {
		current := storedOrder(t, order.InTransit, "D1")
		repo := new(MockOrderRepository)
		factory, uow := orderUoW(repo)
		repo.On("Get", mock.Anything, current.ID()).Return(current, nil).Once()
		repo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
		uow.On("Commit", mock.Anything).Return(nil).Once()
		publisher := new(MockPublisher)
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e ports.OrderEvent) bool {
			return e.Type == ports.OrderStatusChanged && e.Status == "delivered" && e.DriverID == "D1"
		})).Return(nil).Once()

		h := commands.NewPerformOrderActionCommandHandler(factory, clock, commands.NewNotifier(publisher, nil, nil))
		got, err := h.Handle(t.Context(), actionCmd(t, commands.PerformOrderActionParams{
			OrderID: current.ID(), Role: "driver", Action: "complete", ActorID: "D1",
			Proof: &order.ProofOfDelivery{ReceivedBy: "Rina", Notes: "left at door"},
		}))

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, got.Status())
		require.NotNil(t, got.Delivery().Proof)
		assert.Equal(t, "Rina", got.Delivery().Proof.ReceivedBy)
		require.NotNil(t, got.Delivery().DeliveredAt)
		assert.Equal(t, now, *got.Delivery().DeliveredAt)
		publisher.AssertExpectations(t)
	})

	t.Run("action not on offer is refused", func(t *testing.T) {
		current := storedOrder(t, order.Pending, "")
		repo := new(MockOrderRepository)
		factory, uow := orderUoW(repo)
		repo.On("Get", mock.Anything, current.ID()).Return(current, nil).Once()

		h := commands.NewPerformOrderActionCommandHandler(factory, clock, commands.NewNotifier(nil, nil, nil))
		_, err := h.Handle(t.Context(), actionCmd(t, commands.PerformOrderActionParams{
			OrderID: current.ID(), Role: "sales", Action: "confirm", ActorID: "sales-1",
		}))

		require.ErrorIs(t, err, errs.ErrInvalidPrecondition)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("driver cannot act on another driver's order", func(t *testing.T) {
		current := storedOrder(t, order.Assigned, "D1")
		repo := new(MockOrderRepository)
		factory, _ := orderUoW(repo)
		repo.On("Get", mock.Anything, current.ID()).Return(current, nil).Once()

		h := commands.NewPerformOrderActionCommandHandler(factory, clock, commands.NewNotifier(nil, nil, nil))
		_, err := h.Handle(t.Context(), actionCmd(t, commands.PerformOrderActionParams{
			OrderID: current.ID(), Role: "driver", Action: "pickup", ActorID: "D2",
		}))

		require.ErrorIs(t, err, errs.ErrInvalidPrecondition)
		assert.Contains(t, err.Error(), "another driver")
	})

	t.Run("missing order is reported", func(t *testing.T) {
		repo := new(MockOrderRepository)
		factory, _ := orderUoW(repo)
		repo.On("Get", mock.Anything, "missing").
			Return(order.Order{}, errs.NewObjectNotFoundError("order", "missing")).Once()

		h := commands.NewPerformOrderActionCommandHandler(factory, clock, commands.NewNotifier(nil, nil, nil))
		_, err := h.Handle(t.Context(), actionCmd(t, commands.PerformOrderActionParams{
			OrderID: "missing", Role: "admin", Action: "cancel", ActorID: "admin-1",
		}))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("commit failure is returned", func(t *testing.T) {
		current := storedOrder(t, order.Confirmed, "")
		repo := new(MockOrderRepository)
		factory, uow := orderUoW(repo)
		repo.On("Get", mock.Anything, current.ID()).Return(current, nil).Once()
		repo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
		uow.On("Commit", mock.Anything).Return(errors.New("commit error")).Once()
		trigger := new(MockTrigger)

		h := commands.NewPerformOrderActionCommandHandler(factory, clock, commands.NewNotifier(nil, trigger, nil))
		_, err := h.Handle(t.Context(), actionCmd(t, commands.PerformOrderActionParams{
			OrderID: current.ID(), Role: "admin", Action: "cancel", ActorID: "admin-1",
		}))

		require.EqualError(t, err, "commit error")
		trigger.AssertNotCalled(t, "Trigger", mock.Anything)
	})
}
