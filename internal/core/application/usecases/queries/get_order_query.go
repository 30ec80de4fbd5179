package queries

import (
	"context"
	"errors"
	"strings"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/role"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery loads one order and, when a role is given, the actions that role may take on it.
//
// Example:
//
//	query, err := NewGetOrderQuery(id, "dispatcher")
//	if err != nil {
//	    return err
//	}
//	res, err := handler.Handle(ctx, query)
//	// res.Actions == [assign_driver cancel] for a ready_for_pickup order viewed by a manager
type GetOrderQuery struct {
	orderID string
	role    role.Role

	guard guard.ConstructorGuard
}

// NewGetOrderQuery parses the optional role. An empty roleName skips action resolution.
func NewGetOrderQuery(orderID, roleName string) (GetOrderQuery, error) {
	q := GetOrderQuery{
		orderID: strings.TrimSpace(orderID),
		guard:   guard.NewConstructorGuard(),
	}
	if q.orderID == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("order id")
	}
	if roleName != "" {
		r, err := role.Parse(roleName)
		if err != nil {
			return GetOrderQuery{}, err
		}
		q.role = r
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() string { return q.orderID }
func (q GetOrderQuery) Role() role.Role { return q.role }

// GetOrderQueryResponse is the order with the actions on offer.
// Actions is nil when no role was given and empty when the role has nothing to do.
type GetOrderQueryResponse struct {
	Order   order.Order
	Actions []services.Action
}

type orderGetter interface {
	GetOrder(ctx context.Context, id string) (order.Order, error)
}

// GetOrderQueryHandler reads through the capability store.
type GetOrderQueryHandler struct {
	orders   orderGetter
	resolver services.ActionResolver
}

// NewGetOrderQueryHandler creates the handler.
func NewGetOrderQueryHandler(orders orderGetter) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orders:   orders,
		resolver: services.NewActionResolver(),
	}
}

// Handle returns ObjectNotFoundError for unknown ids.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, err := h.orders.GetOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	res := GetOrderQueryResponse{Order: o}
	if query.Role() != role.Unknown {
		res.Actions = h.resolver.AvailableActions(o, query.Role())
	}
	return res, nil
}
