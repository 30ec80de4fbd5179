package http

import (
	"errors"
	"net/http"

	"logistics/internal/adapters/in/http/servers"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetOrders handles GET /api/v1/orders - lists outstanding orders.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	query := queries.NewGetOutstandingOrdersQuery(deref(params.BusinessId), deref(params.ZoneId))

	rows, err := s.h.GetOutstandingOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve orders")
	}

	response := make([]servers.OrderSummary, len(rows))
	for i, row := range rows {
		response[i] = servers.OrderSummary{
			CreatedAt:   row.CreatedAt,
			DriverId:    optional(row.DriverID),
			DriverName:  optional(row.DriverName),
			Id:          row.ID,
			OrderNumber: row.OrderNumber,
			Priority:    servers.Priority(row.Priority),
			Status:      servers.OrderStatus(row.Status),
			Total:       row.Total,
			ZoneId:      optional(row.ZoneID),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - submits a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	customer, err := fromCustomer(body.Customer)
	if err != nil {
		return s.fail(ctx, err, "Invalid order data")
	}

	params := commands.CreateOrderParams{
		OrderID:     deref(body.Id),
		BusinessID:  body.BusinessId,
		OrderNumber: deref(body.OrderNumber),
		Customer:    customer,
		Items:       fromItems(body.Items),
		ZoneID:      deref(body.ZoneId),
		Discount:    derefInt(body.Discount),
		Tax:         derefInt(body.Tax),
		DeliveryFee: derefInt(body.DeliveryFee),
		Notes:       deref(body.Notes),
		CreatedBy:   body.CreatedBy,
	}
	if body.PaymentMethod != nil {
		params.PaymentMethod = string(*body.PaymentMethod)
	}
	if body.Priority != nil {
		params.Priority = string(*body.Priority)
	}

	cmd, err := commands.NewCreateOrderCommand(params)
	if err != nil {
		return s.fail(ctx, err, "Invalid order data")
	}

	res, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	var rejected *commands.SubmissionRejectedError
	if errors.As(err, &rejected) {
		return ctx.JSON(http.StatusUnprocessableEntity, servers.ValidationError{
			Code:     http.StatusUnprocessableEntity,
			Message:  "Order failed submission checks",
			Errors:   rejected.Result.Errors,
			Warnings: rejected.Result.Warnings,
		})
	}
	if err != nil {
		return s.fail(ctx, err, "Failed to create order")
	}

	warnings := res.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return ctx.JSON(http.StatusCreated, servers.CreatedOrder{
		Order:    toOrder(res.Order),
		Warnings: warnings,
	})
}

// GetEscalatedOrders handles GET /api/v1/orders/escalations.
func (s *Server) GetEscalatedOrders(ctx echo.Context, params servers.GetEscalatedOrdersParams) error {
	query := queries.NewGetEscalatedOrdersQuery(deref(params.BusinessId))

	rows, err := s.h.GetEscalatedOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve escalated orders")
	}

	response := make([]servers.EscalatedOrder, len(rows))
	for i, row := range rows {
		reasons := make([]string, len(row.Reasons))
		for j, r := range row.Reasons {
			reasons[j] = string(r)
		}
		response[i] = servers.EscalatedOrder{
			AgeMinutes:  row.AgeMinutes,
			Id:          row.ID,
			OrderNumber: row.OrderNumber,
			Priority:    servers.Priority(row.Priority),
			Reasons:     reasons,
			Status:      servers.OrderStatus(row.Status),
			ZoneId:      optional(row.ZoneID),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id string, params servers.GetOrderParams) error {
	var roleName string
	if params.Role != nil {
		roleName = string(*params.Role)
	}

	query, err := queries.NewGetOrderQuery(id, roleName)
	if err != nil {
		return s.fail(ctx, err, "Invalid order query")
	}

	res, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve order")
	}

	response := servers.OrderDetails{Order: toOrder(res.Order)}
	if res.Actions != nil {
		actions := toActions(res.Actions)
		response.Actions = &actions
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderActions handles GET /api/v1/orders/{id}/actions.
func (s *Server) GetOrderActions(ctx echo.Context, id string, params servers.GetOrderActionsParams) error {
	query, err := queries.NewGetOrderQuery(id, string(params.Role))
	if err != nil {
		return s.fail(ctx, err, "Invalid order query")
	}

	res, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, servers.OrderActions{
		Actions: toActions(res.Actions),
		OrderId: res.Order.ID(),
		Role:    params.Role,
	})
}

// PerformOrderAction handles POST /api/v1/orders/{id}/actions.
func (s *Server) PerformOrderAction(ctx echo.Context, id string) error {
	var body servers.PerformOrderActionJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewPerformOrderActionCommand(commands.PerformOrderActionParams{
		OrderID:    id,
		Role:       string(body.Role),
		Action:     string(body.Action),
		ActorID:    body.ActorId,
		Notes:      deref(body.Notes),
		DriverID:   deref(body.DriverId),
		DriverName: deref(body.DriverName),
		Proof:      fromProof(body.Proof),
	})
	if err != nil {
		return s.fail(ctx, err, "Invalid action request")
	}

	o, err := s.h.PerformOrderAction.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to perform action")
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// TransitionOrder handles POST /api/v1/orders/{id}/transitions.
func (s *Server) TransitionOrder(ctx echo.Context, id string) error {
	var body servers.TransitionOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewTransitionOrderCommand(id, string(body.Role), string(body.Status), body.ActorId, deref(body.Notes))
	if err != nil {
		return s.fail(ctx, err, "Invalid transition request")
	}

	o, err := s.h.TransitionOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to transition order")
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// UpdateOrderItems handles PUT /api/v1/orders/{id}/items.
func (s *Server) UpdateOrderItems(ctx echo.Context, id string) error {
	var body servers.UpdateOrderItemsJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	var charges *commands.Charges
	if body.Charges != nil {
		charges = &commands.Charges{
			Discount:    body.Charges.Discount,
			Tax:         body.Charges.Tax,
			DeliveryFee: body.Charges.DeliveryFee,
		}
	}

	cmd, err := commands.NewUpdateOrderItemsCommand(id, fromItems(body.Items), charges, body.ActorId)
	if err != nil {
		return s.fail(ctx, err, "Invalid items update")
	}

	o, err := s.h.UpdateOrderItems.Handle(ctx.Request().Context(), cmd)
	var rejected *commands.SubmissionRejectedError
	if errors.As(err, &rejected) {
		return ctx.JSON(http.StatusUnprocessableEntity, servers.ValidationError{
			Code:     http.StatusUnprocessableEntity,
			Message:  "Order failed submission checks",
			Errors:   rejected.Result.Errors,
			Warnings: rejected.Result.Warnings,
		})
	}
	if err != nil {
		return s.fail(ctx, err, "Failed to update items")
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}
