package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Compute zone coverage now
	// (GET /api/v1/coverage)
	GetCoverage(ctx echo.Context) error

	// Queue a coverage recompute
	// (POST /api/v1/coverage/refresh)
	RefreshCoverage(ctx echo.Context) error

	// Latest coverage delivered by the refresh loop
	// (GET /api/v1/dashboard)
	GetDashboard(ctx echo.Context) error

	// List outstanding orders
	// (GET /api/v1/orders)
	GetOrders(ctx echo.Context, params GetOrdersParams) error

	// Submit a new order
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error

	// Outstanding orders that need attention
	// (GET /api/v1/orders/escalations)
	GetEscalatedOrders(ctx echo.Context, params GetEscalatedOrdersParams) error

	// Get one order
	// (GET /api/v1/orders/{id})
	GetOrder(ctx echo.Context, id string, params GetOrderParams) error

	// Actions a role may take on the order
	// (GET /api/v1/orders/{id}/actions)
	GetOrderActions(ctx echo.Context, id string, params GetOrderActionsParams) error

	// Perform an action on the order
	// (POST /api/v1/orders/{id}/actions)
	PerformOrderAction(ctx echo.Context, id string) error

	// Move the order to a status directly
	// (POST /api/v1/orders/{id}/transitions)
	TransitionOrder(ctx echo.Context, id string) error

	// Replace the order lines
	// (PUT /api/v1/orders/{id}/items)
	UpdateOrderItems(ctx echo.Context, id string) error

	// Record a driver status report
	// (PUT /api/v1/drivers/{id}/status)
	SetDriverStatus(ctx echo.Context, id string) error

	// Activate or deactivate a driver zone assignment
	// (PUT /api/v1/drivers/{id}/zones/{zoneId})
	AssignDriverZone(ctx echo.Context, id string, zoneId string) error

	// Set the quantity of a product a driver carries
	// (PUT /api/v1/drivers/{id}/inventory/{productId})
	SetDriverInventory(ctx echo.Context, id string, productId string) error

	// Create or rename a zone
	// (PUT /api/v1/zones/{id})
	PutZone(ctx echo.Context, id string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetCoverage converts echo context to params.
func (w *ServerInterfaceWrapper) GetCoverage(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetCoverage(ctx)
	return err
}

// RefreshCoverage converts echo context to params.
func (w *ServerInterfaceWrapper) RefreshCoverage(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RefreshCoverage(ctx)
	return err
}

// GetDashboard converts echo context to params.
func (w *ServerInterfaceWrapper) GetDashboard(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetDashboard(ctx)
	return err
}

// GetOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params GetOrdersParams
	// ------------- Optional query parameter "businessId" -------------

	err = runtime.BindQueryParameter("form", true, false, "businessId", ctx.QueryParams(), &params.BusinessId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter businessId: %s", err))
	}

	// ------------- Optional query parameter "zoneId" -------------

	err = runtime.BindQueryParameter("form", true, false, "zoneId", ctx.QueryParams(), &params.ZoneId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter zoneId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrders(ctx, params)
	return err
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateOrder(ctx)
	return err
}

// GetEscalatedOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetEscalatedOrders(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params GetEscalatedOrdersParams
	// ------------- Optional query parameter "businessId" -------------

	err = runtime.BindQueryParameter("form", true, false, "businessId", ctx.QueryParams(), &params.BusinessId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter businessId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetEscalatedOrders(ctx, params)
	return err
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params GetOrderParams
	// ------------- Optional query parameter "role" -------------

	err = runtime.BindQueryParameter("form", true, false, "role", ctx.QueryParams(), &params.Role)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter role: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrder(ctx, id, params)
	return err
}

// GetOrderActions converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderActions(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params GetOrderActionsParams
	// ------------- Required query parameter "role" -------------

	err = runtime.BindQueryParameter("form", true, true, "role", ctx.QueryParams(), &params.Role)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter role: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrderActions(ctx, id, params)
	return err
}

// PerformOrderAction converts echo context to params.
func (w *ServerInterfaceWrapper) PerformOrderAction(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PerformOrderAction(ctx, id)
	return err
}

// TransitionOrder converts echo context to params.
func (w *ServerInterfaceWrapper) TransitionOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.TransitionOrder(ctx, id)
	return err
}

// UpdateOrderItems converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderItems(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateOrderItems(ctx, id)
	return err
}

// SetDriverStatus converts echo context to params.
func (w *ServerInterfaceWrapper) SetDriverStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SetDriverStatus(ctx, id)
	return err
}

// AssignDriverZone converts echo context to params.
func (w *ServerInterfaceWrapper) AssignDriverZone(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// ------------- Path parameter "zoneId" -------------
	var zoneId string

	err = runtime.BindStyledParameterWithOptions("simple", "zoneId", ctx.Param("zoneId"), &zoneId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter zoneId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AssignDriverZone(ctx, id, zoneId)
	return err
}

// SetDriverInventory converts echo context to params.
func (w *ServerInterfaceWrapper) SetDriverInventory(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// ------------- Path parameter "productId" -------------
	var productId string

	err = runtime.BindStyledParameterWithOptions("simple", "productId", ctx.Param("productId"), &productId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter productId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SetDriverInventory(ctx, id, productId)
	return err
}

// PutZone converts echo context to params.
func (w *ServerInterfaceWrapper) PutZone(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PutZone(ctx, id)
	return err
}

// EchoRouter is an interface that wraps the methods of echo.Echo and echo.Group
// used to register handlers.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/coverage", wrapper.GetCoverage)
	router.POST(baseURL+"/api/v1/coverage/refresh", wrapper.RefreshCoverage)
	router.GET(baseURL+"/api/v1/dashboard", wrapper.GetDashboard)
	router.GET(baseURL+"/api/v1/orders", wrapper.GetOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/escalations", wrapper.GetEscalatedOrders)
	router.GET(baseURL+"/api/v1/orders/:id", wrapper.GetOrder)
	router.GET(baseURL+"/api/v1/orders/:id/actions", wrapper.GetOrderActions)
	router.POST(baseURL+"/api/v1/orders/:id/actions", wrapper.PerformOrderAction)
	router.POST(baseURL+"/api/v1/orders/:id/transitions", wrapper.TransitionOrder)
	router.PUT(baseURL+"/api/v1/orders/:id/items", wrapper.UpdateOrderItems)
	router.PUT(baseURL+"/api/v1/drivers/:id/status", wrapper.SetDriverStatus)
	router.PUT(baseURL+"/api/v1/drivers/:id/zones/:zoneId", wrapper.AssignDriverZone)
	router.PUT(baseURL+"/api/v1/drivers/:id/inventory/:productId", wrapper.SetDriverInventory)
	router.PUT(baseURL+"/api/v1/zones/:id", wrapper.PutZone)
}
