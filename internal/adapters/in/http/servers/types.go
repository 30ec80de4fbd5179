// Package servers holds the wire types, the server interface and the route
// registration for the API described by the embedded openapi.yaml.
package servers

import (
	"time"
)

// Defines values for Action.
const (
	AssignDriver  Action = "assign_driver"
	Cancel        Action = "cancel"
	Complete      Action = "complete"
	Confirm       Action = "confirm"
	Pickup        Action = "pickup"
	StartDelivery Action = "start_delivery"
)

// Defines values for DriverState.
const (
	Available  DriverState = "available"
	Delivering DriverState = "delivering"
	OffShift   DriverState = "off_shift"
	OnBreak    DriverState = "on_break"
)

// Defines values for OrderStatus.
const (
	OrderStatusAssigned       OrderStatus = "assigned"
	OrderStatusCancelled      OrderStatus = "cancelled"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusFailed         OrderStatus = "failed"
	OrderStatusInTransit      OrderStatus = "in_transit"
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusPickedUp       OrderStatus = "picked_up"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusReadyForPickup OrderStatus = "ready_for_pickup"
)

// Defines values for PaymentMethod.
const (
	Card   PaymentMethod = "card"
	Cash   PaymentMethod = "cash"
	Credit PaymentMethod = "credit"
)

// Defines values for Priority.
const (
	High   Priority = "high"
	Low    Priority = "low"
	Normal Priority = "normal"
	Urgent Priority = "urgent"
)

// Defines values for Role.
const (
	RoleAdmin           Role = "admin"
	RoleBusinessOwner   Role = "business_owner"
	RoleCustomerService Role = "customer_service"
	RoleDispatcher      Role = "dispatcher"
	RoleDriver          Role = "driver"
	RoleManager         Role = "manager"
	RoleSales           Role = "sales"
	RoleSuperadmin      Role = "superadmin"
	RoleWarehouse       Role = "warehouse"
)

// Action defines model for Action.
type Action string

// Address defines model for Address.
type Address struct {
	City *string  `json:"city,omitempty"`
	Lat  *float64 `json:"lat,omitempty"`
	Line string   `json:"line"`
	Lng  *float64 `json:"lng,omitempty"`
}

// Charges defines model for Charges.
type Charges struct {
	DeliveryFee int64 `json:"deliveryFee"`
	Discount    int64 `json:"discount"`
	Tax         int64 `json:"tax"`
}

// Coverage defines model for Coverage.
type Coverage struct {
	ActiveDeliveries   int            `json:"activeDeliveries"`
	ComputedAt         time.Time      `json:"computedAt"`
	OutstandingOrders  []OrderSummary `json:"outstandingOrders"`
	PendingAssignments int            `json:"pendingAssignments"`
	TotalOnline        int            `json:"totalOnline"`
	UnassignedDrivers  []DriverStatus `json:"unassignedDrivers"`
	UnzonedOrders      []OrderSummary `json:"unzonedOrders"`
	Unsupported        []string       `json:"unsupported"`
	Zones              []ZoneCoverage `json:"zones"`
}

// CreatedOrder defines model for CreatedOrder.
type CreatedOrder struct {
	Order    Order    `json:"order"`
	Warnings []string `json:"warnings"`
}

// Customer defines model for Customer.
type Customer struct {
	Address Address `json:"address"`
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
}

// Dashboard defines model for Dashboard.
type Dashboard struct {
	Coverage    *Coverage    `json:"coverage,omitempty"`
	Error       *string      `json:"error,omitempty"`
	Ready       bool         `json:"ready"`
	Reason      *string      `json:"reason,omitempty"`
	Seq         *int64       `json:"seq,omitempty"`
	Stats       RefreshStats `json:"stats"`
	TriggeredAt *time.Time   `json:"triggeredAt,omitempty"`
}

// Delivery defines model for Delivery.
type Delivery struct {
	DeliveredAt *time.Time       `json:"deliveredAt,omitempty"`
	DriverId    *string          `json:"driverId,omitempty"`
	DriverName  *string          `json:"driverName,omitempty"`
	PickedUpAt  *time.Time       `json:"pickedUpAt,omitempty"`
	Proof       *ProofOfDelivery `json:"proof,omitempty"`
	ZoneId      *string          `json:"zoneId,omitempty"`
}

// DriverState defines model for DriverState.
type DriverState string

// DriverStatus defines model for DriverStatus.
type DriverStatus struct {
	CurrentZoneId *string     `json:"currentZoneId,omitempty"`
	DriverId      string      `json:"driverId"`
	DriverName    string      `json:"driverName"`
	IsOnline      bool        `json:"isOnline"`
	Status        DriverState `json:"status"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// DriverStatusUpdate defines model for DriverStatusUpdate.
type DriverStatusUpdate struct {
	CurrentZoneId *string     `json:"currentZoneId,omitempty"`
	DriverName    string      `json:"driverName"`
	IsOnline      bool        `json:"isOnline"`
	Status        DriverState `json:"status"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// EscalatedOrder defines model for EscalatedOrder.
type EscalatedOrder struct {
	AgeMinutes  int64       `json:"ageMinutes"`
	Id          string      `json:"id"`
	OrderNumber string      `json:"orderNumber"`
	Priority    Priority    `json:"priority"`
	Reasons     []string    `json:"reasons"`
	Status      OrderStatus `json:"status"`
	ZoneId      *string     `json:"zoneId,omitempty"`
}

// InventoryRecord defines model for InventoryRecord.
type InventoryRecord struct {
	DriverId  string `json:"driverId"`
	ProductId string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// InventoryTotal defines model for InventoryTotal.
type InventoryTotal struct {
	ProductId string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// InventoryUpdate defines model for InventoryUpdate.
type InventoryUpdate struct {
	Quantity int `json:"quantity"`
}

// Item defines model for Item.
type Item struct {
	Discount    *int64  `json:"discount,omitempty"`
	ProductId   string  `json:"productId"`
	ProductName *string `json:"productName,omitempty"`
	Quantity    int     `json:"quantity"`
	Tax         *int64  `json:"tax,omitempty"`
	UnitPrice   int64   `json:"unitPrice"`
}

// ItemsUpdate defines model for ItemsUpdate.
type ItemsUpdate struct {
	ActorId string   `json:"actorId"`
	Charges *Charges `json:"charges,omitempty"`
	Items   []Item   `json:"items"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	BusinessId    string         `json:"businessId"`
	CreatedBy     string         `json:"createdBy"`
	Customer      Customer       `json:"customer"`
	DeliveryFee   *int64         `json:"deliveryFee,omitempty"`
	Discount      *int64         `json:"discount,omitempty"`
	Id            *string        `json:"id,omitempty"`
	Items         []Item         `json:"items"`
	Notes         *string        `json:"notes,omitempty"`
	OrderNumber   *string        `json:"orderNumber,omitempty"`
	PaymentMethod *PaymentMethod `json:"paymentMethod,omitempty"`
	Priority      *Priority      `json:"priority,omitempty"`
	Tax           *int64         `json:"tax,omitempty"`
	ZoneId        *string        `json:"zoneId,omitempty"`
}

// Order defines model for Order.
type Order struct {
	BusinessId  string          `json:"businessId"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
	Customer    Customer        `json:"customer"`
	Delivery    Delivery        `json:"delivery"`
	DeliveryFee int64           `json:"deliveryFee"`
	Discount    int64           `json:"discount"`
	Id          string          `json:"id"`
	Items       []Item          `json:"items"`
	OrderNumber string          `json:"orderNumber"`
	Payment     Payment         `json:"payment"`
	Priority    Priority        `json:"priority"`
	Status      OrderStatus     `json:"status"`
	Subtotal    int64           `json:"subtotal"`
	Tax         int64           `json:"tax"`
	Timeline    []TimelineEntry `json:"timeline"`
	Total       int64           `json:"total"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	UpdatedBy   string          `json:"updatedBy"`
}

// OrderActionRequest defines model for OrderActionRequest.
type OrderActionRequest struct {
	Action     Action           `json:"action"`
	ActorId    string           `json:"actorId"`
	DriverId   *string          `json:"driverId,omitempty"`
	DriverName *string          `json:"driverName,omitempty"`
	Notes      *string          `json:"notes,omitempty"`
	Proof      *ProofOfDelivery `json:"proof,omitempty"`
	Role       Role             `json:"role"`
}

// OrderActions defines model for OrderActions.
type OrderActions struct {
	Actions []Action `json:"actions"`
	OrderId string   `json:"orderId"`
	Role    Role     `json:"role"`
}

// OrderDetails defines model for OrderDetails.
type OrderDetails struct {
	Actions *[]Action `json:"actions,omitempty"`
	Order   Order     `json:"order"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// OrderSummary defines model for OrderSummary.
type OrderSummary struct {
	CreatedAt   time.Time   `json:"createdAt"`
	DriverId    *string     `json:"driverId,omitempty"`
	DriverName  *string     `json:"driverName,omitempty"`
	Id          string      `json:"id"`
	OrderNumber string      `json:"orderNumber"`
	Priority    Priority    `json:"priority"`
	Status      OrderStatus `json:"status"`
	Total       int64       `json:"total"`
	ZoneId      *string     `json:"zoneId,omitempty"`
}

// Payment defines model for Payment.
type Payment struct {
	Amount int64         `json:"amount"`
	Method PaymentMethod `json:"method"`
	Status string        `json:"status"`
}

// PaymentMethod defines model for PaymentMethod.
type PaymentMethod string

// Priority defines model for Priority.
type Priority string

// ProofOfDelivery defines model for ProofOfDelivery.
type ProofOfDelivery struct {
	Notes      *string `json:"notes,omitempty"`
	ReceivedBy string  `json:"receivedBy"`
	Reference  *string `json:"reference,omitempty"`
}

// RefreshStats defines model for RefreshStats.
type RefreshStats struct {
	Delivered int64 `json:"delivered"`
	Discarded int64 `json:"discarded"`
	Dropped   int64 `json:"dropped"`
	Started   int64 `json:"started"`
	Triggered int64 `json:"triggered"`
}

// Role defines model for Role.
type Role string

// TimelineEntry defines model for TimelineEntry.
type TimelineEntry struct {
	Notes       *string     `json:"notes,omitempty"`
	PerformedBy string      `json:"performedBy"`
	Status      OrderStatus `json:"status"`
	Timestamp   time.Time   `json:"timestamp"`
}

// TransitionRequest defines model for TransitionRequest.
type TransitionRequest struct {
	ActorId string      `json:"actorId"`
	Notes   *string     `json:"notes,omitempty"`
	Role    Role        `json:"role"`
	Status  OrderStatus `json:"status"`
}

// ValidationError defines model for ValidationError.
type ValidationError struct {
	Code     int      `json:"code"`
	Errors   []string `json:"errors"`
	Message  string   `json:"message"`
	Warnings []string `json:"warnings,omitempty"`
}

// Zone defines model for Zone.
type Zone struct {
	Description *string `json:"description,omitempty"`
	Id          string  `json:"id"`
	Name        string  `json:"name"`
}

// ZoneAssignment defines model for ZoneAssignment.
type ZoneAssignment struct {
	Active   bool   `json:"active"`
	DriverId string `json:"driverId"`
	ZoneId   string `json:"zoneId"`
}

// ZoneAssignmentUpdate defines model for ZoneAssignmentUpdate.
type ZoneAssignmentUpdate struct {
	Active bool `json:"active"`
}

// ZoneCoverage defines model for ZoneCoverage.
type ZoneCoverage struct {
	Assignments       []ZoneAssignment  `json:"assignments"`
	Covered           bool              `json:"covered"`
	IdleDrivers       []DriverStatus    `json:"idleDrivers"`
	Inventory         []InventoryRecord `json:"inventory"`
	InventoryTotals   []InventoryTotal  `json:"inventoryTotals"`
	OnlineDrivers     []DriverStatus    `json:"onlineDrivers"`
	OutstandingOrders []OrderSummary    `json:"outstandingOrders"`
	Zone              Zone              `json:"zone"`
}

// ZoneUpdate defines model for ZoneUpdate.
type ZoneUpdate struct {
	Description *string `json:"description,omitempty"`
	Name        string  `json:"name"`
}

// GetOrdersParams defines parameters for GetOrders.
type GetOrdersParams struct {
	BusinessId *string `form:"businessId,omitempty" json:"businessId,omitempty"`
	ZoneId     *string `form:"zoneId,omitempty" json:"zoneId,omitempty"`
}

// GetEscalatedOrdersParams defines parameters for GetEscalatedOrders.
type GetEscalatedOrdersParams struct {
	BusinessId *string `form:"businessId,omitempty" json:"businessId,omitempty"`
}

// GetOrderParams defines parameters for GetOrder.
type GetOrderParams struct {
	Role *Role `form:"role,omitempty" json:"role,omitempty"`
}

// GetOrderActionsParams defines parameters for GetOrderActions.
type GetOrderActionsParams struct {
	Role Role `form:"role" json:"role"`
}

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// PerformOrderActionJSONRequestBody defines body for PerformOrderAction for application/json ContentType.
type PerformOrderActionJSONRequestBody = OrderActionRequest

// TransitionOrderJSONRequestBody defines body for TransitionOrder for application/json ContentType.
type TransitionOrderJSONRequestBody = TransitionRequest

// UpdateOrderItemsJSONRequestBody defines body for UpdateOrderItems for application/json ContentType.
type UpdateOrderItemsJSONRequestBody = ItemsUpdate

// SetDriverStatusJSONRequestBody defines body for SetDriverStatus for application/json ContentType.
type SetDriverStatusJSONRequestBody = DriverStatusUpdate

// AssignDriverZoneJSONRequestBody defines body for AssignDriverZone for application/json ContentType.
type AssignDriverZoneJSONRequestBody = ZoneAssignmentUpdate

// SetDriverInventoryJSONRequestBody defines body for SetDriverInventory for application/json ContentType.
type SetDriverInventoryJSONRequestBody = InventoryUpdate

// PutZoneJSONRequestBody defines body for PutZone for application/json ContentType.
type PutZoneJSONRequestBody = ZoneUpdate
