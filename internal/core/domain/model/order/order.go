package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order value was not created through
	// NewOrder or Restore. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or Restore constructor")
)

// Order represents a customer order moving through preparation and delivery.
// It is the aggregate root of the order lifecycle.
//
// Order is an immutable value: UpdateStatus, AssignDriver, CalculateTotals and the
// other mutators return a new Order and leave the receiver untouched, so a value
// handed to a reader can never change underneath it.
//
// Order follows these invariants:
//   - Status changes follow the transition table in status.go
//   - Every status change appends exactly one TimelineEntry
//   - createdAt and createdBy never change after construction
//   - total == subtotal - discount + tax + deliveryFee once CalculateTotals ran
type Order struct {
	id          string
	businessID  string
	orderNumber string

	customer Customer
	items    []Item
	payment  Payment
	delivery Delivery

	status   Status
	priority Priority
	timeline []TimelineEntry

	subtotal    int64
	discount    int64
	tax         int64
	deliveryFee int64
	total       int64

	createdAt time.Time
	createdBy string
	updatedAt time.Time
	updatedBy string

	guard guard.ConstructorGuard
}

// NewOrderParams carries the caller-supplied fields of a new order.
type NewOrderParams struct {
	ID            string
	BusinessID    string
	OrderNumber   string
	Customer      Customer
	Items         []Item
	PaymentMethod PaymentMethod
	Priority      Priority
	ZoneID        string
	Discount      int64
	Tax           int64
	DeliveryFee   int64
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time
}

// NewOrder creates a pending order, records the creation in the timeline and computes its totals.
//
// Returns:
//   - Order: the created order
//   - error: ValueIsRequiredError for a missing id, business id or creator,
//     ValueIsInvalidError for an unknown priority
//
// Content checks (customer, items, prices) are advisory and reported by
// CheckForSubmission instead, so drafts can still be created.
//
// Example:
//
//	o, err := order.NewOrder(order.NewOrderParams{
//	    ID:         uuid.NewString(),
//	    BusinessID: "biz-1",
//	    Customer:   order.Customer{Name: "Dana", Address: kernel.NewAddress("1 Main St", "Haifa", nil)},
//	    Items:      []order.Item{{ProductID: "p1", Quantity: 2, UnitPrice: 1500}},
//	    CreatedBy:  "manager-7",
//	    CreatedAt:  clock.Now(),
//	})
func NewOrder(p NewOrderParams) (Order, error) {
	priority := p.Priority
	if priority == "" {
		priority = PriorityNormal
	}
	method := p.PaymentMethod
	if method == "" {
		method = PaymentCash
	}

	if err := errors.Join(
		requireValue("order id", p.ID),
		requireValue("business id", p.BusinessID),
		requireValue("created by", p.CreatedBy),
		priority.Validate(),
	); err != nil {
		return Order{}, err
	}

	orderNumber := p.OrderNumber
	if orderNumber == "" {
		orderNumber = defaultOrderNumber(p.ID)
	}

	o := Order{
		id:          p.ID,
		businessID:  p.BusinessID,
		orderNumber: orderNumber,
		customer:    p.Customer,
		items:       cloneItems(p.Items),
		payment:     Payment{Method: method, Status: PaymentPending},
		delivery:    Delivery{ZoneID: p.ZoneID},
		status:      Pending,
		priority:    priority,
		timeline: []TimelineEntry{{
			Status:      Pending,
			At:          p.CreatedAt,
			PerformedBy: p.CreatedBy,
			Notes:       creationNotes(p.Notes),
		}},
		discount:    p.Discount,
		tax:         p.Tax,
		deliveryFee: p.DeliveryFee,
		createdAt:   p.CreatedAt,
		createdBy:   p.CreatedBy,
		updatedAt:   p.CreatedAt,
		updatedBy:   p.CreatedBy,
		guard:       guard.NewConstructorGuard(),
	}

	return o.CalculateTotals(), nil
}

// RestoreParams carries every persisted field of an order.
type RestoreParams struct {
	ID          string
	BusinessID  string
	OrderNumber string
	Customer    Customer
	Items       []Item
	Payment     Payment
	Delivery    Delivery
	Status      Status
	Priority    Priority
	Timeline    []TimelineEntry
	Discount    int64
	Tax         int64
	DeliveryFee int64
	Subtotal    int64
	Total       int64
	CreatedAt   time.Time
	CreatedBy   string
	UpdatedAt   time.Time
	UpdatedBy   string
}

// Restore rebuilds an order from persistence without recomputing anything.
// When a timeline is present it must replay to the stored status.
func Restore(p RestoreParams) (Order, error) {
	if err := errors.Join(
		requireValue("order id", p.ID),
		p.Status.Validate(),
		p.Priority.Validate(),
	); err != nil {
		return Order{}, err
	}

	if len(p.Timeline) > 0 {
		replayed, err := ReplayStatus(p.Timeline)
		if err != nil {
			return Order{}, err
		}
		if replayed != p.Status {
			return Order{}, errs.NewValueIsInvalidErrorWithCause(
				"timeline",
				fmt.Errorf("timeline ends in %s but status is %s", replayed, p.Status),
			)
		}
	}

	return Order{
		id:          p.ID,
		businessID:  p.BusinessID,
		orderNumber: p.OrderNumber,
		customer:    p.Customer,
		items:       cloneItems(p.Items),
		payment:     p.Payment,
		delivery:    p.Delivery.clone(),
		status:      p.Status,
		priority:    p.Priority,
		timeline:    cloneTimeline(p.Timeline),
		subtotal:    p.Subtotal,
		discount:    p.Discount,
		tax:         p.Tax,
		deliveryFee: p.DeliveryFee,
		total:       p.Total,
		createdAt:   p.CreatedAt,
		createdBy:   p.CreatedBy,
		updatedAt:   p.UpdatedAt,
		updatedBy:   p.UpdatedBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order was built by NewOrder or Restore.
func (o Order) Validate() error {
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o Order) ID() string          { return o.id }
func (o Order) BusinessID() string  { return o.businessID }
func (o Order) OrderNumber() string { return o.orderNumber }
func (o Order) Customer() Customer  { return o.customer }
func (o Order) Payment() Payment    { return o.payment }
func (o Order) Delivery() Delivery  { return o.delivery.clone() }
func (o Order) Status() Status      { return o.status }
func (o Order) Priority() Priority  { return o.priority }
func (o Order) Subtotal() int64     { return o.subtotal }
func (o Order) Discount() int64     { return o.discount }
func (o Order) Tax() int64          { return o.tax }
func (o Order) DeliveryFee() int64  { return o.deliveryFee }
func (o Order) Total() int64        { return o.total }
func (o Order) CreatedAt() time.Time {
	return o.createdAt
}
func (o Order) CreatedBy() string    { return o.createdBy }
func (o Order) UpdatedAt() time.Time { return o.updatedAt }
func (o Order) UpdatedBy() string    { return o.updatedBy }

// Items returns a copy of the order lines.
func (o Order) Items() []Item {
	return cloneItems(o.items)
}

// Timeline returns a copy of the audit trail.
func (o Order) Timeline() []TimelineEntry {
	return cloneTimeline(o.timeline)
}

// IsOutstanding reports an order that has not reached Delivered or Cancelled.
func (o Order) IsOutstanding() bool {
	return o.status.IsOutstanding()
}

// CanTransitionTo reports whether target is reachable from the current status in one step.
func (o Order) CanTransitionTo(target Status) bool {
	return o.status.CanTransitionTo(target)
}

// UpdateStatus moves the order to target.
//
// Parameters:
//   - target: the new status
//   - performedBy: the actor id recorded in the timeline and updatedBy
//   - notes: free text for the timeline entry
//   - at: the timestamp of the change
//
// Returns:
//   - Order: a new order with the status set, one timeline entry appended and updatedAt/updatedBy set
//   - error: InvalidTransitionError when CanTransitionTo(target) is false; the receiver is unchanged
//
// Entering PickedUp records the pickup time, entering Delivered the delivery time.
// Returning to ReadyForPickup or Pending releases the driver.
func (o Order) UpdateStatus(target Status, performedBy, notes string, at time.Time) (Order, error) {
	if err := o.Validate(); err != nil {
		return Order{}, err
	}
	if !o.CanTransitionTo(target) {
		return Order{}, errs.NewInvalidTransitionError(o.status, target)
	}
	if err := requireValue("performed by", performedBy); err != nil {
		return Order{}, err
	}

	next := o.clone()
	next.status = target
	next.timeline = append(next.timeline, TimelineEntry{
		Status:      target,
		At:          at,
		PerformedBy: performedBy,
		Notes:       notes,
	})
	next.updatedAt = at
	next.updatedBy = performedBy

	switch target {
	case PickedUp:
		if next.delivery.PickedUpAt == nil {
			t := at
			next.delivery.PickedUpAt = &t
		}
	case Delivered:
		t := at
		next.delivery.DeliveredAt = &t
	case ReadyForPickup, Pending:
		next.delivery.DriverID = ""
		next.delivery.DriverName = ""
		next.delivery.PickedUpAt = nil
	}

	return next, nil
}

// AssignDriver hands the order to a driver and moves it to Assigned.
//
// Returns:
//   - InvalidPreconditionError unless the status is exactly ReadyForPickup
//   - ValueIsRequiredError for an empty driver id
func (o Order) AssignDriver(driverID, driverName, performedBy string, at time.Time) (Order, error) {
	if err := o.Validate(); err != nil {
		return Order{}, err
	}
	if o.status != ReadyForPickup {
		return Order{}, errs.NewInvalidPreconditionError(
			"assign driver",
			fmt.Sprintf("order must be %s, got %s", ReadyForPickup, o.status),
		)
	}
	if err := requireValue("driver id", driverID); err != nil {
		return Order{}, err
	}

	withDriver := o.clone()
	withDriver.delivery.DriverID = driverID
	withDriver.delivery.DriverName = driverName

	return withDriver.UpdateStatus(Assigned, performedBy, "assigned to "+displayDriver(driverID, driverName), at)
}

// Complete marks an in-transit order Delivered and attaches the proof of delivery.
func (o Order) Complete(proof *ProofOfDelivery, performedBy string, at time.Time) (Order, error) {
	notes := ""
	if proof != nil {
		notes = proof.Notes
	}
	next, err := o.UpdateStatus(Delivered, performedBy, notes, at)
	if err != nil {
		return Order{}, err
	}
	if proof != nil {
		p := *proof
		next.delivery.Proof = &p
	}
	return next, nil
}

// CalculateTotals recomputes subtotal and total from the items and charges and
// mirrors the total into payment.amount. It must be called after any item
// change and is never called implicitly by the status methods. Idempotent.
func (o Order) CalculateTotals() Order {
	next := o.clone()

	var subtotal int64
	for _, item := range next.items {
		subtotal += item.Subtotal()
	}
	next.subtotal = subtotal
	next.total = subtotal - next.discount + next.tax + next.deliveryFee
	next.payment.Amount = next.total

	return next
}

// ReplaceItems swaps the order lines. Totals are not recomputed; call CalculateTotals.
// Items can only change before preparation starts.
func (o Order) ReplaceItems(items []Item, performedBy string, at time.Time) (Order, error) {
	if err := o.requireEditable("replace items"); err != nil {
		return Order{}, err
	}
	next := o.clone()
	next.items = cloneItems(items)
	next.updatedAt = at
	next.updatedBy = performedBy
	return next, nil
}

// AdjustCharges sets the order-level discount, tax and delivery fee.
// Totals are not recomputed; call CalculateTotals.
func (o Order) AdjustCharges(discount, tax, deliveryFee int64, performedBy string, at time.Time) (Order, error) {
	if err := o.requireEditable("adjust charges"); err != nil {
		return Order{}, err
	}
	next := o.clone()
	next.discount = discount
	next.tax = tax
	next.deliveryFee = deliveryFee
	next.updatedAt = at
	next.updatedBy = performedBy
	return next, nil
}

// SetDeliveryZone routes the order to a zone. Terminal orders cannot be rerouted.
func (o Order) SetDeliveryZone(zoneID, performedBy string, at time.Time) (Order, error) {
	if err := o.Validate(); err != nil {
		return Order{}, err
	}
	if o.status.IsTerminal() {
		return Order{}, errs.NewInvalidPreconditionError("set delivery zone", "order is "+o.status.String())
	}
	next := o.clone()
	next.delivery.ZoneID = strings.TrimSpace(zoneID)
	next.updatedAt = at
	next.updatedBy = performedBy
	return next, nil
}

// MarkPaid records that the payment was collected.
func (o Order) MarkPaid(performedBy string, at time.Time) Order {
	next := o.clone()
	next.payment.Status = PaymentPaid
	next.updatedAt = at
	next.updatedBy = performedBy
	return next
}

func (o Order) requireEditable(operation string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.status != Pending && o.status != Confirmed {
		return errs.NewInvalidPreconditionError(
			operation,
			fmt.Sprintf("order must be %s or %s, got %s", Pending, Confirmed, o.status),
		)
	}
	return nil
}

func (o Order) clone() Order {
	next := o
	next.items = cloneItems(o.items)
	next.timeline = cloneTimeline(o.timeline)
	next.delivery = o.delivery.clone()
	return next
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

func requireValue(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func defaultOrderNumber(id string) string {
	short := strings.ReplaceAll(id, "-", "")
	if len(short) > 8 {
		short = short[:8]
	}
	return "ORD-" + strings.ToUpper(short)
}

func creationNotes(notes string) string {
	if notes == "" {
		return "order created"
	}
	return notes
}

func displayDriver(driverID, driverName string) string {
	if driverName == "" {
		return driverID
	}
	return driverName
}
