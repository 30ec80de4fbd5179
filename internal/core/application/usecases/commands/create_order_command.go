package commands

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderParams is the raw input of an order submission.
type CreateOrderParams struct {
	// OrderID is generated when empty.
	OrderID       string
	BusinessID    string
	OrderNumber   string
	Customer      order.Customer
	Items         []order.Item
	PaymentMethod string
	Priority      string
	ZoneID        string
	Discount      int64
	Tax           int64
	DeliveryFee   int64
	Notes         string
	CreatedBy     string
}

// CreateOrderCommand represents a request to submit a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(CreateOrderParams{
//	    BusinessID: "biz-1",
//	    Customer:   customer,
//	    Items:      items,
//	    Priority:   "urgent",
//	    CreatedBy:  "manager-7",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	res, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       string
	businessID    string
	orderNumber   string
	customer      order.Customer
	items         []order.Item
	paymentMethod order.PaymentMethod
	priority      order.Priority
	zoneID        string
	discount      int64
	tax           int64
	deliveryFee   int64
	notes         string
	createdBy     string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates identifiers and enumerations. Content checks
// (customer, items, prices) happen in the handler through CheckForSubmission.
func NewCreateOrderCommand(p CreateOrderParams) (CreateOrderCommand, error) {
	c := CreateOrderCommand{
		orderNumber: strings.TrimSpace(p.OrderNumber),
		customer:    p.Customer,
		items:       append([]order.Item(nil), p.Items...),
		zoneID:      strings.TrimSpace(p.ZoneID),
		discount:    p.Discount,
		tax:         p.Tax,
		deliveryFee: p.DeliveryFee,
		notes:       p.Notes,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setOrderID(p.OrderID),
		c.setBusinessID(p.BusinessID),
		c.setCreatedBy(p.CreatedBy),
		c.setPriority(p.Priority),
		c.setPaymentMethod(p.PaymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return c, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() string    { return c.orderID }
func (c CreateOrderCommand) BusinessID() string { return c.businessID }
func (c CreateOrderCommand) CreatedBy() string  { return c.createdBy }

func (c CreateOrderCommand) Priority() order.Priority { return c.priority }

func (c CreateOrderCommand) params() order.NewOrderParams {
	return order.NewOrderParams{
		ID:            c.orderID,
		BusinessID:    c.businessID,
		OrderNumber:   c.orderNumber,
		Customer:      c.customer,
		Items:         c.items,
		PaymentMethod: c.paymentMethod,
		Priority:      c.priority,
		ZoneID:        c.zoneID,
		Discount:      c.discount,
		Tax:           c.tax,
		DeliveryFee:   c.deliveryFee,
		Notes:         c.notes,
		CreatedBy:     c.createdBy,
	}
}

func (c *CreateOrderCommand) setOrderID(id string) error {
	if id == "" {
		c.orderID = uuid.NewString()
		return nil
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	c.orderID = parsed.String()
	return nil
}

func (c *CreateOrderCommand) setBusinessID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("business id")
	}
	c.businessID = id
	return nil
}

func (c *CreateOrderCommand) setCreatedBy(actor string) error {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return errs.NewValueIsRequiredError("created by")
	}
	c.createdBy = actor
	return nil
}

func (c *CreateOrderCommand) setPriority(raw string) error {
	p, err := order.ParsePriority(raw)
	if err != nil {
		return err
	}
	c.priority = p
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(raw string) error {
	switch m := order.PaymentMethod(raw); m {
	case "":
		c.paymentMethod = order.PaymentCash
	case order.PaymentCash, order.PaymentCard, order.PaymentCredit:
		c.paymentMethod = m
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%q is not a valid payment method", raw))
	}
	return nil
}
