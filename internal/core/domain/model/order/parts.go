package order

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
)

// Item is one order line. Amounts are in minor currency units.
type Item struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   int64
	Discount    int64
	Tax         int64
}

// Subtotal is quantity * unitPrice - discount + tax.
func (i Item) Subtotal() int64 {
	return int64(i.Quantity)*i.UnitPrice - i.Discount + i.Tax
}

// Customer is the recipient of the order.
type Customer struct {
	Name    string
	Phone   string
	Address kernel.Address
}

// PaymentMethod is how the customer pays.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentCredit PaymentMethod = "credit"
)

// PaymentStatus tracks collection of the payment.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Payment holds the payment terms. Amount mirrors the order total after CalculateTotals.
type Payment struct {
	Method PaymentMethod
	Status PaymentStatus
	Amount int64
}

// ProofOfDelivery is attached when the driver completes the order.
type ProofOfDelivery struct {
	ReceivedBy string
	Reference  string
	Notes      string
}

// Delivery holds the dispatch side of the order.
type Delivery struct {
	DriverID    string
	DriverName  string
	ZoneID      string
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	Proof       *ProofOfDelivery
}

// HasDriver reports whether a driver id is set.
func (d Delivery) HasDriver() bool {
	return d.DriverID != ""
}

func (d Delivery) clone() Delivery {
	out := d
	if d.PickedUpAt != nil {
		t := *d.PickedUpAt
		out.PickedUpAt = &t
	}
	if d.DeliveredAt != nil {
		t := *d.DeliveredAt
		out.DeliveredAt = &t
	}
	if d.Proof != nil {
		p := *d.Proof
		out.Proof = &p
	}
	return out
}
