package orderrepo

import (
	"encoding/json"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
)

type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	BusinessID  string    `gorm:"index"`
	OrderNumber string
	Customer    CustomerDTO `gorm:"embedded"`
	Items       []byte      `gorm:"type:jsonb"`

	PaymentMethod string
	PaymentStatus string
	PaymentAmount int64

	Status   string `gorm:"index"`
	Priority string
	ZoneID   *string `gorm:"index"`

	DriverID    *string
	DriverName  string
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	Proof       []byte `gorm:"type:jsonb"`

	Timeline []byte `gorm:"type:jsonb"`

	Subtotal    int64
	Discount    int64
	Tax         int64
	DeliveryFee int64
	Total       int64

	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	CreatedBy string
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
	UpdatedBy string
}

func (OrderDTO) TableName() string {
	return "orders"
}

type CustomerDTO struct {
	Name        string   `gorm:"column:customer_name"`
	Phone       string   `gorm:"column:customer_phone"`
	AddressLine string   `gorm:"column:address_line"`
	AddressCity string   `gorm:"column:address_city"`
	AddressLat  *float64 `gorm:"column:address_lat"`
	AddressLng  *float64 `gorm:"column:address_lng"`
}

type itemDTO struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
	Discount    int64  `json:"discount,omitempty"`
	Tax         int64  `json:"tax,omitempty"`
}

type proofDTO struct {
	ReceivedBy string `json:"receivedBy,omitempty"`
	Reference  string `json:"reference,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

func fromDomain(o order.Order) (OrderDTO, error) {
	id, err := uuid.Parse(o.ID())
	if err != nil {
		return OrderDTO{}, err
	}

	items := make([]itemDTO, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, itemDTO(it))
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}

	timeline := o.Timeline()
	if timeline == nil {
		timeline = []order.TimelineEntry{}
	}
	timelineJSON, err := json.Marshal(timeline)
	if err != nil {
		return OrderDTO{}, err
	}

	d := o.Delivery()
	var proofJSON []byte
	if d.Proof != nil {
		if proofJSON, err = json.Marshal(proofDTO(*d.Proof)); err != nil {
			return OrderDTO{}, err
		}
	}

	c := o.Customer()
	customer := CustomerDTO{
		Name:        c.Name,
		Phone:       c.Phone,
		AddressLine: c.Address.Line(),
		AddressCity: c.Address.City(),
	}
	if coords := c.Address.Coordinates(); coords != nil {
		lat, lng := coords.Lat(), coords.Lng()
		customer.AddressLat, customer.AddressLng = &lat, &lng
	}

	p := o.Payment()
	return OrderDTO{
		ID:            id,
		BusinessID:    o.BusinessID(),
		OrderNumber:   o.OrderNumber(),
		Customer:      customer,
		Items:         itemsJSON,
		PaymentMethod: string(p.Method),
		PaymentStatus: string(p.Status),
		PaymentAmount: p.Amount,
		Status:        o.Status().String(),
		Priority:      string(o.Priority()),
		ZoneID:        nullable(d.ZoneID),
		DriverID:      nullable(d.DriverID),
		DriverName:    d.DriverName,
		PickedUpAt:    d.PickedUpAt,
		DeliveredAt:   d.DeliveredAt,
		Proof:         proofJSON,
		Timeline:      timelineJSON,
		Subtotal:      o.Subtotal(),
		Discount:      o.Discount(),
		Tax:           o.Tax(),
		DeliveryFee:   o.DeliveryFee(),
		Total:         o.Total(),
		CreatedAt:     o.CreatedAt(),
		CreatedBy:     o.CreatedBy(),
		UpdatedAt:     o.UpdatedAt(),
		UpdatedBy:     o.UpdatedBy(),
	}, nil
}

func toDomain(dto OrderDTO) (order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return order.Order{}, err
	}

	var items []itemDTO
	if len(dto.Items) > 0 {
		if err = json.Unmarshal(dto.Items, &items); err != nil {
			return order.Order{}, err
		}
	}
	domainItems := make([]order.Item, 0, len(items))
	for _, it := range items {
		domainItems = append(domainItems, order.Item(it))
	}

	var timeline []order.TimelineEntry
	if len(dto.Timeline) > 0 {
		if err = json.Unmarshal(dto.Timeline, &timeline); err != nil {
			return order.Order{}, err
		}
	}

	var proof *order.ProofOfDelivery
	if len(dto.Proof) > 0 {
		var p proofDTO
		if err = json.Unmarshal(dto.Proof, &p); err != nil {
			return order.Order{}, err
		}
		pod := order.ProofOfDelivery(p)
		proof = &pod
	}

	var coords *kernel.Coordinates
	if dto.Customer.AddressLat != nil && dto.Customer.AddressLng != nil {
		c, coordErr := kernel.NewCoordinates(*dto.Customer.AddressLat, *dto.Customer.AddressLng)
		if coordErr != nil {
			return order.Order{}, coordErr
		}
		coords = &c
	}

	return order.Restore(order.RestoreParams{
		ID:          dto.ID.String(),
		BusinessID:  dto.BusinessID,
		OrderNumber: dto.OrderNumber,
		Customer: order.Customer{
			Name:    dto.Customer.Name,
			Phone:   dto.Customer.Phone,
			Address: kernel.NewAddress(dto.Customer.AddressLine, dto.Customer.AddressCity, coords),
		},
		Items: domainItems,
		Payment: order.Payment{
			Method: order.PaymentMethod(dto.PaymentMethod),
			Status: order.PaymentStatus(dto.PaymentStatus),
			Amount: dto.PaymentAmount,
		},
		Delivery: order.Delivery{
			DriverID:    deref(dto.DriverID),
			DriverName:  dto.DriverName,
			ZoneID:      deref(dto.ZoneID),
			PickedUpAt:  utc(dto.PickedUpAt),
			DeliveredAt: utc(dto.DeliveredAt),
			Proof:       proof,
		},
		Status:      status,
		Priority:    order.Priority(dto.Priority),
		Timeline:    timeline,
		Discount:    dto.Discount,
		Tax:         dto.Tax,
		DeliveryFee: dto.DeliveryFee,
		Subtotal:    dto.Subtotal,
		Total:       dto.Total,
		CreatedAt:   dto.CreatedAt.UTC(),
		CreatedBy:   dto.CreatedBy,
		UpdatedAt:   dto.UpdatedAt.UTC(),
		UpdatedBy:   dto.UpdatedBy,
	})
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
