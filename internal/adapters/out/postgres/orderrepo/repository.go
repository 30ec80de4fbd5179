package orderrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) Add(ctx context.Context, aggregate order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes every column, so cleared fields (driver, zone, proof) become NULL.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id string) (order.Order, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return order.Order{}, errs.NewObjectNotFoundErrorWithCause("order", id, err)
	}

	var dto OrderDTO
	if err = r.db.WithContext(ctx).First(&dto, "id = ?", parsed).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.Order{}, errs.NewObjectNotFoundError("order", id)
		}
		return order.Order{}, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]order.Order, error) {
	q := r.db.WithContext(ctx).Model(&OrderDTO{})

	if len(filter.Statuses) > 0 {
		q = q.Where("status IN ?", statusNames(filter.Statuses))
	}
	if filter.OutstandingOnly {
		q = q.Where("status NOT IN ?", []string{order.Delivered.String(), order.Cancelled.String()})
	}
	if filter.BusinessID != "" {
		q = q.Where("business_id = ?", filter.BusinessID)
	}
	if filter.ZoneID != "" {
		q = q.Where("zone_id = ?", filter.ZoneID)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var dtos []OrderDTO
	if err := q.Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func statusNames(statuses []order.Status) []string {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return names
}
