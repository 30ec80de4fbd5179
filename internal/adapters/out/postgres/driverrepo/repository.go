package driverrepo

import (
	"context"

	"logistics/internal/core/domain/model/driver"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormDriverRepository struct {
	db *gorm.DB
}

func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

func (r *GormDriverRepository) ListStatuses(ctx context.Context) ([]driver.StatusRecord, error) {
	var dtos []DriverStatusDTO
	if err := r.db.WithContext(ctx).Order("driver_id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]driver.StatusRecord, 0, len(dtos))
	for _, dto := range dtos {
		rec, err := statusToDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// SaveStatus upserts by driver id.
func (r *GormDriverRepository) SaveStatus(ctx context.Context, rec driver.StatusRecord) error {
	if _, err := driver.NewStatusRecord(rec.DriverID, rec.IsOnline, rec.Status, rec.CurrentZoneID, rec.UpdatedAt); err != nil {
		return err
	}

	dto := statusFromDomain(rec)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "driver_id"}},
		UpdateAll: true,
	}).Create(&dto).Error
}

func (r *GormDriverRepository) ListZoneAssignments(ctx context.Context, activeOnly bool) ([]driver.ZoneAssignment, error) {
	q := r.db.WithContext(ctx).Order("driver_id, zone_id")
	if activeOnly {
		q = q.Where("active")
	}

	var dtos []DriverZoneDTO
	if err := q.Find(&dtos).Error; err != nil {
		return nil, err
	}

	out := make([]driver.ZoneAssignment, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, driver.ZoneAssignment(dto))
	}
	return out, nil
}

func (r *GormDriverRepository) ListInventory(ctx context.Context, driverIDs []string) ([]driver.InventoryRecord, error) {
	q := r.db.WithContext(ctx).Order("driver_id, product_id")
	if len(driverIDs) > 0 {
		q = q.Where("driver_id IN ?", driverIDs)
	}

	var dtos []DriverInventoryDTO
	if err := q.Find(&dtos).Error; err != nil {
		return nil, err
	}

	out := make([]driver.InventoryRecord, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, driver.InventoryRecord(dto))
	}
	return out, nil
}

// AssignZone links a driver to a zone, reactivating an existing link.
func (r *GormDriverRepository) AssignZone(ctx context.Context, a driver.ZoneAssignment) error {
	dto := DriverZoneDTO(a)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "driver_id"}, {Name: "zone_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"active"}),
	}).Create(&dto).Error
}

// SetInventory stores the on-vehicle quantity of one product.
func (r *GormDriverRepository) SetInventory(ctx context.Context, rec driver.InventoryRecord) error {
	dto := DriverInventoryDTO(rec)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "driver_id"}, {Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
	}).Create(&dto).Error
}
