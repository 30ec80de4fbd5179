package zonerepo

import (
	"context"

	"logistics/internal/core/domain/model/zone"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ZoneDTO struct {
	ID          string `gorm:"primaryKey"`
	Name        string
	Description string
}

func (ZoneDTO) TableName() string {
	return "zones"
}

type GormZoneRepository struct {
	db *gorm.DB
}

func NewGormZoneRepository(db *gorm.DB) *GormZoneRepository {
	return &GormZoneRepository{db: db}
}

func (r *GormZoneRepository) List(ctx context.Context) ([]zone.Zone, error) {
	var dtos []ZoneDTO
	if err := r.db.WithContext(ctx).Order("name, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	zones := make([]zone.Zone, 0, len(dtos))
	for _, dto := range dtos {
		z, err := zone.NewZone(dto.ID, dto.Name, dto.Description)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, nil
}

// Save upserts a zone by id.
func (r *GormZoneRepository) Save(ctx context.Context, z zone.Zone) error {
	if err := z.Validate(); err != nil {
		return err
	}
	dto := ZoneDTO(z)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&dto).Error
}
