package driverrepo

import (
	"time"

	"logistics/internal/core/domain/model/driver"
)

type DriverStatusDTO struct {
	DriverID      string `gorm:"primaryKey"`
	DriverName    string
	IsOnline      bool
	Status        string
	CurrentZoneID *string
	UpdatedAt     time.Time `gorm:"autoUpdateTime:false"`
}

func (DriverStatusDTO) TableName() string {
	return "driver_statuses"
}

type DriverZoneDTO struct {
	DriverID string `gorm:"primaryKey"`
	ZoneID   string `gorm:"primaryKey"`
	Active   bool
}

func (DriverZoneDTO) TableName() string {
	return "driver_zone_assignments"
}

type DriverInventoryDTO struct {
	DriverID  string `gorm:"primaryKey"`
	ProductID string `gorm:"primaryKey"`
	Quantity  int
}

func (DriverInventoryDTO) TableName() string {
	return "driver_inventory"
}

func statusFromDomain(rec driver.StatusRecord) DriverStatusDTO {
	return DriverStatusDTO{
		DriverID:      rec.DriverID,
		DriverName:    rec.DriverName,
		IsOnline:      rec.IsOnline,
		Status:        string(rec.Status),
		CurrentZoneID: rec.CurrentZoneID,
		UpdatedAt:     rec.UpdatedAt,
	}
}

func statusToDomain(dto DriverStatusDTO) (driver.StatusRecord, error) {
	rec, err := driver.NewStatusRecord(dto.DriverID, dto.IsOnline, driver.Status(dto.Status), dto.CurrentZoneID, dto.UpdatedAt.UTC())
	if err != nil {
		return driver.StatusRecord{}, err
	}
	rec.DriverName = dto.DriverName
	return rec, nil
}
