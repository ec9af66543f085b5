package models

import "github.com/google/uuid"

type Car struct {
	CarID       int          `gorm:"primaryKey;autoIncrement" json:"car_id"`
	UserUUID    uuid.UUID    `gorm:"type:uuid;not null;index" json:"user_uuid"`
	Details     []CarDetails `gorm:"foreignKey:CarID;references:CarID;constraint:OnDelete:CASCADE" json:"details,omitempty"`
	ErrorEvents []ErrorEvent `gorm:"foreignKey:CarID;references:CarID;constraint:OnDelete:CASCADE" json:"error_events,omitempty"`
}

// CarDetails is the per-car maintenance record. Nothing enforces a single
// row per car at the schema level; the update path treats the oldest row
// as the canonical one.
type CarDetails struct {
	DetailID               int     `gorm:"primaryKey;autoIncrement" json:"detail_id"`
	CarID                  int     `gorm:"not null;index" json:"car_id"`
	Make                   *string `gorm:"size:100" json:"make"`
	Model                  *string `gorm:"size:100" json:"model"`
	Year                   *int    `json:"year"`
	Mileage                *int    `json:"mileage"`
	LastMaintenanceCheckup *Date   `json:"last_maintenance_checkup"`
	LastOilChange          *Date   `json:"last_oil_change"`
	PurchaseDate           *Date   `json:"purchase_date"`
	LastBrakePadChange     *Date   `json:"last_brake_pad_change"`
}
