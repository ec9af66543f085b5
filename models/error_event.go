package models

// ErrorEvent and ErrorPart record diagnostic trouble codes scanned from a
// car. The tables are part of the schema but have no HTTP surface yet.
type ErrorEvent struct {
	ErrorEventID      int         `gorm:"primaryKey;autoIncrement" json:"error_event_id"`
	CarID             int         `gorm:"not null;index" json:"car_id"`
	ErrorCodes        *string     `gorm:"type:text" json:"error_codes"`
	OccurrenceMileage *int        `json:"occurrence_mileage"`
	OccurrenceDate    *Date       `json:"occurrence_date"`
	Parts             []ErrorPart `gorm:"foreignKey:ErrorEventID;references:ErrorEventID;constraint:OnDelete:CASCADE" json:"parts,omitempty"`
}

type ErrorPart struct {
	PartID       int     `gorm:"primaryKey;autoIncrement" json:"part_id"`
	ErrorEventID int     `gorm:"not null;index" json:"error_event_id"`
	PartName     *string `gorm:"size:255" json:"part_name"`
}
