package models

import "github.com/google/uuid"

type User struct {
	UUID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"uuid"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Location *string   `gorm:"size:255" json:"location"`
	Cars     []Car     `gorm:"foreignKey:UserUUID;references:UUID;constraint:OnDelete:CASCADE" json:"cars,omitempty"`
}
