package model

import "time"

type GadgetStatus string

const (
	GadgetAvailable      GadgetStatus = "Available"
	GadgetDecommissioned GadgetStatus = "Decommissioned"
)

// Valid reports whether s is one of the known status values.
func (s GadgetStatus) Valid() bool {
	return s == GadgetAvailable || s == GadgetDecommissioned
}

type Gadget struct {
	ID               string       `gorm:"primaryKey;size:36" json:"id"`
	Name             string       `gorm:"size:128;not null" json:"name"`
	Status           GadgetStatus `gorm:"size:32;not null;index" json:"status"`
	DecommissionedAt *time.Time   `json:"decommissionedAt"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}
