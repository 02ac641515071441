package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SavedPlan is a generated itinerary the user chose to keep.
// Route holds the serialized TravelRoute as returned by the planner.
type SavedPlan struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index"`
	Title     string
	City      string
	Route     datatypes.JSON `gorm:"type:jsonb"`
}
