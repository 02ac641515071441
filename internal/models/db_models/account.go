package db_models

import (
	"github.com/lib/pq"
)

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Interests    pq.StringArray `gorm:"type:text[]"`
	SavedPlans   []SavedPlan    `gorm:"foreignKey:AccountID"`
}
