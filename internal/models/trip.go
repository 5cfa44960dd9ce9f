package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TripFields are the columns a trip update is allowed to overwrite.
type TripFields struct {
	Title       string           `gorm:"size:200;not null" json:"title" validate:"required,max=200"`
	StartDate   Date             `gorm:"not null;index" json:"startDate" validate:"required"`
	EndDate     Date             `gorm:"not null;index" json:"endDate" validate:"required"`
	TotalBudget *decimal.Decimal `gorm:"type:decimal(10,2)" json:"totalBudget,omitempty" validate:"omitempty,gt=0"`
}

type Trip struct {
	Model
	TripFields `gorm:"embedded"`
	Users      []User `gorm:"many2many:trip_users" json:"users"`
}

// TripUser is the membership join row. The composite primary key makes a
// (trip, user) pair unique.
type TripUser struct {
	TripID    uint `gorm:"primaryKey"`
	UserID    uint `gorm:"primaryKey;index"`
	CreatedAt time.Time
}

// HasMember reports whether the loaded membership contains userID.
func (t *Trip) HasMember(userID uint) bool {
	for _, u := range t.Users {
		if u.ID == userID {
			return true
		}
	}
	return false
}
