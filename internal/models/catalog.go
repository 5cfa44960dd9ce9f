package models

import (
	"github.com/shopspring/decimal"
)

type Accommodation struct {
	ID            uint            `gorm:"primarykey" json:"id"`
	Name          string          `gorm:"size:100;not null" json:"name"`
	Type          string          `gorm:"size:50;not null;index" json:"type"`
	PricePerNight decimal.Decimal `gorm:"type:decimal(10,2)" json:"pricePerNight"`
	Rating        int             `gorm:"check:rating_range,rating >= 1 AND rating <= 5" json:"rating"`
}

type Transportation struct {
	ID           uint            `gorm:"primarykey" json:"id"`
	Type         string          `gorm:"size:50;not null;index" json:"type"`
	Provider     string          `gorm:"size:100;not null" json:"provider"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Availability bool            `json:"availability"`
}

// TableName keeps the singular table name used by the existing schema.
func (Transportation) TableName() string {
	return "transportation"
}

type LocalService struct {
	ID      uint   `gorm:"primarykey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Type    string `gorm:"size:50;not null;index" json:"type"`
	Contact string `gorm:"size:100" json:"contact"`
}

type Expense struct {
	ID       uint            `gorm:"primarykey" json:"id"`
	TripID   uint            `gorm:"index" json:"tripId,omitempty"`
	Category string          `gorm:"size:50;not null;index" json:"category"`
	Amount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Date     Date            `gorm:"not null" json:"date"`
}
