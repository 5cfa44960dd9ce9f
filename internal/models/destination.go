package models

type DestinationFields struct {
	Name        string `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Location    string `gorm:"size:200;not null" json:"location" validate:"required,max=200"`
	Description string `gorm:"type:text" json:"description"`
}

type Destination struct {
	Model
	DestinationFields `gorm:"embedded"`
}
