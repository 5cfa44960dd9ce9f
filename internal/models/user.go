package models

type User struct {
	Model
	Name         string `gorm:"size:100" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	DiscordID    string `gorm:"size:64;index" json:"-"`
}
