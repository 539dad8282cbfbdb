package models

type Employee struct {
	ID          int    `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:60;not null"`
	Designation string `gorm:"size:60"`
	Email       string `gorm:"size:120;uniqueIndex;not null"`
}
