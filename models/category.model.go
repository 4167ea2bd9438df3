package models

type Category struct {
	Model
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description"`
}
