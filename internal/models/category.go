package models

type Category struct {
	Slug        string `gorm:"primaryKey;column:slug" json:"slug"`
	Description string `gorm:"column:description;not null" json:"description"`
}
