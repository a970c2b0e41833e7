package models

type User struct {
	Username  string `gorm:"primaryKey;column:username" json:"username"`
	Name      string `gorm:"column:name" json:"name"`
	AvatarURL string `gorm:"column:avatar_url" json:"avatar_url"`
}
