package models

import (
	"time"
)

type Review struct {
	ReviewID     int       `gorm:"primaryKey;column:review_id" json:"review_id"`
	Title        string    `gorm:"column:title;not null" json:"title"`
	Category     string    `gorm:"column:category;not null" json:"category"` // Category.Slug
	Designer     string    `gorm:"column:designer" json:"designer"`
	Owner        string    `gorm:"column:owner;not null" json:"owner"` // User.Username
	ReviewBody   string    `gorm:"column:review_body;type:text;not null" json:"review_body"`
	ReviewImgURL string    `gorm:"column:review_img_url" json:"review_img_url"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	Votes        int       `gorm:"column:votes;default:0" json:"votes"`
}

// ReviewSummary is a review as returned by the list endpoint, with its comment count.
type ReviewSummary struct {
	Review
	CommentCount int `gorm:"column:comment_count" json:"comment_count"`
}
