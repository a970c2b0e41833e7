package models

import (
	"time"
)

// DefaultCommentVotes is written on insert instead of relying on the column default.
const DefaultCommentVotes = 0

type Comment struct {
	CommentID int       `gorm:"primaryKey;column:comment_id" json:"comment_id"`
	ReviewID  int       `gorm:"column:review_id;not null;index" json:"review_id"`
	Author    string    `gorm:"column:author;not null" json:"author"` // User.Username
	Body      string    `gorm:"column:body;type:text;not null" json:"body"`
	Votes     int       `gorm:"column:votes;default:0" json:"votes"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}
