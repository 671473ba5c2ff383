package models

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Rating is one user's score for one store. (UserID, StoreID) is unique;
// a resubmission overwrites Value and UpdatedAt and keeps CreatedAt.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_ratings_user_store,priority:1" json:"user_id"`
	StoreID   uint      `gorm:"not null;uniqueIndex:idx_ratings_user_store,priority:2;index" json:"store_id"`
	Value     int       `gorm:"column:rating;not null;check:chk_ratings_range,rating >= 1 AND rating <= 5" json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User  User  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Store Store `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
