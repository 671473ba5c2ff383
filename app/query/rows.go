package query

import (
	"time"

	"github.com/shashiranjanraj/storerating/app/models"
)

// StoreRecord is the scan target for a Stores plan.
type StoreRecord struct {
	ID            uint   `gorm:"column:id"`
	Name          string `gorm:"column:name"`
	Email         string `gorm:"column:email"`
	Address       string `gorm:"column:address"`
	OverallRating Score  `gorm:"column:overall_rating"`
	UserRating    Score  `gorm:"column:user_rating"`
}

// StoreRow is a store as returned to callers. UserRating is present only in
// a normal user's view, and is null there until that user rates the store.
type StoreRow struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	OverallRating Score  `json:"overall_rating"`
	UserRating    *Score `json:"user_rating,omitempty"`
}

// Row converts a scanned record under the plan that produced it.
func (r StoreRecord) Row(p Plan) StoreRow {
	row := StoreRow{
		ID:            r.ID,
		Name:          r.Name,
		Email:         r.Email,
		Address:       r.Address,
		OverallRating: r.OverallRating,
	}
	if p.OwnRating {
		own := r.UserRating
		row.UserRating = &own
	}
	return row
}

// UserRecord is the scan target for a Users plan.
type UserRecord struct {
	ID      uint        `gorm:"column:id"`
	Name    string      `gorm:"column:name"`
	Email   string      `gorm:"column:email"`
	Address string      `gorm:"column:address"`
	Role    models.Role `gorm:"column:role"`
	Rating  Score       `gorm:"column:rating"`
}

// UserRow is a user as returned to admins. Rating exists only for store
// owners; for them a null means their store has no ratings yet.
type UserRow struct {
	ID      uint        `json:"id"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Address string      `json:"address"`
	Role    models.Role `json:"role"`
	Rating  *Score      `json:"rating,omitempty"`
}

// Row converts a scanned record, dropping the aggregate for non-owners.
func (r UserRecord) Row() UserRow {
	row := UserRow{ID: r.ID, Name: r.Name, Email: r.Email, Address: r.Address, Role: r.Role}
	if r.Role == models.RoleStoreOwner {
		rating := r.Rating
		row.Rating = &rating
	}
	return row
}

// RatingRow is the scan target and response shape for a Ratings plan.
type RatingRow struct {
	ID        uint      `gorm:"column:id" json:"id"`
	UserID    uint      `gorm:"column:user_id" json:"user_id"`
	UserName  string    `gorm:"column:user_name" json:"user_name"`
	StoreID   uint      `gorm:"column:store_id" json:"store_id"`
	StoreName string    `gorm:"column:store_name" json:"store_name"`
	Rating    int       `gorm:"column:rating" json:"rating"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}
