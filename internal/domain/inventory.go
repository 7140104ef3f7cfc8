package domain

import "time"

// Classification groups vehicles on the navigation bar (SUV, Sedan, ...).
type Classification struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// Vehicle is a single inventory item.
type Vehicle struct {
	ID               int       `json:"id" gorm:"primaryKey"`
	Make             string    `json:"make" gorm:"not null"`
	Model            string    `json:"model" gorm:"not null"`
	Year             int       `json:"year" gorm:"not null"`
	Description      string    `json:"description"`
	Image            string    `json:"image"`
	Thumbnail        string    `json:"thumbnail"`
	Price            int       `json:"price" gorm:"not null"`
	Miles            int       `json:"miles"`
	Color            string    `json:"color"`
	ClassificationID int       `json:"classificationId" gorm:"index;not null"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Name returns the "<make> <model>" display name used on grids and in
// free-text search matching.
func (v Vehicle) Name() string {
	return v.Make + " " + v.Model
}
