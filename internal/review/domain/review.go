package domain

import "time"

// ReviewEntry is one user's star rating and comment for a brewery.
// Entries are append-only rows: a single INSERT per review means
// concurrent reviews for the same brewery can never lose each other,
// and the set of rows sharing a brewery_id plays the role of the
// brewery's review document.
type ReviewEntry struct {
	ID          uint64    `json:"-" gorm:"primaryKey;autoIncrement"`
	BreweryID   string    `json:"-" gorm:"index;not null"`
	UserID      string    `json:"userId" gorm:"not null"`
	Stars       int       `json:"stars" gorm:"not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
