package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review rating bounds. Ratings outside [MinRating, MaxRating] are rejected
// at the validation boundary.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a user's rating of a farm.
type Review struct {
	ID        uuid.UUID // The unique identifier for the review.
	Rating    int       // Integer rating in [1, 5].
	Content   string    // Free-text review body.
	UserID    uuid.UUID // The review author.
	FarmID    uuid.UUID // The reviewed farm.
	CreatedAt time.Time
	UpdatedAt time.Time
}
