package review

import "time"

type Review struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product"`
	UserID    int64     `json:"user"`
	Text      string    `json:"text"`
	Rating    int32     `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateReviewParams struct {
	ProductID int64
	UserID    int64
	Text      string
	Rating    int32
}
