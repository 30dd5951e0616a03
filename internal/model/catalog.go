package model

import "time"

type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Classification is the age rating of a movie. The set is closed; anything
// else is rejected at the request boundary.
type Classification string

const (
	ClassificationSeven    Classification = "seven"
	ClassificationThirteen Classification = "thirteen"
	ClassificationSixteen  Classification = "sixteen"
	ClassificationEighteen Classification = "eighteen"
)

func (c Classification) Valid() bool {
	switch c {
	case ClassificationSeven, ClassificationThirteen, ClassificationSixteen, ClassificationEighteen:
		return true
	}
	return false
}

type Movie struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	ImagePath      string         `json:"image_path"`
	Description    string         `json:"description"`
	Duration       int            `json:"duration"`
	Classification Classification `json:"classification"`
	CategoryID     int            `json:"category_id"`
	CreatedAt      time.Time      `json:"created_at"`
}
