package contracts

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type CampaignCreateRequest struct {
	UserId      ulid.ULID
	CategoryId  *ulid.ULID
	Title       string
	Description string
	GoalAmount  float64
	StartDate   time.Time
	EndDate     time.Time
	Status      string
}

type CampaignUpdateRequest struct {
	Id          ulid.ULID
	UserId      ulid.ULID
	CategoryId  *ulid.ULID
	Title       string
	Description string
	GoalAmount  float64
	StartDate   time.Time
	EndDate     time.Time
	Status      string
}
