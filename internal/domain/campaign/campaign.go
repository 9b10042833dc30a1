package campaign

import (
	"math"
	"time"

	"github.com/gosimple/slug"
	"github.com/oklog/ulid/v2"
)

type CampaignStatus string

const (
	StatusDraft  CampaignStatus = "draft"
	StatusActive CampaignStatus = "active"
	StatusFunded CampaignStatus = "funded"
	StatusClosed CampaignStatus = "closed"
)

func (s CampaignStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusFunded, StatusClosed:
		return true
	}
	return false
}

type Campaign struct {
	Id            ulid.ULID      `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId        ulid.ULID      `gorm:"type:varchar(26);index:idx_campaigns_user_id;not null" json:"userId"`
	CategoryId    *ulid.ULID     `gorm:"type:varchar(26);index:idx_campaigns_category_id" json:"categoryId,omitempty"`
	Title         string         `gorm:"type:varchar(255);not null" json:"title"`
	Slug          string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_campaigns_slug" json:"slug"`
	Description   string         `gorm:"type:text;not null" json:"description"`
	ImageURL      string         `gorm:"type:varchar(500)" json:"imageUrl,omitempty"`
	GoalAmount    float64        `gorm:"type:decimal(12,2);not null" json:"goalAmount"`
	CurrentAmount float64        `gorm:"type:decimal(12,2);not null;default:0" json:"currentAmount"`
	StartDate     time.Time      `gorm:"type:date;not null" json:"startDate"`
	EndDate       time.Time      `gorm:"type:date;not null" json:"endDate"`
	Status        CampaignStatus `gorm:"type:varchar(20);default:'draft';index:idx_campaigns_status" json:"status"`
	CreatedAt     time.Time      `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Campaign) TableName() string {
	return "campaigns"
}

// Progress retorna o percentual arrecadado com uma casa decimal,
// limitado a 100. Metas sem valor definido retornam 0.
func (c *Campaign) Progress() float64 {
	return ProgressPercentage(c.CurrentAmount, c.GoalAmount)
}

// IsExpired indica se o prazo de arrecadação já passou.
func (c *Campaign) IsExpired() bool {
	return time.Now().After(c.EndDate)
}

func ProgressPercentage(current, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	percentage := math.Round(current/goal*1000) / 10
	return math.Min(100, percentage)
}

// Slugify deriva o identificador de URL a partir do título.
func Slugify(title string) string {
	return slug.Make(title)
}
