package contribution

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Contribution struct {
	Id         ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	CampaignId ulid.ULID `gorm:"type:varchar(26);index:idx_contributions_campaign_id;not null" json:"campaignId"`
	UserId     ulid.ULID `gorm:"type:varchar(26);index:idx_contributions_user_id;not null" json:"userId"`
	Amount     float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	Message    string    `gorm:"type:varchar(500)" json:"message,omitempty"`
	Anonymous  bool      `gorm:"default:false" json:"anonymous"`
	CreatedAt  time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
}

func (Contribution) TableName() string {
	return "contributions"
}
