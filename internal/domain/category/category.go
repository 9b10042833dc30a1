package category

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Category struct {
	Id          ulid.ULID `json:"id" gorm:"type:varchar(26);primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_name"`
	Description string    `json:"description,omitempty" gorm:"type:varchar(255)"`
	Icon        string    `json:"icon,omitempty" gorm:"type:varchar(50)"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Preenchido apenas na listagem.
	CampaignsCount int64 `json:"campaignsCount" gorm:"-"`
}

func (Category) TableName() string {
	return "categories"
}
