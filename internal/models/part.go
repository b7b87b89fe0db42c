package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part is one row of the part master: static attributes of a finished-goods
// part number. Parts are upserted, never deleted.
type Part struct {
	PartNo     string          `gorm:"primaryKey;type:varchar(64)" json:"part_no"`
	Weight     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"weight"`
	Customer   string          `gorm:"type:varchar(128)" json:"customer"`
	TubeLength int             `json:"tube_length_mm"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Part) TableName() string { return "part_master" }
