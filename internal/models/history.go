package models

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEvent is one row of the append-only movement journal. Rows are
// inserted once and never updated or deleted. Seq preserves append order
// even when two events share a timestamp.
type HistoryEvent struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Seq       int64     `gorm:"autoIncrement;uniqueIndex" json:"seq"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
	User      string    `gorm:"column:user_name;type:varchar(128);not null" json:"user"`
	Action    string    `gorm:"type:varchar(16);not null" json:"action"` // add, subtract, master_update
	Rack      string    `gorm:"type:varchar(8)" json:"rack"`
	Row       int       `json:"row"`
	Col       int       `json:"col"`
	PartNo    string    `gorm:"type:varchar(64);index" json:"part_no"`
	Quantity  int       `json:"quantity"`
	Note      string    `gorm:"type:varchar(256)" json:"note,omitempty"`
}

func (HistoryEvent) TableName() string { return "history" }
