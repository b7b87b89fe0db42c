package models

import "time"

// RackCell is one persisted cell of a rack grid. The full grid is written on
// every save, including empty cells, so the table always mirrors the board
// shape exactly. Row/Col are 1-based to match what operators see on the
// physical rack.
type RackCell struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Rack     string `gorm:"type:varchar(8);not null;uniqueIndex:idx_rack_row_col" json:"rack"`
	Row      int    `gorm:"not null;uniqueIndex:idx_rack_row_col" json:"row"`
	Col      int    `gorm:"not null;uniqueIndex:idx_rack_row_col" json:"col"`
	PartNo   string `gorm:"type:varchar(64)" json:"part_no"` // empty string = empty cell
	Quantity int    `gorm:"not null;default:0" json:"quantity"`

	UpdatedAt time.Time `json:"updated_at"`
}

func (RackCell) TableName() string { return "racks" }
