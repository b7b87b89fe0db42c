package store

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/board"
	"github.com/royvishalprakash-maker/FG-Stock-Board/internal/models"
)

// GormStore is the TableStore over the application database. WriteTable
// replaces the whole table inside one transaction, mirroring the
// delete-worksheet-and-rewrite behavior of the original sheet store.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var _ TableStore = (*GormStore)(nil)

// ReadTable returns the table contents as string rows. Rows come out in a
// stable order: parts by part number, cells by rack/row/col, history by
// append order.
func (s *GormStore) ReadTable(name string) ([]Row, error) {
	switch name {
	case TablePartMaster:
		var recs []models.Part
		if err := s.db.Order("part_no").Find(&recs).Error; err != nil {
			return nil, err
		}
		parts := make([]board.Part, 0, len(recs))
		for _, m := range recs {
			parts = append(parts, board.Part{
				PartNo:     m.PartNo,
				Weight:     m.Weight,
				Customer:   m.Customer,
				TubeLength: m.TubeLength,
			})
		}
		return renderParts(parts), nil

	case TableRacks:
		var recs []models.RackCell
		// "row" needs quoting, it is reserved in Postgres
		if err := s.db.Order(`rack, "row", col`).Find(&recs).Error; err != nil {
			return nil, err
		}
		rows := make([]Row, 0, len(recs))
		for _, m := range recs {
			rows = append(rows, Row{
				"Rack":     m.Rack,
				"Row":      fmt.Sprintf("%d", m.Row),
				"Col":      fmt.Sprintf("%d", m.Col),
				"Part No":  m.PartNo,
				"Quantity": fmt.Sprintf("%d", m.Quantity),
			})
		}
		return rows, nil

	case TableHistory:
		var recs []models.HistoryEvent
		if err := s.db.Order("seq").Find(&recs).Error; err != nil {
			return nil, err
		}
		events := make([]board.Event, 0, len(recs))
		for _, m := range recs {
			events = append(events, board.Event{
				ID:        m.ID.String(),
				Timestamp: m.Timestamp,
				User:      m.User,
				Action:    board.Action(m.Action),
				Rack:      m.Rack,
				Row:       m.Row,
				Col:       m.Col,
				PartNo:    m.PartNo,
				Quantity:  m.Quantity,
				Note:      m.Note,
			})
		}
		return renderEvents(events), nil
	}
	return nil, fmt.Errorf("unknown table %q", name)
}

// WriteTable validates the rows with the same parse functions the load
// path uses, then replaces the table contents in one transaction.
func (s *GormStore) WriteTable(name string, rows []Row) error {
	switch name {
	case TablePartMaster:
		recs := make([]models.Part, 0, len(rows))
		for i, r := range rows {
			p, err := parsePartRow(i, r)
			if err != nil {
				return err
			}
			recs = append(recs, models.Part{
				PartNo:     p.PartNo,
				Weight:     p.Weight,
				Customer:   p.Customer,
				TubeLength: p.TubeLength,
			})
		}
		return s.replace(&models.Part{}, recs, len(recs))

	case TableRacks:
		recs := make([]models.RackCell, 0, len(rows))
		for i, r := range rows {
			c, err := parseRackRow(i, r)
			if err != nil {
				return err
			}
			recs = append(recs, models.RackCell{
				Rack:     c.Rack,
				Row:      c.Row,
				Col:      c.Col,
				PartNo:   c.PartNo,
				Quantity: c.Quantity,
			})
		}
		return s.replace(&models.RackCell{}, recs, len(recs))

	case TableHistory:
		recs := make([]models.HistoryEvent, 0, len(rows))
		for i, r := range rows {
			ev, err := parseHistoryRow(i, r)
			if err != nil {
				return err
			}
			id, err := uuid.Parse(ev.ID)
			if err != nil {
				return &ParseError{Table: TableHistory, Index: i, Field: "ID", Reason: err.Error()}
			}
			recs = append(recs, models.HistoryEvent{
				ID:        id,
				Timestamp: ev.Timestamp,
				User:      ev.User,
				Action:    string(ev.Action),
				Rack:      ev.Rack,
				Row:       ev.Row,
				Col:       ev.Col,
				PartNo:    ev.PartNo,
				Quantity:  ev.Quantity,
				Note:      ev.Note,
			})
		}
		return s.replace(&models.HistoryEvent{}, recs, len(recs))
	}
	return fmt.Errorf("unknown table %q", name)
}

// replace deletes every row of the model's table and inserts recs.
// n guards the insert: gorm rejects creating an empty slice.
func (s *GormStore) replace(model interface{}, recs interface{}, n int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		return tx.CreateInBatches(recs, 500).Error
	})
}
