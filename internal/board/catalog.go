package board

// UpsertPart inserts or overwrites the catalog entry for p.PartNo and
// records a master_update event attributed to user. Upserts always
// succeed; repeating the same upsert leaves the catalog unchanged (one
// more event is still appended, the log is a journal, not a diff).
func (b *Board) UpsertPart(p Part, user string) Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.catalog[p.PartNo] = p
	return b.appendEvent(ActionMasterUpdate, "", 0, 0, p.PartNo, 0, user, "part master upsert")
}

// GetPart looks up a part by number. A miss is an absent result, not an
// error.
func (b *Board) GetPart(partNo string) (Part, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p, ok := b.catalog[partNo]
	return p, ok
}

// ListParts returns every catalog entry in part-number order.
func (b *Board) ListParts() []Part {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.listPartsLocked()
}
