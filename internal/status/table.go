// Package status holds the shared state between the background prober and
// the foreground dashboard: the protocol status table, the health band
// classification, and the one-shot run flag.
package status

import "sync"

// Record is one row of the status table: a protocol name, its current
// 0-10 health score, and a short description of what is being tested.
// The band is always derived from the score via BandFor, never stored.
type Record struct {
	Name   string
	Score  int
	Detail string

	// Updated is false until the first probe result lands, letting the
	// dashboard render "pending" instead of a real zero score.
	Updated bool
}

// Band returns the health band for the record's current score.
func (r Record) Band() Band {
	return BandFor(r.Score)
}

// Table is the shared protocol status table. The name set is fixed at
// construction; the prober updates scores, the dashboard reads snapshots.
// Every access is a short critical section under a single mutex, so lock
// hold time is independent of probe latency.
type Table struct {
	mu      sync.Mutex
	records []Record
	index   map[string]int // name -> position in records
}

// NewTable builds a table with one row per entry, preserving order.
// All rows start at score 0 with the given detail text.
func NewTable(names, details []string) *Table {
	t := &Table{
		records: make([]Record, 0, len(names)),
		index:   make(map[string]int, len(names)),
	}
	for i, name := range names {
		if _, dup := t.index[name]; dup {
			continue
		}
		detail := ""
		if i < len(details) {
			detail = details[i]
		}
		t.index[name] = len(t.records)
		t.records = append(t.records, Record{Name: name, Score: 0, Detail: detail})
	}
	return t
}

// Update overwrites the score and detail for an existing row. Both fields
// change under the same lock, so a snapshot never observes a half-applied
// update. Unknown names are silently ignored: the catalog and table are
// built together, so a miss here is a programming error we absorb rather
// than crash the prober over.
func (t *Table) Update(name string, score int, detail string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i, ok := t.index[name]
	if !ok {
		return
	}
	t.records[i].Score = score
	t.records[i].Detail = detail
	t.records[i].Updated = true
}

// Snapshot returns a copy of all rows in insertion order. The copy is the
// caller's to keep; later updates never mutate it.
func (t *Table) Snapshot() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// Len returns the number of rows.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.records)
}
