package registry

import (
	"fmt"
	"strconv"

	"championship-pipeline/core/table"

	"go.uber.org/zap"
)

// Policy controls how Attach treats rows whose club name does not resolve.
type Policy int

const (
	// Strict aborts the whole attach operation on the first unresolvable
	// row, surfacing the offending raw name. Used for closed-world inputs
	// where every row must belong to a known club.
	Strict Policy = iota
	// Permissive leaves club_id empty on unresolvable rows and reports
	// their count; the operation still completes.
	Permissive
)

// Stats reports what an attach operation processed.
type Stats struct {
	// Rows is the number of input rows.
	Rows int
	// Unresolved is the number of rows whose club name did not resolve.
	// Always zero when the operation succeeds under Strict.
	Unresolved int
}

// Attacher resolves the club-name column of arbitrary tables against a
// registry and merges the canonical identity in.
type Attacher struct {
	reg *Registry
	log *zap.Logger
}

// NewAttacher creates an attacher over the given registry.
func NewAttacher(reg *Registry, log *zap.Logger) *Attacher {
	return &Attacher{reg: reg, log: log}
}

// Attach resolves every value of clubCol through the source vocabulary and
// returns a new table carrying club_id and the canonical club name in front,
// with the raw club column dropped so downstream consumers cannot re-derive
// identity from inconsistent raw strings.
//
// A missing clubCol fails with SchemaError. Unresolvable rows follow the
// policy: Strict returns the UnknownClubNameError, Permissive leaves club_id
// empty and counts the row. Row and unresolved counts are logged so alias
// vocabulary drift shows up season over season.
func (a *Attacher) Attach(t *table.Table, clubCol string, source Source, policy Policy) (*table.Table, Stats, error) {
	stats := Stats{Rows: t.Len()}

	if !t.HasColumn(clubCol) {
		return nil, stats, &SchemaError{Column: clubCol}
	}

	ids := make([]string, t.Len())
	names := make([]string, t.Len())
	for row := 0; row < t.Len(); row++ {
		raw := t.Get(row, clubCol)
		club, err := a.reg.Resolve(raw, source)
		if err != nil {
			if policy == Strict {
				return nil, stats, fmt.Errorf("attach club_id on column %q: %w", clubCol, err)
			}
			stats.Unresolved++
			continue
		}
		ids[row] = strconv.Itoa(club.ID)
		names[row] = club.Name
	}

	out := t.Clone()
	out.DropColumn(clubCol)
	if err := out.AddColumn(ColClubID, ids); err != nil {
		return nil, stats, err
	}
	if err := out.AddColumn("club", names); err != nil {
		return nil, stats, err
	}
	out.Reorder(ColClubID, "club")

	a.log.Info("attached club identity",
		zap.String("column", clubCol),
		zap.String("source", string(source)),
		zap.Int("rows", stats.Rows),
		zap.Int("unresolved", stats.Unresolved),
	)
	if stats.Unresolved > 0 {
		a.log.Warn("rows left without club_id; alias vocabulary may need extension",
			zap.String("source", string(source)),
			zap.Int("unresolved", stats.Unresolved),
		)
	}

	return out, stats, nil
}
