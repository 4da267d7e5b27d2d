// Package tables reads the scraper's CSV exports into normalized records.
// Numeric fields go through ParseCount or ParseLevel so malformed values never
// fail a run; only structural problems (unreadable file, missing header) are
// errors.
package tables

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/kilianp07/rote/core/model"
)

const bom = "\ufeff"

// Column names as written by the scraper.
const (
	colAllyCode      = "ally_code"
	colPlayerName    = "player_name"
	colGP            = "gp"
	colCharacterName = "character_name"
	colRelicLevel    = "relic_level"
	colShipName      = "ship_name"
	colStars         = "stars"
	colAlignment     = "alignment"
	colPhase         = "phase"
	colPlanet        = "planet"
	colOperation     = "operation"
	colRelicRequired = "relicrequired"
)

type row struct {
	cols   map[string]int
	fields []string
}

// get returns the trimmed field in NFC form, so names typed with combining
// accents in one table match precomposed ones in another.
func (r row) get(name string) string {
	i, ok := r.cols[name]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return norm.NFC.String(strings.TrimSpace(r.fields[i]))
}

// readRows reads a header-addressed CSV table and calls fn for each data row.
func readRows(r io.Reader, required []string, fn func(row)) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return ErrEmptyTable
	}
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, bom)
		}
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read row: %w", err)
		}
		if len(fields) == 1 && strings.TrimSpace(fields[0]) == "" {
			continue
		}
		fn(row{cols: cols, fields: fields})
	}
}

// ReadParticipants reads the guild roster table.
func ReadParticipants(r io.Reader) ([]model.Participant, error) {
	var out []model.Participant
	err := readRows(r, []string{colAllyCode, colPlayerName}, func(rw row) {
		out = append(out, model.Participant{
			Code:     rw.get(colAllyCode),
			Name:     rw.get(colPlayerName),
			Strength: ParseCount(rw.get(colGP)),
		})
	})
	return out, err
}

// ReadCharacters reads the character ownership table.
func ReadCharacters(r io.Reader) ([]model.Ownership, error) {
	var out []model.Ownership
	err := readRows(r, []string{colAllyCode, colCharacterName, colRelicLevel}, func(rw row) {
		out = append(out, model.Ownership{
			Code:       rw.get(colAllyCode),
			Capability: rw.get(colCharacterName),
			Level:      ParseCount(rw.get(colRelicLevel)),
		})
	})
	return out, err
}

// ReadShips reads the ship ownership table.
func ReadShips(r io.Reader) ([]model.ShipOwnership, error) {
	var out []model.ShipOwnership
	err := readRows(r, []string{colAllyCode, colShipName}, func(rw row) {
		out = append(out, model.ShipOwnership{
			Code:  rw.get(colAllyCode),
			Ship:  rw.get(colShipName),
			Stars: ParseCount(rw.get(colStars)),
		})
	})
	return out, err
}

// ReadRequirements reads the operations table, numbering rows in file order.
func ReadRequirements(r io.Reader) ([]model.Requirement, error) {
	var out []model.Requirement
	err := readRows(r, []string{colCharacterName}, func(rw row) {
		out = append(out, model.Requirement{
			Index:      len(out),
			Alignment:  rw.get(colAlignment),
			Phase:      rw.get(colPhase),
			Location:   rw.get(colPlanet),
			Operation:  rw.get(colOperation),
			Capability: rw.get(colCharacterName),
			MinLevel:   ParseLevel(rw.get(colRelicRequired)),
		})
	})
	return out, err
}
