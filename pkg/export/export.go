// Package export writes plans in the formats consumed by the guild: the
// assignment CSV read by officers, plus JSON and YAML for bots.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/rote/core/model"
)

// AssignmentHeader is the column order of the assignment table.
var AssignmentHeader = []string{"day", "player_name", "ally_code", "alignment", "phase", "planet", "operation", "character_name", "relic_required"}

// UnfilledHeader is the column order of the unfilled requirements table.
var UnfilledHeader = []string{"index", "alignment", "phase", "planet", "operation", "character_name", "relic_required", "reason"}

// WriteCSV writes the assignments to w in the order they were made.
func WriteCSV(w io.Writer, assignments []model.Assignment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(AssignmentHeader); err != nil {
		return err
	}
	for _, a := range assignments {
		rec := []string{
			strconv.Itoa(a.Period),
			a.ParticipantName,
			a.ParticipantCode,
			a.Alignment,
			a.Phase,
			a.Location,
			a.Operation,
			a.Capability,
			strconv.Itoa(a.MinLevel),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteUnfilledCSV writes the requirements that received no assignment.
func WriteUnfilledCSV(w io.Writer, unfilled []model.Unfilled) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(UnfilledHeader); err != nil {
		return err
	}
	for _, u := range unfilled {
		r := u.Requirement
		rec := []string{
			strconv.Itoa(r.Index),
			r.Alignment,
			r.Phase,
			r.Location,
			r.Operation,
			r.Capability,
			strconv.Itoa(r.MinLevel),
			string(u.Reason),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the whole plan to w in JSON format.
func WriteJSON(w io.Writer, plan model.Plan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}

// WriteYAML writes the whole plan to w in YAML format.
func WriteYAML(w io.Writer, plan model.Plan) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(plan); err != nil {
		return err
	}
	return enc.Close()
}

// Output formats accepted by Write.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Write dispatches on format: "csv" writes the assignment table only.
func Write(w io.Writer, format string, plan model.Plan) error {
	switch format {
	case "", FormatCSV:
		return WriteCSV(w, plan.Assignments)
	case FormatJSON:
		return WriteJSON(w, plan)
	case FormatYAML, "yml":
		return WriteYAML(w, plan)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
