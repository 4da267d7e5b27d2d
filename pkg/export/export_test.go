package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kilianp07/rote/core/model"
)

func samplePlan() model.Plan {
	return model.Plan{
		RunID:     "run-1",
		CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Assignments: []model.Assignment{
			{Period: 1, ParticipantName: "Han, Solo", ParticipantCode: "123", Alignment: "LS", Phase: "1", Location: "Coruscant", Operation: "2", Capability: "Rey", MinLevel: 7},
			{Period: 2, ParticipantName: "Leia", ParticipantCode: "456", Alignment: "DS", Phase: "1", Location: "Mustafar", Operation: "1", Capability: "Vader", MinLevel: 0, RequirementIndex: 3},
		},
		Unfilled: []model.Unfilled{{Requirement: model.Requirement{Index: 2, Capability: "Z", MinLevel: 9}, Reason: model.ReasonNoOwner}},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, samplePlan().Assignments))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "day,player_name,ally_code,alignment,phase,planet,operation,character_name,relic_required", lines[0])
	assert.Equal(t, `1,"Han, Solo",123,LS,1,Coruscant,2,Rey,7`, lines[1])
	assert.Equal(t, "2,Leia,456,DS,1,Mustafar,1,Vader,0", lines[2])
}

func TestWriteUnfilledCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteUnfilledCSV(&buf, samplePlan().Unfilled))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2,,,,,Z,9,no_owner", lines[1])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, samplePlan()))
	var got model.Plan
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, samplePlan(), got)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, samplePlan()))
	assert.Contains(t, buf.String(), "run_id: run-1")
	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &raw))
	asn, ok := raw["assignments"].([]any)
	require.True(t, ok)
	assert.Len(t, asn, 2)
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "xml", samplePlan())
	assert.Error(t, err)
}
