package tables

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/kilianp07/rote/core/assign"
)

// Paths locates the input tables.
type Paths struct {
	Participants string `json:"participants"`
	Characters   string `json:"characters"`
	// Ships is optional.
	Ships        string `json:"ships"`
	Requirements string `json:"requirements"`
}

// SetDefaults applies the file names produced by the scraper.
func (p *Paths) SetDefaults() {
	if p.Participants == "" {
		p.Participants = "player_data.csv"
	}
	if p.Characters == "" {
		p.Characters = "character_relic_data.csv"
	}
	if p.Requirements == "" {
		p.Requirements = "ROTE_OPERATIONS.csv"
	}
}

// Validate checks mandatory paths.
func (p Paths) Validate() error {
	if p.Participants == "" || p.Characters == "" || p.Requirements == "" {
		return fmt.Errorf("participants, characters and requirements paths are required")
	}
	return nil
}

func readFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	recs, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// Load reads every table named in p.
func Load(ctx context.Context, p Paths) (assign.Input, error) {
	var (
		in  assign.Input
		err error
	)
	if in.Participants, err = readFile(p.Participants, ReadParticipants); err != nil {
		return assign.Input{}, fmt.Errorf("participants: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return assign.Input{}, err
	}
	if in.Characters, err = readFile(p.Characters, ReadCharacters); err != nil {
		return assign.Input{}, fmt.Errorf("characters: %w", err)
	}
	if p.Ships != "" {
		if in.Ships, err = readFile(p.Ships, ReadShips); err != nil {
			return assign.Input{}, fmt.Errorf("ships: %w", err)
		}
	}
	if err := ctx.Err(); err != nil {
		return assign.Input{}, err
	}
	if in.Requirements, err = readFile(p.Requirements, ReadRequirements); err != nil {
		return assign.Input{}, fmt.Errorf("requirements: %w", err)
	}
	return in, nil
}
