// Package roster loads the static staff and room configuration the service starts from.
package roster

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"atoll/config"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed roster.yaml
var defaultRoster []byte

var (
	ErrEmptyRoster = errors.New("roster has no staff or no rooms")
	ErrInvalidItem = errors.New("invalid roster entry")
)

type Staff struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	PIN     string `yaml:"pin"`
	PINHash string `yaml:"pin_hash"`
	Palette string `yaml:"palette"`
}

// Secret is the stored form of the PIN, preferring the hash.
func (s Staff) Secret() string {
	if s.PINHash != "" {
		return s.PINHash
	}

	return s.PIN
}

type Room struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type Roster struct {
	Staff []Staff `yaml:"staff"`
	Rooms []Room  `yaml:"rooms"`
}

// Load reads ROSTER_PATH when set and the embedded roster otherwise.
func Load(cfg *config.Config) (*Roster, error) {
	data := defaultRoster
	source := "embedded"

	if path := cfg.Roster.Path; path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("failed to read roster file")

			return nil, fmt.Errorf("failed to read roster file: %w", err)
		}

		data = file
		source = path
	}

	roster, err := Parse(data)
	if err != nil {
		log.Error().Err(err).Str("source", source).Msg("failed to parse roster")

		return nil, err
	}

	log.Info().
		Str("source", source).
		Int("staff", len(roster.Staff)).
		Int("rooms", len(roster.Rooms)).
		Msg("Roster loaded")

	return roster, nil
}

func Parse(data []byte) (*Roster, error) {
	var roster Roster

	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("failed to decode roster: %w", err)
	}

	if len(roster.Staff) == 0 || len(roster.Rooms) == 0 {
		return nil, ErrEmptyRoster
	}

	staffIDs := map[string]struct{}{}

	for idx, staff := range roster.Staff {
		switch {
		case strings.TrimSpace(staff.ID) == "" || strings.TrimSpace(staff.Name) == "":
			return nil, fmt.Errorf("%w: staff #%d needs an id and a name", ErrInvalidItem, idx+1)
		case staff.Secret() == "":
			return nil, fmt.Errorf("%w: staff %s has no pin", ErrInvalidItem, staff.ID)
		}

		if _, dup := staffIDs[staff.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate staff id %s", ErrInvalidItem, staff.ID)
		}

		staffIDs[staff.ID] = struct{}{}
	}

	roomIDs := map[string]struct{}{}

	for idx, room := range roster.Rooms {
		if strings.TrimSpace(room.ID) == "" || strings.TrimSpace(room.Name) == "" {
			return nil, fmt.Errorf("%w: room #%d needs an id and a name", ErrInvalidItem, idx+1)
		}

		if _, dup := roomIDs[room.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate room id %s", ErrInvalidItem, room.ID)
		}

		roomIDs[room.ID] = struct{}{}
	}

	return &roster, nil
}
