package confederation

import (
	"career-tracker/internal/config"
	"career-tracker/internal/domain"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

//go:embed confederations.yaml
var defaultTable []byte

type file struct {
	Confederations []domain.Confederation `yaml:"confederations"`
}

// Table is the read-only confederation metadata used by the Qualifiers mode.
type Table struct {
	byID  map[string]domain.Confederation
	order []string
}

func New(cfg *config.Config, logger zerolog.Logger) (*Table, error) {
	data := defaultTable
	source := "embedded"
	if cfg.ConfederationsFile != "" {
		b, err := os.ReadFile(cfg.ConfederationsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read confederations file: %w", err)
		}
		data = b
		source = cfg.ConfederationsFile
	}

	table, err := Parse(data)
	if err != nil {
		logger.Error().Err(err).Str("source", source).Msg("failed to load confederations")
		return nil, err
	}

	logger.Info().Str("source", source).Int("count", len(table.order)).Msg("confederations loaded")
	return table, nil
}

// Default returns the embedded table. It panics only if the embedded YAML is broken.
func Default() *Table {
	t, err := Parse(defaultTable)
	if err != nil {
		panic(err)
	}
	return t
}

func Parse(data []byte) (*Table, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse confederations: %w", err)
	}
	if len(f.Confederations) == 0 {
		return nil, fmt.Errorf("no confederations defined")
	}

	t := &Table{byID: make(map[string]domain.Confederation, len(f.Confederations))}
	for _, c := range f.Confederations {
		if err := validate(c); err != nil {
			return nil, err
		}
		key := strings.ToLower(c.ID)
		if _, dup := t.byID[key]; dup {
			return nil, fmt.Errorf("duplicate confederation %q", c.ID)
		}
		t.byID[key] = c
		t.order = append(t.order, key)
	}
	return t, nil
}

func validate(c domain.Confederation) error {
	switch {
	case c.ID == "" || c.Name == "":
		return fmt.Errorf("confederation needs an id and a name")
	case c.TotalMatches <= 0:
		return fmt.Errorf("confederation %s: total_matches must be positive", c.ID)
	case c.DirectSlots < 0 || c.PlayoffSlots < 0:
		return fmt.Errorf("confederation %s: slots cannot be negative", c.ID)
	case c.PointMultiplier <= 0:
		return fmt.Errorf("confederation %s: point_multiplier must be positive", c.ID)
	case len(c.Teams) == 0:
		return fmt.Errorf("confederation %s: no teams", c.ID)
	}

	switch c.Simulation {
	case domain.SimulationLeague:
	case domain.SimulationGroups:
		if c.GroupSize < 2 || c.GroupSize-1 > len(c.Teams) {
			return fmt.Errorf("confederation %s: group_size %d does not fit %d teams", c.ID, c.GroupSize, len(c.Teams))
		}
	default:
		return fmt.Errorf("confederation %s: unknown simulation %q", c.ID, c.Simulation)
	}
	return nil
}

// Get looks a confederation up by id or name, ignoring case.
func (t *Table) Get(key string) (domain.Confederation, bool) {
	k := strings.ToLower(strings.TrimSpace(key))
	if c, ok := t.byID[k]; ok {
		return c, true
	}
	for _, id := range t.order {
		if strings.EqualFold(t.byID[id].Name, k) {
			return t.byID[id], true
		}
	}
	return domain.Confederation{}, false
}

func (t *Table) All() []domain.Confederation {
	out := make([]domain.Confederation, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.byID[id])
	}
	return out
}
