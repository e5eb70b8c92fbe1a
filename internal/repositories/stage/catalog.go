package stage

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/Hagni1/jurney/internal/entities"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the decoded catalog file
type Catalog struct {
	Enemies []entities.Enemy `yaml:"enemies"`
	Stages  []entities.Stage `yaml:"stages"`
}

// DefaultCatalog returns the catalog compiled into the binary
func DefaultCatalog() (*Catalog, error) {
	return DecodeCatalog(bytes.NewReader(defaultCatalog))
}

// LoadCatalog reads a catalog file, or the default one when path is empty
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}

	f, err := os.Open(path) // #nosec G304 -- operator supplied path
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeCatalog(f)
}

// DecodeCatalog parses and validates a YAML catalog. Unknown keys are rejected.
func DecodeCatalog(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	sort.Slice(c.Stages, func(i, j int) bool { return c.Stages[i].ID < c.Stages[j].ID })
	return &c, nil
}

// Validate checks every stage references a known enemy and all numbers are usable
func (c *Catalog) Validate() error {
	if len(c.Stages) == 0 {
		return fmt.Errorf("catalog has no stages")
	}

	enemies := make(map[string]struct{}, len(c.Enemies))
	for _, e := range c.Enemies {
		if e.ID == "" {
			return fmt.Errorf("enemy without id")
		}
		if _, dup := enemies[e.ID]; dup {
			return fmt.Errorf("duplicate enemy %q", e.ID)
		}
		if e.BaseSpeed < 1 {
			return fmt.Errorf("enemy %q: base_speed must be at least 1", e.ID)
		}
		if e.StrengthPerLevel < 0 || e.DexterityPerLevel < 0 || e.IntelligencePerLevel < 0 {
			return fmt.Errorf("enemy %q: per level attributes cannot be negative", e.ID)
		}
		enemies[e.ID] = struct{}{}
	}

	stages := make(map[int]struct{}, len(c.Stages))
	for _, s := range c.Stages {
		if s.ID < 1 {
			return fmt.Errorf("stage id %d must be at least 1", s.ID)
		}
		if _, dup := stages[s.ID]; dup {
			return fmt.Errorf("duplicate stage %d", s.ID)
		}
		if s.EnemyLevel < 1 {
			return fmt.Errorf("stage %d: enemy_level must be at least 1", s.ID)
		}
		if _, ok := enemies[s.EnemyID]; !ok {
			return fmt.Errorf("stage %d: unknown enemy %q", s.ID, s.EnemyID)
		}
		stages[s.ID] = struct{}{}
	}

	// stage gating unlocks one stage at a time, so ids must be 1..n
	for id := 1; id <= len(c.Stages); id++ {
		if _, ok := stages[id]; !ok {
			return fmt.Errorf("stage %d is missing, stage ids must be contiguous from 1", id)
		}
	}

	return nil
}
