// Package candidate loads candidate characters produced by an external
// search engine from YAML files.
package candidate

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/gearopt/internal/game/affix"
	"github.com/cory-johannsen/gearopt/internal/game/attribute"
	"github.com/cory-johannsen/gearopt/internal/game/character"
)

// ErrNonFinite is returned when an attribute value is NaN or infinite.
var ErrNonFinite = errors.New("non-finite attribute value")

// Entry is the on-disk form of one candidate.
type Entry struct {
	CombinationID  *uint32            `yaml:"combination_id"`
	RankBy         string             `yaml:"rankby"`
	Gear           []string           `yaml:"gear"`
	BaseAttributes map[string]float32 `yaml:"base_attributes"`
	Attributes     map[string]float32 `yaml:"attributes"`
}

// File is the on-disk form of a candidate file.
type File struct {
	Candidates []Entry `yaml:"candidates"`
}

// Character converts e into a Character. An empty RankBy falls back to rankby.
//
// Precondition: rankby must be a declared Attribute.
// Postcondition: Returns the Character or an error naming the bad field.
func (e Entry) Character(rankby attribute.Attribute) (character.Character, error) {
	if e.RankBy != "" {
		r, err := attribute.ParseAttribute(e.RankBy)
		if err != nil {
			return character.Character{}, fmt.Errorf("rankby: %w", err)
		}
		rankby = r
	}
	c := character.New(rankby)
	if e.CombinationID != nil {
		c.CombinationID = *e.CombinationID
	}

	gear, err := affix.ParseGear(e.Gear)
	if err != nil {
		return character.Character{}, fmt.Errorf("gear: %w", err)
	}
	c.Gear = gear

	if err := fillVector(&c.BaseAttributes, e.BaseAttributes); err != nil {
		return character.Character{}, fmt.Errorf("base_attributes: %w", err)
	}
	if err := fillVector(&c.Attributes, e.Attributes); err != nil {
		return character.Character{}, fmt.Errorf("attributes: %w", err)
	}
	return c, nil
}

func fillVector(v *attribute.Vector, values map[string]float32) error {
	for name, x := range values {
		a, err := attribute.ParseAttribute(name)
		if err != nil {
			return err
		}
		if f := float64(x); math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %s = %v", ErrNonFinite, name, x)
		}
		v.Set(a, x)
	}
	return nil
}

// Parse decodes a candidate file body.
//
// Postcondition: Returns candidates in file order or a non-nil error naming the entry index.
func Parse(data []byte, rankby attribute.Attribute) ([]character.Character, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding candidates: %w", err)
	}
	out := make([]character.Character, 0, len(f.Candidates))
	for i, e := range f.Candidates {
		c, err := e.Character(rankby)
		if err != nil {
			return nil, fmt.Errorf("candidate %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// LoadFile reads and parses a single candidate file.
//
// Precondition: path must name a readable YAML file.
func LoadFile(path string, rankby attribute.Attribute) ([]character.Character, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	cs, err := Parse(data, rankby)
	if err != nil {
		return nil, fmt.Errorf("parsing candidate file %s: %w", path, err)
	}
	return cs, nil
}

// LoadDir reads every .yaml/.yml file in dir in name order.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all candidates (may be empty) or a non-nil error.
func LoadDir(dir string, rankby attribute.Attribute) ([]character.Character, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	var all []character.Character
	for _, path := range files {
		cs, err := LoadFile(path, rankby)
		if err != nil {
			return nil, err
		}
		all = append(all, cs...)
	}
	return all, nil
}

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
