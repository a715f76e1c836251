// Package variant builds piece sets and games from YAML definitions, so new
// rulesets can be described without writing Go rule tables.
package variant

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"board-engine/boardmg"
	"board-engine/game"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidDefinition = errors.New("invalid variant definition")
	ErrUnknownVariant    = errors.New("unknown variant")
)

// maxDefinitionBytes caps how much of a definition file is read.
const maxDefinitionBytes = 1 << 20

var validate = validator.New()

// Definition is the YAML form of a variant.
type Definition struct {
	Name   string               `yaml:"name" validate:"required"`
	Rows   int                  `yaml:"rows" validate:"min=1,max=64"`
	Cols   int                  `yaml:"cols" validate:"min=1,max=64"`
	Kinds  []KindDef            `yaml:"kinds" validate:"required,min=1,dive"`
	Layout []int                `yaml:"layout"`
	Rules  map[string][]RuleDef `yaml:"rules" validate:"required,dive,keys,required,endkeys,min=1,dive"`
}

// KindDef declares one piece kind and its code magnitude.
type KindDef struct {
	Name  string `yaml:"name" validate:"required"`
	Value int    `yaml:"value" validate:"min=1"`
}

// RuleDef is one entry of a kind's rule table.
type RuleDef struct {
	Vector      []int  `yaml:"vector" validate:"len=2"`
	MaxSteps    int    `yaml:"max_steps" validate:"min=0"`
	Capture     string `yaml:"capture" validate:"required,oneof=none matching opposing all"`
	MaxCaptures int    `yaml:"max_captures" validate:"min=0"`
	When        string `yaml:"when" validate:"omitempty,oneof=unmoved target-opposes target-empty"`
}

// Parse decodes and validates a definition. Unknown fields are rejected.
func Parse(data []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var def Definition
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	if err := validate.Struct(&def); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDefinition, def.Name, err)
	}
	if err := def.check(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDefinition, def.Name, err)
	}
	return &def, nil
}

// Load reads and parses the definition stored at path.
func Load(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxDefinitionBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(data) > maxDefinitionBytes {
		return nil, fmt.Errorf("%s: larger than %d bytes: %w", path, maxDefinitionBytes, ErrInvalidDefinition)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// check covers what struct tags cannot: cross references between fields.
func (d *Definition) check() error {
	kinds := make(map[string]bool, len(d.Kinds))
	values := make(map[int]string, len(d.Kinds))
	for _, k := range d.Kinds {
		if kinds[k.Name] {
			return fmt.Errorf("kind %q declared twice", k.Name)
		}
		if prev, ok := values[k.Value]; ok {
			return fmt.Errorf("kinds %q and %q share value %d", prev, k.Name, k.Value)
		}
		kinds[k.Name] = true
		values[k.Value] = k.Name
	}
	for name, rules := range d.Rules {
		if !kinds[name] {
			return fmt.Errorf("rules for undeclared kind %q", name)
		}
		for i, r := range rules {
			if r.Vector[0] == 0 && r.Vector[1] == 0 {
				return fmt.Errorf("%s rule %d: zero vector", name, i)
			}
		}
	}
	if len(d.Layout) != 0 && len(d.Layout) != d.Rows*d.Cols {
		return fmt.Errorf("layout has %d squares, board has %d", len(d.Layout), d.Rows*d.Cols)
	}
	return nil
}

// Build turns the definition into a taxonomy and a piece set.
func (d *Definition) Build() (*boardmg.Taxonomy, *boardmg.DynamicPieceSet, error) {
	names := make(map[boardmg.Kind]string, len(d.Kinds))
	for _, k := range d.Kinds {
		names[boardmg.Kind(k.Value)] = k.Name
	}
	tax, err := boardmg.NewTaxonomy(names)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", d.Name, err)
	}
	set := boardmg.NewDynamicPieceSet()
	for name, defs := range d.Rules {
		kind, ok := tax.KindByName(name)
		if !ok {
			return nil, nil, fmt.Errorf("%s: rules for undeclared kind %q: %w", d.Name, name, ErrInvalidDefinition)
		}
		for _, r := range defs {
			set.Insert(kind, r.rule())
		}
	}
	return tax, set, nil
}

// NewGame builds the board described by the definition and a game over it.
// A definition without a layout starts from an empty board.
func (d *Definition) NewGame(opts ...game.Option) (*game.Game, error) {
	tax, set, err := d.Build()
	if err != nil {
		return nil, err
	}
	layout := d.Layout
	if len(layout) == 0 {
		layout = make([]int, d.Rows*d.Cols)
	}
	b, err := boardmg.NewBoard(d.Rows, d.Cols, layout, tax)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Name, err)
	}
	return game.New(set, b, opts...), nil
}

func (r RuleDef) rule() boardmg.Rule {
	m := boardmg.NewMove(r.Vector[0], r.Vector[1], r.MaxSteps)
	n := r.MaxCaptures
	if n == 0 {
		n = 1
	}
	var c boardmg.CaptureRule
	switch r.Capture {
	case "matching":
		c = boardmg.CaptureMatching(n)
	case "opposing":
		c = boardmg.CaptureOpposing(n)
	case "all":
		c = boardmg.CaptureAll(n)
	default:
		c = boardmg.CaptureNone()
	}
	switch r.When {
	case "unmoved":
		return boardmg.WhenUnmoved(m, c)
	case "target-opposes":
		return boardmg.WhenTargetOpposes(m, c)
	case "target-empty":
		return boardmg.WhenTargetEmpty(m, c)
	default:
		return boardmg.FreeRule(m, c)
	}
}
