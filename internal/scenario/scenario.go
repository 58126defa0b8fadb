// Package scenario loads YAML files describing combatants and the matchups
// to run between them.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dicesim/internal/engine"

	"gopkg.in/yaml.v3"
)

var ErrUnknownModel = errors.New("unknown model")

// Side is a matchup participant: a reference by name or an inline model.
type Side struct {
	Ref    string
	Inline *Model
}

// UnmarshalYAML accepts either a scalar model name or a mapping.
func (s *Side) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		return n.Decode(&s.Ref)
	case yaml.MappingNode:
		s.Inline = &Model{}
		return n.Decode(s.Inline)
	default:
		return fmt.Errorf("line %d: side must be a model name or mapping", n.Line)
	}
}

// Label names the side for display.
func (s Side) Label() string {
	if s.Ref != "" {
		return s.Ref
	}
	return "inline"
}

// Load reads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	cleanPath := filepath.Clean(path)
	b, err := os.ReadFile(cleanPath) //nolint:gosec // path comes from the operator
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse decodes a scenario document.
func Parse(b []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return &s, nil
}

// Resolve turns a matchup into engine inputs. defaults supplies the
// simulation count, round count and seed when neither the matchup nor the
// scenario sets them.
func (s *Scenario) Resolve(m Matchup, defaults engine.Options) (attacker, defender engine.Model, opts engine.Options, err error) {
	if attacker, err = s.model(m.Attacker); err != nil {
		return attacker, defender, opts, fmt.Errorf("matchup %q attacker: %w", m.Name, err)
	}
	if defender, err = s.model(m.Defender); err != nil {
		return attacker, defender, opts, fmt.Errorf("matchup %q defender: %w", m.Name, err)
	}

	opts = defaults
	opts.NumSimulations = firstPositive(m.Simulations, s.Options.Simulations, defaults.NumSimulations)
	opts.NumRounds = firstPositive(m.Rounds, s.Options.Rounds, defaults.NumRounds)
	if s.Options.Seed != 0 {
		opts.Seed = s.Options.Seed
	}

	canBeDamaged := !defaults.AttackerImmune
	if s.Options.AttackerCanBeDamaged != nil {
		canBeDamaged = *s.Options.AttackerCanBeDamaged
	}
	if m.AttackerCanBeDamaged != nil {
		canBeDamaged = *m.AttackerCanBeDamaged
	}
	opts.AttackerImmune = !canBeDamaged

	return attacker, defender, opts, nil
}

func (s *Scenario) model(side Side) (engine.Model, error) {
	sm := side.Inline
	if sm == nil {
		sm = s.Models[side.Ref]
		if sm == nil {
			return engine.Model{}, fmt.Errorf("%w: %q", ErrUnknownModel, side.Ref)
		}
	}
	return engine.Model{
		NumDice:       sm.Dice,
		DiceStat:      sm.Stat,
		NumRerolls:    sm.Rerolls,
		Armor:         sm.Armor,
		AP:            sm.AP,
		NumShieldDice: sm.ShieldDice,
		ToxicDmg:      sm.Toxic,
	}, nil
}

func firstPositive(vs ...int) int {
	for _, v := range vs {
		if v > 0 {
			return v
		}
	}
	return 0
}
