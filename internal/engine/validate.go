package engine

import (
	"errors"
	"fmt"

	"dicesim/internal/combin"
	"dicesim/internal/sim"
)

var (
	ErrInvalidModel   = errors.New("invalid model")
	ErrInvalidOptions = errors.New("invalid options")
)

// ValidateModel checks m against the die it will be rolled with.
func ValidateModel(m Model, die sim.Die) error {
	switch {
	case m.NumDice < 0:
		return fmt.Errorf("%w: numDice %d is negative", ErrInvalidModel, m.NumDice)
	case m.DiceStat < 1 || m.DiceStat > die.High+1:
		return fmt.Errorf("%w: diceStat %d outside 1..%d", ErrInvalidModel, m.DiceStat, die.High+1)
	case m.NumRerolls < 0:
		return fmt.Errorf("%w: numRerolls %d is negative", ErrInvalidModel, m.NumRerolls)
	case m.Armor < 0:
		return fmt.Errorf("%w: armor %d is negative", ErrInvalidModel, m.Armor)
	case m.AP < 0:
		return fmt.Errorf("%w: ap %d is negative", ErrInvalidModel, m.AP)
	case m.NumShieldDice < 0 || m.NumShieldDice > combin.MaxTrials:
		return fmt.Errorf("%w: numShieldDice %d outside 0..%d", ErrInvalidModel, m.NumShieldDice, combin.MaxTrials)
	case m.ToxicDmg < 0:
		return fmt.Errorf("%w: toxicDmg %d is negative", ErrInvalidModel, m.ToxicDmg)
	}
	return nil
}

// ValidateOptions checks the simulation and round counts.
func ValidateOptions(o Options) error {
	if o.NumSimulations < 1 {
		return fmt.Errorf("%w: numSimulations %d must be positive", ErrInvalidOptions, o.NumSimulations)
	}
	if o.NumRounds < 1 {
		return fmt.Errorf("%w: numRounds %d must be at least 1", ErrInvalidOptions, o.NumRounds)
	}
	return nil
}
