// Package engine turns two combatant models into a probability distribution
// of net damage. Positive damage is dealt to the defender, negative damage
// to the attacker.
package engine

import (
	"fmt"

	"dicesim/internal/combin"
	"dicesim/internal/dmgmap"
	"dicesim/internal/sim"
)

// Engine rolls with Die using Source. It is not safe for concurrent use.
type Engine struct {
	Die    sim.Die
	Source sim.Source
}

// New returns an Engine rolling sim.DefaultDie from src.
func New(src sim.Source) *Engine {
	return &Engine{Die: sim.DefaultDie, Source: src}
}

// CalcDmgProbs computes the damage distribution with a fresh Engine seeded
// from opts.Seed.
func CalcDmgProbs(attacker, defender Model, opts Options) map[int]float64 {
	return New(sim.SourceFor(opts.Seed)).CalcDmgProbs(attacker, defender, opts)
}

// Calculate validates its inputs before calling CalcDmgProbs.
func (e *Engine) Calculate(attacker, defender Model, opts Options) (map[int]float64, error) {
	if err := ValidateModel(attacker, e.Die); err != nil {
		return nil, fmt.Errorf("attacker: %w", err)
	}
	if err := ValidateModel(defender, e.Die); err != nil {
		return nil, fmt.Errorf("defender: %w", err)
	}
	if err := ValidateOptions(opts); err != nil {
		return nil, err
	}
	return e.CalcDmgProbs(attacker, defender, opts), nil
}

// CalcDmgProbs simulates both success distributions, resolves every pair of
// outcomes through shields, armor and toxic damage, and convolves the result
// over opts.NumRounds.
func (e *Engine) CalcDmgProbs(attacker, defender Model, opts Options) map[int]float64 {
	atkProbs := e.successProbs(attacker, opts.NumSimulations)
	defProbs := e.successProbs(defender, opts.NumSimulations)

	dmgProbs := map[int]float64{}
	for atkSuccesses, atkProb := range atkProbs {
		for defSuccesses, defProb := range defProbs {
			origDmg := atkSuccesses - defSuccesses
			if opts.AttackerImmune {
				origDmg = max(0, origDmg)
			}
			resolve(dmgProbs, &attacker, &defender, origDmg, atkProb*defProb)
		}
	}

	if opts.NumRounds > 1 {
		dmgProbs = CalcMultiRoundDamage(dmgProbs, opts.NumRounds)
	}
	return dmgProbs
}

func (e *Engine) successProbs(m Model, numSimulations int) map[int]float64 {
	return sim.SuccessProbs(e.Die, m.NumDice, m.DiceStat, m.NumRerolls, numSimulations, e.Source)
}

// resolve spreads prob over the post-mitigation damage values of one
// (attacker successes - defender successes) outcome.
func resolve(out map[int]float64, attacker, defender *Model, origDmg int, prob float64) {
	giver, receiver := attacker, defender
	if origDmg < 0 {
		giver, receiver = defender, attacker
	}
	netArmor := max(0, receiver.Armor-giver.AP)

	numShieldDice := receiver.NumShieldDice
	if origDmg == 0 {
		numShieldDice = 0
	}

	sign, absDmg := signAbs(origDmg)
	for shieldSuccesses := 0; shieldSuccesses <= numShieldDice; shieldSuccesses++ {
		shieldProb := 1.0
		if numShieldDice > 0 {
			shieldProb = combin.BinomialPMF(numShieldDice, shieldSuccesses, ShieldSuccessProb)
		}
		postShield := max(0, absDmg-shieldSuccesses)
		postArmor := max(0, postShield-netArmor)
		postToxic := postArmor + giver.ToxicDmg
		dmgmap.AddToMapValue(out, sign*postToxic, prob*shieldProb)
	}
}

func signAbs(v int) (int, int) {
	switch {
	case v > 0:
		return 1, v
	case v < 0:
		return -1, -v
	}
	return 0, 0
}
