// Package sim estimates success-count distributions for pools of open-ended
// ("exploding") dice with a reroll budget by Monte-Carlo simulation.
package sim

import "dicesim/internal/dmgmap"

// Die is an open-ended die: rolling High grants another roll of the same die.
type Die struct {
	Low  int
	High int
}

// DefaultDie is the d8 used by the combat rules.
var DefaultDie = Die{Low: 1, High: 8}

// Roll draws one face uniformly from [Low, High].
func (d Die) Roll(src Source) int {
	return d.Low + src.IntN(d.High-d.Low+1)
}

// Sf tallies successes and failures over one simulated pool.
type Sf struct {
	S int
	F int
}

// Add merges o into sf.
func (sf *Sf) Add(o Sf) {
	sf.S += o.S
	sf.F += o.F
}

// SfFromSingleRoll rolls one die, counting faces >= diceStat as successes,
// and keeps rolling while the top face comes up.
func SfFromSingleRoll(die Die, diceStat int, src Source) Sf {
	var sf Sf
	for {
		pip := die.Roll(src)
		if pip >= diceStat {
			sf.S++
		} else {
			sf.F++
		}
		if pip != die.High {
			return sf
		}
	}
}

// NumSuccessesFromMultiRoll rolls numDice dice, then rerolls up to
// numRerolls of the failed dice once. Rerolled dice are never rerolled again.
func NumSuccessesFromMultiRoll(die Die, numDice, diceStat, numRerolls int, src Source) int {
	var sf Sf
	for i := 0; i < numDice; i++ {
		sf.Add(SfFromSingleRoll(die, diceStat, src))
	}

	if numRerolls == 0 {
		return sf.S
	}
	return sf.S + NumSuccessesFromMultiRoll(die, min(numRerolls, sf.F), diceStat, 0, src)
}

// SuccessProbs runs numSimulations pools and returns the empirical PMF of
// the success count.
func SuccessProbs(die Die, numDice, diceStat, numRerolls, numSimulations int, src Source) map[int]float64 {
	counts := map[int]int{}
	for i := 0; i < numSimulations; i++ {
		dmgmap.AddToMapValue(counts, NumSuccessesFromMultiRoll(die, numDice, diceStat, numRerolls, src), 1)
	}
	return dmgmap.Ratios(counts, numSimulations)
}
