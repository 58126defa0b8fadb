package engine

// ShieldSuccessProb is the chance that a single shield die blocks one point
// of damage (3 of 8 faces).
const ShieldSuccessProb = 0.375

// Model describes one combatant.
type Model struct {
	NumDice       int // dice rolled per attack
	DiceStat      int // minimum face counted as a success
	NumRerolls    int // failed dice that may be rerolled once
	Armor         int
	AP            int // reduces the opponent's armor
	NumShieldDice int // rolled when this model receives non-zero damage
	ToxicDmg      int // added after armor and shields
}

// Options controls a single calculation.
type Options struct {
	NumSimulations int
	NumRounds      int

	// AttackerImmune clamps per-round damage at zero so only the defender
	// can be damaged. The default is bidirectional damage.
	AttackerImmune bool

	// Seed makes the simulation reproducible when non-zero.
	Seed uint64
}

// DefaultOptions returns 10000 simulations over a single round.
func DefaultOptions() Options {
	return Options{NumSimulations: 10000, NumRounds: 1}
}

// Summary condenses a damage distribution. Positive keys are damage to the
// defender, negative keys damage to the attacker.
type Summary struct {
	Mean            float64
	DefenderDamaged float64
	AttackerDamaged float64
	NoDamage        float64
	Total           float64
}

// Summarize computes a Summary for dist.
func Summarize(dist map[int]float64) Summary {
	var s Summary
	for dmg, p := range dist {
		s.Mean += float64(dmg) * p
		s.Total += p
		switch {
		case dmg > 0:
			s.DefenderDamaged += p
		case dmg < 0:
			s.AttackerDamaged += p
		default:
			s.NoDamage += p
		}
	}
	return s
}
