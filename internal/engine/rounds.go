package engine

import "dicesim/internal/dmgmap"

// CalcMultiRoundDamage convolves a single-round distribution with itself
// numRounds times, treating rounds as independent. Two buffers are swapped
// between rounds so each round reuses the previous allocation.
func CalcMultiRoundDamage(single map[int]float64, numRounds int) map[int]float64 {
	latest := dmgmap.Clone(single)
	prev := make(map[int]float64, len(single))

	for round := 2; round <= numRounds; round++ {
		prev, latest = latest, prev
		clear(latest)

		for prevDmg, prevProb := range prev {
			for dmg, prob := range single {
				dmgmap.AddToMapValue(latest, prevDmg+dmg, prevProb*prob)
			}
		}
	}
	return latest
}
