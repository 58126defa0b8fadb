package engine

import (
	"math"
	"reflect"
	"testing"

	"dicesim/internal/dmgmap"
)

func TestCalcMultiRoundDamage_OneRoundIsIdentity(t *testing.T) {
	single := map[int]float64{-1: 0.25, 0: 0.5, 2: 0.25}
	got := CalcMultiRoundDamage(single, 1)
	if !reflect.DeepEqual(got, single) {
		t.Errorf("got %v, want %v", got, single)
	}
	got[0] = 0
	if single[0] != 0.5 {
		t.Error("result aliases the input map")
	}
}

func TestCalcMultiRoundDamage_TwoRounds(t *testing.T) {
	got := CalcMultiRoundDamage(map[int]float64{0: 0.5, 1: 0.5}, 2)
	want := map[int]float64{0: 0.25, 1: 0.5, 2: 0.25}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCalcMultiRoundDamage_SignedThreeRounds(t *testing.T) {
	got := CalcMultiRoundDamage(map[int]float64{-1: 0.5, 1: 0.5}, 3)
	want := map[int]float64{-3: 0.125, -1: 0.375, 1: 0.375, 3: 0.125}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCalcMultiRoundDamage_ConservesMass(t *testing.T) {
	single := map[int]float64{-2: 0.1, -1: 0.15, 0: 0.3, 1: 0.2, 3: 0.25}
	for rounds := 1; rounds <= 6; rounds++ {
		got := CalcMultiRoundDamage(single, rounds)
		if s := dmgmap.Sum(got); math.Abs(s-dmgmap.Sum(single)) > 1e-9 {
			t.Errorf("rounds=%d: sum = %v", rounds, s)
		}
		if mean, want := dmgmap.Mean(got), float64(rounds)*dmgmap.Mean(single); math.Abs(mean-want) > 1e-9 {
			t.Errorf("rounds=%d: mean = %v, want %v", rounds, mean, want)
		}
	}
}
