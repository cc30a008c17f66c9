package scale

import (
	"math/rand"
	"testing"
)

func TestSimulatorStartsStable(t *testing.T) {
	sim := NewSimulator(Config{}, rand.New(rand.NewSource(7)))
	r := sim.Reading()
	if !r.Stable || r.Weight != DefaultStartWeight {
		t.Fatalf("initial reading = %+v", r)
	}
}

func TestSimulatorRespectsBounds(t *testing.T) {
	sim := NewSimulator(Config{StartWeight: 5100, MinWeight: 5000}, rand.New(rand.NewSource(3)))
	prev := sim.Reading().Weight
	for i := 0; i < 500; i++ {
		r := sim.Tick()
		if r.Weight < 5000 {
			t.Fatalf("tick %d fell below minimum: %d", i, r.Weight)
		}
		limit := DefaultDrift
		if !r.Stable {
			limit = DefaultJitter
		}
		if d := r.Weight - prev; d > limit || d < -limit {
			t.Fatalf("tick %d moved %d, limit %d", i, d, limit)
		}
		prev = r.Weight
	}
}

func TestSimulatorStabilityFollowsChance(t *testing.T) {
	always := NewSimulator(Config{UnstableChance: 1}, rand.New(rand.NewSource(1)))
	never := NewSimulator(Config{UnstableChance: 0}, rand.New(rand.NewSource(1)))
	for i := 0; i < 20; i++ {
		if always.Tick().Stable {
			t.Fatal("chance 1 should always swing")
		}
		if !never.Tick().Stable {
			t.Fatal("chance 0 should never swing")
		}
	}
}

func TestSettleHoldsWeight(t *testing.T) {
	sim := NewSimulator(Config{UnstableChance: 1}, rand.New(rand.NewSource(9)))
	swing := sim.Tick()
	settled := sim.Settle()
	if !settled.Stable || settled.Weight != swing.Weight {
		t.Fatalf("Settle() = %+v after %+v", settled, swing)
	}
}
