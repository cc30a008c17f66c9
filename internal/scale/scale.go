// Package scale simulates the weigh-scale indicator feeding the console.
package scale

import (
	"log"
	"math/rand"

	"github.com/csheth/weighbridge/internal/pos"
)

// Defaults mirror a loaded tri-axle sitting on the deck.
const (
	DefaultStartWeight    = 64000
	DefaultMinWeight      = 5000
	DefaultUnstableChance = 0.28
	DefaultJitter         = 400
	DefaultDrift          = 30
)

// Config tunes the simulator. Zero values take the defaults, except
// UnstableChance where zero means the scale never swings.
type Config struct {
	StartWeight    int
	MinWeight      int
	UnstableChance float64
	Jitter         int
	Drift          int
}

func (c Config) withDefaults() Config {
	if c.StartWeight <= 0 {
		c.StartWeight = DefaultStartWeight
	}
	if c.MinWeight <= 0 {
		c.MinWeight = DefaultMinWeight
	}
	if c.UnstableChance < 0 || c.UnstableChance > 1 {
		c.UnstableChance = DefaultUnstableChance
	}
	if c.Jitter <= 0 {
		c.Jitter = DefaultJitter
	}
	if c.Drift <= 0 {
		c.Drift = DefaultDrift
	}
	return c
}

// Simulator produces a wandering weight that now and then swings while a
// truck shifts on the deck.
type Simulator struct {
	cfg     Config
	rng     *rand.Rand
	reading pos.Reading
}

// NewSimulator starts stable at the configured weight.
func NewSimulator(cfg Config, rng *rand.Rand) *Simulator {
	cfg = cfg.withDefaults()
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Simulator{
		cfg:     cfg,
		rng:     rng,
		reading: pos.Reading{Weight: max(cfg.StartWeight, cfg.MinWeight), Stable: true},
	}
}

// Reading returns the last sample.
func (s *Simulator) Reading() pos.Reading {
	return s.reading
}

// Tick takes the next sample. Unstable samples swing by up to Jitter pounds,
// stable ones drift by up to Drift. The weight never falls below MinWeight.
func (s *Simulator) Tick() pos.Reading {
	unstable := s.rng.Float64() < s.cfg.UnstableChance
	spread := s.cfg.Drift
	if unstable {
		spread = s.cfg.Jitter
	}
	delta := s.rng.Intn(2*spread) - spread
	s.reading = pos.Reading{
		Weight: max(s.cfg.MinWeight, s.reading.Weight+delta),
		Stable: !unstable,
	}
	if unstable {
		log.Printf("[scale] swing %+d lb, now %d", delta, s.reading.Weight)
	}
	return s.reading
}

// Settle ends a swing: the weight holds and the reading turns stable.
func (s *Simulator) Settle() pos.Reading {
	s.reading.Stable = true
	return s.reading
}
