package tui

import (
	"time"

	"github.com/csheth/weighbridge/internal/entity"
	"github.com/csheth/weighbridge/internal/pos"
)

const heroTagline = "Weigh, ticket, and sync without leaving the keyboard."

const (
	minListWidth      = 48
	horizontalPadding = 4
	defaultScaleTick  = 700 * time.Millisecond
	poundsPerTon      = 2000
)

// scaleTickMsg asks the simulator for its next sample.
type scaleTickMsg struct{}

// timerMsg delivers a one-shot console timer back into Update.
type timerMsg struct {
	Scheduled pos.Scheduled
}

var kindHotkeys = map[entity.Kind]string{
	entity.KindTruck:    "Ctrl+T",
	entity.KindCustomer: "Ctrl+C",
	entity.KindOrder:    "Ctrl+O",
	entity.KindProduct:  "Ctrl+P",
}
