package tui

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/weighbridge/internal/pos"
)

// scheduleCmd turns a console timer into a tea.Tick. The handle rides along
// so the console can tell a live timer from one that was cancelled or
// re-armed in the meantime.
func scheduleCmd(s pos.Scheduled) tea.Cmd {
	log.Printf("[timers] %s armed (handle=%d, after=%s)", s.Name, s.Handle, s.After)
	return tea.Tick(s.After, func(time.Time) tea.Msg {
		return timerMsg{Scheduled: s}
	})
}

func scheduleAll(list []pos.Scheduled) []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(list))
	for _, s := range list {
		cmds = append(cmds, scheduleCmd(s))
	}
	return cmds
}

// scaleTickCmd reschedules itself from Update after every sample.
func scaleTickCmd(every time.Duration) tea.Cmd {
	if every <= 0 {
		every = defaultScaleTick
	}
	return tea.Tick(every, func(time.Time) tea.Msg {
		return scaleTickMsg{}
	})
}
