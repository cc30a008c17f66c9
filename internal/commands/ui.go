package commands

import (
	"io"
	"log"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/csheth/weighbridge/internal/scale"
	"github.com/csheth/weighbridge/internal/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the scale console",
		Example: `
weighbridge ui
weighbridge ui --alt-screen=false --log-file weighbridge.log
`,
		ValidArgs: []string{},
		RunE:      runUI,
	}
	cmd.Flags().Bool("alt-screen", true, "Draw on the alternate screen buffer.")

	topLevel.AddCommand(cmd)
}

func runUI(cmd *cobra.Command, _ []string) error {
	s, err := loadSession(cmd, time.Now())
	if err != nil {
		return err
	}

	if s.cfg.LogFile != "" {
		f, err := tea.LogToFile(s.cfg.LogFile, "weighbridge")
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("[ui] starting (config=%q, online=%v)", s.cfg.File, s.cfg.Online)

	sim := scale.NewSimulator(s.cfg.Simulator(), rand.New(rand.NewSource(s.cfg.SeedValue())))
	opts := []tea.ProgramOption{}
	if s.cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Index:     s.index,
			History:   s.history,
			Console:   s.cfg.Console(),
			Simulator: sim,
			ScaleTick: s.cfg.Scale.Tick,
		}),
		opts...,
	)
	_, err = program.Run()
	return err
}
