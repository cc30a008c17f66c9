// Package commands builds the weighbridge command tree.
package commands

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/csheth/weighbridge/internal/config"
	"github.com/csheth/weighbridge/internal/entity"
	"github.com/csheth/weighbridge/internal/pos"
)

// New returns the root command. Running it bare opens the console.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weighbridge",
		Short: "Keyboard-first point-of-sale console for a truck scale house.",
		Example: `
weighbridge
weighbridge --online=false --seed 7
weighbridge search truck kenworth
weighbridge history --output yaml
`,
		SilenceUsage: true,
		RunE:         runUI,
	}

	flags := cmd.PersistentFlags()
	flags.Bool("online", true, "Start with the link to the office up.")
	flags.Int64("seed", 0, "Seed for the demo catalog; 0 picks one from the clock.")
	flags.String("log-file", "", "Append logs to this file.")
	flags.Duration("sync-delay", pos.DefaultSyncDelay, "Delay before queued tickets sync after the link returns.")
	cmd.Flags().Bool("alt-screen", true, "Draw on the alternate screen buffer.")

	AddCommands(cmd)
	return cmd
}

// AddCommands attaches every subcommand to topLevel.
func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addSearch(topLevel)
	addHistory(topLevel)
	addVersion(topLevel)
}

// session is the seeded demo data every command works from.
type session struct {
	cfg     config.Config
	catalog entity.Catalog
	index   *entity.Index
	history []pos.Record
}

func loadSession(cmd *cobra.Command, now time.Time) (*session, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.SeedValue()))
	catalog := entity.Seed(rng)
	index := catalog.Index()
	return &session{
		cfg:     cfg,
		catalog: catalog,
		index:   index,
		history: pos.SeedHistory(index, now),
	}, nil
}
