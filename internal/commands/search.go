package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/csheth/weighbridge/internal/config"
	"github.com/csheth/weighbridge/internal/entity"
	"github.com/csheth/weighbridge/internal/fuzzy"
	"github.com/csheth/weighbridge/internal/pos"
)

const searchAll = "all"

func addSearch(topLevel *cobra.Command) {
	limit := 0
	cmd := &cobra.Command{
		Use:   "search <truck|customer|order|product|all> [query]",
		Short: "rank entities the way the console fields do",
		Example: `
weighbridge search truck kenworth
weighbridge search all "acme paving"
weighbridge search product --limit 5
`,
		ValidArgs: append([]string{searchAll}, kindNames()...),
		Args:      cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, time.Now())
			if err != nil {
				return err
			}
			query := strings.Join(args[1:], " ")
			results, err := rankCandidates(s.index, args[0], query, limit, s.cfg)
			if err != nil {
				return err
			}
			printCandidates(cmd, query, results)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum rows; 0 uses the field or palette limit.")

	topLevel.AddCommand(cmd)
}

func kindNames() []string {
	names := make([]string, len(entity.Kinds))
	for i, k := range entity.Kinds {
		names[i] = string(k)
	}
	return names
}

type scored struct {
	pos.Candidate
	Score int
	Text  string
}

func rankCandidates(index *entity.Index, target, query string, limit int, cfg config.Config) ([]scored, error) {
	var kinds []entity.Kind
	haystack := func(c pos.Candidate) string { return entity.Haystack(c.Entity) }
	if strings.EqualFold(strings.TrimSpace(target), searchAll) {
		kinds = entity.Kinds
		haystack = func(c pos.Candidate) string { return entity.PaletteHaystack(c.Kind, c.Entity) }
		if limit <= 0 {
			limit = cfg.PaletteLimit
		}
	} else {
		kind, err := entity.ParseKind(target)
		if err != nil {
			return nil, err
		}
		kinds = []entity.Kind{kind}
		if limit <= 0 {
			limit = cfg.FieldLimit
		}
	}

	var items []scored
	for _, kind := range kinds {
		for _, e := range index.All(kind) {
			c := pos.Candidate{Kind: kind, Entity: e}
			items = append(items, scored{Candidate: c, Text: haystack(c)})
		}
	}
	ranked := fuzzy.Rank(query, items, func(s scored) string { return s.Text }, limit)
	for i := range ranked {
		ranked[i].Score = fuzzy.Score(query, ranked[i].Text)
	}
	return ranked, nil
}

func printCandidates(cmd *cobra.Command, query string, results []scored) {
	out := cmd.OutOrStdout()
	if len(results) == 0 {
		_, _ = fmt.Fprintf(out, "no matches for %q\n", query)
		return
	}
	bold := color.New(color.Bold)
	hit := color.New(color.FgYellow, color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 48
	tbl.AddRow(bold.Sprint("Score"), bold.Sprint("Kind"), bold.Sprint("Code"), bold.Sprint("Name"), bold.Sprint("Details"))
	for _, r := range results {
		tbl.AddRow(r.Score, r.Kind.Label(), r.Entity.Code, markMatches(hit, query, r.Entity.Name), detailSummary(r.Entity))
	}
	_, _ = fmt.Fprintln(out, tbl)
}

func markMatches(hit *color.Color, query, text string) string {
	return fuzzy.Mark(text, fuzzy.Positions(query, text), func(s string) string { return hit.Sprint(s) })
}

func detailSummary(e entity.Entity) string {
	var parts []string
	for _, d := range e.Details {
		if d.Value == "" {
			continue
		}
		parts = append(parts, d.Value)
		if len(parts) == 3 {
			break
		}
	}
	return strings.Join(parts, ", ")
}
