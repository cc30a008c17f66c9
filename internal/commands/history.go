package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/csheth/weighbridge/internal/entity"
	"github.com/csheth/weighbridge/internal/pos"
)

func addHistory(topLevel *cobra.Command) {
	output := "table"
	limit := 0
	customer := ""
	cmd := &cobra.Command{
		Use:   "history",
		Short: "print the seeded ticket ledger",
		Example: `
weighbridge history
weighbridge history --customer CUST-1 --limit 5
weighbridge history -o yaml
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSession(cmd, time.Now())
			if err != nil {
				return err
			}
			records := filterHistory(s.history, customer, limit)
			return writeHistory(cmd.OutOrStdout(), s.index, records, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format. One of 'table', 'yaml' or 'json'.")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum records; 0 prints them all.")
	cmd.Flags().StringVar(&customer, "customer", "", "Only show tickets for this customer id.")

	topLevel.AddCommand(cmd)
}

func filterHistory(history []pos.Record, customer string, limit int) []pos.Record {
	var out []pos.Record
	for _, r := range history {
		if customer != "" && !strings.EqualFold(r.CustomerID, customer) {
			continue
		}
		out = append(out, r)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func writeHistory(w io.Writer, index *entity.Index, records []pos.Record, output string) error {
	switch strings.ToLower(output) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer func() { _ = enc.Close() }()
		return enc.Encode(records)
	case "table", "":
		if len(records) == 0 {
			_, err := fmt.Fprintln(w, "no tickets")
			return err
		}
		bold := color.New(color.Bold)
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.MaxColWidth = 32
		tbl.AddRow(bold.Sprint("Ticket"), bold.Sprint("Time"), bold.Sprint("Truck"), bold.Sprint("Customer"), bold.Sprint("Product"), bold.Sprint("Net lb"))
		for _, r := range records {
			tbl.AddRow(r.ID, r.Timestamp.Format("15:04"), name(index, entity.KindTruck, r.TruckID),
				name(index, entity.KindCustomer, r.CustomerID), name(index, entity.KindProduct, r.ProductID), r.Net)
		}
		_, err := fmt.Fprintln(w, tbl)
		return err
	default:
		return fmt.Errorf("unknown output format %q (want table, yaml or json)", output)
	}
}

func name(index *entity.Index, kind entity.Kind, id string) string {
	if e, ok := index.Lookup(kind, id); ok {
		return e.Name
	}
	return id
}
