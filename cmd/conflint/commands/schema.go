package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/filterwise/conflint/internal/cli"
	"github.com/filterwise/conflint/internal/client"
	"github.com/filterwise/conflint/internal/conditions"
	"github.com/filterwise/conflint/internal/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "List the registered filterable properties",
	Long: `List every property the detector knows about, its class, and the
operators legal for it.

Examples:
  conflint schema
  conflint schema --server http://localhost:8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		remote, err := cli.ResolveServerURL(serverURL)
		if err != nil {
			return err
		}

		type row struct {
			key, class, domain string
			operators          []conditions.Operator
		}
		var rows []row

		if remote != "" {
			c := client.NewClient(remote)
			props, err := c.Schema(context.Background())
			if err != nil {
				return fmt.Errorf("failed to fetch schema: %w", err)
			}
			for _, p := range props {
				rows = append(rows, row{key: p.Key, class: p.Class, domain: strings.Join(p.Domain, ", "), operators: p.Operators})
			}
		} else {
			for _, p := range schema.Default().Properties() {
				rows = append(rows, row{key: p.Key, class: string(p.Class), domain: strings.Join(p.Domain, ", "), operators: schema.OperatorsFor(p.Class)})
			}
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Class", "Domain", "Operators")
		for _, r := range rows {
			ops := make([]string, 0, len(r.operators))
			for _, op := range r.operators {
				ops = append(ops, string(op))
			}
			table.Append(r.key, r.class, r.domain, strings.Join(ops, ", "))
		}
		return table.Render()
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
