package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/filterwise/conflint/internal/cli"
	"github.com/filterwise/conflint/internal/client"
	"github.com/filterwise/conflint/internal/conditions"
	"github.com/filterwise/conflint/internal/engine"
	"github.com/filterwise/conflint/internal/schema"
)

var schemaFile string

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a condition-set file",
	Long: `Check a condition-set document (YAML or JSON) for contradictions.

The document holds a combination logic and a list of conditions:

  logic: all
  conditions:
    - property: price
      operator: greater_than
      value: "100"
    - property: price
      operator: less_than
      value: "50"

The command exits 1 when any error-severity issue is found; warnings alone
exit 0.

Examples:
  conflint check conditions.yaml
  conflint check conditions.json --format json
  conflint check conditions.yaml --server http://localhost:8080`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := loadConditionSet(args[0])
		if err != nil {
			return err
		}

		remote, err := cli.ResolveServerURL(serverURL)
		if err != nil {
			return err
		}

		var report cli.Report
		if remote != "" {
			c := client.NewClient(remote)
			result, err := c.ValidateAll(context.Background(), *set)
			if err != nil {
				return fmt.Errorf("remote validation failed: %w", err)
			}
			report = cli.Report{Fingerprint: result.Fingerprint, Issues: result.Issues}
		} else {
			reg, err := loadRegistry()
			if err != nil {
				return err
			}
			v := engine.New(reg)
			report = cli.Report{
				Fingerprint: engine.Fingerprint(*set),
				Issues:      v.ValidateAll(*set),
			}
		}

		if !quiet {
			if err := cli.PrintReport(report, cli.OutputFormat(format)); err != nil {
				return err
			}
		}

		if report.HasErrors() {
			cmd.SilenceUsage = true
			return fmt.Errorf("contradictions found")
		}
		return nil
	},
}

func loadConditionSet(path string) (*conditions.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var set conditions.Set
	if filepath.Ext(path) == ".json" {
		if err := json.Unmarshal(data, &set); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &set); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if set.Logic == "" {
		set.Logic = conditions.LogicAll
	}
	if set.Logic != conditions.LogicAll && set.Logic != conditions.LogicAny {
		return nil, fmt.Errorf("logic must be \"all\" or \"any\", got %q", set.Logic)
	}
	return &set, nil
}

func loadRegistry() (*schema.Registry, error) {
	if schemaFile == "" {
		return schema.Default(), nil
	}
	reg, err := schema.LoadFile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load schema: %w", err)
	}
	return reg, nil
}

func init() {
	checkCmd.Flags().StringVar(&schemaFile, "schema", "", "YAML file merged over the built-in property schema")
	rootCmd.AddCommand(checkCmd)
}
