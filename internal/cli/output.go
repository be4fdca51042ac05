package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/filterwise/conflint/internal/conditions"
)

// OutputFormat specifies the output format for CLI commands
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
)

// Report pairs each condition row index with its issues, for output.
type Report struct {
	Fingerprint string                     `json:"fingerprint" yaml:"fingerprint"`
	Issues      map[int][]conditions.Issue `json:"issues" yaml:"issues"`
}

// HasErrors reports whether any error-severity issue is present.
func (r Report) HasErrors() bool {
	for _, rowIssues := range r.Issues {
		for _, issue := range rowIssues {
			if issue.Severity == conditions.SeverityError {
				return true
			}
		}
	}
	return false
}

// PrintReport outputs a validation report in the specified format
func PrintReport(report Report, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return printJSON(report)
	case FormatYAML:
		return printYAML(report)
	case FormatTable:
		return printTable(report)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func printJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func printYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(data)
}

func printTable(report Report) error {
	if len(report.Issues) == 0 {
		fmt.Println("no issues found")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Row", "Severity", "Kind", "Field", "Message")

	rows := make([]int, 0, len(report.Issues))
	for row := range report.Issues {
		rows = append(rows, row)
	}
	sort.Ints(rows)

	for _, row := range rows {
		for _, issue := range report.Issues[row] {
			message := issue.Message
			if len(message) > 60 {
				message = message[:57] + "..."
			}
			table.Append(
				fmt.Sprintf("%d", row),
				string(issue.Severity),
				issue.Kind,
				issue.TargetField,
				message,
			)
		}
	}

	return table.Render()
}
