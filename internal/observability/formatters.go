// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/design-solver/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintIntent outputs a human-readable summary of the analyzed intent.
func (p *Printer) PrintIntent(intent types.Intent) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Goal:    %s\n", intent.Goal))
	if intent.Target != "" {
		sb.WriteString(fmt.Sprintf("Target:  %s\n", intent.Target))
	}

	if len(intent.Constraints) > 0 {
		sb.WriteString("\nConstraints:\n")
		count := min(len(intent.Constraints), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", intent.Constraints[i]))
		}
		if len(intent.Constraints) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(intent.Constraints)-maxItemsToShow))
		}
	}

	p.printBox("PRODUCT INTENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAppMap outputs the derived application map.
func (p *Printer) PrintAppMap(appMap types.AppMap) {
	if len(appMap.Modules) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Modules defined: %d\n\n", len(appMap.Modules)))

	count := min(len(appMap.Modules), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := appMap.Modules[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, m.Name))
		desc := m.Description
		if len(desc) > 50 {
			desc = desc[:47] + "..."
		}
		if desc != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", desc))
		}
		if len(m.Features) > 0 {
			features := strings.Join(m.Features, ", ")
			if len(features) > 40 {
				features = features[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Features: %s\n", features))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(appMap.Modules) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more modules", len(appMap.Modules)-maxItemsToShow))
	}

	p.printBox("APPLICATION MAP", sb.String())
}

// PrintArtifacts outputs the artifact census with confidence scores.
func (p *Printer) PrintArtifacts(artifacts []types.Artifact) {
	if len(artifacts) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Artifacts produced: %d\n\n", len(artifacts)))

	for i, a := range artifacts {
		sb.WriteString(fmt.Sprintf("• %s (%s)\n", a.Title, a.Type))
		sb.WriteString(fmt.Sprintf("  By: %s  Confidence: %.2f\n", a.Role, a.Confidence))
		summary := a.Summary
		if len(summary) > 50 {
			summary = summary[:47] + "..."
		}
		if summary != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", summary))
		}
		if i < len(artifacts)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("DESIGN ARTIFACTS", sb.String())
}

// PrintReport outputs the consistency report.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintReport(report *types.ConsistencyReport) {
	if report == nil {
		return
	}
	if report.OK {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO CONSISTENCY ISSUES FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d issues:\n\n", len(report.Issues)))

	for i, issue := range report.Issues {
		if len(issue) > 45 {
			issue = issue[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", issue))
		if i < len(report.Issues)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CONSISTENCY ISSUES", sb.String())
}
