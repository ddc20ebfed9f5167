// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/RAJVEER42/ai-job-portal/internal/types"
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

// PrintMatchResults outputs the top ranked jobs with scores and reasons.
func (p *Printer) PrintMatchResults(results []types.MatchResult) {
	if len(results) == 0 {
		p.printBox("JOB RECOMMENDATIONS", "No matching jobs found")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total matches: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, result.Job.Title))
		sb.WriteString(fmt.Sprintf("    Score: %d/100\n", result.Score))
		for _, reason := range result.MatchReasons {
			sb.WriteString(fmt.Sprintf("    • %s\n", reason))
		}
		if len(result.MissingSkills) > 0 {
			missing := strings.Join(result.MissingSkills, ", ")
			if len(missing) > 40 {
				missing = missing[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Missing: %s\n", missing))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more matches", len(results)-maxItemsToShow))
	}

	p.printBox("JOB RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGapReport outputs the skill-gap analysis for one job.
func (p *Printer) PrintGapReport(report *types.GapReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:   %s\n", report.Job.Title))
	sb.WriteString(fmt.Sprintf("Match: %d%%\n\n", report.MatchPercentage))

	if len(report.MatchingSkills) > 0 {
		sb.WriteString("Matched skills:\n")
		count := min(len(report.MatchingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", report.MatchingSkills[i].Skill))
		}
		if len(report.MatchingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.MatchingSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(report.MissingSkills) > 0 {
		sb.WriteString("Missing skills:\n")
		count := min(len(report.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := report.MissingSkills[i]
			sb.WriteString(fmt.Sprintf("  ✗ %s (%s, %s)\n",
				skill.Skill, strings.ToLower(string(skill.Priority)), skill.EstimatedLearningTime))
		}
		if len(report.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.MissingSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	for _, recommendation := range report.Recommendations {
		sb.WriteString(fmt.Sprintf("• %s\n", recommendation))
	}

	p.printBox("SKILL GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}
