// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
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

// PrintPredictions outputs the ranked career predictions with scores.
func (p *Printer) PrintPredictions(predictions []types.CareerScore) {
	if len(predictions) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(predictions), maxItemsToShow)
	for i := 0; i < count; i++ {
		pred := predictions[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, pred.CareerTitle))
		sb.WriteString(fmt.Sprintf("    Confidence: %.3f  Match: %.1f%%\n", pred.Confidence, pred.MatchPercentage))
		if len(pred.MatchedSkills) > 0 {
			skills := strings.Join(pred.MatchedSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(predictions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more careers", len(predictions)-maxItemsToShow))
	}

	p.printBox("CAREER PREDICTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillGap outputs the gap analysis against one target career.
func (p *Printer) PrintSkillGap(careerPath string, gap *types.SkillGap) {
	if gap == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target:   %s\n", careerPath))
	sb.WriteString(fmt.Sprintf("Matched:  %d of %d required skills\n", gap.TotalMatched, gap.TotalRequired))
	sb.WriteString(fmt.Sprintf("Gap:      %.1f%%\n", gap.GapPercentage))

	if len(gap.MissingSkills) > 0 {
		sb.WriteString("\nMissing Skills:\n")
		count := min(len(gap.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", gap.MissingSkills[i]))
		}
		if len(gap.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(gap.MissingSkills)-maxItemsToShow))
		}
	}

	p.printBox("SKILL GAP", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoadmap outputs a phased learning roadmap summary.
func (p *Printer) PrintRoadmap(roadmap *types.Roadmap) {
	if roadmap == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Career:   %s\n", roadmap.CareerPath))
	sb.WriteString(fmt.Sprintf("Timeline: %s months\n", roadmap.Timeline))
	sb.WriteString("\n")

	for _, phase := range roadmap.Phases {
		sb.WriteString(fmt.Sprintf("Phase %d: %s (%s)\n", phase.Phase, phase.Title, phase.Duration))
		if len(phase.Skills) > 0 {
			skills := strings.Join(phase.Skills, ", ")
			if len(skills) > 48 {
				skills = skills[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %s\n", skills))
		}
	}

	if len(roadmap.Resources) > 0 {
		sb.WriteString(fmt.Sprintf("\nResources: %d  Projects: %d  Certifications: %d",
			len(roadmap.Resources), len(roadmap.Projects), len(roadmap.Certifications)))
	}

	p.printBox("LEARNING ROADMAP", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExtraction outputs the skills found in analyzed text, by category.
func (p *Printer) PrintExtraction(extraction *types.SkillExtraction) {
	if extraction == nil || extraction.TotalSkillsFound == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills found: %d  Confidence: %.2f\n", extraction.TotalSkillsFound, extraction.Confidence))

	for category, skills := range extraction.Categories {
		if len(skills) == 0 {
			continue
		}
		joined := strings.Join(skills, ", ")
		if len(joined) > 40 {
			joined = joined[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s: %s\n", category, joined))
	}

	p.printBox("EXTRACTED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}
