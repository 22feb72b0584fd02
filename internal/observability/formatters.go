// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobseeker-agent/internal/types"
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

// PrintResearchBundle outputs a human-readable summary of a research run.
func (p *Printer) PrintResearchBundle(bundle *types.ResearchBundle) {
	if bundle == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", bundle.CompanyName))
	if bundle.Industry != "" {
		sb.WriteString(fmt.Sprintf("Industry: %s\n", bundle.Industry))
	}
	if bundle.Size != "" {
		sb.WriteString(fmt.Sprintf("Size:     %s\n", bundle.Size))
	}
	if bundle.Website != "" {
		sb.WriteString(fmt.Sprintf("Website:  %s\n", bundle.Website))
	}

	if len(bundle.RecentNews) > 0 {
		sb.WriteString("\nRecent News:\n")
		count := min(len(bundle.RecentNews), maxItemsToShow)
		for i := 0; i < count; i++ {
			title := bundle.RecentNews[i].Title
			if len(title) > 50 {
				title = title[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", title))
		}
	}

	if len(bundle.KeyPeople) > 0 {
		sb.WriteString("\nKey People:\n")
		for _, person := range bundle.KeyPeople {
			sb.WriteString(fmt.Sprintf("  • %s, %s\n", person.Name, person.Title))
		}
	}

	if bundle.ResearchSummary != "" {
		sb.WriteString(fmt.Sprintf("\nSummary: %d chars\n", len(bundle.ResearchSummary)))
	}

	p.printBox("COMPANY RESEARCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGeneratedContent outputs a summary of generated application content.
func (p *Printer) PrintGeneratedContent(content *types.GeneratedContent) {
	if content == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Cover letter: %d chars\n", len(content.CoverLetter)))
	sb.WriteString(fmt.Sprintf("Strategy:     %d chars\n", len(content.ApplicationStrategy)))

	if len(content.OutreachMessages) > 0 {
		sb.WriteString("\nOutreach Messages:\n")
		count := min(len(content.OutreachMessages), maxItemsToShow)
		for i := 0; i < count; i++ {
			message := content.OutreachMessages[i]
			subject := message.Subject
			if len(subject) > 35 {
				subject = subject[:32] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", message.Recipient, subject))
		}
	}

	p.printBox("GENERATED CONTENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProfileStep outputs the state and questions after a profile building
// step.
func (p *Printer) PrintProfileStep(state types.ConversationState, questions []string, delta types.ProfileDelta) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("State: %s\n", state))

	if !delta.IsEmpty() {
		sb.WriteString("\nExtracted:\n")
		if delta.Name != "" {
			sb.WriteString(fmt.Sprintf("  • Name: %s\n", delta.Name))
		}
		if delta.CareerGoalNotes != "" {
			sb.WriteString("  • Career goal notes\n")
		}
		if len(delta.Interests) > 0 {
			sb.WriteString(fmt.Sprintf("  • %d interest(s)\n", len(delta.Interests)))
		}
		if len(delta.Strengths) > 0 {
			sb.WriteString(fmt.Sprintf("  • %d strength(s)\n", len(delta.Strengths)))
		}
	}

	if len(questions) > 0 {
		sb.WriteString("\nQuestions:\n")
		for _, question := range questions {
			if len(question) > 50 {
				question = question[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", question))
		}
	}

	p.printBox("PROFILE BUILDING", strings.TrimSuffix(sb.String(), "\n"))
}
