package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/consent-generator/internal/dates"
	"github.com/jonathan/consent-generator/internal/pipeline"
	"github.com/jonathan/consent-generator/internal/schemas"
	"github.com/jonathan/consent-generator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
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
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4), boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// printList prints a boxed title followed by unboxed content lines, for lists
// whose lines must be shown in full
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printList(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(title, boxWidth-4), boxWidth-4))
	fmt.Fprintf(p.out, "└%s┘\n", border)
	fmt.Fprintln(p.out, content)
}

// PrintRoster outputs the classified roster: escorts first, then children.
func (p *Printer) PrintRoster(session *types.Session) {
	if session == nil {
		return
	}

	var sb strings.Builder
	escorts := session.Escorts()
	children := session.Children()

	sb.WriteString(fmt.Sprintf("Сопровождающие (%d)\n", len(escorts)))
	for i, e := range escorts {
		sb.WriteString(fmt.Sprintf("  %d. %s", i+1, e.FullName))
		if e.HasBirthDate() {
			sb.WriteString(fmt.Sprintf(", %s", dates.FormatBirthDate(e.BirthDate)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Дети (%d)\n", len(children)))
	for i, c := range children {
		sb.WriteString(fmt.Sprintf("  %d. %s", i+1, c.FullName))
		if c.HasBirthDate() {
			sb.WriteString(fmt.Sprintf(", %s", dates.FormatBirthDate(c.BirthDate)))
		}
		if c.TutorName != "" {
			sb.WriteString(fmt.Sprintf(" (представитель: %s)", c.TutorName))
		}
		sb.WriteString("\n")
	}

	p.printList("ROSTER", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintArchive outputs the archive name, where it was written and its entries.
func (p *Printer) PrintArchive(archive *pipeline.Archive, path string) {
	if archive == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Archive:  %s\n", archive.Name))
	if path != "" {
		sb.WriteString(fmt.Sprintf("Written:  %s\n", path))
	}
	sb.WriteString(fmt.Sprintf("Documents: %d\n", len(archive.Files)))
	for _, name := range archive.Files {
		sb.WriteString(fmt.Sprintf("  • %s\n", name))
	}

	p.printList("CONSENT ARCHIVE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLintFindings outputs roster schema findings, or a clean bill when there are none.
func (p *Printer) PrintLintFindings(findings *schemas.ValidationError) {
	if findings == nil || len(findings.Errors) == 0 {
		p.printBox("ROSTER LINT", "✓ No findings")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d finding(s):\n\n", len(findings.Errors)))
	for i, fe := range findings.Errors {
		sb.WriteString(fmt.Sprintf("%d. %s: %s\n", i+1, fe.Field, fe.Message))
	}

	p.printBox("ROSTER LINT", strings.TrimSuffix(sb.String(), "\n"))
}

// truncate shortens s to width runes, marking the cut with "..."
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

// pad right-pads s with spaces to width runes. fmt widths count bytes, which
// breaks alignment for Cyrillic text.
func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
