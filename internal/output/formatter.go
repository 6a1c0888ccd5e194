package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"gitshell.dev/gitshell/internal/git"
)

var (
	hashStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	markerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	mergeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	authorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	subduedStyle = lipgloss.NewStyle().Faint(true)
)

// colorEnabled reports whether styled output should be produced. Styling is
// disabled when stdout is not a terminal so piped output stays parseable.
func colorEnabled() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func render(style lipgloss.Style, text string) string {
	if !colorEnabled() {
		return text
	}
	return style.Render(text)
}

// FormatBranches renders one branch per line, marking the current branch
func FormatBranches(branches []string, current string) string {
	var b strings.Builder
	for _, branch := range branches {
		if branch == current {
			b.WriteString(render(markerStyle, "* "+branch))
		} else {
			b.WriteString("  " + branch)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatCommit renders a single commit as a one-line log entry:
// short hash, subject, author, and a merge marker when applicable.
func FormatCommit(c git.Commit) string {
	hash := c.Hash
	if len(hash) > 7 {
		hash = hash[:7]
	}
	line := render(hashStyle, hash) + " " + c.Subject
	if c.IsMerge() {
		line += " " + render(mergeStyle, fmt.Sprintf("(merge of %d)", len(c.Parents)))
	}
	line += " " + render(authorStyle, "<"+c.Author.Email+">")
	line += " " + render(subduedStyle, c.Author.When.Format("2006-01-02"))
	return line
}
