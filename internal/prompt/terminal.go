package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	sectionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Terminal implements Confirmer and Prompter over a reader/writer pair,
// normally stdin/stdout.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal creates a Terminal reading answers from in and rendering to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Confirm renders both document versions and asks for a yes/no answer.
// Anything other than an explicit yes declines.
func (t *Terminal) Confirm(ctx context.Context, c Confirmation) (bool, error) {
	fmt.Fprintln(t.out, titleStyle.Render(c.Title))
	fmt.Fprintln(t.out, sectionStyle.Render("--- current ---"))
	fmt.Fprintln(t.out, c.Current)
	fmt.Fprintln(t.out, sectionStyle.Render("--- proposed ---"))
	fmt.Fprintln(t.out, c.Proposed)
	fmt.Fprint(t.out, questionStyle.Render("overwrite? [y/N] "))

	line, err := t.readLine(ctx)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Ask prompts for a single field value; an empty answer keeps fallback.
func (t *Terminal) Ask(ctx context.Context, field, fallback string) (string, error) {
	if fallback != "" {
		fmt.Fprintf(t.out, "%s (%s): ", questionStyle.Render(field), fallback)
	} else {
		fmt.Fprintf(t.out, "%s: ", questionStyle.Render(field))
	}

	line, err := t.readLine(ctx)
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback, nil
	}
	return line, nil
}

func (t *Terminal) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := t.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return line, nil
}
