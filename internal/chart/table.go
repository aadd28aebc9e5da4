package chart

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Copier places text on the system clipboard.
type Copier interface {
	Write(text string) error
}

// Presenter renders chart rows to a terminal and to the clipboard.
type Presenter struct {
	out    io.Writer
	copier Copier
	logger *slog.Logger

	separatorStyle lipgloss.Style
	countStyle     lipgloss.Style
}

// NewPresenter creates a Presenter writing to out. A nil copier
// disables the clipboard side channel. Styling is dropped when color
// is false.
func NewPresenter(out io.Writer, copier Copier, color bool, logger *slog.Logger) *Presenter {
	if logger == nil {
		logger = slog.Default()
	}

	separatorStyle := lipgloss.NewStyle()
	countStyle := lipgloss.NewStyle()
	if color {
		separatorStyle = separatorStyle.Foreground(lipgloss.Color("240"))
		countStyle = countStyle.Foreground(lipgloss.Color("212")).Bold(true)
	}

	return &Presenter{
		out:            out,
		copier:         copier,
		logger:         logger,
		separatorStyle: separatorStyle,
		countStyle:     countStyle,
	}
}

// Render formats rows as tab-separated lines. The exact byte layout is
// the contract: "romaji \t english \t date \n" per row.
func Render(rows []Row) string {
	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%s \t %s \t %s \n", row.Romaji, row.English, row.Date)
	}
	return b.String()
}

// Tabulate prints the table surrounded by separator banners, copies it
// to the clipboard, and prints the entry count. A clipboard failure is
// logged but does not fail the pipeline; the table is already on
// stdout at that point.
func (p *Presenter) Tabulate(rows []Row) {
	separator := p.separatorStyle.Render("--------------------")

	fmt.Fprintf(p.out, "\n%s\n\n", separator)

	table := Render(rows)
	fmt.Fprintln(p.out, table)

	if p.copier != nil {
		if err := p.copier.Write(table); err != nil {
			p.logger.Warn("failed to copy chart to clipboard", "error", err)
		} else {
			p.logger.Debug("chart copied to clipboard", "bytes", len(table))
		}
	}

	fmt.Fprintf(p.out, "\n\n%s\n\n\n", separator)
	fmt.Fprintln(p.out, p.countStyle.Render(fmt.Sprintf("Elements: %d", len(rows))))
}
