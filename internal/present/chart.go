package present

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/xhy51/wordfreq/internal/freq"
)

const (
	// DefaultChartTop is the number of entries charted when Chart.Top is zero.
	DefaultChartTop = 50

	defaultBarWidth = 40
	minBarWidth     = 10
)

// Chart draws a horizontal bar chart of the most frequent entries.
type Chart struct {
	W     io.Writer
	Top   int // entries to draw, DefaultChartTop if zero
	Width int // widest bar in cells, fitted to the terminal if zero
}

// Present draws one bar per entry, scaled to the largest count.
func (c *Chart) Present(entries []freq.Entry) error {
	top := c.Top
	if top <= 0 {
		top = DefaultChartTop
	}
	entries = freq.Top(entries, top)

	r := lipgloss.NewRenderer(c.W)
	title := r.NewStyle().Bold(true)
	if len(entries) == 0 {
		_, err := fmt.Fprintln(c.W, title.Render("No tokens to chart."))
		return err
	}

	labelW := 0
	for _, e := range entries {
		labelW = max(labelW, lipgloss.Width(e.Token))
	}
	peak := entries[0].Count
	countW := len(strconv.Itoa(peak))
	barW := c.barWidth(labelW + countW + 2)

	label := r.NewStyle().Width(labelW).Align(lipgloss.Right)
	bar := r.NewStyle().Foreground(lipgloss.Color("63"))

	if _, err := fmt.Fprintln(c.W, title.Render(fmt.Sprintf("Top %d tokens", len(entries)))); err != nil {
		return err
	}
	for _, e := range entries {
		n := max(1, e.Count*barW/peak)
		_, err := fmt.Fprintf(c.W, "%s %s %d\n",
			label.Render(e.Token), bar.Render(strings.Repeat("█", n)), e.Count)
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Chart) barWidth(reserved int) int {
	if c.Width > 0 {
		return c.Width
	}
	f, ok := c.W.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultBarWidth
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return defaultBarWidth
	}
	return max(minBarWidth, cols-reserved)
}
