package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"overlaybot/compiler"
	"overlaybot/types"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB000"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 1)
)

// renderReport summarizes a compile result: one row per drawtext filter.
func renderReport(req types.RenderRequest, res *compiler.Result) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Overlay filter: %d drawtext filters at %dx%d",
		len(res.Overlays), res.Dims.Width, res.Dims.Height)))
	b.WriteString("\n")

	if req.Input != "" {
		b.WriteString(infoStyle.Render("input:  "+req.Input) + "\n")
	}
	if req.Output != "" {
		b.WriteString(infoStyle.Render("output: "+req.Output) + "\n")
	}

	rows := make([]string, 0, len(res.Overlays))
	for _, o := range res.Overlays {
		rows = append(rows, fmt.Sprintf("#%d line %d  %5.2fs-%5.2fs  %q",
			o.Source.Overlay, o.Source.Line, o.Start, o.End, o.Text))
	}
	if len(rows) > 0 {
		b.WriteString(boxStyle.Render(strings.Join(rows, "\n")))
		b.WriteString("\n")
	}

	for _, w := range res.Warnings {
		b.WriteString(warnStyle.Render("⚠️  "+w.String()) + "\n")
	}
	return b.String()
}

// renderError adds the offending overlay to validation failures.
func renderError(err error) string {
	var verr *types.ValidationError
	if errors.As(err, &verr) {
		return errorStyle.Render("❌ invalid overlay config: " + verr.Error())
	}
	var rerr *types.RenderError
	if errors.As(err, &rerr) && rerr.Diagnostic != "" {
		return errorStyle.Render("❌ "+rerr.Error()) + "\n" + infoStyle.Render(rerr.Diagnostic)
	}
	return errorStyle.Render("❌ " + err.Error())
}
