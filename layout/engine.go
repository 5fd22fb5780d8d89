package layout

import (
	"sort"
	"strings"

	"overlaybot/types"
)

// stackedLine is one row of a multi-line block.
type stackedLine struct {
	number  int
	records []types.AtomicOverlay
	height  float64
}

// Expand turns one authored overlay into single-line records with resolved
// vertical placement. index is the overlay's position in the request and is
// only used for provenance.
func Expand(o types.TextOverlay, index int, dims types.Dimensions) []types.AtomicOverlay {
	if len(o.Elements) > 0 {
		return stack(o, elementLines(o, index, dims.Height), dims.Height)
	}

	lines := splitLines(o.Text)
	if len(lines) == 1 {
		return []types.AtomicOverlay{atomicFrom(o, o.Text, types.Source{Overlay: index, Line: 0, Element: -1})}
	}
	return stack(o, textLines(o, lines, index, dims.Height), dims.Height)
}

// elementLines groups elements by target line, ascending, keeping declaration
// order inside a line.
func elementLines(o types.TextOverlay, index, height int) []stackedLine {
	byLine := make(map[int][]types.AtomicOverlay)
	for i, el := range o.Elements {
		src := types.Source{Overlay: index, Line: el.Line, Element: i}
		byLine[el.Line] = append(byLine[el.Line], MergeElement(o, el, src))
	}

	numbers := make([]int, 0, len(byLine))
	for n := range byLine {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	lines := make([]stackedLine, 0, len(numbers))
	for _, n := range numbers {
		records := byLine[n]
		tallest := 0
		for _, r := range records {
			if size := ResolveFontSize(r.FontSize, height); size > tallest {
				tallest = size
			}
		}
		lines = append(lines, stackedLine{number: n, records: records, height: LineHeight(tallest)})
	}
	return lines
}

// textLines gives every line of the raw text the parent's full style.
// Blank lines keep their height but produce no record.
func textLines(o types.TextOverlay, texts []string, index, height int) []stackedLine {
	lh := LineHeight(ResolveFontSize(o.FontSize, height))
	lines := make([]stackedLine, 0, len(texts))
	for i, text := range texts {
		l := stackedLine{number: i, height: lh}
		if strings.TrimSpace(text) != "" {
			src := types.Source{Overlay: index, Line: i, Element: -1}
			l.records = []types.AtomicOverlay{atomicFrom(o, text, src)}
		}
		lines = append(lines, l)
	}
	return lines
}

// stack centers the block on the overlay's center row and assigns each line
// the running offset from the block top.
func stack(o types.TextOverlay, lines []stackedLine, height int) []types.AtomicOverlay {
	block := 0.0
	for _, l := range lines {
		block += l.height
	}

	top := CenterY(o.Position, height, block) - block/2
	offset := 0.0

	var out []types.AtomicOverlay
	for _, l := range lines {
		if l.height == 0 && len(l.records) == 0 {
			continue
		}
		row := top + offset
		for _, r := range l.records {
			r.Position = stackedPosition(o.Position, row)
			r.Anchor = types.AnchorTop
			out = append(out, r)
		}
		offset += l.height
	}
	return out
}

func stackedPosition(parent types.Position, row float64) types.Position {
	if parent.IsPreset() {
		return types.Position{Preset: parent.Preset, Y: types.Pixels(row)}
	}
	return types.Position{X: parent.X, Y: types.Pixels(row)}
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}
