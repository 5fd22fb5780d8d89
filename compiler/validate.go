package compiler

import (
	"fmt"
	"strings"

	"overlaybot/types"
)

// validate checks overlays in order and returns the first failure.
func (c *Compiler) validate(overlays []types.TextOverlay) error {
	for i, o := range overlays {
		if err := c.validateOverlay(o); err != nil {
			return &types.ValidationError{Index: i, Element: -1, Err: err}
		}
		for j, el := range o.Elements {
			if err := c.validateElement(o, el); err != nil {
				return &types.ValidationError{Index: i, Element: j, Err: err}
			}
		}
	}
	return nil
}

func (c *Compiler) validateOverlay(o types.TextOverlay) error {
	if !(o.Start < o.End) {
		return fmt.Errorf("%w (start=%v end=%v)", types.ErrInvalidTiming, o.Start, o.End)
	}
	if !(o.FontSize > 0) {
		return fmt.Errorf("%w (fontSize=%v)", types.ErrInvalidFontSize, o.FontSize)
	}
	if len(o.Elements) == 0 && strings.TrimSpace(o.Text) == "" {
		return types.ErrEmptyText
	}
	if _, err := c.fonts.Resolve(c.fontID(o.Font)); err != nil {
		return err
	}
	return nil
}

func (c *Compiler) validateElement(parent types.TextOverlay, el types.TextElement) error {
	if strings.TrimSpace(el.Text) == "" {
		return types.ErrEmptyText
	}
	if el.Line < 0 {
		return fmt.Errorf("%w (line=%d)", types.ErrInvalidLine, el.Line)
	}

	start, end := parent.Start, parent.End
	if el.Start != nil {
		start = *el.Start
	}
	if el.End != nil {
		end = *el.End
	}
	if !(start < end) {
		return fmt.Errorf("%w (start=%v end=%v)", types.ErrInvalidTiming, start, end)
	}

	if el.FontSize != nil && !(*el.FontSize > 0) {
		return fmt.Errorf("%w (fontSize=%v)", types.ErrInvalidFontSize, *el.FontSize)
	}
	if el.Font != nil {
		if _, err := c.fonts.Resolve(c.fontID(*el.Font)); err != nil {
			return err
		}
	}
	return nil
}

// fontID substitutes the configured default for an empty identifier.
func (c *Compiler) fontID(id string) string {
	if strings.TrimSpace(id) == "" {
		return c.opts.DefaultFont
	}
	return id
}
