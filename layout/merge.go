package layout

import "overlaybot/types"

// MergeOutline applies the non-nil fields of o on top of parent.
func MergeOutline(parent types.OutlineSpec, o *types.OutlineOverride) types.OutlineSpec {
	if o == nil {
		return parent
	}
	if o.Enabled != nil {
		parent.Enabled = *o.Enabled
	}
	if o.Width != nil {
		parent.Width = *o.Width
	}
	if o.Color != nil {
		parent.Color = *o.Color
	}
	return parent
}

// MergeShadow applies the non-nil fields of o on top of parent.
func MergeShadow(parent types.ShadowSpec, o *types.ShadowOverride) types.ShadowSpec {
	if o == nil {
		return parent
	}
	if o.Enabled != nil {
		parent.Enabled = *o.Enabled
	}
	if o.Color != nil {
		parent.Color = *o.Color
	}
	if o.X != nil {
		parent.X = *o.X
	}
	if o.Y != nil {
		parent.Y = *o.Y
	}
	return parent
}

// MergeBox applies the non-nil fields of o on top of parent.
func MergeBox(parent types.BoxSpec, o *types.BoxOverride) types.BoxSpec {
	if o == nil {
		return parent
	}
	if o.Enabled != nil {
		parent.Enabled = *o.Enabled
	}
	if o.Color != nil {
		parent.Color = *o.Color
	}
	if o.Opacity != nil {
		parent.Opacity = *o.Opacity
	}
	if o.Padding != nil {
		parent.Padding = *o.Padding
	}
	return parent
}

// MergeAnimation applies the non-nil fields of o on top of parent.
func MergeAnimation(parent types.AnimationSpec, o *types.AnimationOverride) types.AnimationSpec {
	if o == nil {
		return parent
	}
	if o.Enabled != nil {
		parent.Enabled = *o.Enabled
	}
	if o.Type != nil {
		parent.Type = *o.Type
	}
	if o.Duration != nil {
		parent.Duration = *o.Duration
	}
	if o.Delay != nil {
		parent.Delay = *o.Delay
	}
	return parent
}

// atomicFrom copies every parent field into a single-line record.
func atomicFrom(o types.TextOverlay, text string, src types.Source) types.AtomicOverlay {
	return types.AtomicOverlay{
		Text:       text,
		Start:      o.Start,
		End:        o.End,
		FontSize:   o.FontSize,
		Font:       o.Font,
		FontColor:  o.FontColor,
		Position:   o.Position,
		Anchor:     types.AnchorMiddle,
		Align:      o.Align,
		Outline:    o.Outline,
		Shadow:     o.Shadow,
		Background: o.Background,
		Animation:  o.Animation,
		Source:     src,
	}
}

// MergeElement builds the record for one text element: parent fields first,
// element scalars override, nested specs merge field by field.
func MergeElement(parent types.TextOverlay, el types.TextElement, src types.Source) types.AtomicOverlay {
	a := atomicFrom(parent, el.Text, src)

	if el.Start != nil {
		a.Start = *el.Start
	}
	if el.End != nil {
		a.End = *el.End
	}
	if el.FontSize != nil {
		a.FontSize = *el.FontSize
	}
	if el.Font != nil {
		a.Font = *el.Font
	}
	if el.FontColor != nil {
		a.FontColor = *el.FontColor
	}
	if el.Align != nil {
		a.Align = *el.Align
	}

	a.Outline = MergeOutline(parent.Outline, el.Outline)
	a.Shadow = MergeShadow(parent.Shadow, el.Shadow)
	a.Background = MergeBox(parent.Background, el.Background)
	a.Animation = MergeAnimation(parent.Animation, el.Animation)
	return a
}
