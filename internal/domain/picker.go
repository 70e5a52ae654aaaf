package domain

// Picker is a forward-only cyclic cursor over a fixed, ordered widget
// catalog. It starts unselected; SelectNext walks the catalog in
// insertion order and wraps to the first widget after the last.
type Picker struct {
	widgets []*Widget
	index   int
}

// unselected is the initial cursor state; a valid selection is always
// an index into the catalog.
const unselected = -1

func NewPicker(widgets []*Widget) *Picker {
	return &Picker{
		widgets: widgets,
		index:   unselected,
	}
}

// SelectNext advances the cursor and returns the newly selected
// widget. On an empty catalog it stays unselected and returns nil;
// that is a defined edge case, not an error.
func (p *Picker) SelectNext() *Widget {
	if len(p.widgets) == 0 {
		return nil
	}
	p.index = (p.index + 1) % len(p.widgets)
	return p.widgets[p.index]
}

// Current returns the selected widget, or false when unselected.
func (p *Picker) Current() (*Widget, bool) {
	if p.index == unselected {
		return nil, false
	}
	return p.widgets[p.index], true
}

// Selected reports whether any widget has been selected yet.
func (p *Picker) Selected() bool {
	return p.index != unselected
}

func (p *Picker) Len() int {
	return len(p.widgets)
}
