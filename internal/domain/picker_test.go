package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []*Widget {
	return []*Widget{
		NewWidget("Alpha"),
		NewWidget("Beta"),
		NewWidget("Gamma"),
	}
}

func TestPickerStartsUnselected(t *testing.T) {
	picker := NewPicker(testCatalog())

	assert.False(t, picker.Selected())
	current, ok := picker.Current()
	assert.False(t, ok)
	assert.Nil(t, current)
	assert.Equal(t, 3, picker.Len())
}

func TestPickerSelectNext(t *testing.T) {
	catalog := testCatalog()
	picker := NewPicker(catalog)

	first := picker.SelectNext()
	require.NotNil(t, first)
	assert.Equal(t, "Alpha", first.Name)
	assert.True(t, picker.Selected())

	assert.Equal(t, "Beta", picker.SelectNext().Name)
	assert.Equal(t, "Gamma", picker.SelectNext().Name)

	// After the last widget the cursor wraps to the first.
	assert.Equal(t, "Alpha", picker.SelectNext().Name)

	current, ok := picker.Current()
	assert.True(t, ok)
	assert.Same(t, catalog[0], current)
}

func TestPickerWrapLaw(t *testing.T) {
	catalog := testCatalog()
	picker := NewPicker(catalog)

	// Advancing exactly Len times from unselected lands back on the
	// first widget.
	var last *Widget
	for i := 0; i < picker.Len(); i++ {
		last = picker.SelectNext()
	}
	picked := picker.SelectNext()
	assert.Same(t, catalog[0], picked)
	assert.Equal(t, "Gamma", last.Name)
}

func TestPickerEmptyCatalog(t *testing.T) {
	picker := NewPicker(nil)

	assert.Nil(t, picker.SelectNext())
	assert.Nil(t, picker.SelectNext())
	assert.False(t, picker.Selected())
	assert.Equal(t, 0, picker.Len())
}
