package history

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/niusia-ua/embroidery-studio/actions"
	"github.com/niusia-ua/embroidery-studio/pattern"
)

func TestHistoryUndoRedo(t *testing.T) {
	h := New()
	require.False(t, h.CanUndo())
	require.False(t, h.CanRedo())

	a := actions.NewAddStitch(pattern.StitchFromFull(pattern.FullStitch{X: 0, Y: 0}))
	h.Push(a)
	require.True(t, h.CanUndo())
	require.False(t, h.CanRedo())

	undone, ok := h.Undo()
	require.True(t, ok)
	require.Same(t, a, undone)
	require.False(t, h.CanUndo())
	require.True(t, h.CanRedo())

	redone, ok := h.Redo()
	require.True(t, ok)
	require.Same(t, a, redone)
	require.True(t, h.CanUndo())
	require.False(t, h.CanRedo())
}

func TestHistoryPushClearsRedo(t *testing.T) {
	h := New()
	first := actions.NewAddStitch(pattern.StitchFromFull(pattern.FullStitch{X: 0, Y: 0}))
	second := actions.NewAddStitch(pattern.StitchFromFull(pattern.FullStitch{X: 1, Y: 1}))

	h.Push(first)
	h.Undo()
	require.True(t, h.CanRedo())

	h.Push(second)
	require.False(t, h.CanRedo(), "a fresh edit invalidates previously undone actions")
}

func TestHistoryUndoRedoOnEmpty(t *testing.T) {
	h := New()
	_, ok := h.Undo()
	require.False(t, ok)
	_, ok = h.Redo()
	require.False(t, ok)
}
