// Package history implements the per-project undo/redo stacks: a plain
// dual-stack of actions, since Go interface values are already cheap to move
// between slices without the cloning the original's dyn-Action trait
// objects needed.
package history

import "github.com/niusia-ua/embroidery-studio/actions"

// History is one project's undo/redo log.
type History struct {
	undo []actions.Action
	redo []actions.Action
}

// New returns an empty history.
func New() *History {
	return &History{}
}

// Push records a newly performed action and clears the redo log: once a new
// edit is made, any previously undone actions can no longer be redone.
func (h *History) Push(action actions.Action) {
	h.undo = append(h.undo, action)
	h.redo = h.redo[:0]
}

// Undo pops the most recent action off the undo stack and onto the redo
// stack, reporting it so the caller can Revoke it. It returns ok=false if
// there is nothing to undo.
func (h *History) Undo() (action actions.Action, ok bool) {
	if len(h.undo) == 0 {
		return nil, false
	}
	action = h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, action)
	return action, true
}

// Redo pops the most recently undone action off the redo stack and back onto
// the undo stack, reporting it so the caller can Perform it again. It
// returns ok=false if there is nothing to redo.
func (h *History) Redo() (action actions.Action, ok bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	action = h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, action)
	return action, true
}

// CanUndo reports whether Undo would return an action.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether Redo would return an action.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }
