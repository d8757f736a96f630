// Package actions implements the invertible edit operations a pattern
// project supports: adding or removing a stitch, and adding or removing a
// palette item. Each action knows how to perform itself and how to revoke
// that exact performance, including any stitches it displaced along the
// way, so the history package can drive undo/redo without re-deriving
// anything.
package actions

import (
	"github.com/niusia-ua/embroidery-studio/pattern"
	"github.com/niusia-ua/embroidery-studio/project"
)

// EventSink receives the named, JSON-payload notifications an action emits
// as it runs, standing in for the original implementation's WebviewWindow
// event bus. A production caller typically forwards these to a frontend or
// an IPC channel; tests can use a recording sink.
type EventSink interface {
	Emit(event string, payload any) error
}

// Action is one undoable edit. Perform applies it to proj and reports what
// changed via sink; Revoke undoes exactly that, using whatever the action
// memoized on its first Perform. An action must only ever be Performed once
// before being Revoked (and may then be re-Performed, e.g. on redo) — it is
// not safe to Perform the same Action value concurrently from two
// histories.
type Action interface {
	Perform(sink EventSink, proj *project.Project) error
	Revoke(sink EventSink, proj *project.Project) error
}

// AddStitch adds a single stitch to the pattern, displacing whatever
// geometrically conflicts with it.
//
// Emits on Perform: "stitches:add_one" (the added stitch),
// "stitches:remove_many" (whatever it displaced).
// Emits on Revoke: "stitches:remove_one" (the stitch removed),
// "stitches:add_many" (the displaced stitches, restored).
type AddStitch struct {
	Stitch pattern.Stitch

	conflicts    pattern.Bundle
	haveConflicts bool
}

// NewAddStitch constructs an AddStitch action for the given stitch.
func NewAddStitch(stitch pattern.Stitch) *AddStitch {
	return &AddStitch{Stitch: stitch}
}

func (a *AddStitch) Perform(sink EventSink, proj *project.Project) error {
	conflicts := proj.Pattern.AddStitch(a.Stitch)
	if err := sink.Emit("stitches:add_one", a.Stitch); err != nil {
		return err
	}
	if err := sink.Emit("stitches:remove_many", conflicts.Flatten()); err != nil {
		return err
	}
	if !a.haveConflicts {
		a.conflicts = conflicts
		a.haveConflicts = true
	}
	return nil
}

func (a *AddStitch) Revoke(sink EventSink, proj *project.Project) error {
	proj.Pattern.RemoveStitch(a.Stitch)
	for _, s := range a.conflicts.Flatten() {
		proj.Pattern.AddStitch(s)
	}
	if err := sink.Emit("stitches:remove_one", a.Stitch); err != nil {
		return err
	}
	return sink.Emit("stitches:add_many", a.conflicts.Flatten())
}

// RemoveStitch removes a single stitch from the pattern. It has no
// conflicts to memoize: removal is a pure geometric-slot delete.
//
// Emits on Perform: "stitches:remove_one".
// Emits on Revoke: "stitches:add_one".
type RemoveStitch struct {
	Stitch pattern.Stitch
}

// NewRemoveStitch constructs a RemoveStitch action for the given stitch.
func NewRemoveStitch(stitch pattern.Stitch) *RemoveStitch {
	return &RemoveStitch{Stitch: stitch}
}

func (a *RemoveStitch) Perform(sink EventSink, proj *project.Project) error {
	proj.Pattern.RemoveStitch(a.Stitch)
	return sink.Emit("stitches:remove_one", a.Stitch)
}

func (a *RemoveStitch) Revoke(sink EventSink, proj *project.Project) error {
	proj.Pattern.AddStitch(a.Stitch)
	return sink.Emit("stitches:add_one", a.Stitch)
}
