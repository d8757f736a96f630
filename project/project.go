// Package project bundles a pattern together with the display/print
// settings that ride alongside it, plus the filesystem path it was loaded
// from (if any). This is the unit the registry keys on and the archive
// codec serializes.
package project

import (
	"github.com/niusia-ua/embroidery-studio/pattern"
	"github.com/niusia-ua/embroidery-studio/pattern/display"
	"github.com/niusia-ua/embroidery-studio/pattern/print"
)

// Project is one open pattern together with its presentation settings.
type Project struct {
	FilePath string // empty for a pattern that has never been saved.
	Pattern  *pattern.Pattern
	Display  *display.Settings
	Print    *print.Settings
}

// New builds a brand-new, empty project of the given dimensions, with
// default display and print settings.
func New(width, height uint16) *Project {
	pat := pattern.New(width, height)
	return &Project{
		Pattern: pat,
		Display: display.New(len(pat.Palette)),
		Print:   print.New(),
	}
}
