package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/grailbio/base/log"
	"github.com/pkg/errors"

	"github.com/niusia-ua/embroidery-studio/actions"
	"github.com/niusia-ua/embroidery-studio/pattern"
	"github.com/niusia-ua/embroidery-studio/project"
	"github.com/niusia-ua/embroidery-studio/registry"
)

// defaultExt is the file extension new patterns are created with: the
// project-archive format, since it is the only format this package can
// both read and write that also preserves display/print settings.
const defaultExt = ".embproj"

// defaultWidth and defaultHeight size a brand-new pattern when the caller
// does not specify dimensions explicitly.
const (
	defaultWidth  = 100
	defaultHeight = 100
)

// Service implements the command surface: the single entry point a
// dispatcher (IPC layer, CLI, test harness) drives. It owns the process's
// Registry and the Storage commands read and write pattern files through.
type Service struct {
	registry *registry.Registry
	storage  Storage
}

// NewService wires a Service around storage, with a fresh, empty registry.
func NewService(storage Storage) *Service {
	return &Service{registry: registry.New(), storage: storage}
}

// LoadPattern loads the pattern at path, registering it under a key derived
// from path. If that key is already open, the existing project is returned
// unchanged rather than re-parsed from disk.
func (s *Service) LoadPattern(ctx context.Context, path string) (registry.PatternKey, *project.Project, error) {
	key := registry.PatternKey(path)
	if proj, err := s.registry.Project(key); err == nil {
		return key, proj, nil
	}

	data, err := s.storage.Read(ctx, path)
	if err != nil {
		log.Error.Printf("app: load %q: %v", path, err)
		return "", nil, err
	}
	proj, err := parsePattern(path, data)
	if err != nil {
		log.Error.Printf("app: parse %q: %v", path, err)
		return "", nil, err
	}
	proj.FilePath = path

	s.registry.Open(key, proj)
	log.Debug.Printf("app: loaded %q as %v", path, key.Fingerprint())
	return key, proj, nil
}

// CreatePattern builds a brand-new empty pattern of width x height stitches
// (a zero width becomes defaultWidth, a zero height defaultHeight), assigns it an unused
// "Untitled-N" file path under the document directory, and registers it.
// The file is not written to disk until a subsequent SavePattern call.
func (s *Service) CreatePattern(width, height uint16) (registry.PatternKey, *project.Project, error) {
	if width == 0 {
		width = defaultWidth
	}
	if height == 0 {
		height = defaultHeight
	}

	docDir, err := s.storage.DocumentDir()
	if err != nil {
		return "", nil, err
	}
	path := s.nextUntitledPath(docDir)

	proj := project.New(width, height)
	proj.FilePath = path

	key := registry.PatternKey(path)
	s.registry.Open(key, proj)
	log.Debug.Printf("app: created %dx%d pattern at %q", width, height, path)
	return key, proj, nil
}

// nextUntitledPath finds the first "Untitled-N" file name, under docDir,
// with defaultExt, not already open in the registry.
func (s *Service) nextUntitledPath(docDir string) string {
	open := make(map[string]bool)
	for _, k := range s.registry.Keys() {
		open[string(k)] = true
	}
	for n := 1; ; n++ {
		candidate := filepath.Join(docDir, fmt.Sprintf("Untitled-%d%s", n, defaultExt))
		if !open[candidate] {
			return candidate
		}
	}
}

// SavePattern re-points key's project at path and writes it there using the
// codec path's extension selects, updating the registered project's
// FilePath on success.
func (s *Service) SavePattern(ctx context.Context, key registry.PatternKey, path string) error {
	proj, err := s.registry.Project(key)
	if err != nil {
		return err
	}

	data, err := savePattern(path, proj)
	if err != nil {
		return err
	}
	if err := s.storage.Write(ctx, path, data); err != nil {
		log.Error.Printf("app: save %q: %v", path, err)
		return err
	}
	proj.FilePath = path
	log.Debug.Printf("app: saved %v to %q", key.Fingerprint(), path)
	return nil
}

// ClosePattern removes key and its history from the registry.
func (s *Service) ClosePattern(key registry.PatternKey) error {
	if _, err := s.registry.Project(key); err != nil {
		return err
	}
	s.registry.Close(key)
	return nil
}

// PatternFilePath returns the file path currently associated with key.
func (s *Service) PatternFilePath(key registry.PatternKey) (string, error) {
	proj, err := s.registry.Project(key)
	if err != nil {
		return "", err
	}
	return proj.FilePath, nil
}

// AppDocumentDir returns the product-named folder under the OS documents
// directory, creating it if this is the first call.
func (s *Service) AppDocumentDir() (string, error) {
	return s.storage.DocumentDir()
}

// perform looks up key's project and history, runs action against the
// project, and on success pushes action onto the undo stack.
func (s *Service) perform(key registry.PatternKey, sink actions.EventSink, action actions.Action) error {
	proj, err := s.registry.Project(key)
	if err != nil {
		return err
	}
	h, err := s.registry.History(key)
	if err != nil {
		return err
	}
	if err := action.Perform(sink, proj); err != nil {
		return err
	}
	h.Push(action)
	return nil
}

// AddStitch performs an AddStitch action against key's pattern.
func (s *Service) AddStitch(key registry.PatternKey, sink actions.EventSink, stitch pattern.Stitch) error {
	return s.perform(key, sink, actions.NewAddStitch(stitch))
}

// RemoveStitch performs a RemoveStitch action against key's pattern.
func (s *Service) RemoveStitch(key registry.PatternKey, sink actions.EventSink, stitch pattern.Stitch) error {
	return s.perform(key, sink, actions.NewRemoveStitch(stitch))
}

// AddPaletteItem performs an AddPaletteItem action against key's pattern.
func (s *Service) AddPaletteItem(key registry.PatternKey, sink actions.EventSink, item pattern.PaletteItem) error {
	return s.perform(key, sink, actions.NewAddPaletteItem(item))
}

// RemovePaletteItem performs a RemovePaletteItem action against key's
// pattern.
func (s *Service) RemovePaletteItem(key registry.PatternKey, sink actions.EventSink, item pattern.PaletteItem) error {
	return s.perform(key, sink, actions.NewRemovePaletteItem(item))
}

// Undo pops key's most recent action and revokes it.
func (s *Service) Undo(key registry.PatternKey, sink actions.EventSink) error {
	proj, err := s.registry.Project(key)
	if err != nil {
		return err
	}
	h, err := s.registry.History(key)
	if err != nil {
		return err
	}
	action, ok := h.Undo()
	if !ok {
		return errors.Wrapf(ErrNothingToUndo, "key %q", key)
	}
	return action.Revoke(sink, proj)
}

// Redo pops key's most recently undone action and performs it again.
func (s *Service) Redo(key registry.PatternKey, sink actions.EventSink) error {
	proj, err := s.registry.Project(key)
	if err != nil {
		return err
	}
	h, err := s.registry.History(key)
	if err != nil {
		return err
	}
	action, ok := h.Redo()
	if !ok {
		return errors.Wrapf(ErrNothingToRedo, "key %q", key)
	}
	return action.Perform(sink, proj)
}
