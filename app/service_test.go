package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/niusia-ua/embroidery-studio/pattern"
)

var errFixtureNotFound = errors.New("memStorage: not found")

// memStorage is an in-memory Storage fake: no filesystem access, so tests
// exercise Service's orchestration logic without touching disk.
type memStorage struct {
	files  map[string][]byte
	docDir string
}

func newMemStorage() *memStorage {
	return &memStorage{files: make(map[string][]byte), docDir: "/docs"}
}

func (m *memStorage) Read(ctx context.Context, path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, errFixtureNotFound
	}
	return data, nil
}

func (m *memStorage) Write(ctx context.Context, path string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	m.files[path] = cp
	return nil
}

func (m *memStorage) DocumentDir() (string, error) {
	return m.docDir, nil
}

type recordingSink struct {
	events []string
}

func (r *recordingSink) Emit(event string, payload any) error {
	r.events = append(r.events, event)
	return nil
}

func TestServiceCreateAddUndoRedo(t *testing.T) {
	storage := newMemStorage()
	svc := NewService(storage)

	key, proj, err := svc.CreatePattern(10, 10)
	require.NoError(t, err)
	require.Equal(t, uint16(10), proj.Pattern.Properties.Width)

	sink := &recordingSink{}
	stitch := pattern.StitchFromFull(pattern.FullStitch{X: 1, Y: 1, Palindex: 0, Kind: pattern.FullStitchKindFull})

	require.NoError(t, svc.AddStitch(key, sink, stitch))
	require.Equal(t, 1, proj.Pattern.FullStitches.Len())
	require.Contains(t, sink.events, "stitches:add_one")

	require.NoError(t, svc.Undo(key, sink))
	require.Equal(t, 0, proj.Pattern.FullStitches.Len())

	require.NoError(t, svc.Redo(key, sink))
	require.Equal(t, 1, proj.Pattern.FullStitches.Len())

	require.ErrorIs(t, svc.Redo(key, sink), ErrNothingToRedo)
}

func TestServiceSaveLoadRoundTrip(t *testing.T) {
	storage := newMemStorage()
	svc := NewService(storage)

	key, proj, err := svc.CreatePattern(5, 5)
	require.NoError(t, err)

	sink := &recordingSink{}
	stitch := pattern.StitchFromFull(pattern.FullStitch{X: 0, Y: 0, Kind: pattern.FullStitchKindFull})
	require.NoError(t, svc.AddStitch(key, sink, stitch))

	savePath := "/docs/roundtrip.embproj"
	require.NoError(t, svc.SavePattern(context.Background(), key, savePath))
	require.NoError(t, svc.ClosePattern(key))

	loadedKey, loadedProj, err := svc.LoadPattern(context.Background(), savePath)
	require.NoError(t, err)
	require.NotEqual(t, key, loadedKey)
	require.Equal(t, proj.Pattern.Properties.Width, loadedProj.Pattern.Properties.Width)
	require.Equal(t, 1, loadedProj.Pattern.FullStitches.Len())
}

func TestServiceLoadUnsupportedExtension(t *testing.T) {
	storage := newMemStorage()
	require.NoError(t, storage.Write(context.Background(), "/docs/pattern.unknown", []byte("data")))
	svc := NewService(storage)

	_, _, err := svc.LoadPattern(context.Background(), "/docs/pattern.unknown")
	require.ErrorIs(t, err, ErrUnsupportedPatternType)
}

func TestServiceCloseUnknownKey(t *testing.T) {
	svc := NewService(newMemStorage())
	err := svc.ClosePattern("nope")
	require.Error(t, err)
}
