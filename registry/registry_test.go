package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/niusia-ua/embroidery-studio/project"
)

func TestRegistryOpenCloseLifecycle(t *testing.T) {
	r := New()
	key := PatternKey("/tmp/sample.embproj")
	proj := project.New(10, 10)

	_, err := r.Project(key)
	require.ErrorIs(t, err, ErrNotFound)

	r.Open(key, proj)
	got, err := r.Project(key)
	require.NoError(t, err)
	require.Same(t, proj, got)

	h, err := r.History(key)
	require.NoError(t, err)
	require.NotNil(t, h)
	require.False(t, h.CanUndo())

	require.Contains(t, r.Keys(), key)

	r.Close(key)
	_, err = r.Project(key)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = r.History(key)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPatternKeyFingerprintIsStable(t *testing.T) {
	key := PatternKey("/tmp/sample.embproj")
	require.Equal(t, key.Fingerprint(), key.Fingerprint())
	require.NotEqual(t, key.Fingerprint(), PatternKey("/tmp/other.embproj").Fingerprint())
}
