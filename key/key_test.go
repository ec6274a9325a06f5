package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qupu/jianpu/model"
)

func TestResolveTonics(t *testing.T) {
	tests := []struct {
		name  string
		tonic int
		mode  model.Mode
	}{
		{"C", 0, model.Major},
		{"C#", 1, model.Major},
		{"Db", 1, model.Major},
		{"D", 2, model.Major},
		{"Eb", 3, model.Major},
		{"E", 4, model.Major},
		{"F", 5, model.Major},
		{"F#", 6, model.Major},
		{"Gb", 6, model.Major},
		{"G", 7, model.Major},
		{"Ab", 8, model.Major},
		{"A", 9, model.Major},
		{"Bb", 10, model.Major},
		{"B", 11, model.Major},
		{"Am", 9, model.Minor},
		{"Amin", 9, model.Minor},
		{"Aminor", 9, model.Minor},
		{"Cmaj", 0, model.Major},
		{"Cmajor", 0, model.Major},
		{"G#m", 8, model.Minor},
		{"bbm", 10, model.Minor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := Resolve(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.tonic, k.Tonic)
			assert.Equal(t, tt.mode, k.Mode)
		})
	}
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	lower, err := Resolve("f#m")
	require.NoError(t, err)
	upper, err := Resolve("F#M")
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
}

func TestResolveIntervalPatterns(t *testing.T) {
	assert := assert.New(t)

	cMajor, err := Resolve("C")
	assert.NoError(err)
	assert.Equal([7]int{2, 2, 1, 2, 2, 2, 1}, cMajor.Intervals)

	aMinor, err := Resolve("Am")
	assert.NoError(err)
	assert.Equal([7]int{2, 1, 2, 2, 1, 2, 2}, aMinor.Intervals)
}

func TestResolveRejectsBadNames(t *testing.T) {
	for _, name := range []string{"H", "", "C+", "Xm", "C##", "1", "C major x", "major"} {
		t.Run(name, func(t *testing.T) {
			_, err := Resolve(name)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidKey)
		})
	}
}

func TestEnharmonicSpellings(t *testing.T) {
	assert := assert.New(t)

	cSharp, err := Resolve("C#")
	assert.NoError(err)
	dFlat, err := Resolve("Db")
	assert.NoError(err)
	assert.Equal(cSharp.Tonic, dFlat.Tonic)

	cFlat, err := Resolve("Cb")
	assert.NoError(err)
	assert.Equal(11, cFlat.Tonic)
}

func TestDefaultIsCMajor(t *testing.T) {
	k := Default()
	assert.Equal(t, 0, k.Tonic)
	assert.Equal(t, model.Major, k.Mode)
	assert.Equal(t, "C", k.String())
}
