package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	text := "@global_tempo=90\n@global_key=G\n" +
		"[track lead]\n@instrument=73\n1 2 3- \"hey\" 0 5\n" +
		"[track]\n@key=Em\n6_ 7_ 1\n"
	tracks, doc, err := compileScore(text)
	require.NoError(t, err)

	summary := summarize(doc, tracks)
	require.Len(t, summary.Tracks, 2)

	assert := assert.New(t)
	lead := summary.Tracks[0]
	assert.Equal("lead", lead.Label)
	assert.Equal(float64(90), lead.TempoBPM)
	assert.Equal("4/4", lead.TimeSignature)
	assert.Equal("G", lead.Key)
	assert.Equal(73, lead.Instrument)
	assert.Equal(5, lead.Tokens)

	// 3 metas, four note pairs, one lyric
	assert.Equal(12, lead.Events)

	// 1 + 1 + 2 + 1 + 1 beats of tokens
	assert.Equal(float64(6), lead.Beats)

	second := summary.Tracks[1]
	assert.Equal("", second.Label)
	assert.Equal("Em", second.Key)
	assert.Equal(3, second.Tokens)
	assert.Equal(9, second.Events)

	assert.Equal(uint64(21), summary.TotalEvents)
	assert.Empty(summary.Warnings)
}

func TestSummarizeEmptyDocument(t *testing.T) {
	tracks, doc, err := compileScore("@global_tempo=100\n")
	require.NoError(t, err)

	summary := summarize(doc, tracks)
	assert.Empty(t, summary.Tracks)
	assert.Equal(t, uint64(0), summary.TotalEvents)
	assert.NotEmpty(t, summary.Warnings)
}
