package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"

	"github.com/qupu/jianpu/midifile"
	"github.com/qupu/jianpu/util"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Summarizes a rendered MIDI file",
	Long:  `Summarizes a rendered MIDI file`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	mf, err := midifile.ReadFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %v, %d tracks\n", path, mf.TimeFormat, len(mf.Tracks))
	for i, track := range mf.Tracks {
		counts := make(map[string]int)
		var headers []string
		var abs uint64
		for _, evt := range track {
			abs += uint64(evt.Delta)
			if abs == 0 && len(headers) < 6 {
				headers = append(headers, evt.Message.String())
			}
			var text string
			switch {
			case evt.Message.Is(midi.NoteOnMsg):
				counts["note-on"]++
			case evt.Message.Is(midi.NoteOffMsg):
				counts["note-off"]++
			case evt.Message.Is(midi.ProgramChangeMsg):
				counts["program-change"]++
			case evt.Message.GetMetaLyric(&text):
				counts["lyric"]++
			default:
				counts["meta"]++
			}
		}

		fmt.Printf("track %d: %d events over %d ticks\n", i+1, len(track), abs)
		for _, h := range headers {
			fmt.Printf("  %s\n", h)
		}
		for _, key := range util.SortedKeys(counts) {
			fmt.Printf("  %s: %d\n", key, counts[key])
		}
	}
	return nil
}
