package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/qupu/jianpu/constants"
	"github.com/qupu/jianpu/model"
	"github.com/qupu/jianpu/util"
)

var checkJSON bool

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "print the summary as JSON")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <score>",
	Short: "Validates a score without writing MIDI",
	Long:  `Validates a score and prints a per-track summary without writing MIDI.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return check(args[0], checkJSON)
	},
}

func check(path string, asJSON bool) error {
	dat, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	tracks, doc, err := compileScore(string(dat))
	if err != nil {
		return errors.Wrapf(err, "%s", path)
	}

	summary := summarize(doc, tracks)
	if asJSON {
		return json.NewEncoder(os.Stdout).Encode(summary)
	}

	for _, w := range summary.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	for i, tr := range summary.Tracks {
		name := fmt.Sprintf("track %d", i+1)
		if tr.Label != "" {
			name += " (" + tr.Label + ")"
		}
		fmt.Printf("%s: %s, %s, %g bpm, instrument %d, %d tokens, %d events, %g beats\n",
			name, tr.Key, tr.TimeSignature, tr.TempoBPM, tr.Instrument, tr.Tokens, tr.Events, tr.Beats)
	}
	fmt.Printf("total events: %d\n", summary.TotalEvents)
	return nil
}

func summarize(doc *model.Document, tracks []model.TrackEvents) model.CheckResponse {
	res := model.CheckResponse{
		Tracks:   make([]model.TrackSummary, 0, len(tracks)),
		Warnings: doc.Warnings,
	}
	var counts []int
	for i, te := range tracks {
		cfg := doc.Tracks[i].Config
		res.Tracks = append(res.Tracks, model.TrackSummary{
			Label:         te.Label,
			TempoBPM:      cfg.TempoBPM,
			TimeSignature: cfg.TimeSignature.String(),
			Key:           cfg.Key.String(),
			Instrument:    cfg.Instrument,
			Tokens:        len(doc.Tracks[i].Tokens),
			Events:        len(te.Events),
			Beats:         float64(te.TotalTicks) / constants.TicksPerBeat,
		})
		counts = append(counts, len(te.Events))
	}
	res.TotalEvents = util.Sum(counts)
	return res
}
