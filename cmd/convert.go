package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/qupu/jianpu/midifile"
	"github.com/qupu/jianpu/model"
	"github.com/qupu/jianpu/score"
	"github.com/qupu/jianpu/sequencer"
	"github.com/qupu/jianpu/util"
)

var convertOut string

func init() {
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "output .mid path, or a directory when converting batches")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <score>...",
	Short: "Compiles scores into .mid files",
	Long:  `Compiles jianpu score files, or directories of them, into standard MIDI files.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convert(args, convertOut)
	},
}

type renderJob struct {
	in  string
	out string
}

func convert(args []string, out string) error {
	inputs, err := gatherInputs(args)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return errors.New("no score files found")
	}

	jobs, err := planOutputs(inputs, out)
	if err != nil {
		return err
	}
	for _, job := range jobs {
		if err := convertFile(job.in, job.out); err != nil {
			return err
		}
	}
	return nil
}

func gatherInputs(args []string) ([]string, error) {
	var res []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "stat %s", arg)
		}
		if !info.IsDir() {
			res = append(res, arg)
			continue
		}
		found, err := util.GatherScorePaths(arg)
		if err != nil {
			return nil, err
		}
		res = append(res, found...)
	}
	return res, nil
}

func planOutputs(inputs []string, out string) ([]renderJob, error) {
	if out != "" {
		info, err := os.Stat(out)
		isDir := err == nil && info.IsDir()
		if !isDir && len(inputs) == 1 {
			return []renderJob{{inputs[0], out}}, nil
		}
		if !isDir {
			if err := os.MkdirAll(out, 0o755); err != nil {
				return nil, errors.Wrapf(err, "creating %s", out)
			}
		}
		var jobs []renderJob
		seen := make(map[string]int)
		for _, in := range inputs {
			planned := filepath.Join(out, filepath.Base(midPath(in)))
			jobs = append(jobs, renderJob{in, dedupe(seen, planned)})
		}
		return jobs, nil
	}

	// without -o, each .mid lands next to its score
	var jobs []renderJob
	seen := make(map[string]int)
	for _, in := range inputs {
		jobs = append(jobs, renderJob{in, dedupe(seen, midPath(in))})
	}
	return jobs, nil
}

func midPath(in string) string {
	return strings.TrimSuffix(in, filepath.Ext(in)) + ".mid"
}

// dedupe appends -2, -3... when two scores want the same output name.
func dedupe(seen map[string]int, out string) string {
	seen[out]++
	if n := seen[out]; n > 1 {
		return fmt.Sprintf("%s-%d.mid", strings.TrimSuffix(out, ".mid"), n)
	}
	return out
}

func convertFile(in, out string) error {
	dat, err := os.ReadFile(in)
	if err != nil {
		return errors.Wrapf(err, "reading %s", in)
	}
	tracks, doc, err := compileScore(string(dat))
	if err != nil {
		return errors.Wrapf(err, "%s", in)
	}
	logWarnings(in, doc.Warnings)
	if err := renderable(doc); err != nil {
		return errors.Wrapf(err, "%s", in)
	}

	if err := midifile.WriteFile(out, tracks); err != nil {
		return err
	}
	logger.Info("rendered score",
		zap.String("score", in),
		zap.String("out", out),
		zap.Int("tracks", len(tracks)))
	fmt.Println(out)
	return nil
}

// compileScore runs the whole pipeline short of writing bytes.
func compileScore(text string) ([]model.TrackEvents, *model.Document, error) {
	doc, err := score.Parse(text)
	if err != nil {
		return nil, nil, err
	}
	tracks, err := sequencer.All(doc)
	if err != nil {
		return nil, nil, err
	}
	return tracks, doc, nil
}

func renderable(doc *model.Document) error {
	if len(doc.Tracks) == 0 {
		return errors.Wrap(model.ErrDocumentSyntax, "score has no tracks to render")
	}
	return nil
}

func logWarnings(source string, warnings []string) {
	for _, w := range warnings {
		logger.Warn(w, zap.String("score", source))
	}
}
