package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/qupu/jianpu/constants"
	"github.com/qupu/jianpu/midifile"
	"github.com/qupu/jianpu/storage"
)

var (
	publishBucket string
	publishKey    string
	publishRegion string
)

func init() {
	publishCmd.Flags().StringVar(&publishBucket, "bucket", "", "destination S3 bucket")
	publishCmd.Flags().StringVar(&publishKey, "key", "", "object key; defaults to the score name with a .mid extension")
	publishCmd.Flags().StringVar(&publishRegion, "region", constants.GetS3Region(), "S3 region")
	publishCmd.MarkFlagRequired("bucket")
	rootCmd.AddCommand(publishCmd)
}

var publishCmd = &cobra.Command{
	Use:   "publish <score>",
	Short: "Renders a score and uploads the .mid to S3",
	Long:  `Renders a score and uploads the .mid to S3`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return publish(args[0], publishBucket, publishKey, publishRegion)
	},
}

func publish(in, bucket, key, region string) error {
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

	img, err := midifile.Bytes(tracks)
	if err != nil {
		return err
	}
	if key == "" {
		key = strings.TrimSuffix(filepath.Base(in), filepath.Ext(in)) + ".mid"
	}

	url, err := storage.PutRendered(region, bucket, key, img)
	if err != nil {
		return err
	}
	logger.Info("published", zap.String("url", url), zap.Int("bytes", len(img)))
	fmt.Println(url)
	return nil
}
