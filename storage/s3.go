// Package storage uploads rendered MIDI to S3.
package storage

import (
	"bytes"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"

	"github.com/qupu/jianpu/constants"
)

// PutRendered uploads a rendered .mid image and returns its s3:// URL.
// Set JIANPU_S3_ENDPOINT to point uploads at a local stack.
func PutRendered(region, bucket, key string, data []byte) (string, error) {
	cfg := aws.Config{
		Region: aws.String(region),
	}
	if endpoint := constants.GetS3Endpoint(); endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
		cfg.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(&cfg)
	if err != nil {
		return "", errors.Wrap(err, "creating aws session")
	}

	client := s3.New(sess)
	_, err = client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("audio/midi"),
	})
	if err != nil {
		return "", errors.Wrapf(err, "uploading s3://%s/%s", bucket, key)
	}

	return "s3://" + bucket + "/" + key, nil
}
