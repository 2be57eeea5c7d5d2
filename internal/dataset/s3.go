package dataset

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/pageza/smart-leftovers/backend/internal/types"
)

// S3Source fetches the corpus JSON object from an S3 bucket.
type S3Source struct {
	client *s3.Client
	bucket string
	key    string
}

// NewS3Source initializes the S3 client from the default AWS config chain
// (environment or shared config) and the given region.
func NewS3Source(ctx context.Context, region, bucket, key string) (*S3Source, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: loading AWS config: %v", ErrDatasetUnavailable, err)
	}

	return &S3Source{
		client: s3.NewFromConfig(awsCfg),
		bucket: bucket,
		key:    key,
	}, nil
}

// Load downloads and parses the dataset object.
func (s *S3Source) Load(ctx context.Context) ([]types.RawRecipe, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: fetching s3://%s/%s: %v", ErrDatasetUnavailable, s.bucket, s.key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading s3://%s/%s: %v", ErrDatasetUnavailable, s.bucket, s.key, err)
	}
	return decodeRecipes(data)
}
