package content

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Assignment is one listed object, shaped for the content page.
type Assignment struct {
	ID    int
	Topic string
	Link  string
}

// S3API is the subset of the S3 client the lister uses.
type S3API interface {
	ListObjectsV2(
		ctx context.Context,
		params *s3.ListObjectsV2Input,
		optFns ...func(*s3.Options),
	) (*s3.ListObjectsV2Output, error)
}

// Lister derives the assignment listing from object keys under a fixed
// bucket prefix.
type Lister struct {
	client S3API
	bucket string
	prefix string
}

func NewLister(client S3API, bucket, prefix string) *Lister {
	return &Lister{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// NewClient builds an S3 client from static credentials.
func NewClient(ctx context.Context, region, accessKeyID, secretAccessKey string) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKeyID,
			secretAccessKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("content: load aws config: %w", err)
	}

	return s3.NewFromConfig(cfg), nil
}

// ListAssignments maps the objects under the prefix to numbered topics
// with public object links.
func (l *Lister) ListAssignments(ctx context.Context) ([]Assignment, error) {
	out, err := l.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(l.bucket),
		Prefix: aws.String(l.prefix),
	})
	if err != nil {
		return nil, fmt.Errorf("content: list objects: %w", err)
	}

	items := make([]Assignment, 0, len(out.Contents))
	for i, obj := range out.Contents {
		items = append(items, Assignment{
			ID:    i,
			Topic: fmt.Sprintf("Topic %d", i+1),
			Link:  fmt.Sprintf("https://%s.s3.amazonaws.com/%s", l.bucket, aws.ToString(obj.Key)),
		})
	}
	return items, nil
}
