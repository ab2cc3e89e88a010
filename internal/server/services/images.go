package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/unity/internal/server/config"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// ImageResolver turns a stored image reference into a URL a client can fetch.
type ImageResolver interface {
	Resolve(ctx context.Context, ref string) (string, error)
}

// PassthroughResolver returns references unchanged.
type PassthroughResolver struct{}

func (PassthroughResolver) Resolve(_ context.Context, ref string) (string, error) {
	return ref, nil
}

const s3Scheme = "s3://"

// S3ImageResolver presigns GET URLs for "s3://bucket/key" references (or
// "s3:///key" for the configured bucket). Other references pass through.
type S3ImageResolver struct {
	config *sc.Config

	once    sync.Once
	client  *s3.PresignClient
	initErr error
}

func NewS3ImageResolver(cfg *sc.Config) *S3ImageResolver {
	return &S3ImageResolver{config: cfg}
}

func (r *S3ImageResolver) presignClient(ctx context.Context) (*s3.PresignClient, error) {
	r.once.Do(func() {
		cfg, err := loadDefaultAWSConfig(ctx,
			config.WithRegion(r.config.S3Region),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				r.config.S3RootUser,
				r.config.S3RootPassword,
				"",
			)))
		if err != nil {
			r.initErr = err
			return
		}

		client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
			if r.config.S3BaseEndpoint != "" {
				o.BaseEndpoint = aws.String(r.config.S3BaseEndpoint)
				o.UsePathStyle = true
			}
		})
		r.client = newS3PresignClient(client)
	})
	return r.client, r.initErr
}

// ParseS3Ref splits an s3:// reference into bucket and key.
func ParseS3Ref(ref, defaultBucket string) (bucket, key string, ok bool) {
	rest, found := strings.CutPrefix(ref, s3Scheme)
	if !found {
		return "", "", false
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" {
		bucket = defaultBucket
	}
	if bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}

func (r *S3ImageResolver) Resolve(ctx context.Context, ref string) (string, error) {
	if !strings.HasPrefix(ref, s3Scheme) {
		return ref, nil
	}
	bucket, key, ok := ParseS3Ref(ref, r.config.S3Bucket)
	if !ok {
		return "", fmt.Errorf("malformed image reference %q", ref)
	}

	pc, err := r.presignClient(ctx)
	if err != nil {
		return "", err
	}

	ttl := r.config.S3PresignTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	req, err := presignGetObject(pc, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
