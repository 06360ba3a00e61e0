package s3

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3 struct {
	Endpoint string
	Region   string
	Bucket   string
	ak       string
	sk       string
}

func NewS3Client(endpoint, region, bucket, ak, sk string) *S3 {
	return &S3{
		Endpoint: endpoint,
		Region:   region,
		Bucket:   bucket,
		ak:       ak,
		sk:       sk,
	}
}

func (s *S3) DefaultConfig(ctx context.Context) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithCredentialsProvider(credentials.StaticCredentialsProvider{
			Value: aws.Credentials{
				AccessKeyID: s.ak, SecretAccessKey: s.sk,
			},
		}),
		config.WithRegion(s.Region),
	}
	if s.Endpoint != "" {
		opts = append(opts, config.WithEndpointResolverWithOptions(aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:           s.Endpoint,
				SigningRegion: s.Region,
			}, nil
		})))
	}
	return config.LoadDefaultConfig(ctx, opts...)
}

// Key joins filePath and file into an object key without a leading slash.
func Key(filePath, file string) string {
	return strings.TrimPrefix(filepath.ToSlash(filepath.Join(filePath, file)), "/")
}

func (s *S3) Upload(ctx context.Context, filePath, file string, body io.Reader) error {
	cfg, err := s.DefaultConfig(ctx)
	if err != nil {
		return err
	}
	s3Client := s3.NewFromConfig(cfg)
	s3Manager := manager.NewUploader(s3Client)

	_, err = s3Manager.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(Key(filePath, file)),
		Body:   body,
	})
	return err
}

func (s *S3) Delete(ctx context.Context, fullPath string) error {
	cfg, err := s.DefaultConfig(ctx)
	if err != nil {
		return err
	}
	s3Client := s3.NewFromConfig(cfg)
	_, err = s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(strings.TrimPrefix(fullPath, "/")),
	})
	return err
}

func (s *S3) GenGetObjectPreSignURL(ctx context.Context, filePath string) (string, error) {
	cfg, err := s.DefaultConfig(ctx)
	if err != nil {
		return "", err
	}
	s3Client := s3.NewFromConfig(cfg)
	s3PresignClient := s3.NewPresignClient(s3Client)
	req, err := s3PresignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(strings.TrimPrefix(filePath, "/")),
	}, s3.WithPresignExpires(time.Minute*15))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
