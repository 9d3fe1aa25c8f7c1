package s3client

import (
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/kelseyhightower/envconfig"

	"text2phenotype.com/aptag/logger"
)

type EnvironmentConfig struct {
	BucketName string `envconfig:"MDL_COMN_STORAGE_CONTAINER_NAME" required:"true"`
	Region     string `envconfig:"MDL_COMN_AWS_REGION_NAME" default:"us-east-1"`
}

type Client struct {
	sess       *session.Session
	bucketName string
	env        EnvironmentConfig
}

var clientLogger = logger.NewLogger("S3Client")

func New() (*Client, error) {
	errLogger := clientLogger.With().Caller().Logger()
	var env EnvironmentConfig
	if err := envconfig.Process("", &env); err != nil {
		errLogger.Err(err).Msg("Failed to get proper variables from environment")
		return nil, err
	}
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(env.Region),
	})
	if err != nil {
		errLogger.Err(err).Msg("Failed to create AWS session")
		return nil, err
	}
	return &Client{
		sess:       sess,
		bucketName: env.BucketName,
		env:        env,
	}, nil
}

func (client *Client) Upload(data string, key string) (*s3manager.UploadOutput, error) {
	uploadLogger := clientLogger.With().
		Str("key", key).
		Str("bucket", client.bucketName).Logger()

	params := &s3manager.UploadInput{
		Bucket: &client.bucketName,
		Key:    &key,
		Body:   strings.NewReader(data),
	}
	uploader := s3manager.NewUploader(client.sess)
	uploadLogger.Debug().Msg("Uploading the file")
	return uploader.Upload(params)
}

func (client *Client) Download(key string) ([]byte, error) {
	downloadLogger := clientLogger.With().
		Str("key", key).
		Str("bucket", client.bucketName).Logger()

	params := &s3.GetObjectInput{
		Bucket: &client.bucketName,
		Key:    &key,
	}
	downloader := s3manager.NewDownloader(client.sess)
	buf := aws.NewWriteAtBuffer([]byte{})
	downloadLogger.Debug().Msg("Downloading the file")
	if _, err := downloader.Download(buf, params); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (client *Client) Close() {
}
