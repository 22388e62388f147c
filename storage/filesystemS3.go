package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/siherrmann/jobSchema/helper"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

// S3Client is the part of the S3 API the filesystem uses.
type S3Client interface {
	s3.ListObjectsV2APIClient
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// FilesystemS3 implements the Filesystem interface for S3-compatible storage.
// Objects are read through an in-memory copy, files written to it are
// uploaded to the bucket when they are closed.
type FilesystemS3 struct {
	billy.Filesystem
	client     S3Client
	bucketName string
}

// S3Config holds the configuration for S3 filesystem
type S3Config struct {
	Endpoint        string // S3 endpoint URL (for S3-compatible services)
	Region          string // AWS region
	BucketName      string // S3 bucket name
	AccessKeyID     string // AWS access key ID
	SecretAccessKey string // AWS secret access key
	UseSSL          bool   // Scheme for endpoints given without one
}

// NewFilesystemS3 creates a new S3 filesystem instance with the specified configuration
func NewFilesystemS3(cfg S3Config) (Filesystem, error) {
	awsConfig, err := config.LoadDefaultConfig(
		context.Background(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, helper.NewError("load s3 config", err)
	}

	endpoint := cfg.Endpoint
	if endpoint != "" && !strings.Contains(endpoint, "://") {
		if cfg.UseSSL {
			endpoint = "https://" + endpoint
		} else {
			endpoint = "http://" + endpoint
		}
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true // Required for MinIO and other S3-compatible services
		}
	})

	return NewFilesystemS3WithClient(client, cfg.BucketName), nil
}

// NewFilesystemS3WithClient creates an S3 filesystem on top of an existing client.
func NewFilesystemS3WithClient(client S3Client, bucketName string) *FilesystemS3 {
	return &FilesystemS3{
		Filesystem: memfs.New(),
		client:     client,
		bucketName: bucketName,
	}
}

func objectKey(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(filepath.Clean(path)), "/")
}

// Open reads a file, downloading it from the bucket if it was not read before.
func (fs *FilesystemS3) Open(filename string) (billy.File, error) {
	file, err := fs.Filesystem.Open(filename)
	if err == nil || !os.IsNotExist(err) {
		return file, err
	}

	result, getErr := fs.client.GetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(fs.bucketName),
		Key:    aws.String(objectKey(filename)),
	})
	if getErr != nil {
		return nil, err
	}
	defer result.Body.Close()

	data, readErr := io.ReadAll(result.Body)
	if readErr != nil {
		return nil, helper.NewError("read s3 object", readErr)
	}
	if writeErr := util.WriteFile(fs.Filesystem, filename, data, 0o644); writeErr != nil {
		return nil, writeErr
	}
	return fs.Filesystem.Open(filename)
}

func (fs *FilesystemS3) Create(filename string) (billy.File, error) {
	return fs.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o666)
}

// OpenFile opens a file, files opened for writing are uploaded on close.
func (fs *FilesystemS3) OpenFile(filename string, flag int, perm os.FileMode) (billy.File, error) {
	if flag&(os.O_WRONLY|os.O_RDWR|os.O_CREATE|os.O_APPEND|os.O_TRUNC) == 0 {
		return fs.Open(filename)
	}
	file, err := fs.Filesystem.OpenFile(filename, flag, perm)
	if err != nil {
		return nil, err
	}
	return &s3File{File: file, fs: fs, name: filename}, nil
}

// Remove deletes a file from the bucket and the local copy
func (fs *FilesystemS3) Remove(filename string) error {
	_, err := fs.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(fs.bucketName),
		Key:    aws.String(objectKey(filename)),
	})
	if err != nil {
		return helper.NewError("delete s3 object", err)
	}

	err = fs.Filesystem.Remove(filename)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ListFiles returns a list of all files in the S3 bucket
func (fs *FilesystemS3) ListFiles() ([]File, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(fs.bucketName),
	}

	var files []File
	paginator := s3.NewListObjectsV2Paginator(fs.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(context.Background())
		if err != nil {
			return nil, helper.NewError("list s3 objects", err)
		}

		for _, object := range page.Contents {
			if object.Key == nil || strings.HasSuffix(*object.Key, "/") {
				continue
			}

			var size int64
			if object.Size != nil {
				size = *object.Size
			}
			files = append(files, File{
				Name:     *object.Key,
				Size:     size,
				MimeType: helper.GetMimeType(*object.Key),
			})
		}
	}

	return files, nil
}

func (fs *FilesystemS3) upload(filename string) error {
	data, err := util.ReadFile(fs.Filesystem, filename)
	if err != nil {
		return err
	}

	_, err = fs.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:        aws.String(fs.bucketName),
		Key:           aws.String(objectKey(filename)),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(helper.GetMimeType(filename)),
	})
	if err != nil {
		return helper.NewError("put s3 object", err)
	}
	return nil
}

type s3File struct {
	billy.File
	fs     *FilesystemS3
	name   string
	closed bool
}

func (f *s3File) Close() error {
	if f.closed {
		return os.ErrClosed
	}
	f.closed = true
	return errors.Join(f.File.Close(), f.fs.upload(f.name))
}
