package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"sort"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bucket struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newBucket(objects map[string]string) *bucket {
	b := &bucket{objects: map[string][]byte{}}
	for key, value := range objects {
		b.objects[key] = []byte(value)
	}
	return b
}

func (b *bucket) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	keys := make([]string, 0, len(b.objects))
	for key := range b.objects {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	output := &s3.ListObjectsV2Output{}
	for _, key := range keys {
		output.Contents = append(output.Contents, types.Object{
			Key:  aws.String(key),
			Size: aws.Int64(int64(len(b.objects[key]))),
		})
	}
	return output, nil
}

func (b *bucket) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, ok := b.objects[aws.ToString(params.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (b *bucket) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[aws.ToString(params.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func (b *bucket) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.objects, aws.ToString(params.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestFilesystemS3(t *testing.T) {
	t.Run("ListFiles lists the objects of the bucket", func(t *testing.T) {
		fs := NewFilesystemS3WithClient(newBucket(map[string]string{
			"tasks.json":       `{"tasks": []}`,
			"team/images.yaml": "tasks: []",
			"team/":            "",
		}), "catalogs")

		files, err := fs.ListFiles()
		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.Equal(t, File{Name: "tasks.json", Size: 13, MimeType: "application/json"}, files[0])
		assert.Equal(t, "team/images.yaml", files[1].Name)
	})

	t.Run("Objects are downloaded when they are read", func(t *testing.T) {
		fs := NewFilesystemS3WithClient(newBucket(map[string]string{"team/images.yaml": "tasks: []"}), "catalogs")

		data, err := util.ReadFile(fs, "team/images.yaml")
		require.NoError(t, err)
		assert.Equal(t, "tasks: []", string(data))
	})

	t.Run("Reading a missing object fails with not exist", func(t *testing.T) {
		fs := NewFilesystemS3WithClient(newBucket(nil), "catalogs")

		_, err := util.ReadFile(fs, "missing.json")
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("Written files are uploaded on close", func(t *testing.T) {
		b := newBucket(nil)
		fs := NewFilesystemS3WithClient(b, "catalogs")

		require.NoError(t, util.WriteFile(fs, "tasks.json", []byte(`{}`), 0o644))
		assert.Equal(t, []byte(`{}`), b.objects["tasks.json"])

		files, err := fs.ListFiles()
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "tasks.json", files[0].Name)
	})

	t.Run("Remove deletes the object", func(t *testing.T) {
		b := newBucket(map[string]string{"tasks.json": `{}`})
		fs := NewFilesystemS3WithClient(b, "catalogs")

		require.NoError(t, fs.Remove("tasks.json"))
		assert.Empty(t, b.objects)
	})
}
