package storage_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"championship-pipeline/core/storage"
	"championship-pipeline/core/storage/mocks"
	"championship-pipeline/core/table"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "test-bucket",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestPutGetTable(t *testing.T) {
	tbl := table.New("club", "pts")
	require.NoError(t, tbl.AppendRow("Leeds United", "100"))

	var encoded bytes.Buffer
	require.NoError(t, tbl.WriteCSV(&encoded))

	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "bkt", "curated/league.csv", mock.Anything, int64(encoded.Len()), mock.Anything).
		Return(minio.UploadInfo{}, nil)
	client.On("GetObject", mock.Anything, "bkt", "curated/league.csv", mock.Anything).
		Return(io.NopCloser(bytes.NewReader(encoded.Bytes())), nil)

	err := storage.PutTable(context.Background(), client, "bkt", "curated/league.csv", tbl)
	require.NoError(t, err)

	got, err := storage.GetTable(context.Background(), client, "bkt", "curated/league.csv")
	require.NoError(t, err)
	assert.True(t, tbl.Equal(got))

	client.AssertExpectations(t)
}

func TestListCSVObjects(t *testing.T) {
	ch := make(chan minio.ObjectInfo, 3)
	ch <- minio.ObjectInfo{Key: "curated/b.csv"}
	ch <- minio.ObjectInfo{Key: "curated/a.csv"}
	ch <- minio.ObjectInfo{Key: "curated/readme.txt"}
	close(ch)

	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "bkt", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	names, err := storage.ListCSVObjects(context.Background(), client, "bkt", "curated/")
	require.NoError(t, err)
	assert.Equal(t, []string{"curated/a.csv", "curated/b.csv"}, names)
}

func TestEnsureBucket_AlreadyExists(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "bkt").Return(true, nil)

	err := storage.EnsureBucket(context.Background(), client, "bkt", "")
	assert.NoError(t, err)
	client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
}

func TestEnsureBucket_Creates(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "bkt").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "bkt", mock.Anything).Return(nil)

	err := storage.EnsureBucket(context.Background(), client, "bkt", "")
	assert.NoError(t, err)
	client.AssertExpectations(t)
}
