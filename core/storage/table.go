package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"championship-pipeline/core/table"

	"github.com/minio/minio-go/v7"
)

// PutTable uploads a table as a CSV object.
func PutTable(ctx context.Context, client Client, bucket, objectName string, t *table.Table) error {
	var buf bytes.Buffer
	if err := t.WriteCSV(&buf); err != nil {
		return fmt.Errorf("encode %q: %w", objectName, err)
	}
	_, err := client.PutObject(ctx, bucket, objectName, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return fmt.Errorf("upload %q: %w", objectName, err)
	}
	return nil
}

// GetTable downloads a CSV object and decodes it into a table.
func GetTable(ctx context.Context, client Client, bucket, objectName string) (*table.Table, error) {
	obj, err := client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("download %q: %w", objectName, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("download %q: %w", objectName, err)
	}
	t, err := table.ReadCSV(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", objectName, err)
	}
	return t, nil
}

// ListCSVObjects returns the names of all .csv objects under a prefix,
// sorted for deterministic processing order.
func ListCSVObjects(ctx context.Context, client Client, bucket, prefix string) ([]string, error) {
	var names []string
	for info := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if info.Err != nil {
			return nil, fmt.Errorf("list %q: %w", prefix, info.Err)
		}
		if strings.EqualFold(path.Ext(info.Key), ".csv") {
			names = append(names, info.Key)
		}
	}
	sort.Strings(names)
	return names, nil
}
