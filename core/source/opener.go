package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"district-sync/core/storage"

	"github.com/minio/minio-go/v7"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrNotFound is returned when an input file or object does not exist.
var ErrNotFound = errors.New("input not found")

// Opener reads inputs from the local disk or object storage.
type Opener struct {
	client storage.Client
}

// NewOpener creates an opener. client may be nil when no s3:// path is used.
func NewOpener(client storage.Client) *Opener {
	return &Opener{client: client}
}

// ReadText reads the whole input at path and decodes it as UTF-8.
func (o *Opener) ReadText(ctx context.Context, path string) (string, error) {
	data, err := o.ReadBytes(ctx, path)
	if err != nil {
		return "", err
	}
	return Decode(data), nil
}

// ReadBytes reads the whole input at path.
func (o *Opener) ReadBytes(ctx context.Context, path string) ([]byte, error) {
	if storage.IsURL(path) {
		return o.readObject(ctx, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func (o *Opener) readObject(ctx context.Context, path string) ([]byte, error) {
	bucket, key, ok := storage.SplitURL(path)
	if !ok {
		return nil, fmt.Errorf("invalid storage path %q", path)
	}
	if o.client == nil {
		return nil, fmt.Errorf("storage client not configured for %s", path)
	}

	reader, err := o.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get object %s: %w", path, err)
	}
	defer reader.Close()

	// Minio returns lookup errors on the first read, not from GetObject.
	data, err := io.ReadAll(reader)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read object %s: %w", path, err)
	}
	return data, nil
}

// Decode converts data to a UTF-8 string, dropping a byte order mark and
// replacing invalid sequences with U+FFFD.
func Decode(data []byte) string {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return string(bytes.ToValidUTF8(data, []byte("�")))
	}
	return string(out)
}
