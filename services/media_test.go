package services

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestProcessImage_Downscales(t *testing.T) {
	data, w, h, err := ProcessImage(bytes.NewReader(encodePNG(t, MaxImageWidth*2, 400)))
	require.NoError(t, err)
	assert.Equal(t, MaxImageWidth, w)
	assert.Equal(t, 200, h)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, MaxImageWidth, cfg.Width)
}

func TestProcessImage_KeepsSmallImages(t *testing.T) {
	_, w, h, err := ProcessImage(bytes.NewReader(encodePNG(t, 320, 240)))
	require.NoError(t, err)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestProcessImage_RejectsGarbage(t *testing.T) {
	_, _, _, err := ProcessImage(strings.NewReader("definitely not an image"))
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestSlugifyFilename(t *testing.T) {
	assert.Equal(t, "temple-at-dusk", slugifyFilename("Temple At Dusk.PNG"))
	assert.Equal(t, "img-0042", slugifyFilename(`C:\photos\IMG_0042.jpeg`))
	assert.Equal(t, "", slugifyFilename("???.png"))
}

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.body = body
	return &s3.PutObjectOutput{}, nil
}

func TestS3Store_Put(t *testing.T) {
	putter := &fakePutter{}
	store := newS3Store(putter, "travel-media", "/uploads/", "https://cdn.example.com/")

	url, err := store.Put(context.Background(), "2024/03/abc.jpg", []byte("jpeg"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/2024/03/abc.jpg", url)
	assert.Equal(t, "travel-media", aws.ToString(putter.input.Bucket))
	assert.Equal(t, "uploads/2024/03/abc.jpg", aws.ToString(putter.input.Key))
	assert.Equal(t, "image/jpeg", aws.ToString(putter.input.ContentType))
	assert.Equal(t, []byte("jpeg"), putter.body)
}

func TestLocalStore_Put(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "https://api.example.com/uploads/")

	url, err := store.Put(context.Background(), "2024/03/abc.jpg", []byte("jpeg"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/uploads/2024/03/abc.jpg", url)

	written, err := os.ReadFile(filepath.Join(dir, "2024", "03", "abc.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg"), written)

	_, err = store.Put(context.Background(), "../escape.jpg", []byte("x"), "image/jpeg")
	assert.Error(t, err)
}

func TestMediaService_Upload(t *testing.T) {
	putter := &fakePutter{}
	media := NewMediaService(newS3Store(putter, "bucket", "", "https://cdn.example.com"))
	media.now = func() time.Time { return time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC) }

	upload, err := media.Upload(context.Background(), bytes.NewReader(encodePNG(t, 64, 32)), "Sunset.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(upload.Key, "2024/03/"), upload.Key)
	assert.True(t, strings.HasSuffix(upload.Key, "-sunset.jpg"), upload.Key)
	assert.Equal(t, "https://cdn.example.com/"+upload.Key, upload.URL)
	assert.Equal(t, 64, upload.Width)
	assert.Equal(t, len(putter.body), upload.Size)
}
