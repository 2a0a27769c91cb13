package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/draw"
)

const (
	MaxImageWidth  = 1600
	JPEGQuality    = 82
	MaxUploadBytes = 10 << 20
)

// ErrInvalidImage is returned when an upload cannot be decoded as an image.
var ErrInvalidImage = errors.New("invalid image")

// ImageStore persists encoded images and returns the URL they are served from.
type ImageStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// Upload describes a stored image.
type Upload struct {
	URL    string `json:"url"`
	Key    string `json:"key"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int    `json:"size"`
}

type MediaService struct {
	store  ImageStore
	logger zerolog.Logger
	now    func() time.Time
}

func NewMediaService(store ImageStore) *MediaService {
	return &MediaService{
		store:  store,
		logger: log.With().Str("service", "media").Logger(),
		now:    time.Now,
	}
}

// Upload downsizes the image in src, re-encodes it as JPEG and stores it
// under a fresh key.
func (m *MediaService) Upload(ctx context.Context, src io.Reader, originalName string) (*Upload, error) {
	data, w, h, err := ProcessImage(src)
	if err != nil {
		return nil, err
	}

	key := m.objectKey(originalName)
	url, err := m.store.Put(ctx, key, data, "image/jpeg")
	if err != nil {
		return nil, fmt.Errorf("store image %s: %w", key, err)
	}

	m.logger.Info().Str("key", key).Int("bytes", len(data)).Int("width", w).Int("height", h).Msg("image stored")
	return &Upload{URL: url, Key: key, Width: w, Height: h, Size: len(data)}, nil
}

// objectKey is yyyy/mm/<uuid>-<name>.jpg
func (m *MediaService) objectKey(originalName string) string {
	name := slugifyFilename(originalName)
	id := uuid.NewString()
	if name != "" {
		id += "-" + name
	}
	return path.Join(m.now().UTC().Format("2006/01"), id+".jpg")
}

// ProcessImage decodes src, scales it down to MaxImageWidth when wider and
// encodes the result as JPEG.
func ProcessImage(src io.Reader) ([]byte, int, int, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, 0, 0, fmt.Errorf("%w: empty image", ErrInvalidImage)
	}

	if w > MaxImageWidth {
		newH := h * MaxImageWidth / w
		if newH < 1 {
			newH = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, MaxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
		w, h = MaxImageWidth, newH
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, 0, 0, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), w, h, nil
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

func slugifyFilename(name string) string {
	base := strings.TrimSuffix(path.Base(strings.ReplaceAll(name, `\`, "/")), path.Ext(name))
	slug := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(base), "-"), "-")
	if len(slug) > 60 {
		slug = strings.Trim(slug[:60], "-")
	}
	return slug
}
