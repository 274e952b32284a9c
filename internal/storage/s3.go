// Package storage uploads custom haircut pictures to S3-compatible
// object storage, normalized to WebP.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/SupremoBarbershop/booking-api/internal/config"
)

// maxPictureWidth keeps reference pictures small enough for the
// booking screens without re-scaling on read.
const maxPictureWidth = 1024

type PictureStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewPictureStore returns nil when no bucket is configured; the
// upload endpoint then rejects requests instead of failing mid-write.
func NewPictureStore(cfg *config.Config) *PictureStore {
	if cfg.S3Bucket == "" {
		return nil
	}

	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey, cfg.S3SecretKey, "",
		),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &PictureStore{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: cfg.S3PublicURL,
	}
}

func (p *PictureStore) Enabled() bool {
	return p != nil
}

// UploadPicture decodes a JPEG/PNG/WebP upload, scales it down to
// maxPictureWidth, re-encodes as WebP and stores it under key.
// Returns the public URL of the stored object.
func (p *PictureStore) UploadPicture(
	ctx context.Context,
	key string,
	r io.Reader,
) (string, error) {

	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode picture: %w", err)
	}

	img = scaleDown(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	objectKey := key + ".webp"

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return fmt.Sprintf("%s/%s", p.publicURL, objectKey), nil
}

func scaleDown(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxPictureWidth {
		return img
	}

	h := b.Dy() * maxPictureWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxPictureWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)

	return dst
}
