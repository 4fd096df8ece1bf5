// Package upload pushes listing images to Cloudinary and returns their
// hosted URLs.
package upload

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader stores image files externally and returns stable URLs in
// the same order the files were given.
type Uploader interface {
	Upload(ctx context.Context, files []*multipart.FileHeader) ([]string, error)
}

// Cloudinary uploads images through the Cloudinary SDK.
type Cloudinary struct {
	client *cloudinary.Cloudinary
	folder string
}

// NewCloudinary creates a Cloudinary uploader.
func NewCloudinary(cloud, apiKey, secret, folder string) (*Cloudinary, error) {
	client, err := cloudinary.NewFromParams(cloud, apiKey, secret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &Cloudinary{client: client, folder: folder}, nil
}

// Upload sends each file in order and returns the hosted URLs. The
// first failure aborts the whole batch so a listing never ends up with
// a partial gallery.
func (c *Cloudinary) Upload(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := c.uploadOne(ctx, fh)
		if err != nil {
			return nil, fmt.Errorf("upload %s: %w", fh.Filename, err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (c *Cloudinary) uploadOne(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	resp, err := c.client.Upload.Upload(ctx, src, uploader.UploadParams{Folder: c.folder})
	if err != nil {
		return "", err
	}
	// The SDK reports API-level rejections on the result, not as an error.
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}
