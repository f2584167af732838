package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/phambaophuc/product-variations/internal/config"
	"github.com/phambaophuc/product-variations/internal/models"
)

var ErrMissingPublicID = errors.New("upload response did not include a public id")

// CloudinaryClient uploads originals and builds delivery URLs that render the
// background replacement lazily on first fetch.
type CloudinaryClient struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryClient(cfg config.CloudinaryConfig) (*CloudinaryClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}
	cld.Config.URL.Secure = true

	return &CloudinaryClient{
		cld:    cld,
		folder: cfg.Folder,
	}, nil
}

// Upload stores the image and returns its public id.
func (c *CloudinaryClient) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	params := uploader.UploadParams{
		Folder: c.folder,
	}

	resp, err := c.cld.Upload.Upload(ctx, bytes.NewReader(data), params)
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to cloudinary: %w", displayName(filename), err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary rejected upload: %s", resp.Error.Message)
	}
	if resp.PublicID == "" {
		return "", ErrMissingPublicID
	}

	return resp.PublicID, nil
}

// URL signs nothing and calls nothing; it only assembles the delivery URL.
func (c *CloudinaryClient) URL(publicID string, spec models.TransformationSpec) (string, error) {
	img, err := c.cld.Image(publicID)
	if err != nil {
		return "", fmt.Errorf("failed to build image asset: %w", err)
	}
	img.Config.URL.Secure = true
	img.Transformation = spec.String()

	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("failed to build delivery url: %w", err)
	}
	return url, nil
}

func (c *CloudinaryClient) Ping(ctx context.Context) error {
	resp, err := c.cld.Admin.Ping(ctx)
	if err != nil {
		return err
	}
	if resp.Error.Message != "" {
		return errors.New(resp.Error.Message)
	}
	return nil
}

// HealthCheck reports the account status in the same vocabulary as the other services.
func (c *CloudinaryClient) HealthCheck(ctx context.Context) string {
	if err := c.Ping(ctx); err != nil {
		return models.HealthUnhealthy + ": " + err.Error()
	}
	return models.HealthHealthy
}

func displayName(filename string) string {
	if filename == "" {
		return "image"
	}
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
