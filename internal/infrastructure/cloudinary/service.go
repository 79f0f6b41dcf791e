package cloudinary

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog/log"

	"github.com/auralabs/aura/internal/config"
)

type Service struct {
	cld *cloudinary.Cloudinary
}

func NewService() *Service {
	url := config.GetCloudinaryURL()

	if url == "" {
		return nil
	}

	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialise Cloudinary client")
		return nil
	}

	return &Service{cld: cld}
}

// UploadImage streams an image to Cloudinary and returns its durable URL.
// Single attempt, no retry; the caller surfaces failures as upstream errors.
func (s *Service) UploadImage(ctx context.Context, r io.Reader) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder: "aura/avatars",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload returned no URL: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}
