package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"golang.org/x/sync/errgroup"
)

// CloudinaryStore implements Store against the Cloudinary upload API. It
// holds its own immutable configuration; nothing is read from process
// globals after construction.
type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStore builds a store from explicit credentials. folder is
// the remote folder every asset is uploaded into.
func NewCloudinaryStore(cloudName, apiKey, apiSecret, folder string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryStore{cld: cld, folder: folder}, nil
}

// Folder returns the remote folder this store uploads into
func (s *CloudinaryStore) Folder() string {
	return s.folder
}

func (s *CloudinaryStore) upload(ctx context.Context, f File, params uploader.UploadParams) (Asset, error) {
	params.Folder = s.folder

	res, err := s.cld.Upload.Upload(ctx, bytes.NewReader(f.Data), params)
	if err != nil {
		return Asset{}, err
	}
	if res.Error.Message != "" {
		return Asset{}, errors.New(res.Error.Message)
	}
	if res.SecureURL == "" {
		return Asset{}, errors.New("upload failed: empty result")
	}
	return Asset{URL: res.SecureURL, PublicID: res.PublicID}, nil
}

func (s *CloudinaryStore) UploadImage(ctx context.Context, f File) (Asset, error) {
	return s.upload(ctx, f, uploader.UploadParams{ResourceType: ResourceImage})
}

func (s *CloudinaryStore) UploadVideo(ctx context.Context, f File) (Asset, error) {
	return s.upload(ctx, f, uploader.UploadParams{ResourceType: ResourceVideo})
}

func (s *CloudinaryStore) UploadRaw(ctx context.Context, f File, publicID string) (Asset, error) {
	return s.upload(ctx, f, uploader.UploadParams{ResourceType: ResourceRaw, PublicID: publicID})
}

func (s *CloudinaryStore) UploadImages(ctx context.Context, files []File) ([]Asset, error) {
	return s.uploadBatch(ctx, files, s.UploadImage)
}

func (s *CloudinaryStore) UploadVideos(ctx context.Context, files []File) ([]Asset, error) {
	return s.uploadBatch(ctx, files, s.UploadVideo)
}

func (s *CloudinaryStore) uploadBatch(ctx context.Context, files []File, up func(context.Context, File) (Asset, error)) ([]Asset, error) {
	assets := make([]Asset, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			a, err := up(gctx, f)
			if err != nil {
				return fmt.Errorf("upload %s: %w", f.Filename, err)
			}
			assets[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return assets, nil
}

// Delete destroys a remote asset. Deleting an unknown public ID is not an
// error. resourceType defaults to image when empty; callers holding
// videos or raw documents must pass the type explicitly, the remote
// auto-detect is unreliable for non-image assets.
func (s *CloudinaryStore) Delete(ctx context.Context, publicID, resourceType string) error {
	if resourceType == "" {
		resourceType = ResourceImage
	}

	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return err
	}
	if res.Error.Message != "" {
		return errors.New(res.Error.Message)
	}
	return nil
}
