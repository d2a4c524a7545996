package media

import "context"

// Cloudinary resource types
const (
	ResourceImage = "image"
	ResourceVideo = "video"
	ResourceRaw   = "raw"
)

// Asset is a stored binary: a servable URL plus the public ID used to
// delete it later.
type Asset struct {
	URL      string
	PublicID string
}

// File is an in-memory upload, the way multipart handlers hand files over
type File struct {
	Filename    string
	Size        int64
	ContentType string
	Data        []byte
}

// Store is the media-hosting contract services depend on. Upload failures
// propagate and abort the surrounding mutation; Delete is best-effort and
// callers are expected to log-and-ignore its errors.
type Store interface {
	UploadImage(ctx context.Context, f File) (Asset, error)
	UploadVideo(ctx context.Context, f File) (Asset, error)
	// UploadRaw stores a non-media document under the given public ID.
	UploadRaw(ctx context.Context, f File, publicID string) (Asset, error)
	// UploadImages uploads files concurrently; results preserve input
	// order and any single failure fails the whole batch.
	UploadImages(ctx context.Context, files []File) ([]Asset, error)
	UploadVideos(ctx context.Context, files []File) ([]Asset, error)
	Delete(ctx context.Context, publicID, resourceType string) error
}
