package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"backend/internal/media"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/tagging"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MaxDocumentSize caps a single document upload at 20MB
const MaxDocumentSize = 20 << 20

// DefaultDocumentFolder groups uploads that name no folder of their own
const DefaultDocumentFolder = "business-documents"

// allowedMimeTypes is the document upload allow-list
var allowedMimeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"image/jpeg": true,
	"image/png":  true,
}

type UploadDocumentRequest struct {
	Title  string `form:"title"`
	Folder string `form:"folder"`
}

// DocumentSearchParams narrows and orders a document listing
type DocumentSearchParams struct {
	Query  string
	Sort   string
	Offset int
	Limit  int
}

// BulkUploadResult aggregates a multi-file upload: every file is
// attempted, per-file failures never abort the batch.
type BulkUploadResult struct {
	Uploaded int                `json:"uploaded"`
	Failed   int                `json:"failed"`
	Results  []BulkUploadRecord `json:"results"`
}

type BulkUploadRecord struct {
	Filename string          `json:"filename"`
	Document *model.Document `json:"document,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// DocumentService stores business documents on the media host and tags
// them for retrieval
type DocumentService interface {
	Upload(ctx context.Context, userID string, req UploadDocumentRequest, file media.File) (*model.Document, error)
	BulkUpload(ctx context.Context, userID, folder string, files []media.File) (*BulkUploadResult, error)
	Search(ctx context.Context, params DocumentSearchParams) ([]model.Document, int64, error)
	FindOne(ctx context.Context, id string) (*model.Document, error)
	Remove(ctx context.Context, userID, id string) (*model.Document, error)
	RemoveFolder(ctx context.Context, userID, folder string) (int, error)
}

type documentService struct {
	repo   repository.DocumentRepository
	media  media.Store
	tagger tagging.Tagger
	logs   LogService
}

// NewDocumentService returns a new instance of DocumentService
func NewDocumentService(repo repository.DocumentRepository, mediaStore media.Store, tagger tagging.Tagger, logs LogService) DocumentService {
	return &documentService{repo: repo, media: mediaStore, tagger: tagger, logs: logs}
}

// ValidateDocument rejects oversized files and disallowed content types
// before anything leaves the process
func ValidateDocument(f media.File) error {
	if f.Size > MaxDocumentSize {
		return fmt.Errorf("file %q exceeds the %dMB limit", f.Filename, MaxDocumentSize>>20)
	}
	if !allowedMimeTypes[f.ContentType] {
		return fmt.Errorf("file type %q is not allowed", f.ContentType)
	}
	return nil
}

func (s *documentService) Upload(ctx context.Context, userID string, req UploadDocumentRequest, file media.File) (*model.Document, error) {
	if err := ValidateDocument(file); err != nil {
		return nil, err
	}

	folder := req.Folder
	if folder == "" {
		folder = DefaultDocumentFolder
	}
	title := req.Title
	if title == "" {
		stem := strings.TrimSuffix(file.Filename, filepath.Ext(file.Filename))
		title = strings.NewReplacer("_", " ", "-", " ").Replace(stem)
	}

	publicID := folder + "/" + uuid.NewString() + "_" + file.Filename
	asset, err := s.media.UploadRaw(ctx, file, publicID)
	if err != nil {
		return nil, fmt.Errorf("upload document: %w", err)
	}

	doc := &model.Document{
		Title:            title,
		OriginalFilename: file.Filename,
		PublicURL:        asset.URL,
		PublicID:         asset.PublicID,
		MimeType:         file.ContentType,
		Size:             file.Size,
		Tags:             s.tagger.TagsFor(ctx, file.Filename),
		Folder:           folder,
		UploadedAt:       time.Now(),
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionCreate, model.EntityDocument, doc.ID.String(), userID, nil, doc)
	return doc, nil
}

// BulkUpload stores each file independently and reports per-file
// outcomes. One bad file never sinks the rest of the batch.
func (s *documentService) BulkUpload(ctx context.Context, userID, folder string, files []media.File) (*BulkUploadResult, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files provided")
	}

	result := &BulkUploadResult{Results: make([]BulkUploadRecord, 0, len(files))}
	for _, f := range files {
		doc, err := s.Upload(ctx, userID, UploadDocumentRequest{Folder: folder}, f)
		if err != nil {
			log.Warn().Err(err).Str("filename", f.Filename).Msg("bulk upload item failed")
			result.Failed++
			result.Results = append(result.Results, BulkUploadRecord{Filename: f.Filename, Error: err.Error()})
			continue
		}
		result.Uploaded++
		result.Results = append(result.Results, BulkUploadRecord{Filename: f.Filename, Document: doc})
	}
	return result, nil
}

func (s *documentService) Search(ctx context.Context, params DocumentSearchParams) ([]model.Document, int64, error) {
	return s.repo.Search(ctx, params.Offset, params.Limit, params.Query, params.Sort)
}

func (s *documentService) FindOne(ctx context.Context, id string) (*model.Document, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", id, ErrNotFound)
	}
	return doc, nil
}

func (s *documentService) Remove(ctx context.Context, userID, id string) (*model.Document, error) {
	doc, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.media.Delete(ctx, doc.PublicID, media.ResourceRaw); err != nil {
		log.Warn().Err(err).Str("public_id", doc.PublicID).Msg("failed to delete media asset, continuing")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logs.CreateLog(ctx, model.AuditActionDelete, model.EntityDocument, id, userID, doc, nil)
	return doc, nil
}

// RemoveFolder hard-deletes every document in a folder and returns how
// many rows went away
func (s *documentService) RemoveFolder(ctx context.Context, userID, folder string) (int, error) {
	docs, err := s.repo.ListByFolder(ctx, folder)
	if err != nil {
		return 0, err
	}

	removed := 0
	for i := range docs {
		if _, err := s.Remove(ctx, userID, docs[i].ID.String()); err != nil {
			log.Warn().Err(err).Str("document_id", docs[i].ID.String()).Msg("folder delete item failed")
			continue
		}
		removed++
	}
	return removed, nil
}
