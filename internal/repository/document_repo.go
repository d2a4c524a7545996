package repository

import (
	"backend/internal/model"
	"context"
	"strings"

	"gorm.io/gorm"
)

// DocumentRepository defines data access for uploaded documents
type DocumentRepository interface {
	Create(ctx context.Context, doc *model.Document) error
	GetByID(ctx context.Context, id string) (*model.Document, error)
	// Search lists one page of documents, optionally filtered by a
	// substring of the title or tags and ordered by the given column
	// (descending).
	Search(ctx context.Context, offset, limit int, q, sort string) ([]model.Document, int64, error)
	ListByFolder(ctx context.Context, folder string) ([]model.Document, error)
	Delete(ctx context.Context, id string) error
}

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository returns a new instance of DocumentRepository
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, doc *model.Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *documentRepository) GetByID(ctx context.Context, id string) (*model.Document, error) {
	var doc model.Document
	if err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// sortable whitelists order-by columns; anything else falls back to
// uploaded_at to keep user input out of the SQL
var sortable = map[string]string{
	"uploaded_at": "uploaded_at",
	"title":       "title",
	"size":        "size",
}

func (r *documentRepository) Search(ctx context.Context, offset, limit int, q, sort string) ([]model.Document, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Document{})
	if q != "" {
		// tags is a jsonb array; a text cast makes the same LIKE work on
		// both columns
		needle := "%" + strings.ToLower(q) + "%"
		query = query.Where("lower(title) LIKE ? OR lower(CAST(tags AS TEXT)) LIKE ?", needle, needle)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortable[sort]
	if !ok {
		column = "uploaded_at"
	}

	var docs []model.Document
	if err := query.Order(column + " desc").Offset(offset).Limit(limit).Find(&docs).Error; err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

func (r *documentRepository) ListByFolder(ctx context.Context, folder string) ([]model.Document, error) {
	var docs []model.Document
	if err := r.db.WithContext(ctx).Where("folder = ?", folder).Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Document{}).Error
}
