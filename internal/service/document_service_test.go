package service_test

import (
	"context"
	"testing"

	"backend/internal/media"
	"backend/internal/service"
	"backend/internal/tagging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDocumentFixture() (service.DocumentService, *memDocumentRepo, *fakeMediaStore, *memLogRepo) {
	repo := newMemDocumentRepo()
	store := &fakeMediaStore{}
	logRepo := &memLogRepo{}
	svc := service.NewDocumentService(repo, store, tagging.NewFallbackTagger(), service.NewLogService(logRepo))
	return svc, repo, store, logRepo
}

func pdfFile(name string, size int64) media.File {
	return media.File{Filename: name, Size: size, ContentType: "application/pdf", Data: []byte("pdf")}
}

func TestUploadDocumentRejectsDisallowedType(t *testing.T) {
	svc, repo, store, _ := newDocumentFixture()

	_, err := svc.Upload(context.Background(), "actor", service.UploadDocumentRequest{}, media.File{
		Filename:    "malware.exe",
		Size:        100,
		ContentType: "application/x-msdownload",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")
	assert.Empty(t, repo.rows)
	assert.Empty(t, store.uploads, "rejected files never leave the process")
}

func TestUploadDocumentRejectsOversizedFile(t *testing.T) {
	svc, repo, _, _ := newDocumentFixture()

	_, err := svc.Upload(context.Background(), "actor", service.UploadDocumentRequest{},
		pdfFile("huge.pdf", service.MaxDocumentSize+1))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "20MB")
	assert.Empty(t, repo.rows)
}

func TestUploadDocumentDefaultsAndTags(t *testing.T) {
	svc, repo, _, logRepo := newDocumentFixture()

	doc, err := svc.Upload(context.Background(), "actor", service.UploadDocumentRequest{},
		pdfFile("tannery_invoice_2026.pdf", 1024))

	require.NoError(t, err)
	assert.Equal(t, "tannery invoice 2026", doc.Title, "title defaults to the filename stem with separators spaced")
	assert.Equal(t, service.DefaultDocumentFolder, doc.Folder)
	assert.ElementsMatch(t, []string{"invoice", "tannery"}, []string(doc.Tags))
	assert.Len(t, repo.rows, 1)
	require.Len(t, logRepo.entries, 1)
}

func TestBulkUploadReportsPerFileOutcomes(t *testing.T) {
	svc, repo, _, _ := newDocumentFixture()

	result, err := svc.BulkUpload(context.Background(), "actor", "imports", []media.File{
		pdfFile("shipping_manifest.pdf", 512),
		{Filename: "notes.txt", Size: 64, ContentType: "text/plain"},
		pdfFile("customs_declaration.pdf", 512),
	})

	require.NoError(t, err, "per-file failures never fail the batch")
	assert.Equal(t, 2, result.Uploaded)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Results, 3)
	assert.NotNil(t, result.Results[0].Document)
	assert.NotEmpty(t, result.Results[1].Error)
	assert.NotNil(t, result.Results[2].Document)
	assert.Len(t, repo.rows, 2)
}

func TestBulkUploadRejectsEmptyBatch(t *testing.T) {
	svc, _, _, _ := newDocumentFixture()

	_, err := svc.BulkUpload(context.Background(), "actor", "", nil)
	require.Error(t, err)
}

func TestRemoveFolderDeletesEveryDocument(t *testing.T) {
	svc, repo, store, _ := newDocumentFixture()

	_, err := svc.BulkUpload(context.Background(), "actor", "imports", []media.File{
		pdfFile("a.pdf", 100),
		pdfFile("b.pdf", 100),
	})
	require.NoError(t, err)
	_, err = svc.Upload(context.Background(), "actor", service.UploadDocumentRequest{Folder: "keep"}, pdfFile("c.pdf", 100))
	require.NoError(t, err)

	removed, err := svc.RemoveFolder(context.Background(), "actor", "imports")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Len(t, repo.rows, 1, "other folders are untouched")
	assert.Len(t, store.deletes, 2)
}
