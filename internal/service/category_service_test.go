package service_test

import (
	"context"
	"testing"

	"backend/internal/media"
	"backend/internal/model"
	"backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryFixture(failAudit bool) (service.CategoryService, *memCategoryRepo, *fakeMediaStore, *memLogRepo) {
	repo := newMemCategoryRepo()
	store := &fakeMediaStore{}
	logRepo := &memLogRepo{fail: failAudit}
	svc := service.NewCategoryService(repo, store, service.NewLogService(logRepo))
	return svc, repo, store, logRepo
}

func testImage(name string) *media.File {
	return &media.File{Filename: name, Size: 128, ContentType: "image/png", Data: []byte("png")}
}

func TestCreateCategoryRequiresImage(t *testing.T) {
	svc, repo, store, _ := newCategoryFixture(false)

	_, err := svc.Create(context.Background(), "actor", service.CreateCategoryRequest{Name: "Belts"}, nil, nil)

	require.ErrorIs(t, err, service.ErrImageRequired)
	assert.Empty(t, repo.rows, "nothing should be written without an image")
	assert.Empty(t, store.uploads, "nothing should be uploaded without an image")
}

func TestCreateCategoryUploadsAndAudits(t *testing.T) {
	svc, repo, store, logRepo := newCategoryFixture(false)

	category, err := svc.Create(context.Background(), "actor", service.CreateCategoryRequest{
		Name:        "Belts",
		Description: "Full-grain belts",
	}, testImage("belts.png"), nil)

	require.NoError(t, err)
	assert.True(t, category.IsActive)
	assert.NotEmpty(t, category.ImageURL)
	assert.NotEmpty(t, category.ImagePublicID)
	assert.Len(t, repo.rows, 1)
	assert.Equal(t, []string{"belts.png"}, store.uploads)

	require.Len(t, logRepo.entries, 1)
	entry := logRepo.entries[0]
	assert.Equal(t, model.AuditActionCreate, entry.Action)
	assert.Equal(t, model.EntityCategory, entry.EntityType)
	assert.Equal(t, "actor", entry.UserID)
	assert.Nil(t, entry.OldData)
	assert.NotNil(t, entry.NewData)
}

func TestCreateCategorySurvivesAuditFailure(t *testing.T) {
	svc, repo, _, logRepo := newCategoryFixture(true)

	category, err := svc.Create(context.Background(), "actor", service.CreateCategoryRequest{Name: "Belts"}, testImage("belts.png"), nil)

	require.NoError(t, err, "a broken audit store must not abort the mutation")
	assert.Len(t, repo.rows, 1)
	assert.Empty(t, logRepo.entries)
	assert.NotNil(t, category)
}

func TestUpdateCategoryReplacesImage(t *testing.T) {
	svc, _, store, logRepo := newCategoryFixture(false)

	category, err := svc.Create(context.Background(), "actor", service.CreateCategoryRequest{Name: "Belts"}, testImage("old.png"), nil)
	require.NoError(t, err)
	oldPublicID := category.ImagePublicID

	updated, err := svc.Update(context.Background(), "actor", category.ID.String(), service.UpdateCategoryRequest{
		Description: "updated",
	}, testImage("new.png"), nil)

	require.NoError(t, err)
	assert.NotEqual(t, oldPublicID, updated.ImagePublicID)
	assert.Equal(t, []string{oldPublicID}, store.deletes, "exactly the replaced asset is released")
	assert.Equal(t, "updated", updated.Description)
	assert.Equal(t, "Belts", updated.Name, "unset fields keep their value")

	require.Len(t, logRepo.entries, 2)
	assert.Equal(t, model.AuditActionUpdate, logRepo.entries[1].Action)
	assert.NotNil(t, logRepo.entries[1].OldData)
	assert.NotNil(t, logRepo.entries[1].NewData)
}

func TestRemoveCategorySoftDeletes(t *testing.T) {
	svc, repo, store, logRepo := newCategoryFixture(false)

	category, err := svc.Create(context.Background(), "actor", service.CreateCategoryRequest{Name: "Belts"}, testImage("belts.png"), nil)
	require.NoError(t, err)

	removed, err := svc.Remove(context.Background(), "actor", category.ID.String())
	require.NoError(t, err)
	assert.False(t, removed.IsActive)
	assert.Contains(t, store.deletes, category.ImagePublicID)

	// Row stays queryable by id after the soft delete.
	fetched, err := svc.FindOne(context.Background(), category.ID.String())
	require.NoError(t, err)
	assert.False(t, fetched.IsActive)

	listed, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listed, "inactive rows are hidden from listings")

	require.Len(t, logRepo.entries, 2)
	assert.Equal(t, model.AuditActionDelete, logRepo.entries[1].Action)
	assert.NotNil(t, logRepo.entries[1].NewData, "soft delete keeps the after-snapshot")

	_ = repo
}

func TestHardDeleteCategoryRemovesRow(t *testing.T) {
	svc, repo, _, logRepo := newCategoryFixture(false)

	category, err := svc.Create(context.Background(), "actor", service.CreateCategoryRequest{Name: "Belts"}, testImage("belts.png"), nil)
	require.NoError(t, err)

	_, err = svc.HardDelete(context.Background(), "actor", category.ID.String())
	require.NoError(t, err)
	assert.Empty(t, repo.rows)

	_, err = svc.FindOne(context.Background(), category.ID.String())
	assert.ErrorIs(t, err, service.ErrNotFound)

	require.Len(t, logRepo.entries, 2)
	assert.Nil(t, logRepo.entries[1].NewData, "hard delete has no after-snapshot")
}

func TestFindOneCategoryNotFound(t *testing.T) {
	svc, _, _, _ := newCategoryFixture(false)

	_, err := svc.FindOne(context.Background(), "missing-id")
	assert.ErrorIs(t, err, service.ErrNotFound)
}
