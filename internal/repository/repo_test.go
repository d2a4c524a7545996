package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"backend/internal/database"
	"backend/internal/model"
	"backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestCategoryRepoSoftDeleteSemantics(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCategoryRepository(db)
	ctx := context.Background()

	active := &model.Category{Name: "Belts", IsActive: true}
	require.NoError(t, repo.Create(ctx, active))

	inactive := &model.Category{Name: "Retired", IsActive: true}
	require.NoError(t, repo.Create(ctx, inactive))
	inactive.IsActive = false
	require.NoError(t, repo.Save(ctx, inactive))

	listed, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Belts", listed[0].Name)

	// Soft-deleted rows stay reachable by id.
	got, err := repo.GetByID(ctx, inactive.ID.String())
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	count, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Hard delete removes the row entirely.
	require.NoError(t, repo.Delete(ctx, inactive.ID.String()))
	_, err = repo.GetByID(ctx, inactive.ID.String())
	assert.Error(t, err)
}

func TestLeatherRepoJSONBRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewLeatherRepository(db)
	ctx := context.Background()

	leather := &model.Leather{
		Name:     "Crazy Horse",
		Category: "Bags",
		Tags:     model.StringList{"pull-up", "matte"},
		Media: model.LeatherMedia{
			Images: model.MediaSection{
				Main:     &model.MediaAsset{URL: "https://cdn/x", PublicID: "img-1"},
				Variants: []model.MediaAsset{{URL: "https://cdn/y", PublicID: "img-2"}},
			},
		},
	}
	require.NoError(t, repo.Create(ctx, leather))

	got, err := repo.GetByID(ctx, leather.ID.String())
	require.NoError(t, err)
	assert.Equal(t, model.StringList{"pull-up", "matte"}, got.Tags)
	require.NotNil(t, got.Media.Images.Main)
	assert.Equal(t, "img-1", got.Media.Images.Main.PublicID)
	require.Len(t, got.Media.Images.Variants, 1)
	assert.Equal(t, "img-2", got.Media.Images.Variants[0].PublicID)

	byCategory, err := repo.ListByCategory(ctx, "Bags")
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)
}

func TestLogRepoPagesNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewLogRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		entry := &model.AuditLog{
			Action:     model.AuditActionCreate,
			EntityType: model.EntityStock,
			EntityID:   fmt.Sprintf("s-%02d", i),
			UserID:     "actor",
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(ctx, entry))
	}

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)

	page, err := repo.List(ctx, 10, 10)
	require.NoError(t, err)
	require.Len(t, page, 10)
	// Newest first: page two starts at the 11th newest record.
	assert.Equal(t, "s-14", page[0].EntityID)
	assert.Equal(t, "s-05", page[9].EntityID)
}

func TestDocumentRepoSearchFiltersAndSorts(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewDocumentRepository(db)
	ctx := context.Background()

	docs := []model.Document{
		{Title: "Tannery Invoice", OriginalFilename: "inv.pdf", PublicURL: "u", PublicID: "p1", MimeType: "application/pdf", Size: 300, Tags: model.StringList{"invoice"}, Folder: "a", UploadedAt: time.Now()},
		{Title: "Shipping Manifest", OriginalFilename: "ship.pdf", PublicURL: "u", PublicID: "p2", MimeType: "application/pdf", Size: 100, Tags: model.StringList{"shipping"}, Folder: "a", UploadedAt: time.Now()},
		{Title: "Q3 Paperwork", OriginalFilename: "qa.pdf", PublicURL: "u", PublicID: "p3", MimeType: "application/pdf", Size: 200, Tags: model.StringList{"customs"}, Folder: "b", UploadedAt: time.Now()},
	}
	for i := range docs {
		require.NoError(t, repo.Create(ctx, &docs[i]))
	}

	found, total, err := repo.Search(ctx, 0, 10, "invoice", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, found, 1)
	assert.Equal(t, "Tannery Invoice", found[0].Title)

	// A query that matches no title still finds documents by tag.
	byTag, total, err := repo.Search(ctx, 0, 10, "customs", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, byTag, 1)
	assert.Equal(t, "Q3 Paperwork", byTag[0].Title)

	bySize, _, err := repo.Search(ctx, 0, 10, "", "size")
	require.NoError(t, err)
	require.Len(t, bySize, 3)
	assert.Equal(t, int64(300), bySize[0].Size)

	// Unknown sort columns fall back instead of reaching the SQL.
	_, _, err = repo.Search(ctx, 0, 10, "", "size; drop table documents")
	require.NoError(t, err)

	inFolder, err := repo.ListByFolder(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, inFolder, 2)
}

func TestUserRepoUniqueLookups(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	user := &model.User{
		Email:     "ada@tannery.test",
		Password:  "hash",
		FirstName: "Ada",
		LastName:  "Workman",
		Username:  "ada",
		Role:      model.RoleAdmin,
		Status:    model.UserStatusActive,
	}
	require.NoError(t, repo.Create(ctx, user))

	byEmail, err := repo.GetByEmail(ctx, "ada@tannery.test")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byUsername, err := repo.GetByUsername(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byUsername.ID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
