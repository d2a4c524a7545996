package service_test

import (
	"context"
	"testing"

	"backend/internal/media"
	"backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeatherFixture() (service.LeatherService, *memLeatherRepo, *fakeMediaStore, *memLogRepo) {
	repo := newMemLeatherRepo()
	store := &fakeMediaStore{}
	logRepo := &memLogRepo{}
	svc := service.NewLeatherService(repo, store, service.NewLogService(logRepo))
	return svc, repo, store, logRepo
}

func leatherImages(names ...string) []media.File {
	files := make([]media.File, 0, len(names))
	for _, n := range names {
		files = append(files, media.File{Filename: n, Size: 64, ContentType: "image/jpeg", Data: []byte("jpg")})
	}
	return files
}

func TestCreateLeatherRequiresImages(t *testing.T) {
	svc, repo, _, _ := newLeatherFixture()

	_, err := svc.Create(context.Background(), "actor", service.CreateLeatherRequest{
		Name:     "Crazy Horse",
		Category: "Bags",
	}, nil, nil)

	require.ErrorIs(t, err, service.ErrImageRequired)
	assert.Empty(t, repo.rows)
}

func TestCreateLeatherMainAndVariants(t *testing.T) {
	svc, _, store, _ := newLeatherFixture()

	leather, err := svc.Create(context.Background(), "actor", service.CreateLeatherRequest{
		Name:     "Crazy Horse",
		Category: "Bags",
		Tags:     []string{"pull-up", "matte"},
	}, leatherImages("main.jpg", "v1.jpg", "v2.jpg"), nil)

	require.NoError(t, err)
	require.NotNil(t, leather.Media.Images.Main)
	assert.Len(t, leather.Media.Images.Variants, 2)
	// Upload order is preserved: first file becomes the main asset.
	assert.Equal(t, []string{"main.jpg", "v1.jpg", "v2.jpg"}, store.uploads)
	assert.Equal(t, "0", leather.Ratings)
	assert.Equal(t, "0", leather.ReviewCount)
}

func TestCreateLeatherSingleImageHasNoVariants(t *testing.T) {
	svc, _, _, _ := newLeatherFixture()

	leather, err := svc.Create(context.Background(), "actor", service.CreateLeatherRequest{
		Name:     "Nappa",
		Category: "Wallets",
	}, leatherImages("only.jpg"), nil)

	require.NoError(t, err)
	require.NotNil(t, leather.Media.Images.Main)
	assert.Empty(t, leather.Media.Images.Variants)
	assert.Nil(t, leather.Media.Videos.Main)
}

func TestUpdateLeatherReplacesImageSection(t *testing.T) {
	svc, _, store, _ := newLeatherFixture()

	leather, err := svc.Create(context.Background(), "actor", service.CreateLeatherRequest{
		Name:     "Nappa",
		Category: "Wallets",
	}, leatherImages("old-main.jpg", "old-v1.jpg"), nil)
	require.NoError(t, err)

	oldMain := leather.Media.Images.Main.PublicID
	oldVariant := leather.Media.Images.Variants[0].PublicID

	updated, err := svc.Update(context.Background(), "actor", leather.ID.String(),
		service.UpdateLeatherRequest{}, leatherImages("new-main.jpg"), nil)
	require.NoError(t, err)

	assert.NotEqual(t, oldMain, updated.Media.Images.Main.PublicID)
	assert.Empty(t, updated.Media.Images.Variants)
	assert.ElementsMatch(t, []string{oldMain, oldVariant}, store.deletes,
		"every asset of the replaced section is released")
}

func TestRemoveLeatherReleasesAllMedia(t *testing.T) {
	svc, repo, store, logRepo := newLeatherFixture()

	leather, err := svc.Create(context.Background(), "actor", service.CreateLeatherRequest{
		Name:     "Nappa",
		Category: "Wallets",
	}, leatherImages("main.jpg", "v1.jpg"), nil)
	require.NoError(t, err)

	_, err = svc.Remove(context.Background(), "actor", leather.ID.String())
	require.NoError(t, err)

	assert.Empty(t, repo.rows)
	assert.Len(t, store.deletes, 2)
	require.Len(t, logRepo.entries, 2)
	assert.Nil(t, logRepo.entries[1].NewData)
}

func TestFindLeathersByCategory(t *testing.T) {
	svc, _, _, _ := newLeatherFixture()

	_, err := svc.Create(context.Background(), "actor", service.CreateLeatherRequest{Name: "A", Category: "Bags"}, leatherImages("a.jpg"), nil)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "actor", service.CreateLeatherRequest{Name: "B", Category: "Wallets"}, leatherImages("b.jpg"), nil)
	require.NoError(t, err)

	bags, err := svc.FindByCategory(context.Background(), "Bags")
	require.NoError(t, err)
	require.Len(t, bags, 1)
	assert.Equal(t, "A", bags[0].Name)
}
