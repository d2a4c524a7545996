package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"backend/internal/media"
	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
)

// fakeMediaStore hands out sequential public IDs and records every upload
// and delete it sees.
type fakeMediaStore struct {
	mu       sync.Mutex
	seq      int
	uploads  []string
	deletes  []string
	failNext error
}

func (f *fakeMediaStore) next(prefix, filename string) media.Asset {
	f.seq++
	id := fmt.Sprintf("%s-%d", prefix, f.seq)
	f.uploads = append(f.uploads, filename)
	return media.Asset{URL: "https://cdn.test/" + id, PublicID: id}
}

func (f *fakeMediaStore) upload(prefix string, file media.File) (media.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return media.Asset{}, err
	}
	return f.next(prefix, file.Filename), nil
}

func (f *fakeMediaStore) UploadImage(_ context.Context, file media.File) (media.Asset, error) {
	return f.upload("img", file)
}

func (f *fakeMediaStore) UploadVideo(_ context.Context, file media.File) (media.Asset, error) {
	return f.upload("vid", file)
}

func (f *fakeMediaStore) UploadRaw(_ context.Context, file media.File, publicID string) (media.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return media.Asset{}, err
	}
	f.uploads = append(f.uploads, file.Filename)
	return media.Asset{URL: "https://cdn.test/" + publicID, PublicID: publicID}, nil
}

func (f *fakeMediaStore) UploadImages(ctx context.Context, files []media.File) ([]media.Asset, error) {
	assets := make([]media.Asset, 0, len(files))
	for _, file := range files {
		a, err := f.UploadImage(ctx, file)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, nil
}

func (f *fakeMediaStore) UploadVideos(ctx context.Context, files []media.File) ([]media.Asset, error) {
	assets := make([]media.Asset, 0, len(files))
	for _, file := range files {
		a, err := f.UploadVideo(ctx, file)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, nil
}

func (f *fakeMediaStore) Delete(_ context.Context, publicID, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, publicID)
	return nil
}

// memLogRepo keeps audit entries in memory; set fail to simulate a
// broken audit store.
type memLogRepo struct {
	entries []model.AuditLog
	fail    bool
}

func (r *memLogRepo) Create(_ context.Context, entry *model.AuditLog) error {
	if r.fail {
		return errors.New("audit store down")
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *memLogRepo) List(_ context.Context, offset, limit int) ([]model.AuditLog, error) {
	if offset >= len(r.entries) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.entries) {
		end = len(r.entries)
	}
	return r.entries[offset:end], nil
}

func (r *memLogRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.entries)), nil
}

func (r *memLogRepo) Delete(_ context.Context, id string) error {
	for i := range r.entries {
		if r.entries[i].ID.String() == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

var _ repository.LogRepository = (*memLogRepo)(nil)

// memCategoryRepo is an in-memory CategoryRepository
type memCategoryRepo struct {
	rows map[string]*model.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{rows: make(map[string]*model.Category)}
}

func (r *memCategoryRepo) Create(_ context.Context, c *model.Category) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	r.rows[c.ID.String()] = &cp
	return nil
}

func (r *memCategoryRepo) GetByID(_ context.Context, id string) (*model.Category, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *c
	return &cp, nil
}

func (r *memCategoryRepo) ListActive(_ context.Context) ([]model.Category, error) {
	var out []model.Category
	for _, c := range r.rows {
		if c.IsActive {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memCategoryRepo) Save(_ context.Context, c *model.Category) error {
	cp := *c
	r.rows[c.ID.String()] = &cp
	return nil
}

func (r *memCategoryRepo) Delete(_ context.Context, id string) error {
	delete(r.rows, id)
	return nil
}

func (r *memCategoryRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, c := range r.rows {
		if c.IsActive {
			n++
		}
	}
	return n, nil
}

var _ repository.CategoryRepository = (*memCategoryRepo)(nil)

// memLeatherRepo is an in-memory LeatherRepository
type memLeatherRepo struct {
	rows map[string]*model.Leather
}

func newMemLeatherRepo() *memLeatherRepo {
	return &memLeatherRepo{rows: make(map[string]*model.Leather)}
}

func (r *memLeatherRepo) Create(_ context.Context, l *model.Leather) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	cp := *l
	r.rows[l.ID.String()] = &cp
	return nil
}

func (r *memLeatherRepo) GetByID(_ context.Context, id string) (*model.Leather, error) {
	l, ok := r.rows[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *l
	return &cp, nil
}

func (r *memLeatherRepo) List(_ context.Context) ([]model.Leather, error) {
	var out []model.Leather
	for _, l := range r.rows {
		out = append(out, *l)
	}
	return out, nil
}

func (r *memLeatherRepo) ListByCategory(_ context.Context, category string) ([]model.Leather, error) {
	var out []model.Leather
	for _, l := range r.rows {
		if l.Category == category {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *memLeatherRepo) Save(_ context.Context, l *model.Leather) error {
	cp := *l
	r.rows[l.ID.String()] = &cp
	return nil
}

func (r *memLeatherRepo) Delete(_ context.Context, id string) error {
	delete(r.rows, id)
	return nil
}

func (r *memLeatherRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.rows)), nil
}

var _ repository.LeatherRepository = (*memLeatherRepo)(nil)

// memOrderRepo is an in-memory OrderRepository
type memOrderRepo struct {
	rows map[string]*model.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{rows: make(map[string]*model.Order)}
}

func (r *memOrderRepo) Create(_ context.Context, o *model.Order) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	cp := *o
	r.rows[o.ID.String()] = &cp
	return nil
}

func (r *memOrderRepo) GetByID(_ context.Context, id string) (*model.Order, error) {
	o, ok := r.rows[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *o
	return &cp, nil
}

func (r *memOrderRepo) List(_ context.Context) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.rows {
		out = append(out, *o)
	}
	return out, nil
}

func (r *memOrderRepo) ListByDepartment(_ context.Context, departmentID string) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.rows {
		if o.CurrentDepartment == departmentID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *memOrderRepo) Save(_ context.Context, o *model.Order) error {
	cp := *o
	r.rows[o.ID.String()] = &cp
	return nil
}

func (r *memOrderRepo) Delete(_ context.Context, id string) error {
	delete(r.rows, id)
	return nil
}

var _ repository.OrderRepository = (*memOrderRepo)(nil)

// memDocumentRepo is an in-memory DocumentRepository
type memDocumentRepo struct {
	rows map[string]*model.Document
}

func newMemDocumentRepo() *memDocumentRepo {
	return &memDocumentRepo{rows: make(map[string]*model.Document)}
}

func (r *memDocumentRepo) Create(_ context.Context, d *model.Document) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	cp := *d
	r.rows[d.ID.String()] = &cp
	return nil
}

func (r *memDocumentRepo) GetByID(_ context.Context, id string) (*model.Document, error) {
	d, ok := r.rows[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *d
	return &cp, nil
}

func (r *memDocumentRepo) Search(_ context.Context, offset, limit int, q, sort string) ([]model.Document, int64, error) {
	var out []model.Document
	for _, d := range r.rows {
		out = append(out, *d)
	}
	return out, int64(len(out)), nil
}

func (r *memDocumentRepo) ListByFolder(_ context.Context, folder string) ([]model.Document, error) {
	var out []model.Document
	for _, d := range r.rows {
		if d.Folder == folder {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *memDocumentRepo) Delete(_ context.Context, id string) error {
	delete(r.rows, id)
	return nil
}

var _ repository.DocumentRepository = (*memDocumentRepo)(nil)

// memUserRepo is an in-memory UserRepository
type memUserRepo struct {
	rows map[string]*model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{rows: make(map[string]*model.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	cp := *u
	r.rows[u.ID.String()] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := r.rows[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.rows {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.rows {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *memUserRepo) List(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.rows {
		out = append(out, *u)
	}
	return out, nil
}

func (r *memUserRepo) Save(_ context.Context, u *model.User) error {
	cp := *u
	r.rows[u.ID.String()] = &cp
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	delete(r.rows, id)
	return nil
}

func (r *memUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.rows)), nil
}

var _ repository.UserRepository = (*memUserRepo)(nil)
