package repotest

import (
	"context"
	"github.com/deepesh-sr/Textura-Backend/app/server/models"
	"github.com/deepesh-sr/Textura-Backend/app/server/repository"
	"sort"
	"sync"
	"time"
)

// NewStore 返回进程内存储，唯一约束与 postgres 实现保持一致，供测试使用
func NewStore() *repository.Store {
	m := &memory{
		users:   make(map[uint]models.User),
		sliders: make(map[uint]models.Slider),
		blogs:   make(map[uint]models.Blog),
		now:     time.Now,
	}
	return &repository.Store{
		Users:   &memoryUsers{m},
		Sliders: &memorySliders{m},
		Blogs:   &memoryBlogs{m},
	}
}

type memory struct {
	mu sync.RWMutex

	users   map[uint]models.User
	sliders map[uint]models.Slider
	blogs   map[uint]models.Blog
	lastID  uint
	lastNow time.Time

	now func() time.Time
}

func (m *memory) nextID() uint {
	m.lastID++
	return m.lastID
}

// timestamp 保证同一进程内严格递增，使按创建时间排序稳定
func (m *memory) timestamp() time.Time {
	t := m.now()
	if !t.After(m.lastNow) {
		t = m.lastNow.Add(time.Microsecond)
	}
	m.lastNow = t
	return t
}

type memoryUsers struct {
	m *memory
}

func (r *memoryUsers) Create(_ context.Context, user *models.User) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	for _, u := range r.m.users {
		if u.Email == user.Email {
			return repository.ErrConflict
		}
	}

	user.ID = r.m.nextID()
	user.CreatedAt = r.m.timestamp()
	user.UpdatedAt = user.CreatedAt
	r.m.users[user.ID] = *user
	return nil
}

func (r *memoryUsers) FindByID(_ context.Context, id uint) (*models.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	user, exists := r.m.users[id]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (r *memoryUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	for _, u := range r.m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memoryUsers) Count(_ context.Context) (int64, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	return int64(len(r.m.users)), nil
}

type memorySliders struct {
	m *memory
}

func (r *memorySliders) Create(_ context.Context, slider *models.Slider) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	slider.ID = r.m.nextID()
	slider.CreatedAt = r.m.timestamp()
	slider.UpdatedAt = slider.CreatedAt
	r.m.sliders[slider.ID] = *slider
	return nil
}

func (r *memorySliders) Find(_ context.Context) ([]models.Slider, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	sliders := make([]models.Slider, 0, len(r.m.sliders))
	for _, s := range r.m.sliders {
		sliders = append(sliders, s)
	}
	sort.Slice(sliders, func(i, j int) bool { return sliders[i].ID < sliders[j].ID })
	return sliders, nil
}

func (r *memorySliders) FindByID(_ context.Context, id uint) (*models.Slider, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	slider, exists := r.m.sliders[id]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return &slider, nil
}

func (r *memorySliders) Update(_ context.Context, slider *models.Slider) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	old, exists := r.m.sliders[slider.ID]
	if !exists {
		return repository.ErrNotFound
	}
	slider.CreatedAt = old.CreatedAt
	slider.UpdatedAt = r.m.timestamp()
	r.m.sliders[slider.ID] = *slider
	return nil
}

func (r *memorySliders) Delete(_ context.Context, id uint) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, exists := r.m.sliders[id]; !exists {
		return repository.ErrNotFound
	}
	delete(r.m.sliders, id)
	return nil
}

type memoryBlogs struct {
	m *memory
}

func (r *memoryBlogs) slugTaken(slug string, exceptID uint) bool {
	for _, b := range r.m.blogs {
		if b.Slug == slug && b.ID != exceptID {
			return true
		}
	}
	return false
}

func (r *memoryBlogs) Create(_ context.Context, blog *models.Blog) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if r.slugTaken(blog.Slug, 0) {
		return repository.ErrConflict
	}
	if blog.Status == "" {
		blog.Status = models.BlogStatusDraft
	}

	blog.ID = r.m.nextID()
	blog.CreatedAt = r.m.timestamp()
	blog.UpdatedAt = blog.CreatedAt
	r.m.blogs[blog.ID] = *blog
	return nil
}

func (r *memoryBlogs) filtered(filter repository.BlogFilter) []models.Blog {
	blogs := make([]models.Blog, 0, len(r.m.blogs))
	for _, b := range r.m.blogs {
		if filter.PublishedOnly && !b.IsPublished() {
			continue
		}
		blogs = append(blogs, b)
	}
	return blogs
}

func (r *memoryBlogs) Find(_ context.Context, filter repository.BlogFilter) ([]models.Blog, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	blogs := r.filtered(filter)
	sort.Slice(blogs, func(i, j int) bool {
		if blogs[i].CreatedAt.Equal(blogs[j].CreatedAt) {
			return blogs[i].ID > blogs[j].ID
		}
		return blogs[i].CreatedAt.After(blogs[j].CreatedAt)
	})

	if filter.Limit > 0 {
		if filter.Offset >= len(blogs) {
			return []models.Blog{}, nil
		}
		end := min(filter.Offset+filter.Limit, len(blogs))
		blogs = blogs[filter.Offset:end]
	}
	return blogs, nil
}

func (r *memoryBlogs) Count(_ context.Context, filter repository.BlogFilter) (int64, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	return int64(len(r.filtered(filter))), nil
}

func (r *memoryBlogs) FindByID(_ context.Context, id uint) (*models.Blog, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	blog, exists := r.m.blogs[id]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return &blog, nil
}

func (r *memoryBlogs) FindBySlug(_ context.Context, slug string) (*models.Blog, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	for _, b := range r.m.blogs {
		if b.Slug == slug {
			return &b, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memoryBlogs) Update(_ context.Context, blog *models.Blog) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	old, exists := r.m.blogs[blog.ID]
	if !exists {
		return repository.ErrNotFound
	}
	if r.slugTaken(blog.Slug, blog.ID) {
		return repository.ErrConflict
	}
	blog.CreatedAt = old.CreatedAt
	blog.UpdatedAt = r.m.timestamp()
	r.m.blogs[blog.ID] = *blog
	return nil
}

func (r *memoryBlogs) Delete(_ context.Context, id uint) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, exists := r.m.blogs[id]; !exists {
		return repository.ErrNotFound
	}
	delete(r.m.blogs, id)
	return nil
}
