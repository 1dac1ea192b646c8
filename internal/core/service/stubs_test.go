package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/j88moja/inventory-system/internal/core/domain"
	"github.com/j88moja/inventory-system/internal/core/ports"
)

var nopLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory user repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu        sync.Mutex
	users     map[string]*domain.User
	seq       int
	createErr error // if set, Create returns this error
	updateErr error // if set, Update returns this error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	c := cloneUser(user)
	c.ID = fmt.Sprintf("%024x", r.seq)
	r.users[c.ID] = c
	return cloneUser(c), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

// ---------------------------------------------------------------------------
// In-memory reset token repository (mirrors the Mongo FindOneAndDelete query)
// ---------------------------------------------------------------------------

type stubTokenRepo struct {
	mu     sync.Mutex
	tokens []*domain.ResetToken
}

func (r *stubTokenRepo) Create(_ context.Context, t *domain.ResetToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *t
	c.ID = fmt.Sprintf("tok-%d", len(r.tokens)+1)
	r.tokens = append(r.tokens, &c)
	return nil
}

func (r *stubTokenRepo) DeleteByUser(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.tokens[:0]
	for _, t := range r.tokens {
		if t.UserID != userID {
			kept = append(kept, t)
		}
	}
	r.tokens = kept
	return nil
}

func (r *stubTokenRepo) Consume(_ context.Context, hash string, now time.Time) (*domain.ResetToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.tokens {
		if t.TokenHash == hash && t.ExpiresAt.After(now) {
			r.tokens = append(r.tokens[:i], r.tokens[i+1:]...)
			return t, nil
		}
	}
	return nil, domain.ErrInvalidResetToken
}

func (r *stubTokenRepo) forUser(userID string) []*domain.ResetToken {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.ResetToken
	for _, t := range r.tokens {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Mailer and blob store stubs
// ---------------------------------------------------------------------------

type stubMailer struct {
	sent []ports.Email
	err  error
}

func (m *stubMailer) Send(_ context.Context, e ports.Email) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, e)
	return nil
}

func (m *stubMailer) last() ports.Email {
	return m.sent[len(m.sent)-1]
}

type stubBlobStore struct {
	uploads []ports.FileUpload
	err     error
}

func (b *stubBlobStore) Upload(_ context.Context, f ports.FileUpload) (*ports.StoredFile, error) {
	if b.err != nil {
		return nil, b.err
	}
	data, err := io.ReadAll(f.Content)
	if err != nil {
		return nil, err
	}
	b.uploads = append(b.uploads, f)
	return &ports.StoredFile{
		URL:      "https://cdn.example.com/inventory/" + f.Name,
		Size:     int64(len(data)),
		MimeType: f.ContentType,
	}, nil
}

// ---------------------------------------------------------------------------
// In-memory product repository
// ---------------------------------------------------------------------------

type stubProductRepo struct {
	products map[string]*domain.Product
	seq      int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.seq++
	c := *p
	c.ID = fmt.Sprintf("prod-%d", r.seq)
	r.products[c.ID] = &c
	out := c
	return &out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	c := *p
	return &c, nil
}

func (r *stubProductRepo) ListByUser(_ context.Context, userID string) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range r.products {
		if p.UserID == userID {
			c := *p
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	c := *p
	r.products[p.ID] = &c
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

// ---------------------------------------------------------------------------
// Clock
// ---------------------------------------------------------------------------

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

var errBoom = errors.New("boom")
