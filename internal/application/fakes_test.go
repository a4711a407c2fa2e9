package application

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/dcnearshore/taskboard/internal/domain/entity"
	"github.com/dcnearshore/taskboard/internal/domain/repository"
)

// In-memory repository fakes backing the service tests.

type fakeTaskRepo struct {
	nextID int64
	tasks  map[int64]entity.Task

	forcedErr error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{nextID: 1, tasks: map[int64]entity.Task{}}
}

func (f *fakeTaskRepo) Create(_ context.Context, t *entity.Task) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	if t.Priority == "" {
		t.Priority = entity.PriorityLow
	}
	t.ID = f.nextID
	f.nextID++
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	f.tasks[t.ID] = *t
	return nil
}

func (f *fakeTaskRepo) GetByID(_ context.Context, id int64) (*entity.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (f *fakeTaskRepo) Update(_ context.Context, t *entity.Task) error {
	if _, ok := f.tasks[t.ID]; !ok {
		return repository.ErrNotFound
	}
	t.UpdatedAt = time.Now()
	f.tasks[t.ID] = *t
	return nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.tasks, id)
	return nil
}

func (f *fakeTaskRepo) List(_ context.Context, filter repository.TaskFilter, page, perPage int) ([]entity.Task, int64, error) {
	if f.forcedErr != nil {
		return nil, 0, f.forcedErr
	}
	var matched []entity.Task
	for _, t := range f.tasks {
		if filter.Title != "" && !strings.Contains(t.Title, filter.Title) {
			continue
		}
		if filter.CreatedAt != nil {
			y1, m1, d1 := filter.CreatedAt.Date()
			y2, m2, d2 := t.CreatedAt.Date()
			if y1 != y2 || m1 != m2 || d1 != d2 {
				continue
			}
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		if filter.Completed != nil && t.Completed != *filter.Completed {
			continue
		}
		matched = append(matched, t)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	start := (page - 1) * perPage
	if start >= len(matched) {
		return []entity.Task{}, total, nil
	}
	end := start + perPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

var _ repository.TaskRepository = (*fakeTaskRepo)(nil)

type fakeUserRepo struct {
	nextID int64
	users  map[int64]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[int64]entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	u.ID = f.nextID
	f.nextID++
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

type fakeTokenRepo struct {
	nextID int64
	tokens map[string]entity.Token
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{nextID: 1, tokens: map[string]entity.Token{}}
}

func (f *fakeTokenRepo) Create(_ context.Context, t *entity.Token) error {
	t.ID = f.nextID
	f.nextID++
	t.CreatedAt = time.Now()
	f.tokens[t.TokenHash] = *t
	return nil
}

func (f *fakeTokenRepo) GetByHash(_ context.Context, hash string) (*entity.Token, error) {
	t, ok := f.tokens[hash]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (f *fakeTokenRepo) DeleteByUser(_ context.Context, userID int64) (int64, error) {
	var n int64
	for hash, t := range f.tokens {
		if t.UserID == userID {
			delete(f.tokens, hash)
			n++
		}
	}
	return n, nil
}

var _ repository.TokenRepository = (*fakeTokenRepo)(nil)
