package handlers_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dcnearshore/taskboard/internal/application"
	"github.com/dcnearshore/taskboard/internal/domain/entity"
	"github.com/dcnearshore/taskboard/internal/domain/repository"
	handlers "github.com/dcnearshore/taskboard/internal/interface/http"
	"github.com/dcnearshore/taskboard/internal/router"
	"github.com/dcnearshore/taskboard/internal/router/modules"
	"github.com/dcnearshore/taskboard/pkg/validation"
)

// newTestServer wires the real modules over in-memory repositories, so
// handler tests exercise routing, middleware and handlers together.
func newTestServer() *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()

	taskSvc := application.NewTaskService(newMemTaskRepo(), nil)
	userSvc := application.NewUserService(newMemUserRepo(), newMemTokenRepo(), 30*time.Minute, nil)

	r := gin.New()
	reg := router.NewRegistry(r)
	reg.Add(modules.NewTaskModule(handlers.NewTaskHandler(taskSvc, nil), nil))
	reg.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, nil), userSvc, nil))
	reg.RegisterAll()
	return r
}

type memTaskRepo struct {
	nextID int64
	tasks  map[int64]entity.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{nextID: 1, tasks: map[int64]entity.Task{}}
}

func (m *memTaskRepo) Create(_ context.Context, t *entity.Task) error {
	if t.Priority == "" {
		t.Priority = entity.PriorityLow
	}
	t.ID = m.nextID
	m.nextID++
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	m.tasks[t.ID] = *t
	return nil
}

func (m *memTaskRepo) GetByID(_ context.Context, id int64) (*entity.Task, error) {
	t, ok := m.tasks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (m *memTaskRepo) Update(_ context.Context, t *entity.Task) error {
	if _, ok := m.tasks[t.ID]; !ok {
		return repository.ErrNotFound
	}
	m.tasks[t.ID] = *t
	return nil
}

func (m *memTaskRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.tasks, id)
	return nil
}

func (m *memTaskRepo) List(_ context.Context, f repository.TaskFilter, page, perPage int) ([]entity.Task, int64, error) {
	var matched []entity.Task
	for _, t := range m.tasks {
		if f.Title != "" && !strings.Contains(t.Title, f.Title) {
			continue
		}
		if f.CreatedAt != nil {
			y1, mo1, d1 := f.CreatedAt.Date()
			y2, mo2, d2 := t.CreatedAt.Date()
			if y1 != y2 || mo1 != mo2 || d1 != d2 {
				continue
			}
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		if f.Completed != nil && t.Completed != *f.Completed {
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

type memUserRepo struct {
	nextID int64
	users  map[int64]entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1, users: map[int64]entity.User{}}
}

func (m *memUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	u.ID = m.nextID
	m.nextID++
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	m.users[u.ID] = *u
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memTokenRepo struct {
	nextID int64
	tokens map[string]entity.Token
}

func newMemTokenRepo() *memTokenRepo {
	return &memTokenRepo{nextID: 1, tokens: map[string]entity.Token{}}
}

func (m *memTokenRepo) Create(_ context.Context, t *entity.Token) error {
	t.ID = m.nextID
	m.nextID++
	t.CreatedAt = time.Now()
	m.tokens[t.TokenHash] = *t
	return nil
}

func (m *memTokenRepo) GetByHash(_ context.Context, hash string) (*entity.Token, error) {
	t, ok := m.tokens[hash]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (m *memTokenRepo) DeleteByUser(_ context.Context, userID int64) (int64, error) {
	var n int64
	for hash, t := range m.tokens {
		if t.UserID == userID {
			delete(m.tokens, hash)
			n++
		}
	}
	return n, nil
}
