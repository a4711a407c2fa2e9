package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/dcnearshore/taskboard/internal/domain/entity"
	"github.com/dcnearshore/taskboard/internal/domain/repository"
)

// PageSize is the fixed number of tasks per listing page.
const PageSize = 10

var ErrTaskNotFound = errors.New("task not found")

// Pagination describes one page of a listing.
type Pagination struct {
	CurrentPage int
	PerPage     int
	Total       int64
	LastPage    int
}

type TaskService struct {
	Repo   repository.TaskRepository
	Logger *logrus.Logger
}

func NewTaskService(repo repository.TaskRepository, logger *logrus.Logger) *TaskService {
	return &TaskService{Repo: repo, Logger: logger}
}

// TaskInput is the allow-listed set of fields a client may supply for a
// task. Anything else in the payload is dropped before it reaches storage.
// Priority and Completed are optional: zero-valued, they leave the stored
// (or default) value alone.
type TaskInput struct {
	Title       string
	Description string
	Priority    string
	Completed   *bool
}

func (s *TaskService) List(ctx context.Context, f repository.TaskFilter, page int) ([]entity.Task, Pagination, error) {
	if page < 1 {
		page = 1
	}
	tasks, total, err := s.Repo.List(ctx, f, page, PageSize)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("list tasks failed")
		}
		return nil, Pagination{}, err
	}

	lastPage := int((total + PageSize - 1) / PageSize)
	if lastPage < 1 {
		lastPage = 1
	}
	return tasks, Pagination{CurrentPage: page, PerPage: PageSize, Total: total, LastPage: lastPage}, nil
}

func (s *TaskService) Create(ctx context.Context, in TaskInput) (*entity.Task, error) {
	t := &entity.Task{
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
	}
	if in.Completed != nil {
		t.Completed = *in.Completed
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("create task failed")
		}
		return nil, err
	}
	return t, nil
}

func (s *TaskService) Get(ctx context.Context, id int64) (*entity.Task, error) {
	t, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *TaskService) Update(ctx context.Context, id int64, in TaskInput) (*entity.Task, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	t.Title = in.Title
	t.Description = in.Description
	if in.Priority != "" {
		t.Priority = in.Priority
	}
	if in.Completed != nil {
		t.Completed = *in.Completed
	}

	if err := s.Repo.Update(ctx, t); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("task_id", id).Error("update task failed")
		}
		return nil, err
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("task_id", id).Error("delete task failed")
		}
		return err
	}
	return nil
}
