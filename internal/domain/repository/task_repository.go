package repository

import (
	"context"
	"time"

	"github.com/dcnearshore/taskboard/internal/domain/entity"
)

// TaskFilter narrows a task listing. Zero-valued fields are ignored, set
// fields are ANDed together.
type TaskFilter struct {
	// Title matches as a case-sensitive substring.
	Title string
	// CreatedAt matches tasks created on that calendar day.
	CreatedAt *time.Time
	// Priority matches exactly (low, medium, high).
	Priority string
	// Completed matches exactly when non-nil.
	Completed *bool
}

// TaskRepository defines the interface for task-related database operations.
type TaskRepository interface {
	Create(ctx context.Context, t *entity.Task) error
	GetByID(ctx context.Context, id int64) (*entity.Task, error)
	Update(ctx context.Context, t *entity.Task) error
	Delete(ctx context.Context, id int64) error
	// List returns one page of tasks matching f, ordered by id, together
	// with the total number of matches across all pages.
	List(ctx context.Context, f TaskFilter, page, perPage int) ([]entity.Task, int64, error)
}
