package repository

import (
	"context"

	"github.com/dcnearshore/taskboard/internal/domain/entity"
)

// TokenRepository defines the interface for bearer-token persistence.
type TokenRepository interface {
	Create(ctx context.Context, t *entity.Token) error
	GetByHash(ctx context.Context, hash string) (*entity.Token, error)
	// DeleteByUser removes every token issued to the user and returns the
	// number of tokens removed.
	DeleteByUser(ctx context.Context, userID int64) (int64, error)
}
