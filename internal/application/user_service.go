package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dcnearshore/taskboard/internal/domain/entity"
	"github.com/dcnearshore/taskboard/internal/domain/repository"
	"github.com/dcnearshore/taskboard/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already taken")
)

// IssuedToken carries the one-time plaintext of a freshly issued bearer
// token together with its expiry.
type IssuedToken struct {
	Plaintext string
	ExpiresAt time.Time
}

type UserService struct {
	Users    repository.UserRepository
	Tokens   repository.TokenRepository
	TokenTTL time.Duration
	Logger   *logrus.Logger
}

func NewUserService(users repository.UserRepository, tokens repository.TokenRepository, tokenTTL time.Duration, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Tokens: tokens, TokenTTL: tokenTTL, Logger: logger}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates the account and logs it in by issuing a bearer token.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, *IssuedToken, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, nil, err
	}

	u := &entity.User{Name: in.Name, Email: in.Email, Password: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, nil, ErrEmailTaken
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Error("create user failed")
		}
		return nil, nil, err
	}

	tok, err := s.issueToken(ctx, u.ID)
	if err != nil {
		return nil, nil, err
	}
	return u, tok, nil
}

// Login verifies credentials and issues a fresh bearer token. A missing
// user and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*IssuedToken, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Error("lookup user failed")
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(ctx, u.ID)
}

// Logout revokes every token the user holds, not just the current one.
func (s *UserService) Logout(ctx context.Context, userID int64) error {
	n, err := s.Tokens.DeleteByUser(ctx, userID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Error("revoke tokens failed")
		}
		return err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": userID, "revoked": n}).Debug("tokens revoked")
	}
	return nil
}

// Authenticate resolves a bearer token plaintext to its owning user.
// Unknown and expired tokens both fail with ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, plaintext string) (*entity.User, error) {
	tok, err := s.Tokens.GetByHash(ctx, helpers.HashToken(plaintext))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if tok.Expired(time.Now()) {
		return nil, ErrInvalidCredentials
	}
	u, err := s.Users.GetByID(ctx, tok.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) issueToken(ctx context.Context, userID int64) (*IssuedToken, error) {
	plain, err := helpers.GenerateToken()
	if err != nil {
		return nil, err
	}
	tok := &entity.Token{
		UserID:    userID,
		TokenHash: helpers.HashToken(plain),
		ExpiresAt: time.Now().Add(s.TokenTTL),
	}
	if err := s.Tokens.Create(ctx, tok); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Error("store token failed")
		}
		return nil, err
	}
	return &IssuedToken{Plaintext: plain, ExpiresAt: tok.ExpiresAt}, nil
}
