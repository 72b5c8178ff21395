package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/codepilot/codepilot/internal/core"
)

// GetUserByID retrieves a user by primary key.
func (s *postgresStore) GetUserByID(ctx context.Context, id uuid.UUID) (*core.User, error) {
	query := `SELECT id, username, email, credits, total_spent, created_at FROM users WHERE id = $1`

	var u core.User
	if err := s.db.GetContext(ctx, &u, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &u, nil
}

// GetUserByToken resolves an opaque API token to its owning user. The token
// itself is issued by the identity subsystem; this lookup is all the review
// service needs from it.
func (s *postgresStore) GetUserByToken(ctx context.Context, token string) (*core.User, error) {
	query := `SELECT id, username, email, credits, total_spent, created_at FROM users WHERE api_token = $1`

	var u core.User
	if err := s.db.GetContext(ctx, &u, query, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by token: %w", err)
	}
	return &u, nil
}
