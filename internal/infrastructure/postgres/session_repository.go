package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo implementación del puerto SessionRepository sobre PostgreSQL (usable con pool o tx).
type SessionRepo struct {
	q Querier
}

// NewSessionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSessionRepository(q Querier) *SessionRepo {
	return &SessionRepo{q: q}
}

// Create persiste una nueva sesión.
func (r *SessionRepo) Create(s *entity.Session) error {
	query := `
		INSERT INTO sessions (token, user_id, org_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, s.Token, s.UserID, s.OrgID, s.ExpiresAt, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetByToken obtiene una sesión por token.
func (r *SessionRepo) GetByToken(token string) (*entity.Session, error) {
	query := `
		SELECT token, user_id, org_id, expires_at, created_at
		FROM sessions WHERE token = $1`
	var s entity.Session
	err := r.q.QueryRow(context.Background(), query, token).Scan(
		&s.Token, &s.UserID, &s.OrgID, &s.ExpiresAt, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &s, nil
}

// Delete elimina la sesión; no es error que el token no exista.
func (r *SessionRepo) Delete(token string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
