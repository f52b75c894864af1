package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.MembershipRepository = (*MembershipRepo)(nil)

// MembershipRepo implementación del puerto MembershipRepository sobre PostgreSQL (usable con pool o tx).
type MembershipRepo struct {
	q Querier
}

// NewMembershipRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMembershipRepository(q Querier) *MembershipRepo {
	return &MembershipRepo{q: q}
}

// Create persiste una nueva membresía.
func (r *MembershipRepo) Create(m *entity.Membership) error {
	query := `
		INSERT INTO memberships (id, user_id, org_id, role, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, m.ID, m.UserID, m.OrgID, m.Role, m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

// GetByUserAndOrg obtiene la membresía del usuario en la organización.
func (r *MembershipRepo) GetByUserAndOrg(userID, orgID string) (*entity.Membership, error) {
	query := `
		SELECT id, user_id, org_id, role, created_at
		FROM memberships WHERE user_id = $1 AND org_id = $2`
	return r.getOne(query, userID, orgID)
}

// FirstByUser obtiene la membresía más antigua del usuario (orden de ingreso).
func (r *MembershipRepo) FirstByUser(userID string) (*entity.Membership, error) {
	query := `
		SELECT id, user_id, org_id, role, created_at
		FROM memberships WHERE user_id = $1 ORDER BY created_at ASC LIMIT 1`
	return r.getOne(query, userID)
}

// UpdateRole cambia el rol de la membresía (efectivo en la siguiente request).
func (r *MembershipRepo) UpdateRole(userID, orgID, role string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE memberships SET role = $3 WHERE user_id = $1 AND org_id = $2`,
		userID, orgID, role,
	)
	if err != nil {
		return fmt.Errorf("update membership role: %w", err)
	}
	return nil
}

func (r *MembershipRepo) getOne(query string, args ...any) (*entity.Membership, error) {
	var m entity.Membership
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&m.ID, &m.UserID, &m.OrgID, &m.Role, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}
	return &m, nil
}
