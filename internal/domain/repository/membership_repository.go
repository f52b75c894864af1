package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// MembershipRepository define el puerto de persistencia para Membership (DIP).
type MembershipRepository interface {
	// Create persiste la membresía; ErrDuplicate si el par (user, org) ya existe.
	Create(m *entity.Membership) error
	GetByUserAndOrg(userID, orgID string) (*entity.Membership, error)
	// FirstByUser devuelve la membresía más antigua del usuario (la que se
	// vincula a la sesión en el login), o nil si no tiene ninguna.
	FirstByUser(userID string) (*entity.Membership, error)
	UpdateRole(userID, orgID, role string) error
}
