package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// OrganizationRepository define el puerto de persistencia para Organization (DIP).
type OrganizationRepository interface {
	// Create persiste la organización; ErrDuplicate si el join code ya existe.
	Create(org *entity.Organization) error
	GetByID(id string) (*entity.Organization, error)
	GetByJoinCode(code string) (*entity.Organization, error)
}
