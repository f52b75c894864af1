package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// SessionRepository define el puerto de persistencia para Session (DIP).
type SessionRepository interface {
	Create(s *entity.Session) error
	GetByToken(token string) (*entity.Session, error)
	// Delete elimina la sesión; es idempotente (token desconocido = no-op).
	Delete(token string) error
}
