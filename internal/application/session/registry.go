// Package session implementa el registro de sesiones con token opaco:
// create/resolve/revoke sobre un SessionRepository, con expiración perezosa.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Context es el resultado de resolver un token: usuario, organización activa
// y el rol vigente en ella. El rol se relee de Membership en cada resolución,
// nunca del registro de sesión, para que un cambio de rol aplique en la
// siguiente petición.
type Context struct {
	Token string
	User  *entity.User
	Org   *entity.Organization
	Role  string
}

// Registry casos de uso del registro de sesiones.
type Registry struct {
	sessionRepo    repository.SessionRepository
	userRepo       repository.UserRepository
	orgRepo        repository.OrganizationRepository
	membershipRepo repository.MembershipRepository
	ttl            time.Duration
}

// NewRegistry construye el registro. ttlDays es la vigencia absoluta del token.
func NewRegistry(
	sessionRepo repository.SessionRepository,
	userRepo repository.UserRepository,
	orgRepo repository.OrganizationRepository,
	membershipRepo repository.MembershipRepository,
	ttlDays int,
) *Registry {
	return &Registry{
		sessionRepo:    sessionRepo,
		userRepo:       userRepo,
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		ttl:            time.Duration(ttlDays) * 24 * time.Hour,
	}
}

// TTL devuelve la vigencia configurada (la usa el handler para el Max-Age de la cookie).
func (r *Registry) TTL() time.Duration { return r.ttl }

// Create genera un token criptográficamente aleatorio y persiste la sesión
// vinculada al usuario y a una organización concreta.
func (r *Registry) Create(userID, orgID string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", fmt.Errorf("generar token: %w", err)
	}
	now := time.Now()
	s := &entity.Session{
		Token:     token,
		UserID:    userID,
		OrgID:     orgID,
		ExpiresAt: now.Add(r.ttl),
		CreatedAt: now,
	}
	if err := r.sessionRepo.Create(s); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve busca el token y arma el contexto de la petición. Token desconocido
// o vencido reporta ErrUnauthorized; el vencido se elimina en el acto
// (expiración perezosa, sin barrido de fondo).
func (r *Registry) Resolve(token string) (*Context, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	s, err := r.sessionRepo.GetByToken(token)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrUnauthorized
	}
	if s.Expired(time.Now()) {
		if err := r.sessionRepo.Delete(token); err != nil {
			return nil, err
		}
		return nil, domain.ErrUnauthorized
	}

	user, err := r.userRepo.GetByID(s.UserID)
	if err != nil {
		return nil, err
	}
	org, err := r.orgRepo.GetByID(s.OrgID)
	if err != nil {
		return nil, err
	}
	membership, err := r.membershipRepo.GetByUserAndOrg(s.UserID, s.OrgID)
	if err != nil {
		return nil, err
	}
	if user == nil || org == nil || membership == nil {
		// Sesión huérfana (usuario, org o membresía eliminados): tratarla como inválida.
		_ = r.sessionRepo.Delete(token)
		return nil, domain.ErrUnauthorized
	}

	return &Context{Token: token, User: user, Org: org, Role: membership.Role}, nil
}

// Revoke elimina la sesión; revocar un token desconocido es un no-op.
func (r *Registry) Revoke(token string) error {
	if token == "" {
		return nil
	}
	return r.sessionRepo.Delete(token)
}

// newToken devuelve 32 bytes aleatorios en base64 URL-safe sin padding.
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
