package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/session"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/password"
)

const joinCodeRetries = 5

// AuthUseCase casos de uso de autenticación: registro, login y logout.
type AuthUseCase struct {
	userRepo       repository.UserRepository
	orgRepo        repository.OrganizationRepository
	membershipRepo repository.MembershipRepository
	sessions       *session.Registry
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	orgRepo repository.OrganizationRepository,
	membershipRepo repository.MembershipRepository,
	sessions *session.Registry,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:       userRepo,
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		sessions:       sessions,
	}
}

// Register crea un usuario nuevo y lo vincula a una organización: con OrgName
// crea una organización y el usuario queda como owner; con JoinCode se une a
// una existente como viewer. Devuelve el token de sesión resultante.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (string, *dto.MeResponse, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" || email == "" || in.Password == "" {
		return "", nil, domain.ErrInvalidInput
	}
	orgName := strings.TrimSpace(in.OrgName)
	joinCode := strings.ToUpper(strings.TrimSpace(in.JoinCode))
	if (orgName == "") == (joinCode == "") {
		return "", nil, domain.ErrInvalidInput // exactamente uno de orgName/joinCode
	}

	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, domain.ErrEmailAlreadyExists
	}

	var org *entity.Organization
	role := entity.RoleViewer
	if orgName != "" {
		org, err = uc.createOrganization(orgName)
		if err != nil {
			return "", nil, err
		}
		role = entity.RoleOwner
	} else {
		org, err = uc.orgRepo.GetByJoinCode(joinCode)
		if err != nil {
			return "", nil, err
		}
		if org == nil {
			return "", nil, domain.ErrNotFound
		}
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return "", nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		if err == domain.ErrDuplicate {
			return "", nil, domain.ErrEmailAlreadyExists
		}
		return "", nil, err
	}
	membership := &entity.Membership{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		OrgID:     org.ID,
		Role:      role,
		CreatedAt: now,
	}
	if err := uc.membershipRepo.Create(membership); err != nil {
		return "", nil, err
	}

	token, err := uc.sessions.Create(user.ID, org.ID)
	if err != nil {
		return "", nil, err
	}
	return token, meView(user, org, role), nil
}

// Login verifica usuario/contraseña, vincula la sesión a la primera
// organización del usuario (orden de ingreso) y devuelve token + vista me.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (string, *dto.MeResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return "", nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByName(username)
	if err != nil {
		return "", nil, err
	}
	if user == nil || !password.Verify(in.Password, user.PasswordHash) {
		// Mismo error para usuario inexistente y contraseña incorrecta.
		return "", nil, domain.ErrUnauthorized
	}

	membership, err := uc.membershipRepo.FirstByUser(user.ID)
	if err != nil {
		return "", nil, err
	}
	if membership == nil {
		return "", nil, domain.ErrForbidden // usuario sin organización
	}
	org, err := uc.orgRepo.GetByID(membership.OrgID)
	if err != nil {
		return "", nil, err
	}
	if org == nil {
		return "", nil, domain.ErrForbidden
	}

	token, err := uc.sessions.Create(user.ID, org.ID)
	if err != nil {
		return "", nil, err
	}
	return token, meView(user, org, membership.Role), nil
}

// Logout revoca la sesión; es idempotente.
func (uc *AuthUseCase) Logout(token string) error {
	return uc.sessions.Revoke(token)
}

// Me arma la vista del usuario autenticado a partir del contexto resuelto.
func (uc *AuthUseCase) Me(sc *session.Context) *dto.MeResponse {
	return meView(sc.User, sc.Org, sc.Role)
}

// createOrganization genera el join code y reintenta ante colisión.
func (uc *AuthUseCase) createOrganization(name string) (*entity.Organization, error) {
	for i := 0; i < joinCodeRetries; i++ {
		org := &entity.Organization{
			ID:        uuid.New().String(),
			Name:      name,
			JoinCode:  entity.NewJoinCode(),
			CreatedAt: time.Now(),
		}
		err := uc.orgRepo.Create(org)
		if err == nil {
			return org, nil
		}
		if err != domain.ErrDuplicate {
			return nil, err
		}
	}
	return nil, domain.ErrDuplicate
}

func meView(user *entity.User, org *entity.Organization, role string) *dto.MeResponse {
	return &dto.MeResponse{
		Name:        user.Name,
		Email:       user.Email,
		OrgName:     org.Name,
		OrgJoinCode: org.JoinCode,
		Role:        role,
	}
}
