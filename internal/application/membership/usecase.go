package membership

import (
	"strings"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// MembershipUseCase casos de uso sobre membresías de una organización.
type MembershipUseCase struct {
	userRepo       repository.UserRepository
	membershipRepo repository.MembershipRepository
}

// NewMembershipUseCase construye el caso de uso.
func NewMembershipUseCase(userRepo repository.UserRepository, membershipRepo repository.MembershipRepository) *MembershipUseCase {
	return &MembershipUseCase{userRepo: userRepo, membershipRepo: membershipRepo}
}

// ChangeRole cambia el rol de un miembro de la organización, ubicado por
// email. La autorización (solo owner) la aplica la capa HTTP; el cambio es
// efectivo en la siguiente petición del afectado porque el rol se relee de
// Membership en cada resolución de sesión.
func (uc *MembershipUseCase) ChangeRole(orgID, email, role string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	role = strings.TrimSpace(role)
	if email == "" || !entity.ValidRole(role) {
		return domain.ErrInvalidInput
	}

	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	membership, err := uc.membershipRepo.GetByUserAndOrg(user.ID, orgID)
	if err != nil {
		return err
	}
	if membership == nil {
		return domain.ErrNotFound // no pertenece a la organización del caller
	}

	return uc.membershipRepo.UpdateRole(user.ID, orgID, role)
}
