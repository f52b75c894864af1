package membership_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/membership"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
)

type membershipFixture struct {
	memberships *memory.MembershipRepo
	uc          *membership.MembershipUseCase
}

// newMembershipFixture arma una organización con un viewer ya registrado.
func newMembershipFixture(t *testing.T) *membershipFixture {
	t.Helper()
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	membershipRepo := memory.NewMembershipRepository(store)

	require.NoError(t, userRepo.Create(&entity.User{
		ID: "u1", Name: "beto", Email: "beto@example.com", PasswordHash: "x", CreatedAt: time.Now(),
	}))
	require.NoError(t, membershipRepo.Create(&entity.Membership{
		ID: "m1", UserID: "u1", OrgID: "o1", Role: entity.RoleViewer, CreatedAt: time.Now(),
	}))

	return &membershipFixture{
		memberships: membershipRepo,
		uc:          membership.NewMembershipUseCase(userRepo, membershipRepo),
	}
}

func TestChangeRole_PromueveAViewer(t *testing.T) {
	f := newMembershipFixture(t)

	require.NoError(t, f.uc.ChangeRole("o1", "beto@example.com", entity.RoleManager))

	m, err := f.memberships.GetByUserAndOrg("u1", "o1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, m.Role)
}

func TestChangeRole_RolInvalido(t *testing.T) {
	f := newMembershipFixture(t)

	err := f.uc.ChangeRole("o1", "beto@example.com", "admin")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = f.uc.ChangeRole("o1", "beto@example.com", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChangeRole_EmailDesconocido(t *testing.T) {
	f := newMembershipFixture(t)

	err := f.uc.ChangeRole("o1", "nadie@example.com", entity.RoleManager)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// El usuario existe pero no es miembro de esta organización: el owner de una
// organización no puede tocar membresías ajenas.
func TestChangeRole_UsuarioDeOtraOrganizacion(t *testing.T) {
	f := newMembershipFixture(t)

	err := f.uc.ChangeRole("o2", "beto@example.com", entity.RoleManager)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// La membresía original queda intacta.
	m, err2 := f.memberships.GetByUserAndOrg("u1", "o1")
	require.NoError(t, err2)
	assert.Equal(t, entity.RoleViewer, m.Role)
}
