package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/session"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type registryFixture struct {
	store    *memory.Store
	sessions *memory.SessionRepo
	registry *session.Registry
	user     *entity.User
	org      *entity.Organization
}

// newRegistryFixture arma un registro con un usuario owner de una organización.
func newRegistryFixture(t *testing.T) *registryFixture {
	t.Helper()
	store := memory.NewStore()
	sessionRepo := memory.NewSessionRepository(store)
	userRepo := memory.NewUserRepository(store)
	orgRepo := memory.NewOrganizationRepository(store)
	membershipRepo := memory.NewMembershipRepository(store)

	user := &entity.User{ID: "u1", Name: "ana", Email: "ana@example.com", PasswordHash: "x", CreatedAt: time.Now()}
	org := &entity.Organization{ID: "o1", Name: "Almacén Central", JoinCode: "A1B2C3", CreatedAt: time.Now()}
	require.NoError(t, userRepo.Create(user))
	require.NoError(t, orgRepo.Create(org))
	require.NoError(t, membershipRepo.Create(&entity.Membership{
		ID: "m1", UserID: user.ID, OrgID: org.ID, Role: entity.RoleOwner, CreatedAt: time.Now(),
	}))

	return &registryFixture{
		store:    store,
		sessions: sessionRepo,
		registry: session.NewRegistry(sessionRepo, userRepo, orgRepo, membershipRepo, 14),
		user:     user,
		org:      org,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Resolve
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistry_CreateYResolve(t *testing.T) {
	f := newRegistryFixture(t)

	token, err := f.registry.Create(f.user.ID, f.org.ID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sc, err := f.registry.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, "ana", sc.User.Name)
	assert.Equal(t, "Almacén Central", sc.Org.Name)
	assert.Equal(t, entity.RoleOwner, sc.Role)
	assert.Equal(t, token, sc.Token)
}

// Dos sesiones del mismo usuario reciben tokens distintos.
func TestRegistry_TokensUnicos(t *testing.T) {
	f := newRegistryFixture(t)

	t1, err := f.registry.Create(f.user.ID, f.org.ID)
	require.NoError(t, err)
	t2, err := f.registry.Create(f.user.ID, f.org.ID)
	require.NoError(t, err)
	assert.NotEqual(t, t1, t2)
}

func TestRegistry_TokenDesconocido_Unauthorized(t *testing.T) {
	f := newRegistryFixture(t)

	_, err := f.registry.Resolve("token-que-no-existe")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.registry.Resolve("")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Una sesión vencida se comporta igual que una revocada: se elimina al
// resolverla (expiración perezosa) y el mismo token nunca vuelve a servir.
func TestRegistry_SesionVencida_SeEliminaAlResolver(t *testing.T) {
	f := newRegistryFixture(t)

	expired := &entity.Session{
		Token:     "tok-vencido",
		UserID:    f.user.ID,
		OrgID:     f.org.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
		CreatedAt: time.Now().Add(-15 * 24 * time.Hour),
	}
	require.NoError(t, f.sessions.Create(expired))

	_, err := f.registry.Resolve(expired.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	stored, err := f.sessions.GetByToken(expired.Token)
	require.NoError(t, err)
	assert.Nil(t, stored, "la sesión vencida debe eliminarse al resolver")
}

// ──────────────────────────────────────────────────────────────────────────────
// Revoke
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistry_Revoke_InvalidaElToken(t *testing.T) {
	f := newRegistryFixture(t)

	token, err := f.registry.Create(f.user.ID, f.org.ID)
	require.NoError(t, err)

	require.NoError(t, f.registry.Revoke(token))
	_, err = f.registry.Resolve(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Revocar dos veces (o revocar un token inventado) no es error.
func TestRegistry_Revoke_Idempotente(t *testing.T) {
	f := newRegistryFixture(t)

	token, err := f.registry.Create(f.user.ID, f.org.ID)
	require.NoError(t, err)

	assert.NoError(t, f.registry.Revoke(token))
	assert.NoError(t, f.registry.Revoke(token))
	assert.NoError(t, f.registry.Revoke("nunca-existio"))
	assert.NoError(t, f.registry.Revoke(""))
}

// ──────────────────────────────────────────────────────────────────────────────
// Rol vigente
// ──────────────────────────────────────────────────────────────────────────────

// El rol se relee de Membership en cada resolución: un cambio de rol aplica
// en la siguiente petición sin reemitir la sesión.
func TestRegistry_CambioDeRol_VisibleEnSiguienteResolve(t *testing.T) {
	f := newRegistryFixture(t)
	membershipRepo := memory.NewMembershipRepository(f.store)

	token, err := f.registry.Create(f.user.ID, f.org.ID)
	require.NoError(t, err)

	sc, err := f.registry.Resolve(token)
	require.NoError(t, err)
	require.Equal(t, entity.RoleOwner, sc.Role)

	require.NoError(t, membershipRepo.UpdateRole(f.user.ID, f.org.ID, entity.RoleViewer))

	sc, err = f.registry.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleViewer, sc.Role, "el rol nuevo debe verse sin re-login")
}

// Una sesión cuyo usuario, organización o membresía desapareció es huérfana:
// se trata como inválida y se elimina.
func TestRegistry_SesionHuerfana_Unauthorized(t *testing.T) {
	store := memory.NewStore()
	sessionRepo := memory.NewSessionRepository(store)
	registry := session.NewRegistry(
		sessionRepo,
		memory.NewUserRepository(store),
		memory.NewOrganizationRepository(store),
		memory.NewMembershipRepository(store),
		14,
	)

	// Sesión que apunta a un usuario y organización inexistentes.
	require.NoError(t, sessionRepo.Create(&entity.Session{
		Token:     "tok-huerfano",
		UserID:    "u-borrado",
		OrgID:     "o-borrada",
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}))

	_, err := registry.Resolve("tok-huerfano")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	stored, err := sessionRepo.GetByToken("tok-huerfano")
	require.NoError(t, err)
	assert.Nil(t, stored)
}
