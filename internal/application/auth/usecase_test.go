package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/session"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type authFixture struct {
	store    *memory.Store
	registry *session.Registry
	uc       *auth.AuthUseCase
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	orgRepo := memory.NewOrganizationRepository(store)
	membershipRepo := memory.NewMembershipRepository(store)
	registry := session.NewRegistry(memory.NewSessionRepository(store), userRepo, orgRepo, membershipRepo, 14)
	return &authFixture{
		store:    store,
		registry: registry,
		uc:       auth.NewAuthUseCase(userRepo, orgRepo, membershipRepo, registry),
	}
}

// registerFounder registra un fundador con organización nueva y devuelve su vista me.
func registerFounder(t *testing.T, f *authFixture, name, email, orgName string) *dto.MeResponse {
	t.Helper()
	_, me, err := f.uc.Register(dto.RegisterRequest{
		Name: name, Email: email, Password: "secreta123", OrgName: orgName,
	})
	require.NoError(t, err)
	return me
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

// Registrarse con orgName funda una organización: el usuario queda owner y
// la sesión emitida resuelve a esa organización.
func TestRegister_FundadorQuedaOwner(t *testing.T) {
	f := newAuthFixture(t)

	token, me, err := f.uc.Register(dto.RegisterRequest{
		Name: "ana", Email: "Ana@Example.com", Password: "secreta123", OrgName: "Almacén Central",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOwner, me.Role)
	assert.Equal(t, "Almacén Central", me.OrgName)
	assert.Len(t, me.OrgJoinCode, 6, "el join code debe ser de 6 caracteres hex")
	assert.Equal(t, "ana@example.com", me.Email, "el email se normaliza a minúsculas")

	sc, err := f.registry.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOwner, sc.Role)
	assert.Equal(t, "Almacén Central", sc.Org.Name)
}

// Registrarse con joinCode une a la organización existente como viewer.
func TestRegister_ConJoinCode_QuedaViewer(t *testing.T) {
	f := newAuthFixture(t)
	founder := registerFounder(t, f, "ana", "ana@example.com", "Almacén Central")

	_, me, err := f.uc.Register(dto.RegisterRequest{
		Name: "beto", Email: "beto@example.com", Password: "secreta123",
		JoinCode: founder.OrgJoinCode,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleViewer, me.Role)
	assert.Equal(t, founder.OrgName, me.OrgName)
}

// El join code se normaliza a mayúsculas antes de buscar la organización.
func TestRegister_JoinCodeEnMinusculas(t *testing.T) {
	f := newAuthFixture(t)
	founder := registerFounder(t, f, "ana", "ana@example.com", "Almacén Central")

	_, me, err := f.uc.Register(dto.RegisterRequest{
		Name: "beto", Email: "beto@example.com", Password: "secreta123",
		JoinCode: "  " + strings.ToLower(founder.OrgJoinCode) + " ",
	})
	require.NoError(t, err)
	assert.Equal(t, founder.OrgName, me.OrgName)
}

func TestRegister_JoinCodeInexistente_NotFound(t *testing.T) {
	f := newAuthFixture(t)

	_, _, err := f.uc.Register(dto.RegisterRequest{
		Name: "beto", Email: "beto@example.com", Password: "secreta123", JoinCode: "ZZZZZZ",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Se exige exactamente uno de orgName / joinCode: ninguno o ambos es inválido.
func TestRegister_OrgNameYJoinCodeExcluyentes(t *testing.T) {
	f := newAuthFixture(t)

	_, _, err := f.uc.Register(dto.RegisterRequest{
		Name: "ana", Email: "ana@example.com", Password: "secreta123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin orgName ni joinCode")

	_, _, err = f.uc.Register(dto.RegisterRequest{
		Name: "ana", Email: "ana@example.com", Password: "secreta123",
		OrgName: "Almacén", JoinCode: "A1B2C3",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "orgName y joinCode a la vez")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	f := newAuthFixture(t)
	registerFounder(t, f, "ana", "ana@example.com", "Almacén Central")

	_, _, err := f.uc.Register(dto.RegisterRequest{
		Name: "otra-ana", Email: "ANA@example.com", Password: "secreta123", OrgName: "Otro Almacén",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_CamposVacios_Invalido(t *testing.T) {
	f := newAuthFixture(t)

	_, _, err := f.uc.Register(dto.RegisterRequest{Name: "  ", Email: "a@b.c", Password: "x", OrgName: "O"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = f.uc.Register(dto.RegisterRequest{Name: "ana", Email: "a@b.c", Password: "", OrgName: "O"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas(t *testing.T) {
	f := newAuthFixture(t)
	registerFounder(t, f, "ana", "ana@example.com", "Almacén Central")

	token, me, err := f.uc.Login(dto.LoginRequest{Username: "ana", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "Almacén Central", me.OrgName)
	assert.Equal(t, entity.RoleOwner, me.Role)
}

// Usuario inexistente y contraseña incorrecta devuelven el mismo error, sin
// filtrar cuál de los dos falló.
func TestLogin_CredencialesInvalidas_MismoError(t *testing.T) {
	f := newAuthFixture(t)
	registerFounder(t, f, "ana", "ana@example.com", "Almacén Central")

	_, _, err := f.uc.Login(dto.LoginRequest{Username: "ana", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, _, err = f.uc.Login(dto.LoginRequest{Username: "nadie", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, _, err = f.uc.Login(dto.LoginRequest{Username: "", Password: ""})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_RevocaLaSesion(t *testing.T) {
	f := newAuthFixture(t)
	registerFounder(t, f, "ana", "ana@example.com", "Almacén Central")

	token, _, err := f.uc.Login(dto.LoginRequest{Username: "ana", Password: "secreta123"})
	require.NoError(t, err)

	require.NoError(t, f.uc.Logout(token))
	_, err = f.registry.Resolve(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Idempotente: repetir el logout no es error.
	assert.NoError(t, f.uc.Logout(token))
}
