package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/session"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/almacen-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testCookie = "almacen_session"

type middlewareFixture struct {
	app         *fiber.App
	registry    *session.Registry
	memberships *memory.MembershipRepo
	userID      string
	orgID       string
}

// newMiddlewareFixture arma una app Fiber mínima con el middleware de sesión
// y tres rutas: lectura, escritura de inventario y gestión de roles.
func newMiddlewareFixture(t *testing.T, role string) *middlewareFixture {
	t.Helper()
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	orgRepo := memory.NewOrganizationRepository(store)
	membershipRepo := memory.NewMembershipRepository(store)
	registry := session.NewRegistry(memory.NewSessionRepository(store), userRepo, orgRepo, membershipRepo, 14)

	require.NoError(t, userRepo.Create(&entity.User{
		ID: "u1", Name: "ana", Email: "ana@example.com", PasswordHash: "x", CreatedAt: time.Now(),
	}))
	require.NoError(t, orgRepo.Create(&entity.Organization{
		ID: "o1", Name: "Almacén Central", JoinCode: "A1B2C3", CreatedAt: time.Now(),
	}))
	require.NoError(t, membershipRepo.Create(&entity.Membership{
		ID: "m1", UserID: "u1", OrgID: "o1", Role: role, CreatedAt: time.Now(),
	}))

	app := fiber.New()
	protected := app.Group("/", apphttp.SessionMiddleware(registry, testCookie))
	protected.Get("/state", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"org": apphttp.GetOrgID(c), "role": apphttp.GetRole(c)})
	})
	protected.Post("/products", apphttp.RequireWrite(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	protected.Post("/roles", apphttp.RequireOwner(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	return &middlewareFixture{
		app:         app,
		registry:    registry,
		memberships: membershipRepo,
		userID:      "u1",
		orgID:       "o1",
	}
}

// login crea una sesión y devuelve el token para la cookie.
func (f *middlewareFixture) login(t *testing.T) string {
	t.Helper()
	token, err := f.registry.Create(f.userID, f.orgID)
	require.NoError(t, err)
	return token
}

// doRequest lanza method path con la cookie de sesión (vacía = sin cookie).
func doRequest(t *testing.T, app *fiber.App, method, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// SessionMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestSessionMiddleware_CookieValida_CargaContexto(t *testing.T) {
	f := newMiddlewareFixture(t, entity.RoleOwner)
	resp := doRequest(t, f.app, http.MethodGet, "/state", f.login(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "o1", body["org"])
	assert.Equal(t, entity.RoleOwner, body["role"])
}

func TestSessionMiddleware_SinCookie_Retorna401(t *testing.T) {
	f := newMiddlewareFixture(t, entity.RoleOwner)
	resp := doRequest(t, f.app, http.MethodGet, "/state", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	f := newMiddlewareFixture(t, entity.RoleOwner)
	resp := doRequest(t, f.app, http.MethodGet, "/state", "token-inventado")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Un token revocado deja de servir inmediatamente: la revocación es del lado
// del servidor, no depende de que el cliente borre la cookie.
func TestSessionMiddleware_TokenRevocado_Retorna401(t *testing.T) {
	f := newMiddlewareFixture(t, entity.RoleOwner)
	token := f.login(t)

	require.NoError(t, f.registry.Revoke(token))
	resp := doRequest(t, f.app, http.MethodGet, "/state", token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireWrite / RequireOwner
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireWrite_ViewerBloqueado(t *testing.T) {
	f := newMiddlewareFixture(t, entity.RoleViewer)
	token := f.login(t)

	// Lectura permitida.
	resp := doRequest(t, f.app, http.MethodGet, "/state", token)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Escritura bloqueada.
	resp = doRequest(t, f.app, http.MethodPost, "/products", token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireWrite_ManagerPermitido(t *testing.T) {
	f := newMiddlewareFixture(t, entity.RoleManager)
	token := f.login(t)

	resp := doRequest(t, f.app, http.MethodPost, "/products", token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireOwner_ManagerBloqueado(t *testing.T) {
	f := newMiddlewareFixture(t, entity.RoleManager)
	token := f.login(t)

	resp := doRequest(t, f.app, http.MethodPost, "/roles", token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireOwner_OwnerPermitido(t *testing.T) {
	f := newMiddlewareFixture(t, entity.RoleOwner)
	token := f.login(t)

	resp := doRequest(t, f.app, http.MethodPost, "/roles", token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Una degradación de rol aplica en la siguiente petición con la misma cookie.
func TestRequireWrite_DegradacionAplicaSinRelogin(t *testing.T) {
	f := newMiddlewareFixture(t, entity.RoleManager)
	token := f.login(t)

	resp := doRequest(t, f.app, http.MethodPost, "/products", token)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, f.memberships.UpdateRole(f.userID, f.orgID, entity.RoleViewer))

	resp = doRequest(t, f.app, http.MethodPost, "/products", token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"el rol degradado debe aplicar con la misma cookie")
}
