package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/session"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// LocalSession clave de Locals para el contexto de sesión resuelto.
const LocalSession = "session_ctx"

// SessionMiddleware valida la cookie de sesión contra el registro y deja el
// contexto resuelto (usuario, organización y rol vigente) en c.Locals.
func SessionMiddleware(registry *session.Registry, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		sc, err := registry.Resolve(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión inválida o expirada"})
		}
		c.Locals(LocalSession, sc)
		return c.Next()
	}
}

// SessionCtx devuelve el contexto de sesión (después del middleware).
func SessionCtx(c *fiber.Ctx) *session.Context {
	v := c.Locals(LocalSession)
	if v == nil {
		return nil
	}
	sc, _ := v.(*session.Context)
	return sc
}

// GetOrgID devuelve el ID de la organización de la sesión, o "" si no hay sesión.
func GetOrgID(c *fiber.Ctx) string {
	sc := SessionCtx(c)
	if sc == nil || sc.Org == nil {
		return ""
	}
	return sc.Org.ID
}

// GetRole devuelve el rol vigente de la sesión, o "" si no hay sesión.
func GetRole(c *fiber.Ctx) string {
	sc := SessionCtx(c)
	if sc == nil {
		return ""
	}
	return sc.Role
}

// requireOperation corta con 403 FORBIDDEN si el rol vigente no permite la
// operación. El rol se relee del contexto en cada petición, así un cambio de
// rol aplica sin reemitir la sesión.
func requireOperation(op domain.Operation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !domain.Allowed(GetRole(c), op) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "permisos insuficientes"})
		}
		return c.Next()
	}
}

// RequireWrite exige un rol con permiso de escritura de inventario (owner o manager).
func RequireWrite() fiber.Handler { return requireOperation(domain.OpWriteInventory) }

// RequireOwner exige el rol owner (gestión de roles de la organización).
func RequireOwner() fiber.Handler { return requireOperation(domain.OpManageRoles) }
