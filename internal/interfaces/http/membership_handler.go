package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/membership"
)

// MembershipHandler maneja la gestión de roles dentro de la organización.
type MembershipHandler struct {
	uc *membership.MembershipUseCase
}

// NewMembershipHandler construye el handler.
func NewMembershipHandler(uc *membership.MembershipUseCase) *MembershipHandler {
	return &MembershipHandler{uc: uc}
}

// ChangeRole godoc
// @Summary      Cambiar el rol de un miembro (sólo owner)
// @Tags         memberships
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangeRoleRequest  true  "email, role (owner|manager|viewer)"
// @Success      200   {object}  dto.OKResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/memberships/role [post]
func (h *MembershipHandler) ChangeRole(c *fiber.Ctx) error {
	var in dto.ChangeRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
	}
	if err := h.uc.ChangeRole(GetOrgID(c), in.Email, in.Role); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}
