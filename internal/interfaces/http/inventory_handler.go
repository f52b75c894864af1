package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ShipmentPDFGenerator genera la nota de entrega imprimible de un despacho.
type ShipmentPDFGenerator interface {
	GenerateShipmentPDF(doc *repository.ShipmentDoc) ([]byte, error)
}

// InventoryHandler maneja el estado del ledger, ingresos y despachos.
type InventoryHandler struct {
	uc  *inventory.LedgerUseCase
	pdf ShipmentPDFGenerator
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.LedgerUseCase, pdf ShipmentPDFGenerator) *InventoryHandler {
	return &InventoryHandler{uc: uc, pdf: pdf}
}

// State godoc
// @Summary      Estado completo del ledger de la organización
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.StateResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/state [get]
func (h *InventoryHandler) State(c *fiber.Ctx) error {
	sc := SessionCtx(c)
	out, err := h.uc.State(GetOrgID(c))
	if err != nil {
		return respondError(c, err)
	}
	if sc != nil {
		out.Me = &dto.MeResponse{
			Name:        sc.User.Name,
			Email:       sc.User.Email,
			OrgName:     sc.Org.Name,
			OrgJoinCode: sc.Org.JoinCode,
			Role:        sc.Role,
		}
	}
	return c.JSON(out)
}

// CreateReceipt godoc
// @Summary      Registrar ingreso de mercadería (suma stock)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReceiptRequest  true  "productId, quantity, cost"
// @Success      201   {object}  dto.StateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/receipts [post]
func (h *InventoryHandler) CreateReceipt(c *fiber.Ctx) error {
	var in dto.CreateReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateReceipt(c.UserContext(), GetOrgID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteReceipt godoc
// @Summary      Eliminar ingreso (revierte el stock, piso en cero)
// @Tags         inventory
// @Produce      json
// @Param        id   path  string  true  "ID del ingreso"
// @Success      200  {object}  dto.StateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/receipts/{id} [delete]
func (h *InventoryHandler) DeleteReceipt(c *fiber.Ctx) error {
	out, err := h.uc.DeleteReceipt(c.UserContext(), GetOrgID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateShipment godoc
// @Summary      Registrar despacho (todo o nada contra el stock)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShipmentRequest  true  "items"
// @Success      201   {object}  dto.StateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/shipments [post]
func (h *InventoryHandler) CreateShipment(c *fiber.Ctx) error {
	var in dto.CreateShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateShipment(c.UserContext(), GetOrgID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteShipment godoc
// @Summary      Eliminar despacho (restaura el stock de los productos vivos)
// @Tags         inventory
// @Produce      json
// @Param        id   path  string  true  "ID del despacho"
// @Success      200  {object}  dto.StateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shipments/{id} [delete]
func (h *InventoryHandler) DeleteShipment(c *fiber.Ctx) error {
	out, err := h.uc.DeleteShipment(c.UserContext(), GetOrgID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ShipmentPDF godoc
// @Summary      Nota de entrega del despacho en PDF
// @Tags         inventory
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del despacho"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shipments/{id}/pdf [get]
func (h *InventoryHandler) ShipmentPDF(c *fiber.Ctx) error {
	sc := SessionCtx(c)
	orgName := ""
	if sc != nil && sc.Org != nil {
		orgName = sc.Org.Name
	}
	doc, err := h.uc.ShipmentDocument(GetOrgID(c), orgName, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.pdf.GenerateShipmentPDF(doc)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="nota-entrega-`+doc.ShipmentID+`.pdf"`)
	return c.Send(out)
}
