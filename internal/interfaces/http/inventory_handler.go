package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/freezer-api/internal/application/dto"
	"github.com/jhoicas/freezer-api/internal/application/inventory"
	"github.com/jhoicas/freezer-api/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP del inventario (protegido).
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar inventario
// @Description  Sin filtros devuelve todo ordenado por nombre (sin distinguir mayúsculas).
//
//	Los filtros son excluyentes y se resuelven en este orden:
//	search, company, category, status (active|expired|borrowed), createdBy.
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        search     query  string  false  "substring sobre name, company, batchNumber, casNumber"
// @Param        company    query  string  false  "proveedor (match exacto)"
// @Param        category   query  string  false  "4C | -20C"
// @Param        status     query  string  false  "active | expired | borrowed"
// @Param        createdBy  query  string  false  "ID del usuario que dio de alta"
// @Success      200  {array}   dto.ItemResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var (
		items []entity.InventoryItem
		err   error
	)
	switch {
	case c.Query("search") != "":
		items, err = h.uc.Search(c.Context(), c.Query("search"))
	case c.Query("company") != "":
		items, err = h.uc.ListByCompany(c.Context(), c.Query("company"))
	case c.Query("category") != "":
		items, err = h.uc.ListByCategory(c.Context(), c.Query("category"))
	case c.Query("status") == "active":
		items, err = h.uc.ListActive(c.Context())
	case c.Query("status") == "expired":
		items, err = h.uc.ListExpired(c.Context())
	case c.Query("status") == "borrowed":
		items, err = h.uc.ListBorrowed(c.Context())
	case c.Query("createdBy") != "":
		items, err = h.uc.ListByCreator(c.Context(), c.Query("createdBy"))
	default:
		items, err = h.uc.FetchAll(c.Context())
	}
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.NewItemResponseList(items))
}

// Create godoc
// @Summary      Dar de alta un ítem
// @Description  Valida todos los campos, chequea duplicado por (name, company[, batchNumber])
//
//	y persiste el documento canónico con ubicación derivada.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NewItemRequest  true  "ítem nuevo"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.NewItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Create(c.Context(), GetUserID(c), in.ToInput())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewItemResponse(item))
}

// GetByID godoc
// @Summary      Obtener un ítem por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.NewItemResponse(item))
}

// Update godoc
// @Summary      Editar un ítem
// @Description  Mezcla solo los campos presentes y deja una entrada de auditoría
//
//	con el antes/después de cada campo cambiado.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del ítem"
// @Param        body  body  dto.UpdateItemRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [patch]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Update(c.Context(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.NewItemResponse(item))
}
