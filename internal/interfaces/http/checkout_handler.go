package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/freezer-api/internal/application/checkout"
	"github.com/jhoicas/freezer-api/internal/application/dto"
)

// CheckoutHandler préstamos y devoluciones de ítems (protegido).
type CheckoutHandler struct {
	uc *checkout.UseCase
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(uc *checkout.UseCase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// Checkout godoc
// @Summary      Prestar un ítem
// @Description  Crea el registro de préstamo y marca el ítem como prestado en una sola transacción.
// @Tags         checkouts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del ítem"
// @Param        body  body  dto.CheckoutRequest  true  "quantity, expectedReturnDate (YYYY-MM-DD), purpose"
// @Success      201   {object}  dto.CheckoutResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/checkout [post]
func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	co, err := h.uc.Checkout(c.Context(), checkout.CheckoutInput{
		ItemID:             c.Params("id"),
		UserID:             GetUserID(c),
		Quantity:           in.Quantity,
		ExpectedReturnDate: in.ExpectedReturnDate,
		Purpose:            in.Purpose,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewCheckoutResponse(co))
}

// Return godoc
// @Summary      Devolver un préstamo
// @Description  Marca el checkout como returned y limpia el estado de préstamo del ítem
//
//	en una sola transacción.
//
// @Tags         checkouts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID del ítem"
// @Param        body  body  dto.ReturnRequest  true  "checkoutId"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/return [post]
func (h *CheckoutHandler) Return(c *fiber.Ctx) error {
	var in dto.ReturnRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Return(c.Context(), c.Params("id"), in.CheckoutID); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "préstamo devuelto"})
}

// History godoc
// @Summary      Historial de préstamos de un ítem
// @Tags         checkouts
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {array}   dto.CheckoutResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/checkouts [get]
func (h *CheckoutHandler) History(c *fiber.Ctx) error {
	checkouts, err := h.uc.History(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.CheckoutResponse, 0, len(checkouts))
	for i := range checkouts {
		out = append(out, dto.NewCheckoutResponse(&checkouts[i]))
	}
	return c.JSON(out)
}
