package checkout

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mvandermerwe/liquor-pos-backend/internal/employee"
	"github.com/mvandermerwe/liquor-pos-backend/internal/order"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout/payment", h.processPayment)
	app.Post("/api/v1/checkout/tab", h.createTab)
	app.Post("/api/v1/tab/:id/close", h.closeTab)
}

type paymentRequest struct {
	PaymentMethod string  `json:"paymentMethod"`
	Tip           float64 `json:"tip,omitempty"`
}

// statusFor maps orchestrator errors onto HTTP statuses: precondition
// failures are 412 (user-correctable, never retried as-is), unknown
// orders are 404.
func statusFor(err error) int {
	switch err {
	case ErrNoEmployee:
		return fiber.StatusUnauthorized
	case ErrAgeNotVerified, ErrTabNameRequired, ErrEmptyCart:
		return fiber.StatusPreconditionFailed
	case ErrInvalidPayment:
		return fiber.StatusBadRequest
	case order.ErrNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Handler) processPayment(c *fiber.Ctx) error {
	payload := new(paymentRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Tip < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "tip must be >= 0"})
	}

	employeeID, err := employee.GetEmployeeIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ord, err := h.service.ProcessPayment(employeeID, payload.PaymentMethod, payload.Tip)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(ord)
}

func (h *Handler) createTab(c *fiber.Ctx) error {
	employeeID, err := employee.GetEmployeeIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ord, err := h.service.CreateTab(employeeID)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(ord)
}

func (h *Handler) closeTab(c *fiber.Ctx) error {
	payload := new(paymentRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Tip < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "tip must be >= 0"})
	}

	if _, err := employee.GetEmployeeIDFromCtx(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ord, err := h.service.CloseTab(c.Params("id"), payload.PaymentMethod, payload.Tip)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(ord)
}
