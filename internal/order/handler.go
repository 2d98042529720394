package order

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mvandermerwe/liquor-pos-backend/internal/employee"
)

// Handler exposes the ledger views and reports. Checkout-side writes
// (payment, tab open/close) live in the checkout handler.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/orders/recent", h.getRecent)
	app.Get("/api/v1/orders/mine", h.getMine)
	app.Get("/api/v1/order/:id", h.getOrder)
	app.Patch("/api/v1/order/:id", h.updateOrder)
	app.Get("/api/v1/tabs", h.getOpenTabs)
	app.Get("/api/v1/reports/sales-total", h.getSalesTotal)
	app.Get("/api/v1/reports/top-products", h.getTopProducts)
	app.Get("/api/v1/reports/daily-sales", h.getDailySales)
}

// limitQuery reads ?limit=; anything unparseable or not positive falls
// back to the default so a stray limit=0 never dumps the whole ledger.
func limitQuery(c *fiber.Ctx, def int) int {
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(def)))
	if err != nil || limit <= 0 {
		return def
	}
	return limit
}

func (h *Handler) getRecent(c *fiber.Ctx) error {
	return c.JSON(h.service.Recent(limitQuery(c, 10)))
}

func (h *Handler) getMine(c *fiber.Ctx) error {
	employeeID, err := employee.GetEmployeeIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return c.JSON(h.service.ByEmployee(employeeID))
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	ord, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
	}
	return c.JSON(ord)
}

func (h *Handler) updateOrder(c *fiber.Ctx) error {
	upd := new(Update)
	if err := c.BodyParser(upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if upd.PaymentMethod != nil && !IsAllowedPaymentMethod(*upd.PaymentMethod) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid payment method"})
	}

	ord, err := h.service.Update(c.Params("id"), *upd)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		case ErrInvalidStatus:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order status"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(ord)
}

func (h *Handler) getOpenTabs(c *fiber.Ctx) error {
	return c.JSON(h.service.OpenTabs())
}

func (h *Handler) getSalesTotal(c *fiber.Ctx) error {
	timeframe := c.Query("timeframe", TimeframeToday)
	switch timeframe {
	case TimeframeToday, TimeframeWeek, TimeframeMonth:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid timeframe"})
	}
	return c.JSON(fiber.Map{
		"timeframe": timeframe,
		"total":     h.service.TotalSales(timeframe),
	})
}

func (h *Handler) getTopProducts(c *fiber.Ctx) error {
	return c.JSON(h.service.TopProducts(limitQuery(c, 5)))
}

func (h *Handler) getDailySales(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("days", "7"))
	if err != nil || days <= 0 {
		days = 7
	}
	return c.JSON(h.service.DailySales(days))
}
