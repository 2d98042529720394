package currency

import "github.com/gofiber/fiber/v2"

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/currencies", h.getCurrencies)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Put("/api/v1/currency", h.setCurrency)
}

func (h *Handler) getCurrencies(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"currencies": h.store.List(),
		"current":    h.store.Current(),
	})
}

type setCurrencyRequest struct {
	Code string `json:"code"`
}

func (h *Handler) setCurrency(c *fiber.Ctx) error {
	payload := new(setCurrencyRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	cur, err := h.store.SetCurrent(payload.Code)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "currency not found"})
	}
	return c.JSON(cur)
}
