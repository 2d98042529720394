package catalog

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
	// defaults restores the demo catalog on POST /products/reset
	defaults []Product
}

func NewHandler(service *Service, defaults []Product) *Handler {
	return &Handler{service: service, defaults: defaults}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/api/v1/products/low-stock", h.getLowStock)
	app.Get("/api/v1/product/:id", h.getProduct)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/products", h.createProduct)
	app.Put("/api/v1/product/:id", h.updateProduct)
	app.Delete("/api/v1/product/:id", h.deleteProduct)
	app.Put("/api/v1/product/:id/stock", h.updateStock)
	app.Post("/api/v1/products/reset", h.resetProducts)
}

// resetProducts restores the default demo catalog.
func (h *Handler) resetProducts(c *fiber.Ctx) error {
	if err := h.service.ResetProducts(h.defaults); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(h.service.List())
}

// getProducts lists the catalog. `search` and `category` query parameters
// narrow the listing and compose when both are present.
func (h *Handler) getProducts(c *fiber.Ctx) error {
	term := c.Query("search")
	category := c.Query("category")
	if category != "" && !IsAllowedCategory(category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid category"})
	}
	return c.JSON(h.service.Search(term, category))
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	p, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}
	return c.JSON(p)
}

func (h *Handler) getLowStock(c *fiber.Ctx) error {
	return c.JSON(h.service.LowStock())
}

func validateProductPayload(p *Product) map[string]string {
	errs := map[string]string{}
	if p.Name == "" {
		errs["name"] = "name is required"
	}
	if !IsAllowedCategory(p.Category) {
		errs["category"] = "invalid category"
	}
	if p.Price < 0 {
		errs["price"] = "price must be >= 0"
	}
	if p.Cost < 0 {
		errs["cost"] = "cost must be >= 0"
	}
	if p.Stock < 0 {
		errs["stock"] = "stock must be >= 0"
	}
	if p.ABV < 0 {
		errs["abv"] = "abv must be >= 0"
	}
	return errs
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	p := new(Product)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	// validate payload and return all validation errors together
	if ves := validateProductPayload(p); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	created, err := h.service.Create(*p)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	p := new(Product)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if ves := validateProductPayload(p); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	updated, err := h.service.Update(c.Params("id"), *p)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}
	return c.JSON(updated)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}
	return c.SendString("Product deleted")
}

type stockRequest struct {
	Stock *int `json:"stock"`
}

// updateStock sets an absolute stock value; callers compute the delta.
func (h *Handler) updateStock(c *fiber.Ctx) error {
	payload := new(stockRequest)
	if err := c.BodyParser(payload); err != nil {
		// also accept ?stock= for quick manual edits
		if v, convErr := strconv.Atoi(c.Query("stock", "x")); convErr == nil {
			payload.Stock = &v
		} else {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
	}
	if payload.Stock == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "stock is required"})
	}

	updated, err := h.service.UpdateStock(c.Params("id"), *payload.Stock)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		case ErrInvalidStock:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "stock must be >= 0"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(updated)
}
