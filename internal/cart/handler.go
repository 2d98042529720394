package cart

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mvandermerwe/liquor-pos-backend/internal/catalog"
	"github.com/mvandermerwe/liquor-pos-backend/internal/employee"
)

// Handler exposes the current employee's cart over HTTP. It needs the
// catalog to snapshot product details when a line is added.
type Handler struct {
	store   *Store
	catalog catalog.ServiceInterface
}

func NewHandler(store *Store, cs catalog.ServiceInterface) *Handler {
	return &Handler{store: store, catalog: cs}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Delete("/api/v1/cart", h.clearCart)
	app.Post("/api/v1/cart/items", h.addItem)
	app.Put("/api/v1/cart/items/:productId", h.updateQuantity)
	app.Delete("/api/v1/cart/items/:productId", h.removeItem)
	app.Post("/api/v1/cart/verify-age", h.verifyAge)
	app.Put("/api/v1/cart/tab-name", h.setTabName)
}

// cartResponse pairs the cart with its computed totals so the register UI
// never recomputes prices client-side.
type cartResponse struct {
	Cart     Cart    `json:"cart"`
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
	// HasAlcohol lets the register prompt for an ID scan as soon as an
	// alcoholic line lands in the cart.
	HasAlcohol bool `json:"hasAlcohol"`
}

func respond(c *fiber.Ctx, crt Cart) error {
	return c.JSON(cartResponse{
		Cart:       crt,
		Subtotal:   crt.Subtotal(),
		Tax:        crt.Tax(),
		Total:      crt.Total(),
		HasAlcohol: crt.RequiresAgeCheck(),
	})
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	employeeID, err := employee.GetEmployeeIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return respond(c, h.store.Get(employeeID))
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity,omitempty"`
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "productId is required"})
	}

	employeeID, err := employee.GetEmployeeIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	p, err := h.catalog.GetByID(payload.ProductID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}

	crt := h.store.AddItem(employeeID, Item{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ABV:       p.ABV,
		Quantity:  payload.Quantity,
	})
	return respond(c, crt)
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateQuantity(c *fiber.Ctx) error {
	payload := new(quantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	employeeID, err := employee.GetEmployeeIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	crt, err := h.store.UpdateQuantity(employeeID, c.Params("productId"), payload.Quantity)
	if err == ErrItemNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "cart item not found"})
	}
	return respond(c, crt)
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	employeeID, err := employee.GetEmployeeIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return respond(c, h.store.RemoveItem(employeeID, c.Params("productId")))
}

type verifyAgeRequest struct {
	Age int `json:"age"`
}

func (h *Handler) verifyAge(c *fiber.Ctx) error {
	payload := new(verifyAgeRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Age <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "age must be positive"})
	}

	employeeID, err := employee.GetEmployeeIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	crt := h.store.VerifyAge(employeeID, payload.Age)
	// an under-age entry is a valid, non-verified outcome; report it as such
	return c.JSON(fiber.Map{
		"ageVerified": crt.AgeVerified,
		"customerAge": crt.CustomerAge,
	})
}

type tabNameRequest struct {
	TabName string `json:"tabName"`
}

func (h *Handler) setTabName(c *fiber.Ctx) error {
	payload := new(tabNameRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	employeeID, err := employee.GetEmployeeIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return respond(c, h.store.SetTabName(employeeID, payload.TabName))
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	employeeID, err := employee.GetEmployeeIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	h.store.Clear(employeeID)
	return c.SendStatus(fiber.StatusNoContent)
}
