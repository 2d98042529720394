package employee

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type Handler struct {
	service *Service
}

type loginRequest struct {
	PIN string `json:"pin"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/sign-in", h.login)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/employees", h.getEmployees)
	app.Get("/api/v1/profile", h.getProfile)
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	emp, err := h.service.Authenticate(payload.PIN)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid PIN"})
	}

	claims := jwt.MapClaims{
		"employee_id": emp.ID,
		"role":        emp.Role,
		"exp":         time.Now().Add(12 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"message":  "Login successful",
		"employee": emp,
		"token":    signed,
	})
}

func (h *Handler) getEmployees(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

// getProfile returns the employee record for the current session, read
// from the JWT claims.
func (h *Handler) getProfile(c *fiber.Ctx) error {
	employeeID, err := GetEmployeeIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	emp, err := h.service.GetByID(employeeID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "employee not found"})
	}
	return c.JSON(emp)
}

// GetEmployeeIDFromCtx extracts the employee_id claim placed in the
// request context by the JWT middleware.
func GetEmployeeIDFromCtx(c *fiber.Ctx) (string, error) {
	u := c.Locals("user")
	if u == nil {
		return "", fiber.ErrUnauthorized
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	if raw, ok := claims["employee_id"]; ok {
		if id, ok := raw.(string); ok && id != "" {
			return id, nil
		}
	}
	return "", fiber.ErrUnauthorized
}
