package employee

// Employee is a staff member who can sign in to a register with a PIN.
type Employee struct {
	ID    string `json:"employeeId"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	PIN   string `json:"-"`
	Email string `json:"email,omitempty"`
}

// Roles an employee can hold. Role gates nothing in the demo beyond what
// the register UI chooses to show.
const (
	RoleAdmin     = "admin"
	RoleManager   = "manager"
	RoleCashier   = "cashier"
	RoleBartender = "bartender"
)
