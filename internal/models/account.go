package models

// Role represents a user role in the transport system
type Role string

const (
	RoleEmployee          Role = "Employee"
	RoleDepartmentManager Role = "Department Manager"
	RoleFinanceManager    Role = "Finance Manager"
	RoleTransportManager  Role = "Transport Manager"
	RoleCEO               Role = "CEO"
	RoleDriver            Role = "Driver"
	RoleSystemAdmin       Role = "System Admin"
)

// Roles returns every assignable role in display order. Role selectors must
// offer exactly this set, regardless of the account's current role.
func Roles() []Role {
	return []Role{
		RoleEmployee,
		RoleDepartmentManager,
		RoleFinanceManager,
		RoleTransportManager,
		RoleCEO,
		RoleDriver,
		RoleSystemAdmin,
	}
}

// IsValidRole checks if a role is valid
func IsValidRole(role Role) bool {
	switch role {
	case RoleEmployee, RoleDepartmentManager, RoleFinanceManager,
		RoleTransportManager, RoleCEO, RoleDriver, RoleSystemAdmin:
		return true
	default:
		return false
	}
}

// Account represents a user account as served by the backend. The backend owns
// the schema; this mirrors the fields the admin surfaces actually read.
type Account struct {
	ID         int    `json:"id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone_number"`
	Role       Role   `json:"role"`
	Department string `json:"department"`
	IsActive   bool   `json:"is_active"`
}

// Pending reports whether the account still awaits an approval decision.
// The active flag is flipped server-side by an approve transition.
func (a *Account) Pending() bool {
	return !a.IsActive
}

// Department represents an organizational department
type Department struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
