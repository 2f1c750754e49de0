package model

import "strings"

// Role represents a user category that selects a dashboard
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleManager      Role = "manager"
	RoleCoordinator  Role = "coordinator"
	RoleStocktaker   Role = "stocktaker"
	RoleScanner      Role = "scanner"
	RoleGroupLeader  Role = "groupleader"
	RoleReceptionist Role = "receptionist"
	RoleClient       Role = "client"
)

// AllRoles returns every role in login picker order
func AllRoles() []Role {
	return []Role{
		RoleAdmin,
		RoleManager,
		RoleCoordinator,
		RoleStocktaker,
		RoleScanner,
		RoleGroupLeader,
		RoleReceptionist,
		RoleClient,
	}
}

// ParseRole matches s exactly against the known roles
func ParseRole(s string) (Role, bool) {
	for _, r := range AllRoles() {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// Label returns the picker display name (e.g. "Group Leader")
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleManager:
		return "Manager"
	case RoleCoordinator:
		return "Coordinator"
	case RoleStocktaker:
		return "Stocktaker"
	case RoleScanner:
		return "Scanner"
	case RoleGroupLeader:
		return "Group Leader"
	case RoleReceptionist:
		return "Receptionist"
	case RoleClient:
		return "Client"
	default:
		return string(r)
	}
}

// Title capitalises the first letter of the raw role, as shown on badges
func (r Role) Title() string {
	if r == "" {
		return ""
	}
	s := string(r)
	return strings.ToUpper(s[:1]) + s[1:]
}

// DemoCredential is a prefilled login shown on the login screen
type DemoCredential struct {
	Role     Role
	Code     string
	Password string
}

// DemoCredentials returns the demo logins in display order
func DemoCredentials() []DemoCredential {
	return []DemoCredential{
		{Role: RoleAdmin, Code: "ADM-00000001", Password: "admin123"},
		{Role: RoleManager, Code: "MGR-00000022", Password: "manager123"},
		{Role: RoleStocktaker, Code: "STK-123456790", Password: "stock123"},
		{Role: RoleScanner, Code: "SCN-098765432", Password: "scan123"},
		{Role: RoleCoordinator, Code: "CRD-001122334", Password: "coord123"},
		{Role: RoleGroupLeader, Code: "STK-345678901", Password: "lead123"},
		{Role: RoleReceptionist, Code: "RCP-555666777", Password: "receive123"},
		{Role: RoleClient, Code: "CLT-000000001", Password: "client123"},
	}
}
