package session

import "golang-food-storefront/internal/models"

// ViewClass is the surface a session may see. Exactly one class is in effect
// at any time; transitions happen only at login, registration and logout.
type ViewClass int

const (
	Anonymous ViewClass = iota
	AuthenticatedUser
	Admin
)

func (v ViewClass) String() string {
	switch v {
	case AuthenticatedUser:
		return "user"
	case Admin:
		return "admin"
	default:
		return "anonymous"
	}
}

// RouteTag classifies a storefront route.
type RouteTag int

const (
	Public RouteTag = iota
	UserProtected
	AdminProtected
)

// CanAccess implements the gating rule: user-protected routes are reachable
// from AuthenticatedUser and Admin, admin-protected routes from Admin only.
func (v ViewClass) CanAccess(tag RouteTag) bool {
	switch tag {
	case UserProtected:
		return v == AuthenticatedUser || v == Admin
	case AdminProtected:
		return v == Admin
	default:
		return true
	}
}

// ClassForRole maps the role reported by the platform onto a view class.
// Anything that is not admin is a regular user.
func ClassForRole(role string) ViewClass {
	if role == models.RoleAdmin {
		return Admin
	}
	return AuthenticatedUser
}
