package entity

// Role is the user's role tag. Authorization is a plain string-equality
// check against these values, not a structured permission model.
type Role string

const (
	RoleAdopter Role = "adopter"
	RoleBreeder Role = "breeder"
	RoleAdmin   Role = "admin"
)

// ParseRole maps a request-supplied role string to a known Role,
// falling back to RoleAdopter when the input is empty or unknown.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleBreeder:
		return RoleBreeder
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleAdopter
	}
}

func (r Role) String() string {
	return string(r)
}
