package domain

type Role string

const (
	RoleClient   Role = "CLIENT"
	RoleProvider Role = "PROVIDER"
	RoleOperator Role = "OPERATOR"
)

func ValidRole(r Role) bool {
	return r == RoleClient || r == RoleProvider || r == RoleOperator
}

// Actor is the authenticated caller of every entry point. The identity
// service itself lives outside this core.
type Actor struct {
	ID   string
	Role Role
}
