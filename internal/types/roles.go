package types

// Role is a capability granted to an account in the access registry.
// Proposing or approving a slash requires RoleValidator; role management,
// timelock scheduling and guarded parameter changes require RoleAdmin.
type Role string

const (
	RoleValidator Role = "validator"
	RoleAdmin     Role = "admin"
)

func (r Role) ToString() string {
	return string(r)
}

func RoleFromString(s string) Role {
	switch s {
	case RoleValidator.ToString():
		return RoleValidator
	case RoleAdmin.ToString():
		return RoleAdmin
	default:
		return ""
	}
}
