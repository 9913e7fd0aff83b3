package model

import "fmt"

const AccessRoleCollection = "access_roles"

// AccessRoleDocument grants one capability role to one account.
type AccessRoleDocument struct {
	RoleID         string `bson:"_id"` // Primary key, role:account composite
	Role           string `bson:"role"`
	AccountAddress string `bson:"account_address"`
	GrantedAt      int64  `bson:"granted_at"`
}

func BuildAccessRoleID(role, accountAddress string) string {
	return fmt.Sprintf("%s:%s", role, accountAddress)
}
