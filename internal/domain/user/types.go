package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleUser       Role = "user"
	RoleOwner      Role = "owner"
	RoleSuperAdmin Role = "super_admin"
)

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleOwner, RoleSuperAdmin:
		return true
	default:
		return false
	}
}
