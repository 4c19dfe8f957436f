package domain

// Requirement is the capability a caller must hold for an operation to
// proceed. Admin is the only role with override power; nothing else in the
// role set is hierarchical.
type Requirement struct {
	kind   requirementKind
	target ID
}

type requirementKind int

const (
	adminOnly requirementKind = iota
	selfOrAdmin
	ownerOnly
)

// AdminOnly requires the admin role.
func AdminOnly() Requirement {
	return Requirement{kind: adminOnly}
}

// SelfOrAdmin requires the caller to be the target user, or an admin.
func SelfOrAdmin(target ID) Requirement {
	return Requirement{kind: selfOrAdmin, target: target}
}

// OwnerOnly requires the caller to be the resource owner; admins get no
// override here.
func OwnerOnly(owner ID) Requirement {
	return Requirement{kind: ownerOnly, target: owner}
}

// Authorize checks the user against the requirement and returns
// ErrForbidden when it is not met.
func Authorize(user *User, req Requirement) error {
	switch req.kind {
	case adminOnly:
		if user.HasRole(RoleAdmin) {
			return nil
		}
	case selfOrAdmin:
		if user.ID == req.target || user.HasRole(RoleAdmin) {
			return nil
		}
	case ownerOnly:
		if user.ID == req.target {
			return nil
		}
	}
	return ErrForbidden
}
