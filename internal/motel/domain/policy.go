package domain

// Identity is what the identity provider vouches for: a subject plus the
// profile fields carried in the token. A nil *Identity means the caller is
// anonymous.
type Identity struct {
	Subject UserID
	Name    string
	Email   string
}

// Actor is a resolved caller: the token subject combined with the role
// stored on the user record. The role never comes from the token itself.
type Actor struct {
	Subject UserID
	Role    Role
}

// IsAdmin gates admin-only reads and status transitions.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanMutate reports whether the actor may change or delete the motel:
// the owner always can, regardless of role, and so can any admin.
func (a Actor) CanMutate(m *Motel) bool {
	return m.OwnerID == a.Subject || a.IsAdmin()
}
