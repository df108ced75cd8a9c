package domain

// UserContext identifies the service provider acting on drafts and
// campaigns. The HTTP layer should construct this struct from request data
// and pass it into the usecase; every roster and wizard operation is scoped
// to UserID.
type UserContext struct {
	UserID string
}

// Valid reports whether the context names an acting user.
func (u UserContext) Valid() bool {
	return u.UserID != ""
}
