package auth

// Identity is the caller as resolved from the session cookie. The zero value
// is the anonymous caller.
type Identity struct {
	UserID    int64
	Username  string
	SessionID string
}

func (i Identity) Authenticated() bool { return i.UserID != 0 }

// Profile is the public view of a user.
type Profile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
