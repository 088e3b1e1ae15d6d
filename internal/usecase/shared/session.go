package shared

// AuthContext is the explicit session context passed to every
// authenticated operation. It is rebuilt from the token slot on each
// request, never cached at startup, since the token's validity can
// change out of band (expiry, logout elsewhere).
type AuthContext struct {
	Token string
}

func (a AuthContext) Authenticated() bool {
	return a.Token != ""
}
