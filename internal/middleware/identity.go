package middleware

import "github.com/gin-gonic/gin"

const identityKey = "identity"

// Identity is the authenticated caller as asserted by the token claims.
// Role ADMIN corresponds to staff, IsSeller gates catalog writes.
type Identity struct {
	UserID   int64
	Email    string
	Role     string
	IsSeller bool
}

func (i *Identity) IsAdmin() bool {
	return i.Role == "ADMIN"
}

// IdentityFrom returns the caller identity set by AuthRequired/AuthOptional.
func IdentityFrom(c *gin.Context) (*Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	ident, ok := v.(*Identity)
	return ident, ok
}

func setIdentity(c *gin.Context, ident *Identity) {
	c.Set(identityKey, ident)
}
