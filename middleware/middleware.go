package middleware

import (
	"github.com/siherrmann/jobSchema/schema"
)

// HEADER_ADMIN carries the admin token. Requests presenting the configured
// token see every field.
const HEADER_ADMIN = "X-Jobs-Admin"

type Middleware struct {
	adminToken string
	restricted schema.DenyFields
}

// NewMiddleware creates the middleware. restrictedFields are hidden from
// callers that are not administrators. An empty adminToken disables admin
// access, every caller is then restricted.
func NewMiddleware(adminToken string, restrictedFields ...string) *Middleware {
	return &Middleware{
		adminToken: adminToken,
		restricted: schema.NewDenyFields(restrictedFields...),
	}
}
