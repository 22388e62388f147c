package middleware

import (
	"crypto/subtle"

	"github.com/siherrmann/jobSchema/model"
	"github.com/siherrmann/jobSchema/schema"

	"github.com/labstack/echo/v4"
)

// RequestContextMiddleware stores the request url and the field permissions
// of the caller in the request context.
func (r *Middleware) RequestContextMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rc := model.GetRequestContext(c)

		rc.Url = c.Request().URL.Path
		rc.Admin = r.isAdmin(c.Request().Header.Get(HEADER_ADMIN))
		if rc.Admin {
			rc.Permissions = schema.AllowAll{}
		} else {
			rc.Permissions = r.restricted
		}

		model.SetRequestContext(c, rc)

		return next(c)
	}
}

func (r *Middleware) isAdmin(token string) bool {
	if r.adminToken == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(r.adminToken)) == 1
}
