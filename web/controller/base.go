// Package controller provides HTTP request handlers for the lead-ui panel:
// the login flow and the leads API.
package controller

import (
	"net/http"

	"lead-ui/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides common functionality for all controllers, including
// authentication checks.
type BaseController struct{}

// checkLogin is a middleware that verifies user authentication before any
// protected handler runs. JSON clients get a 401, browsers are redirected to
// the login page.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		if isAjax(c) || isAPIPath(c) {
			jsonError(c, http.StatusUnauthorized, "authentication required")
		} else {
			c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"login")
		}
		c.Abort()
	} else {
		c.Next()
	}
}
