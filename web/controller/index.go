package controller

import (
	"net/http"
	"text/template"

	"lead-ui/logger"
	"lead-ui/web/service"
	"lead-ui/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the login request structure.
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// IndexController handles the index page and login-related routes.
type IndexController struct {
	BaseController

	settingService service.SettingService
	userService    service.UserService
}

// NewIndexController creates a new IndexController and initializes its routes.
func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/login", a.loginPage)
	g.GET("/logout", a.logout)

	g.POST("/login", a.login)
}

// index shows the lead table for logged-in users and sends everyone else to
// the login page.
func (a *IndexController) index(c *gin.Context) {
	user := session.GetLoginUser(c)
	if user == nil {
		c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"login")
		return
	}
	html(c, "index.html", "Leads", gin.H{
		"user": user.Username,
	})
}

// loginPage renders the login form, redirecting users that already hold a
// session.
func (a *IndexController) loginPage(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path"))
		return
	}
	html(c, "login.html", "Login", nil)
}

// login handles credential verification and session creation. Unknown user
// and wrong password produce the same response.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm

	if err := c.ShouldBind(&form); err != nil {
		html(c, "login.html", "Login", gin.H{"error": "Invalid credentials"})
		return
	}

	user := a.userService.CheckUser(form.Username, form.Password)
	safeUser := template.HTMLEscapeString(form.Username)

	if user == nil {
		logger.Warningf("wrong credentials for username: \"%s\", IP: \"%s\"", safeUser, getRemoteIp(c))
		html(c, "login.html", "Login", gin.H{
			"error":    "Invalid credentials",
			"username": form.Username,
		})
		return
	}

	sessionMaxAge, err := a.settingService.GetSessionMaxAge()
	if err != nil {
		logger.Warning("Unable to get session's max age from DB")
	}

	if err := session.SetMaxAge(c, sessionMaxAge*60); err != nil {
		logger.Warning("Unable to set session's max age:", err)
	}
	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("Unable to save session:", err)
	}

	logger.Infof("%s logged in successfully, IP: %s", safeUser, getRemoteIp(c))
	c.Redirect(http.StatusFound, c.GetString("base_path"))
}

// logout clears the session and redirects to the login page. Logging out
// without a session is a no-op.
func (a *IndexController) logout(c *gin.Context) {
	user := session.GetLoginUser(c)
	if user != nil {
		logger.Infof("%s logged out successfully", user.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("Unable to clear session:", err)
	}
	c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"login")
}
