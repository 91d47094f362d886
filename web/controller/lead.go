package controller

import (
	"errors"
	"net/http"

	"lead-ui/database/model"
	"lead-ui/logger"
	"lead-ui/web/service"

	"github.com/gin-gonic/gin"
)

// LeadController handles the JSON API for the shared lead pool.
type LeadController struct {
	BaseController

	leadService service.LeadService
}

// NewLeadController creates a new LeadController and initializes its routes.
func NewLeadController(g *gin.RouterGroup) *LeadController {
	a := &LeadController{}
	a.initRouter(g)
	return a
}

func (a *LeadController) initRouter(g *gin.RouterGroup) {
	api := g.Group("/api")
	api.Use(a.checkLogin)

	api.GET("/leads", a.getLeads)
	api.POST("/leads", a.addLead)
}

// getLeads returns every lead, most recently created first.
func (a *LeadController) getLeads(c *gin.Context) {
	leads, err := a.leadService.GetLeads()
	if err != nil {
		logger.Warning("get leads err:", err)
		jsonError(c, http.StatusInternalServerError, "failed to load leads")
		return
	}
	c.JSON(http.StatusOK, leads)
}

// addLead validates and stores a new lead from the JSON body.
func (a *LeadController) addLead(c *gin.Context) {
	var lead model.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	lead.Id = 0

	created, err := a.leadService.AddLead(&lead)
	if err != nil {
		if errors.Is(err, service.ErrNameRequired) {
			jsonError(c, http.StatusBadRequest, "name required")
			return
		}
		logger.Warning("add lead err:", err)
		jsonError(c, http.StatusInternalServerError, "failed to save lead")
		return
	}

	c.JSON(http.StatusCreated, created)
}
