package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeandown/listings-api/internal/core/ports"
)

// AgentHandler serves the public agent directory.
type AgentHandler struct {
	service ports.AgentService
}

func NewAgentHandler(service ports.AgentService) *AgentHandler {
	return &AgentHandler{service: service}
}

// List handles GET /api/agents.
//
// @Summary      List active agents
// @Tags         agents
// @Produce      json
// @Success      200  {array}  domain.AgentProfile
// @Router       /api/agents [get]
func (h *AgentHandler) List(c echo.Context) error {
	profiles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profiles)
}
