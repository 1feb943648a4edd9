package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/roadmap/api/http/presenter"
	"github.com/artem13815/roadmap/pkg/logger"
	"github.com/artem13815/roadmap/pkg/roadmap"
)

const maxTargetLen = 200

type RoadmapHandler struct {
	svc roadmap.UseCase
	log *logger.Logger
}

func NewRoadmapHandler(svc roadmap.UseCase, log *logger.Logger) *RoadmapHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &RoadmapHandler{svc: svc, log: log}
}

type generateRequest struct {
	Target string `json:"target" form:"target"`
}

type generateResponse struct {
	Target  string          `json:"target"`
	Roadmap roadmap.Roadmap `json:"roadmap"`
}

func checkTarget(target string) string {
	switch {
	case strings.TrimSpace(target) == "":
		return "target is required"
	case len(target) > maxTargetLen:
		return "target is too long"
	default:
		return ""
	}
}

// Page renders the empty form.
func (h *RoadmapHandler) Page(c *fiber.Ctx) error {
	return presenter.Page(c, http.StatusOK, presenter.Idle())
}

// Submit handles the HTML form post and renders the resulting view.
// Generation failures are part of the page, so the status stays 200.
func (h *RoadmapHandler) Submit(c *fiber.Ctx) error {
	var req generateRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Page(c, http.StatusBadRequest, presenter.Failed("", "invalid form payload"))
	}
	form := presenter.NewForm(h.svc, func(v presenter.View) {
		h.log.Debug("roadmap form transition", "phase", v.Phase().String(), "target", v.Target())
	})
	if msg := checkTarget(req.Target); msg != "" {
		return presenter.Page(c, http.StatusOK, form.Reject(req.Target, msg))
	}
	return presenter.Page(c, http.StatusOK, form.Submit(c.UserContext(), req.Target))
}

// Generate builds a learning roadmap for the requested technology.
// @Summary Generate learning roadmap
// @Description Asks the language model for 5 prerequisites, 5 learning steps and 3 resources for the given technology.
// @Tags    roadmap
// @Accept  json
// @Produce json
// @Param   input body generateRequest true "target technology"
// @Success 200 {object} generateResponse
// @Failure 400 {object} presenter.ErrorResponse "Missing or invalid target"
// @Failure 502 {object} presenter.ErrorResponse "Model unreachable or returned an invalid roadmap"
// @Router  /roadmap [post]
func (h *RoadmapHandler) Generate(c *fiber.Ctx) error {
	var req generateRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if msg := checkTarget(req.Target); msg != "" {
		return presenter.Error(c, http.StatusBadRequest, msg)
	}

	rm, err := h.svc.Generate(c.UserContext(), req.Target)
	if err != nil {
		kind := roadmap.Kind(err)
		if kind == "" {
			return presenter.Error(c, http.StatusInternalServerError, "failed to generate roadmap")
		}
		return presenter.ErrorKind(c, http.StatusBadGateway, roadmap.DisplayMessage(err), kind)
	}
	return presenter.JSON(c, http.StatusOK, generateResponse{Target: req.Target, Roadmap: rm})
}
