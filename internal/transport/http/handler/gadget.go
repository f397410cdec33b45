package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"imf-gadget-api/internal/app"
	"imf-gadget-api/internal/model"
	"imf-gadget-api/internal/transport/http/response"
)

type GadgetHandler struct {
	gadgetService *app.GadgetService
}

type CreateGadgetRequest struct {
	Name string `json:"name"`
}

// UpdateGadgetRequest is the full patch allow-list. Unknown fields are
// rejected at decode time so callers cannot overwrite arbitrary columns.
type UpdateGadgetRequest struct {
	Name   *string             `json:"name"`
	Status *model.GadgetStatus `json:"status"`
}

func NewGadgetHandler(gadgetService *app.GadgetService) *GadgetHandler {
	return &GadgetHandler{gadgetService: gadgetService}
}

func (h *GadgetHandler) Create(c *gin.Context) {
	var req CreateGadgetRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid request body.")
			return
		}
	}

	gadget, err := h.gadgetService.Create(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, gadget)
}

func (h *GadgetHandler) List(c *gin.Context) {
	var status *model.GadgetStatus
	if raw, ok := c.GetQuery("status"); ok && raw != "" {
		s := model.GadgetStatus(raw)
		status = &s
	}

	gadgets, err := h.gadgetService.List(c.Request.Context(), status)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gadgets)
}

func (h *GadgetHandler) Update(c *gin.Context) {
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()

	var req UpdateGadgetRequest
	if err := decoder.Decode(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Patch may only set name and status.")
		return
	}

	gadget, err := h.gadgetService.Update(c.Request.Context(), c.Param("id"), app.UpdateGadgetInput{
		Name:   req.Name,
		Status: req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "Patch may only set name and status.")
		default:
			response.Error(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gadget)
}

func (h *GadgetHandler) Decommission(c *gin.Context) {
	gadget, err := h.gadgetService.Decommission(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gadget)
}

func (h *GadgetHandler) SelfDestruct(c *gin.Context) {
	result := h.gadgetService.SelfDestruct(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, result)
}
