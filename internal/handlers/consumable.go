package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hotross/HomeMaintenanceTracker/internal/middleware"
	"github.com/hotross/HomeMaintenanceTracker/internal/service"
)

type ConsumableHandler struct {
	consumables *service.ConsumableService
}

func NewConsumableHandler(consumables *service.ConsumableService) *ConsumableHandler {
	return &ConsumableHandler{consumables: consumables}
}

type ConsumableRequest struct {
	Name            string  `json:"name" binding:"required,min=1,max=100"`
	Description     string  `json:"description" binding:"omitempty,max=500"`
	StorageLocation string  `json:"storage_location" binding:"omitempty,max=100"`
	URL             string  `json:"url" binding:"omitempty,url,max=500"`
	Cost            float64 `json:"cost" binding:"omitempty,min=0"`
}

func (r *ConsumableRequest) toInput() service.ConsumableInput {
	return service.ConsumableInput{
		Name:            r.Name,
		Description:     r.Description,
		StorageLocation: r.StorageLocation,
		URL:             r.URL,
		Cost:            r.Cost,
	}
}

// GET /api/v1/devices/:id/consumables
func (h *ConsumableHandler) ListByDevice(c *gin.Context) {
	userID := middleware.GetUserID(c)
	deviceID, ok := parseID(c, "id")
	if !ok {
		return
	}

	consumables, err := h.consumables.ListByDevice(c.Request.Context(), userID, deviceID)
	if err != nil {
		ServiceError(c, err, "Device not found")
		return
	}

	Success(c, consumables)
}

// POST /api/v1/devices/:id/consumables
func (h *ConsumableHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	deviceID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req ConsumableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	consumable, err := h.consumables.Create(c.Request.Context(), userID, deviceID, req.toInput())
	if err != nil {
		ServiceError(c, err, "Device not found")
		return
	}

	Created(c, consumable)
}

// PATCH /api/v1/consumables/:id
func (h *ConsumableHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	consumableID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req ConsumableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	consumable, err := h.consumables.Update(c.Request.Context(), userID, consumableID, req.toInput())
	if err != nil {
		ServiceError(c, err, "Consumable not found")
		return
	}

	Success(c, consumable)
}

// DELETE /api/v1/consumables/:id
func (h *ConsumableHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	consumableID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.consumables.Delete(c.Request.Context(), userID, consumableID); err != nil {
		ServiceError(c, err, "Consumable not found")
		return
	}

	NoContent(c)
}
