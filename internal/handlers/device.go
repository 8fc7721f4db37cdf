package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hotross/HomeMaintenanceTracker/internal/middleware"
	"github.com/hotross/HomeMaintenanceTracker/internal/service"
)

type DeviceHandler struct {
	devices *service.DeviceService
}

func NewDeviceHandler(devices *service.DeviceService) *DeviceHandler {
	return &DeviceHandler{devices: devices}
}

// Image, manual and receipt uploads live on an external storage host;
// the API only tracks their URLs.
type DeviceRequest struct {
	Name                   string     `json:"name" binding:"required,min=1,max=100"`
	Model                  string     `json:"model" binding:"omitempty,max=100"`
	Location               string     `json:"location" binding:"omitempty,max=100"`
	ImageURL               string     `json:"image_url" binding:"omitempty,url,max=500"`
	ManualURL              string     `json:"manual_url" binding:"omitempty,url,max=500"`
	ConsumablesURL         string     `json:"consumables_url" binding:"omitempty,url,max=500"`
	ReceiptURL             string     `json:"receipt_url" binding:"omitempty,url,max=500"`
	PurchaseDate           *time.Time `json:"purchase_date"`
	WarrantyExpirationDate *time.Time `json:"warranty_expiration_date"`
}

func (r *DeviceRequest) toInput() service.DeviceInput {
	return service.DeviceInput{
		Name:                   r.Name,
		Model:                  r.Model,
		Location:               r.Location,
		ImageURL:               r.ImageURL,
		ManualURL:              r.ManualURL,
		ConsumablesURL:         r.ConsumablesURL,
		ReceiptURL:             r.ReceiptURL,
		PurchaseDate:           r.PurchaseDate,
		WarrantyExpirationDate: r.WarrantyExpirationDate,
	}
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		BadRequest(c, "Invalid "+param)
		return 0, false
	}
	return uint(id), true
}

// GET /api/v1/devices
func (h *DeviceHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)

	devices, err := h.devices.List(c.Request.Context(), userID)
	if err != nil {
		ServiceError(c, err, "Device not found")
		return
	}

	Success(c, devices)
}

// POST /api/v1/devices
func (h *DeviceHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req DeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	device, err := h.devices.Create(c.Request.Context(), userID, req.toInput())
	if err != nil {
		ServiceError(c, err, "Device not found")
		return
	}

	Created(c, device)
}

// GET /api/v1/devices/:id
func (h *DeviceHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)
	deviceID, ok := parseID(c, "id")
	if !ok {
		return
	}

	device, err := h.devices.Get(c.Request.Context(), userID, deviceID)
	if err != nil {
		ServiceError(c, err, "Device not found")
		return
	}

	Success(c, device)
}

// PATCH /api/v1/devices/:id
func (h *DeviceHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	deviceID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req DeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	device, err := h.devices.Update(c.Request.Context(), userID, deviceID, req.toInput())
	if err != nil {
		ServiceError(c, err, "Device not found")
		return
	}

	Success(c, device)
}

// DELETE /api/v1/devices/:id
//
// Deleting a device takes its consumables and tasks with it.
func (h *DeviceHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	deviceID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.devices.Delete(c.Request.Context(), userID, deviceID); err != nil {
		ServiceError(c, err, "Device not found")
		return
	}

	NoContent(c)
}
