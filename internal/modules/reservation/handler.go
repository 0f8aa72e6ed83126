package reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salonbook/internal/domain"
	"salonbook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the endpoints available without a token.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/reservations/available-slots", h.GetAvailableSlots)
}

// RegisterRoutes mounts the endpoints that require authentication.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reservations", h.GetMyReservations)
	rg.POST("/reservations", h.CreateReservation)
	rg.PUT("/reservations/:id", h.UpdateReservation)
	rg.DELETE("/reservations/:id", h.DeleteReservation)
}

// RegisterAdminRoutes mounts the admin-only endpoints.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/reservations/all", h.GetAllReservations)
}

func (h *Handler) GetMyReservations(c *gin.Context) {
	rows, err := h.service.ListForUser(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) GetAllReservations(c *gin.Context) {
	rows, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) GetAvailableSlots(c *gin.Context) {
	salonID, err := strconv.ParseInt(c.Query("salon_id"), 10, 64)
	if err != nil || c.Query("date") == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "salon_id and date are required")
		return
	}

	res, err := h.service.AvailableSlots(c.Request.Context(), salonID, c.Query("date"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) CreateReservation(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Salon, service type, date and time are required")
		return
	}
	req.UserID = c.GetInt64("user_id")

	r, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"reservation": r})
}

func (h *Handler) UpdateReservation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, err := h.service.Update(c.Request.Context(), id, req, c.GetInt64("user_id"), h.isAdmin(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": r})
}

func (h *Handler) DeleteReservation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, c.GetInt64("user_id"), h.isAdmin(c)); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) isAdmin(c *gin.Context) bool {
	return c.GetString("role") == string(domain.RoleAdmin)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reservation data")
	case errors.Is(err, ErrSalonNotFound):
		response.Error(c, http.StatusNotFound, "SALON_NOT_FOUND", "Salon not found")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, "RESERVATION_CONFLICT", "This time slot is already booked")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
