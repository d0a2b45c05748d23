package booking

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dermacare/booking-api/internal/middleware"
	"github.com/dermacare/booking-api/internal/model"
	"github.com/dermacare/booking-api/internal/service/appointment"
	"github.com/dermacare/booking-api/pkg/httputil"
)

// Handler serves the scheduling endpoints the mobile clients call. Error
// payloads use the `{"detail": ...}` shape those clients parse.
type Handler struct {
	service *appointment.Service
}

func NewHandler(service *appointment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/bookAppointment", h.BookAppointment)
	r.GET("/getAvailableSlots", h.GetAvailableSlots)
	r.GET("/getAppointments", h.GetAppointments)
	r.DELETE("/cancelAppointment", h.CancelAppointment)
}

func (h *Handler) BookAppointment(c *gin.Context) {
	var req model.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	conf, err := h.service.Book(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithDetail(c, err)
		return
	}

	c.JSON(http.StatusOK, conf)
}

func (h *Handler) GetAvailableSlots(c *gin.Context) {
	doctorID, err := strconv.ParseInt(c.Query("doctor_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid doctor_id"})
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Date parameter is required"})
		return
	}

	slots, err := h.service.BookedSlots(c.Request.Context(), doctorID, date)
	if err != nil {
		httputil.RespondWithDetail(c, err)
		return
	}

	c.JSON(http.StatusOK, model.BookedSlotsResponse{BookedSlots: slots})
}

func (h *Handler) GetAppointments(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		// Fall back to the signed-in identity when no email was passed.
		email = middleware.PatientEmail(c)
	}
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Email parameter is required"})
		return
	}

	list, err := h.service.ListForPatient(c.Request.Context(), email)
	if err != nil {
		httputil.RespondWithDetail(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) CancelAppointment(c *gin.Context) {
	appointmentID, err := strconv.ParseInt(c.Query("appointment_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid appointment_id"})
		return
	}

	message, err := h.service.Cancel(c.Request.Context(), appointmentID)
	if err != nil {
		httputil.RespondWithDetail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}
