package doctor

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dermacare/booking-api/internal/service/doctor"
	"github.com/dermacare/booking-api/pkg/httputil"
)

type Handler struct {
	service *doctor.Service
}

func NewHandler(service *doctor.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/getDoctors", h.GetDoctors)
}

func (h *Handler) GetDoctors(c *gin.Context) {
	doctors, err := h.service.SearchByCity(c.Request.Context(), c.Query("city"))
	if err != nil {
		httputil.RespondWithDetail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}
