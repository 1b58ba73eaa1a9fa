package screening

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/osgbtech/screening-api/internal/handler"
	"github.com/osgbtech/screening-api/internal/model"
	"github.com/osgbtech/screening-api/internal/service/appointment"
	"github.com/osgbtech/screening-api/internal/service/document"
)

type Handler struct {
	service *appointment.Service
}

func NewHandler(service *appointment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	screenings := r.Group("/screenings")
	{
		screenings.GET("", h.ListScreenings)
		screenings.GET("/:id", h.GetScreening)
		screenings.PUT("/:id", h.UpdateScreening)
		screenings.PATCH("/:id/status", h.UpdateStatus)
		screenings.DELETE("/:id", h.DeleteScreening)
		screenings.POST("/:id/notify", h.NotifyStaff)
		screenings.POST("/:id/documents", h.RequestDocument)
	}
}

func (h *Handler) ListScreenings(c *gin.Context) {
	filters := &model.AppointmentFilters{}

	if id := c.Query("company_id"); id != "" {
		companyID, err := uuid.Parse(id)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid company ID"))
			return
		}
		filters.CompanyID = companyID
	}

	if status := c.Query("status"); status != "" {
		filters.Status = model.AppointmentStatus(status)
	}

	if date := c.Query("start_date"); date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid start date"))
			return
		}
		filters.StartDate = parsed
	}

	if date := c.Query("end_date"); date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid end date"))
			return
		}
		filters.EndDate = parsed
	}

	screenings, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(screenings))
}

func (h *Handler) GetScreening(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid screening ID"))
		return
	}

	screening, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(screening))
}

func (h *Handler) UpdateScreening(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid screening ID"))
		return
	}

	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	screening, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(screening))
}

type updateStatusRequest struct {
	Status model.AppointmentStatus `json:"status" binding:"required"`
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid screening ID"))
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	screening, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(screening))
}

func (h *Handler) DeleteScreening(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid screening ID"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

type notifyRequest struct {
	StaffIDs []uuid.UUID `json:"staff_ids"`
	Template string      `json:"template"`
}

func (h *Handler) NotifyStaff(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid screening ID"))
		return
	}

	var req notifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	result, err := h.service.Notify(c.Request.Context(), id, req.StaffIDs, req.Template)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}

type documentRequest struct {
	Kind document.Kind `json:"kind" binding:"required"`
}

func (h *Handler) RequestDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid screening ID"))
		return
	}

	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if err := h.service.RequestDocument(c.Request.Context(), id, req.Kind); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, handler.NewSuccessResponse(gin.H{"kind": req.Kind}))
}
