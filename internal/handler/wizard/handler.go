package wizard

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/osgbtech/screening-api/internal/handler"
	wizardservice "github.com/osgbtech/screening-api/internal/service/wizard"
	wizardcore "github.com/osgbtech/screening-api/internal/wizard"
)

type Handler struct {
	service *wizardservice.Service
}

func NewHandler(service *wizardservice.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	wizard := r.Group("/wizard")
	{
		wizard.POST("", h.Start)
		wizard.GET("/:id", h.GetSession)
		wizard.GET("/:id/picker", h.Picker)
		wizard.POST("/:id/next", h.Next)
		wizard.POST("/:id/back", h.Back)
		wizard.PUT("/:id/details", h.UpdateDetails)
		wizard.POST("/:id/search", h.Search)
		wizard.POST("/:id/toggle", h.Toggle)
		wizard.POST("/:id/vehicles", h.RegisterVehicle)
		wizard.POST("/:id/confirm", h.Confirm)
		wizard.DELETE("/:id", h.Abandon)
	}
}

func (h *Handler) Start(c *gin.Context) {
	session := h.service.Start(c.Request.Context())
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(session))
}

func (h *Handler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid session ID"))
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) GetSession(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	session, err := h.service.Get(id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(session))
}

func (h *Handler) Picker(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	options, err := h.service.Picker(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(options))
}

func (h *Handler) Next(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	session, err := h.service.Next(id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(session))
}

type backRequest struct {
	Step int `json:"step" binding:"required"`
}

func (h *Handler) Back(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req backRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	session, err := h.service.Back(id, wizardcore.Step(req.Step))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(session))
}

func (h *Handler) UpdateDetails(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req wizardservice.DetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	session, err := h.service.UpdateDetails(c.Request.Context(), id, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(session))
}

type searchRequest struct {
	Term string `json:"term"`
}

func (h *Handler) Search(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	session, err := h.service.Search(id, req.Term)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(session))
}

type toggleRequest struct {
	Resource   string    `json:"resource" binding:"required"`
	ResourceID uuid.UUID `json:"resource_id" binding:"required"`
}

func (h *Handler) Toggle(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	session, err := h.service.Toggle(id, req.Resource, req.ResourceID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(session))
}

type registerVehicleRequest struct {
	Name  string `json:"name"`
	Plate string `json:"plate"`
}

func (h *Handler) RegisterVehicle(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req registerVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	vehicle, err := h.service.RegisterVehicle(c.Request.Context(), id, req.Name, req.Plate)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(vehicle))
}

func (h *Handler) Confirm(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	screening, err := h.service.Confirm(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(screening))
}

func (h *Handler) Abandon(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	h.service.Abandon(id)
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}
