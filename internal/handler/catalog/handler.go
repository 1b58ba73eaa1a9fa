package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/osgbtech/screening-api/internal/handler"
	"github.com/osgbtech/screening-api/internal/model"
	"github.com/osgbtech/screening-api/internal/repository"
	"github.com/osgbtech/screening-api/internal/search"
)

// Handler exposes the resource catalog reads used by the wizard pickers and
// the ad-hoc equipment registration write.
type Handler struct {
	companies repository.CompanyRepository
	staff     repository.StaffRepository
	tests     repository.HealthTestRepository
	equipment repository.EquipmentRepository
	validate  *validator.Validate
}

func NewHandler(
	companies repository.CompanyRepository,
	staff repository.StaffRepository,
	tests repository.HealthTestRepository,
	equipment repository.EquipmentRepository,
) *Handler {
	return &Handler{
		companies: companies,
		staff:     staff,
		tests:     tests,
		equipment: equipment,
		validate:  validator.New(),
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	catalog := r.Group("/catalog")
	{
		catalog.GET("/companies", h.ListCompanies)
		catalog.GET("/staff", h.ListStaff)
		catalog.GET("/tests", h.ListTests)
		catalog.GET("/equipment", h.ListEquipment)
		catalog.POST("/equipment", h.CreateEquipment)
	}
}

func (h *Handler) ListCompanies(c *gin.Context) {
	companies, err := h.companies.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	filtered := search.Match(companies, c.Query("q"), func(company *model.Company) []string {
		return []string{company.Name, company.ContactName}
	})

	c.JSON(http.StatusOK, handler.NewSuccessResponse(filtered))
}

func (h *Handler) ListStaff(c *gin.Context) {
	staff, err := h.staff.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	filtered := search.Match(staff, c.Query("q"), func(member *model.Staff) []string {
		return []string{member.Name, string(member.Role)}
	})

	c.JSON(http.StatusOK, handler.NewSuccessResponse(filtered))
}

func (h *Handler) ListTests(c *gin.Context) {
	tests, err := h.tests.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	filtered := search.Match(tests, c.Query("q"), func(test *model.HealthTest) []string {
		return []string{test.Name, test.Category}
	})

	c.JSON(http.StatusOK, handler.NewSuccessResponse(filtered))
}

func (h *Handler) ListEquipment(c *gin.Context) {
	equipment, err := h.equipment.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	// The UI shows devices and vehicles on separate tabs.
	if kind := c.Query("kind"); kind != "" {
		var byKind []*model.Equipment
		for _, e := range equipment {
			if string(e.Kind) == kind {
				byKind = append(byKind, e)
			}
		}
		equipment = byKind
	}

	filtered := search.Match(equipment, c.Query("q"), func(e *model.Equipment) []string {
		return []string{e.Name, e.SerialNumber}
	})

	c.JSON(http.StatusOK, handler.NewSuccessResponse(filtered))
}

func (h *Handler) CreateEquipment(c *gin.Context) {
	var req model.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, handler.NewErrorResponse(err.Error()))
		return
	}

	equipment := &model.Equipment{
		Name:         req.Name,
		SerialNumber: req.SerialNumber,
		Kind:         req.Kind,
		Status:       model.EquipmentStatusActive,
	}
	equipment.ID = uuid.New()

	if err := h.equipment.Create(c.Request.Context(), equipment); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(equipment))
}
