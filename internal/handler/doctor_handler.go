package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/deExistent98/clinic-booking/internal/model"
	"github.com/deExistent98/clinic-booking/internal/repository"
)

type DoctorHandler struct {
	repo repository.DoctorRepository
}

func NewDoctorHandler(repo repository.DoctorRepository) *DoctorHandler {
	return &DoctorHandler{repo: repo}
}

func RegisterDoctorRoutes(api *gin.RouterGroup, h *DoctorHandler) {
	api.GET("/doctors", h.List)
	api.GET("/doctors/:id", h.Get)
	api.POST("/doctors", h.Create)
	api.PUT("/doctors/:id", h.Update)
	api.DELETE("/doctors/:id", h.Delete)
}

// Поля врача не валидируются: схема их не требует.
type doctorRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Specialty    string `json:"specialty"`
	Availability string `json:"availability"`
}

func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	respondList(c, doctors)
}

func (h *DoctorHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	doctor, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *DoctorHandler) Create(c *gin.Context) {
	var req doctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctor := &model.Doctor{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Specialty:    req.Specialty,
		Availability: req.Availability,
	}

	if err := h.repo.Create(c.Request.Context(), doctor); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *DoctorHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req doctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctor, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	doctor.FirstName = req.FirstName
	doctor.LastName = req.LastName
	doctor.Specialty = req.Specialty
	doctor.Availability = req.Availability

	if err := h.repo.Update(c.Request.Context(), doctor); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *DoctorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if _, err := h.repo.GetByID(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DoctorHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	log.Printf("doctor handler: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
