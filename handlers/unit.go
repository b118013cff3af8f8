package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	unitRepo "storely/database/repository/unit"
	"storely/models"
	"storely/utils"
)

// UnitHandler exposes storage-unit listings over HTTP.
type UnitHandler struct {
	Repo unitRepo.UnitRepository
}

// NewUnitHandler creates a UnitHandler.
func NewUnitHandler(repo unitRepo.UnitRepository) *UnitHandler {
	return &UnitHandler{Repo: repo}
}

// CreateUnit lists a new storage unit for the authenticated host.
func (h *UnitHandler) CreateUnit(c *gin.Context) {
	var input struct {
		Title       string  `json:"title"`
		Address     string  `json:"address"`
		SizeSqm     float64 `json:"sizeSqm"`
		PricePerDay float64 `json:"pricePerDay"`
		Currency    string  `json:"currency"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Title == "" || input.PricePerDay <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "title and a positive pricePerDay are required")
		return
	}

	unit := &models.StorageUnit{
		ID:          uuid.New().String(),
		HostID:      c.GetString("userID"),
		Title:       input.Title,
		Address:     input.Address,
		SizeSqm:     input.SizeSqm,
		PricePerDay: input.PricePerDay,
		Currency:    input.Currency,
	}
	if err := h.Repo.Create(unit); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create unit", err.Error())
		return
	}
	c.JSON(http.StatusCreated, unit)
}

// GetUnit returns one storage unit.
func (h *UnitHandler) GetUnit(c *gin.Context) {
	unit, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch unit", err.Error())
		return
	}
	if unit == nil {
		utils.JSONError(c, http.StatusNotFound, "unit not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, unit)
}

// ListUnits returns all storage units, optionally narrowed to one host.
func (h *UnitHandler) ListUnits(c *gin.Context) {
	var (
		units []models.StorageUnit
		err   error
	)
	if hostID := c.Query("hostId"); hostID != "" {
		units, err = h.Repo.GetByHost(hostID)
	} else {
		units, err = h.Repo.GetAll()
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list units", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"units": units})
}
