package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	userRepo "storely/database/repository/user"
	"storely/models"
	"storely/utils"
)

// UserHandler exposes the minimal user surface the booking core needs:
// account records and their payment-provider references.
type UserHandler struct {
	Repo userRepo.UserRepository
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(repo userRepo.UserRepository) *UserHandler {
	return &UserHandler{Repo: repo}
}

// CreateUser registers a user record with a role discriminator.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Role != models.RoleRenter && input.Role != models.RoleHost {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "role must be renter or host")
		return
	}

	user := &models.User{
		ID:    uuid.New().String(),
		Name:  input.Name,
		Email: input.Email,
		Role:  input.Role,
	}
	switch input.Role {
	case models.RoleRenter:
		user.Renter = &models.RenterProfile{}
	case models.RoleHost:
		user.Host = &models.HostProfile{}
	}

	if err := h.Repo.Create(user); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create user", err.Error())
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetUser returns one user record.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch user", err.Error())
		return
	}
	if user == nil {
		utils.JSONError(c, http.StatusNotFound, "user not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateBilling records the user's payment-provider identifiers once
// onboarding with the processor completed.
func (h *UserHandler) UpdateBilling(c *gin.Context) {
	var input struct {
		StripeCustomerID string `json:"stripeCustomerId"`
		StripeAccountID  string `json:"stripeAccountId"`
		PayoutsEnabled   bool   `json:"payoutsEnabled"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	user, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch user", err.Error())
		return
	}
	if user == nil {
		utils.JSONError(c, http.StatusNotFound, "user not found", c.Param("id"))
		return
	}

	switch user.Role {
	case models.RoleRenter:
		if user.Renter == nil {
			user.Renter = &models.RenterProfile{}
		}
		user.Renter.StripeCustomerID = input.StripeCustomerID
	case models.RoleHost:
		if user.Host == nil {
			user.Host = &models.HostProfile{}
		}
		user.Host.StripeAccountID = input.StripeAccountID
		user.Host.PayoutsEnabled = input.PayoutsEnabled
	}

	if err := h.Repo.Update(user); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update user", err.Error())
		return
	}
	c.JSON(http.StatusOK, user)
}
