package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/khoahotran/devboard/internal/application/usecase/profile"
	"github.com/khoahotran/devboard/pkg/apperror"
	"github.com/khoahotran/devboard/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: uc,
		logger:         log,
	}
}

// GetByEmail answers the profile with its nested skills, projects, work
// and links. The email is not validated; a malformed one just finds
// nothing.
func (h *ProfileHandler) GetByEmail(c *gin.Context) {
	input := profileUC.GetProfileInput{Email: c.Param("email")}
	output, err := h.profileUseCase.ExecuteGet(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Profile)
}

func (h *ProfileHandler) Create(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile create", err))
		return
	}

	input := profileUC.CreateProfileInput{
		Name:      req.Name,
		Email:     req.Email,
		Education: req.Education,
	}
	output, err := h.profileUseCase.ExecuteCreate(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile update", err))
		return
	}

	input := profileUC.UpdateProfileInput{
		Email:     c.Param("email"),
		Name:      req.Name,
		Education: req.Education,
	}
	output, err := h.profileUseCase.ExecuteUpdate(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Profile)
}
