package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/khoahotran/network-os/internal/application/usecase/profile"
	"github.com/khoahotran/network-os/internal/domain/profile"
	"github.com/khoahotran/network-os/pkg/apperror"
	"github.com/khoahotran/network-os/pkg/logger"
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

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	p, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context())
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			c.Error(apperror.NewNotFound("user profile", "owner"))
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(p))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile update", err))
		return
	}

	input := profileUC.UpdateProfileInput{Profile: req.ToDomainProfile()}
	p, err := h.profileUseCase.ExecuteUpdateProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(p))
}
