package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	nudgeUC "github.com/khoahotran/network-os/internal/application/usecase/nudge"
	"github.com/khoahotran/network-os/internal/domain/nudge"
	"github.com/khoahotran/network-os/pkg/apperror"
	"github.com/khoahotran/network-os/pkg/logger"
)

type NudgeHandler struct {
	nudgeUseCase *nudgeUC.NudgeUseCase
	logger       logger.Logger
}

func NewNudgeHandler(uc *nudgeUC.NudgeUseCase, log logger.Logger) *NudgeHandler {
	return &NudgeHandler{
		nudgeUseCase: uc,
		logger:       log,
	}
}

func (h *NudgeHandler) ListNudges(c *gin.Context) {
	nudges, err := h.nudgeUseCase.ExecuteList(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]NudgeDTO, len(nudges))
	for i, n := range nudges {
		dtos[i] = ToNudgeDTO(n)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *NudgeHandler) CreateNudge(c *gin.Context) {
	var req CreateNudgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for nudge create", err))
		return
	}

	contactID, err := uuid.Parse(req.ContactID)
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid contact id", err))
		return
	}

	input := nudgeUC.CreateNudgeInput{
		ContactID: contactID,
		Type:      req.Type,
		Message:   req.Message,
		Priority:  req.Priority,
	}
	n, err := h.nudgeUseCase.ExecuteCreate(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToNudgeDTO(n))
}

func (h *NudgeHandler) UpdateNudgeStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid nudge id", err))
		return
	}

	var req UpdateNudgeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for nudge status update", err))
		return
	}

	input := nudgeUC.UpdateNudgeStatusInput{ID: id, Status: req.Status}
	n, err := h.nudgeUseCase.ExecuteUpdateStatus(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, nudge.ErrNudgeNotFound) {
			c.Error(apperror.NewNotFound("nudge", id.String()))
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToNudgeDTO(n))
}
