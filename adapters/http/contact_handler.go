package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	contactUC "github.com/khoahotran/network-os/internal/application/usecase/contact"
	"github.com/khoahotran/network-os/internal/domain/contact"
	"github.com/khoahotran/network-os/pkg/apperror"
	"github.com/khoahotran/network-os/pkg/logger"
)

type ContactHandler struct {
	createUseCase *contactUC.CreateContactUseCase
	getUseCase    *contactUC.GetContactUseCase
	listUseCase   *contactUC.ListContactsUseCase
	updateUseCase *contactUC.UpdateContactUseCase
	deleteUseCase *contactUC.DeleteContactUseCase
	logger        logger.Logger
}

func NewContactHandler(
	createUseCase *contactUC.CreateContactUseCase,
	getUseCase *contactUC.GetContactUseCase,
	listUseCase *contactUC.ListContactsUseCase,
	updateUseCase *contactUC.UpdateContactUseCase,
	deleteUseCase *contactUC.DeleteContactUseCase,
	log logger.Logger,
) *ContactHandler {
	return &ContactHandler{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		logger:        log,
	}
}

func (h *ContactHandler) ListContacts(c *gin.Context) {
	input := contactUC.ListContactsInput{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Industry: c.Query("industry"),
		Tag:      c.Query("tag"),
	}
	if raw := c.Query("min_warmth"); raw != "" {
		minWarmth, err := strconv.Atoi(raw)
		if err != nil {
			c.Error(apperror.NewInvalidInput("'min_warmth' must be an integer", err))
			return
		}
		input.MinWarmth = &minWarmth
	}
	input.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "0"))
	input.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	output, err := h.listUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]ContactDTO, len(output.Contacts))
	for i, item := range output.Contacts {
		dtos[i] = ToContactDTO(item.Contact, item.WarmthStatus)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *ContactHandler) GetContact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid contact id", err))
		return
	}

	output, err := h.getUseCase.Execute(c.Request.Context(), contactUC.GetContactInput{ID: id})
	if err != nil {
		if errors.Is(err, contact.ErrContactNotFound) {
			c.Error(apperror.NewNotFound("contact", id.String()))
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToContactDTO(output.Contact, output.WarmthStatus))
}

func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for contact create", err))
		return
	}

	input := contactUC.CreateContactInput{
		Name:            req.Name,
		Role:            req.Role,
		Company:         req.Company,
		Location:        req.Location,
		Email:           req.Email,
		PriorityScore:   req.PriorityScore,
		LastInteraction: req.LastInteraction,
		NextFollowUp:    req.NextFollowUp,
		Tags:            req.Tags,
		Notes:           req.Notes,
		Category:        req.Category,
		Industry:        req.Industry,
		Interests:       req.Interests,
		Expertise:       req.Expertise,
	}
	output, err := h.createUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	status := contact.WarmthStatus(output.Contact.WarmthScore)
	c.JSON(http.StatusCreated, ToContactDTO(output.Contact, status))
}

func (h *ContactHandler) UpdateContact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid contact id", err))
		return
	}

	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for contact update", err))
		return
	}

	input := contactUC.UpdateContactInput{
		ID:              id,
		Name:            req.Name,
		Role:            req.Role,
		Company:         req.Company,
		Location:        req.Location,
		Email:           req.Email,
		PriorityScore:   req.PriorityScore,
		LastInteraction: req.LastInteraction,
		NextFollowUp:    req.NextFollowUp,
		Tags:            req.Tags,
		Notes:           req.Notes,
		Category:        req.Category,
		Industry:        req.Industry,
		Interests:       req.Interests,
		Expertise:       req.Expertise,
	}
	output, err := h.updateUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, contact.ErrContactNotFound) {
			c.Error(apperror.NewNotFound("contact", id.String()))
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToContactDTO(output.Contact, output.WarmthStatus))
}

func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid contact id", err))
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), contactUC.DeleteContactInput{ID: id}); err != nil {
		if errors.Is(err, contact.ErrContactNotFound) {
			c.Error(apperror.NewNotFound("contact", id.String()))
			return
		}
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
