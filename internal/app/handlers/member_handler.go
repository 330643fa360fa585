package handlers

import (
	"errors"
	"lendkart/loan_broker/internal/pkg/consts"
	"lendkart/loan_broker/internal/pkg/models"
	"lendkart/loan_broker/internal/pkg/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	service    services.MemberServiceInterface
	validation services.ValidationServiceInterface
}

func NewMemberHandler(service services.MemberServiceInterface, validation services.ValidationServiceInterface) *MemberHandler {
	return &MemberHandler{service: service, validation: validation}
}

func (h *MemberHandler) Register(c *gin.Context) {
	var payload models.RegistrationPayload

	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.validation.ValidateRegistration(payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Register(c.Request.Context(), payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": consts.MemberRegisteredMessage})
}

func (h *MemberHandler) UpdatePassword(c *gin.Context) {
	var body models.UpdatePasswordRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.UpdatePassword(c.Request.Context(), body.Mobile, body.Password); err != nil {
		if errors.Is(err, consts.ErrorMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": consts.PasswordUpdatedMessage})
}

func (h *MemberHandler) CancelMembership(c *gin.Context) {
	var body models.MobileRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.CancelMembership(c.Request.Context(), body.Mobile); err != nil {
		if errors.Is(err, consts.ErrorMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": consts.MembershipCancelledMessage})
}
