package handlers

import (
	"errors"
	"lendkart/loan_broker/internal/pkg/consts"
	"lendkart/loan_broker/internal/pkg/models"
	"lendkart/loan_broker/internal/pkg/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type EnquiryHandler struct {
	service    services.EnquiryServiceInterface
	validation services.ValidationServiceInterface
}

func NewEnquiryHandler(service services.EnquiryServiceInterface, validation services.ValidationServiceInterface) *EnquiryHandler {
	return &EnquiryHandler{service: service, validation: validation}
}

func (h *EnquiryHandler) SubmitEnquiry(c *gin.Context) {
	var payload models.EnquiryPayload

	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if payload.Type == "" {
		payload.Type = c.Param("type")
	}

	if err := h.validation.ValidateEnquiry(payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.SubmitEnquiry(c.Request.Context(), payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": consts.EnquirySubmittedMessage})
}

func (h *EnquiryHandler) CalculateInterest(c *gin.Context) {
	var body models.CalculateRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote, err := h.service.CalculateInterest(c.Request.Context(), c.Param("type"), body.Amount, body.Tenure)
	if err != nil {
		switch {
		case errors.Is(err, consts.ErrorServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, consts.ErrorInvalidCalculationInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, quote)
}

func (h *EnquiryHandler) RequestRemittance(c *gin.Context) {
	var body models.RemittanceRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	confirmation, err := h.service.RequestRemittance(c.Request.Context(), body.Mobile, body.Amount)
	if err != nil {
		switch {
		case errors.Is(err, consts.ErrorEnquiryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, consts.ErrorMissingRemittanceFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": confirmation})
}

func (h *EnquiryHandler) UpdateEnquiry(c *gin.Context) {
	var body models.UpdateEnquiryRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.UpdateEnquiry(c.Request.Context(), body)
	if err != nil {
		if errors.Is(err, consts.ErrorEnquiryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        consts.EnquiryUpdatedMessage,
		"updatedRequest": updated,
	})
}

func (h *EnquiryHandler) DeleteEnquiry(c *gin.Context) {
	var body models.MobileRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.DeleteEnquiry(c.Request.Context(), body.Mobile); err != nil {
		if errors.Is(err, consts.ErrorEnquiryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": consts.EnquiryDeletedMessage})
}
