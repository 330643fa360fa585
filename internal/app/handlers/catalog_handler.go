package handlers

import (
	"errors"
	"lendkart/loan_broker/internal/pkg/consts"
	"lendkart/loan_broker/internal/pkg/logger"
	"lendkart/loan_broker/internal/pkg/services"
	"lendkart/loan_broker/internal/pkg/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	service services.CatalogServiceInterface
}

func NewCatalogHandler(service services.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": consts.WelcomeMessage})
}

func (h *CatalogHandler) AllServices(c *gin.Context) {
	summaries, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		if errors.Is(err, consts.ErrorNoServicesFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error(c.Request.Context(), "Listing services failed with code %s", utils.GetErrorCode(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summaries)
}

func (h *CatalogHandler) ServiceByType(c *gin.Context) {
	product, err := h.service.GetProduct(c.Request.Context(), c.Param("type"))
	if err != nil {
		if errors.Is(err, consts.ErrorServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error(c.Request.Context(), "Service lookup failed with code %s", utils.GetErrorCode(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}
