package handlers

import (
	"net/http"

	"conectcliente/services/catalog"

	"github.com/gin-gonic/gin"
)

// ListServicesHandler returns the drone service catalogue.
func ListServicesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": catalog.List()})
}
