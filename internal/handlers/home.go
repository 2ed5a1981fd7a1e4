package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HomeResponse represents the welcome response
type HomeResponse struct {
	Message string `json:"message"`
}

// HomeHandler handles the root endpoint
func HomeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, HomeResponse{
		Message: "Insurance Premium Category Prediction API",
	})
}
