package handlers

import (
	"errors"
	"net/http"

	"legal-backend/models"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// respondServiceError maps pipeline errors to HTTP statuses. External
// service and schema failures are upstream faults, so they surface as 502.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrExternalService):
		respondError(c, http.StatusBadGateway, "EXTERNAL_SERVICE_ERROR", err.Error())
	case errors.Is(err, models.ErrSchemaViolation):
		respondError(c, http.StatusBadGateway, "SCHEMA_VIOLATION", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}

// CORSMiddleware allows all origins, mirroring the open intake frontend
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
