package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONFieldErrors renders validation failures keyed by field name so the
// frontend can surface each message inline.
func JSONFieldErrors(c *gin.Context, errs FieldErrors) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": errs})
}
