package handlers

import (
	"strconv"

	"canteen-api/apperr"

	"github.com/gin-gonic/gin"
)

// fail writes a classified service error as a JSON message body.
func fail(c *gin.Context, err *apperr.Error) {
	c.JSON(err.Status(), gin.H{"message": err.Message})
}

// pathID parses a numeric :id path parameter. A non-numeric id behaves
// like a missing resource.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
