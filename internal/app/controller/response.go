package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondOK writes the standard success envelope
func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondPage writes a success envelope with pagination and filter metadata
// alongside the data, mirroring what catalog pages consume.
func respondPage(c *gin.Context, data interface{}, pagination Pagination, filters interface{}) {
	body := gin.H{
		"success":    true,
		"data":       data,
		"pagination": pagination,
	}
	if filters != nil {
		body["filters"] = filters
	}
	c.JSON(http.StatusOK, body)
}
