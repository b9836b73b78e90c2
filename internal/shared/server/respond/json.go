package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// Created writes a 201 Created JSON response.
func Created(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusCreated, payload)
}

// NoContent writes an empty 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// File writes raw bytes inline with the given content type and download name.
func File(c *gin.Context, contentType, fileName string, data []byte) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if fileName != "" {
		c.Header("Content-Disposition", "inline; filename=\""+fileName+"\"")
	}
	c.Data(http.StatusOK, contentType, data)
}
