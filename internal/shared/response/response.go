package response

import (
	"github.com/gin-gonic/gin"
)

// The front-end reads payloads unwrapped, so success bodies are written as-is
// and only failures share a common shape.

type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

type MessageBody struct {
	Message string `json:"message"`
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, MessageBody{Message: message})
}

func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.AbortWithStatusJSON(status, ErrorBody{
		Message: message,
		Code:    errorCode,
		Details: details,
	})
}
