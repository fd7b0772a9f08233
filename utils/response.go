package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every response carries a boolean success indicator. Article and comment
// endpoints report failures under "error"; user endpoints under "message",
// matching the public API contract.

func respond(ctx *gin.Context, status bool, httpStatus int, data gin.H) {
	payload := gin.H{"success": status}
	for k, v := range data {
		payload[k] = v
	}
	ctx.JSON(httpStatus, payload)
}

// Success writes a 200 response with the success flag set.
func Success(ctx *gin.Context, data gin.H) {
	respond(ctx, true, http.StatusOK, data)
}

// Created writes a 201 response with the success flag set.
func Created(ctx *gin.Context, data gin.H) {
	respond(ctx, true, http.StatusCreated, data)
}

// Error writes a failure response carrying an "error" field.
func Error(ctx *gin.Context, status int, message string) {
	respond(ctx, false, status, gin.H{"error": message})
}

// Fail writes a failure response carrying a "message" field.
func Fail(ctx *gin.Context, status int, message string) {
	respond(ctx, false, status, gin.H{"message": message})
}
