package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordResponse(t *testing.T, write func(*gin.Context)) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	write(ctx)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestSuccessEnvelope(t *testing.T) {
	w, body := recordResponse(t, func(ctx *gin.Context) {
		Success(ctx, gin.H{"articulos": []string{}})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body, "articulos")
}

func TestCreatedEnvelope(t *testing.T) {
	w, body := recordResponse(t, func(ctx *gin.Context) {
		Created(ctx, gin.H{"message": "creado"})
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "creado", body["message"])
}

func TestErrorUsesErrorKey(t *testing.T) {
	w, body := recordResponse(t, func(ctx *gin.Context) {
		Error(ctx, http.StatusNotFound, "Artículo no encontrado")
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Artículo no encontrado", body["error"])
	assert.NotContains(t, body, "message")
}

func TestFailUsesMessageKey(t *testing.T) {
	w, body := recordResponse(t, func(ctx *gin.Context) {
		Fail(ctx, http.StatusUnauthorized, "Credenciales inválidas")
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Credenciales inválidas", body["message"])
	assert.NotContains(t, body, "error")
}
