package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandlerRespondeQuinientos(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/falla", func(c *gin.Context) {
		_ = c.Error(errors.New("se rompió el agregado"))
	})

	w := serve(r, http.MethodGet, "/falla")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	// The internal message never reaches the client.
	assert.Equal(t, "Error interno del servidor", body.Detail)
}

func TestErrorHandlerRespetaRespuestaEscrita(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/parcial", func(c *gin.Context) {
		c.JSON(http.StatusBadGateway, gin.H{"detail": "upstream"})
		_ = c.Error(errors.New("ya respondido"))
	})

	w := serve(r, http.MethodGet, "/parcial")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestRecoveryConvierteElPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery())
	r.GET("/panico", func(c *gin.Context) {
		panic("algo muy malo")
	})

	w := serve(r, http.MethodGet, "/panico")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ok", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	// Generated when absent.
	w := serve(r, http.MethodGet, "/ok")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	// Echoed when the caller brings one.
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("X-Request-ID", "traza-abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "traza-abc", w.Header().Get("X-Request-ID"))
}
