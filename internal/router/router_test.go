package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"agrogestor/internal/config"
	"agrogestor/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Port:            0,
		Env:             "test",
		RateLimitPerMin: 100000,
		PDFStoragePath:  t.TempDir(),
	}
	return New(cfg,
		repository.NewInsumoRepository(),
		repository.NewDietaRepository(),
		repository.NewLoteRepository(),
		repository.NewMovimientoRepository(),
		repository.NewPesajeRepository(),
		repository.NewAlimentacionRepository(),
	)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInsumoFlujoCompleto(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/insumos", gin.H{
		"nombre":          "Maíz molido",
		"cantidad_actual": 200,
		"stock_minimo":    100,
		"costo_kg":        "4.5",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var creado struct {
		ID    string `json:"id"`
		Nivel string `json:"nivel"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &creado))
	assert.Equal(t, "Adecuado", creado.Nivel)

	// Una salida mayor al stock responde 409 y no toca el inventario.
	w = doJSON(t, r, http.MethodPost, "/v1/insumos/"+creado.ID+"/ajustar", gin.H{
		"tipo":     "salida",
		"cantidad": 500,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, "/v1/insumos/"+creado.ID+"/ajustar", gin.H{
		"tipo":     "salida",
		"cantidad": 150,
		"motivo":   "alimentación corral 7",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// decimal fields marshal as quoted strings
	var ajustado struct {
		CantidadActual string `json:"cantidad_actual"`
		Nivel          string `json:"nivel"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ajustado))
	assert.Equal(t, "50", ajustado.CantidadActual)
	assert.Equal(t, "Crítico", ajustado.Nivel)

	w = doJSON(t, r, http.MethodGet, "/v1/insumos/"+creado.ID+"/movimientos", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var movs []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &movs))
	assert.Len(t, movs, 1)
}

func TestInsumoValidacion(t *testing.T) {
	r := newTestRouter(t)

	// Nombre ausente: rechazado por el validador, nunca llega al servicio.
	w := doJSON(t, r, http.MethodPost, "/v1/insumos", gin.H{
		"cantidad_actual": 10,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDietaPorcentajeInvalido(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/dietas", gin.H{
		"nombre":   "Engorda incompleta",
		"objetivo": "Engorda",
		"ingredientes": []gin.H{
			{"id_insumo": "", "porcentaje": 60},
		},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestLoteInexistente(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/v1/lotes/a2f6e9a0-0000-0000-0000-000000000000", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLotePesajeYAlimentacion(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/lotes", gin.H{
		"nombre":        "Corral 7",
		"cabezas":       45,
		"peso_promedio": 350,
		"etapa":         "Engorda",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var lote struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lote))

	w = doJSON(t, r, http.MethodPost, "/v1/lotes/"+lote.ID+"/pesajes", gin.H{
		"fecha":         "2026-08-11",
		"peso_promedio": 365,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var pesaje struct {
		PesoAnterior string `json:"peso_anterior"`
		PesoNuevo    string `json:"peso_nuevo"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pesaje))
	assert.Equal(t, "350", pesaje.PesoAnterior)
	assert.Equal(t, "365", pesaje.PesoNuevo)

	// Sin dieta asignada la ración se sirve al consumo proyectado, costo 0.
	w = doJSON(t, r, http.MethodPost, "/v1/lotes/"+lote.ID+"/alimentacion", gin.H{})
	require.Equal(t, http.StatusCreated, w.Code)
	var racion struct {
		CantidadServidaKg string `json:"cantidad_servida_kg"`
		CostoTotalRacion  string `json:"costo_total_racion"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &racion))
	assert.Equal(t, "492.75", racion.CantidadServidaKg)
	assert.Equal(t, "0", racion.CostoTotalRacion)

	w = doJSON(t, r, http.MethodGet, "/v1/lotes/"+lote.ID+"/pesajes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var pesajes []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pesajes))
	assert.Len(t, pesajes, 1)
}

func TestDashboardVacio(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TotalAnimales    int    `json:"total_animales"`
		CostoDiarioTotal string `json:"costo_diario_total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.TotalAnimales)
	assert.Equal(t, "0.00", resp.CostoDiarioTotal)
}
