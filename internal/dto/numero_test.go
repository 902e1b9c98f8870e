package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumeroUnmarshal(t *testing.T) {
	cases := []struct {
		nombre string
		raw    string
		want   string
	}{
		{"numero plano", `{"v": 12.5}`, "12.5"},
		{"numero como string", `{"v": "12.5"}`, "12.5"},
		{"entero", `{"v": 40}`, "40"},
		{"string vacio coerce a cero", `{"v": ""}`, "0"},
		{"null coerce a cero", `{"v": null}`, "0"},
		{"basura coerce a cero", `{"v": "abc"}`, "0"},
		{"negativo se conserva", `{"v": "-3"}`, "-3"},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			var payload struct {
				V Numero `json:"v"`
			}
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &payload))
			assert.Equal(t, tc.want, payload.V.String())
		})
	}
}
