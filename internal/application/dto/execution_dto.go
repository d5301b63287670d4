package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// RegisterExecutionRequest cuerpo de POST /RegistrarEjecucion.
// Se usa Token (uuid) si viene; ProcessID queda para consumidores directos de la API.
// Estatus es *int para poder rechazar valores como 2 o -1 en lugar de truncarlos.
type RegisterExecutionRequest struct {
	Token     string     `json:"uuid"`
	ProcessID int        `json:"procesoId"`
	Timestamp *Timestamp `json:"fechaHora"`
	Status    *int       `json:"estatus"`
}

// ExecutionResponse salida de una ejecución.
type ExecutionResponse struct {
	ID        int       `json:"id"`
	ProcessID int       `json:"procesoId"`
	Timestamp time.Time `json:"fechaHora"`
	Status    uint8     `json:"estatus"`
}

// timestampLayouts formatos aceptados en fechaHora. Sin zona horaria se asume UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// Timestamp acepta RFC 3339 y también fechas sin zona (como las que envían n8n o .NET).
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implementa json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("fechaHora debe ser un texto: %w", err)
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("fechaHora con formato inválido: %q", s)
}

// Ptr devuelve el instante como *time.Time, o nil si t es nil.
func (t *Timestamp) Ptr() *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}
