package dto

// ProcessResponse salida de un proceso en listados.
type ProcessResponse struct {
	ID        int    `json:"id"`
	CompanyID int    `json:"empresaId"`
	Name      string `json:"nombre"`
	Token     string `json:"uuid,omitempty"`
}

// CreateProcessRequest entrada para POST /CrearProceso. El UUID lo genera el servidor.
type CreateProcessRequest struct {
	CompanyID int    `json:"empresaId" validate:"required,gt=0"`
	Name      string `json:"nombre" validate:"required"`
}

// CreatedProcessResponse proceso recién creado, incluido el UUID generado.
type CreatedProcessResponse struct {
	ID        int    `json:"id"`
	CompanyID int    `json:"empresaId"`
	Name      string `json:"nombre"`
	Token     string `json:"uuid"`
}

// RegisterCurlResponse comandos curl de ejemplo para registrar ejecuciones de un proceso.
type RegisterCurlResponse struct {
	ProcessID   int    `json:"procesoId"`
	Token       string `json:"uuid"`
	CurlStatus1 string `json:"curlEstatus1"`
	CurlStatus0 string `json:"curlEstatus0"`
}
