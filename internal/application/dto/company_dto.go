package dto

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID   int    `json:"id"`
	RFC  string `json:"rfc"`
	Name string `json:"nombre"`
}
