package entity

// Process es un proceso automatizado de una empresa.
// Token es el UUID público con el que los orquestadores (n8n, etc.) lo referencian;
// se genera en el servidor y nunca lo envía el cliente.
type Process struct {
	ID        int
	CompanyID int
	Name      string
	Token     string
}
