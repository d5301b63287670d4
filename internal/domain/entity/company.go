package entity

// Company representa una empresa (tenant). Se aprovisiona fuera de este servicio; aquí solo se lista.
type Company struct {
	ID   int
	RFC  string // identificador fiscal
	Name string
}
