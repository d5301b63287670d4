package entity

import "time"

// Estatus válidos de una ejecución.
const (
	ExecutionStatusPending uint8 = 0 // pendiente o fallida
	ExecutionStatusSuccess uint8 = 1
)

// Execution es un registro (append-only) de que un proceso corrió.
type Execution struct {
	ID        int
	ProcessID int
	Timestamp time.Time // UTC
	Status    uint8
}

// ValidExecutionStatus informa si el valor es un estatus permitido.
func ValidExecutionStatus(v int) bool {
	return v == int(ExecutionStatusPending) || v == int(ExecutionStatusSuccess)
}
