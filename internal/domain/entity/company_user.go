package entity

// CompanyUser representa un usuario que pertenece a una Company.
// El correo es único por empresa, no globalmente.
type CompanyUser struct {
	ID           int64
	CompanyID    int
	Email        string
	Name         *string // opcional
	PasswordHash string  // bcrypt hash, nunca plano después de persistir
	IsAdmin      bool
}

// CompanyUserLogin es la proyección usada en el login: usuario más el nombre de su empresa.
type CompanyUserLogin struct {
	CompanyUser
	CompanyName string
}
