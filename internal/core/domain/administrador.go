package domain

import "time"

// Administrador is the authenticated actor for every mutating operation.
type Administrador struct {
	ID             string    `json:"administrador_id" bson:"_id"`
	Identificacion string    `json:"identificacion" bson:"identificacion"`
	Nombres        string    `json:"nombres" bson:"nombres"`
	Apellidos      string    `json:"apellidos" bson:"apellidos"`
	Telefono       string    `json:"telefono" bson:"telefono"`
	Cargo          string    `json:"cargo" bson:"cargo"`
	Empresa        string    `json:"empresa" bson:"empresa"`
	Email          string    `json:"email" bson:"email"`
	PasswordHash   string    `json:"-" bson:"hashed_password"`
	Activo         bool      `json:"activo" bson:"activo"`
	FechaCreacion  time.Time `json:"fecha_creacion" bson:"fecha_creacion"`
	Actualiza      time.Time `json:"actualiza" bson:"actualiza"`
}
