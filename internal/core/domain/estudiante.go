package domain

import "time"

// Estudiante is a registered rider. Ticket credits (NumeroTiquetes) are
// granted by an administrator and consumed one per trip; NumeroViajes counts
// redemptions since the balance was last set.
type Estudiante struct {
	ID                 string    `json:"estudiante_id" bson:"_id"`
	TipoIdentificacion string    `json:"tipo_identificacion" bson:"tipo_identificacion"`
	Identificacion     string    `json:"identificacion" bson:"identificacion"`
	Nombres            string    `json:"nombres" bson:"nombres"`
	Apellidos          string    `json:"apellidos" bson:"apellidos"`
	Institucion        string    `json:"institucion" bson:"institucion"`
	Telefono           string    `json:"telefono" bson:"telefono"`
	Direccion          string    `json:"direccion" bson:"direccion"`
	Email              string    `json:"email" bson:"email"`
	PasswordHash       string    `json:"-" bson:"hashed_password"`
	NumeroTiquetes     int       `json:"numero_tiquetes" bson:"numero_tiquetes"`
	NumeroViajes       int       `json:"numero_viajes" bson:"numero_viajes"`
	CodigoQR           []byte    `json:"codigoQR,omitempty" bson:"codigoQR"`
	Activo             bool      `json:"activo" bson:"activo"`
	FechaCreacion      time.Time `json:"fecha_creacion" bson:"fecha_creacion"`
	Actualiza          time.Time `json:"actualiza" bson:"actualiza"`
}
