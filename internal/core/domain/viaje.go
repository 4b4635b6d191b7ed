package domain

import "time"

// Viaje records one ticket redemption: which student travelled and which
// administrator authorized it. Rows are immutable after creation.
type Viaje struct {
	ID              string    `json:"viaje_id" bson:"_id"`
	EstudianteID    string    `json:"estudiante_id" bson:"estudiante_id"`
	AdministradorID string    `json:"administrador_id" bson:"administrador_id"`
	FechaViaje      time.Time `json:"fecha_viaje" bson:"fecha_viaje"`
	Hora            string    `json:"hora" bson:"hora"`
	Activo          bool      `json:"activo" bson:"activo"`
	FechaCreacion   time.Time `json:"fecha_creacion" bson:"fecha_creacion"`
}
