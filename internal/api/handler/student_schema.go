package handler

// createStudentRequest mirrors the original registration payload. Password
// complexity is checked by the service; the tags only cover shape.
type createStudentRequest struct {
	TipoIdentificacion string `json:"tipo_identificacion" validate:"required"`
	Identificacion     string `json:"identificacion"      validate:"required"`
	Nombres            string `json:"nombres"             validate:"required"`
	Apellidos          string `json:"apellidos"           validate:"required"`
	Institucion        string `json:"institucion"         validate:"required"`
	Telefono           string `json:"telefono"            validate:"required"`
	Direccion          string `json:"direccion"           validate:"required"`
	Email              string `json:"email"               validate:"required,email"`
	Password           string `json:"hashed_password"     validate:"required"`
}

// confirmationResponse wraps the human-readable result of a delete.
type confirmationResponse struct {
	Detail string `json:"detail"`
}
