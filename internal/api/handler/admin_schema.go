package handler

// createAdminRequest mirrors the original administrator payload.
type createAdminRequest struct {
	Identificacion string `json:"identificacion"  validate:"required"`
	Nombres        string `json:"nombres"         validate:"required"`
	Apellidos      string `json:"apellidos"       validate:"required"`
	Telefono       string `json:"telefono"        validate:"required"`
	Cargo          string `json:"cargo"           validate:"required"`
	Empresa        string `json:"empresa"         validate:"required"`
	Email          string `json:"email"           validate:"required,email"`
	Password       string `json:"hashed_password" validate:"required"`
}

// editAdminRequest carries a partial update; Password is optional.
type editAdminRequest struct {
	Identificacion string `json:"identificacion" validate:"required"`
	Nombres        string `json:"nombres"`
	Apellidos      string `json:"apellidos"`
	Telefono       string `json:"telefono"`
	Cargo          string `json:"cargo"`
	Empresa        string `json:"empresa"`
	Email          string `json:"email"`
	Password       string `json:"hashed_password"`
}
