package dto

// UserDTO salida de una cuenta (sin hash ni tokens).
type UserDTO struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Name     string `json:"name"`
}

// RegistrationRequest entrada de registro. UserName es el email de la cuenta.
type RegistrationRequest struct {
	Name     string `json:"name"`
	UserName string `json:"userName"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Validate devuelve la lista de violaciones del request; vacía si es válido.
// El rol no se valida aquí: contra la enumeración decide el proveedor de identidad.
func (d RegistrationRequest) Validate() []string {
	var v []string
	if d.Name == "" {
		v = append(v, "name es requerido")
	}
	if len(d.Name) > 30 {
		v = append(v, "name no puede superar 30 caracteres")
	}
	if d.UserName == "" {
		v = append(v, "userName es requerido")
	} else if !isEmail(d.UserName) {
		v = append(v, "userName debe ser un email válido")
	}
	if d.Password == "" {
		v = append(v, "password es requerido")
	}
	return v
}

// RegistrationResponse user y token de confirmación; ambos vacíos si el
// proveedor rechazó la creación de la cuenta.
type RegistrationResponse struct {
	User  *UserDTO `json:"user"`
	Token string   `json:"token"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// Validate devuelve la lista de violaciones del request; vacía si es válido.
func (d LoginRequest) Validate() []string {
	var v []string
	if d.UserName == "" {
		v = append(v, "userName es requerido")
	} else {
		if len(d.UserName) > 30 {
			v = append(v, "userName no puede superar 30 caracteres")
		}
		if !isEmail(d.UserName) {
			v = append(v, "userName debe ser un email válido")
		}
	}
	if d.Password == "" {
		v = append(v, "password es requerido")
	}
	return v
}

// LoginResponse token de sesión, user y rol; los tres vacíos cuando la cuenta
// no existe, la contraseña no valida o el email no está confirmado.
type LoginResponse struct {
	User  *UserDTO `json:"user"`
	Token string   `json:"token"`
	Role  string   `json:"role"`
}

// ForgetRequest entrada de recuperación de contraseña.
type ForgetRequest struct {
	UserName string `json:"userName"`
}

// Validate devuelve la lista de violaciones del request; vacía si es válido.
func (d ForgetRequest) Validate() []string {
	var v []string
	if d.UserName == "" {
		v = append(v, "userName es requerido")
	} else {
		if len(d.UserName) > 30 {
			v = append(v, "userName no puede superar 30 caracteres")
		}
		if !isEmail(d.UserName) {
			v = append(v, "userName debe ser un email válido")
		}
	}
	return v
}

// ForgetResponse user y token de reset; ambos vacíos si la cuenta no existe.
type ForgetResponse struct {
	User  *UserDTO `json:"user"`
	Token string   `json:"token"`
}

// ResetPasswordRequest entrada para aplicar una contraseña nueva con token de reset.
type ResetPasswordRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
	Token    string `json:"token"`
}

// Validate devuelve la lista de violaciones del request; vacía si es válido.
func (d ResetPasswordRequest) Validate() []string {
	var v []string
	if d.UserName == "" {
		v = append(v, "userName es requerido")
	} else if !isEmail(d.UserName) {
		v = append(v, "userName debe ser un email válido")
	}
	if d.Password == "" {
		v = append(v, "password es requerido")
	}
	if d.Token == "" {
		v = append(v, "token es requerido")
	}
	return v
}
