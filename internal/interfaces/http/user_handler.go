package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/application/account"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/application/dto"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/domain"
)

// UserHandler maneja las peticiones HTTP de cuentas de usuario.
type UserHandler struct {
	uc *account.UseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *account.UseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrationRequest  true  "Datos de registro"
// @Success      200   {object}  dto.RegistrationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/User/Register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in dto.RegistrationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if details := in.Validate(); len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Details: details})
	}
	unique, err := h.uc.IsUnique(c.Context(), in.UserName)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if !unique {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el nombre de usuario ya existe"})
	}
	out, err := h.uc.Registration(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ROLE", Message: domain.ErrRoleNotFound.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	// El proveedor rechazó la creación: respuesta sin cuenta.
	if out.User == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "REGISTRATION_FAILED", Message: "no se pudo registrar el usuario"})
	}
	return c.JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/User/Login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if details := in.Validate(); len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Details: details})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out.User == nil || out.Token == "" {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "usuario o contraseña incorrectos"})
	}
	return c.JSON(out)
}

// ConfirmEmail godoc
// @Summary      Confirmar email
// @Tags         users
// @Produce      json
// @Param        token  query  string  true  "Token de confirmación"
// @Param        email  query  string  true  "Email de la cuenta"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/User/ConfirmEmail [get]
func (h *UserHandler) ConfirmEmail(c *fiber.Ctx) error {
	token := c.Query("token")
	email := c.Query("email")
	if token == "" || email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "token y email son requeridos"})
	}
	ok, err := h.uc.ConfirmEmail(c.Context(), token, email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: domain.ErrInvalidToken.Error()})
	}
	return c.JSON(fiber.Map{"message": "email confirmado"})
}

// ForgetPassword godoc
// @Summary      Solicitar restablecimiento de contraseña
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForgetRequest  true  "Email de la cuenta"
// @Success      200   {object}  dto.ForgetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/User/ForgetPassword [post]
func (h *UserHandler) ForgetPassword(c *fiber.Ctx) error {
	var in dto.ForgetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if details := in.Validate(); len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Details: details})
	}
	out, err := h.uc.ForgetPassword(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out.User == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no existe una cuenta con ese email"})
	}
	return c.JSON(out)
}

// ResetPassword godoc
// @Summary      Restablecer contraseña con token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetPasswordRequest  true  "Token y contraseña nueva"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/User/ResetPassword [post]
func (h *UserHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if details := in.Validate(); len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Details: details})
	}
	ok, err := h.uc.ResetPassword(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "RESET_FAILED", Message: "no se pudo restablecer la contraseña"})
	}
	return c.JSON(fiber.Map{"message": "contraseña restablecida"})
}
