// Package account implementa los flujos de cuentas de usuario: registro, login,
// confirmación de email y recuperación de contraseña. Orquesta el proveedor de
// identidad, el transporte de correo y la emisión del token de sesión.
package account

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/application/dto"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/application/mapper"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/domain"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/domain/entity"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/domain/repository"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/identity"
	"github.com/jeffersoncargua/Pipeline-LineNatural/internal/infrastructure/mail"
	"github.com/jeffersoncargua/Pipeline-LineNatural/pkg/jwt"
	"github.com/jeffersoncargua/Pipeline-LineNatural/pkg/logger"
)

// Mailer despacha correos de texto plano.
type Mailer interface {
	Send(msg mail.Message) error
}

// TxRunner ejecuta fn con un UserStore transaccional; un error revierte todo.
type TxRunner interface {
	InTx(ctx context.Context, fn func(store repository.UserStore) error) error
}

// JWTConfig configuración para la emisión del token de sesión.
type JWTConfig struct {
	Secret  string
	ExpDays int
	Issuer  string
}

// UseCase flujos de cuentas sobre el proveedor de identidad y el correo.
type UseCase struct {
	store  repository.UserStore
	ids    *identity.Manager
	tx     TxRunner
	mailer Mailer
	jwtCfg JWTConfig
	log    *logger.Logger
}

// NewUseCase construye el caso de uso de cuentas.
func NewUseCase(store repository.UserStore, tx TxRunner, mailer Mailer, jwtCfg JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{
		store:  store,
		ids:    identity.NewManager(store),
		tx:     tx,
		mailer: mailer,
		jwtCfg: jwtCfg,
		log:    log,
	}
}

// IsUnique indica si no existe ninguna cuenta con ese userName/email.
func (uc *UseCase) IsUnique(ctx context.Context, userName string) (bool, error) {
	u, err := uc.store.FindByEmail(ctx, userName)
	if err != nil {
		return false, err
	}
	return u == nil, nil
}

// Registration crea la cuenta, verifica y asigna el rol y emite el token de
// confirmación, todo dentro de una transacción: un rol fuera de la enumeración
// revierte la cuenta y se reporta como domain.ErrRoleNotFound. Si el proveedor
// rechaza la creación (política de contraseña, email tomado) la respuesta vuelve
// con user y token vacíos, sin error. El correo de confirmación no bloquea la
// respuesta: una falla de transporte solo se loguea.
func (uc *UseCase) Registration(ctx context.Context, in dto.RegistrationRequest) (dto.RegistrationResponse, error) {
	var resp dto.RegistrationResponse

	u := &entity.User{
		ID:       uuid.New().String(),
		UserName: in.UserName,
		Name:     in.Name,
		// El registro deja el email como confirmado; el flujo de confirmación
		// aplica a cuentas cuyo flag se haya retirado por otra vía.
		EmailConfirmed: true,
	}
	var token string
	err := uc.tx.InTx(ctx, func(store repository.UserStore) error {
		mgr := identity.NewManager(store)
		if err := mgr.CreateAccount(ctx, u, in.Password); err != nil {
			return err
		}
		ok, err := mgr.RoleExists(ctx, in.Role)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrRoleNotFound
		}
		if err := mgr.AssignRole(ctx, u, in.Role); err != nil {
			return err
		}
		token, err = mgr.GenerateConfirmationToken(ctx, u)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrWeakPassword) || errors.Is(err, domain.ErrUserNameTaken) {
			return resp, nil
		}
		return resp, err
	}

	link := fmt.Sprintf("/api/User/ConfirmEmail?token=%s&email=%s",
		url.QueryEscape(token), url.QueryEscape(u.Email()))
	msg := mail.Message{To: []string{u.Email()}, Subject: "Email Confirmation", Content: link}
	if err := uc.SendEmail(msg); err != nil {
		uc.log.Warn().Err(err).Str("email", u.Email()).Msg("no se pudo enviar el correo de confirmación")
	}

	resp.User = mapper.ToUserDTO(u)
	resp.Token = token
	return resp, nil
}

// Login valida credenciales y emite el token de sesión (7 días por defecto).
// Cuenta ausente, contraseña inválida o email sin confirmar devuelven la
// respuesta con user, token y role vacíos, sin error: la verificación de
// contraseña contra una cuenta ausente corta en "inválida", no falla.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (dto.LoginResponse, error) {
	var resp dto.LoginResponse

	u, err := uc.store.FindByEmail(ctx, in.UserName)
	if err != nil {
		return resp, err
	}
	if !uc.ids.CheckPassword(u, in.Password) || !uc.ids.IsEmailConfirmed(u) {
		return resp, nil
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpDays)
	if err != nil {
		return resp, err
	}
	resp.User = mapper.ToUserDTO(u)
	resp.Token = token
	resp.Role = u.Role
	return resp, nil
}

// ForgetPassword emite un token de reset y lo envía por correo. Cuenta ausente
// devuelve la respuesta con ambos campos vacíos, sin error.
func (uc *UseCase) ForgetPassword(ctx context.Context, in dto.ForgetRequest) (dto.ForgetResponse, error) {
	var resp dto.ForgetResponse

	u, err := uc.store.FindByEmail(ctx, in.UserName)
	if err != nil {
		return resp, err
	}
	if u == nil {
		return resp, nil
	}

	token, err := uc.ids.GeneratePasswordResetToken(ctx, u)
	if err != nil {
		return resp, err
	}

	link := fmt.Sprintf("/api/User/?token=%s&email=%s",
		url.QueryEscape(token), url.QueryEscape(u.Email()))
	msg := mail.Message{To: []string{u.Email()}, Subject: "Reset Password", Content: "Link for change password " + link}
	if err := uc.SendEmail(msg); err != nil {
		return resp, err
	}

	resp.User = mapper.ToUserDTO(u)
	resp.Token = token
	return resp, nil
}

// ResetPassword aplica la contraseña nueva con el token de reset. Cuenta
// ausente devuelve false sin intentar nada.
func (uc *UseCase) ResetPassword(ctx context.Context, in dto.ResetPasswordRequest) (bool, error) {
	u, err := uc.store.FindByEmail(ctx, in.UserName)
	if err != nil {
		return false, err
	}
	if u == nil {
		return false, nil
	}
	return uc.ids.ResetPassword(ctx, u, in.Token, in.Password)
}

// ConfirmEmail marca el email como confirmado si el token valida. Cuenta
// ausente devuelve false.
func (uc *UseCase) ConfirmEmail(ctx context.Context, token, email string) (bool, error) {
	u, err := uc.store.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if u == nil {
		return false, nil
	}
	return uc.ids.ConfirmEmail(ctx, u, token)
}

// SendEmail despacha un correo por el transporte configurado. Las fallas de
// transporte se propagan, no se tragan.
func (uc *UseCase) SendEmail(msg mail.Message) error {
	return uc.mailer.Send(msg)
}
