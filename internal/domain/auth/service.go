package auth

import (
	"context"
	"regexp"

	"Vaquinha/internal/domain/user"
	appErrors "Vaquinha/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

type Login struct {
	Email    string
	Password string
}

type Service struct {
	Repository  user.Repository
	UserService *user.Service
	Provider    OAuthProvider
}

func NewService(repo user.Repository, userSvc *user.Service, provider OAuthProvider) *Service {
	return &Service{
		Repository:  repo,
		UserService: userSvc,
		Provider:    provider,
	}
}

func (s *Service) Login(ctx context.Context, login Login) (*user.User, error) {
	entity, err := s.Repository.GetByEmail(ctx, login.Email)
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); ok && appErr.Code == appErrors.ErrUserNotFound.Code {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := PasswordValidate(login.Password, entity.Password); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) Register(ctx context.Context, newUser *user.User) error {
	exists, err := s.emailExists(ctx, newUser.Email)
	if err != nil {
		return err
	}
	if exists {
		return appErrors.ErrEmailAlreadyExists
	}
	if err := PasswordRequirements(newUser.Password); err != nil {
		return err
	}
	return s.UserService.Create(ctx, newUser)
}

// GoogleLogin valida a credencial emitida pelo Google e retorna o
// usuário correspondente, criando a conta no primeiro acesso.
func (s *Service) GoogleLogin(ctx context.Context, credential string) (*user.User, error) {
	if s.Provider == nil {
		return nil, appErrors.NewAuthError("OAUTH_NOT_CONFIGURED", "Google OAuth não está configurado. Configure GOOGLE_OAUTH_CLIENT_ID e GOOGLE_OAUTH_ENABLED=true")
	}
	if credential == "" {
		return nil, appErrors.NewAuthError("CREDENTIAL_MISSING", "Credencial do Google não fornecida")
	}

	info, err := s.Provider.VerifyToken(ctx, credential)
	if err != nil {
		return nil, err
	}

	entity, err := s.Repository.GetByEmail(ctx, info.Email)
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); ok && appErr.Code == appErrors.ErrUserNotFound.Code {
			return s.createUserFromOAuth(ctx, info)
		}
		return nil, err
	}

	return entity, nil
}

func (s *Service) createUserFromOAuth(ctx context.Context, info *OAuthUserInfo) (*user.User, error) {
	password, err := generateSecurePassword()
	if err != nil {
		return nil, err
	}

	name := info.Name
	if name == "" {
		name = "Usuário Google"
	}

	newUser := user.User{
		Name:      name,
		Email:     info.Email,
		Password:  password,
		AvatarURL: info.Picture,
	}

	if err := s.UserService.Create(ctx, &newUser); err != nil {
		return nil, err
	}

	return &newUser, nil
}

func (s *Service) emailExists(ctx context.Context, email string) (bool, error) {
	_, err := s.Repository.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		return false, appErrors.ErrInternalServer.WithError(err)
	}
	if appErr.Code == appErrors.ErrUserNotFound.Code {
		return false, nil
	}
	return false, appErr
}

func PasswordRequirements(password string) error {
	if len(password) < 8 {
		return appErrors.NewValidationError("password", "deve conter no mínimo 8 caracteres")
	}
	hasUpper, _ := regexp.MatchString(`[A-Z]`, password)
	if !hasUpper {
		return appErrors.NewValidationError("password", "deve conter ao menos uma letra maiúscula")
	}
	hasSpecial, _ := regexp.MatchString(`[@$!%*?&]`, password)
	if !hasSpecial {
		return appErrors.NewValidationError("password", "deve conter ao menos um caractere especial (@$!%*?&)")
	}
	return nil
}

func PasswordValidate(inputPassword string, storedPassword string) error {
	if inputPassword == "" {
		return appErrors.NewValidationError("password", "deve ser informado")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedPassword), []byte(inputPassword)); err != nil {
		return appErrors.ErrInvalidCredentials
	}
	return nil
}
