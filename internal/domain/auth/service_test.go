package auth_test

import (
	"context"
	"testing"

	"Vaquinha/internal/domain/auth"
	"Vaquinha/internal/domain/user"
	appErrors "Vaquinha/internal/errors"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepository struct {
	createFn     func(ctx context.Context, u *user.User) error
	getByEmailFn func(ctx context.Context, email string) (*user.User, error)
}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) Update(ctx context.Context, _ *user.User) error { return nil }
func (f *fakeUserRepository) Delete(ctx context.Context, _ ulid.ULID) error  { return nil }

func (f *fakeUserRepository) GetByID(ctx context.Context, id ulid.ULID) (*user.User, error) {
	return &user.User{Id: id}, nil
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, appErrors.ErrUserNotFound
}

type fakeOAuthProvider struct {
	verifyFn func(ctx context.Context, credential string) (*auth.OAuthUserInfo, error)
}

func (f *fakeOAuthProvider) VerifyToken(ctx context.Context, credential string) (*auth.OAuthUserInfo, error) {
	if f.verifyFn != nil {
		return f.verifyFn(ctx, credential)
	}
	return &auth.OAuthUserInfo{Email: "maria@example.com", Name: "Maria Silva"}, nil
}

func (f *fakeOAuthProvider) GetAuthURL(state string) string { return "" }

func (f *fakeOAuthProvider) ExchangeCode(ctx context.Context, code string) (string, error) {
	return "", nil
}

func newAuthService(repo user.Repository, provider auth.OAuthProvider) *auth.Service {
	return auth.NewService(repo, user.NewService(repo), provider)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return string(hash)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	stored := &user.User{
		Id:       ulid.Make(),
		Email:    "maria@example.com",
		Password: hashPassword(t, "Senha@Forte1"),
	}

	repo := &fakeUserRepository{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			if email == stored.Email {
				return stored, nil
			}
			return nil, appErrors.ErrUserNotFound
		},
	}

	svc := newAuthService(repo, nil)

	t.Run("valid credentials", func(t *testing.T) {
		entity, err := svc.Login(context.Background(), auth.Login{Email: stored.Email, Password: "Senha@Forte1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entity.Id != stored.Id {
			t.Fatal("expected stored user to be returned")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), auth.Login{Email: stored.Email, Password: "errada"})
		if err == nil {
			t.Fatal("expected error")
		}
		appErr, ok := appErrors.AsAppError(err)
		if !ok {
			t.Fatalf("expected AppError, got %T", err)
		}
		if appErr.Code != appErrors.ErrInvalidCredentials.Code {
			t.Fatalf("expected %s, got %s", appErrors.ErrInvalidCredentials.Code, appErr.Code)
		}
	})

	t.Run("unknown email does not leak existence", func(t *testing.T) {
		_, err := svc.Login(context.Background(), auth.Login{Email: "outra@example.com", Password: "Senha@Forte1"})
		if err == nil {
			t.Fatal("expected error")
		}
		appErr, ok := appErrors.AsAppError(err)
		if !ok {
			t.Fatalf("expected AppError, got %T", err)
		}
		if appErr.Code != appErrors.ErrInvalidCredentials.Code {
			t.Fatalf("expected %s, got %s", appErrors.ErrInvalidCredentials.Code, appErr.Code)
		}
	})
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("existing email", func(t *testing.T) {
		repo := &fakeUserRepository{
			getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return &user.User{Id: ulid.Make(), Email: email}, nil
			},
		}

		svc := newAuthService(repo, nil)
		err := svc.Register(context.Background(), &user.User{Email: "maria@example.com", Password: "Senha@Forte1"})
		if err == nil {
			t.Fatal("expected error")
		}
		appErr, ok := appErrors.AsAppError(err)
		if !ok {
			t.Fatalf("expected AppError, got %T", err)
		}
		if appErr.Code != appErrors.ErrEmailAlreadyExists.Code {
			t.Fatalf("expected %s, got %s", appErrors.ErrEmailAlreadyExists.Code, appErr.Code)
		}
	})

	t.Run("hashes password before saving", func(t *testing.T) {
		var created *user.User
		repo := &fakeUserRepository{
			createFn: func(ctx context.Context, u *user.User) error {
				created = u
				return nil
			},
		}

		svc := newAuthService(repo, nil)
		err := svc.Register(context.Background(), &user.User{
			Name:     "Maria Silva",
			Email:    "maria@example.com",
			Password: "Senha@Forte1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil {
			t.Fatal("expected user to be persisted")
		}
		if created.Password == "Senha@Forte1" {
			t.Fatal("password should not be stored in plain text")
		}
		if bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("Senha@Forte1")) != nil {
			t.Fatal("stored hash should match the original password")
		}
	})
}

func TestPasswordRequirements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid", password: "Senha@Forte1", wantErr: false},
		{name: "too short", password: "Ab@1", wantErr: true},
		{name: "missing uppercase", password: "senha@forte1", wantErr: true},
		{name: "missing special char", password: "SenhaForte1", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := auth.PasswordRequirements(tt.password)
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestGoogleLogin(t *testing.T) {
	t.Parallel()

	t.Run("provider not configured", func(t *testing.T) {
		svc := newAuthService(&fakeUserRepository{}, nil)
		_, err := svc.GoogleLogin(context.Background(), "token")
		if err == nil {
			t.Fatal("expected error")
		}
		appErr, ok := appErrors.AsAppError(err)
		if !ok {
			t.Fatalf("expected AppError, got %T", err)
		}
		if appErr.Code != "OAUTH_NOT_CONFIGURED" {
			t.Fatalf("expected OAUTH_NOT_CONFIGURED, got %s", appErr.Code)
		}
	})

	t.Run("missing credential", func(t *testing.T) {
		svc := newAuthService(&fakeUserRepository{}, &fakeOAuthProvider{})
		_, err := svc.GoogleLogin(context.Background(), "")
		if err == nil {
			t.Fatal("expected error")
		}
		appErr, ok := appErrors.AsAppError(err)
		if !ok {
			t.Fatalf("expected AppError, got %T", err)
		}
		if appErr.Code != "CREDENTIAL_MISSING" {
			t.Fatalf("expected CREDENTIAL_MISSING, got %s", appErr.Code)
		}
	})

	t.Run("first login creates account", func(t *testing.T) {
		var created *user.User
		repo := &fakeUserRepository{
			createFn: func(ctx context.Context, u *user.User) error {
				created = u
				return nil
			},
		}

		provider := &fakeOAuthProvider{
			verifyFn: func(ctx context.Context, credential string) (*auth.OAuthUserInfo, error) {
				return &auth.OAuthUserInfo{
					Email:   "novo@example.com",
					Name:    "Novo Usuário",
					Picture: "https://lh3.googleusercontent.com/a/foto",
				}, nil
			},
		}

		svc := newAuthService(repo, provider)
		entity, err := svc.GoogleLogin(context.Background(), "token-valido")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if created == nil {
			t.Fatal("expected account to be created")
		}
		if entity.Email != "novo@example.com" {
			t.Fatalf("unexpected email: %q", entity.Email)
		}
		if entity.AvatarURL != "https://lh3.googleusercontent.com/a/foto" {
			t.Fatalf("unexpected avatar: %q", entity.AvatarURL)
		}
	})

	t.Run("existing account is reused", func(t *testing.T) {
		stored := &user.User{Id: ulid.Make(), Email: "maria@example.com"}
		repo := &fakeUserRepository{
			getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return stored, nil
			},
			createFn: func(ctx context.Context, u *user.User) error {
				t.Fatal("should not create a new account")
				return nil
			},
		}

		svc := newAuthService(repo, &fakeOAuthProvider{})
		entity, err := svc.GoogleLogin(context.Background(), "token-valido")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entity.Id != stored.Id {
			t.Fatal("expected stored user to be returned")
		}
	})
}
