package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"Vaquinha/config"
	"Vaquinha/internal/domain/user"
	appErrors "Vaquinha/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type JwtService struct {
	secret      []byte
	expiration  time.Duration
	issuer      string
	userService *user.Service
}

type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func NewJwtService(cfg config.JWTConfig, userSvc *user.Service) (*JwtService, error) {
	if cfg.Secret == "" {
		return nil, errors.New("JWT_SECRET não configurado")
	}
	return &JwtService{
		secret:      []byte(cfg.Secret),
		expiration:  cfg.Expiration,
		issuer:      cfg.Issuer,
		userService: userSvc,
	}, nil
}

func (s *JwtService) GenerateToken(u *user.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Name:  u.Name,
		Email: u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Id.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return signed, nil
}

func (s *JwtService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("método de assinatura inesperado")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, appErrors.NewAuthError("TOKEN_INVALID", "Token inválido ou expirado").WithError(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, appErrors.NewAuthError("TOKEN_INVALID", "Token inválido ou expirado")
	}

	return claims, nil
}

func AuthMiddleware(jwtSvc *JwtService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Token de autenticação não fornecido")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "Formato do token inválido. Use: Bearer <token>")
			return
		}

		claims, err := jwtSvc.ValidateToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "Token inválido ou expirado")
			return
		}

		c.Set("user_id", claims.Subject)
		c.Set("user_email", claims.Email)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error":   appErrors.ErrUnauthorized.Code,
		"message": message,
	})
	c.Abort()
}
