package infrastructure

import (
	"context"
	"errors"
	"time"

	"Vaquinha/internal/domain/user"
	appErrors "Vaquinha/internal/errors"
	"Vaquinha/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

type userDB struct {
	Id        string `gorm:"type:varchar(26);primaryKey"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"not null"`
	Password  string `gorm:"not null"`
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func toDomainUser(udb *userDB) (*user.User, error) {
	id, err := pkg.ParseULID(udb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &user.User{
		Id:        id,
		Name:      udb.Name,
		Email:     udb.Email,
		Password:  udb.Password,
		AvatarURL: udb.AvatarURL,
		CreatedAt: udb.CreatedAt,
		UpdatedAt: udb.UpdatedAt,
	}, nil
}

func toDBUser(u *user.User) *userDB {
	return &userDB{
		Id:        u.Id.String(),
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	udb := toDBUser(u)
	if err := r.DB.WithContext(ctx).Table("users").Create(&udb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

// Update escreve via mapa; o chamador sempre carrega o usuário inteiro antes,
// então avatar_url pode ser limpo sem perder os demais campos.
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	udb := toDBUser(u)
	if err := r.DB.WithContext(ctx).Table("users").Where("id = ?", udb.Id).Updates(map[string]interface{}{
		"name":       udb.Name,
		"email":      udb.Email,
		"password":   udb.Password,
		"avatar_url": udb.AvatarURL,
		"updated_at": udb.UpdatedAt,
	}).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("users").Where("id = ?", id.String()).Delete(&userDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id ulid.ULID) (*user.User, error) {
	var udb userDB
	if err := r.DB.WithContext(ctx).Table("users").Where("id = ?", id.String()).First(&udb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrUserNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainUser(&udb)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var udb userDB
	if err := r.DB.WithContext(ctx).Table("users").Where("email = ?", email).First(&udb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrUserNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainUser(&udb)
}
