package shared

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type UserChecker interface {
	Exists(ctx context.Context, userID ulid.ULID) error
}

type UserGetter interface {
	UserChecker
	GetByID(ctx context.Context, userID ulid.ULID) (interface{}, error)
}
