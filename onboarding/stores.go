package onboarding

import (
	"context"

	"schoolapp-backend/entity"
)

// The orchestrator talks to one store per collection. The stores promise
// nothing about each other: there is no cross-collection transaction, which
// is why the ledger and rollback exist at all. DeleteByUserID must treat a
// missing record as success so compensation can be retried safely.

type UserStore interface {
	Insert(ctx context.Context, u *entity.User) error
	FindAll(ctx context.Context) ([]*entity.User, error)
	FindByUserID(ctx context.Context, userid string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)
	CountByType(ctx context.Context, usertype string) (int64, error)
	DeleteByUserID(ctx context.Context, userid string) error
}

type ProfileStore interface {
	Insert(ctx context.Context, p *entity.Profile) error
	FindByUserID(ctx context.Context, userid string) (*entity.Profile, error)
	DeleteByUserID(ctx context.Context, userid string) error
}

type AddressStore interface {
	Insert(ctx context.Context, a *entity.Address) error
	FindByUserID(ctx context.Context, userid string) ([]*entity.Address, error)
	DeleteByUserID(ctx context.Context, userid string) error
}

type ParentStore interface {
	Insert(ctx context.Context, p *entity.Parent) error
	FindByUserID(ctx context.Context, userid string) (*entity.Parent, error)
	DeleteByUserID(ctx context.Context, userid string) error
}

type FileStore interface {
	Insert(ctx context.Context, f *entity.File) error
	FindByUserID(ctx context.Context, userid string) ([]*entity.File, error)
	DeleteByUserID(ctx context.Context, userid string) error
}

// Stores bundles the five collections one onboarding writes to.
type Stores struct {
	Users     UserStore
	Profiles  ProfileStore
	Addresses AddressStore
	Parents   ParentStore
	Files     FileStore
}
