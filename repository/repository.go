package repository

import (
	"context"
	"time"

	"coworking_market/model"
)

// Lookups return (nil, nil) when the record does not exist.

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Save(ctx context.Context, user *model.User) error
}

type AreaRepository interface {
	FindBySlug(ctx context.Context, slug string) (*model.Area, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, area *model.Area) error
}

type LocationRepository interface {
	// FindByID preloads the Area.
	FindByID(ctx context.Context, id uint) (*model.Location, error)
	// FindByUser preloads WorkSpaces, ordered by id.
	FindByUser(ctx context.Context, userID uint) ([]model.Location, error)
	Create(ctx context.Context, location *model.Location) error
	Save(ctx context.Context, location *model.Location) error
	Delete(ctx context.Context, location *model.Location) error
}

type WorkSpaceRepository interface {
	// FindByID preloads the Location.
	FindByID(ctx context.Context, id uint) (*model.WorkSpace, error)
	Create(ctx context.Context, workspace *model.WorkSpace) error
	Counts(ctx context.Context, ids []uint) (map[uint]model.WorkspaceCounts, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
}

type ViewingRepository interface {
	// FindByID preloads User, WorkSpace.Location and the InternalNotification.
	FindByID(ctx context.Context, id uint) (*model.Viewing, error)
	FindInWorkSpace(ctx context.Context, workspaceID, id uint) (*model.Viewing, error)
	FindByWorkSpace(ctx context.Context, workspaceID uint) ([]model.Viewing, error)
	FindAcceptedBetween(ctx context.Context, from, to time.Time) ([]model.Viewing, error)
	Create(ctx context.Context, viewing *model.Viewing) error
	Save(ctx context.Context, viewing *model.Viewing) error
}

type NotificationRepository interface {
	CreateInternal(ctx context.Context, n *model.InternalNotification) error
	SaveInternal(ctx context.Context, n *model.InternalNotification) error
	FindInternalByID(ctx context.Context, id uint) (*model.InternalNotification, error)
	FindInternalByUser(ctx context.Context, userID uint) ([]model.InternalNotification, error)

	CreatePush(ctx context.Context, n *model.PushNotification) error
	SavePush(ctx context.Context, n *model.PushNotification) error
	FindPushByID(ctx context.Context, id uint) (*model.PushNotification, error)
	FindPushByUser(ctx context.Context, userID uint) ([]model.PushNotification, error)
	DeleteCheckedPushBefore(ctx context.Context, before time.Time) (int64, error)
}

// Store groups every repository the managers depend on.
type Store struct {
	Users         UserRepository
	Areas         AreaRepository
	Locations     LocationRepository
	WorkSpaces    WorkSpaceRepository
	Bookings      BookingRepository
	Viewings      ViewingRepository
	Notifications NotificationRepository
}
