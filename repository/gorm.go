package repository

import (
	"context"
	"errors"
	"time"

	"coworking_market/constants"
	"coworking_market/model"

	"gorm.io/gorm"
)

func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Users:         &gormUsers{db: db},
		Areas:         &gormAreas{db: db},
		Locations:     &gormLocations{db: db},
		WorkSpaces:    &gormWorkSpaces{db: db},
		Bookings:      &gormBookings{db: db},
		Viewings:      &gormViewings{db: db},
		Notifications: &gormNotifications{db: db},
	}
}

// first runs q and maps gorm.ErrRecordNotFound to a nil result.
func first[T any](q *gorm.DB, conds ...any) (*T, error) {
	var out T
	if err := q.First(&out, conds...).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

type gormUsers struct{ db *gorm.DB }

func (r *gormUsers) FindByID(ctx context.Context, id uint) (*model.User, error) {
	return first[model.User](r.db.WithContext(ctx), id)
}

func (r *gormUsers) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return first[model.User](r.db.WithContext(ctx).Where("email = ?", email))
}

func (r *gormUsers) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *gormUsers) Save(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

type gormAreas struct{ db *gorm.DB }

func (r *gormAreas) FindBySlug(ctx context.Context, slug string) (*model.Area, error) {
	return first[model.Area](r.db.WithContext(ctx).Where("slug = ?", slug))
}

func (r *gormAreas) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Area{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormAreas) Create(ctx context.Context, area *model.Area) error {
	return r.db.WithContext(ctx).Create(area).Error
}

type gormLocations struct{ db *gorm.DB }

func (r *gormLocations) FindByID(ctx context.Context, id uint) (*model.Location, error) {
	return first[model.Location](r.db.WithContext(ctx).Preload("Area"), id)
}

func (r *gormLocations) FindByUser(ctx context.Context, userID uint) ([]model.Location, error) {
	var locations []model.Location
	err := r.db.WithContext(ctx).
		Preload("WorkSpaces", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
		Where("user_id = ?", userID).
		Order("id").
		Find(&locations).Error
	return locations, err
}

func (r *gormLocations) Create(ctx context.Context, location *model.Location) error {
	return r.db.WithContext(ctx).Omit("Area", "User").Create(location).Error
}

func (r *gormLocations) Save(ctx context.Context, location *model.Location) error {
	return r.db.WithContext(ctx).Omit("Area", "User", "WorkSpaces").Save(location).Error
}

func (r *gormLocations) Delete(ctx context.Context, location *model.Location) error {
	return r.db.WithContext(ctx).Select("WorkSpaces").Delete(location).Error
}

type gormWorkSpaces struct{ db *gorm.DB }

func (r *gormWorkSpaces) FindByID(ctx context.Context, id uint) (*model.WorkSpace, error) {
	return first[model.WorkSpace](r.db.WithContext(ctx).Preload("Location"), id)
}

func (r *gormWorkSpaces) Create(ctx context.Context, workspace *model.WorkSpace) error {
	return r.db.WithContext(ctx).Omit("Location").Create(workspace).Error
}

type countRow struct {
	WorkSpaceId uint
	Total       int64
}

func (r *gormWorkSpaces) Counts(ctx context.Context, ids []uint) (map[uint]model.WorkspaceCounts, error) {
	out := make(map[uint]model.WorkspaceCounts, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var bookings, viewings []countRow
	if err := r.db.WithContext(ctx).Model(&model.Booking{}).
		Select("work_space_id, count(*) as total").
		Where("work_space_id IN ?", ids).
		Group("work_space_id").
		Scan(&bookings).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Viewing{}).
		Select("work_space_id, count(*) as total").
		Where("work_space_id IN ?", ids).
		Group("work_space_id").
		Scan(&viewings).Error; err != nil {
		return nil, err
	}

	for _, row := range bookings {
		c := out[row.WorkSpaceId]
		c.Bookings = row.Total
		out[row.WorkSpaceId] = c
	}
	for _, row := range viewings {
		c := out[row.WorkSpaceId]
		c.Viewings = row.Total
		out[row.WorkSpaceId] = c
	}
	return out, nil
}

type gormBookings struct{ db *gorm.DB }

func (r *gormBookings) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

type gormViewings struct{ db *gorm.DB }

func (r *gormViewings) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("User").
		Preload("WorkSpace.Location").
		Preload("InternalNotification")
}

func (r *gormViewings) FindByID(ctx context.Context, id uint) (*model.Viewing, error) {
	return first[model.Viewing](r.preloaded(ctx), id)
}

func (r *gormViewings) FindInWorkSpace(ctx context.Context, workspaceID, id uint) (*model.Viewing, error) {
	return first[model.Viewing](r.preloaded(ctx).Where("work_space_id = ?", workspaceID), id)
}

func (r *gormViewings) FindByWorkSpace(ctx context.Context, workspaceID uint) ([]model.Viewing, error) {
	var viewings []model.Viewing
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("work_space_id = ?", workspaceID).
		Order("start_time, id").
		Find(&viewings).Error
	return viewings, err
}

func (r *gormViewings) FindAcceptedBetween(ctx context.Context, from, to time.Time) ([]model.Viewing, error) {
	var viewings []model.Viewing
	err := r.preloaded(ctx).
		Where("status = ? AND start_time >= ? AND start_time < ?", constants.VIEWING_ACCEPTED, from, to).
		Order("start_time").
		Find(&viewings).Error
	return viewings, err
}

func (r *gormViewings) Create(ctx context.Context, viewing *model.Viewing) error {
	return r.db.WithContext(ctx).Omit("User", "WorkSpace", "InternalNotification").Create(viewing).Error
}

func (r *gormViewings) Save(ctx context.Context, viewing *model.Viewing) error {
	return r.db.WithContext(ctx).Omit("User", "WorkSpace", "InternalNotification").Save(viewing).Error
}

type gormNotifications struct{ db *gorm.DB }

func (r *gormNotifications) CreateInternal(ctx context.Context, n *model.InternalNotification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *gormNotifications) SaveInternal(ctx context.Context, n *model.InternalNotification) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r *gormNotifications) FindInternalByID(ctx context.Context, id uint) (*model.InternalNotification, error) {
	return first[model.InternalNotification](r.db.WithContext(ctx), id)
}

func (r *gormNotifications) FindInternalByUser(ctx context.Context, userID uint) ([]model.InternalNotification, error) {
	var list []model.InternalNotification
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id desc").Find(&list).Error
	return list, err
}

func (r *gormNotifications) CreatePush(ctx context.Context, n *model.PushNotification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *gormNotifications) SavePush(ctx context.Context, n *model.PushNotification) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r *gormNotifications) FindPushByID(ctx context.Context, id uint) (*model.PushNotification, error) {
	return first[model.PushNotification](r.db.WithContext(ctx), id)
}

func (r *gormNotifications) FindPushByUser(ctx context.Context, userID uint) ([]model.PushNotification, error) {
	var list []model.PushNotification
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id desc").Find(&list).Error
	return list, err
}

func (r *gormNotifications) DeleteCheckedPushBefore(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("checked = ? AND created_at < ?", true, before).
		Delete(&model.PushNotification{})
	return res.RowsAffected, res.Error
}
