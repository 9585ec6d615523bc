package manager

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"coworking_market/constants"
	"coworking_market/model"
)

type NotificationsManager struct {
	Deps
}

func NewNotificationsManager(deps Deps) *NotificationsManager {
	return &NotificationsManager{Deps: deps}
}

func notificationNotFound(id uint) *Response {
	return badRequest(fmt.Sprintf(constants.NOTIFICATION_NOT_FOUND, id))
}

func (m *NotificationsManager) SellerList(ctx context.Context, seller *model.User) (*Response, error) {
	list, err := m.Store.Notifications.FindInternalByUser(ctx, seller.ID)
	if err != nil {
		return nil, err
	}
	return respond(http.StatusOK, nonNil(list)), nil
}

func (m *NotificationsManager) BuyerList(ctx context.Context, buyer *model.User) (*Response, error) {
	list, err := m.Store.Notifications.FindPushByUser(ctx, buyer.ID)
	if err != nil {
		return nil, err
	}
	return respond(http.StatusOK, nonNil(list)), nil
}

func (m *NotificationsManager) CheckInternal(ctx context.Context, seller *model.User, id uint) (*Response, error) {
	n, err := m.Store.Notifications.FindInternalByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil || n.UserId != seller.ID {
		return notificationNotFound(id), nil
	}
	if !n.Checked {
		n.Checked = true
		if err := m.Store.Notifications.SaveInternal(ctx, n); err != nil {
			return nil, err
		}
	}
	return message(http.StatusOK, constants.NOTIFICATION_CHECKED), nil
}

func (m *NotificationsManager) CheckPush(ctx context.Context, buyer *model.User, id uint) (*Response, error) {
	n, err := m.Store.Notifications.FindPushByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil || n.UserId != buyer.ID {
		return notificationNotFound(id), nil
	}
	if !n.Checked {
		n.Checked = true
		if err := m.Store.Notifications.SavePush(ctx, n); err != nil {
			return nil, err
		}
	}
	return message(http.StatusOK, constants.NOTIFICATION_CHECKED), nil
}

// PurgeChecked removes buyer notifications that were read and are older than maxAge.
func (m *NotificationsManager) PurgeChecked(ctx context.Context, maxAge time.Duration) (int64, error) {
	return m.Store.Notifications.DeleteCheckedPushBefore(ctx, m.now().Add(-maxAge))
}
