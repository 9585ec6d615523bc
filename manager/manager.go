package manager

import (
	"context"
	"net/http"
	"time"

	"coworking_market/events"
	"coworking_market/helper"
	"coworking_market/model"
	"coworking_market/notification"
	"coworking_market/repository"

	"github.com/sirupsen/logrus"
)

// Response is a user-visible outcome: status code plus JSON body. Managers
// return a non-nil error only for infrastructure failures.
type Response struct {
	Status int
	Data   any
}

func respond(status int, data any) *Response {
	return &Response{Status: status, Data: data}
}

func message(status int, msg string) *Response {
	return &Response{Status: status, Data: map[string]any{"message": msg}}
}

func badRequest(msg string) *Response {
	return message(http.StatusBadRequest, msg)
}

func fieldErrors(errs []model.FieldError) *Response {
	return respond(http.StatusBadRequest, map[string]any{"errors": errs})
}

type Deps struct {
	Store    *repository.Store
	Notifier notification.Notifier
	Events   events.Publisher
	Links    *helper.LinkGenerator
	Log      *logrus.Logger
	Now      func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// publish emits a domain event. A broker failure is logged, never returned.
func (d Deps) publish(ctx context.Context, name string, data map[string]any) {
	if d.Events == nil {
		return
	}
	err := d.Events.Publish(ctx, events.Event{Name: name, OccurredAt: d.now(), Data: data})
	if err != nil {
		d.Log.WithError(err).WithField("event", name).Warn("domain event not published")
	}
}

// pushLive forwards an in-app record to connected clients. Best effort.
func (d Deps) pushLive(ctx context.Context, userID uint, payload any) {
	if err := d.Notifier.PushLive(ctx, userID, payload); err != nil {
		d.Log.WithError(err).WithField("userId", userID).Warn("live notification not delivered")
	}
}

func ownsLocation(user *model.User, location *model.Location) bool {
	return user != nil && location != nil && location.UserId == user.ID
}

func ownsWorkSpace(user *model.User, workspace *model.WorkSpace) bool {
	return workspace != nil && ownsLocation(user, workspace.Location)
}

func ownsViewing(user *model.User, viewing *model.Viewing) bool {
	return user != nil && viewing != nil && viewing.UserId == user.ID
}
