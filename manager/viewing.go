package manager

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"coworking_market/constants"
	"coworking_market/events"
	"coworking_market/model"
	"coworking_market/notification"
	"coworking_market/utils"
	"coworking_market/validate"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

const passImageSize = 256

type ViewingManager struct {
	Deps
	statusChecker *UserStatusChecker
}

func NewViewingManager(deps Deps, statusChecker *UserStatusChecker) *ViewingManager {
	return &ViewingManager{Deps: deps, statusChecker: statusChecker}
}

type ViewingRow struct {
	ID          uint    `json:"id"`
	StartTime   int64   `json:"startTime"`
	EndTime     *int64  `json:"endTime"`
	Phone       string  `json:"phone"`
	Status      string  `json:"status"`
	MeetingName *string `json:"meetingName"`
	Name        *string `json:"name"`
	Email       *string `json:"email"`
}

func (m *ViewingManager) List(ctx context.Context, workspace *model.WorkSpace) (*Response, error) {
	viewings, err := m.Store.Viewings.FindByWorkSpace(ctx, workspace.ID)
	if err != nil {
		return nil, err
	}

	list := make([]ViewingRow, 0, len(viewings))
	for _, v := range viewings {
		row := ViewingRow{
			ID:        v.ID,
			StartTime: v.StartTime.Unix(),
			EndTime:   utils.UnixOrNil(v.EndTime),
			Phone:     v.Phone,
			Status:    v.Status,
		}
		if v.User != nil {
			row.Name = utils.Ptr(v.User.Fullname())
			row.Email = utils.Ptr(v.User.Email)
		}
		list = append(list, row)
	}
	return respond(http.StatusOK, list), nil
}

func (m *ViewingManager) Add(ctx context.Context, buyer *model.User, workspace *model.WorkSpace, input model.AddViewingInput) (*Response, error) {
	if input.StartTime == 0 {
		return badRequest(constants.CHOOSE_START_DATE), nil
	}
	if workspace.AvailableFrom != nil && workspace.AvailableFrom.Unix() > input.StartTime {
		return badRequest(constants.VIEWING_TEMP_UNAVAILABLE), nil
	}
	if errs := validate.Check(input); errs != nil {
		return fieldErrors(errs), nil
	}

	start := time.Unix(input.StartTime, 0).UTC()
	end := start
	if input.EndTime != nil {
		end = time.Unix(*input.EndTime, 0).UTC()
	}

	viewing := model.Viewing{
		WorkSpaceId: workspace.ID,
		UserId:      buyer.ID,
		StartTime:   start,
		EndTime:     &end,
		Phone:       input.Phone,
		Status:      constants.VIEWING_PENDING,
		PassCode:    uuid.NewString(),
	}
	if err := m.Store.Viewings.Create(ctx, &viewing); err != nil {
		return nil, err
	}

	location := workspace.Location
	seller, err := m.Store.Users.FindByID(ctx, location.UserId)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, fmt.Errorf("location %d has no seller", location.ID)
	}

	err = m.Notifier.SendEmail(ctx, notification.Email{
		Event: constants.EVENT_VIEWING_REQUEST,
		To:    seller.Email,
		Params: map[string]any{
			"location":         location,
			"workspace":        workspace,
			"seller":           seller,
			"buyer":            buyer,
			"viewing":          viewing,
			"link":             m.Links.Front(constants.FRONT_IN_DEPTH, workspace.ID),
			"linkNotification": m.Links.Front(constants.FRONT_NOTIFICATIONS),
		},
	})
	if err != nil {
		return nil, err
	}

	internal := model.InternalNotification{
		UserId:    seller.ID,
		ViewingId: &viewing.ID,
		Status:    constants.INTERNAL_VIEWING_REQUEST,
		Params: datatypes.JSONMap{
			"time":          start.Format(utils.NOTIFICATION_TIME_FORMAT),
			"date":          utils.FormatLongDate(start),
			"location_name": location.Name,
		},
	}
	if err := m.Store.Notifications.CreateInternal(ctx, &internal); err != nil {
		return nil, err
	}
	m.pushLive(ctx, seller.ID, internal)

	if _, err := m.statusChecker.ChangeStatus(ctx, buyer, constants.USER_STATUS_BOOKED_VIEWING); err != nil {
		return nil, err
	}

	m.publish(ctx, events.VIEWING_REQUESTED, map[string]any{"viewingId": viewing.ID, "workspaceId": workspace.ID, "userId": buyer.ID})
	m.Log.WithFields(logrus.Fields{"viewingId": viewing.ID, "workspaceId": workspace.ID, "userId": buyer.ID}).Info("viewing requested")

	return message(http.StatusCreated, constants.VIEWING_ADDED), nil
}

func (m *ViewingManager) UpdateStatus(ctx context.Context, seller *model.User, workspace *model.WorkSpace, viewingID uint, status string) (*Response, error) {
	if !utils.IsValidValueOfConstant(status, constants.ViewingStatuses()) {
		return badRequest(constants.WRONG_STATUS), nil
	}

	viewing, err := m.Store.Viewings.FindInWorkSpace(ctx, workspace.ID, viewingID)
	if err != nil {
		return nil, err
	}
	if viewing == nil {
		return badRequest(constants.BOOKING_RECORD_NOT_EXIST), nil
	}
	if viewing.Status == status {
		return message(http.StatusOK, constants.NOTHING_TO_CHANGE), nil
	}

	previous := viewing.Status
	viewing.Status = status
	if err := m.Store.Viewings.Save(ctx, viewing); err != nil {
		return nil, err
	}

	location := workspace.Location
	params := datatypes.JSONMap{
		"time":           viewing.StartTime.Format(utils.NOTIFICATION_TIME_FORMAT),
		"date":           utils.FormatLongDate(viewing.StartTime),
		"workspace_info": workspace.WorkspaceInfo(),
		"location_name":  location.Name,
	}

	switch status {
	case constants.VIEWING_ACCEPTED:
		if err := m.notifyAccepted(ctx, seller, workspace, viewing); err != nil {
			return nil, err
		}
		if err := m.changeInternalStatus(ctx, viewing, constants.INTERNAL_VIEWING_ACCEPTED, params); err != nil {
			return nil, err
		}
	case constants.VIEWING_DECLINED:
		if err := m.changeInternalStatus(ctx, viewing, constants.INTERNAL_VIEWING_DECLINED, params); err != nil {
			return nil, err
		}
	}

	m.publish(ctx, events.VIEWING_STATUS_CHANGED, map[string]any{"viewingId": viewing.ID, "from": previous, "to": status})
	m.Log.WithFields(logrus.Fields{"viewingId": viewing.ID, "from": previous, "to": status}).Info("viewing status changed")

	return respond(http.StatusOK, map[string]any{"internalNotification": viewing.CheckedInternalNotification()}), nil
}

func (m *ViewingManager) notifyAccepted(ctx context.Context, seller *model.User, workspace *model.WorkSpace, viewing *model.Viewing) error {
	buyer := viewing.User
	if buyer == nil {
		return fmt.Errorf("viewing %d has no buyer", viewing.ID)
	}
	location := workspace.Location

	pass, err := utils.GenerateQRCode(m.passLink(viewing), passImageSize)
	if err != nil {
		return err
	}

	err = m.Notifier.SendEmail(ctx, notification.Email{
		Event: constants.EVENT_VIEWING_APPROVED,
		To:    buyer.Email,
		Params: map[string]any{
			"seller":    seller,
			"buyer":     buyer,
			"location":  location,
			"workspace": workspace,
			"link":      m.Links.Front(constants.FRONT_IN_DEPTH, workspace.ID),
			"viewing":   viewing,
		},
		Attachments: []notification.Attachment{
			{Filename: "viewing-pass.png", ContentType: "image/png", Data: pass},
		},
	})
	if err != nil {
		return err
	}

	push := model.PushNotification{
		UserId:    buyer.ID,
		Type:      constants.PUSH_VIEWING_ACCEPTED,
		RelatedId: viewing.ID,
		Params: datatypes.JSONMap{
			"startTime": viewing.StartTime.Format(utils.PUSH_TIME_FORMAT),
			"startDate": viewing.StartTime.Format(utils.PUSH_DATE_FORMAT),
			"address":   location.Address,
			"user":      buyer.Fullname(),
		},
	}
	if err := m.Store.Notifications.CreatePush(ctx, &push); err != nil {
		return err
	}
	m.pushLive(ctx, buyer.ID, push)
	return nil
}

func (m *ViewingManager) changeInternalStatus(ctx context.Context, viewing *model.Viewing, status string, params datatypes.JSONMap) error {
	internal := viewing.InternalNotification
	if internal == nil {
		return nil
	}
	internal.Status = status
	internal.Params = params
	return m.Store.Notifications.SaveInternal(ctx, internal)
}

// CheckViewing runs the buyer-side preconditions in order.
func (m *ViewingManager) CheckViewing(ctx context.Context, buyer *model.User, viewingID uint) (CheckResult, error) {
	viewing, err := m.Store.Viewings.FindByID(ctx, viewingID)
	if err != nil {
		return CheckResult{}, err
	}
	return runChecks(cancelChecks, buyer, viewing), nil
}

func (m *ViewingManager) Cancel(ctx context.Context, buyer *model.User, viewingID uint) (*Response, error) {
	result, err := m.CheckViewing(ctx, buyer, viewingID)
	if err != nil {
		return nil, err
	}
	if !result.OK {
		return badRequest(result.Reason), nil
	}

	viewing := result.Viewing
	if viewing.StartTime.Before(m.now()) {
		return badRequest(constants.CANNOT_CANCEL_EXPIRED), nil
	}

	viewing.Status = constants.VIEWING_CANCELED
	if err := m.Store.Viewings.Save(ctx, viewing); err != nil {
		return nil, err
	}

	m.publish(ctx, events.VIEWING_CANCELED, map[string]any{"viewingId": viewing.ID, "workspaceId": result.WorkSpace.ID, "userId": buyer.ID})
	m.Log.WithFields(logrus.Fields{"viewingId": viewing.ID, "userId": buyer.ID}).Info("viewing canceled")

	return message(http.StatusOK, constants.VIEWING_CANCELED_MESSAGE), nil
}

func (m *ViewingManager) passLink(viewing *model.Viewing) string {
	return m.Links.Front(constants.FRONT_VIEWING_PASS, viewing.PassCode)
}

// Pass renders the QR pass of an accepted viewing owned by the buyer.
func (m *ViewingManager) Pass(ctx context.Context, buyer *model.User, viewingID uint) ([]byte, *Response, error) {
	viewing, err := m.Store.Viewings.FindByID(ctx, viewingID)
	if err != nil {
		return nil, nil, err
	}
	if !ownsViewing(buyer, viewing) || viewing.Status != constants.VIEWING_ACCEPTED {
		return nil, badRequest(constants.VIEWING_RECORD_NOT_FOUND), nil
	}

	png, err := utils.GenerateQRCode(m.passLink(viewing), passImageSize)
	if err != nil {
		return nil, nil, err
	}
	return png, nil, nil
}

// SendUpcomingReminders emails buyers whose accepted viewing starts within
// the next 24 hours. Delivery failures are logged and skipped.
func (m *ViewingManager) SendUpcomingReminders(ctx context.Context) (int, error) {
	from := m.now()
	viewings, err := m.Store.Viewings.FindAcceptedBetween(ctx, from, from.Add(24*time.Hour))
	if err != nil {
		return 0, err
	}

	sent := 0
	for i := range viewings {
		v := &viewings[i]
		if v.User == nil || v.WorkSpace == nil || v.WorkSpace.Location == nil {
			continue
		}
		err := m.Notifier.SendEmail(ctx, notification.Email{
			Event: constants.EVENT_VIEWING_REMINDER,
			To:    v.User.Email,
			Params: map[string]any{
				"buyer":     v.User,
				"location":  v.WorkSpace.Location,
				"workspace": v.WorkSpace,
				"viewing":   v,
				"link":      m.Links.Front(constants.FRONT_IN_DEPTH, v.WorkSpaceId),
			},
		})
		if err != nil {
			m.Log.WithError(err).WithField("viewingId", v.ID).Warn("viewing reminder not sent")
			continue
		}
		sent++
	}
	return sent, nil
}
