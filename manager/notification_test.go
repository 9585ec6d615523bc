package manager

import (
	"testing"
	"time"

	"coworking_market/constants"
	"coworking_market/model"
)

func TestNotificationLists(t *testing.T) {
	f := newFixture(t)
	ws := f.workspace(t)

	res, _ := f.notes.SellerList(f.ctx, f.seller)
	if list := res.Data.([]model.InternalNotification); len(list) != 0 {
		t.Fatalf("seller list = %d", len(list))
	}

	v := f.requestViewing(t, ws, f.now.Add(24*time.Hour))
	f.viewings.UpdateStatus(f.ctx, f.seller, ws, v.ID, constants.VIEWING_ACCEPTED)

	res, _ = f.notes.SellerList(f.ctx, f.seller)
	if list := res.Data.([]model.InternalNotification); len(list) != 1 || list[0].ViewingId == nil || *list[0].ViewingId != v.ID {
		t.Fatalf("seller list = %+v", res.Data)
	}
	res, _ = f.notes.BuyerList(f.ctx, f.buyer)
	if list := res.Data.([]model.PushNotification); len(list) != 1 || list[0].RelatedId != v.ID {
		t.Fatalf("buyer list = %+v", res.Data)
	}
}

func TestCheckNotification(t *testing.T) {
	f := newFixture(t)
	ws := f.workspace(t)
	v := f.requestViewing(t, ws, f.now.Add(24*time.Hour))
	internal := v.InternalNotification

	res, _ := f.notes.CheckInternal(f.ctx, f.buyer, internal.ID)
	if res.Status != 400 {
		t.Fatalf("buyer checked a seller notification: %d", res.Status)
	}

	res, err := f.notes.CheckInternal(f.ctx, f.seller, internal.ID)
	if err != nil || res.Status != 200 || messageOf(t, res) != constants.NOTIFICATION_CHECKED {
		t.Fatalf("check: %v %v", res, err)
	}
	stored, _ := f.store.Notifications.FindInternalByID(f.ctx, internal.ID)
	if !stored.Checked {
		t.Fatalf("notification not checked")
	}

	res, _ = f.notes.CheckPush(f.ctx, f.buyer, 9999)
	if res.Status != 400 || messageOf(t, res) != "Notification with id 9999 was not found" {
		t.Fatalf("missing push: %d %v", res.Status, res.Data)
	}
}

func TestPurgeChecked(t *testing.T) {
	f := newFixture(t)
	old := f.now.Add(-40 * 24 * time.Hour)

	seed := []model.PushNotification{
		{UserId: f.buyer.ID, Type: constants.PUSH_VIEWING_ACCEPTED, Checked: true, DTO: model.DTO{CreatedAt: old}},
		{UserId: f.buyer.ID, Type: constants.PUSH_VIEWING_ACCEPTED, Checked: false, DTO: model.DTO{CreatedAt: old}},
		{UserId: f.buyer.ID, Type: constants.PUSH_VIEWING_ACCEPTED, Checked: true, DTO: model.DTO{CreatedAt: f.now}},
	}
	for i := range seed {
		if err := f.store.Notifications.CreatePush(f.ctx, &seed[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	n, err := f.notes.PurgeChecked(f.ctx, checkedNotificationTTL)
	if err != nil || n != 1 {
		t.Fatalf("purged = %d, %v", n, err)
	}
	left, _ := f.store.Notifications.FindPushByUser(f.ctx, f.buyer.ID)
	if len(left) != 2 {
		t.Fatalf("left = %d", len(left))
	}
}
