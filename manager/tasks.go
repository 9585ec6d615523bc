package manager

import (
	"context"
	"time"
)

const (
	taskTimeout            = 5 * time.Minute
	checkedNotificationTTL = 30 * 24 * time.Hour
)

// ReminderTask is the scheduled body of the daily viewing reminder job.
func (m *ViewingManager) ReminderTask() func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
		defer cancel()

		sent, err := m.SendUpcomingReminders(ctx)
		if err != nil {
			m.Log.WithError(err).Error("viewing reminders failed")
			return
		}
		m.Log.WithField("sent", sent).Info("viewing reminders done")
	}
}

// CleanupTask is the scheduled body of the checked notification purge.
func (m *NotificationsManager) CleanupTask() func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
		defer cancel()

		n, err := m.PurgeChecked(ctx, checkedNotificationTTL)
		if err != nil {
			m.Log.WithError(err).Error("notification cleanup failed")
			return
		}
		m.Log.WithField("deleted", n).Info("notification cleanup done")
	}
}
