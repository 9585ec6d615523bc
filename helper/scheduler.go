package helper

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

var (
	reminderScheduler gocron.Scheduler
	cleanupScheduler  *cron.Cron
)

// StartReminderScheduler runs task once a day at hour:minute in loc.
func StartReminderScheduler(log *logrus.Logger, loc *time.Location, hour, minute uint, task func()) error {
	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return err
	}

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(hour, minute, 0),
			),
		),
		gocron.NewTask(task),
	)
	if err != nil {
		_ = s.Shutdown()
		return err
	}

	s.Start()
	reminderScheduler = s
	log.WithFields(logrus.Fields{"hour": hour, "minute": minute, "zone": loc.String()}).Info("viewing reminder scheduler started")
	return nil
}

func StopReminderScheduler(log *logrus.Logger) {
	if reminderScheduler == nil {
		return
	}
	if err := reminderScheduler.Shutdown(); err != nil {
		log.WithError(err).Warn("viewing reminder scheduler shutdown")
	}
	reminderScheduler = nil
}

// StartCleanupScheduler runs task on a cron spec, skipping overlapping runs.
func StartCleanupScheduler(log *logrus.Logger, spec string, task func()) error {
	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	if _, err := c.AddFunc(spec, task); err != nil {
		return err
	}

	c.Start()
	cleanupScheduler = c
	log.WithField("spec", spec).Info("notification cleanup scheduler started")
	return nil
}

func StopCleanupScheduler(log *logrus.Logger) {
	if cleanupScheduler == nil {
		return
	}
	<-cleanupScheduler.Stop().Done()
	cleanupScheduler = nil
	log.Info("notification cleanup scheduler stopped")
}
