package jobs

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"kiratakip/internal/auth"
)

// StartSessionCleanup schedules a periodic purge of expired sessions and
// starts the scheduler. The caller owns shutdown.
func StartSessionCleanup(sessions *auth.SessionManager, interval time.Duration, logger *zap.Logger) (gocron.Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if removed := sessions.Purge(); removed > 0 {
				logger.Info("purged expired sessions", zap.Int("removed", removed))
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	scheduler.Start()
	return scheduler, nil
}
