package worker

import (
	"context"
	"sync"
	"time"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/logger"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/quest"
)

// rotationZone anchors rotations to the community's midnight (Moscow time)
var rotationZone = time.FixedZone("UTC+3", 3*60*60)

// QuestRotationWorker tops up the periodic quest sets at 00:00 in the
// rotation zone: daily quests every day, weekly on Mondays, monthly on
// the first of the month.
type QuestRotationWorker struct {
	quests   quest.Service
	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewQuestRotationWorker creates a new QuestRotationWorker
func NewQuestRotationWorker(quests quest.Service) *QuestRotationWorker {
	return &QuestRotationWorker{
		quests:   quests,
		shutdown: make(chan struct{}),
	}
}

// Start schedules the first rotation
func (w *QuestRotationWorker) Start() {
	w.scheduleNext()
}

// scheduleNext calculates the time until the next midnight rotation and
// arms the timer. Two-stage scheduling prevents tight-loop rescheduling
// when the timer fires early.
func (w *QuestRotationWorker) scheduleNext() {
	duration := timeUntilNextRotation()
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}

	if duration > 1*time.Hour {
		// Stage 1: standby. Wake up 45 minutes before rotation.
		waitDuration := duration - 45*time.Minute
		w.timer = time.AfterFunc(waitDuration, func() {
			w.scheduleNext()
		})
		w.mu.Unlock()

		nextCheck := time.Now().UTC().Add(waitDuration)
		log.Info(LogMsgRotationStandby, "next_check_at", nextCheck)
		return
	}

	// Stage 2: final approach. Schedule the actual rotation.
	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		// If the timer triggered early (jitter > 10s), reschedule for
		// the remaining time instead of rotating twice.
		rem := timeUntilNextRotation()
		if rem > 10*time.Second && rem < 23*time.Hour {
			w.scheduleNext()
			return
		}

		w.executeRotation()
		w.scheduleNext()
	})
	w.mu.Unlock()

	nextRotation := time.Now().UTC().Add(duration)
	log.Info(LogMsgRotationScheduled, "next_rotation_at", nextRotation)
}

// executeRotation tops up the due quest sets in a tracked goroutine
func (w *QuestRotationWorker) executeRotation() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx := context.Background()
		log := logger.FromContext(ctx)
		log.Info(LogMsgRotationStarting)

		now := time.Now().In(rotationZone)
		periods := []string{quest.PeriodDaily}
		if now.Weekday() == time.Monday {
			periods = append(periods, quest.PeriodWeekly)
		}
		if now.Day() == 1 {
			periods = append(periods, quest.PeriodMonthly)
		}

		total := 0
		for _, period := range periods {
			created, err := w.quests.EnsurePeriodic(ctx, period)
			if err != nil {
				log.Error(LogMsgRotationFailed, "period", period, "error", err)
				continue
			}
			total += len(created)
		}

		log.Info(LogMsgRotationCompleted, "periods", periods, "quests_created", total)
	}()
}

// TriggerNow runs a rotation immediately, outside the schedule
func (w *QuestRotationWorker) TriggerNow() {
	w.executeRotation()
}

// Shutdown cancels the pending timer and waits for in-flight rotations
func (w *QuestRotationWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)

	close(w.shutdown)

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Quest rotation worker shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn("Quest rotation worker shutdown timeout")
		return ctx.Err()
	}
}

// timeUntilNextRotation calculates the duration until the next 00:00 in
// the rotation zone
func timeUntilNextRotation() time.Duration {
	now := time.Now().In(rotationZone)
	next := time.Date(
		now.Year(), now.Month(), now.Day(),
		0, 0, 0, 0, rotationZone,
	)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
