package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Refresher reloads the content served to visitors. *site.Cache implements it.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// ContentRefreshScheduler periodically re-reads the site content from the CMS
// so published edits show up without a restart.
type ContentRefreshScheduler struct {
	refresher Refresher
	schedule  string
	logger    *zap.Logger

	cron         *cron.Cron
	entryID      cron.EntryID
	mu           sync.RWMutex
	isRunning    bool
	isRefreshing bool
	cancelFunc   context.CancelFunc
	done         chan struct{}
	lastRun      time.Time
	lastErr      error
}

// NewContentRefreshScheduler creates a scheduler. An empty schedule
// disables periodic refresh.
func NewContentRefreshScheduler(refresher Refresher, schedule string, logger *zap.Logger) *ContentRefreshScheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContentRefreshScheduler{
		refresher: refresher,
		schedule:  schedule,
		logger:    logger.Named("scheduler"),
		cron:      cron.New(cron.WithParser(parser)),
	}
}

// Start registers the refresh job and starts the cron runner. It stops
// on its own when ctx is cancelled.
func (s *ContentRefreshScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if s.schedule == "" {
		s.logger.Info("content refresh disabled")
		return nil
	}

	if err := ValidateCronSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	var jobCtx context.Context
	jobCtx, s.cancelFunc = context.WithCancel(ctx)

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runRefresh(jobCtx)
	})
	if err != nil {
		s.cancelFunc()
		return fmt.Errorf("failed to schedule refresh job: %w", err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true
	s.done = make(chan struct{})

	s.logger.Info("content refresh scheduled",
		zap.String("schedule", s.schedule),
		zap.String("description", GetCronDescription(s.schedule)))

	go func(done <-chan struct{}) {
		select {
		case <-ctx.Done():
			s.Stop()
		case <-done:
		}
	}(s.done)

	return nil
}

// Stop waits for a running refresh to finish and stops the runner.
func (s *ContentRefreshScheduler) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	cancel := s.cancelFunc
	s.cancelFunc = nil
	entryID := s.entryID
	close(s.done)
	s.mu.Unlock()

	// the job takes s.mu itself, so wait without holding it
	cancel()
	<-s.cron.Stop().Done()
	s.cron.Remove(entryID)

	s.logger.Info("content refresh stopped")
}

// RunNow refreshes immediately on the caller's goroutine.
func (s *ContentRefreshScheduler) RunNow(ctx context.Context) error {
	return s.runRefresh(ctx)
}

func (s *ContentRefreshScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// LastRun returns when the last refresh finished and its error.
func (s *ContentRefreshScheduler) LastRun() (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRun, s.lastErr
}

// GetNextRunTime returns when the next refresh will occur
func (s *ContentRefreshScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *ContentRefreshScheduler) runRefresh(ctx context.Context) error {
	s.mu.Lock()
	if s.isRefreshing {
		s.mu.Unlock()
		s.logger.Debug("refresh skipped, previous run still in progress")
		return nil
	}
	s.isRefreshing = true
	s.mu.Unlock()

	start := time.Now()
	err := s.refresher.Refresh(ctx)

	s.mu.Lock()
	s.isRefreshing = false
	s.lastRun = time.Now()
	s.lastErr = err
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("content refresh failed", zap.Error(err))
		return err
	}
	s.logger.Info("content refreshed", zap.Duration("took", time.Since(start)))
	return nil
}

// ValidateCronSchedule checks a standard five-field expression or a
// descriptor such as "@hourly".
func ValidateCronSchedule(schedule string) error {
	_, err := parser.Parse(schedule)
	return err
}

// GetCronDescription returns a human-readable description of a cron schedule
func GetCronDescription(schedule string) string {
	switch schedule {
	case "*/5 * * * *":
		return "Every 5 minutes"
	case "*/15 * * * *":
		return "Every 15 minutes"
	case "*/30 * * * *":
		return "Every 30 minutes"
	case "0 * * * *", "@hourly":
		return "Every hour at :00"
	case "0 0 * * *", "@daily":
		return "Daily at midnight"
	default:
		return schedule
	}
}
