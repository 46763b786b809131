package scheduler

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/finance/rentbilling/model"
	"rentalku_backend/internals/features/finance/rentbilling/service"
)

// SchedulerStatus is the explicit run-state record. It is maintained here,
// not read back out of the cron library, so status reporting survives a swap
// of the timer primitive.
type SchedulerStatus struct {
	Running bool       `json:"running"`
	NextRun *time.Time `json:"next_run"`
	LastRun *time.Time `json:"last_run"`
}

// RentScheduler owns the monthly generation job: one cron entry at 09:00 on
// the configured day-of-month, a manual trigger that bypasses the
// auto-generate gate, and restart to pick up a changed day setting.
type RentScheduler struct {
	db *gorm.DB

	mu       sync.Mutex
	cron     *cron.Cron
	schedule cron.Schedule
	running  bool
	lastRun  *time.Time
	nextRun  *time.Time
}

func NewRentScheduler(db *gorm.DB) *RentScheduler {
	return &RentScheduler{db: db}
}

// Start reads the settings, registers the cron entry and starts the timer.
// Invalid settings fail the registration, not the process.
func (s *RentScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startLocked()
}

func (s *RentScheduler) startLocked() error {
	settings, err := model.LoadBillingSettings(s.db)
	if err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("scheduler not registered: %w", err)
	}

	loc, err := time.LoadLocation(settings.BillingSettingsTimezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", settings.BillingSettingsTimezone, err)
	}

	spec := fmt.Sprintf("0 9 %d * *", settings.BillingSettingsGenerationDay)
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)
	if _, err := c.AddFunc(spec, s.runScheduled); err != nil {
		return fmt.Errorf("add cron entry: %w", err)
	}
	c.Start()

	s.cron = c
	s.schedule = schedule
	next := schedule.Next(time.Now().In(loc))
	s.nextRun = &next

	log.Printf("[RENT-CRON] registered day=%d tz=%s next=%s",
		settings.BillingSettingsGenerationDay, settings.BillingSettingsTimezone, next.Format(time.RFC3339))
	return nil
}

// runScheduled is the automatic path: current year/month, settings defaults,
// auto-generate gate honored. A failed run is logged and the state returns
// to scheduled.
func (s *RentScheduler) runScheduled() {
	s.setRunning(true)
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[RENT-CRON] run panicked: %v", r)
		}
		s.finishRun()
	}()

	settings, err := model.LoadBillingSettings(s.db)
	if err != nil {
		log.Printf("[RENT-CRON] load settings failed: %v", err)
		return
	}

	now := time.Now()
	result, err := service.RunMonthlyGeneration(s.db, settings, now.Year(), int(now.Month()), service.GenerationOptions{
		Manual: false,
	})
	if err != nil {
		log.Printf("[RENT-CRON] scheduled run failed: %v", err)
		return
	}
	log.Printf("[RENT-CRON] scheduled run: generated=%d skipped=%d errors=%d",
		result.GeneratedCount, result.SkippedCount, len(result.Errors))
}

// TriggerManually runs generation for the given period right now, bypassing
// the auto-generate gate. Past months are legitimate (backfill).
func (s *RentScheduler) TriggerManually(year, month, dueDateOffsetDays int) (service.BatchResult, error) {
	settings, err := model.LoadBillingSettings(s.db)
	if err != nil {
		return service.BatchResult{}, err
	}

	s.setRunning(true)
	defer s.finishRun()

	return service.RunMonthlyGeneration(s.db, settings, year, month, service.GenerationOptions{
		Manual:            true,
		DueDateOffsetDays: dueDateOffsetDays,
	})
}

// Restart re-reads the day-of-month setting and re-registers the job. The
// scheduler never polls for setting changes; operators call this after
// updating the settings row.
func (s *RentScheduler) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		s.cron.Stop()
		s.cron = nil
	}
	return s.startLocked()
}

// Stop halts the timer. In-flight runs finish on their own.
func (s *RentScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		s.cron.Stop()
		s.cron = nil
		s.nextRun = nil
	}
}

func (s *RentScheduler) Status() SchedulerStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SchedulerStatus{
		Running: s.running,
		NextRun: s.nextRun,
		LastRun: s.lastRun,
	}
}

func (s *RentScheduler) setRunning(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = v
}

func (s *RentScheduler) finishRun() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.running = false
	s.lastRun = &now
	if s.schedule != nil {
		next := s.schedule.Next(now)
		s.nextRun = &next
	}
}
