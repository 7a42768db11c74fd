package CronJobs

import (
	"fmt"
	"log"
	"time"

	"DentalClinic/Store"

	"github.com/go-co-op/gocron"
)

// RefreshWorker periodically re-reads the record set and reports how
// many appointments fall on the current day.
type RefreshWorker struct {
	Records *Store.Store
}

func NewRefreshWorker(records *Store.Store) *RefreshWorker {
	return &RefreshWorker{
		Records: records,
	}
}

// StartRefreshCron starts the recurring check. The caller owns the
// returned scheduler and stops it on shutdown.
func (rw *RefreshWorker) StartRefreshCron() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(60).Seconds().Do(func() {
		if err := rw.CheckTodaysAppointments(); err != nil {
			log.Printf("Error checking today's appointments: %v", err)
		}
	})

	scheduler.StartAsync()
	log.Println("Records refresh cron job started")

	return scheduler
}

// CheckTodaysAppointments is read-only and advisory; it only logs.
func (rw *RefreshWorker) CheckTodaysAppointments() error {
	today := time.Now().Format("2006-01-02")

	due, err := rw.Records.AppointmentsOnDate(today)
	if err != nil {
		return fmt.Errorf("failed to query today's appointments: %w", err)
	}

	if len(due) > 0 {
		log.Printf("There are %d appointment(s) scheduled for today.", len(due))
	}

	return nil
}
