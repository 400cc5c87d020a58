package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"shutterbook/config"
	bookingRepo "shutterbook/database/repository/booking"
	"shutterbook/models"
	"shutterbook/services/scheduling"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(bookings bookingRepo.BookingRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(scheduling.TypeBookingReminder, handleReminderTask(bookings))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(bookings bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		booking, err := bookings.GetByID(p.BookingID)
		if err != nil {
			log.Printf("[ReminderHandler] failed to load booking %s: %v", p.BookingID, err)
			return err
		}
		if booking == nil || booking.Status != models.BookingStatusConfirmed || booking.ReminderSent {
			// Booking vanished, was cancelled after confirmation, or has
			// already been reminded; the task is stale.
			return nil
		}

		log.Printf("[ReminderHandler] reminder for booking %s: %s at %s %s (client %s <%s>)",
			booking.ID, booking.ServiceID, booking.Date.Format("2006-01-02"), booking.TimeSlot,
			booking.ClientName, booking.ClientEmail)

		return bookings.MarkReminderSent(booking.ID)
	}
}
