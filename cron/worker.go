package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"divineastro/config"
	"divineastro/models"
	"divineastro/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeAppointmentReminder = "appointment:reminder"

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker() {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAppointmentReminder, handleReminderTask)

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleReminderTask fires when an accepted consultation is an hour away.
// Delivery is a structured log entry until a mail channel is attached.
func handleReminderTask(ctx context.Context, task *asynq.Task) error {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		utils.GetLogger().Error("reminder: invalid payload", zap.Error(err))
		return err
	}

	utils.GetLogger().Info("consultation reminder due",
		zap.String("appointmentId", p.AppointmentID),
		zap.String("email", p.Email),
		zap.String("date", p.Date),
		zap.String("time", p.Time),
		zap.String("meetLink", p.MeetLink))
	return nil
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}
}
