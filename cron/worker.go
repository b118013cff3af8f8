package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"storely/config"
	"storely/services/payment"
)

const TypePaymentReconcile = "payment:reconcile"

// InitReconcileWorker runs the async worker and its periodic scheduler in
// the background. The reconcile task re-polls the payment processor for
// payments stuck in non-terminal states.
func InitReconcileWorker(paymentSvc payment.PaymentService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePaymentReconcile, handleReconcileTask(paymentSvc))

	go func() {
		log.Println("[ReconcileWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReconcileWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReconcileWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	startScheduler(redisOpts)
}

// startScheduler enqueues the reconcile task on a fixed interval.
func startScheduler(redisOpts asynq.RedisClientOpt) {
	scheduler := asynq.NewScheduler(redisOpts, nil)

	interval := config.AppConfig.ReconcileIntervalMin
	if interval <= 0 {
		interval = 10
	}
	spec := fmt.Sprintf("@every %dm", interval)

	if _, err := scheduler.Register(spec, asynq.NewTask(TypePaymentReconcile, nil)); err != nil {
		log.Printf("[ReconcileWorker] failed to register schedule: %v", err)
		return
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[ReconcileWorker] scheduler stopped: %v", err)
		}
	}()
}

func handleReconcileTask(paymentSvc payment.PaymentService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		if err := paymentSvc.ReconcilePending(ctx); err != nil {
			log.Printf("[ReconcileWorker] reconcile run failed: %v", err)
			return err
		}
		return nil
	}
}
