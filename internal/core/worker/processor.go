package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mattcann1/ccx-marketplace-api/internal/core/notifications"
)

// StartWebhookWorker polls for queued purchase webhooks and delivers them in
// the background. The purchase path only ever enqueues; delivery failures
// retry here with backoff and never touch the ledger.
func StartWebhookWorker(db *pgxpool.Pool, secret string) {
	go func() {
		slog.Info("👷 Webhook Worker started")
		for {
			processJobs(db, secret)
			time.Sleep(5 * time.Second)
		}
	}()
}

func processJobs(db *pgxpool.Pool, secret string) {
	ctx := context.Background()

	// SKIP LOCKED so multiple instances never double-deliver a job.
	query := `
		SELECT id, url, payload, attempts
		FROM webhook_jobs
		WHERE status = 'PENDING' AND next_run_at <= NOW()
		ORDER BY created_at ASC
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`

	var id string
	var url string
	var payload []byte
	var attempts int

	err := db.QueryRow(ctx, query).Scan(&id, &url, &payload, &attempts)
	if err != nil {
		return
	}

	slog.Info("Worker: Processing job", "url", url, "job_id", id)

	sendErr := notifications.SendWebhook(url, payload, secret)

	if sendErr != nil {
		slog.Error("Worker: Webhook failed", "error", sendErr, "attempts", attempts)
		nextRun := time.Now().Add(time.Duration(attempts*10+10) * time.Second)

		if attempts >= 5 {
			db.Exec(ctx, "UPDATE webhook_jobs SET status = 'FAILED' WHERE id = $1", id)
			slog.Error("Worker: Job marked as FAILED (Max attempts reached)", "job_id", id)
		} else {
			db.Exec(ctx, "UPDATE webhook_jobs SET status = 'PENDING', attempts = attempts + 1, next_run_at = $2 WHERE id = $1", id, nextRun)
			slog.Info("Worker: Scheduled retry", "next_run", nextRun)
		}
	} else {
		slog.Info("✅ Worker: Webhook Sent Successfully!", "job_id", id)
		db.Exec(ctx, "UPDATE webhook_jobs SET status = 'COMPLETED' WHERE id = $1", id)
	}
}
