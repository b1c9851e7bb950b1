package jobs

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// RequestIntakeJob feeds the dispatch queue with generated delivery requests.
// Each tick produces one pending request with a random service-area dropoff
// and quantity, standing in for real order intake.
type RequestIntakeJob struct {
	handler   commands.CreateRequestCommandHandler
	generator services.RequestGenerator
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewRequestIntakeJob creates a new job for generating delivery requests.
// The schedule is a six-field cron expression from configuration.
func NewRequestIntakeJob(
	handler commands.CreateRequestCommandHandler,
	schedule string,
	logger *slog.Logger,
) *RequestIntakeJob {
	return &RequestIntakeJob{
		handler:   handler,
		generator: services.NewRequestGenerator(),
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "request_intake_job"),
	}
}

// Start begins the request intake job on its configured schedule.
func (j *RequestIntakeJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		generated, genErr := j.generator.Generate(time.Now())
		if genErr != nil {
			j.logger.ErrorContext(ctx, "Request generation failed", "error", genErr)
			return
		}

		cmd, cmdErr := commands.NewCreateRequestCommand(generated.Dropoff(), generated.Quantity())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Request intake command invalid", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Request intake job failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Delivery request generated",
			"dropoff", generated.Dropoff().String(),
			"quantity", generated.Quantity(),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Request intake job started", "schedule", j.schedule)
	return nil
}

// Stop stops the request intake job.
func (j *RequestIntakeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Request intake job stopped")
}
