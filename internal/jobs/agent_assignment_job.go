package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AgentAssignmentJob manages the scheduled assignment of delivery agents to
// orders. Runs every five seconds to match the oldest placed order with an
// available agent.
type AgentAssignmentJob struct {
	handler commands.AssignAgentCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAgentAssignmentJob creates a new job for assigning delivery agents.
// Uses AssignAgentCommandHandler to process one pending order per tick.
func NewAgentAssignmentJob(handler commands.AssignAgentCommandHandler, logger *slog.Logger) *AgentAssignmentJob {
	return &AgentAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "agent_assignment_job"),
	}
}

// Start begins the agent assignment job.
func (j *AgentAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignNextOrderCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoOrderFound) && !errors.Is(err, commands.ErrNoAvailableAgentsFound) {
				j.logger.ErrorContext(ctx, "Agent assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Agent assignment job started (running every 5 seconds)")
	return nil
}

// Stop stops the agent assignment job.
func (j *AgentAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Agent assignment job stopped")
}
