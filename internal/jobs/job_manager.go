package jobs

import (
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	agentAssignmentJob *AgentAssignmentJob
	stateFlushJob      *StateFlushJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the assignment handler and the state flusher as dependencies.
func NewJobManager(
	assignAgentHandler commands.AssignAgentCommandHandler,
	flusher StateFlusher,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		agentAssignmentJob: NewAgentAssignmentJob(assignAgentHandler, logger),
		stateFlushJob:      NewStateFlushJob(flusher, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.agentAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start agent assignment job: %w", err)
	}

	if err := jm.stateFlushJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.agentAssignmentJob.Stop()
		return fmt.Errorf("failed to start state flush job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stateFlushJob.Stop()
	jm.agentAssignmentJob.Stop()
}
