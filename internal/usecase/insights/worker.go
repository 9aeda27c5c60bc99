package insights

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/pkg/jobcontext"
)

// StartWorkerPool starts background workers that process pending
// analysis jobs, plus a cleanup routine for jobs orphaned by dead
// workers.
func (s *service) StartWorkerPool(ctx context.Context) error {
	s.workerMutex.Lock()
	defer s.workerMutex.Unlock()

	if s.isWorkerPoolRunning {
		return fmt.Errorf("worker pool already running")
	}

	s.isWorkerPoolRunning = true
	s.workerStopChan = make(chan struct{})

	workerCount := 2
	if s.cfg != nil && s.cfg.Worker.Count > 0 {
		workerCount = s.cfg.Worker.Count
	}

	if s.logger != nil {
		s.logger.Info("starting analysis worker pool",
			zap.Int("worker_count", workerCount),
		)
	}

	for i := 0; i < workerCount; i++ {
		s.workerWg.Add(1)
		go s.analysisWorker(ctx, i)
	}

	s.workerWg.Add(1)
	go s.cleanupStaleJobs(ctx)

	return nil
}

// StopWorkerPool gracefully stops all worker goroutines
func (s *service) StopWorkerPool() error {
	s.workerMutex.Lock()
	defer s.workerMutex.Unlock()

	if !s.isWorkerPoolRunning {
		return fmt.Errorf("worker pool not running")
	}

	if s.logger != nil {
		s.logger.Info("stopping analysis worker pool")
	}

	close(s.workerStopChan)
	s.workerWg.Wait()
	s.isWorkerPoolRunning = false

	if s.logger != nil {
		s.logger.Info("analysis worker pool stopped")
	}
	return nil
}

// analysisWorker polls for pending jobs and runs the analysis pipeline
// on the ones it claims.
func (s *service) analysisWorker(parentCtx context.Context, workerID int) {
	defer s.workerWg.Done()

	pollInterval := 30 * time.Second
	if s.cfg != nil && s.cfg.Worker.PollInterval > 0 {
		pollInterval = s.cfg.Worker.PollInterval
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	if s.logger != nil {
		s.logger.Info("analysis worker started", zap.Int("worker_id", workerID))
	}

	for {
		select {
		case <-s.workerStopChan:
			if s.logger != nil {
				s.logger.Info("analysis worker stopping", zap.Int("worker_id", workerID))
			}
			return

		case <-ticker.C:
			jobs, err := s.jobRepo.ListByStatus(parentCtx, entities.AnalysisJobStatusPending, 5)
			if err != nil {
				if s.logger != nil {
					s.logger.Error("failed to poll analysis jobs",
						zap.Int("worker_id", workerID),
						zap.Error(err),
					)
				}
				continue
			}

			for _, job := range jobs {
				// Atomic claim: only one worker flips pending to
				// analyzing, the rest skip.
				claimed, err := s.jobRepo.Claim(parentCtx, job.ID, entities.AnalysisJobStatusPending, entities.AnalysisJobStatusAnalyzing)
				if err != nil {
					if s.logger != nil {
						s.logger.Error("failed to claim job",
							zap.String("job_id", job.ID.String()),
							zap.Error(err),
						)
					}
					continue
				}
				if !claimed {
					continue
				}

				if s.logger != nil {
					s.logger.Info("worker claimed analysis job",
						zap.Int("worker_id", workerID),
						zap.String("job_id", job.ID.String()),
						zap.String("meeting_id", job.MeetingID.String()),
					)
				}

				jobTimeout := 5 * time.Minute
				if s.cfg != nil && s.cfg.Worker.JobTimeout > 0 {
					jobTimeout = s.cfg.Worker.JobTimeout
				}
				jobCtx, cancel := jobcontext.JobBegin(parentCtx, job.ID, job.TemplateName, workerID, jobTimeout)

				runErr := jobcontext.JobEnd(jobCtx, func(ctx context.Context) error {
					_, err := s.AnalyzeMeeting(ctx, job.MeetingID, job.TemplateName)
					return err
				})
				cancel()

				if runErr != nil {
					if s.logger != nil {
						s.logger.Error("analysis job failed",
							zap.String("job_id", job.ID.String()),
							zap.Error(runErr),
						)
					}
					if err := s.jobRepo.MarkFailed(parentCtx, job.ID, runErr.Error()); err != nil && s.logger != nil {
						s.logger.Error("failed to mark job failed", zap.Error(err))
					}
					if err := s.meetingRepo.UpdateStatus(parentCtx, job.MeetingID, entities.MeetingStatusFailed); err != nil && s.logger != nil {
						s.logger.Warn("failed to update meeting status", zap.Error(err))
					}
					continue
				}

				if err := s.jobRepo.MarkCompleted(parentCtx, job.ID); err != nil && s.logger != nil {
					s.logger.Error("failed to mark job completed", zap.Error(err))
				}
			}
		}
	}
}

// cleanupStaleJobs resets jobs stuck in analyzing status for more than
// ten minutes back to pending so they get picked up again.
func (s *service) cleanupStaleJobs(parentCtx context.Context) {
	defer s.workerWg.Done()

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.workerStopChan:
			return

		case <-ticker.C:
			reset, err := s.jobRepo.ResetStale(parentCtx, 10)
			if err != nil {
				if s.logger != nil {
					s.logger.Error("failed to reset stale jobs", zap.Error(err))
				}
				continue
			}
			if reset > 0 && s.logger != nil {
				s.logger.Warn("reset stale analysis jobs", zap.Int64("count", reset))
			}
		}
	}
}
