package service

import (
	"fmt"
	"movie_discovery/model"
	errorHandler "movie_discovery/pkg/error"
	"time"
)

type ISchedulerService interface {
	Start()
	Stop()
}

// SchedulerService periodically enqueues the recurring tasks, the
// counterpart of a beat process next to the queue workers.
type SchedulerService struct {
	tasks    ITaskPublisher
	doneChan chan bool
}

type scheduleEntry struct {
	taskName string
	interval time.Duration
}

var schedules = []scheduleEntry{
	{taskName: model.TaskRefreshTrendingCache, interval: 1 * time.Hour},
	{taskName: model.TaskCleanupOldCache, interval: 24 * time.Hour},
	{taskName: model.TaskSendWeeklyRecommendations, interval: 7 * 24 * time.Hour},
	{taskName: model.TaskGenerateAnalyticsReport, interval: 12 * time.Hour},
}

func NewSchedulerService(tasks ITaskPublisher) *SchedulerService {
	return &SchedulerService{
		tasks:    tasks,
		doneChan: make(chan bool),
	}
}

//------------------------------------------
//------------------------------------------

func (s *SchedulerService) Start() {
	for _, entry := range schedules {
		go s.runSchedule(entry)
	}
}

func (s *SchedulerService) runSchedule(entry scheduleEntry) {
	ticker := time.NewTicker(entry.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.doneChan:
			return
		case <-ticker.C:
			if err := s.tasks.EnqueueTask(entry.taskName, nil); err != nil {
				errorMessage := fmt.Sprintf("Error enqueueing scheduled task %v: %v", entry.taskName, err)
				errorHandler.SaveError(errorMessage, err)
			}
		}
	}
}

func (s *SchedulerService) Stop() {
	close(s.doneChan)
}
