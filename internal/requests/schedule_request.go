package requests

import (
	"errors"
	"fmt"
)

var ErrNoJobs = errors.New("no jobs")

// Job describes a process submitted to the simulator. Priority is the initial
// priority, lower value means higher priority.
type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
}

type ScheduleRequests struct {
	Jobs        []Job `json:"jobs"`
	TimeQuantum int   `json:"time_quantum,omitempty"`
}

func (j Job) Validate() error {
	switch {
	case j.ProcessId < 1:
		return fmt.Errorf("process_id %d must be positive", j.ProcessId)
	case j.ArrivalTime < 0:
		return fmt.Errorf("pid %d: arrival_time %d must not be negative", j.ProcessId, j.ArrivalTime)
	case j.BurstTime < 1:
		return fmt.Errorf("pid %d: burst_time %d must be at least 1", j.ProcessId, j.BurstTime)
	case j.Priority < 1:
		return fmt.Errorf("pid %d: priority %d must be at least 1", j.ProcessId, j.Priority)
	}
	return nil
}

// Validate checks every job and rejects duplicate process ids.
func (r ScheduleRequests) Validate() error {
	if len(r.Jobs) == 0 {
		return ErrNoJobs
	}
	seen := make(map[int]bool, len(r.Jobs))
	for _, job := range r.Jobs {
		if err := job.Validate(); err != nil {
			return err
		}
		if seen[job.ProcessId] {
			return fmt.Errorf("duplicate process_id %d", job.ProcessId)
		}
		seen[job.ProcessId] = true
	}
	return nil
}
