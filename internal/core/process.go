package core

import "schedsim/internal/requests"

// Unset marks a start or finish time that has not happened yet.
const Unset = -1

// Process is the per-run state of one job. It is always owned by a single
// scheduler invocation.
type Process struct {
	Job            requests.Job
	Priority       int
	RemainingTime  int
	StartTime      int
	FinishTime     int
	WaitingTime    int
	TurnaroundTime int
}

// NewProcessTable copies jobs into a fresh run state table indexed by input
// position. The caller's slice is never referenced afterwards.
func NewProcessTable(jobs []requests.Job) []Process {
	table := make([]Process, len(jobs))
	for i, job := range jobs {
		table[i] = Process{Job: job}
		table[i].Reset()
	}
	return table
}

func (p *Process) Reset() {
	p.Priority = p.Job.Priority
	p.RemainingTime = p.Job.BurstTime
	p.StartTime = Unset
	p.FinishTime = Unset
	p.WaitingTime = 0
	p.TurnaroundTime = 0
}

// Dispatch records the first time the process gets the cpu.
func (p *Process) Dispatch(currentTime int) {
	if p.StartTime == Unset {
		p.StartTime = currentTime
	}
}

// Complete finalizes the process at finishTime and derives its metrics.
func (p *Process) Complete(finishTime int) {
	p.RemainingTime = 0
	p.FinishTime = finishTime
	p.TurnaroundTime = p.FinishTime - p.Job.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.Job.BurstTime
}

func (p *Process) Done() bool {
	return p.FinishTime != Unset
}

func (p *Process) Arrived(currentTime int) bool {
	return p.Job.ArrivalTime <= currentTime
}

// NextArrival returns the index of the unfinished process with the smallest
// arrival time, first index on ties, or -1 when every process is finished.
func NextArrival(table []Process) int {
	next := -1
	for i := range table {
		if table[i].Done() {
			continue
		}
		if next == -1 || table[i].Job.ArrivalTime < table[next].Job.ArrivalTime {
			next = i
		}
	}
	return next
}

// EarliestArrival returns the smallest arrival time in the table, first index
// on ties. The table must not be empty.
func EarliestArrival(table []Process) (index int, arrival int) {
	for i := range table {
		if table[i].Job.ArrivalTime < table[index].Job.ArrivalTime {
			index = i
		}
	}
	return index, table[index].Job.ArrivalTime
}
