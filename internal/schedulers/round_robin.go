package schedulers

import (
	"errors"

	"schedsim/internal/core"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
)

var ErrInvalidTimeQuantum = errors.New("invalid time quantum")

var roundRobinLog = newLogger("round-robin")

// processQueue is a FIFO of process table indices.
type processQueue struct {
	queue []int
}

func (q *processQueue) AddToEnd(index int) {
	q.queue = append(q.queue, index)
}

func (q *processQueue) RemoveFromTop() (int, bool) {
	if len(q.queue) == 0 {
		return -1, false
	}
	index := q.queue[0]
	q.queue = q.queue[1:]
	return index, true
}

func (q *processQueue) Len() int {
	return len(q.queue)
}

// ScheduleRoundRobin time-slices jobs with the given quantum. Processes that
// arrive while a slice runs are admitted only once the slice ends, ahead of
// the process that was just preempted.
func ScheduleRoundRobin(jobs []requests.Job, timeQuantum int) (responses.ScheduleResponse, error) {
	if len(jobs) == 0 {
		roundRobinLog.Infoln("no processes")
		return emptyResponse(RoundRobinName), nil
	}
	if timeQuantum <= 0 {
		roundRobinLog.Warn("rejecting time quantum ", timeQuantum)
		return emptyResponse(RoundRobinName), ErrInvalidTimeQuantum
	}
	roundRobinLog.Infoln("running roundRobin algorithm with timeQuantum =", timeQuantum)

	table := core.NewProcessTable(jobs)
	n := len(table)
	inQueue := make([]bool, n)
	finished := make([]bool, n)
	var readyQueue processQueue
	var cpu core.Cpu
	slices := make([]responses.TimeSlice, 0)

	enqueue := func(index int) {
		readyQueue.AddToEnd(index)
		inQueue[index] = true
	}
	admitArrived := func(currentTime int) {
		for i := range table {
			if !finished[i] && !inQueue[i] && table[i].Arrived(currentTime) {
				enqueue(i)
			}
		}
	}

	first, earliest := core.EarliestArrival(table)
	cpu.IdleUntil(earliest)
	enqueue(first)

	completed := 0
	for completed < n {
		if readyQueue.Len() == 0 {
			next := core.NextArrival(table)
			if next == -1 {
				break
			}
			cpu.IdleUntil(table[next].Job.ArrivalTime)
			enqueue(next)
		}

		// the running process keeps its inQueue flag so admission skips it
		index, _ := readyQueue.RemoveFromTop()
		p := &table[index]
		p.Dispatch(cpu.Clock)

		runTime := min(timeQuantum, p.RemainingTime)
		start := cpu.Run(runTime)
		p.RemainingTime -= runTime
		slices = append(slices, responses.TimeSlice{
			Start:     start,
			End:       cpu.Clock,
			ProcessId: p.Job.ProcessId,
			RunTime:   runTime,
			Remaining: p.RemainingTime,
			Priority:  p.Priority,
		})
		roundRobinLog.Debugln("pid:", p.Job.ProcessId, "ran", start, "..", cpu.Clock, "remaining", p.RemainingTime)

		admitArrived(cpu.Clock)

		if p.RemainingTime == 0 {
			finished[index] = true
			inQueue[index] = false
			p.Complete(cpu.Clock)
			completed++
		} else {
			readyQueue.AddToEnd(index)
		}
	}

	response := generateResponse(RoundRobinName, table, slices, &cpu)
	response.TimeQuantum = timeQuantum
	return response, nil
}
