package schedulers

import (
	"schedsim/internal/core"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
)

// HighestPriority is the floor aging cannot go below.
const HighestPriority = 1

var dynamicPriorityLog = newLogger("dynamic-priority")

// ScheduleDynamicPriority is preemptive priority scheduling in 1 unit steps.
// After every step each other arrived, unfinished process ages one level
// toward HighestPriority. Arrival for aging is judged against the clock after
// the step.
func ScheduleDynamicPriority(jobs []requests.Job) responses.ScheduleResponse {
	if len(jobs) == 0 {
		dynamicPriorityLog.Infoln("no processes")
		return emptyResponse(DynamicPriorityName)
	}
	dynamicPriorityLog.Infoln("running dynamic priority algorithm with", len(jobs), "processes")

	table := core.NewProcessTable(jobs)
	var cpu core.Cpu
	_, earliest := core.EarliestArrival(table)
	cpu.IdleUntil(earliest)

	slices := make([]responses.TimeSlice, 0)
	eligible := func(i int) bool {
		return !table[i].Done() && table[i].Arrived(cpu.Clock) && table[i].RemainingTime > 0
	}

	for completed := 0; completed < len(table); {
		best := -1
		for i := range table {
			if eligible(i) && (best == -1 || table[i].Priority < table[best].Priority) {
				best = i
			}
		}

		if best == -1 {
			next := core.NextArrival(table)
			if next == -1 {
				break
			}
			cpu.IdleUntil(table[next].Job.ArrivalTime)
			continue
		}

		p := &table[best]
		p.Dispatch(cpu.Clock)
		start := cpu.Run(1)
		p.RemainingTime--
		slices = append(slices, responses.TimeSlice{
			Start:     start,
			End:       cpu.Clock,
			ProcessId: p.Job.ProcessId,
			RunTime:   1,
			Remaining: p.RemainingTime,
			Priority:  p.Priority,
		})
		dynamicPriorityLog.Debugln("t=", start, "pid:", p.Job.ProcessId, "prio", p.Priority, "remaining", p.RemainingTime)

		for i := range table {
			if i != best && eligible(i) && table[i].Priority > HighestPriority {
				table[i].Priority--
			}
		}

		if p.RemainingTime == 0 {
			p.Complete(cpu.Clock)
			completed++
		}
	}

	return generateResponse(DynamicPriorityName, table, slices, &cpu)
}
