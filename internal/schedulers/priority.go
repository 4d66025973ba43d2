package schedulers

import (
	"schedsim/internal/core"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
)

var priorityLog = newLogger("priority")

// SchedulePriority runs the ready process with the numerically smallest
// priority to completion. Equal priorities go to the earlier input position.
func SchedulePriority(jobs []requests.Job) responses.ScheduleResponse {
	if len(jobs) == 0 {
		priorityLog.Infoln("no processes")
		return emptyResponse(PriorityName)
	}
	priorityLog.Infoln("running priority algorithm with", len(jobs), "processes")

	table := core.NewProcessTable(jobs)
	var cpu core.Cpu
	slices := scheduleNonPreemptive(table, &cpu, func(candidate, best *core.Process) bool {
		return candidate.Priority < best.Priority
	})
	for _, slice := range slices {
		priorityLog.Debugln("pid:", slice.ProcessId, "prio", slice.Priority, "ran", slice.Start, "..", slice.End)
	}

	return generateResponse(PriorityName, table, slices, &cpu)
}

// scheduleNonPreemptive repeatedly picks the best arrived, unfinished process
// and runs it to completion. better reports whether candidate beats the
// current best; when it never does, the first ready process in table order wins.
// With nothing ready the clock jumps to the next arrival.
func scheduleNonPreemptive(table []core.Process, cpu *core.Cpu, better func(candidate, best *core.Process) bool) []responses.TimeSlice {
	slices := make([]responses.TimeSlice, 0, len(table))
	for completed := 0; completed < len(table); {
		best := -1
		for i := range table {
			if table[i].Done() || !table[i].Arrived(cpu.Clock) {
				continue
			}
			if best == -1 || better(&table[i], &table[best]) {
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

		slices = append(slices, runToCompletion(cpu, &table[best]))
		completed++
	}
	return slices
}
