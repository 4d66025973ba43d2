package schedulers

import (
	"schedsim/internal/core"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
)

var sjfLog = newLogger("sjf")

// ScheduleShortestJobFirst is non-preemptive SJF. Equal bursts go to the
// smaller process id.
func ScheduleShortestJobFirst(jobs []requests.Job) responses.ScheduleResponse {
	if len(jobs) == 0 {
		sjfLog.Infoln("no processes")
		return emptyResponse(ShortestJobFirstName)
	}
	sjfLog.Infoln("running sjf algorithm with", len(jobs), "processes")

	table := core.NewProcessTable(jobs)
	var cpu core.Cpu
	_, earliest := core.EarliestArrival(table)
	cpu.IdleUntil(earliest)

	slices := scheduleNonPreemptive(table, &cpu, shorterJob)
	for _, slice := range slices {
		sjfLog.Debugln("pid:", slice.ProcessId, "burst", slice.RunTime, "ran", slice.Start, "..", slice.End)
	}

	return generateResponse(ShortestJobFirstName, table, slices, &cpu)
}

func shorterJob(candidate, best *core.Process) bool {
	if candidate.Job.BurstTime == best.Job.BurstTime {
		return candidate.Job.ProcessId < best.Job.ProcessId
	}
	return candidate.Job.BurstTime < best.Job.BurstTime
}
