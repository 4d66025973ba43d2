package schedulers

import (
	"sort"

	"schedsim/internal/core"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
)

var fcfsLog = newLogger("fcfs")

// ScheduleFirstComeFirstServe runs jobs in (arrival time, process id) order,
// each to completion. Details are returned in dispatch order.
func ScheduleFirstComeFirstServe(jobs []requests.Job) responses.ScheduleResponse {
	if len(jobs) == 0 {
		fcfsLog.Infoln("no processes")
		return emptyResponse(FirstComeFirstServeName)
	}
	fcfsLog.Infoln("running fcfs algorithm with", len(jobs), "processes")

	table := core.NewProcessTable(jobs)
	sort.SliceStable(table, func(i, j int) bool {
		if table[i].Job.ArrivalTime == table[j].Job.ArrivalTime {
			return table[i].Job.ProcessId < table[j].Job.ProcessId
		}
		return table[i].Job.ArrivalTime < table[j].Job.ArrivalTime
	})

	var cpu core.Cpu
	slices := make([]responses.TimeSlice, 0, len(table))
	for i := range table {
		cpu.IdleUntil(table[i].Job.ArrivalTime)
		slice := runToCompletion(&cpu, &table[i])
		fcfsLog.Debugln("pid:", slice.ProcessId, "ran", slice.Start, "..", slice.End)
		slices = append(slices, slice)
	}

	return generateResponse(FirstComeFirstServeName, table, slices, &cpu)
}
