package schedulers

import (
	"schedsim/internal/core"
	"schedsim/internal/responses"
	"schedsim/internal/util"
)

// generateResponse builds the response rows in the given table order.
func generateResponse(algorithm string, table []core.Process, slices []responses.TimeSlice, cpu *core.Cpu) responses.ScheduleResponse {
	proccessDetails := make([]responses.ProcessResponse, 0, len(table))
	for i := range table {
		proccessDetails = append(proccessDetails, generateProcessDetails(table[i]))
	}
	if slices == nil {
		slices = make([]responses.TimeSlice, 0)
	}

	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(proccessDetails)
	metric := cpu.Metric()
	return responses.ScheduleResponse{
		Algorithm:             algorithm,
		TotalTime:             float64(metric.TotalTime),
		IdleTime:              float64(metric.IdleTime),
		CpuUtilization:        metric.Utilization(),
		CpuThroughput:         metric.Throughput(len(table)),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		Details:               proccessDetails,
		Slices:                slices,
	}
}

func generateProcessDetails(process core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:       process.Job.ProcessId,
		ArrivalTime:     process.Job.ArrivalTime,
		BurstTime:       process.Job.BurstTime,
		InitialPriority: process.Job.Priority,
		FinalPriority:   process.Priority,
		StartTime:       process.StartTime,
		FinishTime:      process.FinishTime,
		WaitingTime:     process.WaitingTime,
		TurnAroundTime:  process.TurnaroundTime,
		ResponseTime:    process.StartTime - process.Job.ArrivalTime,
	}
}

// emptyResponse is the defined result for an empty process set.
func emptyResponse(algorithm string) responses.ScheduleResponse {
	return responses.ScheduleResponse{
		Algorithm: algorithm,
		Details:   make([]responses.ProcessResponse, 0),
		Slices:    make([]responses.TimeSlice, 0),
	}
}

// runToCompletion dispatches a non-preemptive process and returns its slice.
func runToCompletion(cpu *core.Cpu, p *core.Process) responses.TimeSlice {
	p.Dispatch(cpu.Clock)
	start := cpu.Run(p.Job.BurstTime)
	p.Complete(cpu.Clock)
	return responses.TimeSlice{
		Start:     start,
		End:       cpu.Clock,
		ProcessId: p.Job.ProcessId,
		RunTime:   p.Job.BurstTime,
		Remaining: 0,
		Priority:  p.Priority,
	}
}
