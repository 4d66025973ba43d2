package responses

type ProcessResponse struct {
	ProcessId       int `json:"process_id"`
	ArrivalTime     int `json:"arrival_time"`
	BurstTime       int `json:"burst_time"`
	InitialPriority int `json:"initial_priority"`
	FinalPriority   int `json:"final_priority"`
	StartTime       int `json:"start_time"`
	FinishTime      int `json:"finish_time"`
	WaitingTime     int `json:"waiting_time"`
	TurnAroundTime  int `json:"turn_around_time"`
	ResponseTime    int `json:"response_time"`
}

// TimeSlice is one entry of the execution log: ProcessId ran on [Start, End).
type TimeSlice struct {
	Start     int `json:"start"`
	End       int `json:"end"`
	ProcessId int `json:"process_id"`
	RunTime   int `json:"run_time"`
	Remaining int `json:"remaining"`
	Priority  int `json:"priority"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TimeQuantum           int               `json:"time_quantum,omitempty"`
	TotalTime             float64           `json:"total_time"`
	IdleTime              float64           `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
	Slices                []TimeSlice       `json:"slices"`
}

type Summary struct {
	Algorithm             string  `json:"algorithm"`
	AverageWaitingTime    float64 `json:"average_waiting_time"`
	AverageTurnAroundTime float64 `json:"average_turn_around_time"`
}

func (s ScheduleResponse) Summary() Summary {
	return Summary{
		Algorithm:             s.Algorithm,
		AverageWaitingTime:    s.AverageWaitingTime,
		AverageTurnAroundTime: s.AverageTurnAroundTime,
	}
}

// Detail returns the row of the given process id.
func (s ScheduleResponse) Detail(processId int) (ProcessResponse, bool) {
	for _, d := range s.Details {
		if d.ProcessId == processId {
			return d, true
		}
	}
	return ProcessResponse{}, false
}

// ComparisonResponse holds the results of running every algorithm on one
// process set, Summaries in the same order as Results.
type ComparisonResponse struct {
	RunId     string             `json:"run_id"`
	Results   []ScheduleResponse `json:"results"`
	Summaries []Summary          `json:"summaries"`
}
