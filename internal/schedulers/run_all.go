package schedulers

import (
	"github.com/google/uuid"

	"schedsim/internal/requests"
	"schedsim/internal/responses"
)

var runAllLog = newLogger("all")

// ScheduleAll runs every algorithm on its own copy of jobs, round robin with
// SummaryTimeQuantum, and collects the summaries in run order.
func ScheduleAll(jobs []requests.Job) responses.ComparisonResponse {
	runId := uuid.NewString()
	runAllLog.Infoln("run", runId, "comparing all algorithms on", len(jobs), "processes")

	comparison := responses.ComparisonResponse{
		RunId:     runId,
		Results:   make([]responses.ScheduleResponse, 0, 5),
		Summaries: make([]responses.Summary, 0, 5),
	}
	for _, algorithm := range Algorithms() {
		// SummaryTimeQuantum is positive, so no engine can fail here
		response, _ := algorithm.Schedule(jobs, SummaryTimeQuantum)
		comparison.Results = append(comparison.Results, response)
		comparison.Summaries = append(comparison.Summaries, response.Summary())
	}
	return comparison
}
