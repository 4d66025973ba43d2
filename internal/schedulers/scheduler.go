package schedulers

import (
	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"

	"schedsim/internal/requests"
	"schedsim/internal/responses"
)

const (
	FirstComeFirstServeName = "FCFS"
	RoundRobinName          = "Round Robin"
	PriorityName            = "Priority"
	DynamicPriorityName     = "Dynamic Priority"
	ShortestJobFirstName    = "SJF"

	// SummaryTimeQuantum is the round robin quantum used when every algorithm
	// runs on the same process set.
	SummaryTimeQuantum = 2
)

// Algorithm is a named scheduling engine. Engines that take no quantum ignore it.
type Algorithm struct {
	Name         string
	NeedsQuantum bool
	Schedule     func(jobs []requests.Job, timeQuantum int) (responses.ScheduleResponse, error)
}

// Algorithms returns the engines in menu order, which is also the order
// ScheduleAll runs them in.
func Algorithms() []Algorithm {
	return []Algorithm{
		{Name: FirstComeFirstServeName, Schedule: withoutQuantum(ScheduleFirstComeFirstServe)},
		{Name: RoundRobinName, NeedsQuantum: true, Schedule: ScheduleRoundRobin},
		{Name: PriorityName, Schedule: withoutQuantum(SchedulePriority)},
		{Name: DynamicPriorityName, Schedule: withoutQuantum(ScheduleDynamicPriority)},
		{Name: ShortestJobFirstName, Schedule: withoutQuantum(ScheduleShortestJobFirst)},
	}
}

func withoutQuantum(fn func([]requests.Job) responses.ScheduleResponse) func([]requests.Job, int) (responses.ScheduleResponse, error) {
	return func(jobs []requests.Job, _ int) (responses.ScheduleResponse, error) {
		return fn(jobs), nil
	}
}

func newLogger(name string) *logger.Logger {
	return logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, name))
}
