package util

import (
	"gonum.org/v1/gonum/stat"

	"schedsim/internal/responses"
)

// CalculateAverage returns the mean waiting, response and turnaround times.
// An empty slice yields zeros.
func CalculateAverage(proccessDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(proccessDetails) == 0 {
		return
	}

	waitingTimes := make([]float64, len(proccessDetails))
	responseTimes := make([]float64, len(proccessDetails))
	turnAroundTimes := make([]float64, len(proccessDetails))
	for i, proccess := range proccessDetails {
		waitingTimes[i] = float64(proccess.WaitingTime)
		responseTimes[i] = float64(proccess.ResponseTime)
		turnAroundTimes[i] = float64(proccess.TurnAroundTime)
	}

	averageWaitingTime = stat.Mean(waitingTimes, nil)
	averageResponseTime = stat.Mean(responseTimes, nil)
	averageTurnAroundTime = stat.Mean(turnAroundTimes, nil)
	return
}
