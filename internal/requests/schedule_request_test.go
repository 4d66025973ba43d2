package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduleRequests_Validate(t *testing.T) {
	var testCases = []struct {
		description string
		request     ScheduleRequests
		expectErr   bool
	}{
		{description: "valid", request: ScheduleRequests{Jobs: []Job{{ProcessId: 1, BurstTime: 1, Priority: 1}, {ProcessId: 2, ArrivalTime: 4, BurstTime: 3, Priority: 5}}}},
		{description: "empty", request: ScheduleRequests{}, expectErr: true},
		{description: "zero id", request: ScheduleRequests{Jobs: []Job{{ProcessId: 0, BurstTime: 1, Priority: 1}}}, expectErr: true},
		{description: "negative arrival", request: ScheduleRequests{Jobs: []Job{{ProcessId: 1, ArrivalTime: -1, BurstTime: 1, Priority: 1}}}, expectErr: true},
		{description: "zero burst", request: ScheduleRequests{Jobs: []Job{{ProcessId: 1, Priority: 1}}}, expectErr: true},
		{description: "zero priority", request: ScheduleRequests{Jobs: []Job{{ProcessId: 1, BurstTime: 1}}}, expectErr: true},
		{description: "duplicate id", request: ScheduleRequests{Jobs: []Job{{ProcessId: 1, BurstTime: 1, Priority: 1}, {ProcessId: 1, BurstTime: 2, Priority: 1}}}, expectErr: true},
	}

	for _, testCase := range testCases {
		err := testCase.request.Validate()
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		assert.NoError(t, err, testCase.description)
	}
}
