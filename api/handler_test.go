package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedsim/config"
	"schedsim/internal/generator"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
	"schedsim/internal/schedulers"
)

const twoJobs = `{"jobs":[{"process_id":1,"arrival_time":0,"burst_time":4,"priority":2},{"process_id":2,"arrival_time":0,"burst_time":4,"priority":1}]}`

func newTestApp() *fiber.App {
	app := fiber.New()
	RegisterRoutes(app, NewSchedulerHandlerImpl(&config.SchedulerConfig{
		RoundRobinTimeQuantum: 2,
		Seed:                  5,
		Generator:             generator.DefaultConfig(),
	}))
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestSchedulerHandler_Algorithms(t *testing.T) {
	app := newTestApp()
	var testCases = []struct {
		path          string
		body          string
		expectName    string
		expectWaiting float64
		expectQuantum int
	}{
		{path: "/api/v1/fcfs", body: twoJobs, expectName: schedulers.FirstComeFirstServeName, expectWaiting: 2},
		{path: "/api/v1/rr", body: twoJobs, expectName: schedulers.RoundRobinName, expectWaiting: 3, expectQuantum: 2},
		{path: "/api/v1/rr", body: strings.Replace(twoJobs, `]}`, `],"time_quantum":4}`, 1), expectName: schedulers.RoundRobinName, expectWaiting: 2, expectQuantum: 4},
		{path: "/api/v1/priority", body: twoJobs, expectName: schedulers.PriorityName, expectWaiting: 2},
		{path: "/api/v1/dynamic-priority", body: twoJobs, expectName: schedulers.DynamicPriorityName, expectWaiting: 2.5},
		{path: "/api/v1/sjf", body: twoJobs, expectName: schedulers.ShortestJobFirstName, expectWaiting: 2},
	}

	for _, testCase := range testCases {
		status, data := do(t, app, http.MethodPost, testCase.path, testCase.body)
		require.Equal(t, http.StatusOK, status, testCase.path)

		var response responses.ScheduleResponse
		require.NoError(t, json.Unmarshal(data, &response), testCase.path)
		assert.Equal(t, testCase.expectName, response.Algorithm, testCase.path)
		assert.InDelta(t, testCase.expectWaiting, response.AverageWaitingTime, 1e-9, testCase.path)
		assert.Equal(t, testCase.expectQuantum, response.TimeQuantum, testCase.path)
		assert.Len(t, response.Details, 2, testCase.path)
	}
}

func TestSchedulerHandler_AllAlgorithms(t *testing.T) {
	status, data := do(t, newTestApp(), http.MethodPost, "/api/v1/all", twoJobs)
	require.Equal(t, http.StatusOK, status)

	var comparison responses.ComparisonResponse
	require.NoError(t, json.Unmarshal(data, &comparison))
	assert.NotEmpty(t, comparison.RunId)
	require.Len(t, comparison.Summaries, 5)
	assert.Equal(t, schedulers.FirstComeFirstServeName, comparison.Summaries[0].Algorithm)
	assert.Equal(t, schedulers.ShortestJobFirstName, comparison.Summaries[4].Algorithm)
}

func TestSchedulerHandler_BadRequests(t *testing.T) {
	app := newTestApp()
	var testCases = []struct {
		description string
		path        string
		body        string
	}{
		{description: "malformed json", path: "/api/v1/fcfs", body: `{"jobs":`},
		{description: "no jobs", path: "/api/v1/sjf", body: `{"jobs":[]}`},
		{description: "zero burst", path: "/api/v1/priority", body: `{"jobs":[{"process_id":1,"arrival_time":0,"burst_time":0,"priority":1}]}`},
		{description: "duplicate id", path: "/api/v1/all", body: `{"jobs":[{"process_id":1,"burst_time":1,"priority":1},{"process_id":1,"burst_time":1,"priority":1}]}`},
		{description: "negative quantum", path: "/api/v1/rr", body: strings.Replace(twoJobs, `]}`, `],"time_quantum":-1}`, 1)},
	}

	for _, testCase := range testCases {
		status, data := do(t, app, http.MethodPost, testCase.path, testCase.body)
		assert.Equal(t, http.StatusBadRequest, status, testCase.description)
		var body map[string]string
		require.NoError(t, json.Unmarshal(data, &body), testCase.description)
		assert.NotEmpty(t, body["error"], testCase.description)
	}
}

func TestSchedulerHandler_GenerateProcesses(t *testing.T) {
	app := newTestApp()

	status, data := do(t, app, http.MethodGet, "/api/v1/generate?count=7", "")
	require.Equal(t, http.StatusOK, status)
	var request requests.ScheduleRequests
	require.NoError(t, json.Unmarshal(data, &request))
	assert.Len(t, request.Jobs, 7)
	assert.NoError(t, request.Validate())

	status, _ = do(t, app, http.MethodGet, "/api/v1/generate?count=0", "")
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = do(t, app, http.MethodGet, "/api/v1/generate?count=x", "")
	assert.Equal(t, http.StatusBadRequest, status)
}
