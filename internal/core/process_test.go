package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"schedsim/internal/requests"
)

func TestNewProcessTable(t *testing.T) {
	jobs := []requests.Job{
		{ProcessId: 1, ArrivalTime: 2, BurstTime: 3, Priority: 4},
		{ProcessId: 2, ArrivalTime: 0, BurstTime: 1, Priority: 1},
	}
	table := NewProcessTable(jobs)

	assert.Len(t, table, 2)
	assert.Equal(t, Process{Job: jobs[0], Priority: 4, RemainingTime: 3, StartTime: Unset, FinishTime: Unset}, table[0])

	table[0].Priority = 1
	table[0].Job.BurstTime = 99
	assert.Equal(t, 3, jobs[0].BurstTime)
	assert.Equal(t, 4, jobs[0].Priority)
}

func TestProcess_Lifecycle(t *testing.T) {
	p := NewProcessTable([]requests.Job{{ProcessId: 1, ArrivalTime: 2, BurstTime: 3, Priority: 2}})[0]
	assert.False(t, p.Arrived(1))
	assert.True(t, p.Arrived(2))

	p.Dispatch(4)
	p.Dispatch(5)
	assert.Equal(t, 4, p.StartTime)

	p.Complete(9)
	assert.True(t, p.Done())
	assert.Equal(t, 0, p.RemainingTime)
	assert.Equal(t, 7, p.TurnaroundTime)
	assert.Equal(t, 4, p.WaitingTime)

	p.Reset()
	assert.False(t, p.Done())
	assert.Equal(t, Unset, p.StartTime)
	assert.Equal(t, 3, p.RemainingTime)
}

func TestArrivalScans(t *testing.T) {
	table := NewProcessTable([]requests.Job{
		{ProcessId: 1, ArrivalTime: 5, BurstTime: 1, Priority: 1},
		{ProcessId: 2, ArrivalTime: 3, BurstTime: 1, Priority: 1},
		{ProcessId: 3, ArrivalTime: 3, BurstTime: 1, Priority: 1},
	})

	index, arrival := EarliestArrival(table)
	assert.Equal(t, 1, index)
	assert.Equal(t, 3, arrival)

	assert.Equal(t, 1, NextArrival(table))
	table[1].Complete(4)
	assert.Equal(t, 2, NextArrival(table))
	table[2].Complete(5)
	table[0].Complete(6)
	assert.Equal(t, -1, NextArrival(table))
}

func TestCpu(t *testing.T) {
	var cpu Cpu
	cpu.IdleUntil(3)
	assert.Equal(t, 3, cpu.Run(2))
	cpu.IdleUntil(1)
	assert.Equal(t, 5, cpu.Clock)

	metric := cpu.Metric()
	assert.Equal(t, CpuMetric{TotalTime: 5, UtilizationTime: 2, IdleTime: 3}, metric)
	assert.InDelta(t, 0.4, metric.Utilization(), 1e-9)
	assert.InDelta(t, 0.2, metric.Throughput(1), 1e-9)
	assert.Equal(t, 0.0, CpuMetric{}.Utilization())
	assert.Equal(t, 0.0, CpuMetric{}.Throughput(3))
}
