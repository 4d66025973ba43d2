package core

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Utilization is busy time over total time, 0 when nothing ran.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

func (m CpuMetric) Throughput(processCount int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(processCount) / float64(m.TotalTime)
}

// Cpu is the simulated processor clock. Context switches are free.
type Cpu struct {
	Clock    int
	busyTime int
	idleTime int
}

// IdleUntil moves the clock forward to t, counting the gap as idle time.
// It never moves the clock backwards.
func (c *Cpu) IdleUntil(t int) {
	if t > c.Clock {
		c.idleTime += t - c.Clock
		c.Clock = t
	}
}

// Run executes for d time units and returns the clock value before running.
func (c *Cpu) Run(d int) int {
	start := c.Clock
	c.Clock += d
	c.busyTime += d
	return start
}

func (c *Cpu) Metric() CpuMetric {
	return CpuMetric{
		TotalTime:       c.Clock,
		UtilizationTime: c.busyTime,
		IdleTime:        c.idleTime,
	}
}
