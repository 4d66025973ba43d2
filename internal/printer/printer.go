package printer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"schedsim/internal/requests"
	"schedsim/internal/responses"
	"schedsim/internal/schedulers"
)

// Printer renders jobs and schedule results as fixed-width tables.
type Printer struct {
	w io.Writer
}

func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(p.w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func (p *Printer) title(title string) {
	_, _ = fmt.Fprintf(p.w, "\n=== %s ===\n", title)
}

func (p *Printer) Jobs(jobs []requests.Job) {
	p.title("Generated processes")
	table := p.newTable([]string{"ID", "Arrival", "Burst", "Prio"})
	for _, job := range jobs {
		table.Append(itoa(job.ProcessId, job.ArrivalTime, job.BurstTime, job.Priority))
	}
	table.Render()
}

// Schedule prints the execution log (when the algorithm keeps one), the
// per-process table and the averages of a response.
func (p *Printer) Schedule(response responses.ScheduleResponse) {
	p.title(response.Algorithm + " Scheduling")
	if len(response.Details) == 0 {
		_, _ = fmt.Fprintln(p.w, "No processes.")
		return
	}

	switch response.Algorithm {
	case schedulers.RoundRobinName:
		_, _ = fmt.Fprintf(p.w, "Time quantum = %d\n", response.TimeQuantum)
		p.executionLog(response.Slices, false)
	case schedulers.DynamicPriorityName:
		p.executionLog(response.Slices, true)
	}

	var header []string
	var row func(d responses.ProcessResponse) []string
	switch response.Algorithm {
	case schedulers.PriorityName:
		header = []string{"ID", "Arrive", "Burst", "Prio", "Start", "Finish", "Waiting", "Turnaround"}
		row = func(d responses.ProcessResponse) []string {
			return itoa(d.ProcessId, d.ArrivalTime, d.BurstTime, d.InitialPriority, d.StartTime, d.FinishTime, d.WaitingTime, d.TurnAroundTime)
		}
	case schedulers.DynamicPriorityName:
		header = []string{"ID", "Arrive", "Burst", "InitPrio", "FinalPrio", "Start", "Finish", "Waiting", "Turnaround"}
		row = func(d responses.ProcessResponse) []string {
			return itoa(d.ProcessId, d.ArrivalTime, d.BurstTime, d.InitialPriority, d.FinalPriority, d.StartTime, d.FinishTime, d.WaitingTime, d.TurnAroundTime)
		}
	default:
		header = []string{"ID", "Arrive", "Burst", "Start", "Finish", "Waiting", "Turnaround"}
		row = func(d responses.ProcessResponse) []string {
			return itoa(d.ProcessId, d.ArrivalTime, d.BurstTime, d.StartTime, d.FinishTime, d.WaitingTime, d.TurnAroundTime)
		}
	}

	table := p.newTable(header)
	for _, d := range response.Details {
		table.Append(row(d))
	}
	footer := make([]string, len(header))
	footer[len(footer)-2] = fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime)
	footer[len(footer)-1] = fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime)
	table.SetFooter(footer)
	table.Render()

	_, _ = fmt.Fprintf(p.w, "Average waiting time:    %.2f\n", response.AverageWaitingTime)
	_, _ = fmt.Fprintf(p.w, "Average turnaround time: %.2f\n", response.AverageTurnAroundTime)
	_, _ = fmt.Fprintf(p.w, "CPU utilization:         %.2f%%\n", response.CpuUtilization*100)
}

func (p *Printer) executionLog(slices []responses.TimeSlice, withPriority bool) {
	_, _ = fmt.Fprintln(p.w, "Execution log:")
	for _, s := range slices {
		if withPriority {
			_, _ = fmt.Fprintf(p.w, "t=%d | running P%d (prio=%d), remaining=%d\n", s.Start, s.ProcessId, s.Priority, s.Remaining)
			continue
		}
		_, _ = fmt.Fprintf(p.w, "t=%d .. %d | P%d ran for %d, remaining = %d\n", s.Start, s.End, s.ProcessId, s.RunTime, s.Remaining)
	}
}

// Gantt prints the timeline of a response, merging consecutive slices of the
// same process.
func (p *Printer) Gantt(response responses.ScheduleResponse) {
	blocks := MergeSlices(response.Slices)
	if len(blocks) == 0 {
		return
	}
	_, _ = fmt.Fprintln(p.w, "Gantt schedule")
	var bar, times strings.Builder
	bar.WriteString("|")
	times.WriteString(strconv.Itoa(blocks[0].Start))
	cursor := blocks[0].Start
	for _, b := range blocks {
		if b.Start > cursor {
			width := cellWidth("idle", strconv.Itoa(b.Start))
			bar.WriteString(center("idle", width) + "|")
			times.WriteString(padLeft(strconv.Itoa(b.Start), width+1))
		}
		label := "P" + strconv.Itoa(b.ProcessId)
		width := cellWidth(label, strconv.Itoa(b.End))
		bar.WriteString(center(label, width) + "|")
		times.WriteString(padLeft(strconv.Itoa(b.End), width+1))
		cursor = b.End
	}
	_, _ = fmt.Fprintln(p.w, bar.String())
	_, _ = fmt.Fprintln(p.w, times.String())
}

// MergeSlices joins back to back slices of the same process.
func MergeSlices(slices []responses.TimeSlice) []responses.TimeSlice {
	merged := make([]responses.TimeSlice, 0, len(slices))
	for _, s := range slices {
		if n := len(merged); n > 0 && merged[n-1].ProcessId == s.ProcessId && merged[n-1].End == s.Start {
			merged[n-1].End = s.End
			merged[n-1].RunTime += s.RunTime
			merged[n-1].Remaining = s.Remaining
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// Summary prints the side by side comparison of algorithm averages.
func (p *Printer) Summary(summaries []responses.Summary) {
	p.title("Summary table (average times)")
	table := p.newTable([]string{"Algorithm", "Avg Waiting", "Avg Turnaround"})
	for _, s := range summaries {
		table.Append([]string{
			s.Algorithm,
			strconv.FormatFloat(s.AverageWaitingTime, 'f', 2, 64),
			strconv.FormatFloat(s.AverageTurnAroundTime, 'f', 2, 64),
		})
	}
	table.Render()
}

// Comparison prints every result of a run-all comparison followed by the summary.
func (p *Printer) Comparison(comparison responses.ComparisonResponse) {
	_, _ = fmt.Fprintf(p.w, "\n=== Running all algorithms on the same process set (run %s) ===\n", comparison.RunId)
	for _, result := range comparison.Results {
		p.Schedule(result)
		p.Gantt(result)
	}
	p.Summary(comparison.Summaries)
}

func itoa(values ...int) []string {
	row := make([]string, len(values))
	for i, v := range values {
		row[i] = strconv.Itoa(v)
	}
	return row
}

func cellWidth(label, mark string) int {
	return max(len(label)+2, len(mark)+1)
}

func center(label string, width int) string {
	left := (width - len(label)) / 2
	return strings.Repeat(" ", left) + label + strings.Repeat(" ", width-len(label)-left)
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
