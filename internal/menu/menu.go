package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"schedsim/internal/generator"
	"schedsim/internal/printer"
	"schedsim/internal/requests"
	"schedsim/internal/schedulers"
)

var errInput = errors.New("input error")

const (
	choiceExit = 0
	choiceAll  = 6
)

// Menu is the interactive front end: it generates one process set and runs
// the chosen algorithms on it until the user exits or input breaks.
type Menu struct {
	scanner   *bufio.Scanner
	out       io.Writer
	generator *generator.Generator
	printer   *printer.Printer
}

func New(in io.Reader, out io.Writer, gen *generator.Generator) *Menu {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Menu{
		scanner:   scanner,
		out:       out,
		generator: gen,
		printer:   printer.New(out),
	}
}

func (m *Menu) Run() {
	m.prompt("Enter number of processes: ")
	count, err := m.readInt()
	if err != nil {
		m.println("Input error. Exiting.")
		return
	}
	jobs, err := m.generator.Generate(count)
	if err != nil {
		m.println("Invalid number.")
		return
	}
	m.printer.Jobs(jobs)

	for {
		m.showChoices()
		choice, err := m.readInt()
		if err != nil {
			m.println("Input error. Exiting.")
			return
		}
		if choice == choiceExit {
			return
		}
		if err := m.dispatch(choice, jobs); err != nil {
			m.println("Input error. Exiting.")
			return
		}
	}
}

func (m *Menu) dispatch(choice int, jobs []requests.Job) error {
	algorithms := schedulers.Algorithms()
	switch {
	case choice == choiceAll:
		m.printer.Comparison(schedulers.ScheduleAll(jobs))
	case choice >= 1 && choice <= len(algorithms):
		algorithm := algorithms[choice-1]
		var timeQuantum int
		if algorithm.NeedsQuantum {
			m.prompt("Enter time quantum: ")
			var err error
			if timeQuantum, err = m.readInt(); err != nil {
				return err
			}
		}
		response, err := algorithm.Schedule(jobs, timeQuantum)
		if errors.Is(err, schedulers.ErrInvalidTimeQuantum) {
			m.println("Invalid quantum.")
			return nil
		}
		m.printer.Schedule(response)
		m.printer.Gantt(response)
	default:
		m.println("Invalid choice.")
	}
	return nil
}

func (m *Menu) showChoices() {
	var b strings.Builder
	b.WriteString("\nChoose algorithm:\n")
	b.WriteString("1 - FCFS (First-Come-First-Served)\n")
	b.WriteString("2 - Round Robin\n")
	b.WriteString("3 - Priority Scheduling (non-preemptive)\n")
	b.WriteString("4 - Dynamic Priority (preemptive, with aging)\n")
	b.WriteString("5 - Shortest Job First (SJF)\n")
	b.WriteString("6 - Run ALL algorithms and show summary\n")
	b.WriteString("0 - Exit\n")
	b.WriteString("Your choice: ")
	m.prompt(b.String())
}

func (m *Menu) readInt() (int, error) {
	if !m.scanner.Scan() {
		return 0, errInput
	}
	value, err := strconv.Atoi(m.scanner.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errInput, err)
	}
	return value, nil
}

func (m *Menu) prompt(text string) {
	_, _ = fmt.Fprint(m.out, text)
}

func (m *Menu) println(text string) {
	_, _ = fmt.Fprintln(m.out, text)
}
