package state

import (
	"time"
)

type Page int

const (
	PageMenu   Page = iota
	PageResult      // outcome of the last step
	PageLog         // every step run this session
)

// Step is one runnable menu entry.
type Step int

const (
	StepClosure Step = iota
	StepHierarchy
	StepChart
	StepAll
)

// Steps lists the menu entries in display order.
var Steps = []Step{StepClosure, StepHierarchy, StepChart, StepAll}

func (s Step) String() string {
	switch s {
	case StepClosure:
		return "Generate closure fixture"
	case StepHierarchy:
		return "Generate hierarchy fixture"
	case StepChart:
		return "Render benchmark chart"
	case StepAll:
		return "Run everything"
	default:
		return "Unknown step"
	}
}

// Result is the outcome of one step.
type Result struct {
	Step     Step
	Lines    []string
	Err      error
	Started  time.Time
	Finished time.Time
	// Set when the step rendered the chart.
	Chart bool
}

// AppState holds what the runner has done so far.
type AppState struct {
	CurrentPage Page
	Running     *Step
	Last        *Result
	History     []Result
}
