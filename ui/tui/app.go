// Package tui is an interactive runner for the benchkit steps.
package tui

import (
	"context"
	"fmt"
	"time"

	"benchkit/internal/chart"
	"benchkit/internal/fixture"
	"benchkit/ui/preview"
	"benchkit/ui/tui/state"
	"benchkit/ui/tui/views"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	zone "github.com/lrstanley/bubblezone"
)

// Runner performs the steps offered in the menu.
type Runner interface {
	GenerateClosure(ctx context.Context) (fixture.Report, error)
	GenerateHierarchy(ctx context.Context) (fixture.Report, error)
	RenderBenchmark(ctx context.Context) ([]string, error)
	Benchmark() chart.Benchmark
}

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	ctx        context.Context
	runner     Runner
	state      state.AppState
	spinner    spinner.Model
	chart      *preview.BenchmarkWidget
	menuCursor int
	animCursor float64
	velocity   float64
	spring     harmonica.Spring
	logScrollY int
	mouseY     int
	quitting   bool
	width      int
	height     int
}

// Messages
type AnimateMsg time.Time
type StepDoneMsg struct {
	Result state.Result
}

func InitialModel(ctx context.Context, runner Runner) MainModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	// Increased frequency (12.0) for faster response and damping (0.9) to prevent overshoot
	spring := harmonica.NewSpring(harmonica.FPS(60), 12.0, 0.9)

	return MainModel{
		ctx:     ctx,
		runner:  runner,
		spinner: s,
		spring:  spring,
		state: state.AppState{
			CurrentPage: state.PageMenu,
		},
	}
}

func (m *MainModel) Init() tea.Cmd {
	zone.NewGlobal()
	return tea.Batch(
		m.spinner.Tick,
		animateCmd(),
	)
}

func animateCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*16, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

// runStepCmd runs step off the UI loop and reports its outcome.
func runStepCmd(ctx context.Context, r Runner, step state.Step) tea.Cmd {
	return func() tea.Msg {
		res := state.Result{Step: step, Started: time.Now()}
		res.Lines, res.Chart, res.Err = runStep(ctx, r, step)
		res.Finished = time.Now()
		return StepDoneMsg{Result: res}
	}
}

func runStep(ctx context.Context, r Runner, step state.Step) ([]string, bool, error) {
	switch step {
	case state.StepClosure:
		rep, err := r.GenerateClosure(ctx)
		return reportLines(rep), false, err
	case state.StepHierarchy:
		rep, err := r.GenerateHierarchy(ctx)
		return reportLines(rep), false, err
	case state.StepChart:
		files, err := r.RenderBenchmark(ctx)
		return fileLines(files), err == nil, err
	case state.StepAll:
		var lines []string
		for _, s := range []state.Step{state.StepClosure, state.StepHierarchy, state.StepChart} {
			l, _, err := runStep(ctx, r, s)
			lines = append(lines, l...)
			if err != nil {
				return lines, false, fmt.Errorf("%s: %w", s, err)
			}
		}
		return lines, true, nil
	default:
		return nil, false, fmt.Errorf("unknown step %d", step)
	}
}

func reportLines(r fixture.Report) []string {
	if r.Path == "" {
		return nil
	}
	lines := []string{fmt.Sprintf("%s (%s)", r.Path, humanize.Bytes(uint64(r.Bytes)))}
	for _, rel := range r.Relations {
		lines = append(lines, fmt.Sprintf("  %-8s %6d rows", rel.Name, rel.Rows))
	}
	return lines
}

func fileLines(files []string) []string {
	lines := make([]string, len(files))
	for i, f := range files {
		lines[i] = "wrote " + f
	}
	return lines
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case StepDoneMsg:
		return m.handleStepDoneMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	if m.state.CurrentPage == state.PageMenu {
		switch msg.String() {
		case "up", "k":
			if m.menuCursor > 0 {
				m.menuCursor--
			}
		case "down", "j":
			if m.menuCursor < len(state.Steps)-1 {
				m.menuCursor++
			}
		case "l":
			m.state.CurrentPage = state.PageLog
		case "enter":
			return m, m.start(m.menuCursor)
		}
		return m, nil
	}

	if m.state.CurrentPage == state.PageLog {
		switch msg.String() {
		case "up", "k":
			if m.logScrollY > 0 {
				m.logScrollY--
			}
		case "down", "j":
			if m.logScrollY < views.MaxLogScroll(m.state, m.width, m.height) {
				m.logScrollY++
			}
		}
	}

	if msg.String() == "b" || msg.String() == "esc" || msg.String() == "backspace" {
		m.state.CurrentPage = state.PageMenu
		m.logScrollY = 0
		return m, nil
	}

	return m, nil
}

// start launches the step at cursor unless one is already running.
func (m *MainModel) start(cursor int) tea.Cmd {
	if m.state.Running != nil || cursor < 0 || cursor >= len(state.Steps) {
		return nil
	}
	step := state.Steps[cursor]
	m.state.Running = &step
	return tea.Batch(m.spinner.Tick, runStepCmd(m.ctx, m.runner, step))
}

func (m *MainModel) handleStepDoneMsg(msg StepDoneMsg) (tea.Model, tea.Cmd) {
	res := msg.Result
	m.state.Running = nil
	m.state.Last = &res
	m.state.History = append(m.state.History, res)
	m.state.CurrentPage = state.PageResult

	if res.Chart {
		w, err := preview.NewBenchmarkWidget(m.runner.Benchmark(), m.chartWidth(), 14)
		if err == nil {
			m.chart = w
		}
	}
	return m, nil
}

func (m *MainModel) chartWidth() int {
	if w := m.width - 10; w > 20 {
		return w
	}
	return 60
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	var v float64 = m.velocity
	m.animCursor, v = m.spring.Update(m.animCursor, float64(m.menuCursor), v)
	m.velocity = v
	return m, animateCmd()
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	if m.chart != nil {
		m.chart.Resize(m.chartWidth(), 14)
	}
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.mouseY = msg.Y

	if msg.Action == tea.MouseActionRelease && m.state.CurrentPage == state.PageMenu {
		for i := range state.Steps {
			if zone.Get(views.MenuZoneID(i)).InBounds(msg) {
				m.menuCursor = i
				return m, m.start(i)
			}
		}
	}
	return m, nil
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	switch m.state.CurrentPage {
	case state.PageResult:
		chartView := ""
		if m.chart != nil {
			chartView = m.chart.View()
		}
		return views.RenderResult(m.state, chartView, m.width, m.height)
	case state.PageLog:
		return views.RenderLog(m.state, m.width, m.height, m.logScrollY)
	default:
		return views.RenderMenu(m.state, m.width, m.height, m.menuCursor, m.animCursor, m.mouseY, m.spinner.View())
	}
}

func Start(ctx context.Context, runner Runner) error {
	m := InitialModel(ctx, runner)
	p := tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
