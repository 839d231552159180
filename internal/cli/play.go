package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/internal/solver"
	"github.com/SeamusWaldron/cubesolver/internal/tables"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

var playSize int

var playCmd = &cobra.Command{
	Use:   "play [moves]",
	Short: "Turn a cube interactively",
	Long: `Turn a virtual cube from the keyboard and ask for solutions.

Keys:
  r l u d f b    turn clockwise
  R L U D F B    turn anti-clockwise
  alt+r ...      turn twice
  backspace      undo
  space          solve from here
  s              switch between 2x2x2 and 3x3x3
  x              reset
  q / esc        quit

An optional argument scrambles the cube first.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVar(&playSize, "size", 3, "Cube size to start with, 2 or 3")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if playSize != 2 && playSize != 3 {
		return fmt.Errorf("--size must be 2 or 3, got %d", playSize)
	}
	model := newPlayModel(playSize)
	if len(args) > 0 {
		moves, err := notation.Parse(strings.Join(args, " "))
		if err != nil {
			return err
		}
		model.tracker.Load(moves)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}
	return nil
}

// Play model
type playModel struct {
	size    int
	tracker *cube.Tracker
	pocket  *solver.Solver2
	heur    *tables.Heuristic

	solving  bool
	solution *solver.Solution
	elapsed  time.Duration
	solvedIn int
	err      error
	quitting bool
}

func newPlayModel(size int) *playModel {
	m := &playModel{
		size:    size,
		tracker: cube.NewTracker(),
		pocket:  solver.NewSolver2(solver.WithWorkers(workers)),
	}
	m.tracker.SetSize(size)
	m.tracker.SetSolvedCallback(func(moves int) {
		m.solvedIn = moves
	})
	return m
}

// solveMsg carries a finished solve back to the model. heur is set when
// the tables were loaded for it.
type solveMsg struct {
	state    string // net of the cube that was solved
	solution solver.Solution
	heur     *tables.Heuristic
	elapsed  time.Duration
	err      error
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ":
			if !m.solving {
				m.solving = true
				m.err = nil
				return m, m.solve()
			}

		case "x":
			m.tracker.Reset()
			m.solvedIn = 0
			m.clearResult()

		case "s":
			m.size = 5 - m.size
			m.tracker.SetSize(m.size)
			m.clearResult()

		case "backspace":
			if m.tracker.Undo() {
				m.clearResult()
			}

		default:
			if mv, ok := keyMove(msg.String()); ok {
				m.tracker.ApplyMove(mv)
				m.clearResult()
			}
		}

	case solveMsg:
		m.solving = false
		if msg.heur != nil {
			m.heur = msg.heur
		}
		if msg.state != m.net().String() {
			// The cube moved while the search ran.
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.solution = &msg.solution
		m.elapsed = msg.elapsed
	}

	return m, nil
}

func (m *playModel) clearResult() {
	m.solution = nil
	m.err = nil
}

// keyMove maps a key to a move: lower case turns clockwise, upper case
// anti-clockwise and alt doubles.
func keyMove(key string) (types.Move, bool) {
	turn := types.TurnCW
	if k, ok := strings.CutPrefix(key, "alt+"); ok {
		key = k
		turn = types.Turn180
	}
	if len(key) != 1 {
		return types.Move{}, false
	}
	c := key[0]
	if c >= 'A' && c <= 'Z' {
		if turn == types.TurnCW {
			turn = types.TurnCCW
		}
		c += 'a' - 'A'
	}
	switch c {
	case 'r', 'l', 'u', 'd', 'f', 'b':
		m, ok := notation.ParseMove(string(c))
		m.Turn = turn
		return m, ok
	}
	return types.Move{}, false
}

// solve runs the search off the UI goroutine.
func (m *playModel) solve() tea.Cmd {
	size := m.size
	pocket := m.tracker.Pocket()
	standard := m.tracker.Standard()
	heur := m.heur
	state := m.net().String()
	return func() tea.Msg {
		start := time.Now()
		ctx := context.Background()
		if size == 2 {
			sol, err := m.pocket.Solve(ctx, pocket)
			return solveMsg{state: state, solution: sol, elapsed: time.Since(start), err: err}
		}

		var loaded *tables.Heuristic
		if heur == nil {
			h, err := tables.LoadDir(tableDir)
			if err != nil {
				return solveMsg{state: state, err: err}
			}
			heur, loaded = h, h
		}
		sol, err := solver.NewSolver3(heur).Solve(ctx, standard)
		return solveMsg{state: state, solution: sol, heur: loaded, elapsed: time.Since(start), err: err}
	}
}

func (m *playModel) net() cube.Net {
	if m.size == 2 {
		return m.tracker.Pocket().Net()
	}
	return m.tracker.Standard().Net()
}

func (m *playModel) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder

	// Title
	b.WriteString(titleStyle.Render(fmt.Sprintf("Cube Solver %dx%dx%d", m.size, m.size, m.size)))
	b.WriteString("\n\n")

	b.WriteString(renderNet(m.net()))
	b.WriteString("\n")

	if m.tracker.IsSolved() {
		b.WriteString(fmt.Sprintf("Cube State: %s", solvedStyle.Render("SOLVED!")))
		if m.solvedIn > 0 {
			b.WriteString(statusStyle.Render(fmt.Sprintf(" (after %d moves)", m.solvedIn)))
		}
		b.WriteString("\n")
	}

	// Recent moves
	history := m.tracker.History()
	b.WriteString(fmt.Sprintf("Moves: %d\n", len(history)))
	if len(history) > 0 {
		start := 0
		b.WriteString("History: ")
		if len(history) > 20 {
			start = len(history) - 20
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(notation.Format(history[start:])))
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("Last: " + notation.Describe(history[len(history)-1])))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.solving:
		b.WriteString(statusStyle.Render("Solving..."))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	case m.solution != nil:
		if len(m.solution.Moves) == 0 {
			b.WriteString("Solution: already solved\n")
		} else {
			b.WriteString("Solution: ")
			b.WriteString(moveStyle.Render(m.solution.String()))
			b.WriteString("\n")
			b.WriteString(statusStyle.Render(notation.DescribeSequence(m.solution.Moves)))
			b.WriteString("\n")
		}
		if name := m.solution.Rotation.String(); name != "" {
			b.WriteString(fmt.Sprintf("Then rotate: %s\n", name))
		}
		b.WriteString(statusStyle.Render(fmt.Sprintf("%d moves, %d nodes, %v",
			len(m.solution.Moves), m.solution.Nodes, m.elapsed.Round(time.Millisecond))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Help
	help := "rludfb=turn  shift=reverse  alt=double  bksp=undo  space=solve  s=size  x=reset  q=quit"
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}

// renderNet draws a net with coloured stickers, laid out as Net.String.
func renderNet(n cube.Net) string {
	var b strings.Builder
	indent := strings.Repeat("  ", n.Width)

	writeRow := func(colors []cube.Color) {
		for _, c := range colors {
			b.WriteString(stickerStyles[c].Render("■"))
			b.WriteByte(' ')
		}
	}

	for r := 0; r < n.Width; r++ {
		b.WriteString(indent)
		writeRow(n.Row(cube.NetBack, r))
		b.WriteByte('\n')
	}
	for r := 0; r < n.Width; r++ {
		for _, f := range []cube.NetFace{cube.NetLeft, cube.NetUp, cube.NetRight, cube.NetDown} {
			writeRow(n.Row(f, r))
		}
		b.WriteByte('\n')
	}
	for r := 0; r < n.Width; r++ {
		b.WriteString(indent)
		writeRow(n.Row(cube.NetFront, r))
		b.WriteByte('\n')
	}
	return b.String()
}
