package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/jdcr/engine"
	"go.jacobcolvin.com/jdcr/fold"
	"go.jacobcolvin.com/jdcr/log"
	"go.jacobcolvin.com/jdcr/render"
	"go.jacobcolvin.com/jdcr/textrange"
)

// ErrViewStdin indicates that view was asked to read stdin, which the
// viewer needs for key presses.
var ErrViewStdin = errors.New("view cannot read the source from stdin")

const (
	defaultWidth  = 80
	defaultHeight = 24
	gutterWidth   = 7
)

func newViewCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view <file.java>",
		Short: "Browse a source file and toggle doc comment folds",
		Long: `view shows a source file with doc comment markup styled and folded.

Keys:
  j, down     next line
  k, up       previous line
  space       toggle the folds of the comment under the cursor
  a           toggle all folds
  q, esc      quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "-" {
				return ErrViewStdin
			}

			src, err := readSource(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			level, err := log.ParseLevel(a.logCfg.Level)
			if err != nil {
				return err
			}

			// The program owns the screen, so records go to the status line.
			pub := log.NewPublisher()
			defer pub.Close() //nolint:errcheck // Never fails.

			a.logger = slog.New(log.NewHandler(pub, level, log.FormatLogfmt))

			m := newViewer(src, a.engine().Run(src), pub.Subscribe(), a.logger)

			_, err = tea.NewProgram(m,
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			).Run()
			if err != nil {
				return fmt.Errorf("run viewer: %w", err)
			}

			return nil
		},
	}
}

// logMsg carries one record from the log publisher.
type logMsg string

type viewer struct {
	logger   *slog.Logger
	report   *engine.Report
	state    *fold.State
	renderer *render.Renderer
	logs     *log.Subscription
	src      string
	status   string
	lines    []textrange.Range
	cursor   int
	top      int
	width    int
	height   int
}

func newViewer(src string, report *engine.Report, logs *log.Subscription, logger *slog.Logger) *viewer {
	return &viewer{
		logger:   logger,
		report:   report,
		state:    fold.NewState(report.Regions),
		renderer: render.NewRenderer(),
		logs:     logs,
		src:      src,
		lines:    lineRanges(src),
		width:    defaultWidth,
		height:   defaultHeight,
		status: fmt.Sprintf("%d comments, %d folds",
			len(report.Comments), len(report.Regions)),
	}
}

func (m *viewer) Init() tea.Cmd {
	return waitForLog(m.logs)
}

func (m *viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "j", "down":
			m.move(1)
		case "k", "up":
			m.move(-1)
		case "space", " ":
			m.toggle()
		case "a":
			m.state.ToggleAll()
			m.logger.Info("toggled all folds")
		}

	case tea.WindowSizeMsg:
		m.width = max(msg.Width, gutterWidth+1)
		m.height = max(msg.Height, 2)
		m.move(0)

	case logMsg:
		m.status = string(msg)

		return m, waitForLog(m.logs)
	}

	return m, nil
}

func (m *viewer) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true

	return v
}

// render draws the visible lines and the status line.
func (m *viewer) render() string {
	var sb strings.Builder

	body := m.height - 1
	for i := m.top; i < m.top+body && i < len(m.lines); i++ {
		marker := ' '
		if i == m.cursor {
			marker = '>'
		}

		line := m.renderer.RenderRange(m.src, m.report.Highlights, m.state, m.lines[i])
		fmt.Fprintf(&sb, "%c%5d ", marker, i+1)
		sb.WriteString(ansi.Truncate(line, m.width-gutterWidth, "…"))
		sb.WriteByte('\n')
	}

	for i := len(m.lines) - m.top; i < body; i++ {
		sb.WriteByte('\n')
	}

	status := runewidth.Truncate(m.status, m.width, "…")
	sb.WriteString(lipgloss.NewStyle().Reverse(true).Render(runewidth.FillRight(status, m.width)))

	return sb.String()
}

// move shifts the cursor by delta lines and scrolls to keep it visible.
func (m *viewer) move(delta int) {
	m.cursor = min(max(m.cursor+delta, 0), max(len(m.lines)-1, 0))

	body := max(m.height-1, 1)
	if m.cursor < m.top {
		m.top = m.cursor
	}

	if m.cursor >= m.top+body {
		m.top = m.cursor - body + 1
	}
}

// toggle flips the folds of the comment on the cursor line.
func (m *viewer) toggle() {
	if len(m.lines) == 0 {
		return
	}

	c, ok := m.report.CommentAt(m.lines[m.cursor])
	if !ok {
		m.logger.Debug("no comment on line", slog.Int("line", m.cursor+1))

		return
	}

	m.state.Toggle(c.Group)
	m.logger.Info("toggled folds",
		slog.String("group", c.Group),
		slog.Bool("collapsed", m.state.IsCollapsed(c.Group)),
	)
}

// waitForLog returns a command that delivers the next log record.
func waitForLog(sub *log.Subscription) tea.Cmd {
	return func() tea.Msg {
		rec, ok := sub.Next()
		if !ok {
			return nil
		}

		return logMsg(rec)
	}
}

// lineRanges returns the range of every line of src, without its line
// break or carriage return. A final line break does not start another line.
func lineRanges(src string) []textrange.Range {
	var lines []textrange.Range

	start := 0
	for start < len(src) {
		end := strings.IndexByte(src[start:], '\n')
		if end < 0 {
			lines = append(lines, textrange.New(start, len(src)))

			break
		}

		lineEnd := start + end
		if lineEnd > start && src[lineEnd-1] == '\r' {
			lineEnd--
		}

		lines = append(lines, textrange.New(start, lineEnd))
		start += end + 1
	}

	return lines
}
