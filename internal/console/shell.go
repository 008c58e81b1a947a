package console

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/cmdkit/internal/dispatchers"
	"github.com/footprint-tools/cmdkit/internal/ui/style"
)

// Messages

type replyMsg struct {
	res *dispatchers.Result
}

// shellModel is the Bubble Tea model of the interactive shell. Results are
// printed above the prompt so the terminal scrollback keeps them.
type shellModel struct {
	console *Console
	input   textinput.Model

	replies chan *dispatchers.Result
	done    chan struct{}

	history []string
	recall  int

	lastCode int
	quitting bool
}

func newShellModel(c *Console) shellModel {
	in := textinput.New()
	in.Prompt = style.Prompt(c.sender.Name()+"> ") + c.prefix
	in.Focus()

	return shellModel{
		console: c,
		input:   in,
		replies: make(chan *dispatchers.Result, 16),
		done:    make(chan struct{}),
	}
}

// Shell runs the interactive shell until the operator quits with ctrl+c,
// ctrl+d or "exit". It returns the exit code of the last command.
func (c *Console) Shell() (int, error) {
	m := newShellModel(c)
	defer close(m.done)

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return ExitError, err
	}
	return final.(shellModel).lastCode, nil
}

// reply hands an async result to the running program. Once the shell has
// exited the result is dropped.
func (m shellModel) reply(res *dispatchers.Result) {
	select {
	case m.replies <- res:
	case <-m.done:
	}
}

func waitForReply(replies <-chan *dispatchers.Result) tea.Cmd {
	return func() tea.Msg {
		return replyMsg{res: <-replies}
	}
}

// Init implements tea.Model
func (m shellModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForReply(m.replies))
}

// Update implements tea.Model
func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		return m, tea.Batch(m.println(msg.res), waitForReply(m.replies))

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			return m.submit()

		case tea.KeyUp:
			m.recallHistory(-1)
			return m, nil

		case tea.KeyDown:
			m.recallHistory(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()

	if line == "" {
		return m, nil
	}
	m.history = append(m.history, line)
	m.recall = len(m.history)

	if line == "exit" || line == "quit" {
		m.quitting = true
		return m, tea.Quit
	}

	echo := tea.Println(m.input.Prompt + line)
	res, ok := m.console.Execute(m.console.prefix+line, m.reply)
	if !ok {
		return m, echo
	}
	m.lastCode = ExitCode(res)
	return m, tea.Sequence(echo, m.println(res))
}

func (m shellModel) println(res *dispatchers.Result) tea.Cmd {
	text := Render(res, m.console.styler)
	if text == "" {
		return nil
	}
	return tea.Println(text)
}

func (m *shellModel) recallHistory(delta int) {
	if len(m.history) == 0 {
		return
	}
	m.recall = min(max(m.recall+delta, 0), len(m.history))
	if m.recall == len(m.history) {
		m.input.Reset()
		return
	}
	m.input.SetValue(m.history[m.recall])
	m.input.CursorEnd()
}

// View implements tea.Model
func (m shellModel) View() string {
	if m.quitting {
		return ""
	}
	return m.input.View() + "\n" + style.Muted("ctrl+c to quit")
}
