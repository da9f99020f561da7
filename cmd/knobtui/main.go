// Command knobtui runs the parameter widgets in a terminal.
//
// Drag with the mouse, hold Ctrl for fine adjustment and double click to
// reset. With -midi the bound controllers move the widgets too.
//
//	go run ./cmd/knobtui
//	go run ./cmd/knobtui -config params.json -midi "nanoKONTROL2"
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"github.com/go-theft-auto/audiogui"
	"github.com/go-theft-auto/audiogui/backend/tui"
	"github.com/go-theft-auto/audiogui/internal/config"
	"github.com/go-theft-auto/audiogui/internal/rig"
	"github.com/go-theft-auto/audiogui/midi"
)

const (
	statusLines = 2
	layoutGap   = 2
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ccc"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e55"))
)

// midiMsg carries a routed MIDI message onto the bubbletea loop.
type midiMsg midi.Target[string]

type model struct {
	rig      *rig.Rig
	canvas   *tui.Canvas
	adapter  *tui.Adapter
	feedback func(gomidi.Message) error
	last     string
	err      error
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		rows := max(msg.Height-statusLines, 1)
		m.rig.Surface.Resize(msg.Width, rows*tui.PixelsPerCell)
		w, h := m.canvas.Size()
		m.err = m.rig.Layout(float32(w), float32(h), layoutGap)

	case midiMsg:
		t := midi.Target[string](msg)
		if m.rig.Apply(t) {
			m.last = m.rig.Describe(t.ID, t.Normal)
		}

	default:
		for _, ev := range m.adapter.Translate(msg) {
			for _, ch := range m.rig.Surface.Dispatch(ev) {
				m.changed(ch)
			}
		}
	}
	return m, nil
}

func (m *model) changed(ch audiogui.Change[string]) {
	m.last = m.rig.Describe(ch.ID, ch.Normal)
	log.Debug().Str("param", ch.ID).Str("value", m.last).Msg("changed")
	if m.feedback == nil {
		return
	}
	if out, ok := m.rig.Router.FeedbackFor(ch.ID, ch.Normal); ok {
		if err := m.feedback(out); err != nil {
			m.err = fmt.Errorf("midi feedback: %w", err)
		}
	}
}

func (m *model) View() string {
	if err := m.rig.Surface.Render(); err != nil {
		m.err = err
	}

	values := make([]string, 0, len(m.rig.IDs()))
	for _, id := range m.rig.IDs() {
		n, _ := m.rig.Normal(id)
		values = append(values, m.rig.Describe(id, n))
	}

	status := dimStyle.Render("drag: change  ctrl+drag: fine  double click: reset  q: quit")
	if m.err != nil {
		status = errStyle.Render(m.err.Error())
	}

	return m.canvas.String() + "\n" +
		labelStyle.Render(strings.Join(values, "  ")) + "\n" +
		status
}

func main() {
	configPath := flag.String("config", "", "path to a JSON parameter layout")
	midiPort := flag.String("midi", "", "MIDI input port name (overrides config)")
	verbose := flag.Bool("v", false, "debug logging to knobtui.log")
	flag.Parse()

	if err := run(*configPath, *midiPort, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, midiPort string, verbose bool) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if midiPort != "" {
		cfg.MIDI.InPort = midiPort
	}

	// The terminal belongs to bubbletea, so logs go to a file.
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose || cfg.Verbose {
		f, err := os.OpenFile("knobtui.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		log.Logger = zerolog.Nop()
	}

	canvas := tui.NewCanvas(80, 20, audiogui.RGBA(18, 18, 20, 255))
	r, err := rig.Build(cfg, canvas)
	if err != nil {
		return err
	}

	m := &model{rig: r, canvas: canvas, adapter: tui.NewAdapter()}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus())

	if cfg.MIDI.InPort != "" || cfg.MIDI.OutPort != "" {
		defer gomidi.CloseDriver()
	}
	if cfg.MIDI.InPort != "" {
		in, err := gomidi.FindInPort(cfg.MIDI.InPort)
		if err != nil {
			return fmt.Errorf("midi input %q: %w", cfg.MIDI.InPort, err)
		}
		stop, err := r.Router.Listen(in, func(t midi.Target[string]) {
			p.Send(midiMsg(t))
		})
		if err != nil {
			return err
		}
		defer stop()
		log.Info().Str("port", in.String()).Msg("listening for midi")
	}
	if cfg.MIDI.OutPort != "" {
		out, err := gomidi.FindOutPort(cfg.MIDI.OutPort)
		if err != nil {
			return fmt.Errorf("midi output %q: %w", cfg.MIDI.OutPort, err)
		}
		send, err := gomidi.SendTo(out)
		if err != nil {
			return fmt.Errorf("midi output %q: %w", cfg.MIDI.OutPort, err)
		}
		m.feedback = send
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
