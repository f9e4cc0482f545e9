package app

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brainviz/neuroterm/internal/config"
	"github.com/brainviz/neuroterm/internal/dataset"
	"github.com/brainviz/neuroterm/internal/dsp"
	"github.com/brainviz/neuroterm/internal/feed"
	"github.com/brainviz/neuroterm/internal/ui"
)

const buzzerHold = 500 * time.Millisecond

// shared holds state shared between the Bubble Tea model copies and the
// command layer. Because Bubble Tea uses value receivers, pointer
// fields ensure all copies see the same underlying data.
type shared struct {
	source  feed.Feed
	history *dsp.Ring
	rec     *recorder
}

// Options configures the dashboard.
type Options struct {
	FeedName   string // shown in the menu bar: LIVE, REPLAY, EXTERN
	Rate       int    // sampling rate in Hz
	RecordPath string // non-empty: start recording immediately
	RangeUV    float64
}

// Model is the root Bubble Tea model for the dashboard.
type Model struct {
	width  int
	height int

	opts    Options
	running bool
	view    ui.View

	shared *shared

	// Cached per-frame state
	latest    dataset.Record
	samples   int
	specFreqs []float64
	specMags  []float64
	ledOn     bool
	lastBuzz  time.Time
}

// New creates a dashboard model bound to a feed.
func New(source feed.Feed, opts Options) Model {
	if opts.Rate <= 0 {
		opts.Rate = config.SamplingRate
	}
	if opts.RangeUV <= 0 {
		opts.RangeUV = 200
	}
	return Model{
		opts:    opts,
		running: true,
		shared: &shared{
			source:  source,
			history: dsp.NewRing(opts.Rate * config.DisplaySeconds),
		},
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m.updateSpectrum()
		return m, tickCmd()

	case feed.SampleBatchMsg:
		if !m.running || len(msg.Records) == 0 {
			return m, nil
		}
		m.ingest(msg.Records)
		return m, nil

	case feed.LEDMsg:
		m.ledOn = msg.On
		return m, nil

	case feed.BuzzerMsg:
		m.lastBuzz = time.Now()
		return m, nil

	case feed.DoneMsg:
		m.running = false
		return m, nil
	}

	return m, nil
}

func (m *Model) ingest(records []dataset.Record) {
	if m.opts.RecordPath != "" && m.shared.rec == nil {
		if rec, err := newRecorder(m.opts.RecordPath); err == nil {
			m.shared.rec = rec
		}
		m.opts.RecordPath = ""
	}

	for _, r := range records {
		m.shared.history.Push(r.Sample.Amplitude)
	}
	m.latest = records[len(records)-1]
	m.samples += len(records)

	if m.shared.rec != nil {
		m.shared.rec.write(records)
	}
}

func (m *Model) updateSpectrum() {
	window := m.shared.history.Tail(config.SpectrumSize)
	if len(window) < config.SpectrumSize {
		return
	}
	freqs, mags, err := dsp.Spectrum(window, float64(m.opts.Rate))
	if err != nil {
		return
	}
	m.specFreqs, m.specMags = freqs, mags
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		m.shared.source.Stop()
		if m.shared.rec != nil {
			m.shared.rec.close()
		}
		return m, tea.Quit

	case " ", "space":
		m.running = !m.running

	case "r", "R":
		if m.shared.rec != nil {
			m.shared.rec.close()
			m.shared.rec = nil
		} else if rec, err := newRecorder(""); err == nil {
			m.shared.rec = rec
		}

	case "0":
		m.view = ui.ViewAll
	case "1":
		m.view = ui.ViewVisual
	case "2":
		m.view = ui.ViewMotor
	case "3":
		m.view = ui.ViewAttention
	}

	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing neuroterm..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 8 {
		bodyH = 8
	}

	waveH := bodyH * 3 / 5
	if waveH < 5 {
		waveH = 5
	}
	lowerH := bodyH - waveH
	if lowerH < 4 {
		lowerH = 4
	}

	specW := m.width / 2
	bandsW := m.width / 4
	healthW := m.width - specW - bandsW

	menuBar := ui.RenderMenuBar(m.width, m.opts.FeedName, m.view)
	waveform := ui.RenderWaveform(m.width, waveH, m.shared.history.Values(), m.opts.RangeUV)
	spectrum := ui.RenderSpectrum(specW, lowerH, m.specFreqs, m.specMags)
	bands := ui.RenderBandPowers(bandsW, lowerH, m.latest.Sample.Powers, m.view)
	healthPanel := ui.RenderHealth(healthW, lowerH, m.latest.Labels,
		m.latest.Sample.Powers, m.latest.Sample.Command, m.view)

	recFile := ""
	if m.shared.rec != nil {
		recFile = filepath.Base(m.shared.rec.path())
	}
	statusBar := ui.RenderStatusBar(m.width, ui.StatusInfo{
		Running:    m.running,
		Recording:  m.shared.rec != nil,
		RecordFile: recFile,
		Samples:    m.samples,
		Elapsed:    m.latest.Sample.Time,
		Rate:       m.opts.Rate,
		LEDOn:      m.ledOn,
		Buzzer:     time.Since(m.lastBuzz) < buzzerHold,
	})

	return ui.ComposeLayout(menuBar, waveform, spectrum, bands, healthPanel, statusBar)
}

// StartFeed launches the model's producer. Must be called before
// p.Run().
func (m *Model) StartFeed(p *tea.Program) error {
	return m.shared.source.Start(p)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
