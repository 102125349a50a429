package main

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"digip/pkg/config"
	"digip/pkg/eventlog"
	"digip/pkg/pet"
	"digip/pkg/store"
	"digip/pkg/trade"
)

// tickMsg fires the interval-mode time step.
type tickMsg time.Time

// offersMsg carries the number of pending offers addressed to this agent.
type offersMsg int

// offerPollInterval is the fallback poll period when the trade-dir watcher
// cannot start.
const offerPollInterval = 5 * time.Second

// Model is the Bubble Tea model for the care screen.
type Model struct {
	st     *store.Store
	cfg    config.Config
	trades *trade.Service
	log    *eventlog.Log
	p      *pet.Pet
	theme  Theme

	// message is the last action's feedback line.
	message string

	// actions counts player actions since the last time step (actions
	// cadence only).
	actions int

	// incoming is how many pending offers await this agent.
	incoming int

	watcher *fsnotify.Watcher // nil means polling-only mode

	renaming    bool
	input       textinput.Model
	showHistory bool

	width  int
	height int
}

// newModel creates the care screen model.
func newModel(st *store.Store, cfg config.Config, trades *trade.Service, log *eventlog.Log, p *pet.Pet) *Model {
	input := textinput.New()
	input.Placeholder = "new name"
	input.CharLimit = 32

	return &Model{
		st:      st,
		cfg:     cfg,
		trades:  trades,
		log:     log,
		p:       p,
		theme:   DefaultTheme(),
		message: "Welcome back! " + p.Name + " missed you!",
		watcher: initWatcher(st.TradeDir()),
		input:   input,
	}
}

// close releases the model's watcher and event log.
func (m *Model) close() {
	if m.watcher != nil {
		_ = m.watcher.Close()
	}
	if m.log != nil {
		_ = m.log.Close()
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.fetchOffersCmd(), m.pollOffersCmd()}
	if m.watcher != nil {
		cmds = append(cmds, runWatcher(m.watcher))
	}
	if m.cfg.Cadence == config.CadenceInterval {
		cmds = append(cmds, m.intervalTickCmd())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		m.p.Tick()
		m.afterMutation()
		return m, m.intervalTickCmd()

	case offersMsg:
		m.incoming = int(msg)

	case pollMsg:
		return m, tea.Batch(m.fetchOffersCmd(), m.pollOffersCmd())

	case fsChangeMsg:
		// Something landed in the trade dir; refresh and re-arm.
		cmds := []tea.Cmd{m.fetchOffersCmd()}
		if m.watcher != nil {
			cmds = append(cmds, runWatcher(m.watcher))
		}
		return m, tea.Batch(cmds...)
	}

	if m.renaming {
		// Keep the cursor blinking while the rename prompt is up.
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey routes key presses. The rename prompt captures everything until
// enter or esc.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.renaming {
		switch msg.String() {
		case "enter":
			m.renaming = false
			m.act(eventlog.TypeRename, func(p *pet.Pet) pet.Result {
				return p.Rename(m.input.Value())
			})
			m.input.Reset()
			return m, nil
		case "esc":
			m.renaming = false
			m.input.Reset()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		// Best-effort save on the way out.
		_ = m.st.SavePet(m.p)
		return m, tea.Quit

	case "h":
		m.showHistory = !m.showHistory
		return m, nil
	}

	if !m.p.Alive {
		// Dead companions only answer to history and quit.
		return m, nil
	}

	switch msg.String() {
	case "f":
		m.act(eventlog.TypeFeed, (*pet.Pet).Feed)
	case "p":
		m.act(eventlog.TypePlay, (*pet.Pet).Play)
	case "s":
		m.act(eventlog.TypeSleep, (*pet.Pet).ToggleSleep)
	case "r":
		m.renaming = true
		m.input.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

// act applies one care action, advances the action cadence, persists, and
// logs.
func (m *Model) act(eventType string, action func(*pet.Pet) pet.Result) {
	wasAlive := m.p.Alive

	res := action(m.p)
	m.message = res.Message

	if m.cfg.Cadence == config.CadenceActions {
		m.actions++
		if m.actions >= m.cfg.ActionsPerTick {
			m.p.Tick()
			m.actions = 0
		}
	}

	m.afterMutation()

	if res.OK && m.log != nil {
		_ = m.log.Append(context.Background(), eventType, m.p.Name, res.Message)
	}
	if wasAlive && !m.p.Alive && m.log != nil {
		_ = m.log.Append(context.Background(), eventlog.TypeDeath, m.p.Name, m.p.Name+" has passed away")
	}
}

// afterMutation persists the companion after any state change.
func (m *Model) afterMutation() {
	if err := m.st.SavePet(m.p); err != nil {
		m.message = "save failed: " + err.Error()
	}
}

// intervalTickCmd arms the interval-mode time step timer.
func (m *Model) intervalTickCmd() tea.Cmd {
	return tea.Tick(time.Duration(m.cfg.TickIntervalSeconds)*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchOffersCmd counts the pending offers addressed to this agent. Without
// an agent name in the config there is nothing to watch.
func (m *Model) fetchOffersCmd() tea.Cmd {
	agent := m.cfg.Agent
	if agent == "" {
		return nil
	}
	trades := m.trades
	return func() tea.Msg {
		offers, err := trades.Inbox(agent)
		if err != nil {
			return offersMsg(0)
		}
		return offersMsg(len(offers))
	}
}

// pollOffersCmd refreshes the offer count on a timer, covering the
// polling-only fallback and watcher gaps alike.
func (m *Model) pollOffersCmd() tea.Cmd {
	if m.cfg.Agent == "" {
		return nil
	}
	return tea.Tick(offerPollInterval, func(time.Time) tea.Msg {
		return pollMsg{}
	})
}

// pollMsg triggers a periodic offer refresh.
type pollMsg struct{}
