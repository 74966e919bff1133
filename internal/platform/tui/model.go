package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/ranking"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// footerLines is the space under the game screen: status or name prompt,
// then the key help.
const footerLines = 2

// nameLimit caps the length of a ranking name.
const nameLimit = 16

// GameModel is the Bubble Tea model for one running game. It feeds key
// presses to the game as input frames, asks for a name after game over
// and hands finished games to the Scorekeeper.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	scores     *Scorekeeper
	config     core.RuntimeConfig // Whole terminal; the game gets less footerLines
	player     string             // SSH user name, empty locally
	lastName   string             // Prefill for the next name prompt
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	prompt     textinput.Model
	prompting  bool
	notice     string
	noticeErr  bool
	standalone bool // Back quits instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the current game over has been handled
	playOpen   bool // Game over waits for the prompt before it is recorded
}

// NewGameModel creates a new model for the given game.
func NewGameModel(game registry.Game, scores *Scorekeeper, cfg core.RuntimeConfig, player string) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	ti := textinput.New()
	ti.Prompt = "Name: "
	ti.Placeholder = "your name"
	ti.CharLimit = nameLimit
	ti.Width = nameLimit + 1

	h := help.New()
	h.Width = cfg.ScreenW

	m := GameModel{
		game:       game,
		scores:     scores,
		config:     cfg,
		player:     player,
		lastName:   player,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
		prompt:     ti,
	}
	gc := m.gameConfig()
	m.screen = core.NewScreen(gc.ScreenW, gc.ScreenH)
	return m
}

// gameConfig is the runtime config handed to the game.
func (m GameModel) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-footerLines, 1)
	return cfg
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompting {
			return m.handlePromptKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	if m.prompting {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input during play.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused || !m.gameState.Started {
			m.backToMenu = true
			if m.standalone {
				m.quitting = true
				return m, tea.Quit
			}
		}
		return m, nil

	case core.ActionRestart:
		if m.gameState.GameOver {
			m.restart()
			return m, nil
		}
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handlePromptKey edits the player name after game over.
func (m GameModel) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.recordPlay(m.player)
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEsc:
		m.recordPlay(m.player)
		m.closePrompt()
		m.setNotice("Score not entered in the ranking.", false)
		return m, nil
	case tea.KeyEnter:
		return m.submitName()
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// submitName enters the finished game in the ranking. An empty name keeps
// the prompt open.
func (m GameModel) submitName() (tea.Model, tea.Cmd) {
	rec, rank, err := m.scores.Submit(m.prompt.Value(), m.gameState)
	if errors.Is(err, ranking.ErrMissingName) {
		m.setNotice("Please enter a name to join the ranking.", true)
		return m, nil
	}

	m.recordPlay(strings.TrimSpace(m.prompt.Value()))
	switch {
	case err != nil:
		m.setNotice("Could not save the ranking: "+err.Error(), true)
	case rank == 0:
		m.lastName = rec.Name
		m.setNotice(fmt.Sprintf("%s scored %d, short of the top %d.", rec.Name, rec.Score, ranking.MaxEntries), false)
	default:
		m.lastName = rec.Name
		m.setNotice(fmt.Sprintf("%s takes #%d in the ranking!", rec.Name, rank), false)
	}
	m.closePrompt()
	return m, nil
}

// recordPlay adds the finished game to the history under name, once.
func (m *GameModel) recordPlay(name string) {
	if !m.playOpen {
		return
	}
	m.playOpen = false
	m.scores.RecordPlay(m.game.ID(), name, m.gameState)
}

func (m *GameModel) openPrompt() tea.Cmd {
	m.prompting = true
	m.notice = ""
	m.prompt.SetValue(m.lastName)
	m.prompt.CursorEnd()
	return m.prompt.Focus()
}

func (m *GameModel) closePrompt() {
	m.prompting = false
	m.prompt.Blur()
}

func (m *GameModel) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

// handleResize follows the terminal size. Games that cannot resize in
// place start over unless they are showing a game over.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	gc := m.gameConfig()
	m.screen.Resize(gc.ScreenW, gc.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(gc.ScreenW, gc.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(gc)
	}
	return m, nil
}

// restart begins a new game with a fresh seed.
func (m *GameModel) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.gameConfig())
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.playOpen = false
	m.notice = ""
	m.inputFrame.Clear()
}

// handleTick runs one frame of the game.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.prompting {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	// Ask for a ranking name when the score makes the top ten; the game
	// goes to the history under that name once the prompt closes.
	if m.gameState.GameOver && !m.scoreSaved {
		m.scoreSaved = true
		m.playOpen = true
		if m.gameState.Score > 0 && m.scores.Qualifies(m.gameState.Score) {
			return m, tea.Batch(m.openPrompt(), tickCmd(m.config.TickRate))
		}
		m.recordPlay(m.player)
		if m.gameState.Score > 0 && m.scores.CanRank() {
			m.setNotice(fmt.Sprintf("Score %d is short of the top %d.", m.gameState.Score, ranking.MaxEntries), false)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.setNotice("Screenshot failed: "+err.Error(), true)
		return
	}
	dir := filepath.Join(home, ".blocks", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.setNotice("Screenshot failed: "+err.Error(), true)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.setNotice("Screenshot failed: "+err.Error(), true)
		return
	}
	m.setNotice("Screenshot saved to "+path, false)
}

// View renders the game screen and the footer.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.helpLine())
	return b.String()
}

func (m GameModel) statusLine() string {
	notice := m.notice
	if notice != "" {
		if m.noticeErr {
			notice = errorStyle.Render(notice)
		} else {
			notice = noticeStyle.Render(notice)
		}
	}
	if m.prompting {
		if notice != "" {
			return m.prompt.View() + "  " + notice
		}
		return m.prompt.View()
	}
	return notice
}

func (m GameModel) helpLine() string {
	switch {
	case m.prompting:
		return helpStyle.Render("enter save • esc skip")
	case m.gameState.GameOver:
		return helpStyle.Render("r play again • b menu • q quit")
	default:
		return helpStyle.Render(m.help.View(m.keyMapper.Keys()))
	}
}

// State returns the last reported game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Prompting reports whether the name prompt is open.
func (m GameModel) Prompting() bool {
	return m.prompting
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the player quits.
func Run(game registry.Game, scores *Scorekeeper, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, scores, cfg, "")
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
