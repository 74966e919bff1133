// Package blocks adapts the falling-block engine to the platform: it maps
// input frames to session requests, turns fixed-rate frames into gravity
// ticks and draws the board, the next piece and the HUD.
package blocks

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-blocks/internal/config"
	platformcore "github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// Mode selects the piece randomizer.
type Mode string

const (
	ModeClassic  Mode = "blocks"          // Uniform randomizer
	ModeWeighted Mode = "blocks_weighted" // S and Z grow more likely with level
)

// Banner timings in wall-clock time; converted to frames on Reset.
const (
	bannerDuration  = 1200 * time.Millisecond
	blockedDuration = 250 * time.Millisecond
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

func init() {
	registry.Register(string(ModeClassic), func() registry.Game { return New() })
	registry.Register(string(ModeWeighted), func() registry.Game { return NewWeighted() })
}

// Game implements registry.Game on top of a core.Session.
type Game struct {
	mode    Mode
	runtime platformcore.RuntimeConfig
	cfg     config.BlocksConfig
	session *core.Session
	frame   time.Duration
	phrases *rand.Rand

	// newRandomizer overrides the policy-based randomizer (tests).
	newRandomizer func(seed int64) core.Randomizer

	banner        string
	bannerFrames  int
	bannerTotal   int
	blockedFrames int
	blockedTotal  int
	lastCleared   int
	frames        uint64

	minScreenW int
	minScreenH int
	tooSmall   bool
}

// New creates a game with the uniform randomizer.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewWeighted creates a game with the level-biased randomizer.
func NewWeighted() *Game {
	return &Game{mode: ModeWeighted}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.mode == ModeWeighted {
		return "Blocks (Weighted)"
	}
	return "Blocks"
}

// policy returns the randomizer policy for the mode.
func (g *Game) policy() string {
	if g.mode == ModeWeighted {
		return core.PolicyWeighted
	}
	return core.PolicyUniform
}

// Reset loads the configuration and starts a fresh session in the Idle state.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBlocks(configPath)
	if err != nil {
		cfg = config.DefaultBlocksConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBlocksPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	session, err := g.buildSession(cfg, runtime.Seed)
	if err != nil {
		g.cfg = config.DefaultBlocksConfig()
		session, err = g.buildSession(g.cfg, runtime.Seed)
		if err != nil {
			panic("blocks: default rules rejected: " + err.Error())
		}
	}
	g.session = session
	g.session.Subscribe(g.onEvent)

	g.frame = runtime.FrameDuration()
	g.phrases = rand.New(rand.NewSource(runtime.Seed))
	g.bannerTotal = framesFor(bannerDuration, g.frame)
	g.blockedTotal = framesFor(blockedDuration, g.frame)
	g.clearBanners()
	g.frames = 0

	rules := g.session.Rules()
	g.minScreenW = boardWidth(rules) + panelGap + panelWidth
	g.minScreenH = max(boardHeight(rules), panelHeight)
	g.tooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH
}

func (g *Game) buildSession(cfg config.BlocksConfig, seed int64) (*core.Session, error) {
	var r core.Randomizer
	if g.newRandomizer != nil {
		r = g.newRandomizer(seed)
	} else {
		var err error
		r, err = core.NewRandomizer(g.policy(), seed, cfg.Randomizer.WeightedBias)
		if err != nil {
			return nil, err
		}
	}
	return core.NewSession(cfg.Rules(), r)
}

// framesFor converts a duration to a whole number of frames, at least one.
func framesFor(d, frame time.Duration) int {
	if frame <= 0 {
		return 1
	}
	n := int(d / frame)
	if n < 1 {
		n = 1
	}
	return n
}

func (g *Game) clearBanners() {
	g.banner = ""
	g.bannerFrames = 0
	g.blockedFrames = 0
	g.lastCleared = 0
}

// Step applies the frame's actions in order, then feeds one frame of time
// to the session. Nothing advances while the terminal is too small.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	g.frames++
	for _, a := range in.Actions() {
		g.apply(a)
	}
	g.session.Advance(g.frame)

	if g.bannerFrames > 0 {
		g.bannerFrames--
		if g.bannerFrames == 0 {
			g.banner = ""
		}
	}
	if g.blockedFrames > 0 {
		g.blockedFrames--
	}

	return platformcore.StepResult{State: g.State()}
}

// apply translates one platform action into a session request.
func (g *Game) apply(a platformcore.Action) {
	s := g.session
	switch a {
	case platformcore.ActionConfirm:
		s.Start()
	case platformcore.ActionPause:
		if !s.Pause() {
			s.Resume()
		}
	case platformcore.ActionRestart:
		s.Reset()
		g.clearBanners()
	case platformcore.ActionLeft:
		s.Move(core.MoveLeft)
	case platformcore.ActionRight:
		s.Move(core.MoveRight)
	case platformcore.ActionRotateCW:
		s.Rotate(core.RotateCW)
	case platformcore.ActionRotateCCW:
		s.Rotate(core.RotateCCW)
	case platformcore.ActionSoftDrop:
		s.SoftDrop()
	case platformcore.ActionHardDrop:
		s.HardDrop()
	}
}

// onEvent drives the banners from engine notifications.
func (g *Game) onEvent(ev core.Event) {
	switch ev.Type {
	case core.EventLineCleared:
		g.lastCleared = ev.Count
		g.banner = celebration(ev.Count, g.phrases)
		g.bannerFrames = g.bannerTotal
	case core.EventRotated:
		if !ev.Success {
			g.blockedFrames = g.blockedTotal
		}
	case core.EventGameOver:
		g.banner = ""
		g.bannerFrames = 0
	}
}

// State returns the current game state for the platform.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{}
	}
	st := g.session.State()
	return platformcore.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		Combos:   g.session.Combos(),
		Elapsed:  g.session.Elapsed(),
		Started:  st != core.StateIdle,
		GameOver: st == core.StateGameOver,
		Paused:   st == core.StatePaused,
	}
}

// Config returns the configuration the current session was built from.
func (g *Game) Config() config.BlocksConfig {
	return g.cfg
}

// Resize updates the screen size without touching the session.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.tooSmall = w < g.minScreenW || h < g.minScreenH
}
