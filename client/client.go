// Package client is the terminal front end: it turns key presses into game
// actions and draws the game after every update.
package client

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/eiannone/keyboard"
	"github.com/jcy9503/Tetris3D/tetris"
)

type clientState int

const (
	lobby clientState = iota
	playing
)

type state struct {
	current clientState
	view    ViewAngle
	mu      sync.Mutex
}

func (s *state) get() clientState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *state) set(c clientState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = c
}

func (s *state) turn(n int) ViewAngle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = s.view.Turn(n)
	return s.view
}

func (s *state) angle() ViewAngle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

type tetrisGame interface {
	Start()
	GetUpdate() <-chan *tetris.Tetris
	Action(tetris.Action)
	Read() *tetris.Tetris
	Stop()
}

type renderer interface {
	lobby()
	local(*tetris.Tetris, ViewAngle)
}

type Client struct {
	tetris  tetrisGame
	render  renderer
	options *Options
	logger  *slog.Logger
	kbCh    <-chan keyboard.KeyEvent
	state   *state
	paused  bool
}

type Options struct {
	NoGhost bool
	Writer  io.Writer
	Game    *tetris.Options
}

func New(l *slog.Logger, o *Options) (*Client, error) {
	r, err := newRender(o.Writer, l, o.NoGhost)
	if err != nil {
		return nil, fmt.Errorf("failed to load renderer: %w", err)
	}
	g, err := tetris.NewGame(o.Game)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	kb, err := keyboard.GetKeys(20)
	if err != nil {
		return nil, fmt.Errorf("failed to open keyboard: %w", err)
	}
	return &Client{
		tetris:  g,
		render:  r,
		options: o,
		logger:  l,
		kbCh:    kb,
		state:   &state{current: lobby},
	}, nil
}

// Start shows the lobby and blocks until the player quits.
func (c *Client) Start() {
	c.render.lobby()
	var wg sync.WaitGroup
	wg.Add(1)
	go c.listenKB(&wg)
	wg.Wait()
	c.tetris.Stop()
}

func (c *Client) Close() error {
	return keyboard.Close()
}

func (c *Client) listenKB(wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		event, ok := <-c.kbCh
		if !ok {
			c.logger.Error("Keyboard events channel closed unexpectedly")
			return
		}
		if event.Err != nil {
			c.logger.Error("keysEvents error", slog.String("error", event.Err.Error()))
			return
		}
		if event.Key == keyboard.KeyCtrlC {
			return
		}
		switch c.state.get() {
		case lobby:
			switch event.Rune {
			case 'p':
				c.state.set(playing)
				go c.listenTetris()
			case 'q':
				return
			}
		case playing:
			if event.Rune == 'q' {
				return
			}
			c.handlePlaying(event)
		}
	}
}

func (c *Client) handlePlaying(event keyboard.KeyEvent) {
	switch {
	case event.Rune == 'h':
		c.render.local(c.tetris.Read(), c.state.turn(-1))
		return
	case event.Rune == 'j':
		c.render.local(c.tetris.Read(), c.state.turn(1))
		return
	case event.Key == keyboard.KeyEsc:
		c.paused = !c.paused
		if c.paused {
			c.tetris.Action(tetris.Pause)
		} else {
			c.tetris.Action(tetris.Resume)
		}
		return
	}
	a, ok := keyAction(event)
	if !ok {
		return
	}
	if a == tetris.Restart {
		c.paused = false
	}
	c.tetris.Action(c.state.angle().Remap(a))
}

func (c *Client) listenTetris() {
	c.tetris.Start()
	for u := range c.tetris.GetUpdate() {
		c.render.local(u, c.state.angle())
		if u.State == tetris.GameOver {
			c.logger.Debug("game over", slog.Int("score", u.Score))
		}
	}
}
