package tui

import (
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/xmastree/internal/audio"
	"github.com/san-kum/xmastree/internal/blink"
	"github.com/san-kum/xmastree/internal/tree"
	"github.com/san-kum/xmastree/internal/typewriter"
)

const (
	marginTop  = 1
	marginLeft = 2
	bannerText = "♪ click here or press enter to start ♪"
)

type Options struct {
	Template      []string
	Palette       tree.Palette
	Lyrics        []string
	BlinkInterval time.Duration
	CharDelay     time.Duration
	LineDelay     time.Duration
	Player        audio.Player
}

type blinkMsg time.Time
type typeMsg time.Time

type Model struct {
	opts     Options
	canvas   *tree.Canvas
	animator *blink.Animator
	lyrics   *typewriter.Buffer
	typer    *typewriter.Typewriter

	started       bool
	width, height int
}

func New(opts Options) Model {
	if opts.Player == nil {
		opts.Player = audio.Silent{}
	}
	if opts.BlinkInterval <= 0 {
		opts.BlinkInterval = blink.DefaultInterval
	}
	if opts.CharDelay <= 0 {
		opts.CharDelay = typewriter.DefaultCharDelay
	}
	if opts.LineDelay <= 0 {
		opts.LineDelay = typewriter.DefaultLineDelay
	}

	buf := &typewriter.Buffer{}
	return Model{
		opts:     opts,
		canvas:   tree.NewCanvas(),
		animator: blink.New(opts.Palette),
		lyrics:   buf,
		typer:    typewriter.New(opts.Lyrics, buf, typewriter.WithDelays(opts.CharDelay, opts.LineDelay)),
		width:    80,
		height:   24,
	}
}

// Init renders the tree and starts the blink loop.
func (m Model) Init() tea.Cmd {
	tree.Render(m.canvas, m.opts.Template, m.opts.Palette)
	return blinkAfter(m.opts.BlinkInterval)
}

func blinkAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return blinkMsg(t) })
}

func typeAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return typeMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "enter", " ":
			return m.activate()
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.onBanner(msg.X, msg.Y) {
			return m.activate()
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case blinkMsg:
		m.animator.Tick(m.canvas)
		return m, blinkAfter(m.opts.BlinkInterval)
	case typeMsg:
		if next, more := m.typer.Step(); more {
			return m, typeAfter(next)
		}
	}
	return m, nil
}

// activate is the start gesture: music, hide the banner, start typing.
// Only the first call has any effect.
func (m Model) activate() (Model, tea.Cmd) {
	if m.started {
		return m, nil
	}
	m.started = true

	if err := m.opts.Player.Play(); err != nil {
		log.Printf("music playback failed: %v", err)
	}

	next, more, err := m.typer.Start()
	if err != nil {
		log.Printf("typewriter: %v", err)
		return m, nil
	}
	if !more {
		return m, nil
	}
	return m, typeAfter(next)
}

func (m Model) Started() bool { return m.started }

// Lyrics returns the text revealed so far.
func (m Model) Lyrics() string { return m.lyrics.String() }

func (m Model) Canvas() *tree.Canvas { return m.canvas }

func (m Model) contentWidth(rows [][]tree.Unit) int {
	w := TreeWidth(rows)
	for _, l := range m.opts.Lyrics {
		if n := lipgloss.Width(l); n > w {
			w = n
		}
	}
	if n := lipgloss.Width(BannerStyle.Render(bannerText)); n > w {
		w = n
	}
	return w
}

// onBanner hit-tests a terminal cell against the start banner.
func (m Model) onBanner(x, y int) bool {
	if m.started {
		return false
	}
	rows := m.canvas.Rows()
	banner := BannerStyle.Render(bannerText)
	bw, bh := lipgloss.Width(banner), lipgloss.Height(banner)

	top := marginTop + len(rows) + 1
	left := marginLeft + (m.contentWidth(rows)-bw)/2
	return y >= top && y < top+bh && x >= left && x < left+bw
}

func (m Model) View() string {
	rows := m.canvas.Rows()
	width := m.contentWidth(rows)

	var sections []string
	sections = append(sections, Paint(rows, width), "")
	if !m.started {
		banner := BannerStyle.Render(bannerText)
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, banner))
	} else {
		sections = append(sections, LyricStyle.Render(strings.TrimSuffix(m.lyrics.String(), "\n")))
	}
	sections = append(sections, "", KeyHint.Render("q quit"))

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.NewStyle().MarginTop(marginTop).MarginLeft(marginLeft).Render(body)
}

// Run starts the program on the terminal and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
