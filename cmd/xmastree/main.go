package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/xmastree/internal/audio"
	"github.com/san-kum/xmastree/internal/blink"
	"github.com/san-kum/xmastree/internal/config"
	"github.com/san-kum/xmastree/internal/sched"
	"github.com/san-kum/xmastree/internal/tree"
	"github.com/san-kum/xmastree/internal/tui"
	"github.com/san-kum/xmastree/internal/typewriter"
)

var (
	configFile   string
	palette      string
	musicFile    string
	audioBackend string
	noAudio      bool
	logFile      string
	// render
	ticks int
	// lyrics
	fast bool
)

// main registers commands and flags; with no subcommand it runs the tree in
// the terminal. It exits with status 1 if the command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "xmastree",
		Short:        "blinking christmas tree for the terminal",
		SilenceUsage: true,
		RunE:         runTree,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&palette, "palette", config.DefaultPalette, "color palette")
	rootCmd.Flags().StringVar(&musicFile, "music", "", "background music file (.mp3, .wav)")
	rootCmd.Flags().StringVar(&audioBackend, "audio-backend", config.DefaultBackend, "audio backend (beep, portaudio, none)")
	rootCmd.Flags().BoolVar(&noAudio, "no-audio", false, "disable music")
	rootCmd.Flags().StringVar(&logFile, "log", "", "write diagnostics to file")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "print the tree once",
		RunE:  renderTree,
	}
	renderCmd.Flags().IntVar(&ticks, "ticks", 0, "blink ticks to apply before printing")

	lyricsCmd := &cobra.Command{
		Use:   "lyrics",
		Short: "type the lyrics to stdout",
		RunE:  typeLyrics,
	}
	lyricsCmd.Flags().BoolVar(&fast, "fast", false, "no typing delays")

	palettesCmd := &cobra.Command{
		Use:   "palettes",
		Short: "list available palettes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range tree.PaletteNames() {
				p, _ := tree.GetPalette(name)
				fmt.Printf("  %-8s", name)
				fmt.Print(tui.Paint([][]tree.Unit{swatch(p)}, 0))
				fmt.Println()
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(cfg)
		},
	}

	rootCmd.AddCommand(renderCmd, lyricsCmd, palettesCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers defaults, the config file and explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("palette") {
		cfg.Palette = palette
	}
	if flags.Lookup("music") != nil && flags.Changed("music") {
		cfg.Audio.File = musicFile
	}
	if flags.Lookup("audio-backend") != nil && flags.Changed("audio-backend") {
		cfg.Audio.Backend = audioBackend
	}
	if noAudio {
		cfg.Audio.Backend = "none"
	}
	if flags.Lookup("log") != nil && flags.Changed("log") {
		cfg.LogFile = logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runTree(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so diagnostics go to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "xmastree")
		if err != nil {
			return fmt.Errorf("failed to open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	player, err := audio.New(audio.Config{
		Backend: cfg.Audio.Backend,
		File:    cfg.Audio.File,
		Volume:  cfg.Audio.Volume,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := player.Close(); err != nil {
			log.Printf("closing audio: %v", err)
		}
	}()

	return tui.Run(tui.Options{
		Template:      cfg.Template,
		Palette:       cfg.GetPalette(),
		Lyrics:        cfg.Lyrics,
		BlinkInterval: cfg.Timing.Blink,
		CharDelay:     cfg.Timing.Char,
		LineDelay:     cfg.Timing.Line,
		Player:        player,
	})
}

func renderTree(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if ticks < 0 {
		return fmt.Errorf("ticks must be non-negative, got %d", ticks)
	}

	canvas := tree.NewCanvas()
	tree.Render(canvas, cfg.Template, cfg.GetPalette())
	anim := blink.New(cfg.GetPalette())
	for i := 0; i < ticks; i++ {
		anim.Tick(canvas)
	}

	rows := canvas.Rows()
	fmt.Println(tui.Paint(rows, tui.TreeWidth(rows)))
	return nil
}

// typeLyrics runs the typewriter headless on a real-time loop until the
// script is done or the user interrupts.
func typeLyrics(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	charDelay, lineDelay := cfg.Timing.Char, cfg.Timing.Line
	if fast {
		charDelay, lineDelay = time.Nanosecond, time.Nanosecond
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tw := typewriter.New(cfg.Lyrics, typewriter.WriterOutput{W: os.Stdout}, typewriter.WithDelays(charDelay, lineDelay))
	loop := sched.NewLoop()
	loop.After(0, func() {
		sched.Chain(loop, func() (time.Duration, bool) {
			next, more := tw.Step()
			if !more {
				cancel()
			}
			return next, more
		})
	})

	// Run only returns once ctx is done, either finished or interrupted.
	loop.Run(ctx)
	return nil
}

func swatch(p tree.Palette) []tree.Unit {
	row := make([]tree.Unit, 0, len(tree.BlinkIDs)+1)
	for _, id := range tree.BlinkIDs {
		row = append(row, tree.Classify(id, p))
	}
	return append(row, tree.Classify(tree.GenericTag, p))
}
