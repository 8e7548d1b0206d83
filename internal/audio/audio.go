package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gordonklaus/portaudio"
)

// Player starts background music. Play is called at most once.
type Player interface {
	Play() error
	Close() error
}

type Config struct {
	Backend string
	File    string
	Volume  float64
}

func New(cfg Config) (Player, error) {
	switch cfg.Backend {
	case "", "beep":
		return &SpeakerPlayer{file: cfg.File, volume: cfg.Volume}, nil
	case "portaudio":
		return &StreamPlayer{file: cfg.File, volume: cfg.Volume}, nil
	case "none":
		return Silent{}, nil
	}
	return nil, fmt.Errorf("audio: unknown backend %q", cfg.Backend)
}

// Silent is the no-audio backend.
type Silent struct{}

func (Silent) Play() error  { return nil }
func (Silent) Close() error { return nil }

// SpeakerPlayer plays through beep's speaker.
type SpeakerPlayer struct {
	file   string
	volume float64

	mu     sync.Mutex
	track  *Track
	active bool
}

func (p *SpeakerPlayer) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active {
		return nil
	}

	track, err := Open(p.file, p.volume)
	if err != nil {
		return err
	}
	sr := track.Format.SampleRate
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		track.Close()
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(track.Streamer)

	p.track = track
	p.active = true
	return nil
}

func (p *SpeakerPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active {
		return nil
	}
	speaker.Close()
	p.active = false
	return p.track.Close()
}

// StreamPlayer pulls the track through a PortAudio output stream.
type StreamPlayer struct {
	file   string
	volume float64

	Stream *portaudio.Stream
	src    beep.Streamer
	buf    [][2]float64
	track  *Track
	Active bool
}

func (p *StreamPlayer) Play() error {
	if p.Active {
		return nil
	}
	track, err := Open(p.file, p.volume)
	if err != nil {
		return err
	}
	p.track = track
	p.src = track.Streamer
	if track.Format.SampleRate != SampleRate {
		p.src = beep.Resample(4, track.Format.SampleRate, SampleRate, track.Streamer)
	}
	p.buf = make([][2]float64, BufferSize)

	if err := portaudio.Initialize(); err != nil {
		track.Close()
		return fmt.Errorf("audio: portaudio init: %w", err)
	}

	// Output only (0 in, 2 out); duplex often fails on Linux if devices differ
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, p.Process)
	if err != nil {
		portaudio.Terminate()
		track.Close()
		return fmt.Errorf("audio: open stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		track.Close()
		return fmt.Errorf("audio: start stream: %w", err)
	}

	p.Stream = stream
	p.Active = true
	return nil
}

// Process fills one PortAudio buffer. Anything the source fails to provide
// is silence.
func (p *StreamPlayer) Process(out [][]float32) {
	frames := len(out[0])
	if cap(p.buf) < frames {
		p.buf = make([][2]float64, frames)
	}
	buf := p.buf[:frames]

	n := 0
	for n < frames {
		got, ok := p.src.Stream(buf[n:])
		n += got
		if !ok || got == 0 {
			break
		}
	}
	for i := 0; i < frames; i++ {
		if i < n {
			out[0][i] = float32(buf[i][0])
			out[1][i] = float32(buf[i][1])
			continue
		}
		out[0][i], out[1][i] = 0, 0
	}
}

func (p *StreamPlayer) Close() error {
	if !p.Active {
		return nil
	}
	p.Stream.Stop()
	p.Stream.Close()
	portaudio.Terminate()
	p.Active = false
	return p.track.Close()
}
