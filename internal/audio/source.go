package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
)

const (
	SampleRate = 44100
	BufferSize = 1024
)

var (
	ErrUnsupportedFormat = errors.New("audio: unsupported file format")
	ErrOpen              = errors.New("audio: cannot open music file")
)

// Track is a decoded, endlessly looping music stream.
type Track struct {
	Streamer beep.Streamer
	Format   beep.Format
	closer   io.Closer
}

func (t *Track) Close() error {
	if t.closer == nil {
		return nil
	}
	return t.closer.Close()
}

// Open decodes path, or synthesizes the jingle when path is empty, and
// wraps the result in an infinite loop at the given volume.
func Open(path string, volume float64) (*Track, error) {
	var (
		src    beep.StreamSeeker
		format beep.Format
		closer io.Closer
		err    error
	)
	if path == "" {
		src, format, err = jingle()
	} else {
		src, format, closer, err = decode(path)
	}
	if err != nil {
		return nil, err
	}

	// Volume is in halvings: -1 is half as loud.
	vol := &effects.Volume{
		Streamer: beep.Loop(-1, src),
		Base:     2,
		Volume:   volume,
	}
	return &Track{Streamer: vol, Format: format, closer: closer}, nil
}

func decode(path string) (beep.StreamSeeker, beep.Format, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}

	var (
		s      beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		s, format, err = mp3.Decode(f)
	case ".wav":
		s, format, err = wav.Decode(f)
	default:
		f.Close()
		return nil, beep.Format{}, nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	return s, format, s, nil
}

type note struct {
	freq  float64
	beats float64
}

// Opening bars of Jingle Bells: E E E, E E E, E G C D E.
var jingleNotes = []note{
	{659.25, 1}, {659.25, 1}, {659.25, 2},
	{659.25, 1}, {659.25, 1}, {659.25, 2},
	{659.25, 1}, {783.99, 1}, {523.25, 1.5}, {587.33, 0.5}, {659.25, 4},
}

const beat = 220 * time.Millisecond

func jingle() (beep.StreamSeeker, beep.Format, error) {
	sr := beep.SampleRate(SampleRate)
	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	gap := sr.N(30 * time.Millisecond)

	buf := beep.NewBuffer(format)
	for _, n := range jingleNotes {
		sine, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, beep.Format{}, fmt.Errorf("audio: tone %.2fHz: %w", n.freq, err)
		}
		length := sr.N(time.Duration(n.beats * float64(beat)))
		buf.Append(&effects.Gain{Streamer: beep.Take(length-gap, sine), Gain: -0.7})
		buf.Append(beep.Silence(gap))
	}
	buf.Append(beep.Silence(sr.N(4 * beat)))
	return buf.Streamer(0, buf.Len()), format, nil
}
