package config

import "errors"

var (
	// ErrParse indicates the config file is not valid YAML for Config.
	ErrParse = errors.New("config: malformed file")

	ErrEmptyTemplate = errors.New("config: template has no lines")

	// ErrTiming indicates a non-positive blink, char or line delay.
	ErrTiming = errors.New("config: delays must be positive")

	ErrUnknownPalette = errors.New("config: unknown palette")
	ErrUnknownBackend = errors.New("config: unknown audio backend")

	// ErrBadKey indicates a color override keyed by anything but one character.
	ErrBadKey = errors.New("config: override keys must be a single character")
)
