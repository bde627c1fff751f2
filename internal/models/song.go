package models

import (
	"errors"
	"fmt"
	"strings"
)

// Song duration bounds in seconds.
const (
	MinSongDuration = 1
	MaxSongDuration = 600
)

// ErrInvalidSong signals a rejected song construction.
var ErrInvalidSong = errors.New("invalid song")

// Song is an immutable catalog track. Identity is the case-insensitive
// (title, creator) pair; duration never participates in equality.
type Song struct {
	Title           string `json:"title"`
	Creator         string `json:"creator"`
	DurationSeconds int    `json:"duration_seconds"`
}

// NewSong validates and builds a Song. Title and creator must be non-blank
// after trimming and the duration must fall within [MinSongDuration,
// MaxSongDuration].
func NewSong(title, creator string, durationSeconds int) (Song, error) {
	title = strings.TrimSpace(title)
	creator = strings.TrimSpace(creator)
	if title == "" {
		return Song{}, fmt.Errorf("%w: title is required", ErrInvalidSong)
	}
	if creator == "" {
		return Song{}, fmt.Errorf("%w: creator is required", ErrInvalidSong)
	}
	if durationSeconds < MinSongDuration || durationSeconds > MaxSongDuration {
		return Song{}, fmt.Errorf("%w: duration must be between %d and %d seconds",
			ErrInvalidSong, MinSongDuration, MaxSongDuration)
	}
	return Song{Title: title, Creator: creator, DurationSeconds: durationSeconds}, nil
}

// Equal reports whether two songs share an identity.
func (s Song) Equal(other Song) bool {
	return strings.EqualFold(s.Title, other.Title) && strings.EqualFold(s.Creator, other.Creator)
}

// IsZero reports whether the song carries no data at all.
func (s Song) IsZero() bool {
	return s == Song{}
}

// DurationFormatted renders the track length as zero-padded "MM:SS".
func (s Song) DurationFormatted() string {
	return formatDuration(s.DurationSeconds)
}

func (s Song) String() string {
	return fmt.Sprintf("%s - %s - %s", s.Title, s.Creator, s.DurationFormatted())
}

// formatDuration renders seconds as "MM:SS". Minutes are not folded into
// hours: 3725 seconds renders as "62:05".
func formatDuration(totalSeconds int) string {
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}
