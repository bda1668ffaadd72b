package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrPluginDisabled   = errors.New("moderation plugin is disabled")
	ErrPluginNotFound   = errors.New("moderation plugin not found")
	ErrChecksumMismatch = errors.New("moderation plugin checksum mismatch")
	ErrPluginTimeout    = errors.New("moderation plugin timeout")
)

// Decision is the outcome of classifying a piece of user input.
type Decision struct {
	Allowed    bool
	Category   string
	Matched    string
	Suggestion string
}

type Metadata struct {
	Name    string
	Version string
}

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// Manifest describes an out-of-process classifier binary.
type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Binary  string `json:"binary"`
	SHA256  string `json:"sha256"`
	Enabled bool   `json:"enabled"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("plugin name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("plugin version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("plugin binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("plugin sha256 must be lowercase 64-char hex")
	}
	return nil
}

// denylist holds the category keyword lists of the built-in filter.
var denylist = []struct {
	category   string
	terms      []string
	suggestion string
}{
	{
		category:   "violence",
		terms:      []string{"violence", "fighting", "killing", "murder", "assault"},
		suggestion: "Try a subject like conflict resolution or peace studies instead.",
	},
	{
		category:   "drugs",
		terms:      []string{"drugs", "cocaine", "heroin", "meth", "narcotics"},
		suggestion: "Try a subject like pharmacology or public health instead.",
	},
	{
		category:   "weapons",
		terms:      []string{"weapons", "firearms", "explosives", "bomb making"},
		suggestion: "Try a subject like engineering or materials science instead.",
	},
	{
		category:   "terrorism",
		terms:      []string{"terrorism", "extremism", "radicalization"},
		suggestion: "Try a subject like political science or international relations instead.",
	},
	{
		category:   "hate speech",
		terms:      []string{"hate speech", "racism", "bigotry"},
		suggestion: "Try a subject like sociology or ethics instead.",
	},
	{
		category:   "adult content",
		terms:      []string{"adult content", "pornography", "explicit content"},
		suggestion: "Try a subject like human biology or psychology instead.",
	},
	{
		category:   "illegal activity",
		terms:      []string{"hacking accounts", "identity theft", "money laundering", "fraud"},
		suggestion: "Try a subject like cybersecurity or law instead.",
	},
}

// ClassifyKeywords runs the built-in case-insensitive substring filter.
// The zero-value allowed decision means no denylisted term matched.
func ClassifyKeywords(text string) Decision {
	lowered := strings.ToLower(text)
	for _, entry := range denylist {
		for _, term := range entry.terms {
			if strings.Contains(lowered, term) {
				return Decision{
					Allowed:    false,
					Category:   entry.category,
					Matched:    term,
					Suggestion: entry.suggestion,
				}
			}
		}
	}
	return Decision{Allowed: true}
}
