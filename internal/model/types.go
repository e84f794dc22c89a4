// Package model defines shared data structures.
package model

import "time"

// Config defines session settings.
type Config struct {
	DurationSeconds int
	DictPath        string
	Queue           int
	Seed            int64
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Since  *time.Time
	Last   int
	Window int
	Plain  bool
}

// Result is the computed snapshot produced once at session end.
type Result struct {
	ElapsedSeconds float64
	CorrectChars   int
	IncorrectChars int
	WPM            float64
	Accuracy       float64
}

// SessionRecord captures a completed typing session for persistence.
type SessionRecord struct {
	StartedAt      time.Time
	EndedAt        time.Time
	DictPath       string
	DurationMs     int64
	CorrectChars   int
	IncorrectChars int
	WordsTyped     int
}

// SessionAggregate summarizes a stored session for reporting.
type SessionAggregate struct {
	SessionID  int64
	EndedAt    time.Time
	Correct    int
	Incorrect  int
	DurationMs int64
	WordsTyped int
}
