package session

import (
	"time"

	"github.com/tberndt/keydash/internal/model"
	"github.com/tberndt/keydash/internal/stats"
)

// WordSource supplies prompt words. *words.Source satisfies it.
type WordSource interface {
	Next() string
	Fill(n int) []string
}

// State identifies the typing-loop state.
type State int

// Typing-loop states. WordComplete is entered on submit and left on the
// next keystroke; TimeExpired is terminal.
const (
	AwaitingInput State = iota
	WordComplete
	TimeExpired
)

// Session runs one timed typing loop. Keystrokes are compared live against
// the current prompt word: a mismatch is counted incorrect and the cursor
// still advances, so mistakes never block progress. Spaces submit the
// current word and are not scored. Backspace un-types a buffered rune but
// never decrements the scored counts.
type Session struct {
	source WordSource
	clock  *Clock

	queue []string
	typed []rune

	correct    int
	incorrect  int
	wordsTyped int

	state     State
	startedAt time.Time
	endedAt   time.Time
}

// New builds a session with lookahead words pulled from the source.
func New(source WordSource, clock *Clock, lookahead int) *Session {
	if lookahead < 1 {
		lookahead = 1
	}
	return &Session{
		source: source,
		clock:  clock,
		queue:  source.Fill(lookahead),
	}
}

// Type processes one keystroke. The first character keystroke of a run
// starts the clock; a separator never does, so a stray space before typing
// begins leaves the countdown unarmed. Input after expiry is ignored.
func (s *Session) Type(r rune, now time.Time) {
	if s.state == TimeExpired {
		return
	}
	if r == ' ' {
		if s.clock.Started() {
			s.Submit(now)
		}
		return
	}
	if !s.clock.Started() {
		s.clock.Start(now)
		s.startedAt = now
	}
	if s.clock.Expired(now) {
		s.expire(now)
		return
	}
	s.state = AwaitingInput
	target := []rune(s.queue[0])
	pos := len(s.typed)
	if pos < len(target) && target[pos] == r {
		s.correct++
	} else {
		s.incorrect++
	}
	s.typed = append(s.typed, r)
}

// Backspace removes the last buffered rune.
func (s *Session) Backspace() {
	if s.state == TimeExpired || len(s.typed) == 0 {
		return
	}
	s.typed = s.typed[:len(s.typed)-1]
}

// Submit finishes the current word and pulls the next prompt.
func (s *Session) Submit(now time.Time) {
	if s.state == TimeExpired {
		return
	}
	if s.clock.Expired(now) {
		s.expire(now)
		return
	}
	if len(s.typed) == 0 {
		return
	}
	s.wordsTyped++
	s.typed = nil
	copy(s.queue, s.queue[1:])
	s.queue[len(s.queue)-1] = s.source.Next()
	s.state = WordComplete
}

// Tick checks the countdown and transitions to TimeExpired once it runs out.
func (s *Session) Tick(now time.Time) {
	if s.state == TimeExpired {
		return
	}
	if s.clock.Expired(now) {
		s.expire(now)
	}
}

func (s *Session) expire(now time.Time) {
	s.state = TimeExpired
	s.endedAt = now
}

// Result computes the score snapshot for time spent so far.
func (s *Session) Result(now time.Time) (model.Result, error) {
	return stats.Compute(s.correct, s.incorrect, s.clock.Elapsed(now))
}

// Record builds the persistable session row.
func (s *Session) Record(dictPath string, now time.Time) model.SessionRecord {
	ended := s.endedAt
	if ended.IsZero() {
		ended = now
	}
	return model.SessionRecord{
		StartedAt:      s.startedAt,
		EndedAt:        ended,
		DictPath:       dictPath,
		DurationMs:     s.clock.Elapsed(now).Milliseconds(),
		CorrectChars:   s.correct,
		IncorrectChars: s.incorrect,
		WordsTyped:     s.wordsTyped,
	}
}

// State returns the current loop state.
func (s *Session) State() State {
	return s.state
}

// Queue returns the upcoming prompt words; index 0 is the current prompt.
func (s *Session) Queue() []string {
	return s.queue
}

// Typed returns the buffer for the current word.
func (s *Session) Typed() []rune {
	return s.typed
}

// Correct returns the count of correct scored keystrokes.
func (s *Session) Correct() int {
	return s.correct
}

// Incorrect returns the count of incorrect scored keystrokes.
func (s *Session) Incorrect() int {
	return s.incorrect
}

// WordsTyped returns the number of submitted words.
func (s *Session) WordsTyped() int {
	return s.wordsTyped
}

// Clock exposes the countdown.
func (s *Session) Clock() *Clock {
	return s.clock
}

// Restart resets the loop for a fresh run on the same source and a new
// countdown of the same length.
func (s *Session) Restart() {
	clock, err := NewClock(s.clock.Duration())
	if err != nil {
		// The existing clock already validated this duration.
		return
	}
	s.clock = clock
	s.queue = s.source.Fill(len(s.queue))
	s.typed = nil
	s.correct = 0
	s.incorrect = 0
	s.wordsTyped = 0
	s.state = AwaitingInput
	s.startedAt = time.Time{}
	s.endedAt = time.Time{}
}
