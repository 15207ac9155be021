package domain

import "time"

// Difficulty is the author-assigned difficulty of a flashcard.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Outcome is the tri-state answer state of a card within a session.
type Outcome string

const (
	OutcomeUnanswered Outcome = "UNANSWERED"
	OutcomeCorrect    Outcome = "CORRECT"
	OutcomeIncorrect  Outcome = "INCORRECT"
)

func (o Outcome) String() string { return string(o) }

func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeUnanswered, OutcomeCorrect, OutcomeIncorrect:
		return true
	}
	return false
}

// OutcomeFromAnswer maps a boolean answer to its Outcome.
func OutcomeFromAnswer(isCorrect bool) Outcome {
	if isCorrect {
		return OutcomeCorrect
	}
	return OutcomeIncorrect
}

// TimeRange is a statistics window.
type TimeRange string

const (
	TimeRange7Days  TimeRange = "7d"
	TimeRange30Days TimeRange = "30d"
	TimeRange90Days TimeRange = "90d"
	TimeRangeAll    TimeRange = "all"

	// DefaultTimeRange is used when a client sends an unknown window.
	DefaultTimeRange = TimeRange7Days
)

func (r TimeRange) String() string { return string(r) }

func (r TimeRange) IsValid() bool {
	switch r {
	case TimeRange7Days, TimeRange30Days, TimeRange90Days, TimeRangeAll:
		return true
	}
	return false
}

// ParseTimeRange returns the matching TimeRange, or DefaultTimeRange for
// anything unrecognized (including the empty string).
func ParseTimeRange(s string) TimeRange {
	r := TimeRange(s)
	if r.IsValid() {
		return r
	}
	return DefaultTimeRange
}

// Since returns the start of the window relative to now.
// The second value is false for TimeRangeAll (no lower bound).
func (r TimeRange) Since(now time.Time) (time.Time, bool) {
	switch r {
	case TimeRange30Days:
		return now.AddDate(0, 0, -30), true
	case TimeRange90Days:
		return now.AddDate(0, 0, -90), true
	case TimeRangeAll:
		return time.Time{}, false
	default:
		return now.AddDate(0, 0, -7), true
	}
}

// DeckStatField names an incrementable deck counter.
type DeckStatField string

const (
	DeckStatTotalCards     DeckStatField = "total_cards"
	DeckStatTotalStudyTime DeckStatField = "total_study_time"
)

func (f DeckStatField) IsValid() bool {
	switch f {
	case DeckStatTotalCards, DeckStatTotalStudyTime:
		return true
	}
	return false
}

// FlashcardStatField names an incrementable flashcard counter.
type FlashcardStatField string

const (
	FlashcardStatTotalViews       FlashcardStatField = "total_views"
	FlashcardStatCorrectAnswers   FlashcardStatField = "correct_answers"
	FlashcardStatIncorrectAnswers FlashcardStatField = "incorrect_answers"
)

func (f FlashcardStatField) IsValid() bool {
	switch f {
	case FlashcardStatTotalViews, FlashcardStatCorrectAnswers, FlashcardStatIncorrectAnswers:
		return true
	}
	return false
}

// AnswerStatField returns the flashcard counter an answer contributes to.
func AnswerStatField(isCorrect bool) FlashcardStatField {
	if isCorrect {
		return FlashcardStatCorrectAnswers
	}
	return FlashcardStatIncorrectAnswers
}
