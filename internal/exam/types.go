package exam

import "time"

// MistakeCategory classifies why an answer was wrong.
type MistakeCategory string

const (
	CategoryKnowledgeGap MistakeCategory = "Knowledge Gap"
	CategoryTrap         MistakeCategory = "Trap"
	CategoryOverthinking MistakeCategory = "Overthinking"
	CategoryTimePressure MistakeCategory = "Time Pressure"
	CategoryBlindGuess   MistakeCategory = "Blind Guess"
)

// DefaultCategory is the placeholder applied to every incorrect answer at
// submission time, before any classification has run. The merge rule in the
// analysis pipeline treats it as "not yet chosen by a human".
const DefaultCategory = CategoryKnowledgeGap

// Categories lists all valid mistake categories in display order.
func Categories() []MistakeCategory {
	return []MistakeCategory{
		CategoryKnowledgeGap,
		CategoryTrap,
		CategoryOverthinking,
		CategoryTimePressure,
		CategoryBlindGuess,
	}
}

// ValidCategory reports whether s is one of the five known categories.
// Classification responses are validated with this at the pipeline boundary;
// anything else is treated as a service fault, not a new category.
func ValidCategory(s string) bool {
	switch MistakeCategory(s) {
	case CategoryKnowledgeGap, CategoryTrap, CategoryOverthinking,
		CategoryTimePressure, CategoryBlindGuess:
		return true
	}
	return false
}

// PaperStatus is the lifecycle state of a mock paper.
type PaperStatus string

const (
	StatusLocked    PaperStatus = "locked"
	StatusAvailable PaperStatus = "available"
	StatusSubmitted PaperStatus = "submitted"
	StatusAnalyzed  PaperStatus = "analyzed"
)

// Question is a single mock-exam question. Immutable once generated.
type Question struct {
	ID              string
	Section         string
	Text            string
	Options         []string
	CorrectAnswer   string
	VerifiedSource  bool
	TrapExplanation string
}

// Answer records what the candidate did with one question of one paper.
// Exactly one Answer exists per (Paper, Question) pair after submission.
type Answer struct {
	ID            string
	PaperID       string
	QuestionID    string
	UserAnswer    string // empty when unanswered
	Correct       bool
	TimeSpentSecs int
	// MistakeCategory is empty for correct answers. Incorrect answers start
	// at DefaultCategory and may later be updated by the analysis pipeline
	// or directly by the candidate.
	MistakeCategory MistakeCategory
}

// Paper is one assessment attempt.
type Paper struct {
	ID              string
	OwnerID         string
	Status          PaperStatus
	Score           int // count of correct answers
	Accuracy        int // round(100 * score / questions), 0 for empty papers
	DifficultyLevel int
	RecoveryMode    bool
	CreatedAt       time.Time
	SubmittedAt     time.Time
	UnlockedAt      time.Time // analysis becomes visible after this instant
}

// Zone is the candidate's current performance zone.
type Zone string

const (
	ZoneSafe       Zone = "Safe"
	ZoneBorderline Zone = "Borderline"
	ZoneDanger     Zone = "Danger"
)

// Profile describes the candidate and the exam they are preparing for.
type Profile struct {
	ID          string
	ExamName    string
	TargetScore int
	StreakCount int
	Zone        Zone
	ExamDate    time.Time
	GroupID     string // empty when not in a study group
	Region      string
	TargetLevel string // National, State, or Board
}

// Priority ranks a remediation topic.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
)

// StudyTopic is one block of the remediation plan returned by the mentor.
type StudyTopic struct {
	Topic    string
	Summary  string
	Priority Priority
}
