package exam

import "context"

// RecordStore is the durable record store for papers, questions and answers.
// Writes are per-record upserts; each write is durable before the call
// returns. The SQLite-backed implementation lives in internal/store.
type RecordStore interface {
	// Questions returns the ordered question list for a paper.
	Questions(ctx context.Context, paperID string) ([]Question, error)

	// SaveQuestions persists a paper's generated question set.
	SaveQuestions(ctx context.Context, paperID string, qs []Question) error

	// Answers returns all answers recorded for a paper.
	Answers(ctx context.Context, paperID string) ([]Answer, error)

	// SaveAnswer upserts a single answer by its ID.
	SaveAnswer(ctx context.Context, a Answer) error

	// Papers returns all papers, newest first.
	Papers(ctx context.Context) ([]Paper, error)

	// SavePaper upserts a single paper by its ID.
	SavePaper(ctx context.Context, p Paper) error
}

// ProfileStore persists the candidate profile.
type ProfileStore interface {
	// Profile returns the stored profile, or nil if onboarding hasn't run.
	Profile(ctx context.Context) (*Profile, error)

	// SaveProfile upserts the profile.
	SaveProfile(ctx context.Context, p Profile) error
}
