package store

import (
	"context"
	"fmt"

	"github.com/adityakr/prepdrill/ent"
	entprofile "github.com/adityakr/prepdrill/ent/profile"
	"github.com/adityakr/prepdrill/internal/exam"
)

// ProfileRepo persists the single candidate profile.
type ProfileRepo struct {
	client *ent.Client
}

var _ exam.ProfileStore = (*ProfileRepo)(nil)

// Profile returns the stored profile, or nil before onboarding.
func (r *ProfileRepo) Profile(ctx context.Context) (*exam.Profile, error) {
	row, err := r.client.Profile.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}

	return &exam.Profile{
		ID:          row.ID,
		ExamName:    row.ExamName,
		TargetScore: row.TargetScore,
		StreakCount: row.StreakCount,
		Zone:        exam.Zone(row.Zone),
		ExamDate:    row.ExamDate,
		GroupID:     row.GroupID,
		Region:      row.Region,
		TargetLevel: row.TargetLevel,
	}, nil
}

// SaveProfile upserts the profile by ID.
func (r *ProfileRepo) SaveProfile(ctx context.Context, p exam.Profile) error {
	err := r.client.Profile.Create().
		SetID(p.ID).
		SetExamName(p.ExamName).
		SetTargetScore(p.TargetScore).
		SetStreakCount(p.StreakCount).
		SetZone(string(p.Zone)).
		SetExamDate(p.ExamDate).
		SetGroupID(p.GroupID).
		SetRegion(p.Region).
		SetTargetLevel(p.TargetLevel).
		OnConflictColumns(entprofile.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save profile %s: %w", p.ID, err)
	}
	return nil
}
