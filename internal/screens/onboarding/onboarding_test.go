package onboarding

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/adityakr/prepdrill/internal/exam"
	"github.com/adityakr/prepdrill/internal/screen"
	"github.com/adityakr/prepdrill/internal/screens/home"
)

type memProfiles struct {
	saved *exam.Profile
}

func (m *memProfiles) Profile(context.Context) (*exam.Profile, error) {
	return m.saved, nil
}

func (m *memProfiles) SaveProfile(_ context.Context, p exam.Profile) error {
	m.saved = &p
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(t *testing.T, scr screen.Screen, text string) screen.Screen {
	t.Helper()
	for _, r := range text {
		scr, _ = scr.Update(keyPress(r))
	}
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	return scr
}

func TestOnboarding_Title(t *testing.T) {
	s := New(home.Deps{Profiles: &memProfiles{}})
	if s.Title() != "Enrollment" {
		t.Errorf("Title = %q, want %q", s.Title(), "Enrollment")
	}
}

func TestOnboarding_EmptyExamNameRejected(t *testing.T) {
	s := New(home.Deps{Profiles: &memProfiles{}})

	scr, _ := s.Update(specialKey(tea.KeyEnter))
	ss := scr.(*OnboardingScreen)

	if ss.step != stepExamName {
		t.Errorf("step = %d, want stepExamName", ss.step)
	}
	if ss.errMsg == "" {
		t.Error("expected validation message for empty exam name")
	}
}

func TestOnboarding_NonNumericTargetRejected(t *testing.T) {
	s := New(home.Deps{Profiles: &memProfiles{}})

	var scr screen.Screen = typeText(t, s, "UPSC CSE")
	scr = typeText(t, scr, "")
	ss := scr.(*OnboardingScreen)

	if ss.step != stepTargetScore {
		t.Errorf("step = %d, want stepTargetScore", ss.step)
	}
	if ss.errMsg == "" {
		t.Error("expected validation message for empty target score")
	}
}

func TestOnboarding_FullWalkthroughSavesProfile(t *testing.T) {
	profiles := &memProfiles{}
	s := New(home.Deps{Profiles: profiles})

	var scr screen.Screen = typeText(t, s, "UPSC CSE")
	scr = typeText(t, scr, "110")
	scr = typeText(t, scr, "90")
	scr = typeText(t, scr, "ALPHA-7")
	scr = typeText(t, scr, "Delhi NCR")

	ss := scr.(*OnboardingScreen)
	if ss.step != stepTargetLevel {
		t.Fatalf("step = %d, want stepTargetLevel", ss.step)
	}

	// Choose the second level and finish.
	scr, _ = ss.Update(keyPress('j'))
	ss = scr.(*OnboardingScreen)
	_, cmd := ss.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected save command")
	}
	if _, ok := cmd().(savedMsg); !ok {
		t.Fatal("expected savedMsg from save command")
	}

	if profiles.saved == nil {
		t.Fatal("expected profile persisted")
	}
	p := profiles.saved
	if p.ExamName != "UPSC CSE" || p.TargetScore != 110 || p.GroupID != "ALPHA-7" ||
		p.Region != "Delhi NCR" || p.TargetLevel != "State" {
		t.Errorf("unexpected profile: %+v", p)
	}
	if p.Zone != exam.ZoneBorderline {
		t.Errorf("zone = %q, want Borderline", p.Zone)
	}
	if p.ID == "" {
		t.Error("expected generated profile ID")
	}
}
