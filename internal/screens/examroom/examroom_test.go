package examroom

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/adityakr/prepdrill/internal/attempt"
	"github.com/adityakr/prepdrill/internal/exam"
	"github.com/adityakr/prepdrill/internal/router"
	"github.com/adityakr/prepdrill/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testQuestions() []exam.Question {
	return []exam.Question{
		{ID: "q1", Section: "History", Text: "First?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "a"},
		{ID: "q2", Section: "History", Text: "Second?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "b"},
	}
}

func testScreen() (*ExamRoomScreen, *exam.MemStore) {
	store := exam.NewMemStore()
	paper := exam.Paper{ID: "paper-1", Status: exam.StatusAvailable, CreatedAt: time.Now()}
	s := New(store, nil, nil, paper, testQuestions())
	return s, store
}

func TestExamRoom_Title(t *testing.T) {
	s, _ := testScreen()
	if s.Title() != "Exam Room" {
		t.Errorf("Title = %q, want %q", s.Title(), "Exam Room")
	}
}

func TestExamRoom_SelectOption(t *testing.T) {
	s, _ := testScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	ss := scr.(*ExamRoomScreen)

	if got := ss.engine.Selected("q1"); got != "b" {
		t.Errorf("Selected(q1) = %q, want %q", got, "b")
	}
}

func TestExamRoom_Navigation(t *testing.T) {
	s, _ := testScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('n'))
	ss := scr.(*ExamRoomScreen)
	if _, idx, _ := ss.engine.Current(); idx != 1 {
		t.Errorf("after next, index = %d, want 1", idx)
	}

	scr, _ = ss.Update(keyPress('p'))
	ss = scr.(*ExamRoomScreen)
	if _, idx, _ := ss.engine.Current(); idx != 0 {
		t.Errorf("after prev, index = %d, want 0", idx)
	}
}

func TestExamRoom_SubmitConfirmFlow(t *testing.T) {
	s, _ := testScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('s'))
	ss := scr.(*ExamRoomScreen)
	if !ss.confirming {
		t.Fatal("expected confirm dialog after S")
	}

	// N backs out without submitting.
	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*ExamRoomScreen)
	if ss.confirming {
		t.Fatal("expected confirm dialog dismissed after N")
	}
	if ss.engine.Phase() != attempt.PhaseActive {
		t.Fatal("expected attempt still active after N")
	}

	// S then Y submits.
	scr, _ = ss.Update(keyPress('s'))
	ss = scr.(*ExamRoomScreen)
	_, cmd := ss.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected submit command after Y")
	}

	msg := cmd()
	sub, ok := msg.(submittedMsg)
	if !ok {
		t.Fatalf("expected submittedMsg, got %T", msg)
	}
	if sub.err != nil {
		t.Fatalf("submit failed: %v", sub.err)
	}
	if sub.result.Paper.Status != exam.StatusSubmitted {
		t.Errorf("paper status = %q, want submitted", sub.result.Paper.Status)
	}
}

func TestExamRoom_SubmittedHandsOffToAnalysis(t *testing.T) {
	s, _ := testScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('s'))
	scr, _ = scr.Update(keyPress('y'))
	ss := scr.(*ExamRoomScreen)

	result, err := ss.engine.Submit(t.Context())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	_, cmd := ss.Update(submittedMsg{result: result})
	if cmd == nil {
		t.Fatal("expected navigation command after submission")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg to the analysis screen")
	}
}

func TestExamRoom_PersistFailureKeepsRetry(t *testing.T) {
	s, _ := testScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(submittedMsg{err: errTest})
	ss := scr.(*ExamRoomScreen)

	if ss.errMsg == "" {
		t.Fatal("expected an error message after a failed persist")
	}
}

type testErr string

func (e testErr) Error() string { return string(e) }

var errTest = testErr("disk full")

func TestExamRoom_UnansweredCount(t *testing.T) {
	s, _ := testScreen()

	if got := s.unansweredCount(); got != 2 {
		t.Errorf("unansweredCount = %d, want 2", got)
	}

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	ss := scr.(*ExamRoomScreen)
	if got := ss.unansweredCount(); got != 1 {
		t.Errorf("unansweredCount after answering = %d, want 1", got)
	}
}
