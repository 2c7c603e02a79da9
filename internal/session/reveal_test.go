package session

import (
	"testing"

	"pairplay/internal/domain"
)

func triviaSession() *domain.Session {
	ref0, ref1 := 0, 1
	return &domain.Session{
		ID:     "s-trivia",
		Kind:   domain.KindTrivia,
		Status: domain.StatusActive,
		Questions: []domain.Question{
			{ID: "t1", Type: domain.QuestionChoice, Options: []string{"a", "b", "c"}, ReferenceOption: &ref0},
			{ID: "t2", Type: domain.QuestionChoice, Options: []string{"a", "b", "c"}, ReferenceOption: &ref1},
		},
		RoleAID:  userA,
		RoleBID:  userB,
		AnswersA: map[string]domain.Answer{},
		AnswersB: map[string]domain.Answer{},
	}
}

func TestAnswersFor(t *testing.T) {
	s := triviaSession()
	s.AnswersA["t1"] = opt(0)

	a, b := AnswersFor(s, "t1")
	if a == nil || *a.Option != 0 {
		t.Fatalf("roleA answer = %+v; want option 0", a)
	}
	if b != nil {
		t.Fatalf("roleB answer = %+v; want absent", b)
	}
}

func TestRevealIndependentOfCursor(t *testing.T) {
	s := triviaSession()
	s.Cursor = 0

	// both answered t2 while the cursor still points at t1
	s.AnswersA["t2"] = opt(1)
	s.AnswersB["t2"] = opt(2)

	view := Reveal(s)
	if view.Reveals[0].Revealed {
		t.Fatal("t1 revealed with only zero answers")
	}
	if !view.Reveals[1].Revealed {
		t.Fatal("t2 not revealed despite both answers present")
	}
	if view.Reveals[1].Match == nil || *view.Reveals[1].Match {
		t.Fatalf("t2 match = %v; want false", view.Reveals[1].Match)
	}
}

// Trivia points measure agreement with the template reference option, not
// with the partner.
func TestTriviaScoreAgainstReference(t *testing.T) {
	s := triviaSession()
	s.AnswersA["t1"] = opt(0) // matches reference
	s.AnswersA["t2"] = opt(0) // does not
	s.AnswersB["t1"] = opt(0) // matches reference
	s.AnswersB["t2"] = opt(1) // matches reference

	view := Reveal(s)
	if view.ScoreA != 1 {
		t.Fatalf("scoreA = %d; want 1", view.ScoreA)
	}
	if view.ScoreB != 2 {
		t.Fatalf("scoreB = %d; want 2", view.ScoreB)
	}

	// partner agreement is still reported separately
	if view.Matches != 1 {
		t.Fatalf("matches = %d; want 1 (t1 only)", view.Matches)
	}
}

func TestFreeTextHasNoMatchConcept(t *testing.T) {
	s := &domain.Session{
		ID:     "s-ft",
		Kind:   domain.KindFreeText,
		Status: domain.StatusActive,
		Questions: []domain.Question{
			{ID: "f1", Type: domain.QuestionFreeText},
		},
		RoleAID:  userA,
		RoleBID:  userB,
		AnswersA: map[string]domain.Answer{"f1": {Text: "the beach"}},
		AnswersB: map[string]domain.Answer{"f1": {Text: "the mountains"}},
	}

	view := Reveal(s)
	r := view.Reveals[0]
	if !r.Revealed {
		t.Fatal("f1 not revealed")
	}
	if r.Match != nil {
		t.Fatalf("free-text question has match = %v; want none", *r.Match)
	}
	if r.AnswerA.Text != "the beach" || r.AnswerB.Text != "the mountains" {
		t.Fatalf("answers = %q/%q", r.AnswerA.Text, r.AnswerB.Text)
	}
	if view.ScoreA != 0 || view.ScoreB != 0 {
		t.Fatalf("free-text scores = %d/%d; want 0/0", view.ScoreA, view.ScoreB)
	}
}
