package game

import (
	"testing"

	"pairplay/internal/domain"
)

func TestPolicyFor(t *testing.T) {
	cases := []struct {
		kind      domain.GameKind
		qtype     domain.QuestionType
		matchable bool
	}{
		{domain.KindFreeText, domain.QuestionFreeText, false},
		{domain.KindTrivia, domain.QuestionChoice, true},
		{domain.KindWouldYouRather, domain.QuestionChoice, true},
		{domain.KindThisOrThat, domain.QuestionChoice, true},
	}

	for _, tc := range cases {
		p, err := PolicyFor(tc.kind)
		if err != nil {
			t.Fatalf("%s: %v", tc.kind, err)
		}
		if p.Kind() != tc.kind {
			t.Fatalf("%s: kind = %s", tc.kind, p.Kind())
		}
		if p.QuestionType() != tc.qtype {
			t.Fatalf("%s: question type = %s; want %s", tc.kind, p.QuestionType(), tc.qtype)
		}
		if p.Matchable() != tc.matchable {
			t.Fatalf("%s: matchable = %v; want %v", tc.kind, p.Matchable(), tc.matchable)
		}
	}
}

func TestPolicyForUnknownKind(t *testing.T) {
	if _, err := PolicyFor(domain.GameKind("poker")); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestTriviaScoreSkipsUnansweredAndUnreferenced(t *testing.T) {
	ref := 1
	one := 1
	zero := 0
	s := &domain.Session{
		Kind: domain.KindTrivia,
		Questions: []domain.Question{
			{ID: "t1", Type: domain.QuestionChoice, Options: []string{"a", "b"}, ReferenceOption: &ref},
			{ID: "t2", Type: domain.QuestionChoice, Options: []string{"a", "b"}, ReferenceOption: &ref},
			{ID: "t3", Type: domain.QuestionChoice, Options: []string{"a", "b"}}, // no reference
		},
		RoleAID: 1,
		RoleBID: 2,
		AnswersA: map[string]domain.Answer{
			"t1": {Option: &one},  // point
			"t3": {Option: &one},  // no reference, no point
		},
		AnswersB: map[string]domain.Answer{
			"t1": {Option: &zero}, // wrong
			"t2": {Option: &one},  // point
		},
	}

	p, err := PolicyFor(domain.KindTrivia)
	if err != nil {
		t.Fatalf("policy: %v", err)
	}

	if got := p.Score(s, domain.RoleA); got != 1 {
		t.Fatalf("scoreA = %d; want 1", got)
	}
	if got := p.Score(s, domain.RoleB); got != 1 {
		t.Fatalf("scoreB = %d; want 1", got)
	}
}

func TestBinaryKindsHaveNoScore(t *testing.T) {
	p, err := PolicyFor(domain.KindWouldYouRather)
	if err != nil {
		t.Fatalf("policy: %v", err)
	}
	if got := p.Score(&domain.Session{}, domain.RoleA); got != 0 {
		t.Fatalf("score = %d; want 0", got)
	}
}
