package game

import (
	"fmt"

	"pairplay/internal/domain"
)

// Policy captures what actually differs between the four game kinds: the
// question shape, whether two choice answers can "match", and how a
// participant's score is computed. The session coordinator is parameterized
// by a Policy instead of being copied per kind.
type Policy interface {
	Kind() domain.GameKind
	QuestionType() domain.QuestionType

	// Matchable reports whether reveal should compare the two answers.
	Matchable() bool

	// Score returns the participant's points for the session. Kinds without
	// a score concept return 0.
	Score(s *domain.Session, role domain.Role) int
}

// PolicyFor returns the policy for a kind.
func PolicyFor(kind domain.GameKind) (Policy, error) {
	switch kind {
	case domain.KindFreeText:
		return freeTextPolicy{}, nil
	case domain.KindTrivia:
		return triviaPolicy{}, nil
	case domain.KindWouldYouRather:
		return binaryPolicy{kind: domain.KindWouldYouRather}, nil
	case domain.KindThisOrThat:
		return binaryPolicy{kind: domain.KindThisOrThat}, nil
	default:
		return nil, fmt.Errorf("unknown game kind: %s", kind)
	}
}

// free-text: side-by-side reveal, no comparison, no score
type freeTextPolicy struct{}

func (freeTextPolicy) Kind() domain.GameKind               { return domain.KindFreeText }
func (freeTextPolicy) QuestionType() domain.QuestionType   { return domain.QuestionFreeText }
func (freeTextPolicy) Matchable() bool                     { return false }
func (freeTextPolicy) Score(*domain.Session, domain.Role) int { return 0 }

// trivia: choice questions with an authored reference option. A point is
// awarded when the participant's own answer equals the template reference,
// not when it equals the partner's answer. Reveal still shows the
// partner-agreement match separately.
type triviaPolicy struct{}

func (triviaPolicy) Kind() domain.GameKind             { return domain.KindTrivia }
func (triviaPolicy) QuestionType() domain.QuestionType { return domain.QuestionChoice }
func (triviaPolicy) Matchable() bool                   { return true }

func (triviaPolicy) Score(s *domain.Session, role domain.Role) int {
	answers := s.AnswersOf(role)
	score := 0
	for _, q := range s.Questions {
		if q.ReferenceOption == nil {
			continue
		}
		a, ok := answers[q.ID]
		if ok && a.Option != nil && *a.Option == *q.ReferenceOption {
			score++
		}
	}
	return score
}

// would-you-rather / this-or-that: two options, match on agreement, no score
type binaryPolicy struct {
	kind domain.GameKind
}

func (p binaryPolicy) Kind() domain.GameKind                  { return p.kind }
func (binaryPolicy) QuestionType() domain.QuestionType        { return domain.QuestionChoice }
func (binaryPolicy) Matchable() bool                          { return true }
func (binaryPolicy) Score(*domain.Session, domain.Role) int   { return 0 }
