package session

import (
	"pairplay/internal/domain"
	"pairplay/internal/game"
)

// QuestionReveal is the derived per-question view. A question is revealed
// once both roles have answered it, independent of the shared cursor.
type QuestionReveal struct {
	Question domain.Question `json:"question"`
	Revealed bool            `json:"revealed"`
	AnswerA  *domain.Answer  `json:"answer_a,omitempty"`
	AnswerB  *domain.Answer  `json:"answer_b,omitempty"`
	// Match is set only for revealed choice questions in matchable kinds:
	// true when both selected the same option.
	Match *bool `json:"match,omitempty"`
}

// RevealView is the full derived view of a session: no mutation, computable
// by any subscriber from the record alone.
type RevealView struct {
	Reveals []QuestionReveal `json:"reveals"`
	Matches int              `json:"matches"`
	// ScoreA/ScoreB are kind-policy scores (trivia: agreement with the
	// template reference option). Zero for kinds without a score concept.
	ScoreA int `json:"score_a"`
	ScoreB int `json:"score_b"`
}

// AnswersFor returns both roles' answers for a question, nil when absent.
func AnswersFor(s *domain.Session, questionID string) (*domain.Answer, *domain.Answer) {
	var a, b *domain.Answer
	if v, ok := s.AnswersA[questionID]; ok {
		a = &v
	}
	if v, ok := s.AnswersB[questionID]; ok {
		b = &v
	}
	return a, b
}

// Reveal computes the derived view for every question in order.
func Reveal(s *domain.Session) RevealView {
	policy, err := game.PolicyFor(s.Kind)
	if err != nil {
		return RevealView{}
	}

	view := RevealView{
		Reveals: make([]QuestionReveal, 0, len(s.Questions)),
		ScoreA:  policy.Score(s, domain.RoleA),
		ScoreB:  policy.Score(s, domain.RoleB),
	}

	for _, q := range s.Questions {
		a, b := AnswersFor(s, q.ID)
		r := QuestionReveal{
			Question: q,
			Revealed: a != nil && b != nil,
		}
		if r.Revealed {
			r.AnswerA = a
			r.AnswerB = b
			if policy.Matchable() && q.Type == domain.QuestionChoice {
				m := a.Option != nil && b.Option != nil && *a.Option == *b.Option
				r.Match = &m
				if m {
					view.Matches++
				}
			}
		}
		view.Reveals = append(view.Reveals, r)
	}
	return view
}
