package questionbank

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"pairplay/internal/domain"
	"pairplay/internal/logger"
)

// Prompt is what the external generation collaborator returns.
type Prompt struct {
	Prompt   string `json:"prompt"`
	Category string `json:"category,omitempty"`
}

// Generator is the external question-generation collaborator. It may fail or
// return an empty result; the provider always recovers with templates.
type Generator interface {
	Generate(ctx context.Context, pairID string, kind domain.GameKind, count int) ([]Prompt, error)
}

// Provider assembles the ordered question sequence for a new session.
type Provider struct {
	gen Generator // optional, free-text kind only

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewProvider(gen Generator) *Provider {
	return &Provider{
		gen: gen,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Assemble returns between 1 and count questions for the kind, stamped with
// session-local ids. The binary and trivia kinds always draw from the curated
// banks. The free-text kind first tries the generator; a failed, timed-out or
// empty generation falls back to the free-text bank and is never surfaced to
// the caller.
func (p *Provider) Assemble(ctx context.Context, kind domain.GameKind, count int, pairID string) ([]domain.Question, error) {
	if count < 1 {
		count = 1
	}

	if kind == domain.KindFreeText && p.gen != nil {
		prompts, err := p.gen.Generate(ctx, pairID, kind, count)
		if err != nil {
			logger.Warn("question generation failed, using templates", "pair_id", pairID, "error", err)
			generatorFallbacks.Inc()
		} else if tpls := promptsToTemplates(prompts); len(tpls) > 0 {
			return stamp(kind, tpls, count), nil
		} else {
			logger.Warn("question generation returned nothing, using templates", "pair_id", pairID)
			generatorFallbacks.Inc()
		}
	}

	bank, err := bankFor(kind)
	if err != nil {
		return nil, err
	}
	if len(bank) == 0 {
		return nil, fmt.Errorf("empty template bank for kind %s", kind)
	}

	return stamp(kind, p.draw(bank, count), count), nil
}

// draw shuffles a copy of the bank and takes the first min(count, len) entries.
func (p *Provider) draw(bank []Template, count int) []Template {
	picked := append([]Template(nil), bank...)

	p.mu.Lock()
	p.rnd.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	p.mu.Unlock()

	if count < len(picked) {
		picked = picked[:count]
	}
	return picked
}

// stamp turns templates into questions with ids unique within the session:
// kind tag + creation timestamp + draw position.
func stamp(kind domain.GameKind, templates []Template, count int) []domain.Question {
	if count < len(templates) {
		templates = templates[:count]
	}

	now := time.Now().UnixMilli()
	questions := make([]domain.Question, 0, len(templates))
	for i, t := range templates {
		q := domain.Question{
			ID:       fmt.Sprintf("%s-%d-%d", kindTag(kind), now, i),
			Prompt:   t.Prompt,
			Category: t.Category,
		}
		if len(t.Options) > 0 {
			q.Type = domain.QuestionChoice
			q.Options = append([]string(nil), t.Options...)
			if t.Reference >= 0 {
				ref := t.Reference
				q.ReferenceOption = &ref
			}
		} else {
			q.Type = domain.QuestionFreeText
		}
		questions = append(questions, q)
	}
	return questions
}

func promptsToTemplates(prompts []Prompt) []Template {
	out := make([]Template, 0, len(prompts))
	for _, pr := range prompts {
		if pr.Prompt == "" {
			continue
		}
		out = append(out, Template{Prompt: pr.Prompt, Reference: noRef, Category: pr.Category})
	}
	return out
}

func bankFor(kind domain.GameKind) ([]Template, error) {
	switch kind {
	case domain.KindFreeText:
		return freeTextTemplates, nil
	case domain.KindTrivia:
		return triviaTemplates, nil
	case domain.KindWouldYouRather:
		return wouldYouRatherTemplates, nil
	case domain.KindThisOrThat:
		return thisOrThatTemplates, nil
	default:
		return nil, fmt.Errorf("unknown game kind: %s", kind)
	}
}

func kindTag(kind domain.GameKind) string {
	switch kind {
	case domain.KindFreeText:
		return "ft"
	case domain.KindTrivia:
		return "tr"
	case domain.KindWouldYouRather:
		return "wyr"
	case domain.KindThisOrThat:
		return "tot"
	}
	return "q"
}
