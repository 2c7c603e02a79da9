package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pairplay/internal/domain"
	"pairplay/internal/game"
	"pairplay/internal/logger"
	"pairplay/internal/notify"
	"pairplay/internal/questionbank"
	"pairplay/internal/store"

	"github.com/google/uuid"
)

// DefaultQuestionCount is used when a create request does not say how many
// questions it wants.
const DefaultQuestionCount = 10

// Coordinator owns the session lifecycle. Both participants' clients call it
// concurrently, possibly through different app instances; every
// read-modify-write cycle on one session runs under the store's per-session
// lock, so two writers can never silently clobber each other's answers or
// derived cursor and status.
type Coordinator struct {
	store            store.SessionStore
	bank             *questionbank.Provider
	notifier         notify.Notifier
	log              *slog.Logger
	defaultQuestions int
}

// NewCoordinator wires the engine. questionCount is the session size used
// when a create request does not ask for one; zero falls back to
// DefaultQuestionCount.
func NewCoordinator(st store.SessionStore, bank *questionbank.Provider, notifier notify.Notifier, questionCount int) *Coordinator {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	if questionCount <= 0 {
		questionCount = DefaultQuestionCount
	}
	return &Coordinator{
		store:            st,
		bank:             bank,
		notifier:         notifier,
		log:              logger.With("component", "coordinator"),
		defaultQuestions: questionCount,
	}
}

// CreateSession builds a new active session for the pair: questions from the
// bank, cursor 0, both answer maps empty, both role slots bound.
func (c *Coordinator) CreateSession(ctx context.Context, pairID string, kind domain.GameKind, roleAID, roleBID int64, questionCount int) (*domain.Session, error) {
	if roleAID == roleBID || roleAID == 0 || roleBID == 0 {
		return nil, fmt.Errorf("%w: two distinct participants required", ErrInvalidInput)
	}
	if _, err := game.PolicyFor(kind); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if questionCount <= 0 {
		questionCount = c.defaultQuestions
	}

	questions, err := c.bank.Assemble(ctx, kind, questionCount, pairID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	s := &domain.Session{
		ID:        uuid.NewString(),
		PairID:    pairID,
		Kind:      kind,
		Status:    domain.StatusActive,
		Questions: questions,
		Cursor:    0,
		RoleAID:   roleAID,
		RoleBID:   roleBID,
		AnswersA:  make(map[string]domain.Answer),
		AnswersB:  make(map[string]domain.Answer),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.store.Create(ctx, s); err != nil {
		return nil, err
	}

	sessionsCreated.WithLabelValues(string(kind)).Inc()
	c.log.Info("session created", "session_id", s.ID, "pair_id", pairID, "kind", kind, "questions", len(questions))
	return s, nil
}

// Get fetches a session for one of its participants.
func (c *Coordinator) Get(ctx context.Context, sessionID string, callerID int64) (*domain.Session, error) {
	s, err := c.fetch(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, ok := s.RoleOf(callerID); !ok {
		return nil, ErrNotAuthorized
	}
	return s, nil
}

// SubmitAnswer records the caller's answer and recomputes the derived cursor
// and completion state in the same serialized write.
func (c *Coordinator) SubmitAnswer(ctx context.Context, sessionID string, callerID int64, questionID string, value domain.Answer) (*domain.Session, error) {
	unlock, err := c.store.Lock(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	s, err := c.fetch(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	role, ok := s.RoleOf(callerID)
	if !ok {
		return nil, ErrNotAuthorized
	}

	q, ok := s.QuestionByID(questionID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown question %s", ErrInvalidInput, questionID)
	}
	if !q.ValidAnswer(value) {
		return nil, fmt.Errorf("%w: answer value missing or out of range", ErrInvalidInput)
	}

	// re-submitting the same question overwrites the caller's earlier value;
	// entries are never removed
	s.AnswersOf(role)[questionID] = value

	// cursor advances one step once the current question is answered by both
	// sides, and never past the last index
	if s.Cursor < len(s.Questions)-1 && s.BothAnswered(s.Questions[s.Cursor].ID) {
		s.Cursor++
	}

	// completion is a derived effect of coverage, independent of position
	wasCompleted := s.Status == domain.StatusCompleted
	if s.FullyAnswered() {
		s.Status = domain.StatusCompleted
	}

	s.UpdatedAt = time.Now()
	if err := c.store.Replace(ctx, sessionID, s); err != nil {
		return nil, c.mapStoreErr(err)
	}

	answersSubmitted.Inc()
	if !wasCompleted && s.Status == domain.StatusCompleted {
		sessionsCompleted.Inc()
		c.log.Info("session completed by coverage", "session_id", sessionID)
	}
	return s, nil
}

// CompleteSession transitions the session to completed regardless of answer
// coverage. Idempotent. Only a bound participant may call it.
func (c *Coordinator) CompleteSession(ctx context.Context, sessionID string, callerID int64) (*domain.Session, error) {
	unlock, err := c.store.Lock(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	s, err := c.fetch(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, ok := s.RoleOf(callerID); !ok {
		return nil, ErrNotAuthorized
	}

	if s.Status == domain.StatusCompleted {
		return s, nil
	}

	s.Status = domain.StatusCompleted
	s.UpdatedAt = time.Now()
	if err := c.store.Replace(ctx, sessionID, s); err != nil {
		return nil, c.mapStoreErr(err)
	}

	sessionsCompleted.Inc()
	c.log.Info("session completed explicitly", "session_id", sessionID, "caller", callerID)
	return s, nil
}

// SubmitRating records the caller's one rating of a completed session.
// First write wins per role; a second attempt fails with ErrAlreadyRated.
func (c *Coordinator) SubmitRating(ctx context.Context, sessionID string, callerID int64, rating int, comment string) (*domain.Session, error) {
	unlock, err := c.store.Lock(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	s, err := c.fetch(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if s.Status != domain.StatusCompleted {
		return nil, ErrNotCompleted
	}

	role, ok := s.RoleOf(callerID)
	if !ok {
		return nil, ErrNotAuthorized
	}

	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}
	if s.RatingOf(role) != nil {
		return nil, ErrAlreadyRated
	}

	r := rating
	if role == domain.RoleA {
		s.RatingA = &r
		s.CommentA = comment
	} else {
		s.RatingB = &r
		s.CommentB = comment
	}

	s.UpdatedAt = time.Now()
	if err := c.store.Replace(ctx, sessionID, s); err != nil {
		return nil, c.mapStoreErr(err)
	}

	ratingsSubmitted.Inc()

	// best-effort ping to the partner; never blocks or fails the caller
	partner := s.PartnerID(role)
	go func() {
		nctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.notifier.Notify(nctx, partner, "Your partner rated your game", comment, map[string]string{
			"session_id": sessionID,
			"kind":       string(s.Kind),
		}); err != nil {
			c.log.Warn("partner notification failed", "session_id", sessionID, "recipient", partner, "error", err)
		}
	}()

	return s, nil
}

func (c *Coordinator) fetch(ctx context.Context, sessionID string) (*domain.Session, error) {
	s, err := c.store.Get(ctx, sessionID)
	if err != nil {
		return nil, c.mapStoreErr(err)
	}
	return s, nil
}

func (c *Coordinator) mapStoreErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
