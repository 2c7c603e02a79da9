package domain

import "time"

// GameKind - вид игры на двоих
type GameKind string

const (
	KindFreeText       GameKind = "free_text"
	KindTrivia         GameKind = "trivia"
	KindWouldYouRather GameKind = "would_you_rather"
	KindThisOrThat     GameKind = "this_or_that"
)

// SessionStatus - lifecycle of a shared session. Transitions are forward-only:
// pending -> active -> completed. Nothing currently produces pending; sessions
// are created active and the constant is kept as a defined state.
type SessionStatus string

const (
	StatusPending   SessionStatus = "pending"
	StatusActive    SessionStatus = "active"
	StatusCompleted SessionStatus = "completed"
)

// Role - one of the two fixed participant slots, bound at creation and never
// reassigned.
type Role string

const (
	RoleA Role = "role_a"
	RoleB Role = "role_b"
)

// Answer holds one participant's answer to one question. Exactly one of the
// fields is meaningful depending on the question type.
type Answer struct {
	Text   string `json:"text,omitempty"`
	Option *int   `json:"option,omitempty"`
}

// Session is the single shared record both partners read and write.
type Session struct {
	ID        string        `json:"id" db:"id"`
	PairID    string        `json:"pair_id" db:"pair_id"`
	Kind      GameKind      `json:"kind" db:"kind"`
	Status    SessionStatus `json:"status"`
	Questions []Question    `json:"questions"`
	// Cursor names the current question index. Advanced only by derived
	// computation, never by a direct client request. Never decreases.
	Cursor  int   `json:"cursor"`
	RoleAID int64 `json:"role_a_id"`
	RoleBID int64 `json:"role_b_id"`

	// AnswersA/AnswersB map question id -> answer. Entries are only ever
	// added, never revoked.
	AnswersA map[string]Answer `json:"answers_a"`
	AnswersB map[string]Answer `json:"answers_b"`

	RatingA  *int   `json:"rating_a,omitempty"`
	CommentA string `json:"comment_a,omitempty"`
	RatingB  *int   `json:"rating_b,omitempty"`
	CommentB string `json:"comment_b,omitempty"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// RoleOf resolves a caller id against the two bound slots.
func (s *Session) RoleOf(userID int64) (Role, bool) {
	switch userID {
	case s.RoleAID:
		return RoleA, true
	case s.RoleBID:
		return RoleB, true
	}
	return "", false
}

// ParticipantID returns the user id bound to the given role.
func (s *Session) ParticipantID(role Role) int64 {
	if role == RoleA {
		return s.RoleAID
	}
	return s.RoleBID
}

// PartnerID returns the user id of the other role.
func (s *Session) PartnerID(role Role) int64 {
	if role == RoleA {
		return s.RoleBID
	}
	return s.RoleAID
}

// AnswersOf returns the answer map for a role. The map is the live one, not
// a copy.
func (s *Session) AnswersOf(role Role) map[string]Answer {
	if role == RoleA {
		return s.AnswersA
	}
	return s.AnswersB
}

// RatingOf returns the rating pointer for a role.
func (s *Session) RatingOf(role Role) *int {
	if role == RoleA {
		return s.RatingA
	}
	return s.RatingB
}

// QuestionByID finds a question in the fixed sequence.
func (s *Session) QuestionByID(id string) (Question, bool) {
	for _, q := range s.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// BothAnswered reports whether both roles have an entry for the question.
func (s *Session) BothAnswered(questionID string) bool {
	_, a := s.AnswersA[questionID]
	_, b := s.AnswersB[questionID]
	return a && b
}

// FullyAnswered reports whether every question has entries in both maps.
func (s *Session) FullyAnswered() bool {
	for _, q := range s.Questions {
		if !s.BothAnswered(q.ID) {
			return false
		}
	}
	return len(s.Questions) > 0
}

// Clone returns a deep copy so stored records and subscriber snapshots never
// alias the caller's maps.
func (s *Session) Clone() *Session {
	cp := *s
	cp.Questions = make([]Question, len(s.Questions))
	for i, q := range s.Questions {
		cp.Questions[i] = q.clone()
	}
	cp.AnswersA = cloneAnswers(s.AnswersA)
	cp.AnswersB = cloneAnswers(s.AnswersB)
	if s.RatingA != nil {
		v := *s.RatingA
		cp.RatingA = &v
	}
	if s.RatingB != nil {
		v := *s.RatingB
		cp.RatingB = &v
	}
	return &cp
}

func cloneAnswers(in map[string]Answer) map[string]Answer {
	out := make(map[string]Answer, len(in))
	for k, v := range in {
		if v.Option != nil {
			o := *v.Option
			v.Option = &o
		}
		out[k] = v
	}
	return out
}
