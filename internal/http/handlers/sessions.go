package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"pairplay/internal/domain"
	"pairplay/internal/session"

	"github.com/gin-gonic/gin"
)

type CreateSessionRequest struct {
	PartnerID     int64  `json:"partner_id"`
	Kind          string `json:"kind"`
	QuestionCount int    `json:"question_count"`
}

type SubmitAnswerRequest struct {
	QuestionID string `json:"question_id"`
	Text       string `json:"text"`
	Option     *int   `json:"option"`
}

type SubmitRatingRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// sessionView is what the API returns for a session: the record plus the
// derived reveal/score state every subscriber computes the same way.
type sessionView struct {
	Session *domain.Session    `json:"session"`
	Reveal  session.RevealView `json:"reveal"`
}

func viewOf(s *domain.Session) sessionView {
	return sessionView{Session: s, Reveal: session.Reveal(s)}
}

// pairKey builds the canonical owning-pair identifier for two participants.
func pairKey(a, b int64) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d:%d", a, b)
}

func (h *Handler) CreateSession(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req CreateSessionRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	s, err := h.Coordinator.CreateSession(
		c.Request.Context(),
		pairKey(userID, req.PartnerID),
		domain.GameKind(req.Kind),
		userID,
		req.PartnerID,
		req.QuestionCount,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, viewOf(s))
}

func (h *Handler) GetSession(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	s, err := h.Coordinator.Get(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, viewOf(s))
}

func (h *Handler) ListSessions(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var partnerID int64
	if _, err := fmt.Sscan(c.Query("partner_id"), &partnerID); err != nil || partnerID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "partner_id required"})
		return
	}

	sessions, err := h.SessionRepo.ListByPair(c.Request.Context(), pairKey(userID, partnerID), 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (h *Handler) SubmitAnswer(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req SubmitAnswerRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	s, err := h.Coordinator.SubmitAnswer(
		c.Request.Context(),
		c.Param("id"),
		userID,
		req.QuestionID,
		domain.Answer{Text: req.Text, Option: req.Option},
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, viewOf(s))
}

func (h *Handler) CompleteSession(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	s, err := h.Coordinator.CompleteSession(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, viewOf(s))
}

func (h *Handler) SubmitRating(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req SubmitRatingRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	s, err := h.Coordinator.SubmitRating(c.Request.Context(), c.Param("id"), userID, req.Rating, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, viewOf(s))
}

func (h *Handler) RevealSession(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	s, err := h.Coordinator.Get(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session.Reveal(s))
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, session.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "not a participant"})
	case errors.Is(err, session.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrNotCompleted):
		c.JSON(http.StatusConflict, gin.H{"error": "finish the game before rating"})
	case errors.Is(err, session.ErrAlreadyRated):
		c.JSON(http.StatusConflict, gin.H{"error": "rating already submitted"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
