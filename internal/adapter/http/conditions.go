package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/couchcryptid/stormwater-assessment/internal/domain"
)

func (s *Server) handleListConditions(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	var items []domain.ConditionItem
	sess.Do(func(_ *domain.Store, conditions *domain.ConditionList) {
		items = conditions.Items()
	})
	s.writeHTML(w, http.StatusOK, func(out io.Writer) error {
		return s.renderer.Conditions(out, items)
	})
}

// handleAddCondition appends one rated condition. A repeat is refused with
// 409 and the duplicate notice; the list is left as it was.
func (s *Server) handleAddCondition(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	sess := s.session(w, r)
	key := r.PostForm.Get("condition")

	var (
		item domain.ConditionItem
		err  error
	)
	sess.Do(func(_ *domain.Store, conditions *domain.ConditionList) {
		item, err = conditions.Add(key)
	})

	switch {
	case errors.Is(err, domain.ErrDuplicateCondition):
		s.metrics.ConditionsRejected.Inc()
		s.logger.Info("condition rejected", "session_id", sess.ID(), "condition", key, "reason", err)
		w.Header().Set(NoticeHeader, domain.DuplicateConditionNotice)
		w.WriteHeader(http.StatusConflict)
		return
	case errors.Is(err, domain.ErrUnknownCondition):
		s.logger.Warn("unknown condition", "session_id", sess.ID(), "condition", key)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		s.logger.Error("add condition failed", "session_id", sess.ID(), "error", err)
		http.Error(w, "add condition failed", http.StatusInternalServerError)
		return
	}

	s.metrics.ConditionsAdded.Inc()
	s.logger.Info("condition added", "session_id", sess.ID(), "condition", key)
	s.writeHTML(w, http.StatusCreated, func(out io.Writer) error {
		return s.renderer.Condition(out, item)
	})
}

// ratingRequest is the posted slider value. Only plain digits are accepted;
// the range is checked by the condition list.
type ratingRequest struct {
	Rating string `validate:"required,number"`
}

// handleRateCondition moves a condition slider and answers the readout text.
func (s *Server) handleRateCondition(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	key := r.PathValue("key")

	req := ratingRequest{Rating: r.PostForm.Get("rating")}
	if err := s.validate.Struct(req); err != nil {
		http.Error(w, domain.ErrInvalidRating.Error(), http.StatusBadRequest)
		return
	}

	sess := s.session(w, r)
	var (
		item domain.ConditionItem
		err  error
	)
	sess.Do(func(_ *domain.Store, conditions *domain.ConditionList) {
		item, err = conditions.SetRating(key, req.Rating)
	})

	switch {
	case errors.Is(err, domain.ErrUnknownCondition):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeText(w, http.StatusOK, strconv.Itoa(item.Rating))
}

func (s *Server) handleRemoveCondition(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	key := r.PathValue("key")

	var removed bool
	sess.Do(func(_ *domain.Store, conditions *domain.ConditionList) {
		removed = conditions.Remove(key)
	})
	if !removed {
		http.Error(w, "condition not in list", http.StatusNotFound)
		return
	}

	s.logger.Info("condition removed", "session_id", sess.ID(), "condition", key)
	w.WriteHeader(http.StatusNoContent)
}
