package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/couchcryptid/stormwater-assessment/internal/domain"
)

// SavedNotice confirms a saved feature.
const SavedNotice = "Feature saved successfully"

// SaveVisibleHeader tells the page whether to show the save control.
const SaveVisibleHeader = "X-Save-Visible"

func (s *Server) handleFieldSet(w http.ResponseWriter, r *http.Request) {
	f, ok := s.catalogue.FieldSet(r.URL.Query().Get("feature"))
	w.Header().Set(SaveVisibleHeader, strconv.FormatBool(ok))
	s.writeHTML(w, http.StatusOK, func(out io.Writer) error {
		return s.renderer.FieldSet(out, f)
	})
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	var entries []domain.SavedEntry
	sess.Do(func(store *domain.Store, _ *domain.ConditionList) {
		entries = store.List()
	})
	s.renderEntries(w, http.StatusOK, entries)
}

// handleSaveEntry reads the posted feature's fields fresh from the form and
// appends them. An unknown feature is still saved, with no inputs.
func (s *Server) handleSaveEntry(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	sess := s.session(w, r)

	key := r.PostForm.Get("feature")
	f, _ := s.catalogue.FieldSet(key)
	inputs := domain.ReadInputs(f, r.PostForm)

	var (
		saved   domain.SavedEntry
		entries []domain.SavedEntry
	)
	sess.Do(func(store *domain.Store, _ *domain.ConditionList) {
		saved = store.Save(key, inputs)
		entries = store.List()
	})

	s.metrics.EntriesSaved.WithLabelValues(key).Inc()
	s.logger.Info("entry saved", "session_id", sess.ID(), "feature", key, "entry_id", saved.ID)

	w.Header().Set(NoticeHeader, SavedNotice)
	s.renderEntries(w, http.StatusCreated, entries)
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.deleteEntry(w, r, func(store *domain.Store) (domain.SavedEntry, error) {
		return store.Remove(id)
	})
}

func (s *Server) handleDeleteEntryAt(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.Error(w, "index must be an integer", http.StatusBadRequest)
		return
	}
	s.deleteEntry(w, r, func(store *domain.Store) (domain.SavedEntry, error) {
		return store.RemoveAt(index)
	})
}

// deleteEntry applies remove and re-renders the table. A miss leaves the
// table unchanged and answers 404.
func (s *Server) deleteEntry(w http.ResponseWriter, r *http.Request, remove func(*domain.Store) (domain.SavedEntry, error)) {
	sess := s.session(w, r)

	var (
		removed domain.SavedEntry
		err     error
		entries []domain.SavedEntry
	)
	sess.Do(func(store *domain.Store, _ *domain.ConditionList) {
		removed, err = remove(store)
		entries = store.List()
	})

	status := http.StatusOK
	switch {
	case errors.Is(err, domain.ErrEntryNotFound):
		s.logger.Warn("entry delete missed", "session_id", sess.ID(), "path", r.URL.Path)
		status = http.StatusNotFound
	case err != nil:
		s.logger.Error("entry delete failed", "session_id", sess.ID(), "error", err)
		http.Error(w, "delete failed", http.StatusInternalServerError)
		return
	default:
		s.metrics.EntriesDeleted.Inc()
		s.logger.Info("entry deleted", "session_id", sess.ID(), "entry_id", removed.ID, "feature", removed.Feature)
	}
	s.renderEntries(w, status, entries)
}

func (s *Server) renderEntries(w http.ResponseWriter, status int, entries []domain.SavedEntry) {
	s.writeHTML(w, status, func(out io.Writer) error {
		return s.renderer.Entries(out, entries)
	})
}
