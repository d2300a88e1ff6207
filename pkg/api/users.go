package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/vango-dev/vanext/internal/errors"
	"github.com/vango-dev/vanext/pkg/users"
)

const userNotFound = "User not found"

// mapRepoErr turns repository sentinels into tagged errors.
func mapRepoErr(err error) error {
	if errors.Is(err, users.ErrNotFound) {
		return apperrors.NotFound(userNotFound).Wrap(err)
	}
	return err
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	list, err := s.repo.List(r.Context())
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.repo.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, s.logger, mapRepoErr(err))
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var in users.CreateUser
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	if err := users.Validate(in); err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	created, err := s.repo.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	s.logger.InfoContext(r.Context(), "user created", "id", created.ID)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	var in users.UpdateUser
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	if err := users.Validate(in); err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	updated, err := s.repo.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeError(w, r, s.logger, mapRepoErr(err))
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, r, s.logger, apperrors.New(apperrors.CodeMissingID))
		return
	}

	if err := s.repo.Delete(r.Context(), id); err != nil {
		writeError(w, r, s.logger, mapRepoErr(err))
		return
	}
	s.logger.InfoContext(r.Context(), "user deleted", "id", id)
	writeJSON(w, http.StatusOK, messageBody{Message: "User deleted successfully"})
}
