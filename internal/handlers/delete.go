package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/interfaces"
	"backoffice/internal/refcheck"
)

// deleteWithConflictCheck is the one delete path every entity handler goes
// through. It hands the attempt to the resolver and maps its taxonomy onto
// status codes; handlers never interpret storage error text themselves.
func deleteWithConflictCheck(w http.ResponseWriter, r *http.Request, entity string, registry *refcheck.Registry, deleteFn refcheck.DeleteFunc) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONError(w, http.StatusBadRequest, entity+" ID is required")
		return
	}

	err := refcheck.ResolveDelete(r.Context(), entity, id, deleteFn, registry.FindersFor(entity))
	if err == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if errors.Is(err, interfaces.ErrNotFound) {
		writeJSONError(w, http.StatusNotFound, strings.ToLower(entity)+" not found")
		return
	}

	var conflict *refcheck.ConflictError
	if errors.As(err, &conflict) {
		writeJSONError(w, http.StatusConflict, conflict.Error())
		return
	}

	writeJSONError(w, http.StatusInternalServerError, err.Error())
}
