package httpapi

import (
	"net/http"

	"github.com/custodia-labs/namereg/internal/core/domain"
)

// handlers holds the registry endpoints.
type handlers struct {
	ports Ports
}

// nameParam returns the name query parameter and whether it was supplied.
func nameParam(r *http.Request) (string, bool) {
	values, ok := r.URL.Query()["name"]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// sayMy handles GET /v1/test/saymy?name=.
func (h *handlers) sayMy(w http.ResponseWriter, r *http.Request) {
	name, present := nameParam(r)
	if err := domain.ValidateName(name, present); err != nil {
		writeError(w, r, err)
		return
	}
	writeText(w, http.StatusOK, h.ports.Greeter.Greet(name))
}

// add handles GET /v1/test/add?name=.
func (h *handlers) add(w http.ResponseWriter, r *http.Request) {
	name, present := nameParam(r)
	if err := domain.ValidateName(name, present); err != nil {
		writeError(w, r, err)
		return
	}
	if _, err := h.ports.Names.Add(r.Context(), name); err != nil {
		writeError(w, r, err)
		return
	}
	writeText(w, http.StatusOK, name+" added")
}

// all handles GET /v1/test/all.
func (h *handlers) all(w http.ResponseWriter, r *http.Request) {
	names, err := h.ports.Names.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeText(w, http.StatusOK, domain.FormatStoredNames(names))
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, "ok")
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
}
