package apperr

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Generic bodies for the three failure classes a page can hit.
const (
	MsgStore     = "Database error"
	MsgNotFound  = "Book not found"
	MsgForbidden = "Unauthorized"
)

type Problem struct {
	Type      string `json:"type,omitempty"`   // RFC7807 type URI
	Title     string `json:"title"`            // short summary
	Status    int    `json:"status"`           // HTTP status code
	Detail    string `json:"detail,omitempty"` // human details
	Instance  string `json:"instance,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func Write(w http.ResponseWriter, r *http.Request, p Problem) {
	if p.Status == 0 {
		p.Status = http.StatusInternalServerError
	}
	if p.Instance == "" && r != nil {
		p.Instance = r.URL.Path
	}
	if p.RequestID == "" && r != nil {
		if rid := r.Header.Get("X-Request-ID"); rid != "" {
			p.RequestID = rid
		}
	}
	w.Header().Set("Content-Type", "application/problem+json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

// WriteError sends a short generic message: problem+json for JSON clients, plain text otherwise.
func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	if r != nil && wantsJSON(r) {
		Write(w, r, Problem{Status: status, Title: msg})
		return
	}
	http.Error(w, msg, status)
}

func wantsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") || strings.Contains(accept, "application/problem+json")
}
