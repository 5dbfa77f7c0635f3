package reports

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"adspend_analyst/pkg/core/export"
	"adspend_analyst/pkg/core/ingest"
	"adspend_analyst/pkg/core/report"
	"adspend_analyst/pkg/core/session"
)

var sess *session.Session

func InitHandler(s *session.Session) {
	sess = s
}

type ImportRequest struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type ImportResponse struct {
	Result         *report.AnalysisResult `json:"result"`
	DroppedRecords int                    `json:"droppedRecords"`
}

// HandleImport ingests an exported .json/.html report and merges it into the
// session result.
func HandleImport(w http.ResponseWriter, r *http.Request) {
	if done := cors(w, r, "POST"); done {
		return
	}

	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, dropped, err := sess.Import(r.Context(), req.Filename, req.Content)
	if err != nil {
		var format *ingest.FormatError
		if errors.As(err, &format) {
			fmt.Printf("[IMPORT] Rejected %q: %v\n", req.Filename, err)
			http.Error(w, "This file is not a recognizable report export.", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResponse{Result: result, DroppedRecords: dropped})
}

// HandleExport serializes the canonical result. ?format=json (default) or
// ?format=html.
func HandleExport(w http.ResponseWriter, r *http.Request) {
	if done := cors(w, r, "GET"); done {
		return
	}

	result, err := sess.Current()
	if err != nil {
		http.Error(w, "no analysis result to export", http.StatusNotFound)
		return
	}

	switch r.URL.Query().Get("format") {
	case "", "json":
		out, err := export.JSON(result)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="ad-report.json"`)
		fmt.Fprint(w, out)
	case "html":
		out, err := export.HTML(result, time.Now())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="ad-report.html"`)
		fmt.Fprint(w, out)
	default:
		http.Error(w, "unsupported format", http.StatusBadRequest)
	}
}

// HandleHistory lists snapshots (GET) or removes one (DELETE ?id=...).
func HandleHistory(w http.ResponseWriter, r *http.Request) {
	if done := cors(w, r, "GET, DELETE"); done {
		return
	}

	switch r.Method {
	case "GET":
		items, err := sess.History(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if items == nil {
			items = []report.HistoryItem{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(items)
	case "DELETE":
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "id query parameter required", http.StatusBadRequest)
			return
		}
		if err := sess.RemoveHistory(r.Context(), id); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

type RestoreRequest struct {
	ID string `json:"id"`
}

// HandleRestore replaces the canonical result with a frozen snapshot.
func HandleRestore(w http.ResponseWriter, r *http.Request) {
	if done := cors(w, r, "POST"); done {
		return
	}

	var req RestoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := sess.Restore(r.Context(), req.ID)
	if err != nil {
		if errors.Is(err, session.ErrHistoryNotFound) {
			http.Error(w, "history entry not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

type HiddenViewRequest struct {
	Hidden []string `json:"hidden"`
}

// HandleHiddenView returns the presentation projection with the given
// countries hidden. Canonical state is never touched.
func HandleHiddenView(w http.ResponseWriter, r *http.Request) {
	if done := cors(w, r, "POST"); done {
		return
	}

	var req HiddenViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := sess.Current()
	if err != nil {
		http.Error(w, "no analysis result yet", http.StatusNotFound)
		return
	}

	view := report.FilterVisible(result, req.Hidden)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

// cors writes the shared CORS headers and reports whether the request was a
// handled preflight.
func cors(w http.ResponseWriter, r *http.Request, methods string) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", methods+", OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}
