package analysis

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"adspend_analyst/pkg/core/ingest"
	"adspend_analyst/pkg/core/llm"
	"adspend_analyst/pkg/core/report"
	"adspend_analyst/pkg/core/session"
)

var sess *session.Session

func InitHandler(s *session.Session) {
	sess = s
}

type RunRequest struct {
	CostImage    string `json:"costImage"` // base64
	CostMime     string `json:"costMime"`
	RevenueImage string `json:"revenueImage"` // base64
	RevenueMime  string `json:"revenueMime"`
}

type RunResponse struct {
	Result         *report.AnalysisResult `json:"result"`
	DroppedRecords int                    `json:"droppedRecords"`
}

// HandleRun accepts the two screenshots and runs the full
// extract-ingest-merge flow. One analysis at a time per session.
func HandleRun(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cost, err := decodeImage(req.CostImage, req.CostMime)
	if err != nil {
		http.Error(w, fmt.Sprintf("cost image: %v", err), http.StatusBadRequest)
		return
	}
	revenue, err := decodeImage(req.RevenueImage, req.RevenueMime)
	if err != nil {
		http.Error(w, fmt.Sprintf("revenue image: %v", err), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 120*time.Second)
	defer cancel()

	result, dropped, err := sess.Analyze(ctx, cost, revenue)
	if err != nil {
		writeAnalysisError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(RunResponse{Result: result, DroppedRecords: dropped})
}

// HandleCurrent returns the canonical in-session result.
func HandleCurrent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	result, err := sess.Current()
	if err != nil {
		http.Error(w, "no analysis result yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func decodeImage(data, mime string) (llm.ImagePart, error) {
	if data == "" {
		return llm.ImagePart{}, fmt.Errorf("image payload is empty")
	}
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return llm.ImagePart{}, fmt.Errorf("invalid base64: %v", err)
	}
	if mime == "" {
		mime = "image/png"
	}
	return llm.ImagePart{Data: decoded, MIMEType: mime}, nil
}

// writeAnalysisError maps the error taxonomy to a single human-readable
// message per failure. All of these are terminal for the operation but not
// for the session; the user can retry immediately.
func writeAnalysisError(w http.ResponseWriter, err error) {
	var upstream *ingest.UpstreamError
	var format *ingest.FormatError

	switch {
	case errors.Is(err, session.ErrAnalysisInProgress):
		http.Error(w, "An analysis is already running. Wait for it to finish.", http.StatusConflict)
	case errors.As(err, &upstream) && upstream.Timeout:
		fmt.Printf("[ANALYSIS] Upstream timeout: %v\n", err)
		http.Error(w, "The analysis timed out. Try smaller or clearer screenshot images.", http.StatusGatewayTimeout)
	case errors.As(err, &upstream):
		fmt.Printf("[ANALYSIS] Upstream failure: %v\n", err)
		http.Error(w, "The analysis service failed to read the screenshots. Please try again.", http.StatusBadGateway)
	case errors.As(err, &format):
		fmt.Printf("[ANALYSIS] Unparseable model reply: %v\n", err)
		http.Error(w, "The analysis service returned an unreadable report. Please try again.", http.StatusBadGateway)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
