package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/storage"
)

// Limits for the scores listing.
const (
	defaultLimit = 10
	maxLimit     = 100
)

type handlers struct {
	scores ScoreReader
	logger *log.Logger
}

// scoreJSON is the wire form of a score entry.
type scoreJSON struct {
	Rank      int       `json:"rank"`
	RunID     string    `json:"run_id"`
	Player    string    `json:"player"`
	Score     int       `json:"score"`
	Lines     int       `json:"lines"`
	Level     int       `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

type errorJSON struct {
	Error string `json:"error"`
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) listScores(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorJSON{Error: err.Error()})
		return
	}

	var entries []storage.ScoreEntry
	if player := r.URL.Query().Get("player"); player != "" {
		entries, err = h.scores.PlayerScores(player, limit)
	} else {
		entries, err = h.scores.TopScores(limit)
	}
	if err != nil {
		h.logger.Error("cannot list scores", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorJSON{Error: "cannot load scores"})
		return
	}

	out := make([]scoreJSON, len(entries))
	for i, e := range entries {
		out[i] = scoreJSON{
			Rank:      i + 1,
			RunID:     e.RunID,
			Player:    e.Player,
			Score:     e.Score,
			Lines:     e.Lines,
			Level:     e.Level,
			CreatedAt: e.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.scores.Stats()
	if err != nil {
		h.logger.Error("cannot load stats", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorJSON{Error: "cannot load stats"})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// parseLimit reads the limit query parameter. Empty means the default.
func parseLimit(raw string) (int, error) {
	if raw == "" {
		return defaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > maxLimit {
		return 0, fmt.Errorf("limit must be an integer between 1 and %d, got %q", maxLimit, raw)
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
