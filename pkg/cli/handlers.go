package cli

import (
	"database/sql"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/spiralborn/gemdic/pkg/data"
	"github.com/spiralborn/gemdic/pkg/gematria"
	"github.com/spiralborn/gemdic/pkg/resonance"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func queryParamInt(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func homeViewHandler(tmpl *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		layers := gematria.Layers()
		names := make([]string, 0, len(layers))
		for _, l := range layers {
			names = append(names, l.Name)
		}

		d := map[string]any{
			"version": version,
			"commit":  commit,
			"layers":  names,
		}
		if err := tmpl.ExecuteTemplate(w, "home", d); err != nil {
			slog.Error("template render failed", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}
}

// scoreAPIHandler scores the given words. Read-only: the memory file is
// only ever advanced by a CLI score run.
func scoreAPIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		words := r.URL.Query()["w"]
		if len(words) == 0 {
			writeError(w, http.StatusBadRequest, "at least one w query parameter required")
			return
		}
		writeJSON(w, http.StatusOK, buildScoreReport(words))
	}
}

func wordsAPIHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		like := r.URL.Query().Get("like")
		limit := queryParamInt(r, "limit", 0)

		list, err := data.ListWords(db, like, limit)
		if err != nil {
			slog.Error("failed to list words", "error", err)
			writeError(w, http.StatusInternalServerError, "error querying words")
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func reportAPIHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		layerName := r.URL.Query().Get("layer")
		if layerName == "" {
			layerName = layerAll
		}
		layers, err := selectLayers(layerName)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		list, err := data.ListWords(db, r.URL.Query().Get("like"), queryParamInt(r, "limit", 0))
		if err != nil {
			slog.Error("failed to list words", "error", err)
			writeError(w, http.StatusInternalServerError, "error querying words")
			return
		}
		words := make([]string, 0, len(list))
		for _, entry := range list {
			words = append(words, entry.Value)
		}

		reports, err := buildLayerReports(words, layers)
		if err != nil {
			slog.Error("failed to build report", "error", err)
			writeError(w, http.StatusInternalServerError, "error building report")
			return
		}
		writeJSON(w, http.StatusOK, reports)
	}
}

func graphAPIHandler(memoryPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mem := resonance.Load(memoryPath)
		writeJSON(w, http.StatusOK, mem.Graph())
	}
}

func stateAPIHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := data.GetDataState(db)
		if err != nil {
			slog.Error("failed to get data state", "error", err)
			writeError(w, http.StatusInternalServerError, "error querying state")
			return
		}
		writeJSON(w, http.StatusOK, state)
	}
}
