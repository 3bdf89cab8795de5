package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"svw.info/gridforge/internal/domain"
	"svw.info/gridforge/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/unique", h.handleUnique)
	mux.HandleFunc("/api/candidates", h.handleCandidates)
	mux.HandleFunc("/api/calibrate", h.handleCalibrate)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return false
	}
	return true
}

type errResp struct {
	Error string `json:"error"`
}

// ---- Generate ----

type generateReq struct {
	Variant     string              `json:"variant,omitempty"`
	Difficulty  string              `json:"difficulty,omitempty"`
	Size        int                 `json:"size,omitempty"`
	Seed        int64               `json:"seed,omitempty"`
	Constraints []domain.Constraint `json:"constraints,omitempty"`
}

type generateResp struct {
	Puzzle     *domain.Puzzle `json:"puzzle,omitempty"`
	DurationMs int64          `json:"durationMs,omitempty"`
	Nodes      int            `json:"nodes,omitempty"`
	Error      string         `json:"error,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req generateReq
	// an empty body means "all defaults"
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	p, st, err := h.UC.Generate(r.Context(), domain.GenerateRequest{
		Variant:     domain.ParseVariant(req.Variant),
		Difficulty:  domain.ParseDifficulty(req.Difficulty),
		Size:        req.Size,
		Seed:        req.Seed,
		Constraints: req.Constraints,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidSize) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, generateResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, generateResp{
		Puzzle:     p,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Solve ----

type solveReq struct {
	Grid domain.Grid `json:"grid"`
}

type solveResp struct {
	Solved     bool               `json:"solved"`
	Solution   domain.Grid        `json:"solution,omitempty"`
	Steps      []domain.SolveStep `json:"steps,omitempty"`
	Techniques []domain.Technique `json:"techniques,omitempty"`
	ElapsedMs  int64              `json:"elapsedMs"`
	Error      string             `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	res, err := h.UC.SolvePuzzle(r.Context(), req.Grid)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, solveResp{
		Solved:     res.Solved,
		Solution:   res.Solution,
		Steps:      res.Steps,
		Techniques: res.Techniques,
		ElapsedMs:  res.Elapsed.Milliseconds(),
	})
}

// ---- Validate ----

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	rep, err := h.UC.ValidateGrid(r.Context(), req.Grid)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// ---- Uniqueness ----

type uniqueResp struct {
	Unique     bool   `json:"unique"`
	DurationMs int64  `json:"durationMs,omitempty"`
	Nodes      int    `json:"nodes,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (h *Handler) handleUnique(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, uniqueResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	unique, st, err := h.UC.HasUniqueSolution(r.Context(), req.Grid)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, uniqueResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, uniqueResp{
		Unique:     unique,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Candidates ----

type candidatesReq struct {
	Grid domain.Grid `json:"grid"`
	Row  int         `json:"row"`
	Col  int         `json:"col"`
}

type candidatesResp struct {
	Values []uint8 `json:"values"`
	Error  string  `json:"error,omitempty"`
}

func (h *Handler) handleCandidates(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req candidatesReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, candidatesResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	vals, err := h.UC.Candidates(r.Context(), req.Grid, req.Row, req.Col)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, candidatesResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, candidatesResp{Values: vals})
}

// ---- Calibrate ----

type calibrateReq struct {
	Puzzle        *domain.Puzzle `json:"puzzle"`
	ForGeneration bool           `json:"forGeneration,omitempty"`
}

func (h *Handler) handleCalibrate(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req calibrateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Puzzle == nil {
		writeJSON(w, http.StatusBadRequest, errResp{Error: "invalid JSON or missing puzzle"})
		return
	}
	res, err := h.UC.Calibrate(r.Context(), req.Puzzle, req.ForGeneration)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ---- Hint ----

type hintReq struct {
	Grid domain.Grid `json:"grid"`
	Max  string      `json:"maxTechnique,omitempty"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func parseMaxTechnique(s string) domain.Technique {
	var t domain.Technique
	if err := t.UnmarshalText([]byte(s)); err != nil {
		return domain.ForcingChain // no cap
	}
	return t
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	hh, ok, err := h.UC.Hint(r.Context(), req.Grid, parseMaxTechnique(req.Max))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, hintResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, hintResp{Found: ok, Hint: hh})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var p domain.Puzzle
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if p.ID == "" {
		p.ID = strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().Unix()
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		writeJSON(w, http.StatusInternalServerError, saveResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, saveResp{ID: p.ID})
}

type loadReq struct {
	ID string `json:"id"`
}

type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req loadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeJSON(w, http.StatusBadRequest, loadResp{Error: "invalid JSON or missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, loadResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	ps, err := h.UC.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, listResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, listResp{Puzzles: ps})
}
