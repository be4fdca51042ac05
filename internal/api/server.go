// Package api exposes the contradiction detector over HTTP for the
// admin-tool frontend: full-set validation on logic changes or bulk restores,
// single-row validation on edit completion, and the property schema the row
// editor is built from.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/filterwise/conflint/internal/conditions"
	"github.com/filterwise/conflint/internal/engine"
	"github.com/filterwise/conflint/internal/schema"
	"github.com/filterwise/conflint/internal/telemetry"
)

type Server struct {
	validator *engine.Validator
	registry  *schema.Registry
	env       string
}

func NewServer(reg *schema.Registry, env string) *Server {
	return &Server{
		validator: engine.New(reg),
		registry:  reg,
		env:       env,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Second))
	r.Use(telemetry.Middleware)

	// health
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"env":    s.env,
		})
	})

	r.Get("/v1/schema", s.handleSchema)
	r.Post("/v1/validate", s.handleValidateAll)
	r.Post("/v1/validate/{index}", s.handleValidateCondition)

	return r
}

// ---- handlers ----

type validateRequest struct {
	Logic      string                 `json:"logic"`
	Conditions []conditions.Condition `json:"conditions"`
}

type validateAllResponse struct {
	Fingerprint string                     `json:"fingerprint"`
	Issues      map[int][]conditions.Issue `json:"issues"`
}

type validateOneResponse struct {
	Fingerprint string             `json:"fingerprint"`
	Issues      []conditions.Issue `json:"issues"`
}

// decodeSet parses and sanity-checks the request body. A nil return means an
// error response was already written.
func decodeSet(w http.ResponseWriter, r *http.Request) *conditions.Set {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequestError(w, r, ErrCodeInvalidJSON, "invalid JSON")
		return nil
	}

	logic := conditions.Logic(req.Logic)
	switch logic {
	case "":
		logic = conditions.LogicAll
	case conditions.LogicAll, conditions.LogicAny:
	default:
		BadRequestError(w, r, ErrCodeInvalidLogic, "logic must be \"all\" or \"any\"")
		return nil
	}

	return &conditions.Set{Conditions: req.Conditions, Logic: logic}
}

func (s *Server) handleValidateAll(w http.ResponseWriter, r *http.Request) {
	set := decodeSet(w, r)
	if set == nil {
		return
	}

	issues := s.validator.ValidateAll(*set)
	var flat []conditions.Issue
	for _, rowIssues := range issues {
		flat = append(flat, rowIssues...)
	}
	telemetry.RecordValidation(set.Logic, flat)

	writeJSON(w, http.StatusOK, validateAllResponse{
		Fingerprint: engine.Fingerprint(*set),
		Issues:      issues,
	})
}

func (s *Server) handleValidateCondition(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		BadRequestError(w, r, ErrCodeInvalidIndex, "index must be a non-negative integer")
		return
	}

	set := decodeSet(w, r)
	if set == nil {
		return
	}
	if index >= len(set.Conditions) {
		BadRequestError(w, r, ErrCodeInvalidIndex, "index is out of range for the submitted conditions")
		return
	}

	issues := s.validator.ValidateCondition(*set, index)
	telemetry.RecordValidation(set.Logic, issues)
	if issues == nil {
		issues = []conditions.Issue{}
	}

	writeJSON(w, http.StatusOK, validateOneResponse{
		Fingerprint: engine.Fingerprint(*set),
		Issues:      issues,
	})
}

type schemaResponse struct {
	Properties []schemaProperty `json:"properties"`
}

type schemaProperty struct {
	schema.Property
	Operators []conditions.Operator `json:"operators"`
}

func (s *Server) handleSchema(w http.ResponseWriter, _ *http.Request) {
	props := s.registry.Properties()
	out := schemaResponse{Properties: make([]schemaProperty, 0, len(props))}
	for _, p := range props {
		out.Properties = append(out.Properties, schemaProperty{
			Property:  p,
			Operators: schema.OperatorsFor(p.Class),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
