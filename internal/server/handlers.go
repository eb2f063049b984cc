package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/design-solver/internal/roles"
	"github.com/jonathan/design-solver/internal/types"
)

// solveRequest is the request body for POST /solve and POST /solve/stream.
type solveRequest struct {
	Idea  string `json:"idea" validate:"required,min=3"`
	Mode  string `json:"mode" validate:"omitempty,oneof=idea mvp scale"`
	Depth string `json:"depth" validate:"omitempty,oneof=quick standard deep"`
}

// parseSolveRequest decodes and validates a solve request body, applying
// the default mode and depth when omitted.
func (s *Server) parseSolveRequest(r *http.Request) (types.Idea, error) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return types.Idea{}, &ErrValidation{Field: "body", Message: "invalid JSON body"}
	}

	if err := s.validate.Struct(req); err != nil {
		var errs validator.ValidationErrors
		if ok := asValidationErrors(err, &errs); ok && len(errs) > 0 {
			return types.Idea{}, &ErrValidation{
				Field:   errs[0].Field(),
				Message: fmt.Sprintf("failed %q validation", errs[0].Tag()),
			}
		}
		return types.Idea{}, &ErrValidation{Field: "body", Message: err.Error()}
	}

	if req.Mode == "" {
		req.Mode = string(types.ModeIdea)
	}
	if req.Depth == "" {
		req.Depth = string(types.DepthStandard)
	}

	mode, err := types.ParseMode(req.Mode)
	if err != nil {
		return types.Idea{}, &ErrValidation{Field: "mode", Message: err.Error()}
	}
	depth, err := types.ParseDepth(req.Depth)
	if err != nil {
		return types.Idea{}, &ErrValidation{Field: "depth", Message: err.Error()}
	}

	return types.Idea{Raw: req.Idea, Mode: mode, Depth: depth}, nil
}

// handleSolve runs the full pipeline synchronously and returns the result.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	idea, err := s.parseSolveRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.orchestrator.Run(r.Context(), idea, nil)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleSolveStream runs the pipeline and streams progress snapshots as
// SSE events, ending with the full result.
func (s *Server) handleSolveStream(w http.ResponseWriter, r *http.Request) {
	idea, err := s.parseSolveRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	stream, err := NewStream(w, uuid.NewString())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Snapshots arrive serialized, so writing from the callback is safe.
	result, err := s.orchestrator.Run(r.Context(), idea, stream.Progress)
	if err != nil {
		stream.Fail(err.Error())
		return
	}
	stream.Result(result)
}

// roleView is the wire representation of one taxonomy entry.
type roleView struct {
	Role  string             `json:"role"`
	Label string             `json:"label"`
	Title string             `json:"title"`
	Type  types.ArtifactType `json:"type"`
}

// handleRoles returns the roster resolved for the given mode and depth, or
// the full taxonomy when neither is supplied.
func (s *Server) handleRoles(w http.ResponseWriter, r *http.Request) {
	modeParam := r.URL.Query().Get("mode")
	depthParam := r.URL.Query().Get("depth")

	if modeParam == "" && depthParam == "" {
		views := make([]roleView, 0)
		for _, def := range roles.All() {
			views = append(views, viewOf(def))
		}
		s.jsonResponse(w, http.StatusOK, map[string]any{"roles": views})
		return
	}

	if modeParam == "" {
		modeParam = string(types.ModeIdea)
	}
	if depthParam == "" {
		depthParam = string(types.DepthStandard)
	}

	mode, err := types.ParseMode(modeParam)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	depth, err := types.ParseDepth(depthParam)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	views := make([]roleView, 0)
	for _, role := range roles.Resolve(mode, depth) {
		views = append(views, viewOf(roles.MustLookup(role)))
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"mode":  mode,
		"depth": depth,
		"roles": views,
	})
}

func viewOf(def roles.Definition) roleView {
	return roleView{
		Role:  string(def.Role),
		Label: def.Label,
		Title: def.Title,
		Type:  def.Type,
	}
}
