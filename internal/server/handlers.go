package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/foodlens/foodlens/internal/models"
	"github.com/foodlens/foodlens/internal/pipeline"
)

// Profile form-field defaults, applied when a field is missing or blank.
const (
	defaultGender   = "Unspecified"
	defaultAge      = 30
	defaultWeightKg = 65.0
	defaultHeightCm = 165.0
)

// analyzeResponse is a stored report plus its retrieval id.
type analyzeResponse struct {
	ReportID string `json:"report_id"`
	*models.HealthReport
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "could not read uploaded file")
		return
	}
	profile := profileFromForm(r)
	s.logger.Debug("analyze request",
		zap.String("filename", header.Filename),
		zap.Int("bytes", len(data)),
		zap.String("diet", string(profile.Diet)))

	report, err := s.analyzer.Analyze(r.Context(), data, profile)
	if err != nil {
		if errors.Is(err, pipeline.ErrBadImage) || errors.Is(err, pipeline.ErrNoText) {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("analysis failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	id := s.reports.Put(report)
	s.respondJSON(w, http.StatusOK, analyzeResponse{ReportID: id, HealthReport: report})
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	report, ok := s.reports.Latest()
	if !ok {
		s.respondJSON(w, http.StatusOK, map[string]string{"message": "No results yet"})
		return
	}
	s.respondJSON(w, http.StatusOK, report)
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	report, ok := s.reports.Get(id)
	if !ok {
		s.respondError(w, http.StatusNotFound, "report not found")
		return
	}
	s.respondJSON(w, http.StatusOK, report)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// profileFromForm builds a user profile from the analyze form fields, filling
// in defaults for anything missing.
func profileFromForm(r *http.Request) models.UserProfile {
	profile := models.UserProfile{
		Gender:   defaultGender,
		Age:      defaultAge,
		WeightKg: defaultWeightKg,
		HeightCm: defaultHeightCm,
		Diet:     models.ParseDiet(r.FormValue("diet")),
	}
	if v := strings.TrimSpace(r.FormValue("gender")); v != "" {
		profile.Gender = v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(r.FormValue("age"))); err == nil {
		profile.Age = v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("weight")), 64); err == nil {
		profile.WeightKg = v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("height")), 64); err == nil {
		profile.HeightCm = v
	}
	profile.Allergies = SplitAllergies(r.FormValue("allergies"))
	return profile
}

// SplitAllergies parses a comma-separated allergen list, dropping blanks.
func SplitAllergies(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
