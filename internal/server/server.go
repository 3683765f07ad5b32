// Package server exposes the HTTP API. Handlers decode and validate
// request bodies, call into the app core, and translate errors into the
// shared {ok:false, error:{code,message,details}} envelope.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"mrgcar/internal/app"
	"mrgcar/internal/ratelimit"
	"mrgcar/internal/util"
	"mrgcar/pkg/auth"
	"mrgcar/pkg/domain"
	"mrgcar/pkg/store"
	"mrgcar/pkg/validate"
)

const maxBodyBytes = 1 << 20

// Config wires required dependencies for the HTTP server.
type Config struct {
	App            *app.App
	LoginLimiter   *ratelimit.FixedWindowLimiter
	TrustedProxies *util.TrustedProxies
	MaxPhotoBytes  int64
}

// Server exposes HTTP endpoints for the backend.
type Server struct {
	app            *app.App
	mux            *http.ServeMux
	loginLimiter   *ratelimit.FixedWindowLimiter
	trustedProxies *util.TrustedProxies
	maxPhotoBytes  int64
}

// New constructs the server with routes configured.
func New(cfg Config) *Server {
	maxPhotoBytes := cfg.MaxPhotoBytes
	if maxPhotoBytes <= 0 {
		maxPhotoBytes = 10 * 1024 * 1024
	}
	s := &Server{
		app:            cfg.App,
		mux:            http.NewServeMux(),
		loginLimiter:   cfg.LoginLimiter,
		trustedProxies: cfg.TrustedProxies,
		maxPhotoBytes:  maxPhotoBytes,
	}
	s.routes()
	return s
}

// Router returns the handler wrapped in the standard middleware chain.
func (s *Server) Router() http.Handler {
	return util.WithSecurityHeaders(
		util.WithCORS(
			util.WithRequestID(
				util.WithRequestLog(s.mux),
			),
		),
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", s.handleHealth)

	// listings
	s.mux.HandleFunc("/api/cars", s.handleCars)
	s.mux.HandleFunc("/api/cars/", s.handleCarByID)

	// forum
	s.mux.HandleFunc("/api/forum/categories", s.handleCategories)
	s.mux.HandleFunc("/api/forum/categories/", s.handleCategoryPosts)
	s.mux.HandleFunc("/api/forum/posts", s.handleCreatePost)

	// auth
	s.mux.HandleFunc("/auth/login", s.handleLogin)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// auth wrappers
type adminHandler func(http.ResponseWriter, *http.Request, auth.SessionClaims)

func (s *Server) adminOnly(next adminHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
			return
		}
		claims, err := s.app.AuthenticateToken(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized", "invalid or expired session")
			return
		}
		next(w, r, claims)
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// listing handlers
func (s *Server) handleCars(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListCars(w, r)
	case http.MethodPost:
		s.adminOnly(s.handleCreateCar)(w, r)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleListCars(w http.ResponseWriter, r *http.Request) {
	filter := store.CarFilter{
		Make: strings.TrimSpace(r.URL.Query().Get("make")),
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
		status := domain.CarStatus(raw)
		if status != domain.CarAvailable && status != domain.CarSold {
			writeError(w, http.StatusBadRequest, "bad_request", "status must be available or sold")
			return
		}
		filter.Status = status
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, "bad_request", "limit must be a non-negative integer")
			return
		}
		filter.Limit = limit
	}
	cars, err := s.app.ListCars(r.Context(), filter)
	if err != nil {
		s.internalError(w, r, "list cars", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": cars,
		"count": len(cars),
	})
}

func (s *Server) handleCreateCar(w http.ResponseWriter, r *http.Request, _ auth.SessionClaims) {
	var req validate.CreateCarRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if details := validate.Check(req); details != nil {
		writeValidationError(w, details)
		return
	}
	car, err := s.app.CreateCar(r.Context(), req)
	if err != nil {
		s.internalError(w, r, "create car", err)
		return
	}
	writeJSON(w, http.StatusCreated, car)
}

func (s *Server) handleCarByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/cars/")
	if rest == "" {
		http.NotFound(w, r)
		return
	}
	if id, ok := strings.CutSuffix(rest, "/photo"); ok {
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		s.adminOnly(func(w http.ResponseWriter, r *http.Request, claims auth.SessionClaims) {
			s.handleUploadPhoto(w, r, id)
		})(w, r)
		return
	}
	if strings.Contains(rest, "/") {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	car, err := s.app.GetCar(r.Context(), rest)
	if err != nil {
		if errors.Is(err, app.ErrCarNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "car not found")
			return
		}
		s.internalError(w, r, "get car", err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (s *Server) handleUploadPhoto(w http.ResponseWriter, r *http.Request, carID string) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxPhotoBytes)
	file, header, err := r.FormFile("photo")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "photo file is required (field: photo)")
		return
	}
	defer file.Close()
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key, err := s.app.AttachCarPhoto(r.Context(), carID, file, header.Size, contentType)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrCarNotFound):
			writeError(w, http.StatusNotFound, "not_found", "car not found")
		case errors.Is(err, app.ErrPhotosDisabled):
			writeError(w, http.StatusServiceUnavailable, "photos_disabled", "photo storage is not configured")
		default:
			s.internalError(w, r, "upload photo", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"photoKey": key})
}

// forum handlers
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	categories, err := s.app.ListCategories(r.Context())
	if err != nil {
		s.internalError(w, r, "list categories", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": categories,
		"count": len(categories),
	})
}

func (s *Server) handleCategoryPosts(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/forum/categories/")
	slug, ok := strings.CutSuffix(rest, "/posts")
	if !ok || slug == "" || strings.Contains(slug, "/") {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "bad_request", "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}
	posts, err := s.app.ListPostsBySlug(r.Context(), slug, limit)
	if err != nil {
		if errors.Is(err, app.ErrCategoryNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "forum category not found")
			return
		}
		s.internalError(w, r, "list posts", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": posts,
		"count": len(posts),
	})
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req validate.CreateForumPostRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if details := validate.Check(req); details != nil {
		writeValidationError(w, details)
		return
	}
	post, err := s.app.CreatePost(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrCategoryNotFound):
			writeError(w, http.StatusNotFound, "not_found", "forum category not found")
		case errors.Is(err, app.ErrDuplicatePost):
			writeError(w, http.StatusConflict, "conflict", err.Error())
		default:
			s.internalError(w, r, "create post", err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

// auth handlers
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if s.loginLimiter != nil {
		ip := util.ClientIP(r, s.trustedProxies)
		if !s.loginLimiter.Allow(ip) {
			writeError(w, http.StatusTooManyRequests, "rate_limited", "too many login attempts, try again later")
			return
		}
	}
	var req validate.LoginRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if details := validate.Check(req); details != nil {
		writeValidationError(w, details)
		return
	}
	token, admin, err := s.app.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// Disabled accounts get the same answer as bad credentials so the
		// response does not leak account state.
		if errors.Is(err, app.ErrInvalidCredentials) || errors.Is(err, app.ErrAdminDisabled) {
			writeError(w, http.StatusUnauthorized, "unauthorized", app.ErrInvalidCredentials.Error())
			return
		}
		s.internalError(w, r, "login", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"admin": admin,
	})
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	util.LoggerFromContext(r.Context()).Error(op, "err", err)
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}

// response helpers
type errorBody struct {
	Code    string                `json:"code"`
	Message string                `json:"message"`
	Details []validate.FieldError `json:"details,omitempty"`
}

type errorResponse struct {
	OK    bool      `json:"ok"`
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

func writeValidationError(w http.ResponseWriter, details []validate.FieldError) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{
		Code:    "validation_error",
		Message: "request validation failed",
		Details: details,
	}})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
}
