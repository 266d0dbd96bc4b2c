package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/hlog"

	"github.com/hongminglow/catalog-be/internal/apperr"
	"github.com/hongminglow/catalog-be/internal/auth"
	"github.com/hongminglow/catalog-be/internal/http/respond"
	"github.com/hongminglow/catalog-be/internal/middleware"
	"github.com/hongminglow/catalog-be/internal/models"
	"github.com/hongminglow/catalog-be/internal/models/dto"
	"github.com/hongminglow/catalog-be/internal/storage"
)

const maxBodyBytes = 1 << 20

// CookieOptions controls the attributes of the session cookie.
type CookieOptions struct {
	Secure   bool
	SameSite http.SameSite
}

// AuthOptions are the tunables of the auth endpoints.
type AuthOptions struct {
	PasswordMinLength int
	Cookie            CookieOptions
}

// PasswordHasher hashes and checks passwords. CompareUnknown runs a
// comparison for an email with no account so both login failures cost the
// same.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
	CompareUnknown(password string) bool
}

// AuthHandler owns signup, login, logout and the session check.
type AuthHandler struct {
	store    storage.UserStore
	tokens   *auth.TokenManager
	hasher   PasswordHasher
	opts     AuthOptions
	validate *validator.Validate
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, tokens *auth.TokenManager, hasher PasswordHasher, opts AuthOptions) *AuthHandler {
	return &AuthHandler{
		store:    store,
		tokens:   tokens,
		hasher:   hasher,
		opts:     opts,
		validate: validator.New(),
	}
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/signup", h.handleSignup)
	mux.HandleFunc("POST /api/auth/login", h.handleLogin)
	mux.HandleFunc("POST /api/auth/logout", h.handleLogout)

	check := middleware.RequireSession(h.tokens)(http.HandlerFunc(h.handleCheck))
	mux.Handle("GET /api/auth/check", check)
	mux.Handle("GET /api/auth/me", check)
}

func (h *AuthHandler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Err(w, r, err)
		return
	}
	req.Firstname = strings.TrimSpace(req.Firstname)
	req.Lastname = strings.TrimSpace(req.Lastname)
	req.Email = normalizeEmail(req.Email)
	if err := h.validate.Struct(req); err != nil {
		respond.Err(w, r, apperr.NewValidation("All fields are required"))
		return
	}
	if utf8.RuneCountInString(req.Password) < h.opts.PasswordMinLength {
		respond.Err(w, r, apperr.NewValidation(fmt.Sprintf("Password must be at least %d characters", h.opts.PasswordMinLength)))
		return
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			respond.Err(w, r, apperr.NewValidation("Password is too long"))
			return
		}
		respond.Err(w, r, apperr.NewServer("Server error during signup", err))
		return
	}

	created, err := h.store.CreateUser(r.Context(), models.User{
		Firstname:    req.Firstname,
		Lastname:     req.Lastname,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			respond.Err(w, r, apperr.NewConflict("Email already exists"))
			return
		}
		respond.Err(w, r, apperr.NewServer("Server error during signup", err))
		return
	}

	hlog.FromRequest(r).Info().Int64("user_id", created.ID).Msg("user signed up")
	respond.JSON(w, r, http.StatusCreated, dto.MessageResponse{Message: "User created"})
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Err(w, r, err)
		return
	}
	req.Email = normalizeEmail(req.Email)
	if err := h.validate.Struct(req); err != nil {
		respond.Err(w, r, apperr.NewValidation("Missing credentials"))
		return
	}

	user, err := h.store.FindByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.hasher.CompareUnknown(req.Password)
			respond.Err(w, r, apperr.NewAuth("Invalid credentials"))
			return
		}
		respond.Err(w, r, apperr.NewServer("Server error during login", err))
		return
	}
	if !h.hasher.Compare(user.PasswordHash, req.Password) {
		respond.Err(w, r, apperr.NewAuth("Invalid credentials"))
		return
	}

	identity := user.Identity()
	token, err := h.tokens.Generate(identity)
	if err != nil {
		respond.Err(w, r, apperr.NewServer("Server error during login", err))
		return
	}

	h.setSessionCookie(w, token, h.tokens.TTL())
	respond.JSON(w, r, http.StatusOK, dto.LoginResponse{Message: "Login successful", User: identity})
}

func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.setSessionCookie(w, "", -1)
	respond.JSON(w, r, http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

func (h *AuthHandler) handleCheck(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		respond.JSON(w, r, http.StatusUnauthorized, dto.SessionResponse{})
		return
	}
	respond.JSON(w, r, http.StatusOK, dto.SessionResponse{User: &identity})
}

// setSessionCookie writes the session cookie; a negative ttl clears it.
func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, value string, ttl time.Duration) {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.opts.Cookie.Secure,
		SameSite: h.opts.Cookie.SameSite,
	}
	if ttl < 0 {
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
	} else {
		cookie.MaxAge = int(ttl.Seconds())
		cookie.Expires = time.Now().Add(ttl)
	}
	http.SetCookie(w, cookie)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.NewValidation("Invalid JSON payload")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
