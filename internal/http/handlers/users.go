package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/godswill-dev/guardian-be/internal/auth"
	"github.com/godswill-dev/guardian-be/internal/domain"
	"github.com/godswill-dev/guardian-be/internal/http/respond"
	"github.com/godswill-dev/guardian-be/internal/metrics"
	"github.com/godswill-dev/guardian-be/internal/stats"
	"github.com/godswill-dev/guardian-be/internal/storage"
	"github.com/godswill-dev/guardian-be/internal/validate"
)

// UserHandler owns register/login and the guarded user field endpoints.
type UserHandler struct {
	store   storage.UserStore
	tokens  *auth.TokenManager
	stats   *stats.Registry
	metrics metrics.Recorder
	log     *logrus.Logger
}

// NewUserHandler constructs the handler.
func NewUserHandler(store storage.UserStore, tokens *auth.TokenManager, registry *stats.Registry, recorder metrics.Recorder, log *logrus.Logger) *UserHandler {
	return &UserHandler{
		store:   store,
		tokens:  tokens,
		stats:   registry,
		metrics: recorder,
		log:     log,
	}
}

// Register attaches user routes to the mux.
func (h *UserHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /register", h.handleRegister)
	mux.HandleFunc("POST /login", h.handleLogin)
	mux.HandleFunc("GET /users/{username}", h.handleGet)
	mux.HandleFunc("PUT /users/{username}/email", h.handleSetEmail)
	mux.HandleFunc("PUT /users/{username}/password", h.handleSetPassword)
	mux.HandleFunc("PUT /users/{username}/role", h.handleSetRole)
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Role     string `json:"role"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type userResponse struct {
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func toUserResponse(u *domain.User) userResponse {
	out := userResponse{
		Username:  u.Username,
		Email:     u.Email(),
		Role:      u.Role(),
		CreatedAt: u.CreatedAt,
	}
	if last := u.LastLogin(); !last.IsZero() {
		out.LastLogin = &last
	}
	return out
}

func (h *UserHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := domain.NewUser(req.Username, req.Email, req.Role, req.Password)
	if err != nil {
		h.log.WithError(err).Error("hash password")
		respond.Error(w, http.StatusInternalServerError, "failed to create user")
		return
	}
	if err := h.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			respond.Error(w, http.StatusConflict, "user already exists")
			return
		}
		h.log.WithError(err).Error("create user")
		respond.Error(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	h.stats.Record(domain.KindUser, user.Role())
	h.metrics.RecordEntityCreated(domain.KindUser, user.Role())
	respond.JSON(w, http.StatusCreated, "user created", toUserResponse(user))
}

func (h *UserHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Identifier) == "" || strings.TrimSpace(req.Password) == "" {
		respond.Error(w, http.StatusBadRequest, "identifier and password are required")
		return
	}

	user, err := h.store.FindByUsernameOrEmail(r.Context(), strings.TrimSpace(req.Identifier))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.log.WithError(err).Error("fetch user for login")
		respond.Error(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	if !user.CheckPassword(req.Password) {
		respond.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	user, err = h.store.UpdateUser(r.Context(), user.Username, func(u *domain.User) error {
		u.RecordLogin(time.Now())
		return nil
	})
	if err != nil {
		h.log.WithError(err).Error("record login")
		respond.Error(w, http.StatusInternalServerError, "failed to record login")
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		h.log.WithError(err).Error("generate token")
		respond.Error(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	respond.JSON(w, http.StatusOK, "login successful", loginResponse{Token: token, User: toUserResponse(user)})
}

func (h *UserHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.FindByUsername(r.Context(), r.PathValue("username"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "user not found")
			return
		}
		h.log.WithError(err).Error("fetch user")
		respond.Error(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	respond.JSON(w, http.StatusOK, "user", toUserResponse(user))
}

type setEmailRequest struct {
	Email string `json:"email" validate:"required"`
}

type setPasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

type setRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

func (h *UserHandler) handleSetEmail(w http.ResponseWriter, r *http.Request) {
	var req setEmailRequest
	h.handleGuardedWrite(w, r, &req, "email updated", func(u *domain.User) error {
		return u.SetEmail(req.Email)
	})
}

func (h *UserHandler) handleSetPassword(w http.ResponseWriter, r *http.Request) {
	var req setPasswordRequest
	h.handleGuardedWrite(w, r, &req, "password updated", func(u *domain.User) error {
		return u.SetPassword(req.Password)
	})
}

func (h *UserHandler) handleSetRole(w http.ResponseWriter, r *http.Request) {
	var req setRoleRequest
	h.handleGuardedWrite(w, r, &req, "role updated", func(u *domain.User) error {
		return u.SetRole(req.Role)
	})
}

// handleGuardedWrite decodes into req, then applies fn to the stored user.
// A rejection from the entity answers 422 and leaves the user unchanged.
func (h *UserHandler) handleGuardedWrite(w http.ResponseWriter, r *http.Request, req any, okMessage string, fn func(*domain.User) error) {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.store.UpdateUser(r.Context(), r.PathValue("username"), fn)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "user not found")
		case writeRejection(w, h.metrics, domain.KindUser, err):
		default:
			h.log.WithError(err).Error("update user")
			respond.Error(w, http.StatusInternalServerError, "failed to update user")
		}
		return
	}

	respond.JSON(w, http.StatusOK, okMessage, toUserResponse(updated))
}
