package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/godswill-dev/guardian-be/internal/domain"
	"github.com/godswill-dev/guardian-be/internal/http/respond"
	"github.com/godswill-dev/guardian-be/internal/metrics"
	"github.com/godswill-dev/guardian-be/internal/stats"
	"github.com/godswill-dev/guardian-be/internal/storage"
	"github.com/godswill-dev/guardian-be/internal/validate"
)

// AccountHandler owns the bank account endpoints.
type AccountHandler struct {
	store          storage.AccountStore
	stats          *stats.Registry
	metrics        metrics.Recorder
	log            *logrus.Logger
	defaultBalance int64
}

// NewAccountHandler constructs the handler. defaultBalance is granted when a
// create request omits the initial balance.
func NewAccountHandler(store storage.AccountStore, registry *stats.Registry, recorder metrics.Recorder, log *logrus.Logger, defaultBalance int64) *AccountHandler {
	return &AccountHandler{
		store:          store,
		stats:          registry,
		metrics:        recorder,
		log:            log,
		defaultBalance: defaultBalance,
	}
}

// Register attaches account routes to the mux.
func (h *AccountHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /accounts", h.handleCreate)
	mux.HandleFunc("GET /accounts/{number}", h.handleGet)
	mux.HandleFunc("POST /accounts/{number}/deposit", h.handleDeposit)
	mux.HandleFunc("POST /accounts/{number}/withdraw", h.handleWithdraw)
}

type createAccountRequest struct {
	Holder              string `json:"holder" validate:"required"`
	InitialBalanceCents *int64 `json:"initial_balance_cents" validate:"omitempty,gte=0"`
}

// amountRequest deliberately carries no validate tags: whether an amount is
// acceptable is a business rule, answered by the account itself.
type amountRequest struct {
	AmountCents int64 `json:"amount_cents"`
}

type accountResponse struct {
	Holder       string    `json:"holder"`
	Number       string    `json:"number"`
	BalanceCents int64     `json:"balance_cents"`
	CreatedAt    time.Time `json:"created_at"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		Holder:       a.Holder,
		Number:       a.Number,
		BalanceCents: a.Balance(),
		CreatedAt:    a.CreatedAt,
	}
}

func (h *AccountHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	initial := h.defaultBalance
	if req.InitialBalanceCents != nil {
		initial = *req.InitialBalanceCents
	}
	account := domain.NewAccount(req.Holder, initial)
	if err := h.store.CreateAccount(r.Context(), account); err != nil {
		h.log.WithError(err).Error("create account")
		respond.Error(w, http.StatusInternalServerError, "failed to create account")
		return
	}

	h.stats.Record(domain.KindAccount, "")
	h.metrics.RecordEntityCreated(domain.KindAccount, "")
	respond.JSON(w, http.StatusCreated, "account created", toAccountResponse(account))
}

func (h *AccountHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	account, err := h.store.GetAccount(r.Context(), r.PathValue("number"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "account not found")
			return
		}
		h.log.WithError(err).Error("get account")
		respond.Error(w, http.StatusInternalServerError, "failed to fetch account")
		return
	}
	respond.JSON(w, http.StatusOK, "account", toAccountResponse(account))
}

func (h *AccountHandler) handleDeposit(w http.ResponseWriter, r *http.Request) {
	h.handleAmount(w, r, "deposit accepted", func(a *domain.Account, amount int64) error {
		return a.Deposit(amount)
	})
}

func (h *AccountHandler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	h.handleAmount(w, r, "withdrawal accepted", func(a *domain.Account, amount int64) error {
		return a.Withdraw(amount)
	})
}

func (h *AccountHandler) handleAmount(w http.ResponseWriter, r *http.Request, okMessage string, apply func(*domain.Account, int64) error) {
	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	updated, err := h.store.UpdateAccount(r.Context(), r.PathValue("number"), func(a *domain.Account) error {
		return apply(a, req.AmountCents)
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "account not found")
		case writeRejection(w, h.metrics, domain.KindAccount, err):
		default:
			h.log.WithError(err).Error("update account")
			respond.Error(w, http.StatusInternalServerError, "failed to update account")
		}
		return
	}

	respond.JSON(w, http.StatusOK, okMessage, toAccountResponse(updated))
}
