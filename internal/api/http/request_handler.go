package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"renthive-backend/internal/domain"
	"renthive-backend/internal/repository"
	"renthive-backend/internal/service"
	"renthive-backend/internal/utils"

	"github.com/gorilla/mux"
)

type RequestHandler struct {
	requestSvc service.RequestService
	ledgerSvc  service.LedgerService
	itemRepo   repository.ItemRepository
}

func NewRequestHandler(requestSvc service.RequestService, ledgerSvc service.LedgerService, itemRepo repository.ItemRepository) *RequestHandler {
	return &RequestHandler{requestSvc: requestSvc, ledgerSvc: ledgerSvc, itemRepo: itemRepo}
}

type createRequestBody struct {
	ItemID    int32  `json:"item_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Create books an item for a date range. The price is computed here, at the
// caller, from the item's daily rate and the inclusive day count; the engine
// only checks that the locked-in amount is positive.
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
		return
	}

	var body createRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	item, err := h.itemRepo.GetByID(r.Context(), body.ItemID)
	if err != nil {
		writeError(w, err)
		return
	}
	totalPrice, err := utils.RentalCostCents(item.PricePerDayCents, body.StartDate, body.EndDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	rq, err := h.requestSvc.Create(r.Context(), actorID, body.ItemID, body.StartDate, body.EndDate, totalPrice, item.DepositCents)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rq)
}

func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	actorID, requestID, ok := h.actorAndID(w, r)
	if !ok {
		return
	}
	detail, err := h.requestSvc.Get(r.Context(), actorID, requestID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	actorID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
		return
	}

	status := r.URL.Query().Get("status")
	page := queryInt32(r, "page", 1)
	pageSize := queryInt32(r, "page_size", 20)

	var list interface{}
	var total int32
	if r.URL.Query().Get("role") == "owner" {
		list, total, err = h.requestSvc.ListByOwner(r.Context(), actorID, status, page, pageSize)
	} else {
		list, total, err = h.requestSvc.ListByRequester(r.Context(), actorID, status, page, pageSize)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"requests": list, "total": total})
}

func (h *RequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.requestSvc.Approve)
}

func (h *RequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.requestSvc.Reject)
}

func (h *RequestHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.requestSvc.Cancel)
}

func (h *RequestHandler) Pay(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.requestSvc.SimulatePayment)
}

type codeBody struct {
	Code string `json:"code"`
}

func (h *RequestHandler) ConfirmHandover(w http.ResponseWriter, r *http.Request) {
	actorID, requestID, ok := h.actorAndID(w, r)
	if !ok {
		return
	}
	var body codeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	rq, err := h.requestSvc.ConfirmHandover(r.Context(), actorID, requestID, body.Code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rq)
}

func (h *RequestHandler) ConfirmReturn(w http.ResponseWriter, r *http.Request) {
	actorID, requestID, ok := h.actorAndID(w, r)
	if !ok {
		return
	}
	var body codeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	rq, err := h.requestSvc.ConfirmReturn(r.Context(), actorID, requestID, body.Code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rq)
}

type completeBody struct {
	Rating *int32 `json:"rating,omitempty"`
}

func (h *RequestHandler) Complete(w http.ResponseWriter, r *http.Request) {
	actorID, requestID, ok := h.actorAndID(w, r)
	if !ok {
		return
	}
	var body completeBody
	if r.Body != nil {
		// Rating is optional; an empty body completes without one.
		_ = json.NewDecoder(r.Body).Decode(&body)
	}
	rq, err := h.requestSvc.Complete(r.Context(), actorID, requestID, body.Rating)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rq)
}

type disputeBody struct {
	Reason      string  `json:"reason"`
	EvidenceURL *string `json:"evidence_url,omitempty"`
}

func (h *RequestHandler) OpenDispute(w http.ResponseWriter, r *http.Request) {
	actorID, requestID, ok := h.actorAndID(w, r)
	if !ok {
		return
	}
	var body disputeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	rq, err := h.requestSvc.OpenDispute(r.Context(), actorID, requestID, body.Reason, body.EvidenceURL)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rq)
}

func (h *RequestHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	actorID, requestID, ok := h.actorAndID(w, r)
	if !ok {
		return
	}
	txs, err := h.ledgerSvc.GetTransactions(r.Context(), actorID, requestID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"transactions": txs})
}

// transition handles the body-less lifecycle operations.
func (h *RequestHandler) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, actorID, requestID int32) (*domain.RentalRequest, error)) {
	actorID, requestID, ok := h.actorAndID(w, r)
	if !ok {
		return
	}
	rq, err := op(r.Context(), actorID, requestID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rq)
}

func (h *RequestHandler) actorAndID(w http.ResponseWriter, r *http.Request) (int32, int32, bool) {
	actorID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
		return 0, 0, false
	}
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request id"})
		return 0, 0, false
	}
	return actorID, int32(id), true
}

func queryInt32(r *http.Request, key string, def int32) int32 {
	val := r.URL.Query().Get(key)
	if val == "" {
		return def
	}
	parsed, err := strconv.ParseInt(val, 10, 32)
	if err != nil || parsed <= 0 {
		return def
	}
	return int32(parsed)
}
