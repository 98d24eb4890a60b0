package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"server/internal/domain"
	"server/internal/providers/momo"
)

type momoRequest struct {
	Amount       string     `json:"amount"`
	ExternalID   string     `json:"externalId"`
	Payer        momo.Payer `json:"payer"`
	PayerMessage string     `json:"payerMessage"`
	PayeeNote    string     `json:"payeeNote"`
}

// MoMoRequestToPay proxies one request-to-pay call to the gateway. The
// gateway status and body are passed through so the widget can show the
// provider's own message.
func (a *App) MoMoRequestToPay(w http.ResponseWriter, r *http.Request) {
	var req momoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	req.Payer.PartyID = domain.NormalizePhone(req.Payer.PartyID)

	result, err := a.MoMo.RequestToPay(r.Context(), momo.Request{
		Amount:       req.Amount,
		ExternalID:   req.ExternalID,
		Payer:        req.Payer,
		PayerMessage: req.PayerMessage,
		PayeeNote:    req.PayeeNote,
	})
	switch {
	case errors.Is(err, momo.ErrNotConfigured):
		a.error(w, http.StatusInternalServerError, "momo_not_configured", "Mobile money is not configured on this server.")
		return
	case errors.Is(err, momo.ErrInvalidPayer):
		a.error(w, http.StatusBadRequest, "bad_request", "payer partyId is required")
		return
	case err != nil:
		a.Logger.Error().Err(err).Msg("momo request to pay failed")
		a.error(w, http.StatusBadGateway, "momo_unreachable", "Could not reach the mobile money gateway.")
		return
	}

	var body any
	if json.Unmarshal([]byte(result.Body), &body) != nil {
		body = result.Body
	}
	a.json(w, http.StatusOK, map[string]any{
		"ok":          result.OK,
		"status":      result.Status,
		"referenceId": result.ReferenceID,
		"response":    body,
	})
}
