// Package momo wraps the MTN MoMo Collection "request to pay" operation.
//
// This is an integration seam, not a payment capture pipeline: the call asks
// the payer's phone to approve a charge and the gateway answers 202 Accepted
// before the payer acts. Confirmation arrives asynchronously through the
// gateway callback, which is intentionally out of scope here.
package momo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotConfigured is returned when required gateway credentials are missing.
// Callers should fail closed rather than attempt a call with partial secrets.
var ErrNotConfigured = errors.New("momo: gateway not configured")

// Options configures the collection client.
type Options struct {
	BaseURL         string // e.g. https://sandbox.momodeveloper.mtn.com
	SubscriptionKey string
	AccessToken     string
	TargetEnv       string // sandbox | mtnswaziland | ...
	Currency        string
	CallbackURL     string
	HTTPClient      *http.Client
}

// Client calls the MoMo Collection API.
type Client struct {
	baseURL         string
	subscriptionKey string
	accessToken     string
	targetEnv       string
	currency        string
	callbackURL     string
	httpClient      *http.Client
}

// NewClient builds a collection client. Missing credentials are tolerated
// here; RequestToPay reports ErrNotConfigured when used without them.
func NewClient(opts Options) *Client {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	targetEnv := opts.TargetEnv
	if targetEnv == "" {
		targetEnv = "sandbox"
	}
	currency := opts.Currency
	if currency == "" {
		currency = "SZL"
	}
	return &Client{
		baseURL:         strings.TrimRight(opts.BaseURL, "/"),
		subscriptionKey: strings.TrimSpace(opts.SubscriptionKey),
		accessToken:     strings.TrimSpace(opts.AccessToken),
		targetEnv:       targetEnv,
		currency:        currency,
		callbackURL:     strings.TrimSpace(opts.CallbackURL),
		httpClient:      client,
	}
}

// Payer identifies who gets the approval prompt.
type Payer struct {
	PartyIDType string `json:"partyIdType"`
	PartyID     string `json:"partyId"`
}

// Request is one request-to-pay call.
type Request struct {
	Amount       string
	ExternalID   string
	Payer        Payer
	PayerMessage string
	PayeeNote    string
}

// Result is the gateway outcome passed through to the caller: the generated
// reference, the gateway HTTP status and the raw response body.
type Result struct {
	ReferenceID string
	Status      int
	Body        string
	OK          bool
}

type requestToPayBody struct {
	Amount       string `json:"amount"`
	Currency     string `json:"currency"`
	ExternalID   string `json:"externalId"`
	Payer        Payer  `json:"payer"`
	PayerMessage string `json:"payerMessage"`
	PayeeNote    string `json:"payeeNote"`
}

// RequestToPay issues one collection request with a fresh random reference
// identifier. The gateway response is passed through verbatim; no retry.
func (c *Client) RequestToPay(ctx context.Context, req Request) (*Result, error) {
	if c.baseURL == "" || c.subscriptionKey == "" || c.accessToken == "" {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(req.Payer.PartyID) == "" {
		return nil, fmt.Errorf("%w: payer partyId is required", ErrInvalidPayer)
	}

	referenceID := uuid.NewString()
	body := requestToPayBody{
		Amount:       defaultString(req.Amount, "100"),
		Currency:     c.currency,
		ExternalID:   defaultString(req.ExternalID, referenceID),
		Payer:        Payer{PartyIDType: defaultString(req.Payer.PartyIDType, "MSISDN"), PartyID: req.Payer.PartyID},
		PayerMessage: defaultString(req.PayerMessage, "Enactus donation"),
		PayeeNote:    defaultString(req.PayeeNote, "Thank you for supporting youth impact"),
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("momo: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/collection/v1_0/requesttopay", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("momo: create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)
	httpReq.Header.Set("X-Reference-Id", referenceID)
	httpReq.Header.Set("X-Target-Environment", c.targetEnv)
	httpReq.Header.Set("Ocp-Apim-Subscription-Key", c.subscriptionKey)
	httpReq.Header.Set("Content-Type", "application/json")
	if c.callbackURL != "" {
		httpReq.Header.Set("X-Callback-Url", c.callbackURL)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("momo: request to pay: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("momo: read response: %w", err)
	}

	return &Result{
		ReferenceID: referenceID,
		Status:      resp.StatusCode,
		Body:        string(raw),
		OK:          resp.StatusCode < http.StatusBadRequest,
	}, nil
}

// ErrInvalidPayer is returned when the payer's mobile identifier is missing.
var ErrInvalidPayer = errors.New("momo: invalid payer")

func defaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
