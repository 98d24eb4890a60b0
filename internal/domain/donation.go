package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// PaymentMethod enumerates the accepted donation channels. MoMo is the only
// one that moves money today; card and PayPal record intent for later.
type PaymentMethod string

const (
	PaymentMoMo   PaymentMethod = "momo"
	PaymentCard   PaymentMethod = "card"
	PaymentPayPal PaymentMethod = "paypal"
)

// DonationStatus is fixed at "pending" on creation. No code path here flips a
// donation to "paid"; a future gateway webhook handler is expected to own that
// transition.
type DonationStatus string

const (
	DonationPending DonationStatus = "pending"
	DonationPaid    DonationStatus = "paid"
)

const (
	// DonationCurrency is the only currency the intake accepts.
	DonationCurrency = "SZL"

	// MinDonationAmount is the smallest contribution the intake accepts.
	MinDonationAmount = 10

	// MinMoMoDigits is the minimum digit count of a normalized MoMo number.
	MinMoMoDigits = 8
)

// DonationPresets are the amounts offered by the donate form. "Custom" entries
// go through the same validation as presets.
var DonationPresets = []float64{100, 250, 500, 1000}

// Donation is one contribution intent. Rows are written exactly once by the
// intake flow and never updated or deleted afterward.
type Donation struct {
	ID            string
	DonorName     *string
	Email         string
	Amount        float64
	Currency      string
	PaymentMethod PaymentMethod
	MoMoNumber    *string
	Status        DonationStatus
	Country       string
	CreatedAt     time.Time
}

// DisplayName returns the donor name shown publicly, defaulting to Anonymous.
func (d Donation) DisplayName() string {
	if d.DonorName != nil && strings.TrimSpace(*d.DonorName) != "" {
		return *d.DonorName
	}
	return "Anonymous"
}

// DonationInput carries the raw donate-form submission.
type DonationInput struct {
	DonorName  string
	Email      string
	Amount     float64
	Method     PaymentMethod
	MoMoNumber string
}

// NormalizePhone strips everything except digits, keeping one leading plus.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(raw) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func phoneDigits(normalized string) int {
	return len(strings.TrimPrefix(normalized, "+"))
}

// Validate checks the submission in form order: amount, email, then the MoMo
// number when that method is selected. The first failure wins and nothing is
// persisted on failure.
func (in DonationInput) Validate() error {
	if math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) || in.Amount <= 0 {
		return fmt.Errorf("%w: please enter a valid amount", ErrInvalidInput)
	}
	if in.Amount < MinDonationAmount {
		return fmt.Errorf("%w: minimum donation is %s %d", ErrInvalidInput, DonationCurrency, MinDonationAmount)
	}
	if strings.TrimSpace(in.Email) == "" {
		return fmt.Errorf("%w: email address is required", ErrInvalidInput)
	}
	switch in.Method {
	case PaymentMoMo:
		phone := NormalizePhone(in.MoMoNumber)
		if phone == "" {
			return fmt.Errorf("%w: please enter your MTN MoMo number", ErrInvalidInput)
		}
		if phoneDigits(phone) < MinMoMoDigits {
			return fmt.Errorf("%w: please enter a valid phone number", ErrInvalidInput)
		}
	case PaymentCard, PaymentPayPal:
	default:
		return fmt.Errorf("%w: unsupported payment method %q", ErrInvalidInput, in.Method)
	}
	return nil
}

// NewDonation builds the pending ledger entry for a validated input.
func (in DonationInput) NewDonation() Donation {
	d := Donation{
		Email:         strings.TrimSpace(in.Email),
		Amount:        in.Amount,
		Currency:      DonationCurrency,
		PaymentMethod: in.Method,
		Status:        DonationPending,
	}
	if name := strings.TrimSpace(in.DonorName); name != "" {
		d.DonorName = &name
	}
	if in.Method == PaymentMoMo {
		phone := NormalizePhone(in.MoMoNumber)
		d.MoMoNumber = &phone
	}
	return d
}
