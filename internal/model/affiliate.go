package model

import (
	"time"

	"github.com/google/uuid"
)

// AffiliateStatus is the partner account state.
type AffiliateStatus string

const (
	AffiliateActive   AffiliateStatus = "active"
	AffiliateInactive AffiliateStatus = "inactive"
	AffiliateBanned   AffiliateStatus = "banned"
)

// Affiliate is a referral partner. WalletBalance holds credited commissions
// awaiting payout; TotalSales accumulates the merchandise value of referred
// orders; LifetimeEarnings accumulates every commission ever credited.
type Affiliate struct {
	ID               string          `json:"id" db:"id"`
	Name             string          `json:"name" db:"name"`
	Email            string          `json:"email" db:"email"`
	WalletBalance    float64         `json:"walletBalance" db:"wallet_balance"`
	TotalSales       float64         `json:"totalSales" db:"total_sales"`
	LifetimeEarnings float64         `json:"lifetimeEarnings" db:"lifetime_earnings"`
	Clicks           int             `json:"clicks" db:"clicks"`
	Status           AffiliateStatus `json:"status" db:"status"`
	FirstName        string          `json:"firstName,omitempty" db:"first_name"`
	LastName         string          `json:"lastName,omitempty" db:"last_name"`
	Mobile           string          `json:"mobile,omitempty" db:"mobile"`
	Address          string          `json:"address,omitempty" db:"address"`
	AgencyName       string          `json:"agencyName,omitempty" db:"agency_name"`
	GcashName        string          `json:"gcashName,omitempty" db:"gcash_name"`
	GcashNumber      string          `json:"gcashNumber,omitempty" db:"gcash_number"`
	JoinDate         time.Time       `json:"joinDate" db:"join_date"`
}

// PayoutStatus is the review state of a payout request. Pending is the only
// non-terminal state.
type PayoutStatus string

const (
	PayoutPending  PayoutStatus = "Pending"
	PayoutApproved PayoutStatus = "Approved"
	PayoutRejected PayoutStatus = "Rejected"
)

// MinimumPayout is the smallest amount an affiliate may request.
const MinimumPayout = 100

// PayoutRequest is a withdrawal of accumulated wallet balance. The wallet is
// debited when the request is created; a rejection refunds the debit.
type PayoutRequest struct {
	ID            uuid.UUID    `json:"id" db:"id"`
	AffiliateID   string       `json:"affiliateId" db:"affiliate_id"`
	AffiliateName string       `json:"affiliateName" db:"affiliate_name"`
	Amount        float64      `json:"amount" db:"amount"`
	Method        string       `json:"method" db:"method"`
	AccountName   string       `json:"accountName" db:"account_name"`
	AccountNumber string       `json:"accountNumber" db:"account_number"`
	Status        PayoutStatus `json:"status" db:"status"`
	DateRequested time.Time    `json:"dateRequested" db:"date_requested"`
	DateProcessed *time.Time   `json:"dateProcessed,omitempty" db:"date_processed"`
}

// PayoutRequestInput is the affiliate-facing payload for requesting a payout.
type PayoutRequestInput struct {
	AffiliateID   string  `json:"affiliateId"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	AccountName   string  `json:"accountName"`
	AccountNumber string  `json:"accountNumber"`
}

// AffiliateDashboard aggregates a partner's standing for display.
type AffiliateDashboard struct {
	Affiliate      Affiliate `json:"affiliate"`
	ReferredOrders []Order   `json:"referredOrders"`
	PendingPayouts float64   `json:"pendingPayouts"`
}
