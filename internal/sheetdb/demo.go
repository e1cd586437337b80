package sheetdb

import (
	"time"

	"dito-store/internal/model"
)

// DefaultShippingSettings is the shipping policy used when the store has not
// configured one.
func DefaultShippingSettings() model.ShippingSettings {
	return model.ShippingSettings{
		Enabled:         true,
		BaseFee:         150,
		FreeThreshold:   2000,
		CalculationType: model.ShippingZone,
		Zones: []model.Zone{
			{Name: "Metro Manila", Fee: 100, Days: "1-3 Days"},
			{Name: "Luzon", Fee: 150, Days: "3-5 Days"},
			{Name: "Visayas", Fee: 200, Days: "5-7 Days"},
			{Name: "Mindanao", Fee: 250, Days: "7-10 Days"},
		},
		Couriers: []model.Courier{
			{ID: "jnt", Name: "J&T Express", TrackingURL: "https://www.jtexpress.ph/index/query/gzquery.html?bills={TRACKING}", Status: "active"},
			{ID: "lbc", Name: "LBC Express", TrackingURL: "https://www.lbcexpress.com/track/?tracking_no={TRACKING}", Status: "active"},
			{ID: "flash", Name: "Flash Express", TrackingURL: "https://www.flashexpress.ph/tracking/?se={TRACKING}", Status: "inactive"},
		},
	}
}

// DefaultPaymentSettings enables cash on delivery only.
func DefaultPaymentSettings() model.PaymentSettings {
	var p model.PaymentSettings
	p.COD.Enabled = true
	return p
}

// DefaultSMTPSettings is a disabled mail configuration with the standard
// notification templates.
func DefaultSMTPSettings() model.SMTPSettings {
	return model.SMTPSettings{
		Enabled:   false,
		Host:      "smtp.gmail.com",
		Port:      587,
		FromEmail: "noreply@dito.ph",
		FromName:  "DITO Home Store",
		Templates: map[string]model.EmailTemplate{
			"newOrder": {
				Subject: "Order Confirmation #{order_id}",
				Body:    "Hi {customer_name},\n\nThank you for your order! We have received your order #{order_id} amounting to ₱{total}.\n\nWe will notify you once it ships.",
				Enabled: true,
			},
			"orderShipped": {
				Subject: "Your Order #{order_id} has Shipped!",
				Body:    "Good news {customer_name}!\n\nYour order is on the way via {courier}. Tracking Number: {tracking_number}.",
				Enabled: true,
			},
			"orderDelivered": {
				Subject: "Order Delivered - #{order_id}",
				Body:    "Hello {customer_name},\n\nYour order #{order_id} has been successfully delivered. Enjoy your DITO Home WiFi!",
				Enabled: true,
			},
			"affiliateSale": {
				Subject: "New Commission Earned! (Order #{order_id})",
				Body:    "Congratulations!\n\nYou earned a commission of ₱{commission} for Order #{order_id}. Keep up the great work!",
				Enabled: true,
			},
			"affiliatePayout": {
				Subject: "Payout Processed",
				Body:    "Hello,\n\nYour payout request of ₱{amount} has been processed successfully to your account.",
				Enabled: true,
			},
		},
	}
}

// DemoSnapshot is the bundled catalogue used when the spreadsheet cannot be
// reached during startup.
func DemoSnapshot() *Snapshot {
	now := time.Now()

	return &Snapshot{
		Products: []model.Product{
			{
				ID:          "dito-wowfi-pro",
				Name:        "DITO Home WoWFi Pro",
				Subtitle:    "Unlimited 4G/5G Home WiFi",
				Description: "Ultra-fast 4G/5G home internet with speeds up to 100Mbps. No data caps, no lock-in.",
				Price:       1990,
				Category:    "Modems",
				Image:       "https://picsum.photos/seed/routerblue/600/600",
				Specs: map[string]string{
					"Connectivity": "5G / 4G LTE",
					"WiFi":         "WiFi 6 (802.11ax)",
					"Devices":      "Connect up to 32 devices",
				},
				Features:      []string{"Plug & Play Installation", "No Monthly Bill (Prepaid)", "Includes 50GB Bonus Data"},
				SKU:           "DITO-MOD-001",
				Stock:         150,
				MinStockLevel: 20,
				BulkDiscounts: []model.BulkDiscount{
					{MinQty: 3, Percentage: 5},
					{MinQty: 10, Percentage: 12},
				},
				CreatedAt: now,
			},
			{
				ID:            "dito-flash-5g",
				Name:          "DITO Flash 4G/5G Pocket",
				Subtitle:      "Portable High-Speed Internet",
				Description:   "Take 4G/5G wherever you go. Compact, powerful, and ready for travel.",
				Price:         990,
				Category:      "Pocket WiFi",
				Image:         "https://picsum.photos/seed/pocketwifi/400/400",
				SKU:           "DITO-PKT-002",
				Stock:         45,
				MinStockLevel: 10,
				CreatedAt:     now,
			},
			{
				ID:            "dito-sim-starter",
				Name:          "DITO 4G/5G SIM Starter",
				Subtitle:      "SIM Only Pack",
				Description:   "Upgrade your current phone to the DITO network.",
				Price:         49,
				Category:      "SIM Cards",
				Image:         "https://picsum.photos/seed/simcard/400/400",
				SKU:           "DITO-SIM-001",
				Stock:         500,
				MinStockLevel: 100,
				BulkDiscounts: []model.BulkDiscount{
					{MinQty: 5, Percentage: 10},
				},
				CreatedAt: now,
			},
		},
		Affiliates: []model.Affiliate{
			{
				ID:               "AFF-DEMO",
				Name:             "Demo Partner",
				Email:            "demo@dito.ph",
				WalletBalance:    2500,
				TotalSales:       15000,
				LifetimeEarnings: 750,
				Clicks:           42,
				Status:           model.AffiliateActive,
				FirstName:        "Demo",
				LastName:         "Partner",
				Mobile:           "09171234567",
				Address:          "Makati City",
				JoinDate:         now,
			},
		},
		Shipping: DefaultShippingSettings(),
		Payment:  DefaultPaymentSettings(),
		SMTP:     DefaultSMTPSettings(),
	}
}
