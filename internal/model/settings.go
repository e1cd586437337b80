package model

// ShippingCalculation selects how the shipping fee is derived.
type ShippingCalculation string

const (
	ShippingFlat ShippingCalculation = "flat"
	ShippingZone ShippingCalculation = "zone"
)

// Zone is an administrative shipping-fee bucket keyed by a province or region
// name (e.g. "Metro Manila", "Luzon", or a specific province like "Cavite").
type Zone struct {
	Name string  `json:"name"`
	Fee  float64 `json:"fee"`
	Days string  `json:"days"`
}

// Courier is a delivery partner available for fulfillment.
type Courier struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TrackingURL string `json:"trackingUrl"`
	Status      string `json:"status"`
}

// ShippingSettings is the admin-configured shipping policy.
type ShippingSettings struct {
	Enabled         bool                `json:"enabled"`
	BaseFee         float64             `json:"baseFee"`
	FreeThreshold   float64             `json:"freeThreshold"` // 0 disables
	CalculationType ShippingCalculation `json:"calculationType"`
	Zones           []Zone              `json:"zones"`
	Couriers        []Courier           `json:"couriers"`
}

// PaymentSettings is the admin-configured payment channel availability.
type PaymentSettings struct {
	COD struct {
		Enabled bool `json:"enabled"`
	} `json:"cod"`
	GCash struct {
		Enabled       bool   `json:"enabled"`
		AccountName   string `json:"accountName"`
		AccountNumber string `json:"accountNumber"`
		QRImage       string `json:"qrImage"`
	} `json:"gcash"`
	Bank struct {
		Enabled       bool   `json:"enabled"`
		BankName      string `json:"bankName"`
		AccountName   string `json:"accountName"`
		AccountNumber string `json:"accountNumber"`
	} `json:"bank"`
}

// EmailTemplate is a stored notification template. Delivery is handled by an
// external mailer; this service only persists the configuration.
type EmailTemplate struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Enabled bool   `json:"enabled"`
}

// SMTPSettings is the stored outbound-mail configuration.
type SMTPSettings struct {
	Enabled   bool                     `json:"enabled"`
	Host      string                   `json:"host"`
	Port      int                      `json:"port"`
	Username  string                   `json:"username"`
	Password  string                   `json:"password"`
	Secure    bool                     `json:"secure"`
	FromEmail string                   `json:"fromEmail"`
	FromName  string                   `json:"fromName"`
	Templates map[string]EmailTemplate `json:"templates"`
}
