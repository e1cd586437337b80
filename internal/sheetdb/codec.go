package sheetdb

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"dito-store/internal/model"

	"github.com/google/uuid"
)

// Each entity is serialised to flat columns plus one json_data blob column for
// nested fields. Decoding is lenient: missing cells and malformed blobs fall
// back to zero values per field, never fail the whole row.

// productBlob carries the nested product fields inside the json_data column.
type productBlob struct {
	Description   string               `json:"description,omitempty"`
	Gallery       []string             `json:"gallery,omitempty"`
	Specs         map[string]string    `json:"specs,omitempty"`
	Features      []string             `json:"features,omitempty"`
	BulkDiscounts []model.BulkDiscount `json:"bulkDiscounts,omitempty"`
	CostPrice     float64              `json:"costPrice,omitempty"`
}

// orderBlob carries the nested order fields inside the json_data column.
type orderBlob struct {
	OrderItems      []model.OrderItem      `json:"orderItems,omitempty"`
	ShippingDetails *model.ShippingDetails `json:"shippingDetails,omitempty"`
	ProofOfPayment  string                 `json:"proofOfPayment,omitempty"`
}

// affiliateBlob carries the nested affiliate profile fields.
type affiliateBlob struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Mobile      string `json:"mobile,omitempty"`
	Address     string `json:"address,omitempty"`
	AgencyName  string `json:"agencyName,omitempty"`
	GcashName   string `json:"gcashName,omitempty"`
	GcashNumber string `json:"gcashNumber,omitempty"`
}

func encodeProductRow(p model.Product) []interface{} {
	blob, _ := json.Marshal(productBlob{
		Description:   p.Description,
		Gallery:       p.Gallery,
		Specs:         p.Specs,
		Features:      p.Features,
		BulkDiscounts: p.BulkDiscounts,
		CostPrice:     p.CostPrice,
	})
	return []interface{}{
		p.ID, p.Name, p.Subtitle, p.Category, p.Price,
		p.Stock, p.MinStockLevel, p.SKU,
		string(p.CommissionType), p.CommissionValue,
		p.Image, formatTime(p.CreatedAt), string(blob),
	}
}

func decodeProductRow(row []interface{}) model.Product {
	p := model.Product{
		ID:              cellString(row, 0),
		Name:            cellString(row, 1),
		Subtitle:        cellString(row, 2),
		Category:        cellString(row, 3),
		Price:           cellFloat(row, 4),
		Stock:           cellInt(row, 5),
		MinStockLevel:   cellInt(row, 6),
		SKU:             cellString(row, 7),
		CommissionType:  model.CommissionType(cellString(row, 8)),
		CommissionValue: cellFloat(row, 9),
		Image:           cellString(row, 10),
		CreatedAt:       cellTime(row, 11),
	}

	var blob productBlob
	if raw := cellString(row, 12); raw != "" {
		// malformed blobs keep the flat fields only
		_ = json.Unmarshal([]byte(raw), &blob)
	}
	p.Description = blob.Description
	p.Gallery = blob.Gallery
	p.Specs = blob.Specs
	p.Features = blob.Features
	p.BulkDiscounts = blob.BulkDiscounts
	p.CostPrice = blob.CostPrice

	return p
}

func encodeOrderRow(o model.Order) []interface{} {
	blob, _ := json.Marshal(orderBlob{
		OrderItems:      o.OrderItems,
		ShippingDetails: o.ShippingDetails,
		ProofOfPayment:  o.ProofOfPayment,
	})
	return []interface{}{
		o.ID.String(), o.Number, o.Customer, formatTime(o.CreatedAt),
		o.Total, o.ShippingFee, string(o.Status), o.Items,
		o.ReferralID, o.Commission, strconv.FormatBool(o.CommissionPaid),
		o.PaymentMethod, o.Courier, o.TrackingNumber, string(blob),
	}
}

func decodeOrderRow(row []interface{}) model.Order {
	o := model.Order{
		Number:         cellString(row, 1),
		Customer:       cellString(row, 2),
		CreatedAt:      cellTime(row, 3),
		Total:          cellFloat(row, 4),
		ShippingFee:    cellFloat(row, 5),
		Status:         model.OrderStatus(cellString(row, 6)),
		Items:          cellInt(row, 7),
		ReferralID:     cellString(row, 8),
		Commission:     cellFloat(row, 9),
		CommissionPaid: cellBool(row, 10),
		PaymentMethod:  cellString(row, 11),
		Courier:        cellString(row, 12),
		TrackingNumber: cellString(row, 13),
	}
	if id, err := uuid.Parse(cellString(row, 0)); err == nil {
		o.ID = id
	}
	if !model.ValidOrderStatus(o.Status) {
		o.Status = model.OrderPending
	}

	var blob orderBlob
	if raw := cellString(row, 14); raw != "" {
		_ = json.Unmarshal([]byte(raw), &blob)
	}
	o.OrderItems = blob.OrderItems
	o.ShippingDetails = blob.ShippingDetails
	o.ProofOfPayment = blob.ProofOfPayment

	return o
}

func encodeAffiliateRow(a model.Affiliate) []interface{} {
	blob, _ := json.Marshal(affiliateBlob{
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Mobile:      a.Mobile,
		Address:     a.Address,
		AgencyName:  a.AgencyName,
		GcashName:   a.GcashName,
		GcashNumber: a.GcashNumber,
	})
	return []interface{}{
		a.ID, a.Name, a.Email, a.WalletBalance, a.TotalSales,
		a.LifetimeEarnings, a.Clicks, string(a.Status),
		formatTime(a.JoinDate), string(blob),
	}
}

func decodeAffiliateRow(row []interface{}) model.Affiliate {
	a := model.Affiliate{
		ID:               cellString(row, 0),
		Name:             cellString(row, 1),
		Email:            cellString(row, 2),
		WalletBalance:    cellFloat(row, 3),
		TotalSales:       cellFloat(row, 4),
		LifetimeEarnings: cellFloat(row, 5),
		Clicks:           cellInt(row, 6),
		Status:           model.AffiliateStatus(cellString(row, 7)),
		JoinDate:         cellTime(row, 8),
	}
	if a.Status == "" {
		a.Status = model.AffiliateActive
	}

	var blob affiliateBlob
	if raw := cellString(row, 9); raw != "" {
		_ = json.Unmarshal([]byte(raw), &blob)
	}
	a.FirstName = blob.FirstName
	a.LastName = blob.LastName
	a.Mobile = blob.Mobile
	a.Address = blob.Address
	a.AgencyName = blob.AgencyName
	a.GcashName = blob.GcashName
	a.GcashNumber = blob.GcashNumber

	return a
}

func encodePayoutRow(p model.PayoutRequest) []interface{} {
	processed := ""
	if p.DateProcessed != nil {
		processed = formatTime(*p.DateProcessed)
	}
	return []interface{}{
		p.ID.String(), p.AffiliateID, p.AffiliateName, p.Amount,
		p.Method, p.AccountName, p.AccountNumber, string(p.Status),
		formatTime(p.DateRequested), processed,
	}
}

func decodePayoutRow(row []interface{}) model.PayoutRequest {
	p := model.PayoutRequest{
		AffiliateID:   cellString(row, 1),
		AffiliateName: cellString(row, 2),
		Amount:        cellFloat(row, 3),
		Method:        cellString(row, 4),
		AccountName:   cellString(row, 5),
		AccountNumber: cellString(row, 6),
		Status:        model.PayoutStatus(cellString(row, 7)),
		DateRequested: cellTime(row, 8),
	}
	if id, err := uuid.Parse(cellString(row, 0)); err == nil {
		p.ID = id
	}
	if p.Status == "" {
		p.Status = model.PayoutPending
	}
	if ts := cellTime(row, 9); !ts.IsZero() {
		p.DateProcessed = &ts
	}
	return p
}

func encodeCustomerRow(c model.Customer) []interface{} {
	return []interface{}{
		c.ID, c.Username, c.FirstName, c.LastName,
		c.Email, c.Mobile, formatTime(c.JoinDate),
	}
}

func decodeCustomerRow(row []interface{}) model.Customer {
	return model.Customer{
		ID:        cellString(row, 0),
		Username:  cellString(row, 1),
		FirstName: cellString(row, 2),
		LastName:  cellString(row, 3),
		Email:     cellString(row, 4),
		Mobile:    cellString(row, 5),
		JoinDate:  cellTime(row, 6),
	}
}

// Settings are stored as flat key/value rows; nested collections (zones,
// couriers, templates) are JSON strings under a single key. decodeSettings is
// the explicit migration from that flat representation to the typed structs.

func encodeSettingsRows(shipping model.ShippingSettings, payment model.PaymentSettings, smtp model.SMTPSettings) [][]interface{} {
	zones, _ := json.Marshal(shipping.Zones)
	couriers, _ := json.Marshal(shipping.Couriers)
	paymentBlob, _ := json.Marshal(payment)
	templates, _ := json.Marshal(smtp.Templates)

	return [][]interface{}{
		{"shipping.enabled", strconv.FormatBool(shipping.Enabled)},
		{"shipping.baseFee", shipping.BaseFee},
		{"shipping.freeThreshold", shipping.FreeThreshold},
		{"shipping.calculationType", string(shipping.CalculationType)},
		{"shipping.zones", string(zones)},
		{"shipping.couriers", string(couriers)},
		{"payment", string(paymentBlob)},
		{"smtp.enabled", strconv.FormatBool(smtp.Enabled)},
		{"smtp.host", smtp.Host},
		{"smtp.port", smtp.Port},
		{"smtp.username", smtp.Username},
		{"smtp.password", smtp.Password},
		{"smtp.secure", strconv.FormatBool(smtp.Secure)},
		{"smtp.fromEmail", smtp.FromEmail},
		{"smtp.fromName", smtp.FromName},
		{"smtp.templates", string(templates)},
	}
}

func decodeSettings(rows [][]interface{}) (model.ShippingSettings, model.PaymentSettings, model.SMTPSettings) {
	kv := make(map[string]string, len(rows))
	for _, row := range rows {
		key := cellString(row, 0)
		if key == "" {
			continue
		}
		kv[key] = cellString(row, 1)
	}

	shipping := DefaultShippingSettings()
	if v, ok := kv["shipping.enabled"]; ok {
		shipping.Enabled = parseBool(v)
	}
	if v, ok := kv["shipping.baseFee"]; ok {
		shipping.BaseFee = parseFloat(v)
	}
	if v, ok := kv["shipping.freeThreshold"]; ok {
		shipping.FreeThreshold = parseFloat(v)
	}
	if v, ok := kv["shipping.calculationType"]; ok && v != "" {
		shipping.CalculationType = model.ShippingCalculation(v)
	}
	if v, ok := kv["shipping.zones"]; ok && v != "" {
		var zones []model.Zone
		if err := json.Unmarshal([]byte(v), &zones); err == nil {
			shipping.Zones = zones
		}
	}
	if v, ok := kv["shipping.couriers"]; ok && v != "" {
		var couriers []model.Courier
		if err := json.Unmarshal([]byte(v), &couriers); err == nil {
			shipping.Couriers = couriers
		}
	}

	payment := DefaultPaymentSettings()
	if v, ok := kv["payment"]; ok && v != "" {
		var p model.PaymentSettings
		if err := json.Unmarshal([]byte(v), &p); err == nil {
			payment = p
		}
	}

	smtp := DefaultSMTPSettings()
	if v, ok := kv["smtp.enabled"]; ok {
		smtp.Enabled = parseBool(v)
	}
	if v, ok := kv["smtp.host"]; ok && v != "" {
		smtp.Host = v
	}
	if v, ok := kv["smtp.port"]; ok {
		if port := int(parseFloat(v)); port > 0 {
			smtp.Port = port
		}
	}
	if v, ok := kv["smtp.username"]; ok {
		smtp.Username = v
	}
	if v, ok := kv["smtp.password"]; ok {
		smtp.Password = v
	}
	if v, ok := kv["smtp.secure"]; ok {
		smtp.Secure = parseBool(v)
	}
	if v, ok := kv["smtp.fromEmail"]; ok && v != "" {
		smtp.FromEmail = v
	}
	if v, ok := kv["smtp.fromName"]; ok && v != "" {
		smtp.FromName = v
	}
	if v, ok := kv["smtp.templates"]; ok && v != "" {
		var templates map[string]model.EmailTemplate
		if err := json.Unmarshal([]byte(v), &templates); err == nil {
			smtp.Templates = templates
		}
	}

	return shipping, payment, smtp
}

// Cell parsing helpers. The Sheets API returns cells as interface{} values
// that may be strings or numbers depending on cell formatting.

func cellString(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	switch v := row[i].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func cellFloat(row []interface{}, i int) float64 {
	if i >= len(row) || row[i] == nil {
		return 0
	}
	switch v := row[i].(type) {
	case float64:
		return v
	case string:
		return parseFloat(v)
	default:
		return 0
	}
}

func cellInt(row []interface{}, i int) int {
	return int(cellFloat(row, i))
}

func cellBool(row []interface{}, i int) bool {
	if i >= len(row) || row[i] == nil {
		return false
	}
	switch v := row[i].(type) {
	case bool:
		return v
	case string:
		return parseBool(v)
	default:
		return false
	}
}

func cellTime(row []interface{}, i int) time.Time {
	s := cellString(row, i)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func parseFloat(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return b
}
