// Package sheetdb implements the spreadsheet document store behind the
// storefront: one tab per entity, flat columns plus a json_data blob column,
// full-snapshot reads and whole-tab overwrite writes.
package sheetdb

import (
	"context"
	"fmt"

	"dito-store/internal/model"

	"github.com/rs/zerolog"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Tab ranges. Row 1 of every tab is a human-readable header.
const (
	productsRange   = "Products!A2:M"
	ordersRange     = "Orders!A2:O"
	customersRange  = "Customers!A2:G"
	affiliatesRange = "Affiliates!A2:J"
	payoutsRange    = "Payouts!A2:J"
	settingsRange   = "Settings!A2:B"
)

// Snapshot is the full contents of the document store.
type Snapshot struct {
	Products   []model.Product
	Orders     []model.Order
	Customers  []model.Customer
	Affiliates []model.Affiliate
	Payouts    []model.PayoutRequest
	Shipping   model.ShippingSettings
	Payment    model.PaymentSettings
	SMTP       model.SMTPSettings
}

// Client talks to one spreadsheet through the Google Sheets API.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	logger        zerolog.Logger
}

// NewClient creates a Sheets client authenticated with a service-account
// credentials file.
func NewClient(ctx context.Context, spreadsheetID, credentialsFile string, logger zerolog.Logger) (*Client, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID is required")
	}

	svc, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		logger:        logger.With().Str("component", "sheetdb").Logger(),
	}, nil
}

// Read fetches every tab in one batch call and decodes the full snapshot.
func (c *Client) Read(ctx context.Context) (*Snapshot, error) {
	resp, err := c.svc.Spreadsheets.Values.
		BatchGet(c.spreadsheetID).
		Ranges(productsRange, ordersRange, customersRange, affiliatesRange, payoutsRange, settingsRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	if len(resp.ValueRanges) != 6 {
		return nil, fmt.Errorf("unexpected batch response: got %d ranges, want 6", len(resp.ValueRanges))
	}

	snap := &Snapshot{}
	for _, row := range resp.ValueRanges[0].Values {
		if cellString(row, 0) == "" {
			continue
		}
		snap.Products = append(snap.Products, decodeProductRow(row))
	}
	for _, row := range resp.ValueRanges[1].Values {
		if cellString(row, 0) == "" {
			continue
		}
		snap.Orders = append(snap.Orders, decodeOrderRow(row))
	}
	for _, row := range resp.ValueRanges[2].Values {
		if cellString(row, 0) == "" {
			continue
		}
		snap.Customers = append(snap.Customers, decodeCustomerRow(row))
	}
	for _, row := range resp.ValueRanges[3].Values {
		if cellString(row, 0) == "" {
			continue
		}
		snap.Affiliates = append(snap.Affiliates, decodeAffiliateRow(row))
	}
	for _, row := range resp.ValueRanges[4].Values {
		if cellString(row, 0) == "" {
			continue
		}
		snap.Payouts = append(snap.Payouts, decodePayoutRow(row))
	}
	snap.Shipping, snap.Payment, snap.SMTP = decodeSettings(resp.ValueRanges[5].Values)

	c.logger.Debug().
		Int("products", len(snap.Products)).
		Int("orders", len(snap.Orders)).
		Int("affiliates", len(snap.Affiliates)).
		Int("payouts", len(snap.Payouts)).
		Msg("snapshot loaded")

	return snap, nil
}

// SyncProducts overwrites the Products tab with the given records.
func (c *Client) SyncProducts(ctx context.Context, products []model.Product) error {
	rows := make([][]interface{}, len(products))
	for i, p := range products {
		rows[i] = encodeProductRow(p)
	}
	return c.overwrite(ctx, productsRange, rows)
}

// SyncOrders overwrites the Orders tab with the given records.
func (c *Client) SyncOrders(ctx context.Context, orders []model.Order) error {
	rows := make([][]interface{}, len(orders))
	for i, o := range orders {
		rows[i] = encodeOrderRow(o)
	}
	return c.overwrite(ctx, ordersRange, rows)
}

// SyncCustomers overwrites the Customers tab with the given records.
func (c *Client) SyncCustomers(ctx context.Context, customers []model.Customer) error {
	rows := make([][]interface{}, len(customers))
	for i, cu := range customers {
		rows[i] = encodeCustomerRow(cu)
	}
	return c.overwrite(ctx, customersRange, rows)
}

// SyncAffiliates overwrites the Affiliates tab with the given records.
func (c *Client) SyncAffiliates(ctx context.Context, affiliates []model.Affiliate) error {
	rows := make([][]interface{}, len(affiliates))
	for i, a := range affiliates {
		rows[i] = encodeAffiliateRow(a)
	}
	return c.overwrite(ctx, affiliatesRange, rows)
}

// SyncPayouts overwrites the Payouts tab with the given records.
func (c *Client) SyncPayouts(ctx context.Context, payouts []model.PayoutRequest) error {
	rows := make([][]interface{}, len(payouts))
	for i, p := range payouts {
		rows[i] = encodePayoutRow(p)
	}
	return c.overwrite(ctx, payoutsRange, rows)
}

// SyncSettings overwrites the Settings tab with the flat key/value rows.
func (c *Client) SyncSettings(ctx context.Context, shipping model.ShippingSettings, payment model.PaymentSettings, smtp model.SMTPSettings) error {
	return c.overwrite(ctx, settingsRange, encodeSettingsRows(shipping, payment, smtp))
}

// overwrite clears a tab range and writes fresh rows.
func (c *Client) overwrite(ctx context.Context, rng string, rows [][]interface{}) error {
	_, err := c.svc.Spreadsheets.Values.
		Clear(c.spreadsheetID, rng, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to clear range %s: %w", rng, err)
	}

	if len(rows) == 0 {
		return nil
	}

	_, err = c.svc.Spreadsheets.Values.
		Update(c.spreadsheetID, rng, &sheets.ValueRange{Values: rows}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update range %s: %w", rng, err)
	}

	return nil
}
