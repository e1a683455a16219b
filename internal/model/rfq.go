package model

import "time"

// RFQ is a stored Request For Quote against a catalog product.
type RFQ struct {
	ID               string    `json:"id"`
	ProductID        string    `json:"product_id"`
	ProductName      string    `json:"product_name"`
	Manufacturer     string    `json:"manufacturer"`
	Quantity         float64   `json:"quantity"`
	Unit             string    `json:"unit"`
	DeliveryLocation string    `json:"delivery_location"`
	Notes            string    `json:"notes"`
	ArchiveKey       string    `json:"archive_key,omitempty"`
	ArchiveURL       string    `json:"archive_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
