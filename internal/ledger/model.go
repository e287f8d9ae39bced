// Package ledger tracks per-provider request counts and spend for the life
// of the process, with optional Postgres persistence.
package ledger

import "creator-backend/internal/llm"

// Record is one provider's cumulative usage. Counters only ever grow.
type Record struct {
	Provider llm.Provider `json:"provider"`
	Requests int64        `json:"requests"`
	Cost     float64      `json:"cost"`
}

// Snapshot is a read-only copy of the ledger at one instant.
type Snapshot struct {
	Providers     []Record `json:"providers"`
	TotalRequests int64    `json:"totalRequests"`
	TotalCost     float64  `json:"totalCost"`
}

// Savings compares actual spend to the worst-case baseline of sending
// every request to the most expensive registered provider. Derived on
// read, never stored.
type Savings struct {
	BaselineCost float64 `json:"baselineCost"`
	Absolute     float64 `json:"absolute"`
	Percent      float64 `json:"percent"`
}
