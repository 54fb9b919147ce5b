package payment

import "time"

// ChargeRequest запрос на списание
type ChargeRequest struct {
	Reference     string // публичный идентификатор бронирования
	Amount        int64  // CLP
	Currency      string
	Description   string
	CustomerEmail string
}

// Charge результат списания
type Charge struct {
	ID          string
	Reference   string
	Amount      int64
	Currency    string
	Status      string
	ProcessedAt time.Time
}

const (
	StatusApproved = "approved"
	StatusRefunded = "refunded"

	CurrencyCLP = "CLP"
)
