// Package transactions exposes the transaction domain operations. Listings
// default to sorting by creation time ascending.
package transactions

import "github.com/goliatone/go-gateway/core"

// Transaction is the public transaction shape.
type Transaction struct {
	ID        string `json:"id"`
	WalletID  string `json:"walletId"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// TransactionList is the payload for paginated transaction listings.
type TransactionList struct {
	Transactions []Transaction        `json:"transactions"`
	Pagination   *core.PaginationMeta `json:"pagination,omitempty"`
}

type GetTransactionInput struct {
	TransactionID string `json:"transactionId"`
}

type ListTransactionsInput struct {
	Page   int    `json:"page,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	SortBy string `json:"sortBy,omitempty"`
	Order  string `json:"order,omitempty"`
}

type CreateTransactionInput struct {
	WalletID string `json:"walletId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Type     string `json:"type"`
}

type ListWalletTransactionsInput struct {
	WalletID string `json:"walletId"`
	Page     int    `json:"page,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}

type wireTransaction struct {
	ID        string          `json:"id"`
	WalletID  string          `json:"wallet_id"`
	Amount    int64           `json:"amount"`
	Currency  string          `json:"currency"`
	Type      string          `json:"type"`
	Status    string          `json:"status"`
	CreatedAt *core.Timestamp `json:"created_at,omitempty"`
}

func (w wireTransaction) toPublic() Transaction {
	return Transaction{
		ID:        w.ID,
		WalletID:  w.WalletID,
		Amount:    w.Amount,
		Currency:  w.Currency,
		Type:      w.Type,
		Status:    w.Status,
		CreatedAt: w.CreatedAt.RFC3339(),
	}
}

type getTransactionRequest struct {
	TransactionID string `json:"transaction_id"`
}

type listTransactionsRequest struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	SortBy string `json:"sort_by"`
	Order  string `json:"order"`
}

type createTransactionRequest struct {
	WalletID string `json:"wallet_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Type     string `json:"type"`
}

type listWalletTransactionsRequest struct {
	WalletID string `json:"wallet_id"`
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
}

type transactionResponse struct {
	core.BackendStatus
	Transaction *wireTransaction `json:"transaction"`
}

type transactionListResponse struct {
	core.BackendStatus
	Transactions []wireTransaction       `json:"transactions"`
	Pagination   *core.BackendPagination `json:"pagination"`
}
