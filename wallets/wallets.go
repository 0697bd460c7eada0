// Package wallets exposes the wallet domain operations: wallet lookup,
// balance reads, top-ups and withdrawals. Amounts are minor currency units.
package wallets

import "github.com/goliatone/go-gateway/core"

// Wallet is the public wallet shape.
type Wallet struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Currency  string `json:"currency"`
	Balance   int64  `json:"balance"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Balance is the payload for balance reads.
type Balance struct {
	WalletID string `json:"walletId"`
	Currency string `json:"currency"`
	Balance  int64  `json:"balance"`
}

// WalletList is the payload for wallet listings.
type WalletList struct {
	Wallets    []Wallet             `json:"wallets"`
	Pagination *core.PaginationMeta `json:"pagination,omitempty"`
}

type GetWalletInput struct {
	WalletID string `json:"walletId"`
}

type GetBalanceInput struct {
	WalletID string `json:"walletId"`
}

type TopUpInput struct {
	WalletID string `json:"walletId"`
	Amount   int64  `json:"amount"`
}

type WithdrawInput struct {
	WalletID string `json:"walletId"`
	Amount   int64  `json:"amount"`
}

type ListWalletsInput struct {
	UserID string `json:"userId,omitempty"`
	Page   int    `json:"page,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

type wireWallet struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Currency  string          `json:"currency"`
	Balance   int64           `json:"balance"`
	CreatedAt *core.Timestamp `json:"created_at,omitempty"`
	UpdatedAt *core.Timestamp `json:"updated_at,omitempty"`
}

func (w wireWallet) toPublic() Wallet {
	return Wallet{
		ID:        w.ID,
		UserID:    w.UserID,
		Currency:  w.Currency,
		Balance:   w.Balance,
		CreatedAt: w.CreatedAt.RFC3339(),
		UpdatedAt: w.UpdatedAt.RFC3339(),
	}
}

type walletRequest struct {
	WalletID string `json:"wallet_id"`
}

type amountRequest struct {
	WalletID string `json:"wallet_id"`
	Amount   int64  `json:"amount"`
}

type listWalletsRequest struct {
	UserID string `json:"user_id,omitempty"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
}

type walletResponse struct {
	core.BackendStatus
	Wallet *wireWallet `json:"wallet"`
}

type balanceResponse struct {
	core.BackendStatus
	WalletID string `json:"wallet_id"`
	Currency string `json:"currency"`
	Balance  int64  `json:"balance"`
}

type walletListResponse struct {
	core.BackendStatus
	Wallets    []wireWallet            `json:"wallets"`
	Pagination *core.BackendPagination `json:"pagination"`
}
