package wallets

import (
	"context"

	"github.com/goliatone/go-gateway/core"
	"github.com/goliatone/go-gateway/resolver"
)

// Resolver executes wallet domain operations against the wallet backend.
type Resolver struct {
	res resolver.Resources
}

func NewResolver(res resolver.Resources) *Resolver {
	return &Resolver{res: res}
}

func (r *Resolver) GetWallet(ctx context.Context, cc core.CallContext, input GetWalletInput) core.Envelope[Wallet] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[GetWalletInput, Wallet]{
		Domain:    core.DomainWallet,
		Operation: "GetWallet",
		Label:     "fetch wallet",
		Encode: func(in GetWalletInput) (any, error) {
			return walletRequest{WalletID: in.WalletID}, nil
		},
		Decode: decodeWallet,
	}, input)
}

func (r *Resolver) GetBalance(ctx context.Context, cc core.CallContext, input GetBalanceInput) core.Envelope[Balance] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[GetBalanceInput, Balance]{
		Domain:    core.DomainWallet,
		Operation: "GetBalance",
		Label:     "fetch balance",
		Encode: func(in GetBalanceInput) (any, error) {
			return walletRequest{WalletID: in.WalletID}, nil
		},
		Decode: decodeBalance,
	}, input)
}

func (r *Resolver) TopUp(ctx context.Context, cc core.CallContext, input TopUpInput) core.Envelope[Wallet] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[TopUpInput, Wallet]{
		Domain:    core.DomainWallet,
		Operation: "TopUp",
		Label:     "top up wallet",
		Encode: func(in TopUpInput) (any, error) {
			return amountRequest{WalletID: in.WalletID, Amount: in.Amount}, nil
		},
		Decode: decodeWallet,
	}, input)
}

func (r *Resolver) Withdraw(ctx context.Context, cc core.CallContext, input WithdrawInput) core.Envelope[Wallet] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[WithdrawInput, Wallet]{
		Domain:    core.DomainWallet,
		Operation: "Withdraw",
		Label:     "withdraw from wallet",
		Encode: func(in WithdrawInput) (any, error) {
			return amountRequest{WalletID: in.WalletID, Amount: in.Amount}, nil
		},
		Decode: decodeWallet,
	}, input)
}

func (r *Resolver) ListWallets(ctx context.Context, cc core.CallContext, input ListWalletsInput) core.Envelope[WalletList] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[ListWalletsInput, WalletList]{
		Domain:    core.DomainWallet,
		Operation: "ListWallets",
		Label:     "list wallets",
		Encode: func(in ListWalletsInput) (any, error) {
			page, limit := core.NormalizePage(in.Page, in.Limit)
			return listWalletsRequest{UserID: in.UserID, Page: page, Limit: limit}, nil
		},
		Decode: decodeWalletList,
	}, input)
}

func decodeWallet(result core.BackendResult) (core.Envelope[Wallet], error) {
	wire, err := resolver.DecodeJSON[walletResponse](result)
	if err != nil {
		return core.Envelope[Wallet]{}, err
	}
	if wire.Wallet == nil {
		return core.StatusOnly[Wallet](wire.Status, wire.Message), nil
	}
	return core.OK(wire.Status, wire.Message, wire.Wallet.toPublic()), nil
}

func decodeBalance(result core.BackendResult) (core.Envelope[Balance], error) {
	wire, err := resolver.DecodeJSON[balanceResponse](result)
	if err != nil {
		return core.Envelope[Balance]{}, err
	}
	balance := Balance{
		WalletID: wire.WalletID,
		Currency: wire.Currency,
		Balance:  wire.Balance,
	}
	return core.OK(wire.Status, wire.Message, balance), nil
}

func decodeWalletList(result core.BackendResult) (core.Envelope[WalletList], error) {
	wire, err := resolver.DecodeJSON[walletListResponse](result)
	if err != nil {
		return core.Envelope[WalletList]{}, err
	}
	list := WalletList{
		Wallets:    make([]Wallet, 0, len(wire.Wallets)),
		Pagination: wire.Pagination.Meta(),
	}
	for _, wallet := range wire.Wallets {
		list.Wallets = append(list.Wallets, wallet.toPublic())
	}
	return core.OK(wire.Status, wire.Message, list), nil
}
