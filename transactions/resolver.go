package transactions

import (
	"context"

	"github.com/goliatone/go-gateway/core"
	"github.com/goliatone/go-gateway/resolver"
)

const defaultSortField = "created_at"

// Resolver executes transaction domain operations against the transaction
// backend.
type Resolver struct {
	res resolver.Resources
}

func NewResolver(res resolver.Resources) *Resolver {
	return &Resolver{res: res}
}

func (r *Resolver) GetTransaction(ctx context.Context, cc core.CallContext, input GetTransactionInput) core.Envelope[Transaction] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[GetTransactionInput, Transaction]{
		Domain:    core.DomainTransaction,
		Operation: "GetTransaction",
		Label:     "fetch transaction",
		Encode: func(in GetTransactionInput) (any, error) {
			return getTransactionRequest{TransactionID: in.TransactionID}, nil
		},
		Decode: decodeTransaction,
	}, input)
}

func (r *Resolver) ListTransactions(ctx context.Context, cc core.CallContext, input ListTransactionsInput) core.Envelope[TransactionList] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[ListTransactionsInput, TransactionList]{
		Domain:    core.DomainTransaction,
		Operation: "ListTransactions",
		Label:     "list transactions",
		Encode: func(in ListTransactionsInput) (any, error) {
			page, limit := core.NormalizePage(in.Page, in.Limit)
			sortBy, order := core.NormalizeSort(in.SortBy, in.Order, defaultSortField)
			return listTransactionsRequest{
				Page:   page,
				Limit:  limit,
				SortBy: sortBy,
				Order:  order,
			}, nil
		},
		Decode: decodeTransactionList,
	}, input)
}

func (r *Resolver) CreateTransaction(ctx context.Context, cc core.CallContext, input CreateTransactionInput) core.Envelope[Transaction] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[CreateTransactionInput, Transaction]{
		Domain:    core.DomainTransaction,
		Operation: "CreateTransaction",
		Label:     "create transaction",
		Encode: func(in CreateTransactionInput) (any, error) {
			return createTransactionRequest{
				WalletID: in.WalletID,
				Amount:   in.Amount,
				Currency: in.Currency,
				Type:     in.Type,
			}, nil
		},
		Decode: decodeTransaction,
	}, input)
}

func (r *Resolver) ListWalletTransactions(ctx context.Context, cc core.CallContext, input ListWalletTransactionsInput) core.Envelope[TransactionList] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[ListWalletTransactionsInput, TransactionList]{
		Domain:    core.DomainTransaction,
		Operation: "ListWalletTransactions",
		Label:     "list wallet transactions",
		Encode: func(in ListWalletTransactionsInput) (any, error) {
			page, limit := core.NormalizePage(in.Page, in.Limit)
			return listWalletTransactionsRequest{
				WalletID: in.WalletID,
				Page:     page,
				Limit:    limit,
			}, nil
		},
		Decode: decodeTransactionList,
	}, input)
}

func decodeTransaction(result core.BackendResult) (core.Envelope[Transaction], error) {
	wire, err := resolver.DecodeJSON[transactionResponse](result)
	if err != nil {
		return core.Envelope[Transaction]{}, err
	}
	if wire.Transaction == nil {
		return core.StatusOnly[Transaction](wire.Status, wire.Message), nil
	}
	return core.OK(wire.Status, wire.Message, wire.Transaction.toPublic()), nil
}

func decodeTransactionList(result core.BackendResult) (core.Envelope[TransactionList], error) {
	wire, err := resolver.DecodeJSON[transactionListResponse](result)
	if err != nil {
		return core.Envelope[TransactionList]{}, err
	}
	list := TransactionList{
		Transactions: make([]Transaction, 0, len(wire.Transactions)),
		Pagination:   wire.Pagination.Meta(),
	}
	for _, transaction := range wire.Transactions {
		list.Transactions = append(list.Transactions, transaction.toPublic())
	}
	return core.OK(wire.Status, wire.Message, list), nil
}
