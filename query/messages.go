// Package query adapts gateway reads to the go-command bus so host
// applications can dispatch them as typed messages.
package query

import "fmt"

const (
	TypeVerifyToken            = "gateway.query.auth.verify"
	TypeGetUser                = "gateway.query.user.get"
	TypeListUsers              = "gateway.query.user.list"
	TypeSearchUsers            = "gateway.query.user.search"
	TypeGetCard                = "gateway.query.card.get"
	TypeListCards              = "gateway.query.card.list"
	TypeGetWallet              = "gateway.query.wallet.get"
	TypeGetBalance             = "gateway.query.wallet.balance"
	TypeListWallets            = "gateway.query.wallet.list"
	TypeGetTransaction         = "gateway.query.transaction.get"
	TypeListTransactions       = "gateway.query.transaction.list"
	TypeListWalletTransactions = "gateway.query.transaction.list_by_wallet"
	TypeListConversations      = "gateway.query.chat.conversations"
	TypeListMessages           = "gateway.query.chat.messages"
	TypeGetPharaoh             = "gateway.query.pharaoh.get"
	TypeListPharaohs           = "gateway.query.pharaoh.list"
	TypeSearchPharaohs         = "gateway.query.pharaoh.search"
	TypeGetTemplate            = "gateway.query.template.get"
	TypeListTemplates          = "gateway.query.template.list"
	TypeGetQuiz                = "gateway.query.quiz.get"
	TypeListQuizzes            = "gateway.query.quiz.list"
	TypeGetFeedback            = "gateway.query.feedback.get"
	TypeListFeedback           = "gateway.query.feedback.list"
	TypeGetProgress            = "gateway.query.progress.get"
	TypeListProgress           = "gateway.query.progress.list"
	TypeGetFile                = "gateway.query.upload.get"
	TypeListFiles              = "gateway.query.upload.list"
)

// Message carries one gateway read through the query bus. Name must be one
// of the Type* constants; Headers are the inbound call headers the credential
// propagator reads.
type Message[I any] struct {
	Name    string
	Headers map[string]string
	Input   I
}

func (m Message[I]) Type() string { return m.Name }

func (m Message[I]) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("query: message name is required")
	}
	return nil
}
