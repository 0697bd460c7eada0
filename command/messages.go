// Package command adapts gateway mutations to the go-command bus so host
// applications can dispatch them as typed messages.
package command

import "fmt"

const (
	TypeRegister           = "gateway.command.auth.register"
	TypeLogin              = "gateway.command.auth.login"
	TypeRefreshToken       = "gateway.command.auth.refresh"
	TypeLogout             = "gateway.command.auth.logout"
	TypeUpdateUser         = "gateway.command.user.update"
	TypeDeleteUser         = "gateway.command.user.delete"
	TypeCreateCard         = "gateway.command.card.create"
	TypeUpdateCard         = "gateway.command.card.update"
	TypeDeleteCard         = "gateway.command.card.delete"
	TypeTopUpWallet        = "gateway.command.wallet.top_up"
	TypeWithdrawWallet     = "gateway.command.wallet.withdraw"
	TypeCreateTransaction  = "gateway.command.transaction.create"
	TypeSendMessage        = "gateway.command.chat.send"
	TypeDeleteConversation = "gateway.command.chat.delete_conversation"
	TypeCreateTemplate     = "gateway.command.template.create"
	TypeUpdateTemplate     = "gateway.command.template.update"
	TypeDeleteTemplate     = "gateway.command.template.delete"
	TypeCreateQuiz         = "gateway.command.quiz.create"
	TypeUpdateQuiz         = "gateway.command.quiz.update"
	TypeDeleteQuiz         = "gateway.command.quiz.delete"
	TypeSubmitAnswer       = "gateway.command.quiz.submit_answer"
	TypeCreateFeedback     = "gateway.command.feedback.create"
	TypeDeleteFeedback     = "gateway.command.feedback.delete"
	TypeUpdateProgress     = "gateway.command.progress.update"
	TypeUploadFile         = "gateway.command.upload.file"
	TypeDeleteFile         = "gateway.command.upload.delete"
)

// Message carries one gateway mutation through the command bus. Name must be
// one of the Type* constants; Headers are the inbound call headers the
// credential propagator reads.
type Message[I any] struct {
	Name    string
	Headers map[string]string
	Input   I
}

func (m Message[I]) Type() string { return m.Name }

func (m Message[I]) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("command: message name is required")
	}
	return nil
}
