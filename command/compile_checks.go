package command

import (
	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-gateway/cards"
	"github.com/goliatone/go-gateway/quizzes"
	"github.com/goliatone/go-gateway/uploads"
)

var (
	_ gocmd.Commander[Message[cards.CreateCardInput]]    = (*ResolveCommand[cards.CreateCardInput, cards.Card])(nil)
	_ gocmd.Commander[Message[quizzes.CreateQuizInput]]  = (*ResolveCommand[quizzes.CreateQuizInput, quizzes.Quiz])(nil)
	_ gocmd.Commander[Message[uploads.UploadFileInput]]  = (*ResolveCommand[uploads.UploadFileInput, uploads.File])(nil)
)
