package core

import "strings"

// Domain identifies one backend capability area. Each domain owns exactly one
// backend service, one client handle, and one address.
type Domain string

const (
	DomainUser        Domain = "user"
	DomainAuth        Domain = "auth"
	DomainCard        Domain = "card"
	DomainWallet      Domain = "wallet"
	DomainTransaction Domain = "transaction"
	DomainChat        Domain = "chat"
	DomainPharaoh     Domain = "pharaoh"
	DomainTemplate    Domain = "history_template"
	DomainQuiz        Domain = "quiz"
	DomainFeedback    Domain = "feedback"
	DomainProgress    Domain = "user_progress"
	DomainUpload      Domain = "upload"
)

type domainInfo struct {
	service        string
	envVar         string
	defaultAddress string
}

var domainTable = map[Domain]domainInfo{
	DomainUser:        {service: "UserService", envVar: "USER_SERVICE_URL", defaultAddress: "localhost:50051"},
	DomainAuth:        {service: "AuthService", envVar: "AUTH_SERVICE_URL", defaultAddress: "localhost:50052"},
	DomainCard:        {service: "CardService", envVar: "CARD_SERVICE_URL", defaultAddress: "localhost:50053"},
	DomainWallet:      {service: "WalletService", envVar: "WALLET_SERVICE_URL", defaultAddress: "localhost:50054"},
	DomainTransaction: {service: "TransactionService", envVar: "TRANSACTION_SERVICE_URL", defaultAddress: "localhost:50055"},
	DomainChat:        {service: "ChatService", envVar: "CHAT_SERVICE_URL", defaultAddress: "localhost:50056"},
	DomainPharaoh:     {service: "PharaohService", envVar: "PHARAOH_SERVICE_URL", defaultAddress: "localhost:50057"},
	DomainTemplate:    {service: "HistoryTemplateService", envVar: "HISTORY_TEMPLATE_SERVICE_URL", defaultAddress: "localhost:50058"},
	DomainQuiz:        {service: "QuizService", envVar: "QUIZ_SERVICE_URL", defaultAddress: "localhost:50059"},
	DomainFeedback:    {service: "FeedbackService", envVar: "FEEDBACK_SERVICE_URL", defaultAddress: "localhost:50060"},
	DomainProgress:    {service: "UserProgressService", envVar: "USER_PROGRESS_SERVICE_URL", defaultAddress: "localhost:50061"},
	DomainUpload:      {service: "UploadService", envVar: "UPLOAD_SERVICE_URL", defaultAddress: "localhost:50062"},
}

var domainOrder = []Domain{
	DomainUser,
	DomainAuth,
	DomainCard,
	DomainWallet,
	DomainTransaction,
	DomainChat,
	DomainPharaoh,
	DomainTemplate,
	DomainQuiz,
	DomainFeedback,
	DomainProgress,
	DomainUpload,
}

// Domains returns every known backend domain in declaration order.
func Domains() []Domain {
	out := make([]Domain, len(domainOrder))
	copy(out, domainOrder)
	return out
}

// Service returns the backend RPC service name for the domain.
func (d Domain) Service() string {
	return domainTable[normalizeDomain(d)].service
}

// EnvVar returns the environment variable that overrides the domain address.
func (d Domain) EnvVar() string {
	return domainTable[normalizeDomain(d)].envVar
}

// DefaultAddress returns the hard-coded fallback host:port for the domain.
func (d Domain) DefaultAddress() string {
	return domainTable[normalizeDomain(d)].defaultAddress
}

func (d Domain) Known() bool {
	_, ok := domainTable[normalizeDomain(d)]
	return ok
}

func normalizeDomain(d Domain) Domain {
	return Domain(strings.TrimSpace(strings.ToLower(string(d))))
}
