package quizzes

import (
	"context"

	"github.com/goliatone/go-gateway/core"
	"github.com/goliatone/go-gateway/resolver"
)

// Resolver executes quiz domain operations against the quiz backend.
type Resolver struct {
	res resolver.Resources
}

func NewResolver(res resolver.Resources) *Resolver {
	return &Resolver{res: res}
}

func (r *Resolver) GetQuiz(ctx context.Context, cc core.CallContext, input GetQuizInput) core.Envelope[Quiz] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[GetQuizInput, Quiz]{
		Domain:    core.DomainQuiz,
		Operation: "GetQuiz",
		Label:     "fetch quiz",
		Encode: func(in GetQuizInput) (any, error) {
			return getQuizRequest{QuizID: in.QuizID}, nil
		},
		Decode: decodeQuiz,
	}, input)
}

func (r *Resolver) ListQuizzes(ctx context.Context, cc core.CallContext, input ListQuizzesInput) core.Envelope[QuizList] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[ListQuizzesInput, QuizList]{
		Domain:    core.DomainQuiz,
		Operation: "ListQuizzes",
		Label:     "list quizzes",
		Encode: func(in ListQuizzesInput) (any, error) {
			page, limit := core.NormalizePage(in.Page, in.Limit)
			return listQuizzesRequest{
				Page:     page,
				Limit:    limit,
				Language: core.NormalizeLanguage(in.Language),
			}, nil
		},
		Decode: decodeQuizList,
	}, input)
}

func (r *Resolver) CreateQuiz(ctx context.Context, cc core.CallContext, input CreateQuizInput) core.Envelope[Quiz] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[CreateQuizInput, Quiz]{
		Domain:    core.DomainQuiz,
		Operation: "CreateQuiz",
		Label:     "create quiz",
		Encode: func(in CreateQuizInput) (any, error) {
			return createQuizRequest{
				Question:   in.Question,
				Options:    optionsToMap(in.Options),
				CorrectKey: in.CorrectKey,
				Language:   core.NormalizeLanguage(in.Language),
			}, nil
		},
		Decode: decodeQuiz,
	}, input)
}

func (r *Resolver) UpdateQuiz(ctx context.Context, cc core.CallContext, input UpdateQuizInput) core.Envelope[Quiz] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[UpdateQuizInput, Quiz]{
		Domain:    core.DomainQuiz,
		Operation: "UpdateQuiz",
		Label:     "update quiz",
		Encode: func(in UpdateQuizInput) (any, error) {
			request := updateQuizRequest{
				ID:         in.QuizID,
				Question:   in.Question,
				CorrectKey: in.CorrectKey,
			}
			if len(in.Options) > 0 {
				request.Options = optionsToMap(in.Options)
			}
			return request, nil
		},
		Decode: decodeQuiz,
	}, input)
}

func (r *Resolver) DeleteQuiz(ctx context.Context, cc core.CallContext, input DeleteQuizInput) core.Envelope[core.Ack] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[DeleteQuizInput, core.Ack]{
		Domain:    core.DomainQuiz,
		Operation: "DeleteQuiz",
		Label:     "delete quiz",
		Encode: func(in DeleteQuizInput) (any, error) {
			return getQuizRequest{QuizID: in.QuizID}, nil
		},
		Decode: decodeAck,
	}, input)
}

func (r *Resolver) SubmitAnswer(ctx context.Context, cc core.CallContext, input SubmitAnswerInput) core.Envelope[AnswerResult] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[SubmitAnswerInput, AnswerResult]{
		Domain:    core.DomainQuiz,
		Operation: "SubmitAnswer",
		Label:     "submit answer",
		Encode: func(in SubmitAnswerInput) (any, error) {
			return submitAnswerRequest{QuizID: in.QuizID, Key: in.Key}, nil
		},
		Decode: decodeAnswer,
	}, input)
}

func decodeQuiz(result core.BackendResult) (core.Envelope[Quiz], error) {
	wire, err := resolver.DecodeJSON[quizResponse](result)
	if err != nil {
		return core.Envelope[Quiz]{}, err
	}
	if wire.Quiz == nil {
		return core.StatusOnly[Quiz](wire.Status, wire.Message), nil
	}
	return core.OK(wire.Status, wire.Message, wire.Quiz.toPublic()), nil
}

func decodeQuizList(result core.BackendResult) (core.Envelope[QuizList], error) {
	wire, err := resolver.DecodeJSON[quizListResponse](result)
	if err != nil {
		return core.Envelope[QuizList]{}, err
	}
	list := QuizList{
		Quizzes:    make([]Quiz, 0, len(wire.Quizzes)),
		Pagination: wire.Pagination.Meta(),
	}
	for _, quiz := range wire.Quizzes {
		list.Quizzes = append(list.Quizzes, quiz.toPublic())
	}
	return core.OK(wire.Status, wire.Message, list), nil
}

func decodeAnswer(result core.BackendResult) (core.Envelope[AnswerResult], error) {
	wire, err := resolver.DecodeJSON[answerResponse](result)
	if err != nil {
		return core.Envelope[AnswerResult]{}, err
	}
	answer := AnswerResult{
		QuizID:     wire.QuizID,
		Correct:    wire.Correct,
		CorrectKey: wire.CorrectKey,
	}
	return core.OK(wire.Status, wire.Message, answer), nil
}

func decodeAck(result core.BackendResult) (core.Envelope[core.Ack], error) {
	wire, err := resolver.DecodeJSON[ackResponse](result)
	if err != nil {
		return core.Envelope[core.Ack]{}, err
	}
	return core.StatusOnly[core.Ack](wire.Status, wire.Message), nil
}
