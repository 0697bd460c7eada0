package uploads

import (
	"context"
	"net/http"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-gateway/core"
	"github.com/goliatone/go-gateway/resolver"
)

// Resolver executes upload domain operations against the upload backend.
type Resolver struct {
	res resolver.Resources
}

func NewResolver(res resolver.Resources) *Resolver {
	return &Resolver{res: res}
}

// UploadFile validates the upload before dispatch; an incomplete upload is a
// client fault and never produces a backend call.
func (r *Resolver) UploadFile(ctx context.Context, cc core.CallContext, input UploadFileInput) core.Envelope[File] {
	if details := validateUpload(input); len(details) > 0 {
		startedAt := time.Now().UTC()
		core.ObserveOperation(ctx, r.res.Logger, r.res.Metrics, startedAt,
			core.DomainUpload, "UploadFile", uploadValidationError(details),
			map[string]any{"request_id": cc.RequestID})
		return core.ClientFault[File]("Invalid upload", details...)
	}

	return resolver.Run(ctx, r.res, cc, resolver.Call[UploadFileInput, File]{
		Domain:    core.DomainUpload,
		Operation: "UploadFile",
		Label:     "upload file",
		Encode: func(in UploadFileInput) (any, error) {
			return uploadFileRequest{
				FileName:    in.FileName,
				ContentType: in.ContentType,
				Data:        in.Data,
			}, nil
		},
		Decode: decodeFile,
	}, input)
}

func (r *Resolver) GetFile(ctx context.Context, cc core.CallContext, input GetFileInput) core.Envelope[File] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[GetFileInput, File]{
		Domain:    core.DomainUpload,
		Operation: "GetFile",
		Label:     "fetch file",
		Encode: func(in GetFileInput) (any, error) {
			return fileRequest{FileID: in.FileID}, nil
		},
		Decode: decodeFile,
	}, input)
}

func (r *Resolver) ListFiles(ctx context.Context, cc core.CallContext, input ListFilesInput) core.Envelope[FileList] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[ListFilesInput, FileList]{
		Domain:    core.DomainUpload,
		Operation: "ListFiles",
		Label:     "list files",
		Encode: func(in ListFilesInput) (any, error) {
			page, limit := core.NormalizePage(in.Page, in.Limit)
			return listFilesRequest{Page: page, Limit: limit}, nil
		},
		Decode: decodeFileList,
	}, input)
}

func (r *Resolver) DeleteFile(ctx context.Context, cc core.CallContext, input DeleteFileInput) core.Envelope[core.Ack] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[DeleteFileInput, core.Ack]{
		Domain:    core.DomainUpload,
		Operation: "DeleteFile",
		Label:     "delete file",
		Encode: func(in DeleteFileInput) (any, error) {
			return fileRequest{FileID: in.FileID}, nil
		},
		Decode: decodeAck,
	}, input)
}

func validateUpload(input UploadFileInput) []string {
	var details []string
	if strings.TrimSpace(input.FileName) == "" {
		details = append(details, "fileName is required")
	}
	if strings.TrimSpace(input.ContentType) == "" {
		details = append(details, "contentType is required")
	}
	if len(input.Data) == 0 {
		details = append(details, "data is required")
	}
	return details
}

func uploadValidationError(details []string) error {
	fieldErrors := make([]goerrors.FieldError, 0, len(details))
	for _, detail := range details {
		field, _, _ := strings.Cut(detail, " ")
		fieldErrors = append(fieldErrors, goerrors.FieldError{
			Field:   field,
			Message: detail,
		})
	}
	return goerrors.NewValidation("uploads: validation failed", fieldErrors...).
		WithCode(http.StatusBadRequest).
		WithTextCode(core.GatewayErrorBadInput).
		WithSeverity(goerrors.SeverityError)
}

func decodeFile(result core.BackendResult) (core.Envelope[File], error) {
	wire, err := resolver.DecodeJSON[fileResponse](result)
	if err != nil {
		return core.Envelope[File]{}, err
	}
	if wire.File == nil {
		return core.StatusOnly[File](wire.Status, wire.Message), nil
	}
	return core.OK(wire.Status, wire.Message, wire.File.toPublic()), nil
}

func decodeFileList(result core.BackendResult) (core.Envelope[FileList], error) {
	wire, err := resolver.DecodeJSON[fileListResponse](result)
	if err != nil {
		return core.Envelope[FileList]{}, err
	}
	list := FileList{
		Files:      make([]File, 0, len(wire.Files)),
		Pagination: wire.Pagination.Meta(),
	}
	for _, file := range wire.Files {
		list.Files = append(list.Files, file.toPublic())
	}
	return core.OK(wire.Status, wire.Message, list), nil
}

func decodeAck(result core.BackendResult) (core.Envelope[core.Ack], error) {
	wire, err := resolver.DecodeJSON[ackResponse](result)
	if err != nil {
		return core.Envelope[core.Ack]{}, err
	}
	return core.StatusOnly[core.Ack](wire.Status, wire.Message), nil
}
