package core

import (
	"context"
	"sort"
	"strings"
	"time"

	glog "github.com/goliatone/go-logger/glog"
)

// ObserveOperation records one resolver invocation: a structured log line,
// a counter and a duration histogram. Failures log the error server-side
// only; the public envelope never carries it.
func ObserveOperation(
	ctx context.Context,
	logger Logger,
	metrics MetricsRecorder,
	startedAt time.Time,
	domain Domain,
	operation string,
	err error,
	fields map[string]any,
) {
	operation = normalizeOperation(operation)
	if operation == "" {
		operation = "unknown"
	}
	status := "success"
	if err != nil {
		status = "failure"
	}

	contextFields := cloneFields(fields)
	contextFields["domain"] = string(domain)
	contextFields["operation"] = operation
	contextFields["status"] = status
	contextFields["duration_ms"] = time.Since(startedAt).Milliseconds()
	if err != nil {
		contextFields["error"] = err.Error()
	}

	tags := map[string]string{
		"domain":    string(domain),
		"operation": operation,
		"status":    status,
	}
	if metrics != nil {
		metrics.IncCounter(ctx, "gateway."+operation+".total", 1, cloneTags(tags))
		metrics.ObserveHistogram(ctx, "gateway."+operation+".duration_ms",
			float64(time.Since(startedAt).Milliseconds()), cloneTags(tags))
	}

	if logger == nil {
		return
	}
	entry := logger
	if ctx != nil {
		entry = entry.WithContext(ctx)
	}
	if fieldsLogger, ok := entry.(FieldsLogger); ok {
		entry = fieldsLogger.WithFields(cloneFields(contextFields))
	}
	args := flattenFields(contextFields)
	if err != nil {
		entry.Error(operation+" failed", args...)
		return
	}
	entry.Info(operation+" completed", args...)
}

// ResolveLogger applies the deterministic provider > logger > nop precedence.
func ResolveLogger(name string, provider LoggerProvider, logger Logger) (LoggerProvider, Logger) {
	resolvedProvider, resolved := glog.Resolve(name, provider, logger)
	resolved = glog.Ensure(resolved)
	if resolvedProvider != nil {
		if named := resolvedProvider.GetLogger(name); named != nil {
			resolved = glog.Ensure(named)
		}
	}
	return resolvedProvider, resolved
}

func cloneFields(fields map[string]any) map[string]any {
	if len(fields) == 0 {
		return map[string]any{}
	}
	copied := make(map[string]any, len(fields))
	for key, value := range fields {
		copied[key] = value
	}
	return copied
}

func flattenFields(fields map[string]any) []any {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	args := make([]any, 0, len(keys)*2)
	for _, key := range keys {
		args = append(args, key, fields[key])
	}
	return args
}

func normalizeOperation(operation string) string {
	operation = strings.TrimSpace(strings.ToLower(operation))
	operation = strings.ReplaceAll(operation, " ", "_")
	operation = strings.ReplaceAll(operation, "-", "_")
	return operation
}
