// Package errors provides structured error types shared across podbox commands.
//
// Every failure surfaced to the user carries an ErrorCode matching the tool's
// error taxonomy (template resolution, override validation, cluster submission,
// readiness timeout, attach, and per-pod delete failures). Codes allow callers
// to branch on failure class without string matching, while the wrapped cause
// keeps the underlying API message intact for the terminal output.
//
// Usage:
//
//	if err := cluster.Create(ctx, pod); err != nil {
//	    return apperrors.Wrap(apperrors.ErrCodeSubmission, "cluster rejected manifest", err)
//	}
//
// Classification:
//
//	switch apperrors.CodeOf(err) {
//	case apperrors.ErrCodeTemplateNotFound:
//	    // abort before any API call
//	case apperrors.ErrCodeTimeout:
//	    // pod is left running for manual inspection
//	}
package errors
