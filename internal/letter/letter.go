// Package letter drafts cover letters from a job description and candidate
// text. Two generators exist: the built-in template generator and a
// Gemini-backed one. Generation is allowed to be random; scoring never is,
// so generated letters are always re-scored by the deterministic pipeline.
package letter

import "context"

// Request carries the inputs of a generation call.
type Request struct {
	JobDescription string
	CandidateText  string
	Company        string
}

// Generator produces a cover letter for the request.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}
