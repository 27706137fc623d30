package reporter

import (
	"sync"

	"github.com/temporalkit/ltlf/ast"
)

// ErrorReporter is responsible for reporting the given error. Parsing a
// formula is fail-fast, so the reporter is invoked at most once per parse.
// If the reporter returns a non-nil error, that error is what the parse call
// returns; if it returns nil, the parse still aborts, and the parse call
// returns ErrInvalidFormula.
type ErrorReporter func(err ErrorWithPos) error

// Reporter is a destination for errors encountered while parsing.
type Reporter interface {
	Error(ErrorWithPos) error
}

// NewReporter creates a new reporter that invokes the given function on each
// error.
func NewReporter(errs ErrorReporter) Reporter {
	return reporterFunc{errs: errs}
}

type reporterFunc struct {
	errs ErrorReporter
}

func (r reporterFunc) Error(err ErrorWithPos) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

// Handler is used by the lexer and parser to handle errors. It remembers the
// first error reported so that callers can query the final disposition of a
// parse attempt.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

// NewHandler creates a new Handler that reports errors to the given
// reporter. If rep is nil, a default reporter is used, which results in the
// first reported error being returned as-is.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil)
	}
	return &Handler{reporter: rep}
}

// HandleErrorf handles an error with the given source position, creating the
// error using the given message format and arguments.
func (h *Handler) HandleErrorf(pos ast.SourcePos, format string, args ...interface{}) error {
	return h.HandleError(Errorf(pos, format, args...))
}

// HandleError handles the given error. If the handler has already seen an
// error, that first error is returned unchanged. Otherwise the error is sent
// to the handler's reporter and the reporter's disposition is recorded and
// returned.
func (h *Handler) HandleError(err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	if ewp, ok := err.(ErrorWithPos); ok {
		h.errsReported = true
		err = h.reporter.Error(ewp)
	}
	h.err = err
	return err
}

// Error returns the handler result. If any error was reported but the
// reporter swallowed it (returned nil), ErrInvalidFormula is returned to
// signal that the parse did not produce a valid formula.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidFormula
	}
	return h.err
}

// ReporterError returns the error returned by the handler's reporter, or nil
// if no error has been reported yet.
func (h *Handler) ReporterError() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}
