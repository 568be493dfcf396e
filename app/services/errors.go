package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// ErrorKind classifies a business-rule violation. Handlers switch on the kind
// to pick an HTTP status; the message is safe to show to users.
type ErrorKind string

const (
	KindAlreadyTeamed         ErrorKind = "already_teamed"
	KindTeamFull              ErrorKind = "team_full"
	KindAlreadyMentored       ErrorKind = "already_mentored"
	KindTeamAlreadyHasProject ErrorKind = "team_already_has_project"
	KindNoProjectAssigned     ErrorKind = "no_project_assigned"
	KindInvalidMarks          ErrorKind = "invalid_marks"
	KindEmptyPanel            ErrorKind = "empty_panel"
	KindNotMentor             ErrorKind = "not_mentor"
	KindNotFound              ErrorKind = "not_found"
	KindForbidden             ErrorKind = "forbidden"
	KindInvalidInput          ErrorKind = "invalid_input"
	KindConstraintViolated    ErrorKind = "constraint_violated"
	KindStoreUnavailable      ErrorKind = "store_unavailable"
)

// RuleError is a business-rule violation or classified store failure. Rule
// violations are expected outcomes and are always returned as values, never
// panics.
type RuleError struct {
	Kind    ErrorKind
	Message string
	SRNs    []string // populated for AlreadyTeamed
	Err     error    // underlying cause, if any
}

func (e *RuleError) Error() string {
	return e.Message
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

// AsRuleError unwraps err into a *RuleError if it is one.
func AsRuleError(err error) (*RuleError, bool) {
	var re *RuleError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

func alreadyTeamed(srns []string) *RuleError {
	return &RuleError{
		Kind:    KindAlreadyTeamed,
		Message: "students already in a team: " + strings.Join(srns, ", "),
		SRNs:    srns,
	}
}

func notFound(format string, args ...interface{}) *RuleError {
	return &RuleError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func forbidden(msg string) *RuleError {
	return &RuleError{Kind: KindForbidden, Message: msg}
}

func invalidInput(format string, args ...interface{}) *RuleError {
	return &RuleError{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func ruleError(kind ErrorKind, format string, args ...interface{}) *RuleError {
	return &RuleError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// storeError classifies an unexpected database error. Constraint violations
// reported by Postgres become ConstraintViolated; everything else (connection
// loss, timeouts) becomes StoreUnavailable. Rule errors pass through.
func storeError(err error) error {
	if _, ok := AsRuleError(err); ok {
		return err
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
		return &RuleError{
			Kind:    KindConstraintViolated,
			Message: "a database rule was violated: " + pqErr.Message,
			Err:     err,
		}
	}
	return &RuleError{Kind: KindStoreUnavailable, Message: "store unavailable", Err: err}
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation, optionally on a specific constraint name.
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}
