package services

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreError_ClassifiesConstraintViolations(t *testing.T) {
	pqErr := &pq.Error{Code: "23514", Message: "marks out of range"}

	err := storeError(pqErr)
	re, ok := AsRuleError(err)
	require.True(t, ok)
	assert.Equal(t, KindConstraintViolated, re.Kind)
	assert.ErrorIs(t, err, pqErr)
}

func TestStoreError_ConnectionFailureIsStoreUnavailable(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	err := storeError(cause)
	re, ok := AsRuleError(err)
	require.True(t, ok)
	assert.Equal(t, KindStoreUnavailable, re.Kind)
	assert.ErrorIs(t, err, cause)
}

func TestStoreError_RuleErrorsPassThrough(t *testing.T) {
	original := alreadyTeamed([]string{"S1"})

	err := storeError(original)
	re, ok := AsRuleError(err)
	require.True(t, ok)
	assert.Same(t, original, re)
}

func TestIsUniqueViolation(t *testing.T) {
	unique := &pq.Error{Code: "23505", Constraint: "team_students_srn_key"}

	assert.True(t, isUniqueViolation(unique, ""))
	assert.True(t, isUniqueViolation(unique, "team_students_srn_key"))
	assert.False(t, isUniqueViolation(unique, "other_constraint"))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}, ""))
	assert.False(t, isUniqueViolation(errors.New("plain"), ""))
}
