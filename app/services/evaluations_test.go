package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectEvaluationPreamble(mock sqlmock.Sqlmock, srn string, reviewID, rubricID int, maxMarks float64) {
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT srn, name, email, sem, created_at FROM students WHERE srn = $1`)).
		WithArgs(srn).
		WillReturnRows(sqlmock.NewRows([]string{"srn", "name", "email", "sem", "created_at"}).
			AddRow(srn, "Student", srn+"@test.edu", 7, time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM reviews WHERE id = $1)`)).
		WithArgs(reviewID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT max_marks FROM rubrics WHERE id = $1`)).
		WithArgs(rubricID).
		WillReturnRows(sqlmock.NewRows([]string{"max_marks"}).AddRow(maxMarks))
}

func TestSubmitEvaluation_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectEvaluationPreamble(mock, "S1", 21, 2, 10)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT tp.project_id`)).
		WithArgs("S1").
		WillReturnRows(sqlmock.NewRows([]string{"project_id"}).AddRow(11))
	mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (srn, rubric_id, review_id)`)).
		WithArgs(3, "S1", 2, 11, 21, 8.0, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = SubmitEvaluation(db, facultyCtx(3), 3, "S1", 2, 21, 8, nil)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Resubmission runs through the same upsert; the conflict clause overwrites
// marks and comments in place, so one row ends up holding the second call's
// marks.
func TestSubmitEvaluation_OverwriteOnResubmit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for _, marks := range []float64{8, 9} {
		expectEvaluationPreamble(mock, "S1", 21, 2, 10)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT tp.project_id`)).
			WithArgs("S1").
			WillReturnRows(sqlmock.NewRows([]string{"project_id"}).AddRow(11))
		mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (srn, rubric_id, review_id)`)).
			WithArgs(3, "S1", 2, 11, 21, marks, nil).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	require.NoError(t, SubmitEvaluation(db, facultyCtx(3), 3, "S1", 2, 21, 8, nil))
	require.NoError(t, SubmitEvaluation(db, facultyCtx(3), 3, "S1", 2, 21, 9, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitEvaluation_InvalidMarks(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectEvaluationPreamble(mock, "S1", 21, 2, 10)

	err = SubmitEvaluation(db, facultyCtx(3), 3, "S1", 2, 21, 12.5, nil)
	re, ok := AsRuleError(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalidMarks, re.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitEvaluation_NegativeMarks(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectEvaluationPreamble(mock, "S1", 21, 2, 10)

	err = SubmitEvaluation(db, facultyCtx(3), 3, "S1", 2, 21, -1, nil)
	re, ok := AsRuleError(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalidMarks, re.Kind)
}

// A student whose team has no project cannot be evaluated; the failure is
// explicit, not a silent no-op.
func TestSubmitEvaluation_NoProjectAssigned(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectEvaluationPreamble(mock, "S1", 21, 2, 10)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT tp.project_id`)).
		WithArgs("S1").
		WillReturnRows(sqlmock.NewRows([]string{"project_id"}))

	err = SubmitEvaluation(db, facultyCtx(3), 3, "S1", 2, 21, 8, nil)
	re, ok := AsRuleError(err)
	require.True(t, ok)
	assert.Equal(t, KindNoProjectAssigned, re.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitEvaluation_OnlyAsSelf(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Faculty 3 submitting as faculty 4.
	err = SubmitEvaluation(db, facultyCtx(3), 4, "S1", 2, 21, 8, nil)
	re, ok := AsRuleError(err)
	require.True(t, ok)
	assert.Equal(t, KindForbidden, re.Kind)
}
