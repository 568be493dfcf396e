package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectivePanel(t *testing.T) {
	mentor := 3

	// Mentor is merged in and duplicates collapse.
	assert.Equal(t, []int{1, 2, 3}, effectivePanel([]int{1, 2, 1}, &mentor))
	// Mentor already requested stays in place.
	assert.Equal(t, []int{3, 5}, effectivePanel([]int{3, 5}, &mentor))
	// No mentor, panel as requested.
	assert.Equal(t, []int{4}, effectivePanel([]int{4}, nil))
	// Nothing at all.
	assert.Empty(t, effectivePanel(nil, nil))
}

func TestScheduleReview_MentorAutoIncluded(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT mentor_id FROM teams WHERE id = $1`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"mentor_id"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM review_types WHERE id = $1)`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM faculty WHERE id = ANY($1)`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO reviews (review_type_id, team_id, review_date, venue)`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO review_panels (review_id, faculty_id) VALUES ($1, $2)`)).
		WithArgs(21, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO review_panels (review_id, faculty_id) VALUES ($1, $2)`)).
		WithArgs(21, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	reviewID, err := ScheduleReview(db, facultyCtx(5), 7, 1, date, nil, []int{5})
	require.NoError(t, err)
	assert.Equal(t, 21, reviewID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// No panelists requested and no mentor on the team: the review must be
// rejected rather than created with an empty panel.
func TestScheduleReview_EmptyPanel(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT mentor_id FROM teams WHERE id = $1`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"mentor_id"}).AddRow(nil))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM review_types WHERE id = $1)`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	_, err = ScheduleReview(db, facultyCtx(5), 7, 1,
		time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), nil, nil)
	re, ok := AsRuleError(err)
	require.True(t, ok)
	assert.Equal(t, KindEmptyPanel, re.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleReview_TeamNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT mentor_id FROM teams WHERE id = $1`)).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"mentor_id"}))

	_, err = ScheduleReview(db, facultyCtx(5), 99, 1,
		time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), nil, []int{5})
	re, ok := AsRuleError(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, re.Kind)
}

func TestScheduleReview_StudentForbidden(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = ScheduleReview(db, studentCtx("S1"), 7, 1,
		time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), nil, []int{5})
	re, ok := AsRuleError(err)
	require.True(t, ok)
	assert.Equal(t, KindForbidden, re.Kind)
}
