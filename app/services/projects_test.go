package services

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignProject_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, mentor_id FROM teams WHERE id = $1`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "mentor_id"}).AddRow(7, 3))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT project_id FROM team_projects WHERE team_id = $1`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"project_id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO projects (title, description) VALUES ($1, $2) RETURNING id`)).
		WithArgs("Title", "Desc").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO team_projects (team_id, project_id) VALUES ($1, $2)`)).
		WithArgs(7, 11).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	projectID, err := AssignProject(db, facultyCtx(3), 7, "Title", "Desc")
	require.NoError(t, err)
	assert.Equal(t, 11, projectID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A second assignment to the same team must fail without touching the store.
func TestAssignProject_TeamAlreadyHasProject(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, mentor_id FROM teams WHERE id = $1`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "mentor_id"}).AddRow(7, 3))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT project_id FROM team_projects WHERE team_id = $1`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"project_id"}).AddRow(11))

	_, err = AssignProject(db, facultyCtx(3), 7, "Title2", "Desc2")
	re, ok := AsRuleError(err)
	require.True(t, ok)
	assert.Equal(t, KindTeamAlreadyHasProject, re.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignProject_MissingTitle(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = AssignProject(db, facultyCtx(3), 7, "", "Desc")
	re, ok := AsRuleError(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalidInput, re.Kind)
}

func TestReassignProject_ReplacesLink(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, mentor_id FROM teams WHERE id = $1`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "mentor_id"}).AddRow(7, nil))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1)`)).
		WithArgs(12).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM team_projects WHERE team_id = $1 OR project_id = $2`)).
		WithArgs(7, 12).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO team_projects (team_id, project_id) VALUES ($1, $2)`)).
		WithArgs(7, 12).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = ReassignProject(db, adminCtx(), 7, 12)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReassignProject_AdminOnly(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = ReassignProject(db, facultyCtx(3), 7, 12)
	re, ok := AsRuleError(err)
	require.True(t, ok)
	assert.Equal(t, KindForbidden, re.Kind)
}
