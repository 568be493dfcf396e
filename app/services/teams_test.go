package services

import (
	"regexp"
	"testing"
	"time"

	"capstone-management/app/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminCtx() models.AuthContext {
	return models.AuthContext{UserID: "u-admin", Role: models.RoleAdmin}
}

func studentCtx(srn string) models.AuthContext {
	return models.AuthContext{UserID: "u-" + srn, Role: models.RoleStudent, SRN: &srn}
}

func facultyCtx(id int) models.AuthContext {
	return models.AuthContext{UserID: "u-fac", Role: models.RoleFaculty, FacultyID: &id}
}

func TestFormTeam_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM students WHERE srn = ANY($1)`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT srn FROM team_students WHERE srn = ANY($1)`)).
		WillReturnRows(sqlmock.NewRows([]string{"srn"}))
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO teams (mentor_id) VALUES ($1) RETURNING id`)).
		WithArgs(nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO team_students (team_id, srn) VALUES ($1, $2)`)).
		WithArgs(7, "S1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO team_students (team_id, srn) VALUES ($1, $2)`)).
		WithArgs(7, "S2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	teamID, err := FormTeam(db, adminCtx(), []string{"S1", "S2"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, teamID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFormTeam_AlreadyTeamed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM students WHERE srn = ANY($1)`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT srn FROM team_students WHERE srn = ANY($1)`)).
		WillReturnRows(sqlmock.NewRows([]string{"srn"}).AddRow("S1"))

	_, err = FormTeam(db, adminCtx(), []string{"S1", "S3"}, nil)
	re, ok := AsRuleError(err)
	require.True(t, ok)
	assert.Equal(t, KindAlreadyTeamed, re.Kind)
	assert.Equal(t, []string{"S1"}, re.SRNs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFormTeam_InputValidation(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cases := []struct {
		name string
		srns []string
	}{
		{"empty", nil},
		{"too many", []string{"S1", "S2", "S3", "S4", "S5"}},
		{"duplicate", []string{"S1", "S1"}},
		{"blank srn", []string{"S1", ""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FormTeam(db, adminCtx(), tc.srns, nil)
			re, ok := AsRuleError(err)
			require.True(t, ok)
			assert.Equal(t, KindInvalidInput, re.Kind)
		})
	}
}

func TestFormTeam_StudentMustBeMember(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = FormTeam(db, studentCtx("S9"), []string{"S1", "S2"}, nil)
	re, ok := AsRuleError(err)
	require.True(t, ok)
	assert.Equal(t, KindForbidden, re.Kind)
}

func TestJoinTeam_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT srn, name, email, sem, created_at FROM students WHERE srn = $1`)).
		WithArgs("S3").
		WillReturnRows(sqlmock.NewRows([]string{"srn", "name", "email", "sem", "created_at"}).
			AddRow("S3", "Student Three", "s3@test.edu", 7, time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, mentor_id FROM teams WHERE id = $1`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "mentor_id"}).AddRow(7, nil))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO team_students (team_id, srn)`)).
		WithArgs(7, "S3", models.MaxTeamSize).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = JoinTeam(db, studentCtx("S3"), "S3", 7)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJoinTeam_TeamFull(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT srn, name, email, sem, created_at FROM students WHERE srn = $1`)).
		WithArgs("S5").
		WillReturnRows(sqlmock.NewRows([]string{"srn", "name", "email", "sem", "created_at"}).
			AddRow("S5", "Student Five", "s5@test.edu", 7, time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, mentor_id FROM teams WHERE id = $1`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "mentor_id"}).AddRow(7, nil))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO team_students (team_id, srn)`)).
		WithArgs(7, "S5", models.MaxTeamSize).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT team_id FROM team_students WHERE srn = $1`)).
		WithArgs("S5").
		WillReturnRows(sqlmock.NewRows([]string{"team_id"}))

	err = JoinTeam(db, studentCtx("S5"), "S5", 7)
	re, ok := AsRuleError(err)
	require.True(t, ok)
	assert.Equal(t, KindTeamFull, re.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJoinTeam_AlreadyTeamed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT srn, name, email, sem, created_at FROM students WHERE srn = $1`)).
		WithArgs("S1").
		WillReturnRows(sqlmock.NewRows([]string{"srn", "name", "email", "sem", "created_at"}).
			AddRow("S1", "Student One", "s1@test.edu", 7, time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, mentor_id FROM teams WHERE id = $1`)).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"id", "mentor_id"}).AddRow(9, nil))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO team_students (team_id, srn)`)).
		WithArgs(9, "S1", models.MaxTeamSize).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT team_id FROM team_students WHERE srn = $1`)).
		WithArgs("S1").
		WillReturnRows(sqlmock.NewRows([]string{"team_id"}).AddRow(7))

	err = JoinTeam(db, studentCtx("S1"), "S1", 9)
	re, ok := AsRuleError(err)
	require.True(t, ok)
	assert.Equal(t, KindAlreadyTeamed, re.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJoinTeam_Forbidden(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = JoinTeam(db, studentCtx("S2"), "S1", 7)
	re, ok := AsRuleError(err)
	require.True(t, ok)
	assert.Equal(t, KindForbidden, re.Kind)
}

func TestClaimMentor_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM faculty WHERE id = ANY($1)`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE teams SET mentor_id = $2 WHERE id = $1 AND mentor_id IS NULL`)).
		WithArgs(7, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = ClaimMentor(db, facultyCtx(3), 7, 3)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Of two simultaneous claims, the loser's conditional update matches zero
// rows and must come back AlreadyMentored.
func TestClaimMentor_LosesRace(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM faculty WHERE id = ANY($1)`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE teams SET mentor_id = $2 WHERE id = $1 AND mentor_id IS NULL`)).
		WithArgs(7, 4).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, mentor_id FROM teams WHERE id = $1`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "mentor_id"}).AddRow(7, 3))

	err = ClaimMentor(db, facultyCtx(4), 7, 4)
	re, ok := AsRuleError(err)
	require.True(t, ok)
	assert.Equal(t, KindAlreadyMentored, re.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimMentor_StudentForbidden(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = ClaimMentor(db, studentCtx("S1"), 7, 3)
	re, ok := AsRuleError(err)
	require.True(t, ok)
	assert.Equal(t, KindForbidden, re.Kind)
}
