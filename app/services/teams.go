package services

import (
	"database/sql"

	"capstone-management/app/database"
	"capstone-management/app/models"
)

// FormTeam creates a new team from the given students, optionally with a
// mentor already attached. All SRNs must be distinct, unteamed, existing
// students; the team row and membership rows commit as one transaction.
func FormTeam(db *sql.DB, actx models.AuthContext, srns []string, mentorID *int) (int, error) {
	if len(srns) == 0 || len(srns) > models.MaxTeamSize {
		return 0, invalidInput("a team needs 1 to %d students", models.MaxTeamSize)
	}
	seen := make(map[string]bool, len(srns))
	for _, srn := range srns {
		if srn == "" {
			return 0, invalidInput("empty SRN")
		}
		if seen[srn] {
			return 0, invalidInput("duplicate SRN %s", srn)
		}
		seen[srn] = true
	}

	// Students may only form teams they are part of.
	if actx.IsStudent() {
		if actx.SRN == nil || !seen[*actx.SRN] {
			return 0, forbidden("students can only form a team that includes themselves")
		}
	} else if !actx.IsAdmin() {
		return 0, forbidden("only students and admins can form teams")
	}

	ok, err := database.StudentsExist(db, srns)
	if err != nil {
		return 0, storeError(err)
	}
	if !ok {
		return 0, notFound("one or more students do not exist")
	}

	if mentorID != nil {
		exists, err := database.FacultyExist(db, []int{*mentorID})
		if err != nil {
			return 0, storeError(err)
		}
		if !exists {
			return 0, notFound("faculty %d does not exist", *mentorID)
		}
	}

	teamed, err := database.AlreadyTeamedOf(db, srns)
	if err != nil {
		return 0, storeError(err)
	}
	if len(teamed) > 0 {
		return 0, alreadyTeamed(teamed)
	}

	teamID, err := database.CreateTeamWithMembers(db, mentorID, srns)
	if err != nil {
		// A concurrent formation can still win the unique constraint on
		// team_students.srn between the check and the insert.
		if isUniqueViolation(err, "") {
			return 0, alreadyTeamed(srns)
		}
		return 0, storeError(err)
	}
	return teamID, nil
}

// JoinTeam adds a student to an existing team. The size cap and the
// one-team-per-student rule are enforced inside the insert itself, so
// concurrent joins cannot overfill the team.
func JoinTeam(db *sql.DB, actx models.AuthContext, srn string, teamID int) error {
	if srn == "" {
		return invalidInput("empty SRN")
	}
	if !actx.ActsFor(srn) {
		return forbidden("students can only join a team as themselves")
	}

	if _, err := database.GetStudentBySRN(db, srn); err != nil {
		if err == sql.ErrNoRows {
			return notFound("student %s does not exist", srn)
		}
		return storeError(err)
	}
	if _, err := database.GetTeamByID(db, teamID); err != nil {
		if err == sql.ErrNoRows {
			return notFound("team %d does not exist", teamID)
		}
		return storeError(err)
	}

	n, err := database.AddMemberGuarded(db, teamID, srn)
	if err != nil {
		if isUniqueViolation(err, "") {
			return alreadyTeamed([]string{srn})
		}
		return storeError(err)
	}
	if n == 1 {
		return nil
	}

	// The guarded insert did nothing; find out which precondition failed.
	current, err := database.TeamOf(db, srn)
	if err != nil {
		return storeError(err)
	}
	if current != nil {
		return alreadyTeamed([]string{srn})
	}
	return ruleError(KindTeamFull, "team %d already has %d members", teamID, models.MaxTeamSize)
}

// ClaimMentor attaches a faculty member to an unmentored team. The update is
// a compare-and-set on mentor_id IS NULL, so of two simultaneous claims
// exactly one succeeds.
func ClaimMentor(db *sql.DB, actx models.AuthContext, teamID, facultyID int) error {
	if !actx.IsFaculty() {
		return forbidden("only faculty can mentor a team")
	}
	if !actx.IsAdmin() && (actx.FacultyID == nil || *actx.FacultyID != facultyID) {
		return forbidden("faculty can only claim mentorship for themselves")
	}

	exists, err := database.FacultyExist(db, []int{facultyID})
	if err != nil {
		return storeError(err)
	}
	if !exists {
		return notFound("faculty %d does not exist", facultyID)
	}

	n, err := database.ClaimMentorCAS(db, teamID, facultyID)
	if err != nil {
		return storeError(err)
	}
	if n == 1 {
		return nil
	}

	if _, err := database.GetTeamByID(db, teamID); err != nil {
		if err == sql.ErrNoRows {
			return notFound("team %d does not exist", teamID)
		}
		return storeError(err)
	}
	return ruleError(KindAlreadyMentored, "team %d already has a mentor", teamID)
}
