package services

import (
	"database/sql"
	"time"

	"capstone-management/app/database"
	"capstone-management/app/models"
)

// LogMeeting records a mentor meeting with a team. Only the team's current
// mentor can log meetings; the check lives here rather than in a store
// trigger so there is a single source of truth.
func LogMeeting(db *sql.DB, actx models.AuthContext, facultyID, teamID int,
	at time.Time, feedback *string) (int, error) {

	if !actx.IsFaculty() {
		return 0, forbidden("only faculty can log meetings")
	}
	if !actx.IsAdmin() && (actx.FacultyID == nil || *actx.FacultyID != facultyID) {
		return 0, forbidden("faculty can only log their own meetings")
	}
	if at.IsZero() {
		return 0, invalidInput("meeting time is required")
	}

	mentorID, err := database.MentorOf(db, teamID)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, notFound("team %d does not exist", teamID)
		}
		return 0, storeError(err)
	}
	if mentorID == nil || *mentorID != facultyID {
		return 0, ruleError(KindNotMentor, "faculty %d is not the mentor of team %d", facultyID, teamID)
	}

	meetingID, err := database.InsertMeeting(db, facultyID, teamID, at, feedback)
	if err != nil {
		return 0, storeError(err)
	}
	return meetingID, nil
}
