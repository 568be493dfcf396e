package services

import (
	"database/sql"

	"capstone-management/app/database"
	"capstone-management/app/models"
)

// AssignProject creates a project and links it to a team that does not have
// one yet. Project row and link commit together; a concurrent assignment
// loses on the unique constraint and maps to the same rule error as the
// precondition check.
func AssignProject(db *sql.DB, actx models.AuthContext, teamID int, title, description string) (int, error) {
	if title == "" {
		return 0, invalidInput("project title is required")
	}
	if err := canActOnTeam(db, actx, teamID); err != nil {
		return 0, err
	}

	if _, err := database.GetTeamByID(db, teamID); err != nil {
		if err == sql.ErrNoRows {
			return 0, notFound("team %d does not exist", teamID)
		}
		return 0, storeError(err)
	}

	existing, err := database.ProjectOf(db, teamID)
	if err != nil {
		return 0, storeError(err)
	}
	if existing != nil {
		return 0, ruleError(KindTeamAlreadyHasProject, "team %d already has a project assigned", teamID)
	}

	projectID, err := database.CreateProjectForTeam(db, teamID, title, description)
	if err != nil {
		if isUniqueViolation(err, "") {
			return 0, ruleError(KindTeamAlreadyHasProject, "team %d already has a project assigned", teamID)
		}
		return 0, storeError(err)
	}
	return projectID, nil
}

// ReassignProject links an existing project to a team, replacing whatever
// link either side had. This is the explicit override path; AssignProject
// stays strict. Admin only.
func ReassignProject(db *sql.DB, actx models.AuthContext, teamID, projectID int) error {
	if !actx.IsAdmin() {
		return forbidden("only admins can reassign projects")
	}

	if _, err := database.GetTeamByID(db, teamID); err != nil {
		if err == sql.ErrNoRows {
			return notFound("team %d does not exist", teamID)
		}
		return storeError(err)
	}
	exists, err := database.ProjectExists(db, projectID)
	if err != nil {
		return storeError(err)
	}
	if !exists {
		return notFound("project %d does not exist", projectID)
	}

	if err := database.ReplaceTeamProject(db, teamID, projectID); err != nil {
		return storeError(err)
	}
	return nil
}

// canActOnTeam allows admins, faculty, and members of the team itself.
func canActOnTeam(db *sql.DB, actx models.AuthContext, teamID int) error {
	if actx.IsFaculty() {
		return nil
	}
	if actx.SRN != nil {
		current, err := database.TeamOf(db, *actx.SRN)
		if err != nil {
			return storeError(err)
		}
		if current != nil && *current == teamID {
			return nil
		}
	}
	return forbidden("not a member of this team")
}
