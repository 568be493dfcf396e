package models

// MaxTeamSize caps team membership. Teams larger than this are never
// created or grown.
const MaxTeamSize = 4

// Team is a capstone team. MentorID is nil until a faculty member claims
// the team.
type Team struct {
	ID       int  `json:"id"`
	MentorID *int `json:"mentor_id"`
}

// TeamDetail is the roster view of a team: mentor and member names resolved.
type TeamDetail struct {
	TeamID     int      `json:"team_id"`
	MentorID   *int     `json:"mentor_id"`
	MentorName *string  `json:"mentor_name"`
	Members    []string `json:"members"`
}
