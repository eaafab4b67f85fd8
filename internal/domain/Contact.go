package domain

import "time"

type Contact struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	JobTitle  string `json:"job_title"`

	Source   string `json:"source"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
	Score    int    `json:"score"`

	Tags  []string `json:"tags"`
	Notes string   `json:"notes"`

	// Preenchidos apenas pela integração de IA, somente leitura na API
	AIPersona         string `json:"ai_persona"`
	AIActivitySummary string `json:"ai_activity_summary"`
	AINextAction      string `json:"ai_next_action"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c Contact) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	default:
		return c.FirstName + " " + c.LastName
	}
}

type DuplicateGroup struct {
	Reason     string    `json:"reason"` // email, name ou domain
	MatchValue string    `json:"match_value"`
	Similarity int       `json:"similarity"`
	Contacts   []Contact `json:"contacts"`
}

type MergeRequest struct {
	ContactIDs []string `json:"contact_ids"`
	MasterID   string   `json:"master_id"`
}

type MergeResult struct {
	Merged     Contact  `json:"merged"`
	RemovedIDs []string `json:"removed_ids"`
}
