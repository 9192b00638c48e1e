package models

import "time"

// Company represents a company record; LLMs and Chatbots are only
// populated by the eager-fetch queries.
type Company struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	LLMs        []LLM     `json:"llms,omitempty" db:"-"`
	Chatbots    []Chatbot `json:"chatbots,omitempty" db:"-"`
}

// CompanyRequest is the JSON body for company create and update
// swagger:model CompanyRequest
type CompanyRequest struct {
	// ignored on create, must match the path id on update
	ID int64 `json:"id"`

	// required: true
	// example: Acme
	Name string `json:"name" validate:"required,max=255"`

	// example: Builds rockets
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// ToCompany converts the request into a Company row.
func (r CompanyRequest) ToCompany() *Company {
	return &Company{
		ID:          r.ID,
		Name:        r.Name,
		Description: normalizeDescription(r.Description),
	}
}

func normalizeDescription(d *string) *string {
	if d == nil || *d == "" {
		return nil
	}
	return d
}

// CompanyEvent is published to Kafka after a company write is committed.
type CompanyEvent struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	CompanyID int64  `json:"company_id"`
	Name      string `json:"name,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// Company event types.
const (
	CompanyCreated = "company.created"
	CompanyUpdated = "company.updated"
	CompanyDeleted = "company.deleted"
)
