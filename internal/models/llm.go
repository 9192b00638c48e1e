package models

import "time"

// LLM is a language model owned by a company
type LLM struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Specialization string    `json:"specialization" db:"specialization"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	CompanyID      int64     `json:"companyId" db:"company_id"`
}

// LLMRequest is the JSON body for LLM create and update
// swagger:model LLMRequest
type LLMRequest struct {
	ID             int64  `json:"id"`
	Name           string `json:"name" validate:"required,max=255"`
	Specialization string `json:"specialization" validate:"required,max=255"`
}
