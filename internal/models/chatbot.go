package models

import "time"

// Chatbot is a chatbot owned by a company
type Chatbot struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	CompanyID int64     `json:"companyId" db:"company_id"`
}

// ChatbotRequest is the JSON body for chatbot create and update
// swagger:model ChatbotRequest
type ChatbotRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required,max=255"`
}
