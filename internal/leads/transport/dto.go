package transport

import (
	"time"
)

// Request DTOs

// CreateLeadRequest is the public lead submission. An empty website means
// none was supplied.
type CreateLeadRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Website string `json:"website,omitempty" validate:"omitempty,url"`
}

// ListLeadsRequest holds the dashboard listing query. Unknown values fall
// back to the defaults: all leads, sorted by score, descending.
type ListLeadsRequest struct {
	Qualified string `form:"qualified"`
	Sort      string `form:"sort"`
	Order     string `form:"order"`
}

// Response DTOs

type LeadSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Score     int    `json:"score"`
	Qualified bool   `json:"qualified"`
}

type CreateLeadResponse struct {
	Success bool        `json:"success"`
	Lead    LeadSummary `json:"lead"`
}

type LeadResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Website     *string   `json:"website"`
	CompanyName *string   `json:"companyName"`
	CompanySize *string   `json:"companySize"`
	Industry    *string   `json:"industry"`
	Country     *string   `json:"country"`
	Score       int       `json:"score"`
	Qualified   bool      `json:"qualified"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type LeadsListResponse struct {
	Leads []LeadResponse `json:"leads"`
}
