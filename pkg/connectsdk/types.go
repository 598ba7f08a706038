// Package connectsdk provides a typed Go client for the Job Connector REST
// API along with the wire types the server itself marshals. Keeping both
// sides on one set of types is what guarantees payload compatibility.
package connectsdk

import "time"

// ============================================================================
// Auth
// ============================================================================

// RequestOTPRequest asks for a challenge code. Exactly one of WhatsAppNumber
// or Email must be set.
type RequestOTPRequest struct {
	WhatsAppNumber string `json:"whatsappNumber,omitempty"`
	Email          string `json:"email,omitempty"`
	Role           string `json:"role"`
}

// RequestOTPResponse acknowledges dispatch. OTP is populated only when the
// server runs in development mode.
type RequestOTPResponse struct {
	Message string `json:"message"`
	OTP     string `json:"otp,omitempty"`
}

// VerifyOTPRequest submits a code (or sets Bypass to skip the code check and
// only ask whether the account exists).
type VerifyOTPRequest struct {
	WhatsAppNumber string `json:"whatsappNumber,omitempty"`
	Email          string `json:"email,omitempty"`
	OTP            string `json:"otp,omitempty"`
	Role           string `json:"role"`
	Bypass         bool   `json:"bypass,omitempty"`
}

// VerifyOTPResponse reports the verification outcome. User carries the
// role-specific account document when one exists.
type VerifyOTPResponse struct {
	Message   string `json:"message"`
	Status    string `json:"status,omitempty"` // "new" | "existing"
	IsNewUser bool   `json:"isNewUser"`
	User      any    `json:"user,omitempty"`
}

// ============================================================================
// Accounts
// ============================================================================

type Seeker struct {
	ID              string    `json:"id"`
	WhatsAppNumber  string    `json:"whatsappNumber,omitempty"`
	Email           string    `json:"email,omitempty"`
	FullName        string    `json:"fullName"`
	Skills          []string  `json:"skills"`
	ExperienceYears int       `json:"experience"`
	CurrentCTC      int       `json:"currentCtc"`
	ExpectedCTC     int       `json:"expectedCtc"`
	ResumeURL       string    `json:"resumeUrl,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type Provider struct {
	ID                    string    `json:"id"`
	CompanyWhatsAppNumber string    `json:"companyWhatsappNumber,omitempty"`
	CompanyEmail          string    `json:"companyEmail,omitempty"`
	CompanyName           string    `json:"companyName"`
	HRName                string    `json:"hrName"`
	HRDesignation         string    `json:"hrDesignation,omitempty"`
	Website               string    `json:"website,omitempty"`
	About                 string    `json:"about,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

type Admin struct {
	ID             string    `json:"id"`
	WhatsAppNumber string    `json:"whatsappNumber,omitempty"`
	Email          string    `json:"email,omitempty"`
	FullName       string    `json:"fullName"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CreateSeekerRequest creates a seeker profile. Numeric fields are strings on
// the wire; the frontends submit raw form values.
type CreateSeekerRequest struct {
	WhatsAppNumber  string `json:"whatsappNumber,omitempty"`
	Email           string `json:"email,omitempty"`
	FullName        string `json:"fullName"`
	Skills          string `json:"skills,omitempty"`
	ExperienceYears string `json:"experience,omitempty"`
	CurrentCTC      string `json:"currentCtc,omitempty"`
	ExpectedCTC     string `json:"expectedCtc,omitempty"`
	ResumeURL       string `json:"resumeUrl,omitempty"`
	Bio             string `json:"bio,omitempty"`
}

type CreateSeekerResponse struct {
	Message string `json:"message"`
	Seeker  Seeker `json:"seeker"`
}

type CreateProviderRequest struct {
	WhatsAppNumber string `json:"whatsappNumber,omitempty"`
	Email          string `json:"email,omitempty"`
	CompanyName    string `json:"companyName"`
	HRName         string `json:"hrName"`
	HRDesignation  string `json:"hrDesignation,omitempty"`
	Website        string `json:"website,omitempty"`
	About          string `json:"about,omitempty"`
}

type CreateProviderResponse struct {
	Message  string   `json:"message"`
	Provider Provider `json:"provider"`
}

// ============================================================================
// Jobs
// ============================================================================

type PostJobRequest struct {
	ProviderID         string `json:"providerId"`
	Title              string `json:"title"`
	Description        string `json:"description,omitempty"`
	Location           string `json:"location,omitempty"`
	Skills             string `json:"skills,omitempty"`
	MinExperienceYears string `json:"minExperience,omitempty"`
	SalaryMin          string `json:"salaryMin,omitempty"`
	SalaryMax          string `json:"salaryMax,omitempty"`
}

type Job struct {
	ID                 string    `json:"id"`
	ProviderID         string    `json:"providerId"`
	Title              string    `json:"title"`
	Description        string    `json:"description,omitempty"`
	Location           string    `json:"location,omitempty"`
	Skills             []string  `json:"skills"`
	MinExperienceYears int       `json:"minExperience"`
	SalaryMin          int       `json:"salaryMin"`
	SalaryMax          int       `json:"salaryMax"`
	Active             bool      `json:"active"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type PostJobResponse struct {
	Message string `json:"message"`
	Job     Job    `json:"job"`
}

type ListJobsResponse struct {
	Jobs []Job `json:"jobs"`
}

// ============================================================================
// System
// ============================================================================

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthChecks struct {
	Database string `json:"database,omitempty"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
