package domain

import "time"

// ContactHandle is the phone-like or email string that keys an account within
// one role's collection. Exactly one of the two forms is used per lookup.
type ContactHandle struct {
	WhatsAppNumber string
	Email          string
}

// IsEmail reports whether the populated handle form is an email address.
func (h ContactHandle) IsEmail() bool { return h.Email != "" }

// Value returns whichever form is populated.
func (h ContactHandle) Value() string {
	if h.Email != "" {
		return h.Email
	}
	return h.WhatsAppNumber
}

// IsZero reports whether neither form is populated.
func (h ContactHandle) IsZero() bool { return h.WhatsAppNumber == "" && h.Email == "" }

// Seeker is a job-seeker account.
type Seeker struct {
	ID              string
	WhatsAppNumber  string
	Email           string
	FullName        string
	Skills          []string
	ExperienceYears int
	CurrentCTC      int
	ExpectedCTC     int
	ResumeURL       string
	Bio             string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Provider is a job-provider (company) account. Its contact handle columns
// carry company-specific names in storage.
type Provider struct {
	ID                    string
	CompanyWhatsAppNumber string
	CompanyEmail          string
	CompanyName           string
	HRName                string
	HRDesignation         string
	Website               string
	About                 string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Admin is an administrative account. Admins are never created through the
// public profile surface; they are seeded out of band.
type Admin struct {
	ID             string
	WhatsAppNumber string
	Email          string
	FullName       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Account is the role-tagged union returned by identity resolution. Exactly
// one of the variant pointers is set, matching Role.
type Account struct {
	Role     Role
	Seeker   *Seeker
	Provider *Provider
	Admin    *Admin
}

// ID returns the unique identifier of whichever variant is set.
func (a Account) ID() string {
	switch a.Role {
	case RoleSeeker:
		return a.Seeker.ID
	case RoleProvider:
		return a.Provider.ID
	case RoleAdmin:
		return a.Admin.ID
	}
	return ""
}
