package domain

import "time"

// Job is a posting owned by a provider account.
type Job struct {
	ID                 string
	ProviderID         string
	Title              string
	Description        string
	Location           string
	Skills             []string
	MinExperienceYears int
	SalaryMin          int
	SalaryMax          int
	Active             bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// JobFilter narrows job listings. Zero values mean "no constraint".
type JobFilter struct {
	Location      string
	Skill         string
	MaxExperience int // match jobs requiring at most this many years; 0 = unset
	ProviderID    string
}
