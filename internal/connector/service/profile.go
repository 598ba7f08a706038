package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/talentwire/jobconnect/internal/connector/domain"
	"github.com/talentwire/jobconnect/internal/connector/store"
	"github.com/talentwire/jobconnect/pkg/idx"
)

var (
	ErrAlreadyRegistered = errors.New("account already registered for this contact handle")
	ErrValidation        = errors.New("validation failed")
)

// ProfileService creates and updates role-specific profile documents. The
// existence check is the insert itself: the store's unique handle indexes
// reject duplicates atomically, so there is no read-then-write race.
type ProfileService struct {
	Store store.Store
}

// SeekerInput carries caller-supplied seeker fields. Numeric fields arrive as
// strings from the clients; empty means zero, anything unparsable is a
// validation error rather than a silent zero.
type SeekerInput struct {
	WhatsAppNumber  string
	Email           string
	FullName        string
	Skills          string // comma-separated
	ExperienceYears string
	CurrentCTC      string
	ExpectedCTC     string
	ResumeURL       string
	Bio             string
}

// ProviderInput carries caller-supplied provider fields.
type ProviderInput struct {
	CompanyWhatsAppNumber string
	CompanyEmail          string
	CompanyName           string
	HRName                string
	HRDesignation         string
	Website               string
	About                 string
}

// CreateSeeker validates, normalizes and inserts a seeker profile.
func (s *ProfileService) CreateSeeker(ctx context.Context, in SeekerInput) (domain.Seeker, error) {
	seeker, err := s.buildSeeker(in)
	if err != nil {
		return domain.Seeker{}, err
	}
	if seeker.WhatsAppNumber == "" && seeker.Email == "" {
		return domain.Seeker{}, validationErr("contact handle", "at least one of whatsappNumber or email is required")
	}

	seeker.ID = idx.New().String()
	if err := s.Store.Seekers().CreateSeeker(ctx, seeker); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Seeker{}, ErrAlreadyRegistered
		}
		return domain.Seeker{}, err
	}
	return s.Store.Seekers().GetSeekerByID(ctx, seeker.ID)
}

// UpdateSeeker replaces the mutable fields of an existing seeker.
func (s *ProfileService) UpdateSeeker(ctx context.Context, id string, in SeekerInput) (domain.Seeker, error) {
	seeker, err := s.buildSeeker(in)
	if err != nil {
		return domain.Seeker{}, err
	}
	seeker.ID = id

	if err := s.Store.Seekers().UpdateSeeker(ctx, seeker); err != nil {
		return domain.Seeker{}, err // store.ErrNotFound passes through
	}
	return s.Store.Seekers().GetSeekerByID(ctx, id)
}

// UpdateSeekerByHandle updates the seeker registered under the given contact
// handle. The handle itself cannot change through this path.
func (s *ProfileService) UpdateSeekerByHandle(ctx context.Context, handle domain.ContactHandle, in SeekerInput) (domain.Seeker, error) {
	existing, err := s.Store.Seekers().GetSeekerByHandle(ctx, handle)
	if err != nil {
		return domain.Seeker{}, err
	}
	return s.UpdateSeeker(ctx, existing.ID, in)
}

// CreateProvider validates and inserts a provider profile.
func (s *ProfileService) CreateProvider(ctx context.Context, in ProviderInput) (domain.Provider, error) {
	provider, err := buildProvider(in)
	if err != nil {
		return domain.Provider{}, err
	}
	if provider.CompanyWhatsAppNumber == "" && provider.CompanyEmail == "" {
		return domain.Provider{}, validationErr("contact handle", "at least one of whatsappNumber or email is required")
	}

	provider.ID = idx.New().String()
	if err := s.Store.Providers().CreateProvider(ctx, provider); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Provider{}, ErrAlreadyRegistered
		}
		return domain.Provider{}, err
	}
	return s.Store.Providers().GetProviderByID(ctx, provider.ID)
}

// UpdateProvider replaces the mutable fields of an existing provider.
func (s *ProfileService) UpdateProvider(ctx context.Context, id string, in ProviderInput) (domain.Provider, error) {
	provider, err := buildProvider(in)
	if err != nil {
		return domain.Provider{}, err
	}
	provider.ID = id

	if err := s.Store.Providers().UpdateProvider(ctx, provider); err != nil {
		return domain.Provider{}, err
	}
	return s.Store.Providers().GetProviderByID(ctx, id)
}

// UpdateProviderByHandle updates the provider registered under the given
// company contact handle.
func (s *ProfileService) UpdateProviderByHandle(ctx context.Context, handle domain.ContactHandle, in ProviderInput) (domain.Provider, error) {
	existing, err := s.Store.Providers().GetProviderByHandle(ctx, handle)
	if err != nil {
		return domain.Provider{}, err
	}
	return s.UpdateProvider(ctx, existing.ID, in)
}

func (s *ProfileService) buildSeeker(in SeekerInput) (domain.Seeker, error) {
	if strings.TrimSpace(in.FullName) == "" {
		return domain.Seeker{}, validationErr("fullName", "is required")
	}

	experience, err := parseCount("experience", in.ExperienceYears)
	if err != nil {
		return domain.Seeker{}, err
	}
	currentCTC, err := parseCount("currentCtc", in.CurrentCTC)
	if err != nil {
		return domain.Seeker{}, err
	}
	expectedCTC, err := parseCount("expectedCtc", in.ExpectedCTC)
	if err != nil {
		return domain.Seeker{}, err
	}

	return domain.Seeker{
		WhatsAppNumber:  strings.TrimSpace(in.WhatsAppNumber),
		Email:           strings.TrimSpace(in.Email),
		FullName:        strings.TrimSpace(in.FullName),
		Skills:          SplitCommaList(in.Skills),
		ExperienceYears: experience,
		CurrentCTC:      currentCTC,
		ExpectedCTC:     expectedCTC,
		ResumeURL:       strings.TrimSpace(in.ResumeURL),
		Bio:             strings.TrimSpace(in.Bio),
	}, nil
}

func buildProvider(in ProviderInput) (domain.Provider, error) {
	if strings.TrimSpace(in.CompanyName) == "" {
		return domain.Provider{}, validationErr("companyName", "is required")
	}
	if strings.TrimSpace(in.HRName) == "" {
		return domain.Provider{}, validationErr("hrName", "is required")
	}

	return domain.Provider{
		CompanyWhatsAppNumber: strings.TrimSpace(in.CompanyWhatsAppNumber),
		CompanyEmail:          strings.TrimSpace(in.CompanyEmail),
		CompanyName:           strings.TrimSpace(in.CompanyName),
		HRName:                strings.TrimSpace(in.HRName),
		HRDesignation:         strings.TrimSpace(in.HRDesignation),
		Website:               strings.TrimSpace(in.Website),
		About:                 strings.TrimSpace(in.About),
	}, nil
}

// SplitCommaList normalizes a comma-separated string into an ordered list of
// trimmed, non-empty entries.
func SplitCommaList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseCount parses a non-negative numeric field. Empty means zero by
// explicit policy; a malformed value is the caller's mistake.
func parseCount(field, value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, validationErr(field, "must be a non-negative integer")
	}
	return n, nil
}

func validationErr(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrValidation, field, reason)
}
