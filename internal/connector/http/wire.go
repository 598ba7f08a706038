package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/talentwire/jobconnect/internal/connector/domain"
	"github.com/talentwire/jobconnect/pkg/connectsdk"
	"github.com/talentwire/jobconnect/pkg/httpx"
)

// decodeBody parses a JSON request body into dst. On failure it writes a 400
// response and returns false; the handler should just return.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// bindHandle builds a contact handle from the two optional identifier fields.
// Exactly one must be present.
func bindHandle(whatsappNumber, email string) (domain.ContactHandle, bool) {
	whatsappNumber = strings.TrimSpace(whatsappNumber)
	email = strings.TrimSpace(email)
	if (whatsappNumber == "") == (email == "") {
		return domain.ContactHandle{}, false
	}
	return domain.ContactHandle{WhatsAppNumber: whatsappNumber, Email: email}, true
}

func seekerJSON(s domain.Seeker) connectsdk.Seeker {
	skills := s.Skills
	if skills == nil {
		skills = []string{}
	}
	return connectsdk.Seeker{
		ID:              s.ID,
		WhatsAppNumber:  s.WhatsAppNumber,
		Email:           s.Email,
		FullName:        s.FullName,
		Skills:          skills,
		ExperienceYears: s.ExperienceYears,
		CurrentCTC:      s.CurrentCTC,
		ExpectedCTC:     s.ExpectedCTC,
		ResumeURL:       s.ResumeURL,
		Bio:             s.Bio,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func providerJSON(p domain.Provider) connectsdk.Provider {
	return connectsdk.Provider{
		ID:                    p.ID,
		CompanyWhatsAppNumber: p.CompanyWhatsAppNumber,
		CompanyEmail:          p.CompanyEmail,
		CompanyName:           p.CompanyName,
		HRName:                p.HRName,
		HRDesignation:         p.HRDesignation,
		Website:               p.Website,
		About:                 p.About,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

func adminJSON(a domain.Admin) connectsdk.Admin {
	return connectsdk.Admin{
		ID:             a.ID,
		WhatsAppNumber: a.WhatsAppNumber,
		Email:          a.Email,
		FullName:       a.FullName,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// accountJSON renders the role-specific document of a resolved account.
func accountJSON(a *domain.Account) any {
	if a == nil {
		return nil
	}
	switch a.Role {
	case domain.RoleSeeker:
		return seekerJSON(*a.Seeker)
	case domain.RoleProvider:
		return providerJSON(*a.Provider)
	case domain.RoleAdmin:
		return adminJSON(*a.Admin)
	}
	return nil
}

func jobJSON(j domain.Job) connectsdk.Job {
	skills := j.Skills
	if skills == nil {
		skills = []string{}
	}
	return connectsdk.Job{
		ID:                 j.ID,
		ProviderID:         j.ProviderID,
		Title:              j.Title,
		Description:        j.Description,
		Location:           j.Location,
		Skills:             skills,
		MinExperienceYears: j.MinExperienceYears,
		SalaryMin:          j.SalaryMin,
		SalaryMax:          j.SalaryMax,
		Active:             j.Active,
		CreatedAt:          j.CreatedAt,
		UpdatedAt:          j.UpdatedAt,
	}
}
