package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/talentwire/jobconnect/internal/connector/domain"
)

type seekersRepo struct {
	db dbtx
}

const seekerColumns = `id, whatsapp_number, email, full_name, skills,
	experience_years, current_ctc, expected_ctc, resume_url, bio,
	created_at, updated_at`

func (r *seekersRepo) GetSeekerByID(ctx context.Context, id string) (domain.Seeker, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+seekerColumns+` FROM seekers WHERE id = ?`, id)
	return scanSeeker(row)
}

func (r *seekersRepo) GetSeekerByHandle(ctx context.Context, handle domain.ContactHandle) (domain.Seeker, error) {
	column := "whatsapp_number"
	if handle.IsEmail() {
		column = "email"
	}
	row := r.db.QueryRowContext(ctx,
		`SELECT `+seekerColumns+` FROM seekers WHERE `+column+` = ?`, handle.Value())
	return scanSeeker(row)
}

func (r *seekersRepo) CreateSeeker(ctx context.Context, s domain.Seeker) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO seekers (id, whatsapp_number, email, full_name, skills,
			experience_years, current_ctc, expected_ctc, resume_url, bio)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, mapStringNull(s.WhatsAppNumber), mapStringNull(s.Email),
		s.FullName, joinList(s.Skills), s.ExperienceYears,
		s.CurrentCTC, s.ExpectedCTC, s.ResumeURL, s.Bio)
	return mapConflict(err)
}

func (r *seekersRepo) UpdateSeeker(ctx context.Context, s domain.Seeker) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE seekers SET full_name = ?, skills = ?, experience_years = ?,
			current_ctc = ?, expected_ctc = ?, resume_url = ?, bio = ?,
			updated_at = ?
		 WHERE id = ?`,
		s.FullName, joinList(s.Skills), s.ExperienceYears,
		s.CurrentCTC, s.ExpectedCTC, s.ResumeURL, s.Bio,
		time.Now().UTC(), s.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *seekersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM seekers`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSeeker(row rowScanner) (domain.Seeker, error) {
	var (
		s               domain.Seeker
		whatsapp, email sql.NullString
		skills          string
	)
	err := row.Scan(&s.ID, &whatsapp, &email, &s.FullName, &skills,
		&s.ExperienceYears, &s.CurrentCTC, &s.ExpectedCTC, &s.ResumeURL,
		&s.Bio, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.Seeker{}, mapNotFound(err)
	}
	s.WhatsAppNumber = mapNullString(whatsapp)
	s.Email = mapNullString(email)
	s.Skills = splitList(skills)
	return s, nil
}
