package sqlite

import (
	"context"

	"github.com/talentwire/jobconnect/internal/connector/domain"
)

type jobsRepo struct {
	db dbtx
}

const jobColumns = `id, provider_id, title, description, location, skills,
	min_experience_years, salary_min, salary_max, active, created_at, updated_at`

func (r *jobsRepo) GetJobByID(ctx context.Context, id string) (domain.Job, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = ?`, id)
	return scanJob(row)
}

func (r *jobsRepo) CreateJob(ctx context.Context, j domain.Job) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO jobs (id, provider_id, title, description, location, skills,
			min_experience_years, salary_min, salary_max, active)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		j.ID, j.ProviderID, j.Title, j.Description, j.Location,
		joinList(j.Skills), j.MinExperienceYears, j.SalaryMin, j.SalaryMax,
		j.Active)
	return mapConflict(err)
}

func (r *jobsRepo) ListJobs(ctx context.Context, f domain.JobFilter) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE active = TRUE`
	args := []any{}

	if f.Location != "" {
		query += ` AND location = ?`
		args = append(args, f.Location)
	}
	if f.Skill != "" {
		// skills are stored comma-joined; match the segment exactly
		query += ` AND (',' || skills || ',') LIKE ?`
		args = append(args, "%,"+f.Skill+",%")
	}
	if f.MaxExperience > 0 {
		query += ` AND min_experience_years <= ?`
		args = append(args, f.MaxExperience)
	}
	if f.ProviderID != "" {
		query += ` AND provider_id = ?`
		args = append(args, f.ProviderID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (r *jobsRepo) DeleteJob(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func scanJob(row rowScanner) (domain.Job, error) {
	var (
		j      domain.Job
		skills string
	)
	err := row.Scan(&j.ID, &j.ProviderID, &j.Title, &j.Description,
		&j.Location, &skills, &j.MinExperienceYears, &j.SalaryMin,
		&j.SalaryMax, &j.Active, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return domain.Job{}, mapNotFound(err)
	}
	j.Skills = splitList(skills)
	return j, nil
}
