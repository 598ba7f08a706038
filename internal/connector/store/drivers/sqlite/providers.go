package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/talentwire/jobconnect/internal/connector/domain"
)

type providersRepo struct {
	db dbtx
}

const providerColumns = `id, company_whatsapp_number, company_email,
	company_name, hr_name, hr_designation, website, about,
	created_at, updated_at`

func (r *providersRepo) GetProviderByID(ctx context.Context, id string) (domain.Provider, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+providerColumns+` FROM providers WHERE id = ?`, id)
	return scanProvider(row)
}

func (r *providersRepo) GetProviderByHandle(ctx context.Context, handle domain.ContactHandle) (domain.Provider, error) {
	column := "company_whatsapp_number"
	if handle.IsEmail() {
		column = "company_email"
	}
	row := r.db.QueryRowContext(ctx,
		`SELECT `+providerColumns+` FROM providers WHERE `+column+` = ?`, handle.Value())
	return scanProvider(row)
}

func (r *providersRepo) CreateProvider(ctx context.Context, p domain.Provider) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO providers (id, company_whatsapp_number, company_email,
			company_name, hr_name, hr_designation, website, about)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, mapStringNull(p.CompanyWhatsAppNumber), mapStringNull(p.CompanyEmail),
		p.CompanyName, p.HRName, p.HRDesignation, p.Website, p.About)
	return mapConflict(err)
}

func (r *providersRepo) UpdateProvider(ctx context.Context, p domain.Provider) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE providers SET company_name = ?, hr_name = ?, hr_designation = ?,
			website = ?, about = ?, updated_at = ?
		 WHERE id = ?`,
		p.CompanyName, p.HRName, p.HRDesignation, p.Website, p.About,
		time.Now().UTC(), p.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *providersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM providers`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

func scanProvider(row rowScanner) (domain.Provider, error) {
	var (
		p               domain.Provider
		whatsapp, email sql.NullString
	)
	err := row.Scan(&p.ID, &whatsapp, &email, &p.CompanyName, &p.HRName,
		&p.HRDesignation, &p.Website, &p.About, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Provider{}, mapNotFound(err)
	}
	p.CompanyWhatsAppNumber = mapNullString(whatsapp)
	p.CompanyEmail = mapNullString(email)
	return p, nil
}
