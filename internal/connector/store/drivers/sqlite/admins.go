package sqlite

import (
	"context"
	"database/sql"

	"github.com/talentwire/jobconnect/internal/connector/domain"
)

type adminsRepo struct {
	db dbtx
}

const adminColumns = `id, whatsapp_number, email, full_name, created_at, updated_at`

func (r *adminsRepo) GetAdminByID(ctx context.Context, id string) (domain.Admin, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE id = ?`, id)
	return scanAdmin(row)
}

func (r *adminsRepo) GetAdminByHandle(ctx context.Context, handle domain.ContactHandle) (domain.Admin, error) {
	column := "whatsapp_number"
	if handle.IsEmail() {
		column = "email"
	}
	row := r.db.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE `+column+` = ?`, handle.Value())
	return scanAdmin(row)
}

func (r *adminsRepo) CreateAdmin(ctx context.Context, a domain.Admin) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO admins (id, whatsapp_number, email, full_name)
		 VALUES (?, ?, ?, ?)`,
		a.ID, mapStringNull(a.WhatsAppNumber), mapStringNull(a.Email), a.FullName)
	return mapConflict(err)
}

func (r *adminsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

func scanAdmin(row rowScanner) (domain.Admin, error) {
	var (
		a               domain.Admin
		whatsapp, email sql.NullString
	)
	err := row.Scan(&a.ID, &whatsapp, &email, &a.FullName, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Admin{}, mapNotFound(err)
	}
	a.WhatsAppNumber = mapNullString(whatsapp)
	a.Email = mapNullString(email)
	return a, nil
}
