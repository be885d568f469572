package repo

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/ChristianRende22/Web-proyecto/app/model"
)

type EmployeeRepository interface {
	Create(e *model.Employee) error
	FindByEmail(email string) (*model.Employee, error)
	FindByID(id uuid.UUID) (*model.Employee, error)
	FindAll() ([]model.Employee, error)
	Update(e *model.Employee) error
	Delete(id uuid.UUID) error
	SetRefreshToken(id uuid.UUID, token string) error
	ClearRefreshToken(id uuid.UUID) error
	AddBlacklistToken(token model.BlacklistedToken) error
	IsTokenBlacklisted(token string) (bool, error)
}

type EmployeeRepo struct {
	DB *sql.DB
}

func NewEmployeeRepo(db *sql.DB) *EmployeeRepo {
	return &EmployeeRepo{DB: db}
}

const employeeColumns = `id, first_name, last_name, email, position, role, description, image, image_upload_id, password_hash, is_active, created_at, updated_at, refresh_token`

func (r *EmployeeRepo) Create(e *model.Employee) error {
	query := `
		INSERT INTO employees (first_name, last_name, email, position, role, description, image, image_upload_id, password_hash, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	now := time.Now()
	e.IsActive = true
	e.CreatedAt = now
	e.UpdatedAt = now

	return r.DB.QueryRow(
		query,
		e.FirstName,
		e.LastName,
		e.Email,
		e.Position,
		e.Role,
		e.Description,
		e.Image,
		e.ImageUploadID,
		e.PasswordHash,
		e.IsActive,
		now,
		now,
	).Scan(&e.ID)
}

// FindByEmail resolves the stored employee whose email equals the given one.
// The match is exact and case-sensitive. Inactive employees are still
// returned so the caller can report a disabled account instead of a missing
// one.
func (r *EmployeeRepo) FindByEmail(email string) (*model.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE email = $1`

	return r.scanEmployee(r.DB.QueryRow(query, email))
}

func (r *EmployeeRepo) FindByID(id uuid.UUID) (*model.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND is_active = true`

	return r.scanEmployee(r.DB.QueryRow(query, id))
}

func (r *EmployeeRepo) FindAll() ([]model.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE is_active = true
		ORDER BY last_name ASC`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []model.Employee
	for rows.Next() {
		e, err := scanEmployeeRow(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}

	return employees, rows.Err()
}

func (r *EmployeeRepo) Update(e *model.Employee) error {
	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, email = $3, position = $4, role = $5,
		    description = $6, image = $7, image_upload_id = $8, password_hash = $9, updated_at = $10
		WHERE id = $11`

	e.UpdatedAt = time.Now()
	_, err := r.DB.Exec(
		query,
		e.FirstName,
		e.LastName,
		e.Email,
		e.Position,
		e.Role,
		e.Description,
		e.Image,
		e.ImageUploadID,
		e.PasswordHash,
		e.UpdatedAt,
		e.ID,
	)
	return err
}

func (r *EmployeeRepo) Delete(id uuid.UUID) error {
	_, err := r.DB.Exec(`DELETE FROM employees WHERE id = $1`, id)
	return err
}

func (r *EmployeeRepo) SetRefreshToken(id uuid.UUID, token string) error {
	_, err := r.DB.Exec(`UPDATE employees SET refresh_token = $1 WHERE id = $2`, token, id)
	return err
}

func (r *EmployeeRepo) ClearRefreshToken(id uuid.UUID) error {
	_, err := r.DB.Exec(`UPDATE employees SET refresh_token = NULL WHERE id = $1`, id)
	return err
}

func (r *EmployeeRepo) AddBlacklistToken(token model.BlacklistedToken) error {
	query := `
		INSERT INTO blacklisted_tokens (token, expires_at, created_at)
		VALUES ($1, $2, $3)`

	_, err := r.DB.Exec(query, token.Token, token.ExpiresAt, time.Now())
	return err
}

func (r *EmployeeRepo) IsTokenBlacklisted(token string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM blacklisted_tokens WHERE token = $1)`, token).Scan(&exists)
	return exists, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *EmployeeRepo) scanEmployee(row rowScanner) (*model.Employee, error) {
	return scanEmployeeRow(row)
}

func scanEmployeeRow(row rowScanner) (*model.Employee, error) {
	var e model.Employee
	var description, image, imageUploadID, refreshToken sql.NullString

	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Position, &e.Role,
		&description, &image, &imageUploadID, &e.PasswordHash,
		&e.IsActive, &e.CreatedAt, &e.UpdatedAt, &refreshToken,
	)
	if err != nil {
		return nil, err
	}

	e.Description = description.String
	e.Image = image.String
	e.ImageUploadID = imageUploadID.String
	e.RefreshToken = refreshToken.String

	return &e, nil
}
