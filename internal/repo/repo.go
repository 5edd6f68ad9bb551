package repo

import (
	"context"
	"database/sql"
	"time"
)

type Profile struct {
	ID          int       `json:"id"`
	Login       string    `json:"login"`
	Email       string    `json:"email"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Build is a saved coil parameter set. The calculation engine stays
// stateless; only this outer layer ever touches the database.
type Build struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Material        string    `json:"material"`
	WireDiameterMM  float64   `json:"wire_diameter_mm"`
	Wraps           int       `json:"wraps"`
	InnerDiameterMM float64   `json:"inner_diameter_mm"`
	LegLengthMM     float64   `json:"leg_length_mm"`
	VoltageV        float64   `json:"voltage_v"`
	ResistanceOhm   float64   `json:"resistance_ohm"`
	CreatedAt       time.Time `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, login, description string) error
	SaveBuild(ctx context.Context, userID int, b Build) (int, error)
	ListBuilds(ctx context.Context, userID int) ([]Build, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	query := "SELECT id, login, email, COALESCE(description, ''), created_at FROM users WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Login, &p.Email, &p.Description, &p.CreatedAt)
	return p, err
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, id int, login, description string) error {
	query := "UPDATE users SET login=$2, description=$3 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id, login, description)
	return err
}

func (r *PostgresRepository) SaveBuild(ctx context.Context, userID int, b Build) (int, error) {
	var id int
	query := `INSERT INTO builds
		(user_id, name, material, wire_diameter_mm, wraps, inner_diameter_mm, leg_length_mm, voltage_v, resistance_ohm)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, userID, b.Name, b.Material,
		b.WireDiameterMM, b.Wraps, b.InnerDiameterMM, b.LegLengthMM,
		b.VoltageV, b.ResistanceOhm).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListBuilds(ctx context.Context, userID int) ([]Build, error) {
	query := `SELECT id, name, material, wire_diameter_mm, wraps, inner_diameter_mm, leg_length_mm, voltage_v, resistance_ohm, created_at
		FROM builds WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Build
	for rows.Next() {
		var b Build
		if err := rows.Scan(&b.ID, &b.Name, &b.Material, &b.WireDiameterMM,
			&b.Wraps, &b.InnerDiameterMM, &b.LegLengthMM, &b.VoltageV,
			&b.ResistanceOhm, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
