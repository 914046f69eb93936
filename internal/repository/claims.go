package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"claims-management/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const claimColumns = `id, type, employee_id, employee_name, amount, submission_date, status,
	travel_date, from_destination, to_destination, purpose,
	treatment_date, hospital, treatment_type,
	claim_date, claim_type, description`

// Columns the list search term is matched against, OR-combined.
var searchColumns = []string{
	"employee_id", "employee_name", "type",
	"from_destination", "to_destination", "purpose",
	"hospital", "treatment_type",
	"claim_type", "description",
}

// ClaimRepository is the pgx-backed claims store. The pool is injected so
// tests and callers control the connection lifecycle.
type ClaimRepository struct {
	pool *pgxpool.Pool
}

func NewClaimRepository(pool *pgxpool.Pool) *ClaimRepository {
	return &ClaimRepository{pool: pool}
}

// Insert creates a pending claim and returns its id. The insert is a single
// atomic statement; the claims_employee_day_key unique index rejects a second
// claim for the same employee on the same UTC day, which surfaces here as
// models.ErrDuplicateSubmission.
func (r *ClaimRepository) Insert(ctx context.Context, in models.SubmitClaimInput) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO claims (
			type, employee_id, employee_name, amount, status,
			travel_date, from_destination, to_destination, purpose,
			treatment_date, hospital, treatment_type,
			claim_date, claim_type, description
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`,
		in.Type, in.EmployeeID, in.EmployeeName, in.Amount, models.StatusPending,
		in.TravelDate, in.FromDestination, in.ToDestination, in.Purpose,
		in.TreatmentDate, in.Hospital, in.TreatmentType,
		in.ClaimDate, in.ClaimType, in.Description,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, models.ErrDuplicateSubmission
		}
		return 0, err
	}
	return id, nil
}

// List returns claims matching the filter, in the store's natural order.
func (r *ClaimRepository) List(ctx context.Context, filter models.ClaimFilter) ([]models.Claim, error) {
	query, args := buildListQuery(filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	claims := []models.Claim{}
	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, err
		}
		claims = append(claims, *c)
	}
	return claims, rows.Err()
}

// UpdateStatus sets the status of one claim and returns the updated row.
// Returns models.ErrClaimNotFound when no claim has the given id.
func (r *ClaimRepository) UpdateStatus(ctx context.Context, id int64, status string) (*models.Claim, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE claims SET status = $1 WHERE id = $2 RETURNING `+claimColumns,
		status, id,
	)
	c, err := scanClaim(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrClaimNotFound
	}
	return c, err
}

// DeleteAll wipes the claims table and reports how many rows went away.
func (r *ClaimRepository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM claims`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// buildListQuery assembles the list statement: the search term matches any
// searchable column (OR), and a status other than the "all" sentinel narrows
// the result (AND).
func buildListQuery(filter models.ClaimFilter) (string, []any) {
	query := "SELECT " + claimColumns + " FROM claims"
	var conditions []string
	var args []any

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		matches := make([]string, len(searchColumns))
		for i, col := range searchColumns {
			matches[i] = fmt.Sprintf("%s ILIKE $%d", col, len(args))
		}
		conditions = append(conditions, "("+strings.Join(matches, " OR ")+")")
	}

	if filter.Status != "" && filter.Status != "all" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	return query, args
}

func scanClaim(row pgx.Row) (*models.Claim, error) {
	var c models.Claim
	err := row.Scan(
		&c.ID, &c.Type, &c.EmployeeID, &c.EmployeeName, &c.Amount, &c.SubmissionDate, &c.Status,
		&c.TravelDate, &c.FromDestination, &c.ToDestination, &c.Purpose,
		&c.TreatmentDate, &c.Hospital, &c.TreatmentType,
		&c.ClaimDate, &c.ClaimType, &c.Description,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
