package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nvkalyan/case_intelligence_system/internal/models"
	"github.com/nvkalyan/case_intelligence_system/internal/service"
	"github.com/redis/go-redis/v9"
)

const caseCacheTTL = 5 * time.Minute

// CaseRepository reads and updates case records in PostgreSQL with a Redis
// cache for single-case lookups. Timestamps are selected as text so the
// temporal normalizer stays the only place that interprets them.
type CaseRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewCaseRepository(db *pgxpool.Pool, redisClient *redis.Client) service.CaseRepository {
	return &CaseRepository{
		db:          db,
		redisClient: redisClient,
	}
}

const caseColumns = `
	id,
	case_number,
	incident_type,
	COALESCE(incident_date::text, ''),
	COALESCE(incident_location, ''),
	COALESCE(incident_description, ''),
	COALESCE(status, ''),
	COALESCE(investigation_notes, ''),
	COALESCE(investigating_officer, ''),
	COALESCE(created_at::text, ''),
	COALESCE(updated_at::text, '')`

func scanCase(row pgx.Row) (*models.CaseRecord, error) {
	record := &models.CaseRecord{}
	err := row.Scan(
		&record.ID,
		&record.CaseNumber,
		&record.IncidentType,
		&record.IncidentDate,
		&record.IncidentLocation,
		&record.IncidentDescription,
		&record.Status,
		&record.InvestigationNotes,
		&record.InvestigatingOfficer,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func collectCases(rows pgx.Rows) ([]models.CaseRecord, error) {
	defer rows.Close()

	records := make([]models.CaseRecord, 0)
	for rows.Next() {
		record, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan case row: %w", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during case row iteration: %w", err)
	}
	return records, nil
}

// ListIncidentsSince returns cases whose incident date is on or after the cutoff day
func (r *CaseRepository) ListIncidentsSince(ctx context.Context, cutoff time.Time) ([]models.CaseRecord, error) {
	query := `
		SELECT ` + caseColumns + `
		FROM case_records
		WHERE incident_date >= $1
		ORDER BY incident_date DESC;
	`
	rows, err := r.db.Query(ctx, query, cutoff.UTC().Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to list cases by incident date: %w", err)
	}
	return collectCases(rows)
}

// ListUpdatedSince returns cases updated on or after the cutoff instant
func (r *CaseRepository) ListUpdatedSince(ctx context.Context, cutoff time.Time) ([]models.CaseRecord, error) {
	query := `
		SELECT ` + caseColumns + `
		FROM case_records
		WHERE updated_at >= $1
		ORDER BY updated_at DESC;
	`
	rows, err := r.db.Query(ctx, query, cutoff.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to list updated cases: %w", err)
	}
	return collectCases(rows)
}

// ListCases returns a page of cases, newest first
func (r *CaseRepository) ListCases(ctx context.Context, page, pageSize int) ([]models.CaseRecord, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT ` + caseColumns + `
		FROM case_records
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	return collectCases(rows)
}

// GetByNumber returns the case with the given case number
func (r *CaseRepository) GetByNumber(ctx context.Context, caseNumber string) (*models.CaseRecord, error) {
	query := `
		SELECT ` + caseColumns + `
		FROM case_records
		WHERE case_number = $1;
	`
	record, err := scanCase(r.db.QueryRow(ctx, query, caseNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("case %s not found", caseNumber)
		}
		return nil, fmt.Errorf("failed to get case by number: %w", err)
	}
	return record, nil
}

// UpdateStatus sets the status, investigation notes and update instant of a case
func (r *CaseRepository) UpdateStatus(ctx context.Context, caseNumber, status, notes string, updatedAt time.Time) error {
	query := `
		UPDATE case_records SET
			status = $1,
			investigation_notes = $2,
			updated_at = $3
		WHERE case_number = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, notes, updatedAt.UTC(), caseNumber)
	if err != nil {
		return fmt.Errorf("failed to update case status: %w", err)
	}

	// RowsAffected() == 0 means no case with this number exists
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("case %s not found for status update", caseNumber)
	}
	return nil
}

// CountByIncidentDate returns the number of cases with the given incident date
func (r *CaseRepository) CountByIncidentDate(ctx context.Context, date string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM case_records
		WHERE incident_date = $1;
	`
	var count int
	err := r.db.QueryRow(ctx, query, date).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count cases by incident date: %w", err)
	}
	return count, nil
}

// CountWithoutStatus returns the number of cases with no status set
func (r *CaseRepository) CountWithoutStatus(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM case_records
		WHERE status IS NULL OR status = '';
	`
	var count int
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count cases without status: %w", err)
	}
	return count, nil
}

// ListRecentlyUpdated returns the most recently updated cases
func (r *CaseRepository) ListRecentlyUpdated(ctx context.Context, limit int) ([]models.CaseRecord, error) {
	query := `
		SELECT ` + caseColumns + `
		FROM case_records
		ORDER BY updated_at DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recently updated cases: %w", err)
	}
	return collectCases(rows)
}

// GetCaseFromCache tries to fetch a case from Redis
func (r *CaseRepository) GetCaseFromCache(ctx context.Context, caseNumber string) (*models.CaseRecord, error) {
	key := fmt.Sprintf("case:%s", caseNumber)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get case from cache: %w", err)
	}

	record := &models.CaseRecord{}
	if err := json.Unmarshal(val, record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal case from cache: %w", err)
	}
	return record, nil
}

// SetCaseCache stores a case in Redis
func (r *CaseRepository) SetCaseCache(ctx context.Context, record *models.CaseRecord) error {
	key := fmt.Sprintf("case:%s", record.CaseNumber)
	val, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal case for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, caseCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set case in cache: %w", err)
	}
	return nil
}

// InvalidateCaseCache removes a case from the Redis cache
func (r *CaseRepository) InvalidateCaseCache(ctx context.Context, caseNumber string) error {
	key := fmt.Sprintf("case:%s", caseNumber)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate case cache: %w", err)
	}
	return nil
}
