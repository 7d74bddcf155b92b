package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/railfleet/fleet_mgmt_app/internal/apperrors"
	"github.com/railfleet/fleet_mgmt_app/internal/core/domain"
	portsrepo "github.com/railfleet/fleet_mgmt_app/internal/core/ports/repositories"
	"github.com/railfleet/fleet_mgmt_app/internal/utils/pagination"
)

type PgxInvoiceCaseRepository struct {
	BaseRepository
}

func newPgxInvoiceCaseRepository(pool *pgxpool.Pool) portsrepo.InvoiceCaseRepositoryFacade {
	return &PgxInvoiceCaseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.InvoiceCaseRepositoryFacade = (*PgxInvoiceCaseRepository)(nil)

const caseColumns = `
	case_id, case_number, case_type, workflow_state, lessee_name,
	special_lessee_confirmed, invoice_date, invoice_total, shopping_event_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanCase(row pgx.Row) (*domain.InvoiceCase, error) {
	var c domain.InvoiceCase
	err := row.Scan(
		&c.CaseID,
		&c.CaseNumber,
		&c.CaseType,
		&c.WorkflowState,
		&c.LesseeName,
		&c.SpecialLesseeConfirmed,
		&c.InvoiceDate,
		&c.InvoiceTotal,
		&c.ShoppingEventID,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindCaseByID retrieves a specific invoice case by its identifier.
func (r *PgxInvoiceCaseRepository) FindCaseByID(ctx context.Context, caseID string) (*domain.InvoiceCase, error) {
	query := `
        SELECT ` + caseColumns + `
        FROM invoice_cases
        WHERE case_id = $1;
    `
	c, err := scanCase(r.Pool.QueryRow(ctx, query, caseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find case by ID %s: %w", caseID, err)
	}
	return c, nil
}

// FindAttachmentsByCaseID retrieves all attachments for a case, oldest first.
func (r *PgxInvoiceCaseRepository) FindAttachmentsByCaseID(ctx context.Context, caseID string) ([]domain.CaseAttachment, error) {
	query := `
        SELECT attachment_id, case_id, kind, file_name,
               created_at, created_by, last_updated_at, last_updated_by
        FROM case_attachments
        WHERE case_id = $1
        ORDER BY created_at ASC;
    `
	rows, err := r.Pool.Query(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attachments for case %s: %w", caseID, err)
	}
	defer rows.Close()

	attachments := []domain.CaseAttachment{}
	for rows.Next() {
		var a domain.CaseAttachment
		err := rows.Scan(
			&a.AttachmentID,
			&a.CaseID,
			&a.Kind,
			&a.FileName,
			&a.CreatedAt,
			&a.CreatedBy,
			&a.LastUpdatedAt,
			&a.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attachment row: %w", err)
		}
		attachments = append(attachments, a)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating attachment rows: %w", rows.Err())
	}
	return attachments, nil
}

// FindCarMarksByCaseID retrieves the reporting marks named on a case, in entry
// order.
func (r *PgxInvoiceCaseRepository) FindCarMarksByCaseID(ctx context.Context, caseID string) ([]string, error) {
	query := `
        SELECT car_mark
        FROM case_car_marks
        WHERE case_id = $1
        ORDER BY position ASC;
    `
	rows, err := r.Pool.Query(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query car marks for case %s: %w", caseID, err)
	}
	defer rows.Close()

	marks := []string{}
	for rows.Next() {
		var mark string
		if err := rows.Scan(&mark); err != nil {
			return nil, fmt.Errorf("failed to scan car mark row: %w", err)
		}
		marks = append(marks, mark)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating car mark rows: %w", rows.Err())
	}
	return marks, nil
}

// ListCases retrieves a token-paginated list of cases, newest first, using
// keyset pagination on (created_at, case_id).
func (r *PgxInvoiceCaseRepository) ListCases(ctx context.Context, limit int, nextToken *string) ([]domain.InvoiceCase, *string, error) {
	if limit <= 0 {
		limit = 50
	}

	args := []any{}
	query := `
        SELECT ` + caseColumns + `
        FROM invoice_cases`

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, err := pagination.DecodeCursorToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %s", apperrors.ErrValidation, err)
		}
		query += ` WHERE (created_at, case_id) < ($1, $2)`
		args = append(args, lastCreatedAt, lastID)
	}

	query += fmt.Sprintf(`
        ORDER BY created_at DESC, case_id DESC
        LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query cases: %w", err)
	}
	defer rows.Close()

	cases := []domain.InvoiceCase{}
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan case row: %w", err)
		}
		cases = append(cases, *c)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating case rows: %w", rows.Err())
	}

	var nextTokenVal *string
	if len(cases) > limit {
		cases = cases[:limit]
		last := cases[len(cases)-1]
		token := pagination.EncodeCursorToken(last.CreatedAt, last.CaseID)
		nextTokenVal = &token
	}
	return cases, nextTokenVal, nil
}

// UpdateCaseWorkflowState moves a case to a new workflow state.
func (r *PgxInvoiceCaseRepository) UpdateCaseWorkflowState(ctx context.Context, caseID string, state domain.CaseWorkflowState, updatedBy string, updatedAt time.Time) error {
	query := `
        UPDATE invoice_cases
        SET workflow_state = $1, last_updated_at = $2, last_updated_by = $3
        WHERE case_id = $4;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, state, updatedAt, updatedBy, caseID)
	if err != nil {
		return fmt.Errorf("failed to update case %s workflow state: %w", caseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("case %s not found: %w", caseID, apperrors.ErrNotFound)
	}
	return nil
}
