package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nafirj-2103/nafi-rj-portfolio/internal/domain"
)

// ErrNotFound is returned when a record does not exist in any store
// implementation.
var ErrNotFound = errors.New("record not found")

// InquiryStore encapsulates inquiry persistence. Two implementations
// exist: the Postgres primary store and the in-memory fallback used
// when the primary is unreachable at startup.
type InquiryStore interface {
	Create(ctx context.Context, inquiry *domain.Inquiry) error
	List(ctx context.Context) ([]domain.Inquiry, error)
	GetByID(ctx context.Context, id string) (*domain.Inquiry, error)
	Update(ctx context.Context, inquiry *domain.Inquiry) error
	Count(ctx context.Context) (int, error)

	// Name identifies the storage path for health and intake responses.
	Name() string
	// Persistent reports whether records survive a process restart.
	Persistent() bool
}

type inquiryRepository struct {
	pool *pgxpool.Pool
}

// NewInquiryRepository returns the Postgres-backed store. Replies are
// held as a JSONB document column, appended to on update.
func NewInquiryRepository(pool *pgxpool.Pool) InquiryStore {
	return &inquiryRepository{pool: pool}
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	const query = `
        INSERT INTO inquiries (name, email, description, budget, timeline, status, replies)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id::text, created_at`

	replies, err := marshalReplies(inquiry.Replies)
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx, query,
		inquiry.Name,
		inquiry.Email,
		inquiry.Description,
		inquiry.Budget,
		inquiry.Timeline,
		inquiry.Status,
		replies,
	).Scan(&inquiry.ID, &inquiry.CreatedAt)
}

func (r *inquiryRepository) Update(ctx context.Context, inquiry *domain.Inquiry) error {
	const query = `
        UPDATE inquiries SET status=$1, replies=$2
        WHERE id=$3`

	replies, err := marshalReplies(inquiry.Replies)
	if err != nil {
		return err
	}
	cmd, err := r.pool.Exec(ctx, query, inquiry.Status, replies, inquiry.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *inquiryRepository) GetByID(ctx context.Context, id string) (*domain.Inquiry, error) {
	const query = `
        SELECT id::text, name, email, description, budget, timeline, status, replies, created_at
        FROM inquiries WHERE id=$1`

	var (
		inquiry domain.Inquiry
		replies []byte
	)
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&inquiry.ID,
		&inquiry.Name,
		&inquiry.Email,
		&inquiry.Description,
		&inquiry.Budget,
		&inquiry.Timeline,
		&inquiry.Status,
		&replies,
		&inquiry.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(replies, &inquiry.Replies); err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (r *inquiryRepository) List(ctx context.Context) ([]domain.Inquiry, error) {
	const query = `
        SELECT id::text, name, email, description, budget, timeline, status, replies, created_at
        FROM inquiries ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Inquiry
	for rows.Next() {
		var (
			inquiry domain.Inquiry
			replies []byte
		)
		if err := rows.Scan(
			&inquiry.ID,
			&inquiry.Name,
			&inquiry.Email,
			&inquiry.Description,
			&inquiry.Budget,
			&inquiry.Timeline,
			&inquiry.Status,
			&replies,
			&inquiry.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(replies, &inquiry.Replies); err != nil {
			return nil, err
		}
		result = append(result, inquiry)
	}
	return result, rows.Err()
}

func (r *inquiryRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM inquiries`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *inquiryRepository) Name() string {
	return "postgres"
}

func (r *inquiryRepository) Persistent() bool {
	return true
}

func marshalReplies(replies []domain.Reply) ([]byte, error) {
	if replies == nil {
		replies = []domain.Reply{}
	}
	return json.Marshal(replies)
}
