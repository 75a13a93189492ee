package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"jokeshare/src/core/domain"
	"jokeshare/src/core/ports"
	"jokeshare/src/infra/db"
)

var _ ports.Store = (*PostgresRepository)(nil)

// PostgresRepository implements ports.Store using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresRepository constructs a repository backed by Postgres.
func NewPostgresRepository(pg *db.Postgres, log *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *PostgresRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// Users

const userColumns = `id, username, password_hash, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	const q = `
		INSERT INTO users (id, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns

	u, err := scanUser(r.pool.QueryRow(ctx, q, uuid.NewString(), username, passwordHash))
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return nil, domain.NewConflictError("username already taken")
		}
		return nil, domain.NewStorageError("create user", err)
	}
	return u, nil
}

func (r *PostgresRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	u, err := scanUser(r.pool.QueryRow(ctx, q, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, domain.NewStorageError("find user by username", err)
	}
	return u, nil
}

func (r *PostgresRepository) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, domain.NewStorageError("find user by id", err)
	}
	return u, nil
}

// Jokes

const jokeColumns = `id, name, content, jokester_id, created_at, updated_at`

func scanJoke(row pgx.Row) (*domain.Joke, error) {
	var j domain.Joke
	if err := row.Scan(&j.ID, &j.Name, &j.Content, &j.JokesterID, &j.CreatedAt, &j.UpdatedAt); err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *PostgresRepository) CreateJoke(ctx context.Context, name, content, jokesterID string) (*domain.Joke, error) {
	const q = `
		INSERT INTO jokes (id, name, content, jokester_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + jokeColumns

	j, err := scanJoke(r.pool.QueryRow(ctx, q, uuid.NewString(), name, content, jokesterID))
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return nil, domain.NewNotFoundError("jokester")
		}
		return nil, domain.NewStorageError("create joke", err)
	}
	return j, nil
}

func (r *PostgresRepository) FindJokeByID(ctx context.Context, id string) (*domain.Joke, error) {
	const q = `SELECT ` + jokeColumns + ` FROM jokes WHERE id = $1`

	j, err := scanJoke(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("joke")
		}
		return nil, domain.NewStorageError("find joke", err)
	}
	return j, nil
}

func (r *PostgresRepository) ListJokes(ctx context.Context, limit int, newestFirst bool) ([]domain.JokeListItem, error) {
	q := `SELECT id, name FROM jokes ORDER BY created_at ASC, id ASC LIMIT $1`
	if newestFirst {
		q = `SELECT id, name FROM jokes ORDER BY created_at DESC, id DESC LIMIT $1`
	}

	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, domain.NewStorageError("list jokes", err)
	}
	defer rows.Close()

	items := make([]domain.JokeListItem, 0, limit)
	for rows.Next() {
		var item domain.JokeListItem
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, domain.NewStorageError("list jokes", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("list jokes", err)
	}
	return items, nil
}

func (r *PostgresRepository) CountJokes(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM jokes`).Scan(&n); err != nil {
		return 0, domain.NewStorageError("count jokes", err)
	}
	return n, nil
}

func (r *PostgresRepository) FindJokeByOffset(ctx context.Context, offset int) (*domain.Joke, error) {
	const q = `
		SELECT ` + jokeColumns + `
		FROM jokes
		ORDER BY created_at ASC, id ASC
		LIMIT 1 OFFSET $1
	`
	j, err := scanJoke(r.pool.QueryRow(ctx, q, offset))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("joke")
		}
		return nil, domain.NewStorageError("find joke by offset", err)
	}
	return j, nil
}

func (r *PostgresRepository) DeleteJoke(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM jokes WHERE id = $1`, id)
	if err != nil {
		return domain.NewStorageError("delete joke", err)
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("joke")
	}
	return nil
}
