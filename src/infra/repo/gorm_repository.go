package repo

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jokeshare/src/core/domain"
	"jokeshare/src/core/ports"
)

var _ ports.Store = (*GormRepository)(nil)

type userRecord struct {
	ID           string `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userRecord) TableName() string { return "users" }

func (u *userRecord) toDomain() *domain.User {
	return &domain.User{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

type jokeRecord struct {
	ID         string    `gorm:"primaryKey"`
	Name       string    `gorm:"not null"`
	Content    string    `gorm:"not null"`
	JokesterID string    `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
}

func (jokeRecord) TableName() string { return "jokes" }

func (j *jokeRecord) toDomain() *domain.Joke {
	return &domain.Joke{
		ID:         j.ID,
		Name:       j.Name,
		Content:    j.Content,
		JokesterID: j.JokesterID,
		CreatedAt:  j.CreatedAt,
		UpdatedAt:  j.UpdatedAt,
	}
}

// GormRepository implements ports.Store using gorm. It is used with the
// sqlite driver for local development and tests.
type GormRepository struct {
	db  *gorm.DB
	log *slog.Logger
	now func() time.Time
}

// NewGormRepository constructs a repository backed by gdb.
func NewGormRepository(gdb *gorm.DB, log *slog.Logger) *GormRepository {
	return &GormRepository{db: gdb, log: log, now: time.Now}
}

// AutoMigrate creates or updates the users and jokes tables.
func (r *GormRepository) AutoMigrate() error {
	if err := r.db.AutoMigrate(&userRecord{}, &jokeRecord{}); err != nil {
		return domain.NewStorageError("auto migrate", err)
	}
	return nil
}

func (r *GormRepository) Health(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Users

func (r *GormRepository) CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	now := r.now()
	rec := userRecord{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, domain.NewConflictError("username already taken")
		}
		return nil, domain.NewStorageError("create user", err)
	}
	return rec.toDomain(), nil
}

func (r *GormRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findUser(ctx, "find user by username", "username = ?", username)
}

func (r *GormRepository) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findUser(ctx, "find user by id", "id = ?", id)
}

func (r *GormRepository) findUser(ctx context.Context, op, query string, arg string) (*domain.User, error) {
	var rec userRecord
	if err := r.db.WithContext(ctx).Where(query, arg).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, domain.NewStorageError(op, err)
	}
	return rec.toDomain(), nil
}

// Jokes

func (r *GormRepository) CreateJoke(ctx context.Context, name, content, jokesterID string) (*domain.Joke, error) {
	now := r.now()
	rec := jokeRecord{
		ID:         uuid.NewString(),
		Name:       name,
		Content:    content,
		JokesterID: jokesterID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, domain.NewStorageError("create joke", err)
	}
	return rec.toDomain(), nil
}

func (r *GormRepository) FindJokeByID(ctx context.Context, id string) (*domain.Joke, error) {
	var rec jokeRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("joke")
		}
		return nil, domain.NewStorageError("find joke", err)
	}
	return rec.toDomain(), nil
}

func (r *GormRepository) ListJokes(ctx context.Context, limit int, newestFirst bool) ([]domain.JokeListItem, error) {
	order := "created_at ASC, id ASC"
	if newestFirst {
		order = "created_at DESC, id DESC"
	}

	var recs []jokeRecord
	err := r.db.WithContext(ctx).
		Select("id", "name").
		Order(order).
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, domain.NewStorageError("list jokes", err)
	}

	items := make([]domain.JokeListItem, 0, len(recs))
	for _, rec := range recs {
		items = append(items, domain.JokeListItem{ID: rec.ID, Name: rec.Name})
	}
	return items, nil
}

func (r *GormRepository) CountJokes(ctx context.Context) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&jokeRecord{}).Count(&n).Error; err != nil {
		return 0, domain.NewStorageError("count jokes", err)
	}
	return int(n), nil
}

func (r *GormRepository) FindJokeByOffset(ctx context.Context, offset int) (*domain.Joke, error) {
	var recs []jokeRecord
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(1).
		Find(&recs).Error
	if err != nil {
		return nil, domain.NewStorageError("find joke by offset", err)
	}
	if len(recs) == 0 {
		return nil, domain.NewNotFoundError("joke")
	}
	return recs[0].toDomain(), nil
}

func (r *GormRepository) DeleteJoke(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&jokeRecord{})
	if res.Error != nil {
		return domain.NewStorageError("delete joke", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError("joke")
	}
	return nil
}
