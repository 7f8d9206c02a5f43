// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/fritter-net/pheme/internal/entities"
	"github.com/fritter-net/pheme/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")
var errBeginCalledWithinTx = errors.New("can not run InTx in tx")

const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

type pg struct {
	ext sqlx.ExtContext
}

type accountDTO struct {
	ID        string    `db:"id"`
	Handle    string    `db:"handle"`
	CreatedAt time.Time `db:"created_at"`
}

type postDTO struct {
	ID        string    `db:"id"`
	Author    string    `db:"author"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

type followEdgeDTO struct {
	Follower        string    `db:"follower"`
	FollowerHandle  string    `db:"follower_handle"`
	Following       string    `db:"following"`
	FollowingHandle string    `db:"following_handle"`
	FollowedAt      time.Time `db:"followed_at"`
}

type likeDTO struct {
	PostID      string    `db:"post_id"`
	LikedBy     string    `db:"liked_by"`
	LikerHandle string    `db:"liker_handle"`
	LikedAt     time.Time `db:"liked_at"`
}

type flagDTO struct {
	PostID        string    `db:"post_id"`
	FlaggedBy     string    `db:"flagged_by"`
	FlaggerHandle string    `db:"flagger_handle"`
	Type          string    `db:"flag_type"`
	FlaggedAt     time.Time `db:"flagged_at"`
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) SaveAccount(ctx context.Context, a *entities.Account) error {
	account := accountDTO{
		ID:        a.ID,
		Handle:    a.Handle,
		CreatedAt: a.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO account(id, handle, created_at)
			VALUES(:id, :handle, :created_at)
			ON CONFLICT(id) DO UPDATE SET handle=excluded.handle
		`, account,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetAccount(ctx context.Context, id string) (*entities.Account, error) {
	var a accountDTO

	if err := sqlx.GetContext(ctx, s.ext, &a,
		`SELECT id, handle, created_at FROM account WHERE id = $1`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Account{
		ID:        a.ID,
		Handle:    a.Handle,
		CreatedAt: a.CreatedAt,
	}, nil
}

func (s pg) SavePost(ctx context.Context, p *entities.Post) error {
	post := postDTO{
		ID:        p.ID,
		Author:    p.Author,
		Content:   p.Content,
		CreatedAt: p.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO post(id, author, content, created_at)
			VALUES(:id, :author, :content, :created_at)
			ON CONFLICT(id) DO UPDATE SET content=excluded.content
		`, post,
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	var p postDTO

	if err := sqlx.GetContext(ctx, s.ext, &p,
		`SELECT id, author, content, created_at FROM post WHERE id = $1`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Post{
		ID:        p.ID,
		Author:    p.Author,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
	}, nil
}

func (s pg) CreateFollow(ctx context.Context, follower, following string, timestamp time.Time) error {
	if _, err := s.ext.ExecContext(ctx,
		`
			INSERT INTO follow(follower, following, followed_at) VALUES($1, $2, $3)
		`, follower, following, timestamp.UTC(),
	); err != nil {
		return translateConstraintError(err)
	}

	return nil
}

func (s pg) DeleteFollows(ctx context.Context, follower, following string) (int64, error) {
	res, err := s.ext.ExecContext(ctx,
		`
			DELETE FROM follow WHERE follower=$1 AND following=$2
		`, follower, following,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	n, _ := res.RowsAffected()

	return n, nil
}

func (s pg) ListFollowers(ctx context.Context, accountID string) ([]*entities.Account, error) {
	return s.selectAccounts(ctx,
		`
			SELECT a.id, a.handle, a.created_at FROM follow f
			JOIN account a ON a.id = f.follower
			WHERE f.following = $1
		`, accountID,
	)
}

func (s pg) ListFollowing(ctx context.Context, accountID string) ([]*entities.Account, error) {
	return s.selectAccounts(ctx,
		`
			SELECT a.id, a.handle, a.created_at FROM follow f
			JOIN account a ON a.id = f.following
			WHERE f.follower = $1
		`, accountID,
	)
}

func (s pg) ListFollowerEdges(ctx context.Context, accountID string, day *entities.DayRange) ([]*entities.FollowEdge, error) {
	return s.selectFollowEdges(ctx, `f.following = $1`, accountID, day)
}

func (s pg) ListFollowingEdges(ctx context.Context, accountID string, day *entities.DayRange) ([]*entities.FollowEdge, error) {
	return s.selectFollowEdges(ctx, `f.follower = $1`, accountID, day)
}

func (s pg) selectFollowEdges(ctx context.Context, cond, accountID string, day *entities.DayRange) ([]*entities.FollowEdge, error) {
	query := fmt.Sprintf(`
			SELECT f.follower, fr.handle AS follower_handle,
				f.following, fg.handle AS following_handle, f.followed_at
			FROM follow f
			JOIN account fr ON fr.id = f.follower
			JOIN account fg ON fg.id = f.following
			WHERE %s
		`, cond)
	args := []interface{}{accountID}

	if day != nil {
		query += ` AND f.followed_at >= $2 AND f.followed_at < $3`
		args = append(args, day.From, day.To)
	}

	var dto []*followEdgeDTO
	if err := sqlx.SelectContext(ctx, s.ext, &dto, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.FollowEdge, len(dto))
	for i, v := range dto {
		out[i] = &entities.FollowEdge{
			Follower:        v.Follower,
			FollowerHandle:  v.FollowerHandle,
			Following:       v.Following,
			FollowingHandle: v.FollowingHandle,
			FollowedAt:      v.FollowedAt,
		}
	}

	return out, nil
}

func (s pg) CreateLike(ctx context.Context, postID, likedBy string, timestamp time.Time) error {
	if _, err := s.ext.ExecContext(ctx,
		`
			INSERT INTO "like"(post_id, liked_by, liked_at) VALUES($1, $2, $3)
		`, postID, likedBy, timestamp.UTC(),
	); err != nil {
		return translateConstraintError(err)
	}

	return nil
}

func (s pg) DeleteLikes(ctx context.Context, postID, likedBy string) (int64, error) {
	res, err := s.ext.ExecContext(ctx,
		`
			DELETE FROM "like" WHERE post_id=$1 AND liked_by=$2
		`, postID, likedBy,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	n, _ := res.RowsAffected()

	return n, nil
}

func (s pg) ListLikers(ctx context.Context, postID string) ([]*entities.Account, error) {
	return s.selectAccounts(ctx,
		`
			SELECT a.id, a.handle, a.created_at FROM "like" l
			JOIN account a ON a.id = l.liked_by
			WHERE l.post_id = $1
		`, postID,
	)
}

func (s pg) ListLikesForAuthor(ctx context.Context, authorID string, day entities.DayRange) ([]*entities.Like, error) {
	var dto []*likeDTO

	if err := sqlx.SelectContext(ctx, s.ext, &dto,
		`
			SELECT l.post_id, l.liked_by, a.handle AS liker_handle, l.liked_at
			FROM "like" l
			JOIN post p ON p.id = l.post_id
			JOIN account a ON a.id = l.liked_by
			WHERE p.author = $1 AND l.liked_at >= $2 AND l.liked_at < $3
		`, authorID, day.From, day.To,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Like, len(dto))
	for i, v := range dto {
		out[i] = &entities.Like{
			PostID:      v.PostID,
			LikedBy:     v.LikedBy,
			LikerHandle: v.LikerHandle,
			LikedAt:     v.LikedAt,
		}
	}

	return out, nil
}

func (s pg) CreateFlag(ctx context.Context, postID, flaggedBy, flagType string, timestamp time.Time) error {
	if _, err := s.ext.ExecContext(ctx,
		`
			INSERT INTO flag(post_id, flagged_by, flag_type, flagged_at) VALUES($1, $2, $3, $4)
		`, postID, flaggedBy, flagType, timestamp.UTC(),
	); err != nil {
		return translateConstraintError(err)
	}

	return nil
}

func (s pg) DeleteFlags(ctx context.Context, postID, flaggedBy string) (int64, error) {
	res, err := s.ext.ExecContext(ctx,
		`
			DELETE FROM flag WHERE post_id=$1 AND flagged_by=$2
		`, postID, flaggedBy,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	n, _ := res.RowsAffected()

	return n, nil
}

func (s pg) ListFlags(ctx context.Context, postID string) ([]*entities.Flag, error) {
	return s.selectFlags(ctx,
		`
			SELECT fl.post_id, fl.flagged_by, a.handle AS flagger_handle, fl.flag_type, fl.flagged_at
			FROM flag fl
			JOIN account a ON a.id = fl.flagged_by
			WHERE fl.post_id = $1
		`, postID,
	)
}

func (s pg) CountFlags(ctx context.Context, postID, flaggedBy string) (int64, error) {
	var n int64

	if err := sqlx.GetContext(ctx, s.ext, &n,
		`SELECT COUNT(*) FROM flag WHERE post_id=$1 AND flagged_by=$2`, postID, flaggedBy,
	); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return n, nil
}

func (s pg) ListFlagsForAuthor(ctx context.Context, authorID string, day entities.DayRange) ([]*entities.Flag, error) {
	return s.selectFlags(ctx,
		`
			SELECT fl.post_id, fl.flagged_by, a.handle AS flagger_handle, fl.flag_type, fl.flagged_at
			FROM flag fl
			JOIN post p ON p.id = fl.post_id
			JOIN account a ON a.id = fl.flagged_by
			WHERE p.author = $1 AND fl.flagged_at >= $2 AND fl.flagged_at < $3
		`, authorID, day.From, day.To,
	)
}

func (s pg) selectAccounts(ctx context.Context, query string, args ...interface{}) ([]*entities.Account, error) {
	var dto []*accountDTO

	if err := sqlx.SelectContext(ctx, s.ext, &dto, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Account, len(dto))
	for i, v := range dto {
		out[i] = &entities.Account{
			ID:        v.ID,
			Handle:    v.Handle,
			CreatedAt: v.CreatedAt,
		}
	}

	return out, nil
}

func (s pg) selectFlags(ctx context.Context, query string, args ...interface{}) ([]*entities.Flag, error) {
	var dto []*flagDTO

	if err := sqlx.SelectContext(ctx, s.ext, &dto, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Flag, len(dto))
	for i, v := range dto {
		out[i] = &entities.Flag{
			PostID:        v.PostID,
			FlaggedBy:     v.FlaggedBy,
			FlaggerHandle: v.FlaggerHandle,
			Type:          v.Type,
			FlaggedAt:     v.FlaggedAt,
		}
	}

	return out, nil
}

func translateConstraintError(err error) error {
	if err, ok := err.(*pq.Error); ok {
		switch err.Code {
		case foreignKeyViolation:
			return storage.ErrNotFound
		case uniqueViolation:
			return storage.ErrAlreadyExists
		}
	}

	return fmt.Errorf("failed to exec: %w", err)
}
