// Package storage contains a storage interface.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/fritter-net/pheme/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound returned when a referenced account or post does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists returned when an insert violates a natural-key
// uniqueness constraint (duplicate follow or like).
var ErrAlreadyExists = errors.New("already exists")

// Storage provides methods for interacting with database.
type Storage interface {
	InTx(ctx context.Context, f func(s Storage) error) error

	SaveAccount(ctx context.Context, a *entities.Account) error
	GetAccount(ctx context.Context, id string) (*entities.Account, error)
	SavePost(ctx context.Context, p *entities.Post) error
	GetPost(ctx context.Context, id string) (*entities.Post, error)

	CreateFollow(ctx context.Context, follower, following string, timestamp time.Time) error
	DeleteFollows(ctx context.Context, follower, following string) (int64, error)
	ListFollowers(ctx context.Context, accountID string) ([]*entities.Account, error)
	ListFollowing(ctx context.Context, accountID string) ([]*entities.Account, error)
	ListFollowerEdges(ctx context.Context, accountID string, day *entities.DayRange) ([]*entities.FollowEdge, error)
	ListFollowingEdges(ctx context.Context, accountID string, day *entities.DayRange) ([]*entities.FollowEdge, error)

	CreateLike(ctx context.Context, postID, likedBy string, timestamp time.Time) error
	DeleteLikes(ctx context.Context, postID, likedBy string) (int64, error)
	ListLikers(ctx context.Context, postID string) ([]*entities.Account, error)
	ListLikesForAuthor(ctx context.Context, authorID string, day entities.DayRange) ([]*entities.Like, error)

	CreateFlag(ctx context.Context, postID, flaggedBy, flagType string, timestamp time.Time) error
	DeleteFlags(ctx context.Context, postID, flaggedBy string) (int64, error)
	ListFlags(ctx context.Context, postID string) ([]*entities.Flag, error)
	CountFlags(ctx context.Context, postID, flaggedBy string) (int64, error)
	ListFlagsForAuthor(ctx context.Context, authorID string, day entities.DayRange) ([]*entities.Flag, error)
}
