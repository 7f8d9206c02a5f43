// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"

	"github.com/fritter-net/pheme/internal/entities"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// ErrSelfFollow returned when an account tries to follow itself.
var ErrSelfFollow = errors.New("can not follow self")

// ErrAlreadyFollowing returned when the follow edge already exists.
var ErrAlreadyFollowing = errors.New("already following")

// ErrNotFollowing returned when there is no follow edge to remove.
var ErrNotFollowing = errors.New("not following")

// ErrAlreadyLiked returned when the like already exists.
var ErrAlreadyLiked = errors.New("already liked")

// ErrNotLiked returned when there is no like to remove.
var ErrNotLiked = errors.New("not liked")

// ErrAlreadyFlagged returned when the single-flag policy is enabled and
// the user already flagged the post.
var ErrAlreadyFlagged = errors.New("already flagged")

// ErrNotFlagged returned when there are no flags to remove.
var ErrNotFlagged = errors.New("not flagged")

// ErrInvalidDate returned when year/month/day do not form a calendar date.
var ErrInvalidDate = errors.New("invalid date")

// Service ...
type Service interface {
	SaveAccount(ctx context.Context, a *entities.Account) error
	SavePost(ctx context.Context, p *entities.Post) error

	Follow(ctx context.Context, follower, following string) (*entities.FollowEdge, error)
	Unfollow(ctx context.Context, follower, following string) error
	ListFollowers(ctx context.Context, accountID string) ([]*entities.Account, error)
	ListFollowing(ctx context.Context, accountID string) ([]*entities.Account, error)
	ListFollowerEdgesOn(ctx context.Context, accountID string, year, month, day int) ([]*entities.FollowEdge, error)
	ListFollowingEdgesOn(ctx context.Context, accountID string, year, month, day int) ([]*entities.FollowEdge, error)

	Like(ctx context.Context, postID, likedBy string) (*entities.Like, error)
	Unlike(ctx context.Context, postID, likedBy string) error
	ListLikers(ctx context.Context, postID string) ([]*entities.Account, error)

	FlagPost(ctx context.Context, postID, flaggedBy, flagType string) (*entities.Flag, error)
	Unflag(ctx context.Context, postID, flaggedBy string) error
	ListFlags(ctx context.Context, postID string) ([]*entities.Flag, error)

	Recap(ctx context.Context, accountID string, year, month, day int) (*entities.Recap, error)
}
