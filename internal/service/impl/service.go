// Package impl is implementation of service interface.
package impl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/fritter-net/pheme/internal/cache"
	"github.com/fritter-net/pheme/internal/entities"
	"github.com/fritter-net/pheme/internal/service"
	"github.com/fritter-net/pheme/internal/storage"
)

var log = logrus.WithField("layer", "service")

// Config ...
type Config struct {
	// AllowMultipleFlags permits a user to flag the same post more than
	// once. Matches the historical behavior when enabled.
	AllowMultipleFlags bool
	// RecapCacheTTL enables recap memoization when non-zero.
	RecapCacheTTL time.Duration
}

type srv struct {
	s storage.Storage
	c Config

	recaps cache.Storage
}

// New creates new instance of service.
func New(s storage.Storage, c Config) service.Service {
	out := srv{
		s: s,
		c: c,
	}

	if c.RecapCacheTTL > 0 {
		out.recaps = cache.NewStorage()
	}

	return out
}

func (s srv) SaveAccount(ctx context.Context, a *entities.Account) error {
	if err := s.s.SaveAccount(ctx, a); err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}

	return nil
}

func (s srv) SavePost(ctx context.Context, p *entities.Post) error {
	if err := s.s.SavePost(ctx, p); err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}

	return nil
}

func (s srv) Follow(ctx context.Context, follower, following string) (*entities.FollowEdge, error) {
	if follower == following {
		return nil, service.ErrSelfFollow
	}

	fr, err := s.s.GetAccount(ctx, follower)
	if err != nil {
		return nil, fmt.Errorf("failed to get follower: %w", err)
	}

	fg, err := s.s.GetAccount(ctx, following)
	if err != nil {
		return nil, fmt.Errorf("failed to get following: %w", err)
	}

	// one shared timestamp for both sides of the edge
	timestamp := time.Now().UTC()

	if err := s.s.CreateFollow(ctx, follower, following, timestamp); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, service.ErrAlreadyFollowing
		}

		return nil, fmt.Errorf("failed to create follow: %w", err)
	}

	return &entities.FollowEdge{
		Follower:        fr.ID,
		FollowerHandle:  fr.Handle,
		Following:       fg.ID,
		FollowingHandle: fg.Handle,
		FollowedAt:      timestamp,
	}, nil
}

func (s srv) Unfollow(ctx context.Context, follower, following string) error {
	if follower == following {
		return service.ErrSelfFollow
	}

	if _, err := s.s.GetAccount(ctx, following); err != nil {
		return fmt.Errorf("failed to get following: %w", err)
	}

	n, err := s.s.DeleteFollows(ctx, follower, following)
	if err != nil {
		return fmt.Errorf("failed to delete follows: %w", err)
	}

	if n == 0 {
		return service.ErrNotFollowing
	}

	return nil
}

func (s srv) ListFollowers(ctx context.Context, accountID string) ([]*entities.Account, error) {
	if _, err := s.s.GetAccount(ctx, accountID); err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	out, err := s.s.ListFollowers(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}

	return out, nil
}

func (s srv) ListFollowing(ctx context.Context, accountID string) ([]*entities.Account, error) {
	if _, err := s.s.GetAccount(ctx, accountID); err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	out, err := s.s.ListFollowing(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list following: %w", err)
	}

	return out, nil
}

func (s srv) ListFollowerEdgesOn(ctx context.Context, accountID string, year, month, day int) ([]*entities.FollowEdge, error) {
	if !entities.ValidDate(year, month, day) {
		return nil, service.ErrInvalidDate
	}

	if _, err := s.s.GetAccount(ctx, accountID); err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	r := entities.NewDayRange(year, month, day)

	out, err := s.s.ListFollowerEdges(ctx, accountID, &r)
	if err != nil {
		return nil, fmt.Errorf("failed to list follower edges: %w", err)
	}

	return out, nil
}

func (s srv) ListFollowingEdgesOn(ctx context.Context, accountID string, year, month, day int) ([]*entities.FollowEdge, error) {
	if !entities.ValidDate(year, month, day) {
		return nil, service.ErrInvalidDate
	}

	if _, err := s.s.GetAccount(ctx, accountID); err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	r := entities.NewDayRange(year, month, day)

	out, err := s.s.ListFollowingEdges(ctx, accountID, &r)
	if err != nil {
		return nil, fmt.Errorf("failed to list following edges: %w", err)
	}

	return out, nil
}

func (s srv) Like(ctx context.Context, postID, likedBy string) (*entities.Like, error) {
	if _, err := s.s.GetPost(ctx, postID); err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	liker, err := s.s.GetAccount(ctx, likedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to get liker: %w", err)
	}

	timestamp := time.Now().UTC()

	if err := s.s.CreateLike(ctx, postID, likedBy, timestamp); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, service.ErrAlreadyLiked
		}

		return nil, fmt.Errorf("failed to create like: %w", err)
	}

	return &entities.Like{
		PostID:      postID,
		LikedBy:     liker.ID,
		LikerHandle: liker.Handle,
		LikedAt:     timestamp,
	}, nil
}

func (s srv) Unlike(ctx context.Context, postID, likedBy string) error {
	if _, err := s.s.GetPost(ctx, postID); err != nil {
		return fmt.Errorf("failed to get post: %w", err)
	}

	n, err := s.s.DeleteLikes(ctx, postID, likedBy)
	if err != nil {
		return fmt.Errorf("failed to delete likes: %w", err)
	}

	if n == 0 {
		return service.ErrNotLiked
	}

	return nil
}

func (s srv) ListLikers(ctx context.Context, postID string) ([]*entities.Account, error) {
	if _, err := s.s.GetPost(ctx, postID); err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	out, err := s.s.ListLikers(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list likers: %w", err)
	}

	return out, nil
}

func (s srv) FlagPost(ctx context.Context, postID, flaggedBy, flagType string) (*entities.Flag, error) {
	if _, err := s.s.GetPost(ctx, postID); err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	flagger, err := s.s.GetAccount(ctx, flaggedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to get flagger: %w", err)
	}

	if !s.c.AllowMultipleFlags {
		n, err := s.s.CountFlags(ctx, postID, flaggedBy)
		if err != nil {
			return nil, fmt.Errorf("failed to count flags: %w", err)
		}

		if n > 0 {
			return nil, service.ErrAlreadyFlagged
		}
	}

	timestamp := time.Now().UTC()

	if err := s.s.CreateFlag(ctx, postID, flaggedBy, flagType, timestamp); err != nil {
		return nil, fmt.Errorf("failed to create flag: %w", err)
	}

	return &entities.Flag{
		PostID:        postID,
		FlaggedBy:     flagger.ID,
		FlaggerHandle: flagger.Handle,
		Type:          flagType,
		FlaggedAt:     timestamp,
	}, nil
}

func (s srv) Unflag(ctx context.Context, postID, flaggedBy string) error {
	if _, err := s.s.GetPost(ctx, postID); err != nil {
		return fmt.Errorf("failed to get post: %w", err)
	}

	n, err := s.s.DeleteFlags(ctx, postID, flaggedBy)
	if err != nil {
		return fmt.Errorf("failed to delete flags: %w", err)
	}

	if n == 0 {
		return service.ErrNotFlagged
	}

	return nil
}

func (s srv) ListFlags(ctx context.Context, postID string) ([]*entities.Flag, error) {
	if _, err := s.s.GetPost(ctx, postID); err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	out, err := s.s.ListFlags(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list flags: %w", err)
	}

	return out, nil
}

func (s srv) Recap(ctx context.Context, accountID string, year, month, day int) (*entities.Recap, error) {
	if !entities.ValidDate(year, month, day) {
		return nil, service.ErrInvalidDate
	}

	acc, err := s.s.GetAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	label := entities.FormatDateLabel(year, month, day)

	key := fmt.Sprintf("%s/%s", accountID, label)
	if s.recaps != nil {
		if content := s.recaps.Get(key); content != nil {
			var out entities.Recap
			if err := json.Unmarshal(content, &out); err == nil {
				return &out, nil
			}

			log.WithField("key", key).Warn("failed to decode cached recap")
		}
	}

	r := entities.NewDayRange(year, month, day)

	var (
		followers []*entities.FollowEdge
		following []*entities.FollowEdge
		likes     []*entities.Like
		flags     []*entities.Flag
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if followers, err = s.s.ListFollowerEdges(gCtx, accountID, &r); err != nil {
			return fmt.Errorf("failed to list follower edges: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if following, err = s.s.ListFollowingEdges(gCtx, accountID, &r); err != nil {
			return fmt.Errorf("failed to list following edges: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if likes, err = s.s.ListLikesForAuthor(gCtx, accountID, r); err != nil {
			return fmt.Errorf("failed to list likes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if flags, err = s.s.ListFlagsForAuthor(gCtx, accountID, r); err != nil {
			return fmt.Errorf("failed to list flags: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &entities.Recap{
		Account:   acc.ID,
		Handle:    acc.Handle,
		Date:      label,
		Followers: followers,
		Following: following,
		Likes:     likes,
		Flags:     flags,
	}

	if s.recaps != nil {
		if content, err := json.Marshal(out); err == nil {
			s.recaps.Set(key, content, s.c.RecapCacheTTL)
		}
	}

	return out, nil
}
