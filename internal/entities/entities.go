// Package entities contains main entities of service.
package entities

import (
	"time"
)

// Account is a reference copy of a user-service account.
type Account struct {
	ID        string
	Handle    string
	CreatedAt time.Time
}

// Post is a reference copy of a content-service post.
type Post struct {
	ID        string
	Author    string
	Content   string
	CreatedAt time.Time
}

// FollowEdge is a directed follow relationship between two accounts.
type FollowEdge struct {
	Follower        string
	FollowerHandle  string
	Following       string
	FollowingHandle string
	FollowedAt      time.Time
}

// Like ...
type Like struct {
	PostID      string
	LikedBy     string
	LikerHandle string
	LikedAt     time.Time
}

// Flag is a moderation report of a post. A user may flag the same post
// more than once with different types.
type Flag struct {
	PostID        string
	FlaggedBy     string
	FlaggerHandle string
	Type          string
	FlaggedAt     time.Time
}

// Recap is a summary of an account's social activity for one calendar day.
// It is recomputed on request, never stored.
type Recap struct {
	Account   string
	Handle    string
	Date      DateLabel
	Followers []*FollowEdge
	Following []*FollowEdge
	Likes     []*Like
	Flags     []*Flag
}
