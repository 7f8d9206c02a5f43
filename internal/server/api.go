package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"

	"github.com/fritter-net/pheme/internal/entities"
)

// Error ...
type Error struct {
	Error string `json:"error"`
}

// Account ...
type Account struct {
	ID     string `json:"id"`
	Handle string `json:"handle"`
}

// FollowEdge is a follow relationship keyed by handle.
type FollowEdge struct {
	Follower  string `json:"follower"`
	Following string `json:"following"`
	Date      uint64 `json:"date"`
}

// Like ...
type Like struct {
	PostID string `json:"postId"`
	User   string `json:"user"`
	Date   uint64 `json:"date"`
}

// Flag ...
type Flag struct {
	PostID   string `json:"postId"`
	User     string `json:"user"`
	FlagType string `json:"flagType"`
	Date     uint64 `json:"date"`
}

// ListFollowersResponse ...
type ListFollowersResponse struct {
	Followers []Account `json:"followers"`
}

// ListFollowingResponse ...
type ListFollowingResponse struct {
	Following []Account `json:"following"`
}

// ListLikersResponse ...
type ListLikersResponse struct {
	Likes []Account `json:"likes"`
}

// ListFlagsResponse ...
type ListFlagsResponse struct {
	Flags []Flag `json:"flags"`
}

// Recap is a summary of an account's activity for one day.
type Recap struct {
	Account   string       `json:"account"`
	Handle    string       `json:"handle"`
	Date      string       `json:"date"`
	Followers []FollowEdge `json:"followers"`
	Following []FollowEdge `json:"following"`
	Likes     []Like       `json:"likes"`
	Flags     []Flag       `json:"flags"`
}

func toAPIAccounts(aa []*entities.Account) []Account {
	out := make([]Account, len(aa))
	for i, v := range aa {
		out[i] = Account{
			ID:     v.ID,
			Handle: v.Handle,
		}
	}

	return out
}

func toAPIFollowEdge(e *entities.FollowEdge) FollowEdge {
	return FollowEdge{
		Follower:  e.FollowerHandle,
		Following: e.FollowingHandle,
		Date:      uint64(e.FollowedAt.Unix()),
	}
}

func toAPIFollowEdges(ee []*entities.FollowEdge) []FollowEdge {
	out := make([]FollowEdge, len(ee))
	for i, v := range ee {
		out[i] = toAPIFollowEdge(v)
	}

	return out
}

func toAPILike(l *entities.Like) Like {
	return Like{
		PostID: l.PostID,
		User:   l.LikerHandle,
		Date:   uint64(l.LikedAt.Unix()),
	}
}

func toAPILikes(ll []*entities.Like) []Like {
	out := make([]Like, len(ll))
	for i, v := range ll {
		out[i] = toAPILike(v)
	}

	return out
}

func toAPIFlag(f *entities.Flag) Flag {
	return Flag{
		PostID:   f.PostID,
		User:     f.FlaggerHandle,
		FlagType: f.Type,
		Date:     uint64(f.FlaggedAt.Unix()),
	}
}

func toAPIFlags(ff []*entities.Flag) []Flag {
	out := make([]Flag, len(ff))
	for i, v := range ff {
		out[i] = toAPIFlag(v)
	}

	return out
}

func toAPIRecap(r *entities.Recap) Recap {
	return Recap{
		Account:   r.Account,
		Handle:    r.Handle,
		Date:      string(r.Date),
		Followers: toAPIFollowEdges(r.Followers),
		Following: toAPIFollowEdges(r.Following),
		Likes:     toAPILikes(r.Likes),
		Flags:     toAPIFlags(r.Flags),
	}
}

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	body, _ := json.Marshal(v)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body) // nolint: errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeOK(w, status, Error{Error: message})
}

func writeInternalError(r *http.Request, w http.ResponseWriter, message string) {
	logrus.WithField("request_id", middleware.GetReqID(r.Context())).Error(message)

	writeError(w, http.StatusInternalServerError, "internal error")
}
