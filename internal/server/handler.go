package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi"

	mm "github.com/fritter-net/pheme/internal/middleware"
	"github.com/fritter-net/pheme/internal/service"
	"github.com/fritter-net/pheme/internal/storage"
)

func (s server) listFollowers(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /follow/followers Follow ListFollowers
	//
	// Return all accounts which follow the given one, unordered.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: userId
	//   in: query
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Followers
	//     schema:
	//       "$ref": "#/definitions/ListFollowersResponse"
	//   '403':
	//     description: not authenticated
	//   '404':
	//     description: account not found

	if _, ok := mm.SessionAccount(r.Context()); !ok {
		writeError(w, http.StatusForbidden, "not authenticated")
		return
	}

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusNotFound, "invalid user id")
		return
	}

	followers, err := s.s.ListFollowers(r.Context(), userID)
	if err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	writeOK(w, http.StatusOK, ListFollowersResponse{Followers: toAPIAccounts(followers)})
}

func (s server) listFollowing(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /follow/following Follow ListFollowing
	//
	// Return all accounts the given one follows, unordered.
	//
	// ---
	// responses:
	//   '200':
	//     description: Followed accounts
	//     schema:
	//       "$ref": "#/definitions/ListFollowingResponse"

	if _, ok := mm.SessionAccount(r.Context()); !ok {
		writeError(w, http.StatusForbidden, "not authenticated")
		return
	}

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusNotFound, "invalid user id")
		return
	}

	following, err := s.s.ListFollowing(r.Context(), userID)
	if err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	writeOK(w, http.StatusOK, ListFollowingResponse{Following: toAPIAccounts(following)})
}

func (s server) follow(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /follow/{userId} Follow Follow
	//
	// Follow an account on behalf of the session account.
	//
	// ---
	// responses:
	//   '200':
	//     description: Created edge
	//     schema:
	//       "$ref": "#/definitions/FollowEdge"
	//   '406':
	//     description: self-follow
	//   '407':
	//     description: already following

	caller, ok := mm.SessionAccount(r.Context())
	if !ok {
		writeError(w, http.StatusForbidden, "not authenticated")
		return
	}

	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeError(w, http.StatusNotFound, "invalid user id")
		return
	}

	edge, err := s.s.Follow(r.Context(), caller, userID)
	if err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIFollowEdge(edge))
}

func (s server) unfollow(w http.ResponseWriter, r *http.Request) {
	caller, ok := mm.SessionAccount(r.Context())
	if !ok {
		writeError(w, http.StatusForbidden, "not authenticated")
		return
	}

	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeError(w, http.StatusNotFound, "invalid user id")
		return
	}

	if err := s.s.Unfollow(r.Context(), caller, userID); err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	writeOK(w, http.StatusOK, struct{}{})
}

func (s server) listLikers(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /likes Likes ListLikers
	//
	// Return all accounts which like the given post, unordered.
	//
	// ---
	// parameters:
	// - name: freetId
	//   in: query
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Likers
	//     schema:
	//       "$ref": "#/definitions/ListLikersResponse"

	if _, ok := mm.SessionAccount(r.Context()); !ok {
		writeError(w, http.StatusForbidden, "not authenticated")
		return
	}

	postID := r.URL.Query().Get("freetId")
	if postID == "" {
		writeError(w, http.StatusNotFound, "invalid post id")
		return
	}

	likers, err := s.s.ListLikers(r.Context(), postID)
	if err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	writeOK(w, http.StatusOK, ListLikersResponse{Likes: toAPIAccounts(likers)})
}

func (s server) like(w http.ResponseWriter, r *http.Request) {
	caller, ok := mm.SessionAccount(r.Context())
	if !ok {
		writeError(w, http.StatusForbidden, "not authenticated")
		return
	}

	postID := chi.URLParam(r, "freetId")
	if postID == "" {
		writeError(w, http.StatusNotFound, "invalid post id")
		return
	}

	like, err := s.s.Like(r.Context(), postID, caller)
	if err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	writeOK(w, http.StatusOK, toAPILike(like))
}

func (s server) unlike(w http.ResponseWriter, r *http.Request) {
	caller, ok := mm.SessionAccount(r.Context())
	if !ok {
		writeError(w, http.StatusForbidden, "not authenticated")
		return
	}

	postID := chi.URLParam(r, "freetId")
	if postID == "" {
		writeError(w, http.StatusNotFound, "invalid post id")
		return
	}

	if err := s.s.Unlike(r.Context(), postID, caller); err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	writeOK(w, http.StatusOK, struct{}{})
}

func (s server) listFlags(w http.ResponseWriter, r *http.Request) {
	postID := r.URL.Query().Get("freetId")
	if postID == "" {
		writeError(w, http.StatusNotFound, "invalid post id")
		return
	}

	flags, err := s.s.ListFlags(r.Context(), postID)
	if err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	writeOK(w, http.StatusOK, ListFlagsResponse{Flags: toAPIFlags(flags)})
}

func (s server) flag(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /flag Flag Flag
	//
	// Flag a post with a moderation classifier on behalf of the session
	// account.
	//
	// ---
	// responses:
	//   '200':
	//     description: Created flag
	//     schema:
	//       "$ref": "#/definitions/Flag"

	caller, ok := mm.SessionAccount(r.Context())
	if !ok {
		writeError(w, http.StatusForbidden, "not authenticated")
		return
	}

	var req struct {
		PostID   string `json:"postId"`
		FlagType string `json:"flagType"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PostID == "" || req.FlagType == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	flag, err := s.s.FlagPost(r.Context(), req.PostID, caller, req.FlagType)
	if err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIFlag(flag))
}

func (s server) unflag(w http.ResponseWriter, r *http.Request) {
	caller, ok := mm.SessionAccount(r.Context())
	if !ok {
		writeError(w, http.StatusForbidden, "not authenticated")
		return
	}

	var req struct {
		PostID string `json:"postId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PostID == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := s.s.Unflag(r.Context(), req.PostID, caller); err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	writeOK(w, http.StatusOK, struct{}{})
}

func (s server) recap(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /recap Recap Recap
	//
	// Compute the session account's social activity summary for one
	// calendar day.
	//
	// ---
	// responses:
	//   '200':
	//     description: Recap
	//     schema:
	//       "$ref": "#/definitions/Recap"
	//   '400':
	//     description: invalid date

	caller, ok := mm.SessionAccount(r.Context())
	if !ok {
		writeError(w, http.StatusForbidden, "not authenticated")
		return
	}

	var req struct {
		Year  int `json:"year"`
		Month int `json:"month"`
		Day   int `json:"day"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	recap, err := s.s.Recap(r.Context(), caller, req.Year, req.Month, req.Day)
	if err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIRecap(recap))
}

// writeServiceError translates business-rule errors into the legacy
// status codes the clients expect.
func (s server) writeServiceError(r *http.Request, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrSelfFollow):
		writeError(w, http.StatusNotAcceptable, "can not follow self")
	case errors.Is(err, service.ErrAlreadyFollowing):
		writeError(w, http.StatusProxyAuthRequired, "already following")
	case errors.Is(err, service.ErrNotFollowing):
		writeError(w, http.StatusMethodNotAllowed, "not following")
	case errors.Is(err, service.ErrAlreadyLiked):
		writeError(w, http.StatusMethodNotAllowed, "already liked")
	case errors.Is(err, service.ErrNotLiked):
		writeError(w, http.StatusConflict, "not liked")
	case errors.Is(err, service.ErrAlreadyFlagged):
		writeError(w, http.StatusConflict, "already flagged")
	case errors.Is(err, service.ErrNotFlagged):
		writeError(w, http.StatusConflict, "not flagged")
	case errors.Is(err, service.ErrInvalidDate):
		writeError(w, http.StatusBadRequest, "invalid date")
	default:
		writeInternalError(r, w, err.Error())
	}
}
