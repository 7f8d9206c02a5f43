// Package directory polls the user and content services and mirrors
// their accounts and posts into local storage. Accounts and posts are
// owned by those services; the engagement layer only keeps reference
// copies for joins and referential integrity.
package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/fritter-net/pheme/internal/consumer"
	"github.com/fritter-net/pheme/internal/entities"
	"github.com/fritter-net/pheme/internal/service"
	"github.com/fritter-net/pheme/internal/storage"
)

var log = logrus.WithField("package", "directory")

// staleSyncFactor is how many poll intervals may pass without a
// successful sync before Ping reports the consumer unhealthy.
const staleSyncFactor = 3

// Config ...
type Config struct {
	AccountsURL   string
	PostsURL      string
	PollInterval  time.Duration
	RetryInterval time.Duration
}

type accountDTO struct {
	ID        string `json:"id"`
	Handle    string `json:"handle"`
	CreatedAt int64  `json:"createdAt"`
}

type postDTO struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
}

type directory struct {
	client *http.Client
	s      service.Service
	c      Config

	mu        sync.RWMutex
	lastSync  time.Time
	watermark time.Time
}

// New creates new instance of directory consumer.
func New(client *http.Client, s service.Service, c Config) consumer.Consumer {
	return &directory{
		client: client,
		s:      s,
		c:      c,
	}
}

func (d *directory) Run(ctx context.Context) error {
	t := time.NewTicker(d.c.PollInterval)
	defer t.Stop()

	for {
		if err := d.sync(ctx); err != nil {
			log.WithError(err).Error("failed to sync directory")

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(d.c.RetryInterval):
				continue
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
	}
}

func (d *directory) Ping(_ context.Context) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.lastSync.IsZero() {
		return errors.New("directory is not synced yet")
	}

	if time.Since(d.lastSync) > staleSyncFactor*d.c.PollInterval {
		return errors.New("directory sync is stale")
	}

	return nil
}

func (d *directory) sync(ctx context.Context) error {
	d.mu.RLock()
	watermark := d.watermark
	d.mu.RUnlock()

	start := time.Now()

	if err := d.syncAccounts(ctx, watermark); err != nil {
		return fmt.Errorf("failed to sync accounts: %w", err)
	}

	// posts reference accounts, so accounts go first
	if err := d.syncPosts(ctx, watermark); err != nil {
		return fmt.Errorf("failed to sync posts: %w", err)
	}

	d.mu.Lock()
	d.lastSync = time.Now()
	d.watermark = start
	d.mu.Unlock()

	return nil
}

func (d *directory) syncAccounts(ctx context.Context, updatedAfter time.Time) error {
	var aa []accountDTO
	if err := d.fetch(ctx, d.c.AccountsURL, updatedAfter, &aa); err != nil {
		return err
	}

	log.WithField("count", len(aa)).Debug("fetched accounts")
	log.Tracef("accounts payload: %s", spew.Sdump(aa))

	for _, a := range aa {
		if err := d.s.SaveAccount(ctx, &entities.Account{
			ID:        a.ID,
			Handle:    a.Handle,
			CreatedAt: time.Unix(a.CreatedAt, 0).UTC(),
		}); err != nil {
			return err
		}
	}

	return nil
}

func (d *directory) syncPosts(ctx context.Context, updatedAfter time.Time) error {
	var pp []postDTO
	if err := d.fetch(ctx, d.c.PostsURL, updatedAfter, &pp); err != nil {
		return err
	}

	log.WithField("count", len(pp)).Debug("fetched posts")
	log.Tracef("posts payload: %s", spew.Sdump(pp))

	for _, p := range pp {
		err := d.s.SavePost(ctx, &entities.Post{
			ID:        p.ID,
			Author:    p.Author,
			Content:   p.Content,
			CreatedAt: time.Unix(p.CreatedAt, 0).UTC(),
		})

		// the author may not have been exported yet, retry on next poll
		if errors.Is(err, storage.ErrNotFound) {
			log.WithField("post", p.ID).Warn("skipped post with unknown author")
			continue
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (d *directory) fetch(ctx context.Context, rawurl string, updatedAfter time.Time, out interface{}) error {
	u, err := url.Parse(rawurl)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}

	if !updatedAfter.IsZero() {
		q := u.Query()
		q.Set("updatedAfter", strconv.FormatInt(updatedAfter.Unix(), 10))
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close() // nolint: errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
