//+build integration

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	m "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/fritter-net/pheme/internal/entities"
	"github.com/fritter-net/pheme/internal/storage"
)

var (
	db  *sql.DB
	ctx = context.Background()
	s   storage.Storage
)

func TestMain(m *testing.M) {
	shutdown := setup()

	s = New(db)

	code := m.Run()
	shutdown()
	os.Exit(code)
}

func setup() func() {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:12",
		Env:          map[string]string{"POSTGRES_PASSWORD": "root"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
	})
	if err != nil {
		logrus.WithError(err).Fatalf("failed to create container")
	}

	if err := c.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to start container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to get host")
	}

	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		logrus.WithError(err).Fatal("failed to map port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=postgres password=root sslmode=disable", host, port.Int())

	db, err = sql.Open("postgres", dsn)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open connection")
	}

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	shutdownFn := func() {
		if c != nil {
			c.Terminate(ctx)
		}
	}

	migrate("postgres", "root", host, "postgres", port.Int())

	return shutdownFn
}

func migrate(username, password, hostname, dbname string, port int) {
	_, currFile, _, ok := runtime.Caller(0)
	if !ok {
		logrus.Fatal("failed to get current file location")
	}

	migrations := filepath.Join(currFile, "../../../../scripts/migrations/postgres/")

	migrator, err := m.New(
		fmt.Sprintf("file://%s", migrations),
		fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			username, password, hostname, port, dbname),
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		logrus.WithError(err).Fatal("failed to migrate")
	}
}

func cleanup(t *testing.T) {
	_, err := db.ExecContext(ctx, `DELETE FROM flag`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM "like"`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM follow`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM post`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM account`)
	require.NoError(t, err)
}

func saveFixtures(t *testing.T) {
	require.NoError(t, s.SaveAccount(ctx, &entities.Account{ID: "1", Handle: "alice", CreatedAt: time.Unix(1, 0)}))
	require.NoError(t, s.SaveAccount(ctx, &entities.Account{ID: "2", Handle: "bob", CreatedAt: time.Unix(2, 0)}))
	require.NoError(t, s.SaveAccount(ctx, &entities.Account{ID: "3", Handle: "carol", CreatedAt: time.Unix(3, 0)}))

	require.NoError(t, s.SavePost(ctx, &entities.Post{ID: "p1", Author: "2", Content: "first", CreatedAt: time.Unix(10, 0)}))
	require.NoError(t, s.SavePost(ctx, &entities.Post{ID: "p2", Author: "3", Content: "second", CreatedAt: time.Unix(20, 0)}))
}

func TestPg_SaveAccount(t *testing.T) {
	defer cleanup(t)

	require.NoError(t, s.SaveAccount(ctx, &entities.Account{ID: "1", Handle: "alice", CreatedAt: time.Unix(1, 0)}))

	a, err := s.GetAccount(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, "alice", a.Handle)

	// repeated save updates the handle
	require.NoError(t, s.SaveAccount(ctx, &entities.Account{ID: "1", Handle: "alice2", CreatedAt: time.Unix(1, 0)}))

	a, err = s.GetAccount(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, "alice2", a.Handle)
}

func TestPg_GetAccount_NotFound(t *testing.T) {
	defer cleanup(t)

	_, err := s.GetAccount(ctx, "missing")
	require.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestPg_SavePost(t *testing.T) {
	defer cleanup(t)

	saveFixtures(t)

	p, err := s.GetPost(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "2", p.Author)
	require.Equal(t, "first", p.Content)

	require.NoError(t, s.SavePost(ctx, &entities.Post{ID: "p1", Author: "2", Content: "edited", CreatedAt: time.Unix(10, 0)}))

	p, err = s.GetPost(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "edited", p.Content)
}

func TestPg_SavePost_UnknownAuthor(t *testing.T) {
	defer cleanup(t)

	err := s.SavePost(ctx, &entities.Post{ID: "p1", Author: "ghost", CreatedAt: time.Unix(10, 0)})
	require.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestPg_CreateFollow(t *testing.T) {
	defer cleanup(t)

	saveFixtures(t)

	require.NoError(t, s.CreateFollow(ctx, "1", "2", time.Unix(100, 0)))

	require.True(t, errors.Is(s.CreateFollow(ctx, "1", "2", time.Unix(101, 0)), storage.ErrAlreadyExists))
	require.True(t, errors.Is(s.CreateFollow(ctx, "1", "ghost", time.Unix(100, 0)), storage.ErrNotFound))
}

func TestPg_DeleteFollows(t *testing.T) {
	defer cleanup(t)

	saveFixtures(t)

	require.NoError(t, s.CreateFollow(ctx, "1", "2", time.Unix(100, 0)))

	n, err := s.DeleteFollows(ctx, "1", "2")
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	n, err = s.DeleteFollows(ctx, "1", "2")
	require.NoError(t, err)
	require.EqualValues(t, 0, n)
}

func TestPg_ListFollowers(t *testing.T) {
	defer cleanup(t)

	saveFixtures(t)

	require.NoError(t, s.CreateFollow(ctx, "1", "2", time.Unix(100, 0)))
	require.NoError(t, s.CreateFollow(ctx, "3", "2", time.Unix(101, 0)))
	require.NoError(t, s.CreateFollow(ctx, "2", "1", time.Unix(102, 0)))

	followers, err := s.ListFollowers(ctx, "2")
	require.NoError(t, err)
	require.Len(t, followers, 2)

	following, err := s.ListFollowing(ctx, "1")
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "bob", following[0].Handle)
}

func TestPg_ListFollowerEdges(t *testing.T) {
	defer cleanup(t)

	saveFixtures(t)

	inDay := time.Date(2024, 3, 3, 12, 0, 0, 0, time.UTC)
	dayBefore := time.Date(2024, 3, 2, 23, 59, 59, 0, time.UTC)

	require.NoError(t, s.CreateFollow(ctx, "1", "2", inDay))
	require.NoError(t, s.CreateFollow(ctx, "3", "2", dayBefore))

	all, err := s.ListFollowerEdges(ctx, "2", nil)
	require.NoError(t, err)
	require.Len(t, all, 2)

	day := entities.NewDayRange(2024, 3, 3)

	ee, err := s.ListFollowerEdges(ctx, "2", &day)
	require.NoError(t, err)
	require.Len(t, ee, 1)
	assert.Equal(t, "1", ee[0].Follower)
	assert.Equal(t, "alice", ee[0].FollowerHandle)
	assert.Equal(t, "bob", ee[0].FollowingHandle)

	ee, err = s.ListFollowingEdges(ctx, "1", &day)
	require.NoError(t, err)
	require.Len(t, ee, 1)
	assert.Equal(t, "2", ee[0].Following)
}

func TestPg_CreateLike(t *testing.T) {
	defer cleanup(t)

	saveFixtures(t)

	require.NoError(t, s.CreateLike(ctx, "p1", "1", time.Unix(100, 0)))

	require.True(t, errors.Is(s.CreateLike(ctx, "p1", "1", time.Unix(101, 0)), storage.ErrAlreadyExists))
	require.True(t, errors.Is(s.CreateLike(ctx, "ghost", "1", time.Unix(100, 0)), storage.ErrNotFound))

	likers, err := s.ListLikers(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, likers, 1)
	assert.Equal(t, "alice", likers[0].Handle)
}

func TestPg_DeleteLikes(t *testing.T) {
	defer cleanup(t)

	saveFixtures(t)

	require.NoError(t, s.CreateLike(ctx, "p1", "1", time.Unix(100, 0)))

	n, err := s.DeleteLikes(ctx, "p1", "1")
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	n, err = s.DeleteLikes(ctx, "p1", "1")
	require.NoError(t, err)
	require.EqualValues(t, 0, n)
}

func TestPg_ListLikesForAuthor(t *testing.T) {
	defer cleanup(t)

	saveFixtures(t)

	inDay := time.Date(2024, 3, 3, 12, 0, 0, 0, time.UTC)
	dayAfter := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	// p1 belongs to 2, p2 belongs to 3
	require.NoError(t, s.CreateLike(ctx, "p1", "1", inDay))
	require.NoError(t, s.CreateLike(ctx, "p1", "3", dayAfter))
	require.NoError(t, s.CreateLike(ctx, "p2", "1", inDay))

	ll, err := s.ListLikesForAuthor(ctx, "2", entities.NewDayRange(2024, 3, 3))
	require.NoError(t, err)
	require.Len(t, ll, 1)
	assert.Equal(t, "p1", ll[0].PostID)
	assert.Equal(t, "alice", ll[0].LikerHandle)
}

func TestPg_CreateFlag(t *testing.T) {
	defer cleanup(t)

	saveFixtures(t)

	// the same user may flag the same post repeatedly
	require.NoError(t, s.CreateFlag(ctx, "p1", "1", "spam", time.Unix(100, 0)))
	require.NoError(t, s.CreateFlag(ctx, "p1", "1", "abuse", time.Unix(101, 0)))
	require.True(t, errors.Is(s.CreateFlag(ctx, "ghost", "1", "spam", time.Unix(100, 0)), storage.ErrNotFound))

	n, err := s.CountFlags(ctx, "p1", "1")
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	ff, err := s.ListFlags(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, ff, 2)
}

func TestPg_DeleteFlags(t *testing.T) {
	defer cleanup(t)

	saveFixtures(t)

	require.NoError(t, s.CreateFlag(ctx, "p1", "1", "spam", time.Unix(100, 0)))
	require.NoError(t, s.CreateFlag(ctx, "p1", "1", "abuse", time.Unix(101, 0)))
	require.NoError(t, s.CreateFlag(ctx, "p1", "3", "spam", time.Unix(102, 0)))

	n, err := s.DeleteFlags(ctx, "p1", "1")
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	ff, err := s.ListFlags(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, ff, 1)
	assert.Equal(t, "carol", ff[0].FlaggerHandle)
}

func TestPg_ListFlagsForAuthor(t *testing.T) {
	defer cleanup(t)

	saveFixtures(t)

	inDay := time.Date(2024, 3, 3, 12, 0, 0, 0, time.UTC)
	dayBefore := time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.CreateFlag(ctx, "p1", "1", "spam", inDay))
	require.NoError(t, s.CreateFlag(ctx, "p1", "3", "abuse", dayBefore))
	require.NoError(t, s.CreateFlag(ctx, "p2", "1", "spam", inDay))

	ff, err := s.ListFlagsForAuthor(ctx, "2", entities.NewDayRange(2024, 3, 3))
	require.NoError(t, err)
	require.Len(t, ff, 1)
	assert.Equal(t, "spam", ff[0].Type)
	assert.Equal(t, "alice", ff[0].FlaggerHandle)
}

func TestPg_InTx(t *testing.T) {
	defer cleanup(t)

	require.NoError(t, s.InTx(ctx, func(tx storage.Storage) error {
		return tx.SaveAccount(ctx, &entities.Account{ID: "1", Handle: "alice", CreatedAt: time.Unix(1, 0)})
	}))

	_, err := s.GetAccount(ctx, "1")
	require.NoError(t, err)

	errRollback := errors.New("rollback")

	require.True(t, errors.Is(s.InTx(ctx, func(tx storage.Storage) error {
		if err := tx.SaveAccount(ctx, &entities.Account{ID: "2", Handle: "bob", CreatedAt: time.Unix(2, 0)}); err != nil {
			return err
		}
		return errRollback
	}), errRollback))

	_, err = s.GetAccount(ctx, "2")
	require.True(t, errors.Is(err, storage.ErrNotFound))
}
