package pgx

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"strconv"
	"testing"
	"time"

	"portfolio/internal/config"
	"portfolio/internal/domain"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStorageIntegration(t *testing.T) {
	ctx := context.Background()

	st := setupStorage(t)

	_, err := st.GetProfile(ctx, "u1")
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, st.PutProfile(ctx, domain.Profile{
		ID:       "u1",
		Name:     "Ada",
		Email:    "ada@example.com",
		GitHub:   "ada",
		CodeChef: "ada_chef",
	}))

	got, err := st.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, "ada_chef", got.CodeChef)
	require.NotNil(t, got.CreatedAt)

	leetcode := "ada_lc"
	empty := ""
	require.NoError(t, st.MergeProfile(ctx, "u1", domain.ProfilePatch{LeetCode: &leetcode, CodeChef: &empty}))

	merged, err := st.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", merged.Name, "fields outside the patch are kept")
	assert.Equal(t, "ada_lc", merged.LeetCode)
	assert.Empty(t, merged.CodeChef)

	name := "Grace"
	require.NoError(t, st.MergeProfile(ctx, "u2", domain.ProfilePatch{Name: &name}))
	created, err := st.GetProfile(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, "Grace", created.Name)

	require.NoError(t, st.PutProfile(ctx, domain.Profile{ID: "u1", Name: "Ada L."}))
	replaced, err := st.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", replaced.Name)
	assert.Empty(t, replaced.GitHub, "put replaces every field")
}

func TestStorageIntegration_TxRollback(t *testing.T) {
	ctx := context.Background()

	st := setupStorage(t)
	boom := errors.New("boom")

	err := st.WithTx(ctx, func(ctx context.Context) error {
		require.NotNil(t, TxFromContext(ctx))
		if err := st.PutProfile(ctx, domain.Profile{ID: "tx", Name: "Temp"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = st.GetProfile(ctx, "tx")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func setupStorage(t *testing.T) *Storage {
	t.Helper()

	if os.Getenv("SKIP_INTEGRATION") != "" {
		t.Skip("integration tests disabled")
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker unavailable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=portfolio",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })

	port, err := strconv.Atoi(resource.GetPort("5432/tcp"))
	require.NoError(t, err)

	cfg := config.PostgresConfig{
		Host:           "localhost",
		Port:           port,
		User:           "postgres",
		Password:       "postgres",
		DBName:         "portfolio",
		SSLMode:        "disable",
		MigrateTimeout: 20 * time.Second,
		ConnectTimeout: 10 * time.Second,
		MaxConns:       4,
		MinConns:       1,
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", cfg.DSN())
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })

	st, err := NewPgxStorage(context.Background(), cfg, l.Sugar())
	require.NoError(t, err)
	t.Cleanup(st.Close)

	return st
}
