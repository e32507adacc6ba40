package repository_test

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webforgehq/outreach/internal/repository"
)

func insertTestDomain(t *testing.T, db *sqlx.DB, domain string, mailboxes []string, warmupDone, dnsVerified, isActive bool, dailyLimit, dailySent int, warmupStartedAt *time.Time) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO outreach_domains (
			domain, mailboxes, warmup_done, dns_verified, is_active,
			daily_limit, daily_sent, warmup_started_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, domain, pq.StringArray(mailboxes), warmupDone, dnsVerified, isActive, dailyLimit, dailySent, warmupStartedAt).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestDomainRepository_ConsumeDailySlot_StopsAtLimit(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db, cleanup := setupTestDB(t)
	defer cleanup()
	defer cleanupTestData(db)

	repo := repository.NewRepository(db)

	id := insertTestDomain(t, db, "send.webforgehq.com", []string{"anna@send.webforgehq.com"},
		true, true, true, 2, 0, nil)

	ok, err := repo.Domain().ConsumeDailySlot(id)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Domain().ConsumeDailySlot(id)
	require.NoError(t, err)
	assert.True(t, ok)

	// Limit reached; the third slot is refused.
	ok, err = repo.Domain().ConsumeDailySlot(id)
	require.NoError(t, err)
	assert.False(t, ok)

	var dailySent, totalSent int
	require.NoError(t, db.QueryRow("SELECT daily_sent, total_sent FROM outreach_domains WHERE id = $1", id).Scan(&dailySent, &totalSent))
	assert.Equal(t, 2, dailySent)
	assert.Equal(t, 2, totalSent)
}

func TestDomainRepository_Eligibility(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db, cleanup := setupTestDB(t)
	defer cleanup()
	defer cleanupTestData(db)

	repo := repository.NewRepository(db)

	has, err := repo.Domain().HasEligible()
	require.NoError(t, err)
	assert.False(t, has)

	// Still warming up: not eligible.
	insertTestDomain(t, db, "warming.webforgehq.com", []string{"a@warming.webforgehq.com"},
		false, true, false, 0, 0, nil)
	// Exhausted for today: not eligible.
	insertTestDomain(t, db, "spent.webforgehq.com", []string{"a@spent.webforgehq.com"},
		true, true, true, 10, 10, nil)
	// Eligible, with load.
	busyID := insertTestDomain(t, db, "busy.webforgehq.com", []string{"a@busy.webforgehq.com"},
		true, true, true, 50, 30, nil)
	// Eligible, idle; must sort first.
	idleID := insertTestDomain(t, db, "idle.webforgehq.com", []string{"a@idle.webforgehq.com"},
		true, true, true, 50, 2, nil)

	has, err = repo.Domain().HasEligible()
	require.NoError(t, err)
	assert.True(t, has)

	eligible, err := repo.Domain().ListEligible()
	require.NoError(t, err)
	require.Len(t, eligible, 2)
	assert.Equal(t, idleID, eligible[0].ID)
	assert.Equal(t, busyID, eligible[1].ID)
}

func TestDomainRepository_WarmupLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db, cleanup := setupTestDB(t)
	defer cleanup()
	defer cleanupTestData(db)

	repo := repository.NewRepository(db)

	started := time.Now().AddDate(0, 0, -15)
	recent := time.Now().AddDate(0, 0, -3)

	readyID := insertTestDomain(t, db, "ready.webforgehq.com", []string{"a@ready.webforgehq.com"},
		false, true, false, 0, 0, &started)
	// Started too recently.
	insertTestDomain(t, db, "young.webforgehq.com", []string{"a@young.webforgehq.com"},
		false, true, false, 0, 0, &recent)
	// DNS never verified, never promotes.
	insertTestDomain(t, db, "unverified.webforgehq.com", []string{"a@unverified.webforgehq.com"},
		false, false, false, 0, 0, &started)

	ready, err := repo.Domain().ListWarmupReady(time.Now().AddDate(0, 0, -14))
	require.NoError(t, err)
	require.Len(t, ready, 1)
	assert.Equal(t, readyID, ready[0].ID)

	require.NoError(t, repo.Domain().MarkWarmupDone(readyID, 50))

	eligible, err := repo.Domain().ListEligible()
	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, 50, eligible[0].DailyLimit)
	assert.True(t, eligible[0].WarmupDone)
	assert.True(t, eligible[0].IsActive)
}

func TestDomainRepository_ResetDailyCounters(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db, cleanup := setupTestDB(t)
	defer cleanup()
	defer cleanupTestData(db)

	repo := repository.NewRepository(db)

	insertTestDomain(t, db, "one.webforgehq.com", []string{"a@one.webforgehq.com"},
		true, true, true, 50, 12, nil)
	insertTestDomain(t, db, "two.webforgehq.com", []string{"a@two.webforgehq.com"},
		true, true, true, 50, 50, nil)
	insertTestDomain(t, db, "zero.webforgehq.com", []string{"a@zero.webforgehq.com"},
		true, true, true, 50, 0, nil)

	reset, err := repo.Domain().ResetDailyCounters()
	require.NoError(t, err)
	assert.Equal(t, int64(2), reset)

	var remaining int
	require.NoError(t, db.Get(&remaining, "SELECT COUNT(*) FROM outreach_domains WHERE daily_sent > 0"))
	assert.Zero(t, remaining)
}
