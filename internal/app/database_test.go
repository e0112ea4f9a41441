package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/petdb/internal/adapters/fs"
	logAdapter "github.com/bft-labs/petdb/internal/adapters/log"
	"github.com/bft-labs/petdb/internal/domain"
	"github.com/bft-labs/petdb/internal/ports"
)

// memRepo is an in-memory ports.LineRepository.
type memRepo struct {
	lines    []string
	exists   bool
	readErr  error
	writeErr error
	writes   int
}

func (m *memRepo) ReadLines(ctx context.Context) ([]string, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	if !m.exists {
		return nil, nil
	}
	return append([]string{}, m.lines...), nil
}

func (m *memRepo) WriteLines(ctx context.Context, lines []string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.lines = append([]string(nil), lines...)
	m.exists = true
	m.writes++
	return nil
}

func (m *memRepo) Stat(ctx context.Context) (ports.FileInfo, error) {
	return ports.FileInfo{Exists: m.exists, Size: int64(len(m.lines))}, nil
}

func (m *memRepo) Path() string { return "mem" }

// infoLogger keeps info messages.
type infoLogger struct {
	logAdapter.NoopLogger
	infos []string
}

func (l *infoLogger) Info(msg string, fields ...ports.Field) { l.infos = append(l.infos, msg) }

func newTestDatabase(repo ports.LineRepository) *Database {
	return NewDatabase(repo, logAdapter.NewNoopLogger())
}

func TestDatabase_LoadPartialFailure(t *testing.T) {
	repo := &memRepo{exists: true, lines: []string{"Rex 4", "Bad Line Extra", "Milo 7"}}
	db := newTestDatabase(repo)

	report, err := db.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Loaded)
	assert.False(t, report.OK())
	require.Len(t, report.Errors, 1)
	assert.Equal(t, 2, report.Errors[0].Line)
	assert.Equal(t, "Bad Line Extra", report.Errors[0].Text)
	assert.ErrorIs(t, report.Errors[0], domain.ErrMalformedLine)

	assert.Equal(t, []domain.Entry{
		{Position: 0, Name: "Rex", Age: 4},
		{Position: 1, Name: "Milo", Age: 7},
	}, db.List())
}

func TestDatabase_LoadCollectsEveryKindOfLineError(t *testing.T) {
	repo := &memRepo{exists: true, lines: []string{
		"Rex 4",
		"",
		"Name notanumber",
		"Old 51",
		"   ",
		"OnlyOneToken",
		"Milo 7",
	}}
	db := newTestDatabase(repo)

	report, err := db.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Loaded)
	require.Len(t, report.Errors, 3)

	assert.Equal(t, 3, report.Errors[0].Line)
	assert.ErrorIs(t, report.Errors[0], domain.ErrNonNumericAge)
	assert.Equal(t, 4, report.Errors[1].Line)
	assert.ErrorIs(t, report.Errors[1], domain.ErrInvalidAge)
	assert.Equal(t, 6, report.Errors[2].Line)
	assert.ErrorIs(t, report.Errors[2], domain.ErrMalformedLine)

	var lineErr *LineError
	require.True(t, errors.As(report.Errors[1], &lineErr))
	assert.Contains(t, lineErr.Error(), "line 4")
}

func TestDatabase_LoadBeyondCapacity(t *testing.T) {
	lines := make([]string, 0, domain.Capacity+2)
	for i := 0; i < domain.Capacity+2; i++ {
		lines = append(lines, "Pet 3")
	}
	db := newTestDatabase(&memRepo{exists: true, lines: lines})

	report, err := db.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Capacity, report.Loaded)
	require.Len(t, report.Errors, 2)
	assert.ErrorIs(t, report.Errors[0], domain.ErrDatabaseFull)
	assert.Equal(t, domain.Capacity, db.Size())
}

func TestDatabase_LoadMissingFile(t *testing.T) {
	db := newTestDatabase(&memRepo{})

	report, err := db.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, 0, db.Size())
	assert.True(t, db.Empty())
}

func TestDatabase_LoadEmptyFileIsNotMissing(t *testing.T) {
	missing := &infoLogger{}
	_, err := NewDatabase(&memRepo{}, missing).Load(context.Background())
	require.NoError(t, err)
	assert.Contains(t, missing.infos, "no data file, starting empty")

	path := filepath.Join(t.TempDir(), "pets.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	empty := &infoLogger{}
	report, err := NewDatabase(fs.NewTextFile(path), empty).Load(context.Background())
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.NotContains(t, empty.infos, "no data file, starting empty")
}

func TestDatabase_LoadOversizedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pets.txt")
	long := strings.Repeat("n", 70*1024) + " 3"
	require.NoError(t, os.WriteFile(path, []byte("Rex 4\n"+long+"\nMilo 7\n"), 0o644))

	db := newTestDatabase(fs.NewTextFile(path))
	report, err := db.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Loaded)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, 2, report.Errors[0].Line)
	assert.ErrorIs(t, report.Errors[0], domain.ErrMalformedLine)

	entries := db.List()
	require.Len(t, entries, 2)
	assert.Equal(t, "Rex", entries[0].Name)
	assert.Equal(t, "Milo", entries[1].Name)
}

func TestDatabase_LoadReadError(t *testing.T) {
	db := newTestDatabase(&memRepo{readErr: errors.New("disk on fire")})

	_, err := db.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestDatabase_SaveWritesStoreOrder(t *testing.T) {
	repo := &memRepo{exists: true, lines: []string{"Old 1", "Older 2"}}
	db := newTestDatabase(repo)

	_, err := db.AddPet("Rex", 4)
	require.NoError(t, err)
	_, err = db.Add("Fido   2")
	require.NoError(t, err)
	_, err = db.AddPet("Milo", 7)
	require.NoError(t, err)
	require.NoError(t, db.Remove(1))

	require.NoError(t, db.Save(context.Background()))
	assert.Equal(t, []string{"Rex 4", "Milo 7"}, repo.lines)
}

func TestDatabase_SaveError(t *testing.T) {
	db := newTestDatabase(&memRepo{writeErr: errors.New("read-only")})
	_, err := db.AddPet("Rex", 4)
	require.NoError(t, err)

	err = db.Save(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, db.Size())
}

func TestDatabase_AddRejectsBadInput(t *testing.T) {
	db := newTestDatabase(&memRepo{})

	_, err := db.Add("OnlyOneToken")
	require.ErrorIs(t, err, domain.ErrMalformedLine)
	_, err = db.Add("Rex old")
	require.ErrorIs(t, err, domain.ErrNonNumericAge)
	_, err = db.Add("Rex 0")
	require.ErrorIs(t, err, domain.ErrInvalidAge)
	require.ErrorIs(t, db.Remove(0), domain.ErrInvalidPosition)

	assert.Equal(t, 0, db.Size())
}

func TestDatabase_FileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pets.txt")
	require.NoError(t, os.WriteFile(path, []byte("Rex 4\nBad Line Extra\nMilo 7\n"), 0o644))
	ctx := context.Background()

	db := newTestDatabase(fs.NewTextFile(path))
	report, err := db.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Loaded)

	_, err = db.AddPet("Fido", 2)
	require.NoError(t, err)
	require.NoError(t, db.Save(ctx))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Rex 4\nMilo 7\nFido 2\n", string(data))

	reloaded := newTestDatabase(fs.NewTextFile(path))
	report, err = reloaded.Load(ctx)
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, db.List(), reloaded.List())
}

func TestDatabase_Stale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pets.txt")
	ctx := context.Background()

	db := newTestDatabase(fs.NewTextFile(path))
	_, err := db.Load(ctx)
	require.NoError(t, err)

	stale, err := db.Stale(ctx)
	require.NoError(t, err)
	assert.False(t, stale)

	_, err = db.AddPet("Rex", 4)
	require.NoError(t, err)
	require.NoError(t, db.Save(ctx))

	stale, err = db.Stale(ctx)
	require.NoError(t, err)
	assert.False(t, stale, "own save must not count as stale")

	later := time.Now().Add(2 * time.Second)
	require.NoError(t, os.WriteFile(path, []byte("Rex 4\nIntruder 9\n"), 0o644))
	require.NoError(t, os.Chtimes(path, later, later))

	stale, err = db.Stale(ctx)
	require.NoError(t, err)
	assert.True(t, stale)
}
