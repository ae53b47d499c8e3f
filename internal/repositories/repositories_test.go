package repositories

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"travelrecords/internal/domain"
	"travelrecords/internal/domain/models"
	"travelrecords/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	s, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestClientRepository_CRUD(t *testing.T) {
	repo := NewClientRepository(openStore(t))

	c := models.Client{ID: 101, Type: models.ClientVIP, Name: "Ana"}
	require.NoError(t, repo.Insert(c))

	got, err := repo.Get(101)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	err = repo.Insert(models.Client{ID: 101, Name: "Other"})
	assert.True(t, domain.IsConflict(err), "got %v", err)

	updated, err := repo.Update(101, func(c models.Client) (models.Client, error) {
		c.Name = "Ana B"
		return c, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana B", updated.Name)

	require.NoError(t, repo.Delete(101))
	_, err = repo.Get(101)
	assert.True(t, domain.IsNotFound(err))
	assert.True(t, domain.IsNotFound(repo.Delete(101)))
}

func TestRecords_UpdateKeepsPositionAndPropagatesError(t *testing.T) {
	repo := NewAirlineRepository(openStore(t))
	for _, id := range []domain.ID{3, 1, 2} {
		require.NoError(t, repo.Insert(models.Airline{ID: id, CompanyName: "A"}))
	}

	_, err := repo.Update(1, func(a models.Airline) (models.Airline, error) {
		a.CompanyName = "changed"
		return a, nil
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = repo.Update(2, func(a models.Airline) (models.Airline, error) {
		return a, boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = repo.Update(9, func(a models.Airline) (models.Airline, error) { return a, nil })
	assert.True(t, domain.IsNotFound(err))

	rows, err := repo.List()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []domain.ID{3, 1, 2}, []domain.ID{rows[0].ID, rows[1].ID, rows[2].ID})
	assert.Equal(t, "changed", rows[1].CompanyName)
	assert.Equal(t, "A", rows[2].CompanyName)
}

func TestFlightRepository_CompositeKey(t *testing.T) {
	repo := NewFlightRepository(openStore(t))
	f := models.Flight{ClientID: 101, AirlineID: 301, Date: "2999-01-01", StartCity: "Rome", EndCity: "Oslo"}
	require.NoError(t, repo.Insert(f))

	dup := f
	dup.StartCity = "Paris"
	assert.True(t, domain.IsConflict(repo.Insert(dup)))

	other := f
	other.Date = "2999-01-01T10:00:00"
	require.NoError(t, repo.Insert(other))

	byClient, err := repo.ByClient(101)
	require.NoError(t, err)
	assert.Len(t, byClient, 2)

	byAirline, err := repo.ByAirline(999)
	require.NoError(t, err)
	assert.Empty(t, byAirline)

	ok, err := repo.Exists(f.Key())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRecords_CorruptFileIsIOError(t *testing.T) {
	s := openStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "clients.json"), []byte("not json"), 0o644))

	repo := NewClientRepository(s)
	_, err := repo.List()
	assert.True(t, domain.IsIO(err), "got %v", err)

	err = repo.Insert(models.Client{ID: 1})
	assert.True(t, domain.IsIO(err), "got %v", err)
}
