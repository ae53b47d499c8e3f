package repositories

import (
	"travelrecords/internal/domain"
	"travelrecords/internal/storage"
)

// records is the shared whole-file CRUD over one collection keyed by K.
type records[K comparable, T any] struct {
	col      *storage.Collection[T]
	key      func(T) K
	resource string
}

func (r records[K, T]) List() ([]T, error) {
	rows, err := r.col.Load()
	if err != nil {
		return nil, domain.IOError{Op: "load " + r.col.Name(), Err: err}
	}
	return rows, nil
}

func (r records[K, T]) Get(k K) (T, error) {
	var zero T
	rows, err := r.List()
	if err != nil {
		return zero, err
	}
	if i := r.index(rows, k); i >= 0 {
		return rows[i], nil
	}
	return zero, r.notFound(k)
}

func (r records[K, T]) Exists(k K) (bool, error) {
	rows, err := r.List()
	if err != nil {
		return false, err
	}
	return r.index(rows, k) >= 0, nil
}

// Insert appends rec, failing with ConflictError if its key is taken.
func (r records[K, T]) Insert(rec T) error {
	k := r.key(rec)
	return r.mutate(func(rows []T) ([]T, error) {
		if r.index(rows, k) >= 0 {
			return nil, domain.ConflictError{
				Resource: r.resource,
				Msg:      r.resource + " " + keyString(k) + " already exists",
			}
		}
		return append(rows, rec), nil
	})
}

// Update replaces the record at k with apply's result, keeping its position.
// apply runs under the collection lock.
func (r records[K, T]) Update(k K, apply func(T) (T, error)) (T, error) {
	var out T
	err := r.mutate(func(rows []T) ([]T, error) {
		i := r.index(rows, k)
		if i < 0 {
			return nil, r.notFound(k)
		}
		next, err := apply(rows[i])
		if err != nil {
			return nil, err
		}
		rows[i] = next
		out = next
		return rows, nil
	})
	return out, err
}

// Delete removes the record at k and preserves the order of the rest.
func (r records[K, T]) Delete(k K) error {
	return r.mutate(func(rows []T) ([]T, error) {
		i := r.index(rows, k)
		if i < 0 {
			return nil, r.notFound(k)
		}
		return append(rows[:i], rows[i+1:]...), nil
	})
}

func (r records[K, T]) mutate(fn func([]T) ([]T, error)) error {
	var fnErr error
	err := r.col.Mutate(func(rows []T) ([]T, error) {
		out, err := fn(rows)
		fnErr = err
		return out, err
	})
	if err == nil {
		return nil
	}
	if fnErr != nil {
		return fnErr
	}
	return domain.IOError{Op: "save " + r.col.Name(), Err: err}
}

func (r records[K, T]) index(rows []T, k K) int {
	for i, row := range rows {
		if r.key(row) == k {
			return i
		}
	}
	return -1
}

func (r records[K, T]) notFound(k K) error {
	return domain.NotFoundError{Resource: r.resource, Key: keyString(k)}
}

func keyString(k any) string {
	if s, ok := k.(interface{ String() string }); ok {
		return s.String()
	}
	return "?"
}
