// Package storage persists named board snapshots.
package storage

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/turox/turox/internal/board"
)

const keyPrefix = "board/"

var (
	// ErrNotFound is returned when no snapshot has the requested name.
	ErrNotFound = errors.New("snapshot not found")
	// ErrInvalidName is returned for names that cannot be used as keys.
	ErrInvalidName = errors.New("invalid snapshot name")
	// ErrCorrupt is returned when a stored snapshot does not decode to a valid board.
	ErrCorrupt = errors.New("corrupt snapshot")
)

// Snapshot is a stored board.
type Snapshot struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Placement string    `json:"placement"`
	ByColor   [2]uint64 `json:"by_color"`
	ByType    [6]uint64 `json:"by_type"`
	SavedAt   time.Time `json:"saved_at"`
}

// Board decodes the snapshot's bitboards and checks them against the stored
// placement string.
func (s *Snapshot) Board() (board.Board, error) {
	var byColor [2]board.Bitboard
	var byType [6]board.Bitboard
	for i, v := range s.ByColor {
		byColor[i] = board.Bitboard(v)
	}
	for i, v := range s.ByType {
		byType[i] = board.Bitboard(v)
	}

	b, err := board.FromBitboards(byColor, byType)
	if err != nil {
		return board.Board{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.Name, err)
	}
	if got := b.FEN(); got != s.Placement {
		return board.Board{}, fmt.Errorf("%w: %s: placement %q does not match bitboards %q", ErrCorrupt, s.Name, s.Placement, got)
	}
	return b, nil
}

func newSnapshot(name string, b board.Board) Snapshot {
	byColor, byType := b.Bitboards()
	s := Snapshot{
		ID:        uuid.New().String(),
		Name:      name,
		Placement: b.FEN(),
		SavedAt:   time.Now().UTC(),
	}
	for i, bb := range byColor {
		s.ByColor[i] = uint64(bb)
	}
	for i, bb := range byType {
		s.ByType[i] = uint64(bb)
	}
	return s
}

// Options configures Open.
type Options struct {
	// Dir is the database directory. Empty selects GetDatabaseDir.
	Dir string
	// InMemory keeps everything in memory; Dir is ignored.
	InMemory bool
}

// Store wraps BadgerDB for snapshot storage.
type Store struct {
	db *badger.DB
}

// Open opens a store.
func Open(o Options) (*Store, error) {
	var opts badger.Options
	if o.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		dir := o.Dir
		if dir == "" {
			var err error
			if dir, err = GetDatabaseDir(); err != nil {
				return nil, err
			}
		}
		opts = badger.DefaultOptions(dir)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}

	logx.Infow("snapshot store opened", logx.Field("dir", opts.Dir), logx.Field("inMemory", o.InMemory))
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func key(name string) ([]byte, error) {
	if name == "" || strings.ContainsAny(name, "/ \t\n") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return []byte(keyPrefix + name), nil
}

// Save stores b under name, replacing any previous snapshot with that name.
func (s *Store) Save(name string, b board.Board) (Snapshot, error) {
	k, err := key(name)
	if err != nil {
		return Snapshot{}, err
	}
	if err := b.Validate(); err != nil {
		return Snapshot{}, err
	}

	snap := newSnapshot(name, b)
	data, err := sonic.Marshal(&snap)
	if err != nil {
		return Snapshot{}, err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(k, data)
	})
	if err != nil {
		return Snapshot{}, err
	}

	logx.Infow("snapshot saved", logx.Field("name", name), logx.Field("id", snap.ID), logx.Field("placement", snap.Placement))
	return snap, nil
}

// Get returns the snapshot stored under name.
func (s *Store) Get(name string) (Snapshot, error) {
	k, err := key(name)
	if err != nil {
		return Snapshot{}, err
	}

	var snap Snapshot
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(k)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return sonic.Unmarshal(val, &snap)
		})
	})

	return snap, err
}

// Load returns the board stored under name.
func (s *Store) Load(name string) (board.Board, error) {
	snap, err := s.Get(name)
	if err != nil {
		return board.Board{}, err
	}
	return snap.Board()
}

// List returns every stored snapshot, sorted by name.
func (s *Store) List() ([]Snapshot, error) {
	var snaps []Snapshot

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var snap Snapshot
			err := it.Item().Value(func(val []byte) error {
				return sonic.Unmarshal(val, &snap)
			})
			if err != nil {
				return err
			}
			snaps = append(snaps, snap)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(snaps, func(i, j int) bool { return snaps[i].Name < snaps[j].Name })
	return snaps, nil
}

// Delete removes the snapshot stored under name.
func (s *Store) Delete(name string) error {
	k, err := key(name)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(k); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %s", ErrNotFound, name)
			}
			return err
		}
		return txn.Delete(k)
	})
}
