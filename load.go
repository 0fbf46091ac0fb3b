package torn

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/mfiguera/torn/internal/jsonutil"
	"github.com/mfiguera/torn/warnings"
)

// A Source fetches the raw bytes of one table. Fetching mechanics (file,
// HTTP, test fixture) are the caller's business; the core only consumes the
// rows.
type Source func(ctx context.Context) ([]byte, error)

// FileSource reads a table from disk.
func FileSource(path string) Source {
	return func(context.Context) ([]byte, error) {
		return os.ReadFile(path)
	}
}

// HTTPSource fetches a table over HTTP. A nil client uses
// http.DefaultClient.
func HTTPSource(client *http.Client, url string) Source {
	if client == nil {
		client = http.DefaultClient
	}
	return func(ctx context.Context) ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
		}
		return io.ReadAll(resp.Body)
	}
}

// Load fetches the shift and calendar tables concurrently and builds a
// Dataset from them. The load is all-or-nothing: if either source fails to
// fetch or decode, no Dataset is produced.
func Load(ctx context.Context, shifts, calendar Source) (*Dataset, []warnings.Warning, error) {
	var shiftRows, calendarRows []Row
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		shiftRows, err = fetchRows(ctx, shifts)
		if err != nil {
			return fmt.Errorf("loading shift table: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		calendarRows, err = fetchRows(ctx, calendar)
		if err != nil {
			return fmt.Errorf("loading calendar table: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	dataset, warns := BuildDataset(shiftRows, calendarRows)
	return dataset, warns, nil
}

func fetchRows(ctx context.Context, source Source) ([]Row, error) {
	b, err := source(ctx)
	if err != nil {
		return nil, err
	}
	var rows []Row
	if err := jsonutil.Unmarshal(b, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Store owns the current Dataset and replaces it atomically as a unit. A
// failed reload leaves the previous Dataset untouched.
type Store struct {
	current atomic.Pointer[Dataset]
}

// Dataset returns the current Dataset, or nil before the first successful
// load.
func (s *Store) Dataset() *Dataset {
	return s.current.Load()
}

// Loaded reports whether a load has ever succeeded.
func (s *Store) Loaded() bool {
	return s.current.Load() != nil
}

// Reload loads both tables and, only on success, swaps the new Dataset in.
func (s *Store) Reload(ctx context.Context, shifts, calendar Source) ([]warnings.Warning, error) {
	dataset, warns, err := Load(ctx, shifts, calendar)
	if err != nil {
		return nil, err
	}
	s.current.Store(dataset)
	return warns, nil
}
