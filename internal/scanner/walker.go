package scanner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/lumipallolabs/liveprops/internal/logging"
	"github.com/lumipallolabs/liveprops/internal/model"
)

// Seams for tests
var (
	statRoot  = os.Stat
	entryInfo = func(path string, d fs.DirEntry) (fs.FileInfo, error) {
		return d.Info()
	}
)

// Walker implements Aggregator on top of fastwalk
type Walker struct {
	opts Options
}

// NewWalker creates a new parallel filesystem walker
func NewWalker(opts Options) *Walker {
	if opts.Workers < 1 {
		opts.Workers = 8
	}
	return &Walker{opts: opts}
}

// entry is what walk callbacks hand over to the collector
type entry struct {
	size  int64
	isDir bool
}

// Aggregate walks every root in order. A root that is a directory counts as
// one folder only when more than one root was given.
func (w *Walker) Aggregate(ctx context.Context, roots []string) model.Outcome {
	var totals model.Totals
	multi := len(roots) > 1

	for _, root := range roots {
		if ctx.Err() != nil {
			return model.Cancelled()
		}

		info, err := statRoot(root)
		if err != nil {
			logging.Scanner.Printf("[Scanner] root %s: %v", root, err)
			return model.Failed(fmt.Errorf("%w: %s: %w", ErrRoot, root, err))
		}

		if !info.IsDir() {
			totals.Files++
			totals.Size += info.Size()
			continue
		}

		if multi {
			totals.Folders++
		}

		sub, err := w.walk(ctx, root)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return model.Cancelled()
			}
			logging.Scanner.Printf("[Scanner] walk %s failed: %v", root, err)
			return model.Failed(err)
		}

		totals.Size += sub.Size
		totals.Files += sub.Files
		totals.Folders += sub.Folders
	}

	return model.Done(totals)
}

// walk tallies everything below root. Callbacks run on several fastwalk
// workers; only the collector goroutine touches the counters.
func (w *Walker) walk(ctx context.Context, root string) (model.Totals, error) {
	// Selected folders may be symlinks; walk their target
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	if err := checkListable(root); err != nil {
		return model.Totals{}, fmt.Errorf("%w: %s: %w", ErrRoot, root, err)
	}

	rootInfo := getPlatformRootInfo(root)
	var seenItems sync.Map

	entryChan := make(chan entry, 4096)
	var totals model.Totals
	var collectorWg sync.WaitGroup

	collectorWg.Add(1)
	go func() {
		defer collectorWg.Done()
		for e := range entryChan {
			if e.isDir {
				totals.Folders++
				continue
			}
			totals.Files++
			totals.Size += e.size
		}
	}()

	conf := &fastwalk.Config{
		Follow:     false,
		NumWorkers: w.opts.Workers,
	}

	walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if path == root {
			return err
		}

		if err != nil {
			logging.Scanner.Printf("[Scanner] skip %s: %v", path, err)
			return nil
		}

		if d.IsDir() {
			entryChan <- entry{isDir: true}
			if w.opts.OneFilesystem && !sameFilesystem(path, d, rootInfo) {
				return fs.SkipDir
			}
			return nil
		}

		var size int64
		info, err := entryInfo(path, d)
		if err != nil {
			// The file still counts, its size is unknown
			logging.Scanner.Printf("[Scanner] stat %s: %v", path, err)
		} else {
			size = fileSize(info, w.opts.DedupeHardlinks, &seenItems)
			if size < 0 {
				return nil
			}
		}

		entryChan <- entry{size: size}
		return nil
	})

	close(entryChan)
	collectorWg.Wait()

	if walkErr != nil {
		return model.Totals{}, walkErr
	}
	return totals, nil
}

// checkListable makes sure the root directory itself can be read, so an
// unreadable root fails the job instead of reporting empty totals
func checkListable(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.ReadDir(1); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// Ensure Walker implements Aggregator
var _ Aggregator = (*Walker)(nil)
