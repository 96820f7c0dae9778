package utils

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/cespare/xxhash"
	"github.com/fsnotify/fsnotify"

	"github.com/Laisky/shamir-audit/log"
)

// defaultWatchInterval interval to poll watched files
var defaultWatchInterval = time.Second

// FileXXHash calculate xxhash64 of file content
func FileXXHash(path string) (hashed uint64, err error) {
	fp, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "open file `%s`", path)
	}
	defer CloseQuietly(fp)

	hasher := xxhash.New()
	if _, err = io.Copy(hasher, fp); err != nil {
		return 0, errors.Wrapf(err, "read file `%s`", path)
	}

	return hasher.Sum64(), nil
}

// WatchFileChanging watch file changing
//
// when file changed, callback will be called,
// callback will only received fsnotify.Write no matter what happened to changing a file.
//
// files are compared by content hash, so editors that replace the file
// instead of writing in place are detected as well.
func WatchFileChanging(ctx context.Context, files []string, callback func(fsnotify.Event)) error {
	hashes := map[string]uint64{}
	for _, f := range files {
		hashed, err := FileXXHash(f)
		if err != nil {
			return errors.Wrapf(err, "calculate hash for file %s", f)
		}

		hashes[f] = hashed
	}

	interval := defaultWatchInterval
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			for f, hashed := range hashes {
				newHashed, err := FileXXHash(f)
				if err != nil {
					log.Shared.Debug("hash watched file", zap.String("file", f), zap.Error(err))
					continue
				}

				if newHashed != hashed {
					hashes[f] = newHashed
					callback(fsnotify.Event{
						Name: f,
						Op:   fsnotify.Write,
					})
				}
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				log.Shared.Debug("watcher exit", zap.Error(ctx.Err()))
				return
			}
		}
	}()

	return nil
}
