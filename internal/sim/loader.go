// Package sim materializes VisualItem records from simulation assets on
// disk. Assets are JSON exports of recorded UI simulations; each file may
// carry visualContentItems with hotspot annotations. The mapping core only
// sees the in-memory shape; nothing here is consulted during scoring.
package sim

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/stepvis/stepvis/internal/debug"
	"github.com/stepvis/stepvis/internal/errors"
	"github.com/stepvis/stepvis/internal/types"
)

// Pool is the loaded candidate pool for mapping runs.
type Pool struct {
	Items []types.VisualItem

	// Skipped collects per-asset load failures. They never abort a load;
	// callers surface them as warnings.
	Skipped []error
}

// simulationFile mirrors the subset of the asset format we consume.
type simulationFile struct {
	VisualContentItems []visualContentItem `json:"visualContentItems"`
}

type visualContentItem struct {
	FileID   string       `json:"fileId"`
	Hotspots []rawHotspot `json:"hotspots"`
}

type rawHotspot struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Load walks dataDir for simulation JSON files and extracts every visual
// item. Files are processed concurrently but the returned pool preserves
// lexical file order, so repeated loads of the same tree yield the same
// candidate order. Malformed files are skipped, never fatal.
func Load(ctx context.Context, dataDir string) (*Pool, error) {
	fsys := os.DirFS(dataDir)
	paths, err := doublestar.Glob(fsys, "**/*.json")
	if err != nil {
		return nil, errors.NewDataError("glob", dataDir, err)
	}
	sort.Strings(paths)

	debug.LogSim("scanning %s: %d json file(s)\n", dataDir, len(paths))

	perFile := make([][]types.VisualItem, len(paths))
	var mu sync.Mutex
	var skipped []error

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, rel := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			full := filepath.Join(dataDir, filepath.FromSlash(rel))
			items, err := loadFile(fsys, rel, full)
			if err != nil {
				mu.Lock()
				skipped = append(skipped, err)
				mu.Unlock()
				return nil
			}
			perFile[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pool := &Pool{Skipped: skipped}
	for _, items := range perFile {
		pool.Items = append(pool.Items, items...)
	}

	debug.LogSim("loaded %d visual item(s), skipped %d file(s)\n", len(pool.Items), len(skipped))
	return pool, nil
}

// loadFile parses one asset file into visual items. AUDIO hotspots are
// transcript markers, not interactive regions, and are dropped here so the
// scorer never sees them.
func loadFile(fsys fs.FS, rel, full string) ([]types.VisualItem, error) {
	data, err := fs.ReadFile(fsys, rel)
	if err != nil {
		return nil, errors.NewDataError("read", full, err)
	}

	var file simulationFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.NewDataError("parse", full, err)
	}

	sourceDir := filepath.Dir(full)
	items := make([]types.VisualItem, 0, len(file.VisualContentItems))
	for idx, raw := range file.VisualContentItems {
		id := raw.FileID
		if id == "" {
			// Assets occasionally lack a fileId; derive a stable one from
			// the file path and position so reloads agree.
			id = fmt.Sprintf("visual-%016x", xxhash.Sum64String(fmt.Sprintf("%s#%d", rel, idx)))
		}

		item := types.VisualItem{
			ID:        types.VisualID(id),
			SourceDir: sourceDir,
		}
		for _, hs := range raw.Hotspots {
			if strings.EqualFold(strings.TrimSpace(hs.Type), "audio") {
				continue
			}
			item.Hotspots = append(item.Hotspots, types.Hotspot{
				Name: hs.Name,
				Type: types.ParseHotspotType(hs.Type),
			})
		}
		items = append(items, item)
	}
	return items, nil
}

// Stats summarizes a pool for diagnostics.
type Stats struct {
	VisualItems   int
	Hotspots      int
	GenericNames  int
	SpecificNames int
}

// CollectStats counts hotspots and how many carry generic names, using the
// provided predicate (normally lexicon.IsGenericName).
func CollectStats(pool *Pool, isGeneric func(string) bool) Stats {
	st := Stats{VisualItems: len(pool.Items)}
	for _, item := range pool.Items {
		for _, hs := range item.Hotspots {
			st.Hotspots++
			if isGeneric(hs.Name) {
				st.GenericNames++
			} else {
				st.SpecificNames++
			}
		}
	}
	return st
}
