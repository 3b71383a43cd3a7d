// Package progress reports how much of each target a player has recorded:
// maps with at least one demo, the longest contiguous run of such maps and
// the share of the target's maps covered.
package progress

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/robertgumeny/wadrun/internal/demo"
	"github.com/robertgumeny/wadrun/internal/types"
)

// DefaultConcurrency bounds how many targets Scan reads at once.
const DefaultConcurrency = 4

// MapType is the level naming scheme found under a target.
type MapType string

const (
	// Episodic levels are named eXmY.
	Episodic MapType = "episodic"
	// Single levels are named mapNN.
	Single MapType = "single"
)

// Map totals used as the percentage base.
const (
	maxUltimate = 45
	maxEpisodic = 36
	maxSingle   = 32
)

// Report is the progress of one target.
type Report struct {
	Target     string
	MapType    MapType
	Completed  int
	LongestRun int
	Max        int
	Percent    float64
}

// MaxMaps returns the number of maps a target is measured against. The
// doom IWAD target counts its fourth episode.
func MaxMaps(target string, t MapType) int {
	switch {
	case target == types.IWADDoom:
		return maxUltimate
	case t == Episodic:
		return maxEpisodic
	default:
		return maxSingle
	}
}

// mapNumber parses a warp directory name. Episodic maps are numbered
// episode*9+map so consecutive levels across episodes stay adjacent.
func mapNumber(name string) (MapType, int, bool) {
	if len(name) == 4 && name[0] == 'e' && name[2] == 'm' && isDigit(name[1]) && isDigit(name[3]) {
		return Episodic, int(name[1]-'0')*9 + int(name[3]-'0'), true
	}
	if len(name) == 5 && strings.HasPrefix(name, "map") && isDigit(name[3]) && isDigit(name[4]) {
		n, _ := strconv.Atoi(name[3:])
		return Single, n, true
	}
	return "", 0, false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// ScanTarget builds the report for the target directory dir. A directory
// mixing both naming schemes is ErrAmbiguousInput; one with no map
// directories is ErrNotFound.
func ScanTarget(dir string) (Report, error) {
	target := filepath.Base(dir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Report{}, types.Errorf(types.ErrNotFound, "no demos for %s: %s", target, dir)
		}
		return Report{}, fmt.Errorf("read target directory %s: %w", dir, err)
	}

	var mapType MapType
	var done []int
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		t, n, ok := mapNumber(e.Name())
		if !ok {
			continue
		}
		if mapType != "" && t != mapType {
			return Report{}, types.Errorf(types.ErrAmbiguousInput, "directory %s mixes episodic and single map names", dir)
		}
		mapType = t

		has, err := hasDemo(filepath.Join(dir, e.Name()))
		if err != nil {
			return Report{}, err
		}
		if has {
			done = append(done, n)
		}
	}
	if mapType == "" {
		return Report{}, types.Errorf(types.ErrNotFound, "could not deduce map type for %s", dir)
	}

	r := Report{
		Target:     target,
		MapType:    mapType,
		Completed:  len(done),
		LongestRun: longestRun(done),
		Max:        MaxMaps(target, mapType),
	}
	r.Percent = math.Round(10000*float64(r.Completed)/float64(r.Max)) / 100
	return r, nil
}

func hasDemo(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("read map directory %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.Type().IsRegular() && strings.EqualFold(filepath.Ext(e.Name()), demo.Extension) {
			return true, nil
		}
	}
	return false, nil
}

// longestRun returns the length of the longest sequence of consecutive
// numbers in nums.
func longestRun(nums []int) int {
	if len(nums) == 0 {
		return 0
	}
	sorted := append([]int(nil), nums...)
	sort.Ints(sorted)

	best, cur := 1, 1
	for i := 1; i < len(sorted); i++ {
		switch sorted[i] - sorted[i-1] {
		case 0:
		case 1:
			cur++
		default:
			cur = 1
		}
		if cur > best {
			best = cur
		}
	}
	return best
}

// Targets lists the target directories under playerDir, skipping dot
// directories such as the mapper test tree.
func Targets(playerDir string) ([]string, error) {
	entries, err := os.ReadDir(playerDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, types.Errorf(types.ErrNotFound, "no demo directory: %s", playerDir)
		}
		return nil, fmt.Errorf("read demo directory %s: %w", playerDir, err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out, nil
}

// Scan reports every target in targets, or every target under playerDir when
// targets is empty, reading at most limit targets concurrently. Targets that
// were not named explicitly and hold no map directories are left out.
// Reports are returned in target order.
func Scan(ctx context.Context, playerDir string, targets []string, limit int) ([]Report, error) {
	explicit := len(targets) > 0
	if !explicit {
		var err error
		if targets, err = Targets(playerDir); err != nil {
			return nil, err
		}
	}
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	reports := make([]Report, len(targets))
	found := make([]bool, len(targets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := ScanTarget(filepath.Join(playerDir, strings.ToLower(target)))
			if err != nil {
				if !explicit && errors.Is(err, types.ErrNotFound) {
					return nil
				}
				return err
			}
			reports[i], found[i] = r, true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Report, 0, len(reports))
	for i, r := range reports {
		if found[i] {
			out = append(out, r)
		}
	}
	return out, nil
}
