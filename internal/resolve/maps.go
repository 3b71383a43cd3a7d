package resolve

import (
	"github.com/robertgumeny/wadrun/internal/types"
)

// Map number bounds. Single-episode levels use two-digit lump names.
const (
	maxMap         = 99
	maxEpisode     = 9
	maxEpisodicMap = 9
)

// ParseMap turns the request's map numbers into a MapSpec for iwad. No numbers
// selects the first level. The four-episode IWAD needs an episode and a map;
// every other IWAD needs exactly one map number.
func ParseMap(numbers []int, iwad string) (types.MapSpec, error) {
	episodic := types.IsEpisodic(iwad)

	if len(numbers) == 0 {
		if episodic {
			return types.MapSpec{Episode: 1, Map: 1}, nil
		}
		return types.MapSpec{Map: 1}, nil
	}
	if len(numbers) > 2 {
		return types.MapSpec{}, types.Errorf(types.ErrInvalidArgument, "invalid map numbers: %v", numbers)
	}
	if episodic && len(numbers) != 2 || !episodic && len(numbers) != 1 {
		return types.MapSpec{}, types.Errorf(types.ErrInvalidArgument, "map number %v is invalid for IWAD %s", numbers, iwad)
	}

	if episodic {
		e, m := numbers[0], numbers[1]
		if e < 1 || e > maxEpisode || m < 1 || m > maxEpisodicMap {
			return types.MapSpec{}, types.Errorf(types.ErrInvalidArgument, "episode %d map %d is out of range", e, m)
		}
		return types.MapSpec{Episode: e, Map: m}, nil
	}

	n := numbers[0]
	if n < 1 || n > maxMap {
		return types.MapSpec{}, types.Errorf(types.ErrInvalidArgument, "map %d is out of range 1-%d", n, maxMap)
	}
	return types.MapSpec{Map: n}, nil
}
