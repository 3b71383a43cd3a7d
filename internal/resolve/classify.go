package resolve

import (
	"path/filepath"

	"github.com/robertgumeny/wadrun/internal/config"
	"github.com/robertgumeny/wadrun/internal/types"
)

// Kind classifies where a target WAD is stored.
type Kind string

const (
	// KindIWAD is a base game; it is loaded via -iwad only.
	KindIWAD Kind = "iwad"
	// KindPWAD is a released add-on level set.
	KindPWAD Kind = "pwad"
	// KindTWAD is a mapper's test WAD, stored under twad/<mapper>.
	KindTWAD Kind = "twad"
	// KindSWAD is a special mapper's WAD, stored under <alias>/<mapper>.
	KindSWAD Kind = "swad"
)

// Classify decides the Kind of target. Three signals are considered: target
// is an IWAD, target is a special mapper name or alias, and a mapper was
// given. More than one signal is ErrAmbiguousInput.
func Classify(target, mapper string, settings *config.Settings) (Kind, error) {
	isIWAD := types.IsIWAD(target)
	isAlias := settings.IsSpecialName(target)
	hasMapper := mapper != ""

	signals := 0
	for _, s := range []bool{isIWAD, isAlias, hasMapper} {
		if s {
			signals++
		}
	}
	if signals > 1 {
		return "", types.Errorf(types.ErrAmbiguousInput,
			"WAD type of %q is ambiguous (iwad: %v, special mapper alias: %v, mapper: %q)",
			target, isIWAD, isAlias, mapper)
	}

	switch {
	case isIWAD:
		return KindIWAD, nil
	case isAlias:
		return "", types.Errorf(types.ErrInvalidArgument,
			"target %q names a special mapper; give the WAD name as target and the mapper with --mapper", target)
	case hasMapper:
		if _, ok := settings.SpecialAlias(mapper); ok {
			return KindSWAD, nil
		}
		return KindTWAD, nil
	default:
		return KindPWAD, nil
	}
}

// TargetPath returns where a non-IWAD target's main WAD file is expected:
//
//	<wadDir>/pwad/<target>/<target>.wad
//	<wadDir>/twad/<mapper>/<target>/<target>.wad
//	<wadDir>/<alias>/<mapper>/<target>/<target>.wad
func TargetPath(wadDir, target, mapper string, kind Kind, settings *config.Settings) string {
	var base string
	switch kind {
	case KindTWAD:
		base = filepath.Join(wadDir, string(KindTWAD), mapper)
	case KindSWAD:
		alias, _ := settings.SpecialAlias(mapper)
		base = filepath.Join(wadDir, alias, mapper)
	default:
		base = filepath.Join(wadDir, string(KindPWAD))
	}
	return filepath.Join(base, target, target+".wad")
}
