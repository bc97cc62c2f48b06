package logging

import (
	"os"
	"sort"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// PkgLevel represents log level of a package.
type PkgLevel struct {
	pkg string
	lvl byte
	al  zap.AtomicLevel
}

// Package returns package name.
func (pl PkgLevel) Package() string {
	return pl.pkg
}

// Level returns log level as a letter.
func (pl PkgLevel) Level() byte {
	return pl.lvl
}

// SetLevel assigns log level.
// The first letter of input selects the level: V or D (debug), I (info), W (warn), E (error), F or N (fatal only).
// Empty or unrecognized input selects info.
func (pl *PkgLevel) SetLevel(input string) {
	pl.lvl = 'I'
	if len(input) > 0 {
		if lvl, ok := parseLevel(input[0]); ok {
			pl.lvl = input[0]
			pl.al.SetLevel(lvl)
			return
		}
	}
	pl.al.SetLevel(zapcore.InfoLevel)
}

// Enabled determines whether a zap level would be logged.
func (pl PkgLevel) Enabled(lvl zapcore.Level) bool {
	return pl.al.Enabled(lvl)
}

func parseLevel(letter byte) (zapcore.Level, bool) {
	switch letter {
	case 'V', 'D':
		return zapcore.DebugLevel, true
	case 'I':
		return zapcore.InfoLevel, true
	case 'W':
		return zapcore.WarnLevel, true
	case 'E':
		return zapcore.ErrorLevel, true
	case 'F', 'N':
		return zapcore.DPanicLevel, true
	}
	return zapcore.InfoLevel, false
}

var (
	pkgLevelsLock sync.Mutex
	pkgLevels     = map[string]*PkgLevel{}
)

// ListLevels returns all package levels, sorted by package name.
func ListLevels() (list []PkgLevel) {
	pkgLevelsLock.Lock()
	defer pkgLevelsLock.Unlock()
	for _, pl := range pkgLevels {
		list = append(list, *pl)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].pkg < list[j].pkg })
	return list
}

// GetLevel finds or creates package log level object.
func GetLevel(pkg string) (pl *PkgLevel) {
	pkgLevelsLock.Lock()
	defer pkgLevelsLock.Unlock()
	pl = pkgLevels[pkg]
	if pl == nil {
		pl = &PkgLevel{
			pkg: pkg,
			al:  zap.NewAtomicLevel(),
		}
		pl.SetLevel(envLevel(pkg))
		pkgLevels[pkg] = pl
	}
	return pl
}

func envLevel(pkg string) string {
	v, ok := os.LookupEnv(EnvPrefix + "_" + pkg)
	if !ok {
		v = os.Getenv(EnvPrefix)
	}
	return v
}
