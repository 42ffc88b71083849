package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/ethereum/go-ethereum/log"
)

// Handler writes logfmt records up to lvl to w.
func Handler(w io.Writer, lvl log.Lvl) log.Handler {
	return log.LvlFilterHandler(lvl, log.StreamHandler(w, log.LogfmtFormat()))
}

func Logger(w io.Writer, lvl log.Lvl) log.Logger {
	l := log.New()
	l.SetHandler(Handler(w, lvl))
	return l
}

func ParseLevel(s string) (log.Lvl, error) {
	lvl, err := log.LvlFromString(strings.ToLower(s))
	if err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

// HexU64 to lazy-format raw register words for logging
type HexU64 uint64

func (v HexU64) String() string {
	return fmt.Sprintf("%016x", uint64(v))
}

func (v HexU64) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
