package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"gitlab.com/aquachain/gembuild/common/sense"
)

func Infof(msg string, stuff ...any) {
	msg = strings.TrimSuffix(msg, "\n")
	msg = fmt.Sprintf(msg, stuff...)
	root.writeskip(0, msg, LvlInfo, nil)
}

var testloghandler Handler

// for test packages to call in init
func ResetForTesting() {
	if testloghandler != nil {
		return
	}
	lvl := LvlWarn
	if x := sense.Getenv("TESTLOGLVL"); x != "" && x != "0" { // so TESTLOGLVL=0 is the same as not setting it (0=crit, which is silent)
		lvl = MustParseLevel(x)
	}
	testloghandler = LvlFilterHandler(lvl, StreamHandler(os.Stderr, TerminalFormat(false)))
	root.SetHandler(testloghandler)
}

// ParseLevel accepts level names and the numbers of the -verbosity flag.
func ParseLevel(s string) (Lvl, error) {
	switch strings.ToLower(s) {
	case "":
		return LvlInfo, nil
	case "trace", "trce", "5", "6", "7", "8", "9":
		return LvlTrace, nil
	case "debug", "dbug", "4":
		return LvlDebug, nil
	case "info", "3":
		return LvlInfo, nil
	case "warn", "2":
		return LvlWarn, nil
	case "error", "eror", "1":
		return LvlError, nil
	case "crit", "critical", "0":
		return LvlCrit, nil // actual silent level until a fatal error occurs
	default:
		return LvlInfo, fmt.Errorf("unknown log level: %q", s)
	}
}

func MustParseLevel(s string) Lvl {
	lvl, err := ParseLevel(s)
	if err != nil {
		panic(err)
	}
	return lvl
}

func newRoot(handler Handler) *logger {
	x := &logger{[]interface{}{}, new(swapHandler)}
	x.SetHandler(handler)
	return x
}

func GetLevelFromEnv() Lvl {
	lvl := sense.Getenv("LOGLEVEL")
	if lvl == "" {
		lvl = sense.Getenv("LOGLVL")
	}
	l, err := ParseLevel(lvl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warn: %v, using info\n", err)
	}
	return l
}

// NewHandler is the handler used by commands: terminal format on w (colored
// when w is a terminal and color is not disabled), or JSON lines.
func NewHandler(w io.Writer, lvl Lvl, jsonlog bool, caller bool) Handler {
	var format Format
	if jsonlog {
		format = JsonFormatEx(false, true)
	} else {
		usecolor := false
		if f, ok := w.(*os.File); ok && !sense.EnvBool("NO_COLOR") {
			usecolor = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
			if usecolor {
				w = colorable.NewColorable(f)
			}
		}
		format = TerminalFormat(usecolor)
	}
	h := StreamHandler(w, format)
	if caller {
		h = CallerFileHandler(h)
	}
	return LvlFilterHandler(lvl, h)
}

func newRootHandler() Handler {
	return NewHandler(os.Stderr, GetLevelFromEnv(), sense.FeatureEnabled("JSONLOG", "jsonlog"), sense.EnvBool("DEBUG"))
}
