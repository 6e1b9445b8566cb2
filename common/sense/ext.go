// Package sense reads feature switches from the environment and command line.
package sense

import (
	"fmt"
	"os"
	"strings"
)

// EnvPrefix is checked before the bare variable name, so GEMBUILD_LOGLEVEL
// wins over LOGLEVEL.
const EnvPrefix = "GEMBUILD_"

var main_argv = os.Args // allow test package to override

// Getenv returns the prefixed variable if set, otherwise the bare one.
func Getenv(name string) string {
	if x, ok := LookupEnv(name); ok {
		return x
	}
	return ""
}

// LookupEnv is like os.LookupEnv with EnvPrefix applied first.
func LookupEnv(name string) (string, bool) {
	if x, ok := os.LookupEnv(EnvPrefix + name); ok {
		return x, true
	}
	return os.LookupEnv(name)
}

// FeatureEnabled returns true if the os env is truthy, or flagname is found in command line
func FeatureEnabled(envname string, flagname string) bool {
	if envname == "" && flagname == "" {
		panic("FeatureEnabled called with no args")
	}
	if envname != "" && EnvBool(envname) {
		return true
	}
	if flagname != "" && FastParseArgsBool(flagname) {
		return true
	}
	return false
}

// FastParseArgs is a quick way to check if a flag has been FOUND on the actual
// command line, before the cli package gets to parse it.
//
// Returns true if flagname is found, and its value: either the part after '='
// or the next argument if there is one.
//
// Completely skips first arg (the program name).
func FastParseArgs(flagname string) (bool, string) {
	if strings.HasPrefix(flagname, "-") {
		panic("here, flagname should not start with -")
	}
	argv := main_argv
	for i := 1; i < len(argv); i++ {
		arg := strings.TrimLeft(argv[i], "-")
		if arg == argv[i] {
			continue // not a flag
		}
		if k, v, ok := strings.Cut(arg, "="); ok {
			if k == flagname {
				return true, v
			}
			continue
		}
		if arg == flagname {
			if i+1 < len(argv) {
				return true, argv[i+1]
			}
			return true, ""
		}
	}
	return false, ""
}

// FastParseArgsBool is FastParseArgs for bool flags. A following argument
// only counts when it is a falsy word ("-color false").
func FastParseArgsBool(flagname string) bool {
	found, next := FastParseArgs(flagname)
	if !found {
		return false
	}
	return !isFalsy(next)
}

func boolString(s string, unset bool, unparsable bool) bool {
	switch strings.ToLower(s) {
	case "":
		return unset
	case "true", "yes", "1", "on", "enabled", "enable":
		return true
	case "false", "no", "0", "off", "disabled", "disable":
		return false
	default:
		return unparsable
	}
}

// EnvBool returns false if empty/unset/falsy, true if otherwise non-empty
func EnvBool(name string) bool {
	x, ok := LookupEnv(name)
	if !ok {
		return false
	}
	return boolString(x, false, true)
}

// EnvBoolDisabled returns true only if nonempty+falsy (such as "0" or "false")
//
// a bit different logic than !EnvBool
func EnvBoolDisabled(name string) bool {
	x, ok := LookupEnv(name)
	if !ok {
		return false
	}
	return isFalsy(x)
}

// isFalsy treats unknown words as truthy: "-color auto" is still on.
func isFalsy(s string) bool {
	return !boolString(s, true, true)
}

// EnvOr returns the value of the environment variable, or the default if unset
func EnvOr(name, def string) string {
	x, ok := LookupEnv(name)
	if !ok {
		return def
	}
	return x
}

// Describe is used in flag usage strings, eg. "LOGLEVEL env".
func Describe(name string) string {
	return fmt.Sprintf("%s%s or %s env", EnvPrefix, name, name)
}
