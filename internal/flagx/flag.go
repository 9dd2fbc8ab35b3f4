// Package flagx helps several flag sets share one command line: each loader
// picks out only the flags it owns before parsing.
package flagx

import (
	"flag"
	"io"
	"os"
	"strings"
)

// ConfigEnv names the environment variable consulted when no -c/-config flag is given.
const ConfigEnv = "CONFIG"

// FilterArgs keeps the flags named in valueFlags and boolFlags, dropping
// everything else.
//
// Accepted forms:
//
//	-a value     value flag, value as the next token (unless it starts with '-')
//	-a=value     value or bool flag
//	-seed        bool flag; never consumes the next token
//
// The result is never nil.
func FilterArgs(args []string, valueFlags []string, boolFlags ...string) []string {
	kinds := make(map[string]bool, len(valueFlags)+len(boolFlags))
	for _, f := range valueFlags {
		kinds[f] = true
	}
	for _, f := range boolFlags {
		kinds[f] = false
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name, _, hasValue := strings.Cut(arg, "=")
		takesValue, ok := kinds[name]
		if !ok {
			continue
		}

		out = append(out, arg)
		if hasValue || !takesValue {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// ConfigFile returns the JSON config path given by -c or -config in args,
// falling back to $CONFIG. Empty means no file.
func ConfigFile(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config", "--config"}))

	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	return path
}
