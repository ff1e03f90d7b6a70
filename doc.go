// File: flags/doc.go

// Package flags implements commandline flags processing in the manner
// of google-gflags: flags are defined anywhere in the program, live in
// a single process-wide registry, and may be set from the command
// line, from flagfiles, from the environment, or programmatically.
//
// Features:
//   - Typed flags: bool, int32, uint32, int64, uint64, float64, string
//   - Definition wherever the flag is used, not only in main()
//   - --flag=value, --flag value, and --noflag boolean negation
//   - Recursive sources: --flagfile, --fromenv, --tryfromenv
//   - Per-flag validators that reject bad values atomically
//   - Snapshot and restore of the whole flag state (FlagSaver)
//   - Save/load of flag state as TOML, JSON, or YAML documents
//   - Struct decoding of current values via "flag" tags (Scan)
//
// Quick Start:
//
//	var port = flags.Int32("port", 8080, "port to listen on")
//	var verbose = flags.Bool("verbose", false, "enable verbose output")
//
//	func main() {
//	    argv, _ := flags.ParseCommandLineFlags(os.Args, true)
//	    fmt.Println("serving on", *port, "args:", argv[1:])
//	}
//
// Parsing is batch-oriented: every error on the command line is
// reported before the process exits, and a valid prefix of the command
// line takes effect even when a later flag is bad. Non-flag arguments
// are permuted to the end of argv, getopt style, and a bare "--" stops
// flag processing.
//
// Thread Safety:
// All operations on registered flags go through the registry mutex.
// Reads through the pointers returned by the definition API are not
// synchronized; use the Get accessors or Scan when flags may change
// concurrently.
package flags
