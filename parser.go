// FILE: flags/parser.go
package flags

import (
	"fmt"
	"os"
	"strings"
)

// Special flags, type 1: the recursive flags. Setting one of them sets
// other flags' values, from a file or from the environment.
var (
	flagfileFlag   = String("flagfile", "", "load flags from file")
	fromenvFlag    = String("fromenv", "", "set flags from the environment [use 'export FLAGS_flag1=value']")
	tryfromenvFlag = String("tryfromenv", "", "set flags from the environment if present")
)

// Special flags, type 2: the parsing flags. They modify how parsing works.
var undefokFlag = String("undefok", "",
	"comma-separated list of flag names that it is okay to specify "+
		"on the command line even if the program does not define a flag "+
		"with that name.  IMPORTANT: flags in this list that have "+
		"arguments MUST use the flag=value format")

// allowReparsing defers unknown-flag errors to a future parse. Useful
// when flags are defined by plugins loaded after the first parse.
var allowReparsing bool

// parser accumulates the outcome of one parsing pass: a diagnostic per
// failed flag name, plus the set of names no flag was registered under.
// Errors are reported in one batch at the end of the pass, so a single
// run surfaces every problem at once.
type parser struct {
	reg        *Registry
	errorFlags map[string]string
	undefined  map[string]bool
}

func newParser(reg *Registry) *parser {
	return &parser{
		reg:        reg,
		errorFlags: make(map[string]string),
		undefined:  make(map[string]bool),
	}
}

// ParseCommandLineFlags parses argv (argv[0] is the program name, not
// a flag) and sets the registered flags it names. Non-flag arguments
// are permuted to the tail, getopt style; a bare "--" ends flag
// processing. The possibly-permuted argv is returned together with the
// index of the first non-flag argument. With removeFlags set, the
// consumed flags are dropped from the returned argv instead, leaving
// the program name and the non-flag arguments.
//
// Every error found during the pass is printed to stderr, then the
// exit hook runs once. Only a flag that is missing its trailing value
// argument stops the scan early.
func ParseCommandLineFlags(argv []string, removeFlags bool) ([]string, int) {
	SetArgv(argv)

	reg := defaultRegistry()
	p := newParser(reg)

	// Apps sometimes assign the recursive flags programmatically before
	// parsing. Honor those as if they led the command line.
	reg.mu.Lock()
	p.processFlagfileLocked(*flagfileFlag, SetValue)
	p.processFromenvLocked(*fromenvFlag, SetValue, true)
	p.processFromenvLocked(*tryfromenvFlag, SetValue, false)
	reg.mu.Unlock()

	argv, first := p.parseNewCommandLineFlags(argv, removeFlags)

	p.validateAllFlags()

	if p.reportErrors() {
		exitFunc(1)
	}
	return argv, first
}

func (p *parser) parseNewCommandLineFlags(argv []string, removeFlags bool) ([]string, int) {
	if len(argv) == 0 {
		return argv, 0
	}
	argv = append([]string(nil), argv...)
	firstNonopt := len(argv)

	p.reg.mu.Lock()
	for i := 1; i < firstNonopt; i++ {
		arg := argv[i]

		// Like getopt(), permute non-option arguments to the end.
		// A lone "-" is an argument, not a flag.
		if arg == "" || arg[0] != '-' || arg == "-" {
			copy(argv[i:], argv[i+1:])
			argv[len(argv)-1] = arg
			firstNonopt--
			i-- // re-examine the slot the shift filled
			continue
		}

		orig := arg
		arg = arg[1:] // leading '-'
		if arg != "" && arg[0] == '-' {
			arg = arg[1:] // or leading '--'
		}

		// "--" alone means what it does for GNU: stop option parsing.
		if arg == "" {
			firstNonopt = i + 1
			break
		}

		f, key, value, hasValue, errMsg := p.reg.splitArgumentLocked(arg)
		if f == nil {
			p.undefined[key] = true
			p.errorFlags[key] = errMsg
			continue
		}

		if !hasValue {
			// Booleans always get a value from splitArgumentLocked, so
			// this flag takes the next argument as its value.
			if i+1 >= firstNonopt {
				msg := errorPrefix + "flag '" + orig + "' is missing its argument"
				if f.help != "" {
					msg += "; flag description: " + f.help
				}
				p.errorFlags[key] = msg + "\n"
				break // we treat this as an unrecoverable error
			}
			i++
			value = argv[i]

			// Heuristic for a string flag treated like a bool:
			//   --my_string_var --foo=bar
			// Only warn when the help text talks about true/false, so a
			// valid usage like "-lat -30.5" stays quiet.
			if value != "" && value[0] == '-' && f.Type() == "string" &&
				(strings.Contains(f.help, "true") || strings.Contains(f.help, "false")) {
				fmt.Fprintf(stderr, "WARNING: Did you really mean to set flag '%s' to the value '%s'?\n",
					f.name, value)
			}
		}

		p.processSingleOptionLocked(f, value, SetValue)
	}
	p.reg.mu.Unlock()

	if removeFlags {
		// Drop the consumed flags, keeping the program name in front.
		argv[firstNonopt-1] = argv[0]
		argv = argv[firstNonopt-1:]
		firstNonopt = 1
	}

	return argv, firstNonopt
}

// processFlagfileLocked reads each file in the comma-separated list and
// applies its option lines.
func (p *parser) processFlagfileLocked(flagval string, mode FlagSettingMode) string {
	if flagval == "" {
		return ""
	}
	var msg strings.Builder
	for _, file := range parseFlagList(flagval) {
		msg.WriteString(p.processOptionsFromStringLocked(readFileIntoString(file), mode))
	}
	return msg.String()
}

// processFromenvLocked sets each flag in the comma-separated list from
// its FLAGS_<name> environment variable. With errorsAreFatal a missing
// variable is recorded as an error (--fromenv); without, it is skipped
// (--tryfromenv).
func (p *parser) processFromenvLocked(flagval string, mode FlagSettingMode, errorsAreFatal bool) string {
	if flagval == "" {
		return ""
	}
	var msg strings.Builder
	for _, flagname := range parseFlagList(flagval) {
		f := p.reg.findFlagLocked(flagname)
		if f == nil {
			p.errorFlags[flagname] = fmt.Sprintf("%sunknown command line flag '%s' (via --fromenv or --tryfromenv)\n",
				errorPrefix, flagname)
			p.undefined[flagname] = true
			continue
		}

		envname := "FLAGS_" + flagname
		envval, ok := os.LookupEnv(envname)
		if !ok {
			if errorsAreFatal {
				p.errorFlags[flagname] = errorPrefix + envname + " not found in environment\n"
			}
			continue
		}

		// Avoid infinite recursion.
		if envval == "fromenv" || envval == "tryfromenv" {
			p.errorFlags[flagname] = fmt.Sprintf("%sinfinite recursion on environment flag '%s'\n",
				errorPrefix, envval)
			continue
		}

		msg.WriteString(p.processSingleOptionLocked(f, envval, mode))
	}
	return msg.String()
}

// processSingleOptionLocked sets one flag and, when the flag is one of
// the recursive ones, expands it immediately: flag-evaluation order may
// matter, so a flagfile's contents apply exactly where the flag sits.
func (p *parser) processSingleOptionLocked(f *Flag, value string, mode FlagSettingMode) string {
	msg, ok := p.reg.setFlagLocked(f, value, mode)
	if !ok {
		p.errorFlags[f.name] = msg
		return ""
	}

	switch f.name {
	case "flagfile":
		msg += p.processFlagfileLocked(f.cur.String(), mode)
	case "fromenv":
		// envval-not-found is fatal here, unlike in --tryfromenv
		msg += p.processFromenvLocked(f.cur.String(), mode, true)
	case "tryfromenv":
		msg += p.processFromenvLocked(f.cur.String(), mode, false)
	}
	return msg
}

// processOptionsFromStringLocked applies flagfile content. Each line is
// a comment, blank, a flag line, or a list of program-name globs that
// starts a new section; flag lines apply while the current section
// matches this program. Unknown flags and missing values in a file are
// silently ignored.
func (p *parser) processOptionsFromStringLocked(content string, mode FlagSettingMode) string {
	var retval strings.Builder
	flagsAreRelevant := true // set to false when filenames don't match
	inFilenameSection := false

	for _, line := range splitLines(content) {
		line = strings.TrimLeft(line, " \t\v\f")

		switch {
		case line == "" || line[0] == '#':
			// comment or empty line; just ignore

		case line[0] == '-': // flag
			inFilenameSection = false
			if !flagsAreRelevant { // applies to someone else
				continue
			}

			nameAndVal := line[1:]
			if nameAndVal != "" && nameAndVal[0] == '-' {
				nameAndVal = nameAndVal[1:]
			}
			f, _, value, hasValue, _ := p.reg.splitArgumentLocked(nameAndVal)
			if f != nil && hasValue {
				retval.WriteString(p.processSingleOptionLocked(f, value, mode))
			}

		default: // a filename!
			if !inFilenameSection {
				// start over: assume filenames don't match
				inFilenameSection = true
				flagsAreRelevant = false
			}
			for _, glob := range strings.Fields(line) {
				if flagsAreRelevant { // we can stop as soon as we match
					break
				}
				if matchesProgram(glob) {
					flagsAreRelevant = true
				}
			}
		}
	}
	return retval.String()
}

// validateAllFlags sweeps every flag whose current value fails its
// validator, catching defaults that were never overridden.
func (p *parser) validateAllFlags() {
	p.reg.mu.Lock()
	defer p.reg.mu.Unlock()
	for _, f := range p.reg.byName {
		if !f.validateCurrent() {
			// Keep a prior message if one is there; any error message
			// means the reporting job is already done.
			if p.errorFlags[f.name] == "" {
				p.errorFlags[f.name] = errorPrefix + "--" + f.name +
					" must be set on the commandline (default value fails validation)\n"
			}
		}
	}
}

// reportErrors prints the accumulated diagnostics, name-sorted, after
// forgiving names listed in --undefok (also in their no<flag> spelling)
// and, under AllowCommandLineReparsing, every undefined name. Reports
// whether any error survived.
func (p *parser) reportErrors() bool {
	if *undefokFlag != "" {
		for _, name := range parseFlagList(*undefokFlag) {
			if p.undefined[name] {
				p.errorFlags[name] = ""
			} else if p.undefined["no"+name] {
				// the flagname may have been boolean
				p.errorFlags["no"+name] = ""
			}
		}
	}
	if allowReparsing {
		// A future parse is expected to pick these up.
		for name := range p.undefined {
			p.errorFlags[name] = ""
		}
	}

	var msg strings.Builder
	for _, name := range sortedKeys(p.errorFlags) {
		msg.WriteString(p.errorFlags[name])
	}
	if msg.Len() == 0 {
		return false
	}
	reportError(doNotDie, "%s", msg.String())
	return true
}

// AllowCommandLineReparsing makes unknown flags non-errors, on the
// promise that a later ReparseCommandLineFlags will resolve them once
// their definitions have been registered.
func AllowCommandLineReparsing() { allowReparsing = true }

// ReparseCommandLineFlags re-runs parsing over the argv recorded by the
// first ParseCommandLineFlags, picking up flags registered since then.
func ReparseCommandLineFlags() {
	ParseCommandLineFlags(GetArgvs(), false)
}
