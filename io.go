// FILE: flags/io.go
package flags

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// Routines that move the whole flag state through files and strings,
// in two flavors: flagfile-style "--name=value" text, and structured
// TOML/JSON/YAML documents.
//
// Note the text flavor never writes the --flagfile flag itself (though
// it does write the result of having processed one, of course).

func flagsIntoString(infos []FlagInfo) string {
	var b strings.Builder
	for _, info := range infos {
		b.WriteString("--")
		b.WriteString(info.Name)
		b.WriteString("=")
		b.WriteString(info.CurrentValue)
		b.WriteString("\n")
	}
	return b.String()
}

// CommandLineFlagsIntoString renders every registered flag as a
// "--name=value" line, suitable for writing out as a flagfile.
func CommandLineFlagsIntoString() string {
	return flagsIntoString(GetAllFlags())
}

// ReadFlagsFromString applies flagfile-style content to the registered
// flags. On any error the previous state of every flag is restored and
// false is returned; with errorsAreFatal the exit hook runs first.
func ReadFlagsFromString(content string, errorsAreFatal bool) bool {
	reg := defaultRegistry()
	saved := NewFlagSaver()

	p := newParser(reg)
	reg.mu.Lock()
	p.processOptionsFromStringLocked(content, SetValue)
	reg.mu.Unlock()

	if p.reportErrors() {
		saved.Restore()
		if errorsAreFatal {
			exitFunc(1)
		}
		return false
	}
	saved.Discard()
	return true
}

// AppendFlagsIntoFile appends the current flag state to filename as
// flagfile text, preceded by progName (when non-empty) so the section
// applies only to that program. Reports whether the write succeeded.
func AppendFlagsIntoFile(filename, progName string) bool {
	fp, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false
	}
	defer fp.Close()

	if progName != "" {
		if _, err := fmt.Fprintf(fp, "%s\n", progName); err != nil {
			return false
		}
	}

	infos := GetAllFlags()
	// Writing --flagfile leads to weird recursion issues on read-back.
	for i, info := range infos {
		if info.Name == "flagfile" {
			infos = append(infos[:i], infos[i+1:]...)
			break
		}
	}
	_, err = fp.WriteString(flagsIntoString(infos))
	return err == nil
}

// ReadFromFlagsFile applies the named flagfile with ReadFlagsFromString
// semantics. An unreadable file is fatal.
func ReadFromFlagsFile(filename string, errorsAreFatal bool) bool {
	return ReadFlagsFromString(readFileIntoString(filename), errorsAreFatal)
}

// --- structured config files -------------------------------------------

// SaveFlagsToFile writes the current value of every registered flag to
// path as a flat document of name/value pairs, atomically. The format
// follows the file extension: .json and .yaml/.yml as named, anything
// else TOML.
func SaveFlagsToFile(path string) error {
	reg := defaultRegistry()
	reg.mu.Lock()
	flat := make(map[string]any, len(reg.byName))
	for name, f := range reg.byName {
		if name == "flagfile" {
			continue
		}
		flat[name] = f.cur.native()
	}
	reg.mu.Unlock()

	var data []byte
	var err error
	switch detectFileFormat(path) {
	case "json":
		data, err = json.MarshalIndent(flat, "", "  ")
	case "yaml":
		data, err = yaml.Marshal(flat)
	default:
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(flat)
		data = buf.Bytes()
	}
	if err != nil {
		return fmt.Errorf("failed to marshal flags for '%s': %w", path, err)
	}

	return atomicWriteFile(path, data)
}

// LoadFlagsFromFile reads a flat document of name/value pairs and sets
// the named flags. Names with no registered flag are ignored, so one
// file can serve several programs. Parse and validation failures are
// collected per flag and returned together.
func LoadFlagsFromFile(path string) error {
	fileData, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read flags file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(fileData)
	}

	flat := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(fileData, &flat); err != nil {
			return fmt.Errorf("failed to parse TOML flags file '%s': %w", path, err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(fileData))
		decoder.UseNumber() // preserve number precision
		if err := decoder.Decode(&flat); err != nil {
			return fmt.Errorf("failed to parse JSON flags file '%s': %w", path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(fileData, &flat); err != nil {
			return fmt.Errorf("failed to parse YAML flags file '%s': %w", path, err)
		}
	default:
		return fmt.Errorf("unable to determine format of flags file '%s'", path)
	}

	var result *multierror.Error
	for _, name := range sortedKeys(flat) {
		if _, ok := GetCommandLineOption(name); !ok {
			continue
		}
		text, err := formatScalar(flat[name])
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("flag '%s': %w", name, err))
			continue
		}
		if SetCommandLineOption(name, text) == "" {
			result = multierror.Append(result,
				fmt.Errorf("failed to set flag '%s' to '%s'", name, text))
		}
	}
	return result.ErrorOrNil()
}

// formatScalar renders a decoded document value as flag text. Each
// decoder hands back its own scalar types.
func formatScalar(v any) (string, error) {
	switch val := v.(type) {
	case bool:
		if val {
			return "true", nil
		}
		return "false", nil
	case string:
		return val, nil
	case int:
		return fmt.Sprintf("%d", val), nil
	case int64:
		return fmt.Sprintf("%d", val), nil
	case uint64:
		return fmt.Sprintf("%d", val), nil
	case float64:
		return fmt.Sprintf("%v", val), nil
	case json.Number:
		return val.String(), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}

// detectFileFormat determines format from file extension.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing. JSON is
// the strictest so it goes first; YAML is a superset of JSON, so it
// must come after.
func detectFormatFromContent(data []byte) string {
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}
	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}
	var tomlTest any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}
	return ""
}

// atomicWriteFile writes data to path through a temp file in the same
// directory, so a crash mid-write never leaves a torn file behind.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath)

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
