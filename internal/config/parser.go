package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	selecterrors "github.com/alexisbeaulieu97/selectbox/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a form definition from disk, validates it, and returns the
// resulting model. The format is chosen by file extension.
func Load(path string) (*Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, selecterrors.NewParseError(path, 0, err)
	}

	var form *Form
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		form, err = ParseYAML(path, data)
	case ".toml":
		form, err = ParseTOML(path, data)
	default:
		return nil, selecterrors.NewConfigError(path, fmt.Sprintf("unsupported format %q (want .yaml, .yml or .toml)", ext))
	}
	if err != nil {
		return nil, err
	}

	if err := ValidateForm(form); err != nil {
		return nil, err
	}
	return form, nil
}

// ParseYAML decodes a YAML form. Unknown keys are rejected.
func ParseYAML(path string, data []byte) (*Form, error) {
	var form Form
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&form); err != nil {
		if errors.Is(err, io.EOF) {
			return &form, nil
		}
		return nil, selecterrors.NewParseError(path, extractLine(err), err)
	}
	return &form, nil
}

// ParseTOML decodes a TOML form. Unknown keys are rejected.
func ParseTOML(path string, data []byte) (*Form, error) {
	var form Form
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&form); err != nil {
		line := 0
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			line, _ = decodeErr.Position()
		}
		return nil, selecterrors.NewParseError(path, line, err)
	}
	return &form, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
