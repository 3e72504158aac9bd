package settings

import (
	"bytes"
	_ "embed"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/pixie-sh/errors-go"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

//go:embed schema/config.schema.json
var schemaBytes []byte

const schemaURL = "config.schema.json"

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// Issue is one schema violation in a config file
type Issue struct {
	Path    string // Instance location, e.g. "/defaults/package_manager"
	Message string
}

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = errors.Wrap(err, "failed to unmarshal config schema")
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = errors.Wrap(err, "failed to add config schema")
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// Validate checks raw YAML config against the embedded schema.
// The error return is for parse or schema failures; violations are returned as issues.
func Validate(data []byte) ([]Issue, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, err
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to parse yaml")
	}
	if raw == nil {
		return nil, nil
	}

	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert config to json")
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare config for validation")
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil, nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, errors.Wrap(err, "unexpected validation error")
	}

	var issues []Issue
	collectIssues(ve, &issues)
	if len(issues) == 0 {
		issues = append(issues, Issue{Message: ve.Error()})
	}
	return issues, nil
}

func collectIssues(ve *jsonschema.ValidationError, issues *[]Issue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectIssues(cause, issues)
		}
		return
	}

	msg := ve.Error()
	if ve.ErrorKind != nil {
		msg = ve.ErrorKind.LocalizedString(printer)
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}

	*issues = append(*issues, Issue{Path: path, Message: msg})
}

// FormatIssues renders issues one per line
func FormatIssues(issues []Issue) string {
	lines := make([]string, 0, len(issues)+1)
	lines = append(lines, printer.Sprintf("  %d problem(s) found", len(issues)))
	for _, issue := range issues {
		path := issue.Path
		if path == "" {
			path = "(root)"
		}
		lines = append(lines, "  "+path+": "+issue.Message)
	}
	return strings.Join(lines, "\n")
}
