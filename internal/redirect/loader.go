package redirect

import (
	"encoding/json"
	"path/filepath"

	"github.com/aleister1102/siteguard/internal/common"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type rulesFile struct {
	Rules []Rule `json:"rules" yaml:"rules"`
}

// LoadRules reads a YAML or JSON rules file of the form {rules: [...]}.
// The returned rules are not validated; pass them to NewTable.
func LoadRules(path string, logger zerolog.Logger) ([]Rule, error) {
	data, err := common.NewFileManager(logger).ReadFile(path, common.DefaultMaxReadSize)
	if err != nil {
		return nil, common.WrapError(err, "failed to read redirect rules")
	}

	var file rulesFile
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	default:
		err = json.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, common.WrapErrorf(err, "failed to parse redirect rules from '%s'", path)
	}
	if len(file.Rules) == 0 {
		return nil, common.NewValidationError("rules", path, "rules file defines no rules")
	}
	return file.Rules, nil
}

// LoadTable builds the effective table: the rules file when one is given, the built-in legacy table otherwise
func LoadTable(rulesFile string, logger zerolog.Logger) (*Table, error) {
	rules := DefaultRules()
	if rulesFile != "" {
		loaded, err := LoadRules(rulesFile, logger)
		if err != nil {
			return nil, err
		}
		rules = loaded
	}

	table, err := NewTable(rules)
	if err != nil {
		return nil, common.WrapError(err, "invalid redirect table")
	}
	logger.Debug().Int("rules", table.Len()).Str("source", sourceName(rulesFile)).Msg("Redirect table loaded")
	return table, nil
}

func sourceName(rulesFile string) string {
	if rulesFile == "" {
		return "builtin"
	}
	return rulesFile
}
