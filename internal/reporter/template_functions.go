package reporter

import (
	"encoding/json"
	"html/template"
	"strings"
	"time"

	"github.com/aleister1102/siteguard/internal/models"
)

// GetCommonTemplateFunctions returns common functions for templates
func GetCommonTemplateFunctions() template.FuncMap {
	return template.FuncMap{
		"json": func(v any) (template.JS, error) {
			data, err := json.Marshal(v)
			if err != nil {
				return "", err
			}
			return template.JS(data), nil
		},
		"ToLower": strings.ToLower,
		"joinStrings": func(s []string, sep string) string {
			return strings.Join(s, sep)
		},
		"formatTime": func(t time.Time, layout string) string {
			if t.IsZero() {
				return "N/A"
			}
			return t.Format(layout)
		},
		"duration": func(start, end time.Time) string {
			if start.IsZero() || end.IsZero() {
				return "N/A"
			}
			return end.Sub(start).Round(time.Millisecond).String()
		},
		"verdictClass": verdictClass,
		"yesNo": func(b bool) string {
			if b {
				return "yes"
			}
			return "no"
		},
	}
}

func verdictClass(v models.Verdict) string {
	switch v {
	case models.VerdictPass:
		return "pass"
	case models.VerdictFail:
		return "fail"
	default:
		return "error"
	}
}
