/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: formatter.go
Description: Custom log formatters for Entro. Provides compact, colored, one-line output
with sorted key=value fields, and a search formatter that tags estimate, search and
match events with a short prefix.
*/

package logging

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// CustomFormatter provides compact, structured logging output
type CustomFormatter struct {
	Timestamp bool
	Caller    bool
	Colors    bool
}

// Format formats a log entry on a single line
func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var output strings.Builder
	f.writeHeader(&output, entry)
	output.WriteString(entry.Message)
	if len(entry.Data) > 0 {
		output.WriteString(" ")
		output.WriteString(f.formatFields(entry.Data, f.formatValue))
	}
	output.WriteString("\n")
	return []byte(output.String()), nil
}

func (f *CustomFormatter) writeHeader(output *strings.Builder, entry *logrus.Entry) {
	if f.Timestamp {
		timestamp := entry.Time.Format("2006-01-02 15:04:05.000")
		if f.Colors {
			output.WriteString(fmt.Sprintf("\033[36m%s\033[0m ", timestamp)) // Cyan
		} else {
			output.WriteString(timestamp + " ")
		}
	}

	level := strings.ToUpper(entry.Level.String())
	if f.Colors {
		output.WriteString(fmt.Sprintf("\033[%dm%s\033[0m ", f.getLevelColor(entry.Level), level))
	} else {
		output.WriteString(level + " ")
	}

	if f.Caller && entry.HasCaller() {
		caller := fmt.Sprintf("%s:%d", entry.Caller.File, entry.Caller.Line)
		if f.Colors {
			output.WriteString(fmt.Sprintf("\033[33m[%s]\033[0m ", caller)) // Yellow
		} else {
			output.WriteString(fmt.Sprintf("[%s] ", caller))
		}
	}
}

// getLevelColor returns the ANSI color code for a log level
func (f *CustomFormatter) getLevelColor(level logrus.Level) int {
	switch level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return 37 // White
	case logrus.InfoLevel:
		return 32 // Green
	case logrus.WarnLevel:
		return 33 // Yellow
	case logrus.ErrorLevel:
		return 31 // Red
	default:
		return 35 // Magenta
	}
}

// formatFields renders fields as key=value pairs sorted by key
func (f *CustomFormatter) formatFields(fields logrus.Fields, format func(string, interface{}) string) string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		value := format(key, fields[key])
		if f.Colors {
			parts = append(parts, fmt.Sprintf("\033[34m%s\033[0m=\033[32m%s\033[0m", key, value)) // Blue key, Green value
		} else {
			parts = append(parts, fmt.Sprintf("%s=%s", key, value))
		}
	}
	return strings.Join(parts, " ")
}

// formatValue formats a field value appropriately
func (f *CustomFormatter) formatValue(_ string, value interface{}) string {
	switch v := value.(type) {
	case time.Duration:
		return v.String()
	case time.Time:
		return v.Format("15:04:05.000")
	case string:
		if runes := []rune(v); len(runes) > 50 {
			return fmt.Sprintf("%s...", string(runes[:50]))
		}
		return v
	case float64:
		return fmt.Sprintf("%.4g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// SearchFormatter tags search-related entries with a short prefix
type SearchFormatter struct {
	CustomFormatter
}

// Format formats an entry with its event prefix
func (f *SearchFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var output strings.Builder
	f.writeHeader(&output, entry)

	if prefix := f.getPrefix(entry.Message); prefix != "" {
		if f.Colors {
			output.WriteString(fmt.Sprintf("\033[35m[%s]\033[0m ", prefix)) // Magenta
		} else {
			output.WriteString(fmt.Sprintf("[%s] ", prefix))
		}
	}

	output.WriteString(entry.Message)
	if len(entry.Data) > 0 {
		output.WriteString(" ")
		output.WriteString(f.formatFields(entry.Data, f.formatSearchValue))
	}
	output.WriteString("\n")
	return []byte(output.String()), nil
}

// getPrefix returns a prefix based on the log message
func (f *SearchFormatter) getPrefix(message string) string {
	switch {
	case strings.HasPrefix(message, "Search"):
		return "SEARCH"
	case strings.Contains(message, "matched"):
		return "MATCH"
	case strings.Contains(message, "Entropy"):
		return "ESTIMATE"
	case strings.Contains(message, "Dictionary"):
		return "DICT"
	case strings.Contains(message, "Category"):
		return "CACHE"
	default:
		return ""
	}
}

// formatSearchValue shortens run identifiers and renders rates
func (f *SearchFormatter) formatSearchValue(key string, value interface{}) string {
	switch key {
	case "run_id":
		if s, ok := value.(string); ok && len(s) > 8 {
			return s[:8]
		}
	case "hash_rate":
		if r, ok := value.(float64); ok {
			return fmt.Sprintf("%.0f/sec", r)
		}
	}
	return f.formatValue(key, value)
}
