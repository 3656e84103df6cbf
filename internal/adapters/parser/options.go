package parser

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
	"weave/internal/core/domain"
)

// parseHeader parses the inside of a chunk fence header: a language tag, an
// optional label, and comma-separated key=value options.
//
//	r read-data, cache=TRUE, dependson=c("setup", "load")
func parseHeader(header string) (lang, label string, opts domain.ChunkOptions, deps []domain.InternedString, err error) {
	opts = domain.DefaultChunkOptions()

	fields := splitTopLevel(header)
	if len(fields) == 0 || strings.TrimSpace(fields[0]) == "" {
		return "", "", opts, nil, zerr.New("empty chunk header")
	}

	head := strings.Fields(fields[0])
	lang = head[0]
	switch {
	case len(head) == 2:
		label = head[1]
	case len(head) > 2:
		return "", "", opts, nil, zerr.With(zerr.New("malformed chunk label"), "header", fields[0])
	}

	for _, field := range fields[1:] {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		key, value, found := strings.Cut(field, "=")
		if !found {
			return "", "", opts, nil, zerr.With(domain.ErrInvalidOption, "option", field)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if key == "dependson" {
			deps, err = parseDependsOn(value)
			if err != nil {
				return "", "", opts, nil, err
			}
			continue
		}
		if err := applyOption(&opts, key, value); err != nil {
			return "", "", opts, nil, err
		}
	}

	return lang, label, opts, deps, nil
}

// applyOption sets one recognized option on the set.
func applyOption(opts *domain.ChunkOptions, key, value string) error {
	switch key {
	case "eval":
		return parseBool(key, value, &opts.Eval)
	case "echo":
		return parseBool(key, value, &opts.Echo)
	case "cache":
		return parseBool(key, value, &opts.Cache)
	case "fig.width":
		return parseFloat(key, value, &opts.FigWidth)
	case "fig.height":
		return parseFloat(key, value, &opts.FigHeight)
	case "results":
		switch mode := domain.ResultsMode(unquote(value)); mode {
		case domain.ResultsMarkup, domain.ResultsAsIs, domain.ResultsHide:
			opts.Results = mode
			return nil
		default:
			return zerr.With(zerr.With(domain.ErrInvalidOption, "option", key), "value", value)
		}
	default:
		return zerr.With(domain.ErrUnknownOption, "option", key)
	}
}

func parseBool(key, value string, dst *bool) error {
	switch strings.ToUpper(value) {
	case "TRUE", "T":
		*dst = true
	case "FALSE", "F":
		*dst = false
	default:
		return zerr.With(zerr.With(domain.ErrInvalidOption, "option", key), "value", value)
	}
	return nil
}

func parseFloat(key, value string, dst *float64) error {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return zerr.With(zerr.With(domain.ErrInvalidOption, "option", key), "value", value)
	}
	*dst = f
	return nil
}

// parseDependsOn accepts a single identifier ("setup", 'setup', or bare) or
// an ordered list in the c("a", "b") form.
func parseDependsOn(value string) ([]domain.InternedString, error) {
	items := []string{value}
	if strings.HasPrefix(value, "c(") && strings.HasSuffix(value, ")") {
		inner := value[2 : len(value)-1]
		items = splitTopLevel(inner)
	}

	deps := make([]domain.InternedString, 0, len(items))
	for _, item := range items {
		id := unquote(strings.TrimSpace(item))
		if id == "" {
			return nil, zerr.With(zerr.With(domain.ErrInvalidOption, "option", "dependson"), "value", value)
		}
		deps = append(deps, domain.NewInternedString(id))
	}
	return deps, nil
}

// splitTopLevel splits on commas that are outside quotes and parentheses.
func splitTopLevel(s string) []string {
	var fields []string
	depth := 0
	var quote byte
	start := 0

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			depth--
		case c == ',' && depth == 0:
			fields = append(fields, s[start:i])
			start = i + 1
		}
	}
	fields = append(fields, s[start:])
	return fields
}

// unquote strips one layer of matching single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
