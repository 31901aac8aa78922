package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	studies "lotus/internal/modules/studies/domain"
)

// SlotName is the persistence slot holding the serialized saved list.
const SlotName = "lotus-saved-studies"

const savedAtLayout = "2006-01-02T15:04:05.000Z07:00"

type SavedStudy struct {
	studies.Study
	SavedAt time.Time
}

// Key is the identity of a saved study. Two studies with the same key are
// the same saved entry.
type Key struct {
	Year    int
	Title   string
	Authors string
}

func KeyOf(s studies.Study) Key {
	return Key{Year: s.Year, Title: s.Title, Authors: s.Authors}
}

func (k Key) String() string {
	return fmt.Sprintf("%d-%s-%s", k.Year, k.Title, k.Authors)
}

func (s SavedStudy) Key() Key {
	return KeyOf(s.Study)
}

// record fixes the serialized field order.
type record struct {
	Year    int    `json:"year" yaml:"year"`
	Title   string `json:"title" yaml:"title"`
	Authors string `json:"authors" yaml:"authors"`
	Journal string `json:"journal" yaml:"journal"`
	SavedAt string `json:"savedAt" yaml:"savedAt"`
}

func (s SavedStudy) record() record {
	savedAt := ""
	if !s.SavedAt.IsZero() {
		savedAt = s.SavedAt.UTC().Format(savedAtLayout)
	}
	return record{Year: s.Year, Title: s.Title, Authors: s.Authors, Journal: s.Journal, SavedAt: savedAt}
}

func (s SavedStudy) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.record())
}

func (s SavedStudy) MarshalYAML() (any, error) {
	return s.record(), nil
}

// UnmarshalJSON decodes the study fields leniently. An unparseable savedAt
// leaves SavedAt zero.
func (s *SavedStudy) UnmarshalJSON(raw []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return err
	}
	out := SavedStudy{Study: studies.FromFields(fields)}
	if text, ok := fields["savedAt"].(string); ok {
		if at, err := time.Parse(time.RFC3339, text); err == nil {
			out.SavedAt = at.UTC()
		}
	}
	*s = out
	return nil
}

// Decode parses a persisted blob.
func Decode(blob string) ([]SavedStudy, error) {
	var out []SavedStudy
	if err := json.Unmarshal([]byte(blob), &out); err != nil {
		return nil, fmt.Errorf("decode saved studies: %w", err)
	}
	return out, nil
}

// Encode serializes the list in its persisted form.
func Encode(list []SavedStudy) (string, error) {
	if list == nil {
		list = []SavedStudy{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("encode saved studies: %w", err)
	}
	return string(raw), nil
}

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// Export is a serialized copy of the list ready to be written out.
type Export struct {
	Filename string
	Format   Format
	Payload  []byte
	Count    int
}

// NewExport renders list in format with the dated filename.
func NewExport(list []SavedStudy, format Format, now time.Time) (Export, error) {
	if list == nil {
		list = []SavedStudy{}
	}
	var (
		payload []byte
		err     error
	)
	switch format {
	case FormatYAML:
		payload, err = yaml.Marshal(list)
	default:
		format = FormatJSON
		payload, err = json.MarshalIndent(list, "", "  ")
	}
	if err != nil {
		return Export{}, fmt.Errorf("render %s export: %w", format, err)
	}
	return Export{
		Filename: fmt.Sprintf("lotus-saved-studies-%s.%s", now.UTC().Format("2006-01-02"), format),
		Format:   format,
		Payload:  payload,
		Count:    len(list),
	}, nil
}
