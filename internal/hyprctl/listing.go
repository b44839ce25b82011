package hyprctl

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/hyprroll/roll/internal/transform"
)

// Format is a monitors listing format.
type Format uint8

const (
	JSONFormat Format = iota // structured output (`hyprctl -j monitors`), the zero value
	TextFormat               // human-readable output (`hyprctl monitors`)
)

// AllFormats returns all listing formats.
func AllFormats() []Format { return []Format{JSONFormat, TextFormat} }

// AllFormatStrings returns all listing formats as a strings slice.
func AllFormatStrings() []string {
	var (
		formats = AllFormats()
		result  = make([]string, len(formats))
	)

	for i := 0; i < len(formats); i++ {
		result[i] = formats[i].String()
	}

	return result
}

// String returns a lower-case representation of the format.
func (f Format) String() string {
	switch f {
	case JSONFormat:
		return "json"
	case TextFormat:
		return "text"
	}

	return "format(" + strconv.Itoa(int(f)) + ")"
}

// ParseFormat parses a listing format (case is ignored).
func ParseFormat(text []byte) (Format, error) {
	switch string(bytes.ToLower(text)) {
	case "json", "": // make the zero value useful
		return JSONFormat, nil
	case "text":
		return TextFormat, nil
	}

	return Format(0), &transform.InvalidArgumentError{Argument: "listing format", Value: string(text)}
}

// Monitor is a single entry of the monitors listing.
type Monitor struct {
	Name         string
	Description  string
	Transform    string // raw transform value (empty if the field is missing)
	HasTransform bool

	line, transformLine int // 1-based line numbers (text listing only)
}

// ParseTransform converts the raw transform value into the transform.Transform.
func (m Monitor) ParseTransform() (transform.Transform, error) {
	if !m.HasTransform {
		return 0, &ParseError{Monitor: m.Name, Line: m.line, Reason: "no transform field in the monitor section"}
	}

	v, err := strconv.Atoi(strings.TrimSpace(m.Transform))
	if err != nil {
		return 0, &ParseError{
			Monitor: m.Name,
			Line:    m.transformLine,
			Reason:  "transform value " + strconv.Quote(m.Transform) + " is not an integer",
		}
	}

	return transform.New(v)
}

// Listing is a parsed monitors listing.
type Listing struct {
	Monitors []Monitor
}

// Names returns the names of all listed monitors (in the listing order).
func (l Listing) Names() []string {
	var names = make([]string, 0, len(l.Monitors))

	for _, m := range l.Monitors {
		names = append(names, m.Name)
	}

	return names
}

// Lookup returns the first monitor with the given name.
func (l Listing) Lookup(name string) (Monitor, error) {
	for _, m := range l.Monitors {
		if m.Name == name {
			return m, nil
		}
	}

	return Monitor{}, &NotFoundError{Monitor: name, Available: l.Names()}
}

// Transform looks up the monitor and returns its current transform.
func (l Listing) Transform(name string) (transform.Transform, error) {
	m, err := l.Lookup(name)
	if err != nil {
		return 0, err
	}

	return m.ParseTransform()
}

// ParseListing parses the listing in any supported format. The structured format is detected by the leading
// '[' character, everything else is parsed as the text listing.
func ParseListing(data []byte) (Listing, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		return ParseJSONListing(trimmed)
	}

	return ParseTextListing(data)
}

type jsonMonitor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Transform   *int   `json:"transform"`
}

// ParseJSONListing parses the `hyprctl -j monitors` output.
func ParseJSONListing(data []byte) (Listing, error) {
	var items []jsonMonitor

	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &items); err != nil {
		return Listing{}, &ParseError{Reason: "malformed json listing: " + err.Error()}
	}

	var listing = Listing{Monitors: make([]Monitor, 0, len(items))}

	for _, item := range items {
		var m = Monitor{Name: item.Name, Description: item.Description}

		if item.Transform != nil {
			m.Transform, m.HasTransform = strconv.Itoa(*item.Transform), true
		}

		listing.Monitors = append(listing.Monitors, m)
	}

	return listing, nil
}

const (
	textHeaderPrefix   = "Monitor "
	textTransformField = "transform"
)

// ParseTextListing parses the `hyprctl monitors` output. The expected grammar is:
//
//	Monitor <name> (ID <n>):
//		<key>: <value>
//		...
//
// Section headers are not indented, fields are. Indented lines without the colon (e.g. the current mode line)
// and anything before the first header are ignored.
func ParseTextListing(data []byte) (Listing, error) {
	var (
		listing Listing
		current = -1 // index of the current section
		scanner = bufio.NewScanner(bytes.NewReader(data))
		lineNum int
	)

	for scanner.Scan() {
		lineNum++

		var line = strings.TrimRight(scanner.Text(), "\r")

		if strings.TrimSpace(line) == "" {
			continue
		}

		if indented := line[0] == ' ' || line[0] == '\t'; !indented {
			if strings.HasPrefix(line, textHeaderPrefix) {
				var fields = strings.Fields(line)

				if len(fields) < 2 { //nolint:mnd
					return Listing{}, &ParseError{Line: lineNum, Reason: "monitor header without a name"}
				}

				listing.Monitors = append(listing.Monitors, Monitor{Name: strings.TrimSuffix(fields[1], ":"), line: lineNum})
				current = len(listing.Monitors) - 1
			}

			continue
		}

		if current < 0 {
			continue
		}

		key, value, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}

		var m = &listing.Monitors[current]

		switch strings.TrimSpace(key) {
		case textTransformField:
			if !m.HasTransform {
				m.Transform, m.HasTransform, m.transformLine = strings.TrimSpace(value), true, lineNum
			}
		case "description":
			m.Description = strings.TrimSpace(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return Listing{}, &ParseError{Line: lineNum, Reason: err.Error()}
	}

	return listing, nil
}
