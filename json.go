package gouri

import (
	"encoding/json"

	"braces.dev/errtrace"
)

// componentsJSON fixes the serialized field order. Absent components encode
// as null, present-but-empty ones as "".
type componentsJSON struct {
	Scheme   *string `json:"scheme"`
	User     *string `json:"user"`
	Pass     *string `json:"pass"`
	Host     *string `json:"host"`
	Port     *uint16 `json:"port"`
	Path     string  `json:"path"`
	Query    *string `json:"query"`
	Fragment *string `json:"fragment"`
}

// MarshalJSON implements [json.Marshaler].
func (c Components) MarshalJSON() ([]byte, error) {
	js := componentsJSON{Path: c.path}
	if c.flags&hasScheme != 0 {
		js.Scheme = &c.scheme
	}
	if c.flags&hasUser != 0 {
		js.User = &c.user
	}
	if c.flags&hasPass != 0 {
		js.Pass = &c.pass
	}
	if c.flags&hasHost != 0 {
		js.Host = &c.host
	}
	if c.flags&hasPort != 0 {
		js.Port = &c.port
	}
	if c.flags&hasQuery != 0 {
		js.Query = &c.query
	}
	if c.flags&hasFragment != 0 {
		js.Fragment = &c.fragment
	}
	return errtrace.Wrap2(json.Marshal(js))
}

// UnmarshalJSON implements [json.Unmarshaler]. The decoded components are
// taken as-is: validity is the caller's responsibility, as with the With*
// setters.
func (c *Components) UnmarshalJSON(data []byte) error {
	var js componentsJSON
	if err := json.Unmarshal(data, &js); err != nil {
		return errtrace.Wrap(err)
	}

	*c = Components{path: js.Path}
	if js.Scheme != nil {
		*c = c.WithScheme(*js.Scheme)
	}
	if js.User != nil {
		*c = c.WithUser(*js.User)
	}
	if js.Pass != nil {
		*c = c.WithUserPassword(c.user, *js.Pass)
	}
	if js.Host != nil {
		*c = c.WithHost(*js.Host)
	}
	if js.Port != nil {
		*c = c.WithPort(*js.Port)
	}
	if js.Query != nil {
		*c = c.WithQuery(*js.Query)
	}
	if js.Fragment != nil {
		*c = c.WithFragment(*js.Fragment)
	}
	return nil
}
