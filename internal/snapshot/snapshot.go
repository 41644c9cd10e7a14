// Package snapshot encodes a requisition form and its pagination settings as a
// single query parameter for the preview route.
package snapshot

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"requisitionprint/internal/domain"
)

// Param is the query parameter carrying the JSON snapshot.
const Param = "data"

// Encode serializes p to JSON.
func Encode(p domain.PreviewPayload) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode preview payload: %w", err)
	}
	return string(raw), nil
}

// Decode parses a JSON snapshot. Missing, empty or unparsable input returns
// domain.ErrMalformedPayload together with an empty payload.
func Decode(raw string) (domain.PreviewPayload, error) {
	var p domain.PreviewPayload
	if strings.TrimSpace(raw) == "" {
		return domain.PreviewPayload{}, fmt.Errorf("%w: empty", domain.ErrMalformedPayload)
	}
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return domain.PreviewPayload{}, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}
	return p, nil
}

// PreviewURL returns base with the snapshot of p attached as the Param query value.
func PreviewURL(base string, p domain.PreviewPayload) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse preview base url: %w", err)
	}
	data, err := Encode(p)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set(Param, data)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
