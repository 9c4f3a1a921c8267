// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package encoder turns a template detail into the shareable import blob.
package encoder

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/janderssonse/blueprints/internal/domain"
)

// ErrInvalidBlob is returned when Decode cannot read its input.
var ErrInvalidBlob = errors.New("invalid config blob")

// Payload is the JSON document carried by the blob. Field order is fixed.
type Payload struct {
	Compose string `json:"compose"`
	Config  string `json:"config"`
}

// Encode returns base64(JSON{compose, config}) indented by two spaces.
// A detail with neither artifact encodes to the empty string; a single
// missing artifact is encoded as "".
func Encode(detail domain.Detail) string {
	if detail.Empty() {
		return ""
	}

	doc, err := marshal(Payload{Compose: detail.ComposeText(), Config: detail.ConfigText()})
	if err != nil {
		// Two plain strings always marshal.
		return ""
	}

	return base64.StdEncoding.EncodeToString(doc)
}

// Decode reverses Encode. The empty string decodes to an empty payload.
func Decode(blob string) (Payload, error) {
	if blob == "" {
		return Payload{}, nil
	}

	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %w", ErrInvalidBlob, err)
	}

	var payload Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Payload{}, fmt.Errorf("%w: %w", ErrInvalidBlob, err)
	}

	return payload, nil
}

// JSON returns the pre-base64 document for payload.
func JSON(payload Payload) (string, error) {
	doc, err := marshal(payload)
	if err != nil {
		return "", err
	}

	return string(doc), nil
}

func marshal(payload Payload) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(payload); err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
