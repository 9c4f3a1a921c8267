// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package encoder_test

import (
	"encoding/base64"
	"testing"

	"github.com/janderssonse/blueprints/internal/domain"
	"github.com/janderssonse/blueprints/internal/encoder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_BothAbsent(t *testing.T) {
	t.Parallel()

	assert.Empty(t, encoder.Encode(domain.Detail{}))
}

func TestEncode_Exact(t *testing.T) {
	t.Parallel()

	blob := encoder.Encode(domain.Detail{Compose: domain.Text("a"), Config: domain.Text("b")})

	raw, err := base64.StdEncoding.DecodeString(blob)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"compose\": \"a\",\n  \"config\": \"b\"\n}", string(raw))
}

func TestEncode_MissingSlotBecomesEmptyString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		detail domain.Detail
		want   encoder.Payload
	}{
		{
			name:   "compose only",
			detail: domain.Detail{Compose: domain.Text("services: {}")},
			want:   encoder.Payload{Compose: "services: {}"},
		},
		{
			name:   "config only",
			detail: domain.Detail{Config: domain.Text("x: 1")},
			want:   encoder.Payload{Config: "x: 1"},
		},
		{
			name:   "empty texts still encode",
			detail: domain.Detail{Compose: domain.Text(""), Config: domain.Text("")},
			want:   encoder.Payload{},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			blob := encoder.Encode(testCase.detail)
			require.NotEmpty(t, blob)

			payload, err := encoder.Decode(blob)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, payload)
		})
	}
}

func TestEncode_NoHTMLEscaping(t *testing.T) {
	t.Parallel()

	blob := encoder.Encode(domain.Detail{Compose: domain.Text("<a>&</a>"), Config: domain.Text("ü: \"q\"\n")})

	raw, err := base64.StdEncoding.DecodeString(blob)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"compose": "<a>&</a>"`)
	assert.Contains(t, string(raw), `"config": "ü: \"q\"\n"`)
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	_, err := encoder.Decode("***")
	require.ErrorIs(t, err, encoder.ErrInvalidBlob)

	_, err = encoder.Decode(base64.StdEncoding.EncodeToString([]byte("not json")))
	require.ErrorIs(t, err, encoder.ErrInvalidBlob)

	payload, err := encoder.Decode("")
	require.NoError(t, err)
	assert.Equal(t, encoder.Payload{}, payload)
}

func TestJSON(t *testing.T) {
	t.Parallel()

	doc, err := encoder.JSON(encoder.Payload{Compose: "a", Config: "b"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"compose\": \"a\",\n  \"config\": \"b\"\n}", doc)
}
