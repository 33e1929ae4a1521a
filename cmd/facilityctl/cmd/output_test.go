package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facility-finder/internal/domain"
)

func ptr[T any](v T) *T {
	return &v
}

func TestPrintFacilities_Text(t *testing.T) {
	color.NoColor = true

	facilities := []domain.Facility{
		{
			ID:               ptr("ChIJ1"),
			Name:             ptr("Hardware Societe"),
			Rating:           ptr(4.6),
			UserRatingCount:  ptr(3120),
			DistanceKm:       ptr(0.4321),
			FormattedAddress: ptr("120 Hardware St, Melbourne"),
			BusinessStatus:   ptr("OPERATIONAL"),
		},
		{
			BusinessStatus: ptr("CLOSED_PERMANENTLY"),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, printFacilities(&buf, facilities, formatText))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Equal(t, "Hardware Societe  ★ 4.6 (3120)  0.43 km  120 Hardware St, Melbourne  ChIJ1", string(lines[0]))
	assert.Equal(t, "(unnamed)  CLOSED_PERMANENTLY", string(lines[1]))
}

func TestPrintFacilities_TextEmpty(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	require.NoError(t, printFacilities(&buf, nil, formatText))

	assert.Equal(t, "no facilities found\n", buf.String())
}

func TestPrintFacilities_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printFacilities(&buf, nil, formatJSON))
	assert.JSONEq(t, `[]`, buf.String())

	buf.Reset()
	require.NoError(t, printFacilities(&buf, []domain.Facility{{ID: ptr("X"), Rating: ptr(4.0)}}, formatJSON))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "X", decoded[0]["id"])
	assert.NotContains(t, decoded[0], "name")
}

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, validateFormat("text"))
	assert.NoError(t, validateFormat("json"))
	assert.Error(t, validateFormat("yaml"))
}

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"language=chinese", "minRating=4.5", "language=vietnamese", "note=a=b"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"language":  "vietnamese",
		"minRating": "4.5",
		"note":      "a=b",
	}, params)

	_, err = parseParams([]string{"novalue"})
	assert.Error(t, err)

	_, err = parseParams([]string{"=x"})
	assert.Error(t, err)
}
