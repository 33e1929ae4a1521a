package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/facility-finder/internal/domain"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var (
	nameColor     = color.New(color.Bold)
	ratingColor   = color.New(color.FgYellow)
	distanceColor = color.New(color.FgCyan)
	statusColor   = color.New(color.FgRed)
	faintColor    = color.New(color.Faint)
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q, expected %s or %s", format, formatText, formatJSON)
	}
}

// printFacilities пишет места в w: JSON-массив или одну строку на место
func printFacilities(w io.Writer, facilities []domain.Facility, format string) error {
	if facilities == nil {
		facilities = []domain.Facility{}
	}

	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(facilities)
	}

	if len(facilities) == 0 {
		_, err := fmt.Fprintln(w, faintColor.Sprint("no facilities found"))
		return err
	}

	for i := range facilities {
		if _, err := fmt.Fprintln(w, summaryLine(&facilities[i])); err != nil {
			return err
		}
	}
	return nil
}

func summaryLine(f *domain.Facility) string {
	parts := make([]string, 0, 6)

	name := "(unnamed)"
	if f.Name != nil {
		name = *f.Name
	}
	parts = append(parts, nameColor.Sprint(name))

	if f.Rating != nil {
		rating := fmt.Sprintf("★ %.1f", *f.Rating)
		if f.UserRatingCount != nil {
			rating += fmt.Sprintf(" (%d)", *f.UserRatingCount)
		}
		parts = append(parts, ratingColor.Sprint(rating))
	}

	if f.DistanceKm != nil {
		parts = append(parts, distanceColor.Sprintf("%.2f km", *f.DistanceKm))
	}

	if f.BusinessStatus != nil && *f.BusinessStatus != "OPERATIONAL" {
		parts = append(parts, statusColor.Sprint(*f.BusinessStatus))
	}

	if f.FormattedAddress != nil {
		parts = append(parts, *f.FormattedAddress)
	}

	if f.ID != nil {
		parts = append(parts, faintColor.Sprint(*f.ID))
	}

	return strings.Join(parts, "  ")
}
