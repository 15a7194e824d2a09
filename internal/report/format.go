package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/dustin/go-humanize"
)

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatSI   = "si"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatSI}
}

// ValidFormat reports whether format is supported by Write.
func ValidFormat(format string) bool {
	return slices.Contains(Formats(), format)
}

// Write renders s to w in the requested format. Text output prints overflowed
// quantities as +Inf; the json and si formats cannot represent them and
// return the CheckFinite error without writing anything.
func Write(w io.Writer, s Summary, format string) error {
	switch format {
	case FormatText, "":
		return writeText(w, s)
	case FormatJSON:
		if err := s.CheckFinite(); err != nil {
			return fmt.Errorf("json output: %w", err)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case FormatSI:
		if err := s.CheckFinite(); err != nil {
			return fmt.Errorf("si output: %w", err)
		}
		return writeSI(w, s)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeText(w io.Writer, s Summary) error {
	_, err := fmt.Fprintf(w,
		"Number of cells in parallel: %d\n"+
			"Number of cells in series: %d\n"+
			"Total pack weight: %s kg\n"+
			"Power absorbed from the battery during cruise: %.2f kW\n"+
			"Power absorbed from the battery during vertical takeoff: %.2f kW\n"+
			"Total power absorbed from the battery: %.2f kW\n",
		s.Configuration.Parallel,
		s.Configuration.Series,
		strconv.FormatFloat(s.WeightKg, 'f', -1, 64),
		s.CruisePowerKW,
		s.VerticalPowerKW,
		s.TotalPowerKW,
	)
	return err
}

func writeSI(w io.Writer, s Summary) error {
	_, err := fmt.Fprintf(w,
		"cells:    %s parallel x %s series\n"+
			"weight:   %s\n"+
			"cruise:   %s\n"+
			"vertical: %s\n"+
			"total:    %s\n",
		humanize.Comma(int64(s.Configuration.Parallel)),
		humanize.Comma(int64(s.Configuration.Series)),
		humanize.SIWithDigits(s.WeightGrams, 2, "g"),
		humanize.SIWithDigits(s.CruisePowerW, 2, "W"),
		humanize.SIWithDigits(s.VerticalPowerW, 2, "W"),
		humanize.SIWithDigits(s.TotalPowerKW*1000, 2, "W"),
	)
	return err
}
