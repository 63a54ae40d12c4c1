package service

import (
	"bytes"
	"strconv"
	"strings"

	"fan-globe/internal/models"
)

// ExportFilename is the suggested download name for ExportCSV output.
const ExportFilename = "fan_signups.csv"

// csvHeader matches the JSON keys of models.Submission.
var csvHeader = []string{"id", "name", "email", "zip", "city", "state", "lat", "lon", "timestamp"}

// ExportCSV renders rows as CSV: a header row, every field double-quoted with
// embedded quotes doubled, lines joined by "\n" without a trailing newline.
// An empty list produces no output.
func ExportCSV(rows []models.Submission) []byte {
	if len(rows) == 0 {
		return nil
	}

	var buf bytes.Buffer
	buf.WriteString(strings.Join(csvHeader, ","))
	for _, r := range rows {
		buf.WriteByte('\n')
		fields := []string{
			r.ID,
			r.Name,
			r.Email,
			r.Zip,
			r.City,
			r.State,
			formatCoordinate(r.Lat),
			formatCoordinate(r.Lon),
			r.Timestamp,
		}
		for i, f := range fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(quoteField(f))
		}
	}
	return buf.Bytes()
}

// ParseCSVRecord maps one exported record back to a Submission using the
// header to locate columns. Unknown columns are ignored.
func ParseCSVRecord(header, record []string) (models.Submission, error) {
	var s models.Submission
	for i, name := range header {
		if i >= len(record) {
			break
		}
		v := record[i]
		switch strings.TrimSpace(name) {
		case "id":
			s.ID = v
		case "name":
			s.Name = v
		case "email":
			s.Email = v
		case "zip":
			s.Zip = v
		case "city":
			s.City = v
		case "state":
			s.State = v
		case "lat":
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return models.Submission{}, &ValidationError{Field: "lat", Message: "invalid latitude: " + v}
			}
			s.Lat = f
		case "lon":
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return models.Submission{}, &ValidationError{Field: "lon", Message: "invalid longitude: " + v}
			}
			s.Lon = f
		case "timestamp":
			s.Timestamp = v
		}
	}
	return s, nil
}

func quoteField(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
