package sheet

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"scout/internal/domain/entity"
	"scout/internal/errors"
)

// Columns is the canonical column order of the scouting sheet.
var Columns = []string{"Address", "Price", "Rooms", "Area", "Latitude", "Longitude", "URL", "Notes"}

// headerSynonyms maps lowercased header spellings to canonical columns, so
// sheets exported from other tools still import cleanly.
var headerSynonyms = map[string]string{
	"address":   "Address",
	"adresse":   "Address",
	"street":    "Address",
	"price":     "Price",
	"preis":     "Price",
	"rooms":     "Rooms",
	"zimmer":    "Rooms",
	"area":      "Area",
	"sqft":      "Area",
	"flaeche":   "Area",
	"fläche":    "Area",
	"latitude":  "Latitude",
	"lat":       "Latitude",
	"longitude": "Longitude",
	"lng":       "Longitude",
	"lon":       "Longitude",
	"url":       "URL",
	"link":      "URL",
	"notes":     "Notes",
	"notizen":   "Notes",
}

// Row is one imported or exported sheet line. Coordinate is resolved from the
// latitude/longitude cells when present, otherwise from the URL cell.
type Row struct {
	Address    string
	Price      string
	Rooms      string
	Area       string
	Coordinate *entity.Coordinate
	URL        string
	Notes      string
}

// Import reads a CSV sheet. A header row is detected heuristically: when the
// first non-blank row names at least two known columns it is consumed as the
// header and defines the column mapping, otherwise the canonical order is
// assumed. Blank rows anywhere in the sheet are skipped.
func Import(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read csv")
	}

	columnIndex := defaultColumnIndex()
	rows := make([]Row, 0, len(records))
	headerSeen := false

	for _, record := range records {
		if blankRecord(record) {
			continue
		}

		if !headerSeen {
			headerSeen = true
			if mapped, ok := headerColumnIndex(record); ok {
				columnIndex = mapped

				continue
			}
		}

		rows = append(rows, recordToRow(record, columnIndex))
	}

	return rows, nil
}

// Export writes rows as CSV in the canonical column order, header included.
func Export(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Columns); err != nil {
		return errors.Wrap(err, "failed to write csv header")
	}

	for _, row := range rows {
		lat, lng := "", ""
		if row.Coordinate != nil {
			lat = strconv.FormatFloat(row.Coordinate.Lat, 'f', -1, 64)
			lng = strconv.FormatFloat(row.Coordinate.Lng, 'f', -1, 64)
		}

		record := []string{row.Address, row.Price, row.Rooms, row.Area, lat, lng, row.URL, row.Notes}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "failed to write csv row")
		}
	}

	writer.Flush()

	return errors.Wrap(writer.Error(), "failed to flush csv")
}

func defaultColumnIndex() map[string]int {
	index := make(map[string]int, len(Columns))
	for i, column := range Columns {
		index[column] = i
	}

	return index
}

// headerColumnIndex interprets a record as a header row. It reports false
// when fewer than two cells name a known column.
func headerColumnIndex(record []string) (map[string]int, bool) {
	index := make(map[string]int)
	for i, cell := range record {
		canonical, ok := headerSynonyms[strings.ToLower(strings.TrimSpace(cell))]
		if !ok {
			continue
		}
		if _, taken := index[canonical]; !taken {
			index[canonical] = i
		}
	}

	if len(index) < 2 {
		return nil, false
	}

	return index, true
}

func blankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

func recordToRow(record []string, columnIndex map[string]int) Row {
	cell := func(column string) string {
		i, ok := columnIndex[column]
		if !ok || i >= len(record) {
			return ""
		}

		return strings.TrimSpace(record[i])
	}

	row := Row{
		Address: cell("Address"),
		Price:   cell("Price"),
		Rooms:   cell("Rooms"),
		Area:    cell("Area"),
		URL:     cell("URL"),
		Notes:   cell("Notes"),
	}

	lat, latErr := strconv.ParseFloat(cell("Latitude"), 64)
	lng, lngErr := strconv.ParseFloat(cell("Longitude"), 64)
	switch {
	case latErr == nil && lngErr == nil:
		row.Coordinate = &entity.Coordinate{Lat: lat, Lng: lng}
	case row.URL != "":
		row.Coordinate = ExtractCoords(row.URL)
	}

	return row
}
