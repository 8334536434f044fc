package ingredient

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"foodgram/internal/logging"
	"foodgram/internal/metrics"
	"foodgram/internal/pkg/apperr"
	"foodgram/internal/pkg/validator"

	"github.com/goccy/go-json"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// FormatFromPath picks the import format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(path), ".csv"):
		return FormatCSV, nil
	case strings.HasSuffix(strings.ToLower(path), ".json"):
		return FormatJSON, nil
	default:
		return "", apperr.WithMessage(ErrUnknownFormat, fmt.Sprintf("cannot infer import format from %q", path))
	}
}

type Record struct {
	Name            string `json:"name" validate:"required,max=200"`
	MeasurementUnit string `json:"measurement_unit" validate:"required,max=200"`
}

type ImportResult struct {
	Read     int   `json:"read"`
	Inserted int64 `json:"inserted"`
}

type Importer struct {
	repo      *Repository
	batchSize int
}

func NewImporter(repo *Repository) *Importer {
	return &Importer{repo: repo, batchSize: defaultBatchSize}
}

// Import reads every record from r, validates it and inserts the ones not
// yet in the catalog. Nothing is inserted when any record is invalid.
func (im *Importer) Import(ctx context.Context, r io.Reader, format Format) (*ImportResult, error) {
	var (
		records []Record
		err     error
	)
	switch format {
	case FormatCSV:
		records, err = readCSV(r)
	case FormatJSON:
		records, err = readJSON(r)
	default:
		return nil, ErrUnknownFormat
	}
	if err != nil {
		return nil, err
	}

	items := make([]Ingredient, 0, len(records))
	seen := make(map[Record]struct{}, len(records))
	for i, rec := range records {
		rec.Name = strings.TrimSpace(rec.Name)
		rec.MeasurementUnit = strings.TrimSpace(rec.MeasurementUnit)
		if errs := validator.Validate(rec); errs != nil {
			return nil, apperr.WithDetails(
				apperr.WithMessage(ErrInvalidRecord, fmt.Sprintf("record %d is invalid", i+1)),
				errs,
			)
		}
		if _, dup := seen[rec]; dup {
			continue
		}
		seen[rec] = struct{}{}
		items = append(items, Ingredient{Name: rec.Name, MeasurementUnit: rec.MeasurementUnit})
	}

	inserted, err := im.repo.BulkInsert(ctx, items, im.batchSize)
	if err != nil {
		return nil, err
	}
	metrics.IngredientsImported.Add(float64(inserted))

	logging.Ctx(ctx).Info().
		Int("read", len(records)).
		Int64("inserted", inserted).
		Str("format", string(format)).
		Msg("ingredients imported")

	return &ImportResult{Read: len(records), Inserted: inserted}, nil
}

// readCSV accepts "name,measurement_unit" rows with an optional header row.
func readCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	var out []Record
	for line := 1; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, apperr.Wrap(apperr.WithMessage(ErrInvalidRecord, fmt.Sprintf("csv line %d", line)), err)
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(row[0]), "name") &&
			strings.EqualFold(strings.TrimSpace(row[1]), "measurement_unit") {
			continue
		}
		out = append(out, Record{Name: row[0], MeasurementUnit: row[1]})
	}
}

func readJSON(r io.Reader) ([]Record, error) {
	var out []Record
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, apperr.Wrap(apperr.WithMessage(ErrInvalidRecord, "malformed JSON"), err)
	}
	return out, nil
}
