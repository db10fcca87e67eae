package reporter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"time"

	"fonegen/pkg/generator"
	"fonegen/pkg/utils"
)

// Reporter persists a generation batch as flat files sharing a common
// base path (without extension). Files are written only from a fully
// materialized batch; there is no incremental flush.
type Reporter struct {
	Base string
}

// Summary is the JSON run metadata written next to the data files.
type Summary struct {
	BatchID     string   `json:"batch_id"`
	GeneratedAt string   `json:"generated_at"`
	Requested   int      `json:"requested"`
	Produced    int      `json:"produced"`
	Attempts    int      `json:"attempts"`
	DDDs        []string `json:"ddds"`
}

func NewReporter(base string) *Reporter {
	return &Reporter{Base: base}
}

// WriteCSV writes <base>.csv with the header e164,nacional,ddd,numero
// and one row per record in generation order.
func (r *Reporter) WriteCSV(batch *generator.Batch) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"e164", "nacional", "ddd", "numero"})
	for _, rec := range batch.Records {
		w.Write([]string{rec.E164, rec.Nacional, rec.DDD, rec.Numero})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	path := r.Base + ".csv"
	return path, utils.WriteFile(path, buf.Bytes())
}

// WriteTXT writes <base>.txt with one E.164 value per line, in the same
// order as the CSV.
func (r *Reporter) WriteTXT(batch *generator.Batch) (string, error) {
	var buf bytes.Buffer
	for _, rec := range batch.Records {
		buf.WriteString(rec.E164)
		buf.WriteByte('\n')
	}

	path := r.Base + ".txt"
	return path, utils.WriteFile(path, buf.Bytes())
}

// WriteSummary writes <base>.json with the run metadata.
func (r *Reporter) WriteSummary(batch *generator.Batch, ddds []string) (string, error) {
	summary := Summary{
		BatchID:     batch.ID,
		GeneratedAt: batch.StartedAt.Format(time.RFC3339),
		Requested:   batch.Requested,
		Produced:    len(batch.Records),
		Attempts:    batch.Attempts,
		DDDs:        ddds,
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", err
	}

	path := r.Base + ".json"
	return path, utils.WriteFile(path, data)
}

// WriteAll persists the batch as CSV and TXT, plus the JSON summary
// when requested, and returns the written paths.
func (r *Reporter) WriteAll(batch *generator.Batch, ddds []string, summary bool) ([]string, error) {
	var paths []string

	csvPath, err := r.WriteCSV(batch)
	if err != nil {
		return paths, err
	}
	paths = append(paths, csvPath)

	txtPath, err := r.WriteTXT(batch)
	if err != nil {
		return paths, err
	}
	paths = append(paths, txtPath)

	if summary {
		jsonPath, err := r.WriteSummary(batch, ddds)
		if err != nil {
			return paths, err
		}
		paths = append(paths, jsonPath)
	}

	return paths, nil
}
