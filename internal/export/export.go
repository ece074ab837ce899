// Package export serializes a Summary for consumption outside the tool.
// It reads the Summary verbatim and never feeds anything back into the
// analysis.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/stats"
)

// JSON writes the summary as JSON, indented when pretty is set.
func JSON(w io.Writer, s *stats.Summary, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	return nil
}

// CSV writes one file per tabular section into dir and returns the
// written paths.
func CSV(dir string, s *stats.Summary) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	var written []string
	write := func(name string, head []string, rows [][]string) error {
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", name, err)
		}
		defer f.Close()

		w := csv.NewWriter(f)
		if err := w.Write(head); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		if err := w.WriteAll(rows); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		written = append(written, path)
		return nil
	}

	if err := write("senders.csv", []string{"sender", "messages"}, countRows(s.BySender)); err != nil {
		return nil, err
	}
	if err := write("timeline.csv", []string{"day", "messages"}, dayRows(s.Timeline)); err != nil {
		return nil, err
	}
	if err := write("top_words.csv", []string{"word", "count"}, countRows(s.TopWords)); err != nil {
		return nil, err
	}
	if err := write("top_emojis.csv", []string{"emoji", "count"}, countRows(s.TopEmojis)); err != nil {
		return nil, err
	}
	if err := write("starters.csv", []string{"sender", "conversations"}, countRows(s.ConversationStarters)); err != nil {
		return nil, err
	}

	sentRows := make([][]string, 0, len(s.SentimentByDay))
	for _, sd := range s.SentimentByDay {
		sentRows = append(sentRows, []string{
			sd.Name, sd.Day,
			strconv.FormatFloat(sd.Mean, 'f', 4, 64),
			strconv.Itoa(sd.Pos), strconv.Itoa(sd.Neu), strconv.Itoa(sd.Neg),
		})
	}
	if err := write("sentiment.csv", []string{"sender", "day", "mean", "pos", "neu", "neg"}, sentRows); err != nil {
		return nil, err
	}

	bucketRows := make([][]string, 0, len(s.BucketsByPerson))
	for _, pb := range s.BucketsByPerson {
		bucketRows = append(bucketRows, []string{pb.Name, strconv.Itoa(pb.Messages)})
	}
	if err := write("buckets.csv", []string{"sender", "messages"}, bucketRows); err != nil {
		return nil, err
	}

	return written, nil
}

func countRows(counts []stats.Count) [][]string {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Label, strconv.Itoa(c.Value)})
	}
	return rows
}

func dayRows(days []stats.DayCount) [][]string {
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		rows = append(rows, []string{d.Day, strconv.Itoa(d.Count)})
	}
	return rows
}
