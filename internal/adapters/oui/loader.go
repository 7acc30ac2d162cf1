package oui

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// Load parses OUI assignments from r. Two formats are accepted:
// the IEEE "oui.csv" export (Registry,Assignment,Organization Name,...)
// and plain text lines of "XX:XX:XX Vendor Name". Comments (#) and lines
// without a valid prefix are skipped.
func Load(r io.Reader) ([]Entry, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len("Registry,"))
	if err == nil && strings.EqualFold(string(head), "Registry,") {
		return loadCSV(br)
	}
	return loadText(br)
}

func loadCSV(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var entries []Entry
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, err
		}
		if len(rec) < 3 {
			continue
		}
		prefix, ok := normalizePrefix(rec[1])
		vendor := strings.TrimSpace(rec[2])
		if !ok || vendor == "" {
			continue
		}
		entries = append(entries, Entry{Prefix: prefix, Vendor: vendor})
	}
}

func loadText(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) < 8 || strings.HasPrefix(line, "#") {
			continue
		}
		prefix, ok := normalizePrefix(line[:8])
		vendor := strings.TrimSpace(line[8:])
		if !ok || vendor == "" {
			continue
		}
		entries = append(entries, Entry{Prefix: prefix, Vendor: vendor})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
