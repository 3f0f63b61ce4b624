package handlers

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// URLRecord is one JSON line in the file store. The "uuid" key is the
// numeric link ID, kept for compatibility with earlier dump files.
type URLRecord struct {
	ID          int64  `json:"uuid"`
	ShortURL    string `json:"short_url"`
	OriginalURL string `json:"original_url"`
}

// Producer appends link records to a JSON-lines file.
type Producer struct {
	file    *os.File
	encoder *json.Encoder
}

func NewProducer(filePath string) (*Producer, error) {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	file, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return nil, err
	}

	return &Producer{
		file:    file,
		encoder: json.NewEncoder(file),
	}, nil
}

func (p *Producer) WriteRecord(rec *URLRecord) error {
	return p.encoder.Encode(rec)
}

func (p *Producer) Close() error {
	if err := p.file.Close(); err != nil {
		return fmt.Errorf("error closing file: %w", err)
	}
	return nil
}

// LoadRecords reads every record previously written to filePath. A missing
// file is not an error, restore simply starts empty.
func LoadRecords(filePath string) ([]URLRecord, error) {
	file, err := os.Open(filePath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	var records []URLRecord
	for decoder.More() {
		var rec URLRecord
		if err := decoder.Decode(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
