package util

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadSymbolColumn parses an exchange symbol master file. The first row
// is a header; the symbol column is located by name so the reader works
// for both the full NSE equity master and a single-column list.
func ReadSymbolColumn(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	headerMap := make(map[string]int)
	for i, name := range header {
		headerMap[strings.ToUpper(strings.TrimSpace(name))] = i
	}

	symbolIdx, hasSymbol := headerMap["SYMBOL"]
	if !hasSymbol {
		// Single-column exports sometimes carry no recognizable header.
		symbolIdx = 0
	}

	var symbols []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading csv record: %w", err)
		}
		if symbolIdx >= len(record) {
			continue
		}

		symbol := strings.ToUpper(strings.TrimSpace(record[symbolIdx]))
		if symbol == "" {
			continue
		}
		symbols = append(symbols, symbol)
	}

	return symbols, nil
}
