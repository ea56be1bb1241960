package ingest

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"ledgerq/internal/core"
)

// CSVSource reads delimited files whose separator is not known up
// front: it is sniffed from the header line.
type CSVSource struct {
	transactionsPath string
	profilesPath     string
}

func NewCSVSource(transactionsPath, profilesPath string) *CSVSource {
	return &CSVSource{
		transactionsPath: transactionsPath,
		profilesPath:     profilesPath,
	}
}

func (s *CSVSource) Transactions(ctx context.Context) ([]core.Transaction, error) {
	var records []core.Transaction
	err := readDelimited(s.transactionsPath, func(row map[string]string) {
		records = append(records, core.Transaction{
			CustomerID: strings.TrimSpace(row["cif"]),
			Date:       core.ParseDate(row["trx_date"]),
			Amount:     core.ParseAmount(row["amount"]),
			Direction:  core.ParseDirection(row["debit_credit"]),
			Detail:     row["detail_information"],
			Subheader:  row["subheader"],
			Notes:      row["notes"],
			Tags:       row["tags"],
			SystemCode: strings.TrimSpace(row["category_by_system"]),
		})
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *CSVSource) Profiles(ctx context.Context) ([]core.CustomerProfile, error) {
	var profiles []core.CustomerProfile
	err := readDelimited(s.profilesPath, func(row map[string]string) {
		profiles = append(profiles, core.CustomerProfile{
			CustomerID:    strings.TrimSpace(row["cif"]),
			Name:          row["customer_name"],
			AgeGroup:      row["age_group"],
			IncomeBracket: row["income_bracket"],
			Region:        row["region"],
			AccountType:   row["account_type"],
			RiskProfile:   row["risk_profile"],
		})
	})
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// sniffDelimiter picks the separator that occurs most often in the
// header line. Comma wins ties, matching its position in the
// candidate list.
func sniffDelimiter(header string) rune {
	candidates := []rune{',', ';', '\t', '|'}
	best, bestCount := ',', 0
	for _, c := range candidates {
		if n := strings.Count(header, string(c)); n > bestCount {
			best, bestCount = c, n
		}
	}
	return best
}

// readDelimited streams a delimited file row by row, invoking fn with
// a header-keyed view of each row. Header names are lowercased and
// trimmed. Short rows are padded with empty strings.
func readDelimited(path string, fn func(row map[string]string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	headerLine, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("read header of %s: %w", path, err)
	}
	sep := sniffDelimiter(headerLine)

	r := csv.NewReader(io.MultiReader(strings.NewReader(headerLine), br))
	r.Comma = sep
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("parse header of %s: %w", path, err)
	}
	for i, h := range header {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	for {
		cols, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		row := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(cols) {
				row[h] = cols[i]
			} else {
				row[h] = ""
			}
		}
		fn(row)
	}
	return nil
}
