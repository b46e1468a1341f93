// Package data reads balance series from files: plain JSON arrays of
// balances, label/balance CSV files and Plaid style transaction lists.
package data

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/vdobler/balancecurve"
)

// Kind is the format of an input file.
type Kind string

const (
	// Balances is a JSON array of balances, numbers or numeric strings.
	Balances Kind = "balances"
	// CSV has rows of label and balance.
	CSV Kind = "csv"
	// Transactions is a JSON list of transactions, see ReadTransactions.
	Transactions Kind = "transactions"
)

// Kinds lists all known kinds.
var Kinds = []Kind{Balances, CSV, Transactions}

// ParseKind returns the kind called name.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(string(k), name) {
			return k, nil
		}
	}
	return "", errors.Newf("unknown input kind %q", name)
}

// KindOf guesses the kind of the file at path from its extension.
// JSON files are taken to be balances.
func KindOf(path string) Kind {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return CSV
	}
	return Balances
}

// ReadBalances reads a JSON array of balances.
func ReadBalances(r io.Reader) (balancecurve.Series, error) {
	var amounts []decimal.Decimal
	if err := json.NewDecoder(r).Decode(&amounts); err != nil {
		return nil, errors.Wrap(err, "decoding balances")
	}
	if len(amounts) == 0 {
		return nil, errors.New("no balances")
	}
	series := make(balancecurve.Series, len(amounts))
	for i, a := range amounts {
		series[i] = a.InexactFloat64()
	}
	return series, nil
}

// PositionLabels returns the text labels "1" to "n".
func PositionLabels(n int) balancecurve.Labels {
	labels := make(balancecurve.Labels, n)
	for i := range labels {
		labels[i] = balancecurve.TextLabel(strconv.Itoa(i + 1))
	}
	return labels
}

// ReadCSV reads rows of label and balance. A first row whose balance is
// not a number is taken as header. Labels which are numbers become numeric
// labels. Rows with a single column get their 1-based position as label.
func ReadCSV(r io.Reader) (balancecurve.Series, balancecurve.Labels, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrap(err, "reading csv")
	}

	var series balancecurve.Series
	var labels balancecurve.Labels
	for i, row := range recs {
		var label, value string
		switch len(row) {
		case 1:
			label, value = strconv.Itoa(len(series)+1), row[0]
		default:
			label, value = row[0], row[1]
		}
		balance, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			if i == 0 {
				continue // header
			}
			return nil, nil, errors.Wrapf(err, "csv row %d", i+1)
		}
		series = append(series, balance.InexactFloat64())
		labels = append(labels, parseLabel(label))
	}
	if len(series) == 0 {
		return nil, nil, errors.New("csv: no balances")
	}
	return series, labels, nil
}

func parseLabel(s string) balancecurve.Label {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
		return balancecurve.NumericLabel(v)
	}
	return balancecurve.TextLabel(s)
}

// Load reads a series of the given kind from r. Transactions are folded
// into daily balances starting at start. Balances are labelled by their
// position.
func Load(r io.Reader, kind Kind, start decimal.Decimal) (balancecurve.Series, balancecurve.Labels, error) {
	switch kind {
	case Balances:
		series, err := ReadBalances(r)
		if err != nil {
			return nil, nil, err
		}
		return series, PositionLabels(len(series)), nil
	case CSV:
		return ReadCSV(r)
	case Transactions:
		txs, err := ReadTransactions(r)
		if err != nil {
			return nil, nil, err
		}
		series, labels := RunningBalance(start, txs)
		return series, labels, nil
	}
	return nil, nil, errors.Newf("unknown input kind %q", kind)
}

// Open loads the file at path. An empty kind is guessed with KindOf.
func Open(path string, kind Kind, start decimal.Decimal) (balancecurve.Series, balancecurve.Labels, error) {
	if kind == "" {
		kind = KindOf(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open input")
	}
	defer f.Close()

	series, labels, err := Load(f, kind, start)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "loading %s", path)
	}
	return series, labels, nil
}
