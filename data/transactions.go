package data

import (
	"bytes"
	"encoding/json"
	"io"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/vdobler/balancecurve"
)

// DateFormat is the layout of transaction dates.
const DateFormat = "2006-01-02"

// Transaction is a booked account transaction. A positive Amount is money
// leaving the account.
type Transaction struct {
	Date   time.Time
	Amount decimal.Decimal
	Name   string
}

type jsonTransaction struct {
	Date           string          `json:"date"`
	AuthorizedDate string          `json:"authorized_date"`
	Amount         decimal.Decimal `json:"amount"`
	Name           string          `json:"name"`
}

// ReadTransactions reads transactions in the JSON shape of the Plaid API:
// either an array of transactions or an object holding them under
// "transactions". The posting date is used; if it is missing the
// authorization date is.
func ReadTransactions(r io.Reader) ([]Transaction, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading transactions")
	}

	var list []jsonTransaction
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '{' {
		var wrapped struct {
			Transactions []jsonTransaction `json:"transactions"`
		}
		err = json.Unmarshal(trimmed, &wrapped)
		list = wrapped.Transactions
	} else {
		err = json.Unmarshal(trimmed, &list)
	}
	if err != nil {
		return nil, errors.Wrap(err, "decoding transactions")
	}
	if len(list) == 0 {
		return nil, errors.New("no transactions")
	}

	txs := make([]Transaction, len(list))
	for i, jt := range list {
		date := jt.Date
		if date == "" {
			date = jt.AuthorizedDate
		}
		d, err := time.Parse(DateFormat, date)
		if err != nil {
			return nil, errors.Wrapf(err, "transaction %d (%s)", i, jt.Name)
		}
		txs[i] = Transaction{Date: d, Amount: jt.Amount, Name: jt.Name}
	}
	return txs, nil
}

// RunningBalance folds txs into the closing balance of each day which has
// transactions, starting from the balance start. The samples are ordered by
// date and labelled with it. txs is not modified.
func RunningBalance(start decimal.Decimal, txs []Transaction) (balancecurve.Series, balancecurve.Labels) {
	sorted := append([]Transaction(nil), txs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	var series balancecurve.Series
	var labels balancecurve.Labels
	balance := start
	for i, tx := range sorted {
		balance = balance.Sub(tx.Amount)
		if i+1 < len(sorted) && sorted[i+1].Date.Equal(tx.Date) {
			continue
		}
		series = append(series, balance.InexactFloat64())
		labels = append(labels, balancecurve.TextLabel(tx.Date.Format(DateFormat)))
	}
	return series, labels
}
