package data

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vdobler/balancecurve"
)

func TestReadBalances(t *testing.T) {
	series, err := ReadBalances(strings.NewReader(`[1200, "1180.50", -990.25, 0]`))
	if err != nil {
		t.Fatal(err)
	}
	want := balancecurve.Series{1200, 1180.5, -990.25, 0}
	if !reflect.DeepEqual(series, want) {
		t.Errorf("got %v, want %v", series, want)
	}

	for _, in := range []string{`[]`, `{"a": 1}`, `[1, "x"]`, ``} {
		if _, err := ReadBalances(strings.NewReader(in)); err == nil {
			t.Errorf("ReadBalances(%q) succeeded", in)
		}
	}
}

func TestPositionLabels(t *testing.T) {
	if got, want := PositionLabels(3), balancecurve.TextLabels("1", "2", "3"); !reflect.DeepEqual(got, want) {
		t.Errorf("PositionLabels(3) = %v, want %v", got, want)
	}
	if got := PositionLabels(0); len(got) != 0 {
		t.Errorf("PositionLabels(0) = %v", got)
	}
}

var csvTests = []struct {
	in         string
	wantSeries balancecurve.Series
	wantLabels balancecurve.Labels
}{
	{
		"day,balance\nmon,10\ntue,12.5\n",
		balancecurve.Series{10, 12.5},
		balancecurve.TextLabels("mon", "tue"),
	},
	{
		"0, 100\n1, 80\n3, 120\n",
		balancecurve.Series{100, 80, 120},
		balancecurve.NumericLabels(0, 1, 3),
	},
	{
		"balance\n5\n7\n",
		balancecurve.Series{5, 7},
		balancecurve.TextLabels("1", "2"),
	},
	{
		"2024-01-01,1.5\n2,2.5\n",
		balancecurve.Series{1.5, 2.5},
		balancecurve.Labels{balancecurve.TextLabel("2024-01-01"), balancecurve.NumericLabel(2)},
	},
}

func TestReadCSV(t *testing.T) {
	for i, tc := range csvTests {
		series, labels, err := ReadCSV(strings.NewReader(tc.in))
		if err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}
		if !reflect.DeepEqual(series, tc.wantSeries) {
			t.Errorf("%d: series %v, want %v", i, series, tc.wantSeries)
		}
		if !reflect.DeepEqual(labels, tc.wantLabels) {
			t.Errorf("%d: labels %v, want %v", i, labels, tc.wantLabels)
		}
	}

	for _, in := range []string{"", "day,balance\n", "a,1\nb,x\n", "a,\"1\n"} {
		if _, _, err := ReadCSV(strings.NewReader(in)); err == nil {
			t.Errorf("ReadCSV(%q) succeeded", in)
		}
	}
}

const plaidResponse = `{
  "accounts": [],
  "transactions": [
    {"date": "2024-01-02", "amount": 30, "name": "Grocery"},
    {"date": "2024-01-01", "amount": -50.25, "name": "Salary"},
    {"date": "", "authorized_date": "2024-01-03", "amount": "4.75", "name": "Coffee"},
    {"date": "2024-01-02", "amount": 5, "name": "Bakery"}
  ]
}`

func TestReadTransactions(t *testing.T) {
	txs, err := ReadTransactions(strings.NewReader(plaidResponse))
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 4 {
		t.Fatalf("got %d transactions, want 4", len(txs))
	}
	if want := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC); !txs[2].Date.Equal(want) {
		t.Errorf("authorized date fallback: got %v, want %v", txs[2].Date, want)
	}
	if !txs[1].Amount.Equal(decimal.RequireFromString("-50.25")) || txs[1].Name != "Salary" {
		t.Errorf("got %+v", txs[1])
	}

	bare, err := ReadTransactions(strings.NewReader(`[{"date": "2024-02-29", "amount": 1, "name": "x"}]`))
	if err != nil || len(bare) != 1 {
		t.Errorf("bare array: %v, %v", bare, err)
	}

	for _, in := range []string{`[]`, `{"transactions": []}`, `[{"date": "29.02.2024", "amount": 1}]`, `[{`} {
		if _, err := ReadTransactions(strings.NewReader(in)); err == nil {
			t.Errorf("ReadTransactions(%q) succeeded", in)
		}
	}
}

func TestRunningBalance(t *testing.T) {
	txs, err := ReadTransactions(strings.NewReader(plaidResponse))
	if err != nil {
		t.Fatal(err)
	}
	before := append([]Transaction(nil), txs...)

	series, labels := RunningBalance(decimal.NewFromInt(100), txs)
	wantSeries := balancecurve.Series{150.25, 115.25, 110.5}
	wantLabels := balancecurve.TextLabels("2024-01-01", "2024-01-02", "2024-01-03")
	if !reflect.DeepEqual(series, wantSeries) {
		t.Errorf("series %v, want %v", series, wantSeries)
	}
	if !reflect.DeepEqual(labels, wantLabels) {
		t.Errorf("labels %v, want %v", labels, wantLabels)
	}
	if !reflect.DeepEqual(txs, before) {
		t.Errorf("RunningBalance reordered its input")
	}

	if series, labels := RunningBalance(decimal.Zero, nil); series != nil || labels != nil {
		t.Errorf("no transactions: %v, %v", series, labels)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	series, labels, err := Open(write("accounts.json", `[3, 1, 2]`), "", decimal.Zero)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(series, balancecurve.Series{3, 1, 2}) || !reflect.DeepEqual(labels, PositionLabels(3)) {
		t.Errorf("json: %v %v", series, labels)
	}

	series, _, err = Open(write("days.CSV", "a,1\nb,2\n"), "", decimal.Zero)
	if err != nil || len(series) != 2 {
		t.Errorf("csv: %v, %v", series, err)
	}

	series, _, err = Open(write("tx.json", plaidResponse), Transactions, decimal.NewFromInt(100))
	if err != nil || len(series) != 3 {
		t.Errorf("transactions: %v, %v", series, err)
	}

	if _, _, err := Open(filepath.Join(dir, "missing.json"), "", decimal.Zero); err == nil {
		t.Errorf("missing file opened")
	}
	if _, _, err := Open(write("bad.json", `[`), "", decimal.Zero); err == nil || !strings.Contains(err.Error(), "bad.json") {
		t.Errorf("bad file: got error %v", err)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		if got, err := ParseKind(strings.ToUpper(string(k))); err != nil || got != k {
			t.Errorf("ParseKind(%q) = %q, %v", k, got, err)
		}
	}
	if _, err := ParseKind("xlsx"); err == nil {
		t.Errorf("ParseKind(xlsx) succeeded")
	}
}
