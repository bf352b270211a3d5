package renderer

import (
	folio "github.com/okabe/folio"
	"github.com/okabe/folio/newsapi"
)

// valuationLine is the per-holding row of the valuation report.
type valuationLine struct {
	Name     string
	Category string
	Quantity string
	Value    string
	Degraded bool
}

type valuationView struct {
	Date     string
	Currency string
	Lines    []valuationLine
	Total    string
	Degraded bool
}

// Valuation renders the result of a valuation pass.
func Valuation(r *folio.PassResult, reporting string) string {
	v := valuationView{
		Date:     r.On.String(),
		Currency: reporting,
	}
	for _, l := range r.Lines {
		v.Lines = append(v.Lines, valuationLine{
			Name:     l.Holding.Name,
			Category: l.Holding.Category,
			Quantity: l.Holding.Quantity.String(),
			Value:    l.Value.String(),
			Degraded: l.Degraded,
		})
		if l.Degraded {
			v.Degraded = true
		}
	}
	v.Total = r.Total.String()
	return renderTemplate("valuation", "valuation.md", nil, v)
}

type holdingRow struct {
	Name     string
	Category string
	Quantity string
	Currency string
	Ticker   string
}

// Holdings renders the holdings register.
func Holdings(hs []folio.Holding) string {
	rows := make([]holdingRow, 0, len(hs))
	for _, h := range hs {
		rows = append(rows, holdingRow{
			Name:     h.Name,
			Category: h.Category,
			Quantity: h.Quantity.String(),
			Currency: h.Currency,
			Ticker:   h.Ticker,
		})
	}
	return renderTemplate("holdings", "holdings.md", nil, rows)
}

type transactionRow struct {
	Date     string
	Type     string
	Category string
	Amount   string
	Memo     string
}

// Transactions renders a ledger listing, most recent first.
func Transactions(txs []folio.Transaction) string {
	rows := make([]transactionRow, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, transactionRow{
			Date:     tx.Date.String(),
			Type:     string(tx.Type),
			Category: tx.Category,
			Amount:   tx.Amount.String(),
			Memo:     tx.Memo,
		})
	}
	return renderTemplate("transactions", "transactions.md", nil, rows)
}

type historyPoint struct {
	Date  string
	Value float64
}

type historyView struct {
	Currency string
	Points   []historyPoint
}

// TotalHistory renders the snapshot series of total portfolio value.
func TotalHistory(h *folio.History[float64], reporting string) string {
	v := historyView{Currency: reporting}
	for day, value := range h.Values() {
		v.Points = append(v.Points, historyPoint{Date: day.String(), Value: value})
	}
	return renderTemplate("history", "history.md", nil, v)
}

// IndicatorRow holds one dated sample of the computed indicator set.
// Undefined leading values are NaN and render as "-".
type IndicatorRow struct {
	Date   string
	Close  float64
	SMA    float64
	EMA    float64
	RSI    float64
	MACD   float64
	Signal float64
}

type indicatorsView struct {
	Ticker string
	Rows   []IndicatorRow
}

// Indicators renders the technical indicator table for a ticker.
func Indicators(ticker string, rows []IndicatorRow) string {
	return renderTemplate("indicators", "indicators.md", nil, indicatorsView{Ticker: ticker, Rows: rows})
}

// News renders a list of headlines.
func News(articles []newsapi.Article) string {
	return renderTemplate("news", "news.md", nil, articles)
}
