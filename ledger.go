package folio

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/phuslu/log"

	"github.com/okabe/folio/store"
)

// TxType is the kind of a ledger entry.
type TxType string

const (
	Expense  TxType = "expense"
	Income   TxType = "income"
	Transfer TxType = "transfer"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch TxType(s) {
	case Expense, Income, Transfer:
		return TxType(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction is one dated, immutable ledger entry. Amount is a non-negative
// magnitude in the reporting currency; the sign applied to a linked holding's
// balance follows from Type. HoldingID is the stable link to the holding the
// entry mutated, empty when the entry is unlinked.
type Transaction struct {
	ID        string `json:"id"`
	Date      Date   `json:"date"`
	Type      TxType `json:"type"`
	Category  string `json:"category"`
	Amount    Money  `json:"amount"`
	Memo      string `json:"memo,omitempty"`
	HoldingID string `json:"holding_id,omitempty"`
}

// Ledger is the append-only transaction log, wired to the registry so that a
// linked entry immediately mutates the holding's running balance.
type Ledger struct {
	st        *store.Store
	registry  *Registry
	reporting string
}

// NewLedger returns a ledger writing to st, mutating balances through reg, with
// amounts denominated in the reporting currency.
func NewLedger(st *store.Store, reg *Registry, reportingCurrency string) *Ledger {
	return &Ledger{st: st, registry: reg, reporting: reportingCurrency}
}

// signedAmount returns the quantity delta a transaction applies to its linked
// holding: negative for an expense, positive for income and inbound transfers.
func (l *Ledger) signedAmount(typ TxType, amount Money) Quantity {
	q := Q(amount.AsFloat())
	if typ == Expense {
		return Q(0).Sub(q)
	}
	return q
}

// Record appends a ledger entry. When holdingName is non-empty the linked
// holding's balance is mutated first (created on first reference), then the
// entry is written with the holding's stable id. The two writes are sequential
// and best-effort: a failed ledger insert does not roll back the balance
// mutation.
func (l *Ledger) Record(ctx context.Context, on Date, typ TxType, category string, amount Money, memo, holdingName string) (Transaction, error) {
	if amount.IsNegative() {
		return Transaction{}, fmt.Errorf("transaction amount must be a non-negative magnitude, got %s", amount)
	}
	tx := Transaction{
		ID:       uuid.NewString(),
		Date:     on,
		Type:     typ,
		Category: category,
		Amount:   M(amount.AsFloat(), l.reporting),
		Memo:     memo,
	}

	if holdingName != "" {
		delta := l.signedAmount(typ, amount)
		h, err := l.registry.UpsertByName(ctx, holdingName, category, delta, l.reporting, "")
		if err != nil {
			return Transaction{}, fmt.Errorf("mutate linked holding %q: %w", holdingName, err)
		}
		tx.HoldingID = h.ID
		log.Info().Str("holding", holdingName).Str("delta", delta.String()).Msg("applied ledger balance mutation")
	}

	if err := l.st.InsertTransaction(ctx, store.Transaction{
		ID:        tx.ID,
		Date:      tx.Date.String(),
		Type:      string(tx.Type),
		Category:  tx.Category,
		Amount:    tx.Amount.AsFloat(),
		Memo:      tx.Memo,
		HoldingID: tx.HoldingID,
	}); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

func (l *Ledger) fromRow(r store.Transaction) (Transaction, error) {
	on, err := ParseDate(r.Date)
	if err != nil {
		return Transaction{}, fmt.Errorf("ledger row %s: %w", r.ID, err)
	}
	return Transaction{
		ID:        r.ID,
		Date:      on,
		Type:      TxType(r.Type),
		Category:  r.Category,
		Amount:    M(r.Amount, l.reporting),
		Memo:      r.Memo,
		HoldingID: r.HoldingID,
	}, nil
}

// List returns ledger entries newest first. A limit of 0 means all entries.
func (l *Ledger) List(ctx context.Context, limit int) ([]Transaction, error) {
	rows, err := l.st.ListTransactions(ctx, limit)
	if err != nil {
		return nil, err
	}
	txs := make([]Transaction, 0, len(rows))
	for _, row := range rows {
		tx, err := l.fromRow(row)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// ListRange returns ledger entries with from <= date <= to, newest first.
func (l *Ledger) ListRange(ctx context.Context, from, to Date) ([]Transaction, error) {
	rows, err := l.st.ListTransactionsRange(ctx, from.String(), to.String())
	if err != nil {
		return nil, err
	}
	txs := make([]Transaction, 0, len(rows))
	for _, row := range rows {
		tx, err := l.fromRow(row)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// Delete removes a ledger entry. The balance mutation the entry applied when
// recorded is deliberately left in place; deleting a transaction does not
// restore the linked holding's previous quantity.
func (l *Ledger) Delete(ctx context.Context, id string) error {
	return l.st.DeleteTransaction(ctx, id)
}
