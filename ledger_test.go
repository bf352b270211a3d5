package folio

import (
	"context"
	"testing"
	"time"
)

func newTestLedger(t *testing.T) (*Ledger, *Registry) {
	t.Helper()
	st := newTestStore(t)
	reg := NewRegistry(st)
	return NewLedger(st, reg, "JPY"), reg
}

func TestParseTxType(t *testing.T) {
	for _, s := range []string{"expense", "income", "transfer"} {
		if _, err := ParseTxType(s); err != nil {
			t.Errorf("ParseTxType(%q) unexpected error: %v", s, err)
		}
	}
	for _, s := range []string{"", "Expense", "withdrawal"} {
		if _, err := ParseTxType(s); err == nil {
			t.Errorf("ParseTxType(%q) expected an error", s)
		}
	}
}

func TestLedgerRecordExpenseMutatesHolding(t *testing.T) {
	ledger, reg := newTestLedger(t)
	ctx := context.Background()

	if _, err := reg.UpsertByName(ctx, "Wallet", "cash", Q(10000), "JPY", ""); err != nil {
		t.Fatal(err)
	}

	on := NewDate(2026, time.March, 2)
	tx, err := ledger.Record(ctx, on, Expense, "groceries", M(5000, "JPY"), "weekly shop", "Wallet")
	if err != nil {
		t.Fatal(err)
	}
	if tx.HoldingID == "" {
		t.Error("a linked transaction must carry the holding id")
	}

	h, err := reg.Find(ctx, "Wallet")
	if err != nil {
		t.Fatal(err)
	}
	if !h.Quantity.Equal(Q(5000)) {
		t.Errorf("wallet after a 5000 expense = %v, want 5000", h.Quantity)
	}
}

func TestLedgerRecordIncomeAddsToHolding(t *testing.T) {
	ledger, reg := newTestLedger(t)
	ctx := context.Background()

	if _, err := ledger.Record(ctx, Today(), Income, "salary", M(300000, "JPY"), "", "Wallet"); err != nil {
		t.Fatal(err)
	}

	// the wallet was created on first reference.
	h, err := reg.Find(ctx, "Wallet")
	if err != nil {
		t.Fatal(err)
	}
	if !h.Quantity.Equal(Q(300000)) {
		t.Errorf("wallet after income = %v, want 300000", h.Quantity)
	}
}

func TestLedgerRecordRejectsNegativeAmount(t *testing.T) {
	ledger, _ := newTestLedger(t)
	if _, err := ledger.Record(context.Background(), Today(), Expense, "x", M(-1, "JPY"), "", ""); err == nil {
		t.Error("expected an error for a negative amount magnitude")
	}
}

func TestLedgerRecordUnlinked(t *testing.T) {
	ledger, reg := newTestLedger(t)
	ctx := context.Background()

	tx, err := ledger.Record(ctx, Today(), Expense, "misc", M(100, "JPY"), "", "")
	if err != nil {
		t.Fatal(err)
	}
	if tx.HoldingID != "" {
		t.Errorf("unlinked transaction has holding id %q", tx.HoldingID)
	}
	holdings, err := reg.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(holdings) != 0 {
		t.Errorf("unlinked transaction created %d holdings, want 0", len(holdings))
	}
}

func TestLedgerListNewestFirst(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	for d := 1; d <= 3; d++ {
		if _, err := ledger.Record(ctx, NewDate(2026, time.March, d), Income, "pay", M(d, "JPY"), "", ""); err != nil {
			t.Fatal(err)
		}
	}

	txs, err := ledger.List(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 3 {
		t.Fatalf("List() returned %d entries, want 3", len(txs))
	}
	if txs[0].Date != NewDate(2026, time.March, 3) || txs[2].Date != NewDate(2026, time.March, 1) {
		t.Errorf("List() is not newest first: %v, %v, %v", txs[0].Date, txs[1].Date, txs[2].Date)
	}

	limited, err := ledger.List(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 {
		t.Errorf("List(limit 2) returned %d entries", len(limited))
	}
}

func TestLedgerListRangeInclusive(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	for d := 1; d <= 5; d++ {
		if _, err := ledger.Record(ctx, NewDate(2026, time.March, d), Income, "pay", M(d, "JPY"), "", ""); err != nil {
			t.Fatal(err)
		}
	}

	txs, err := ledger.ListRange(ctx, NewDate(2026, time.March, 2), NewDate(2026, time.March, 4))
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 3 {
		t.Fatalf("ListRange() returned %d entries, want 3 (bounds are inclusive)", len(txs))
	}
}

func TestLedgerDeleteDoesNotReverseMutation(t *testing.T) {
	ledger, reg := newTestLedger(t)
	ctx := context.Background()

	if _, err := reg.UpsertByName(ctx, "Wallet", "cash", Q(10000), "JPY", ""); err != nil {
		t.Fatal(err)
	}
	tx, err := ledger.Record(ctx, Today(), Expense, "groceries", M(5000, "JPY"), "", "Wallet")
	if err != nil {
		t.Fatal(err)
	}
	if err := ledger.Delete(ctx, tx.ID); err != nil {
		t.Fatal(err)
	}

	txs, err := ledger.List(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 0 {
		t.Errorf("ledger still has %d entries after delete", len(txs))
	}

	h, err := reg.Find(ctx, "Wallet")
	if err != nil {
		t.Fatal(err)
	}
	if !h.Quantity.Equal(Q(5000)) {
		t.Errorf("wallet after deleting the expense = %v, want 5000 (mutation stays)", h.Quantity)
	}
}
