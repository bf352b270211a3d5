package folio

import "testing"

func TestHoldingAsset(t *testing.T) {
	tests := []struct {
		name string
		h    Holding
		want string
	}{
		{"reporting cash", Holding{Name: "Wallet", Currency: "JPY"}, "cash"},
		{"foreign fiat", Holding{Name: "USD stash", Currency: "USD"}, "cash"},
		{"unknown code", Holding{Name: "Points", Currency: "PTS"}, "cash"},
		{"empty currency", Holding{Name: "Misc"}, "cash"},
		{"crypto", Holding{Name: "Cold wallet", Currency: "BTC"}, "crypto"},
		{"tickered", Holding{Name: "AAPL shares", Currency: "USD", Ticker: "AAPL"}, "tickered"},
		{"ticker wins over crypto code", Holding{Name: "ETF", Currency: "BTC", Ticker: "IBIT"}, "tickered"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			switch tt.h.Asset().(type) {
			case CashAsset:
				got = "cash"
			case CryptoAsset:
				got = "crypto"
			case TickeredAsset:
				got = "tickered"
			}
			if got != tt.want {
				t.Errorf("Asset() classified as %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCoinID(t *testing.T) {
	if id, ok := CoinID("BTC"); !ok || id != "bitcoin" {
		t.Errorf("CoinID(BTC) = %q, %v, want bitcoin, true", id, ok)
	}
	if _, ok := CoinID("btc"); ok {
		t.Error("CoinID should be case-sensitive, lowercase codes are not crypto")
	}
	if _, ok := CoinID("USD"); ok {
		t.Error("CoinID(USD) should not be a crypto code")
	}
}
