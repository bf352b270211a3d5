package folio

// Holding is one row of the asset registry: a named position in cash, an
// equity, a crypto coin, or a foreign currency.
//
// Name is the natural key for upsert-by-name operations (case-sensitive exact
// match). Quantity is signed and may legitimately go negative when overdrawn.
// When Ticker is set, Currency is the ticker's quote currency and Quantity is
// a unit count, not a monetary amount.
type Holding struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Quantity Quantity `json:"quantity"`
	Currency string   `json:"currency"`
	Ticker   string   `json:"ticker,omitempty"`
}

// Asset is the valuation-oriented view of a holding. A holding is exactly one
// of CashAsset, TickeredAsset or CryptoAsset, so valuation is an exhaustive
// type switch instead of an if/else chain over optional fields.
type Asset interface {
	holding() Holding
}

// CashAsset is a holding whose quantity already is a currency amount:
// the reporting currency, a foreign fiat currency, or an unknown code
// (treated as the reporting currency).
type CashAsset struct{ Holding }

// TickeredAsset is a holding whose quantity is a unit count priced by an
// external market symbol.
type TickeredAsset struct{ Holding }

// CryptoAsset is a holding denominated in a recognized crypto code.
type CryptoAsset struct{ Holding }

func (a CashAsset) holding() Holding     { return a.Holding }
func (a TickeredAsset) holding() Holding { return a.Holding }
func (a CryptoAsset) holding() Holding   { return a.Holding }

// cryptoCodes maps the recognized crypto currency codes to their CoinGecko
// coin ids. Codes outside this table are not treated as crypto.
var cryptoCodes = map[string]string{
	"BTC":  "bitcoin",
	"ETH":  "ethereum",
	"XRP":  "ripple",
	"SOL":  "solana",
	"ADA":  "cardano",
	"DOGE": "dogecoin",
	"LTC":  "litecoin",
	"DOT":  "polkadot",
}

// IsCryptoCode reports whether code is one of the recognized crypto currency codes.
func IsCryptoCode(code string) bool {
	_, ok := cryptoCodes[code]
	return ok
}

// CoinID returns the CoinGecko coin id for a recognized crypto code.
func CoinID(code string) (string, bool) {
	id, ok := cryptoCodes[code]
	return id, ok
}

// Asset classifies the holding. Ticker wins over currency: a tickered holding
// in any currency is priced by its symbol first.
func (h Holding) Asset() Asset {
	switch {
	case h.Ticker != "":
		return TickeredAsset{h}
	case IsCryptoCode(h.Currency):
		return CryptoAsset{h}
	default:
		return CashAsset{h}
	}
}
