package market

import "math/rand"

// Side is the direction of a trade.
type Side int8

const (
	SideBuy  Side = 1
	SideSell Side = 2
)

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "BUY"
	case SideSell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// Trade is one entry of a session's append-only trade log.
type Trade struct {
	Side   Side
	Price  float64
	Date   string
	Amount int64 // shares
}

// Stock names the instrument a simulation session plays.
type Stock struct {
	Name string
	Code string
}

// Listings are the fictional stocks the simulator draws from.
var Listings = []Stock{
	{Name: "Dragon Liquor", Code: "600519"},
	{Name: "Harbor Battery", Code: "300750"},
	{Name: "Golden Bank", Code: "600036"},
	{Name: "Cloud Semicon", Code: "688981"},
	{Name: "Jade Pharma", Code: "600276"},
	{Name: "Summit Motors", Code: "002594"},
	{Name: "Pearl Appliances", Code: "000651"},
	{Name: "Northwind Solar", Code: "601012"},
}

// RandomStock picks one of the listings.
func RandomStock(rng *rand.Rand) Stock {
	return Listings[rng.Intn(len(Listings))]
}
