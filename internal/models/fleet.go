package models

import "fmt"

// MaxDaysUnbounded marks a tier that has no upper day limit.
const MaxDaysUnbounded = 0

// PricingTier maps a contiguous range of rental-day counts to a fixed daily
// rate. A Rate of 0 is the quote-required sentinel: the vehicle cannot be
// booked for that duration through the automatic flow.
type PricingTier struct {
	MinDays int     `json:"min_days"`
	MaxDays int     `json:"max_days"` // 0 means unbounded
	Rate    float64 `json:"rate"`
}

func (t PricingTier) Unbounded() bool {
	return t.MaxDays == MaxDaysUnbounded
}

type VehicleSpecs struct {
	Engine      string `json:"engine"`
	Power       string `json:"power"`
	Consumption string `json:"consumption"`
}

// Vehicle is immutable reference data for the rental fleet.
type Vehicle struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Category       string        `json:"category"`
	Year           string        `json:"year"`
	Passengers     string        `json:"passengers"`
	Luggage        string        `json:"luggage"`
	Transmission   string        `json:"transmission"`
	Fuel           string        `json:"fuel"`
	Pricing        []PricingTier `json:"pricing"`
	Description    string        `json:"description"`
	Highlights     []string      `json:"highlights"`
	Features       []string      `json:"features"`
	Specifications VehicleSpecs  `json:"specifications"`
	Images         []string      `json:"images"`
}

// DailyRate resolves the applicable daily rate for a rental of the given
// number of days. Tiers are scanned in listed order and the first match wins.
// With no matching tier the first tier's rate is used, or 0 for an empty
// schedule.
func (v *Vehicle) DailyRate(days int) float64 {
	for _, tier := range v.Pricing {
		if days >= tier.MinDays && (tier.Unbounded() || days <= tier.MaxDays) {
			return tier.Rate
		}
	}
	if len(v.Pricing) > 0 {
		return v.Pricing[0].Rate
	}
	return 0
}

// TotalPrice is days * DailyRate. Non-positive durations price at 0; the date
// validator rejects them before any booking reaches this point.
func (v *Vehicle) TotalPrice(days int) float64 {
	if days <= 0 {
		return 0
	}
	return float64(days) * v.DailyRate(days)
}

// QuoteRequired reports whether the duration lands on a zero-rate tier.
func (v *Vehicle) QuoteRequired(days int) bool {
	return v.DailyRate(days) == 0
}

// BaseDailyRate is the shortest-duration rate, used for catalog display.
func (v *Vehicle) BaseDailyRate() float64 {
	if len(v.Pricing) == 0 {
		return 0
	}
	return v.Pricing[0].Rate
}

// PricingDisplay renders the tier schedule as human-readable lines,
// e.g. "6-10 days: €65" or "16+ days: Contact us".
func (v *Vehicle) PricingDisplay() []string {
	lines := make([]string, 0, len(v.Pricing))
	for _, tier := range v.Pricing {
		switch {
		case tier.Rate == 0:
			lines = append(lines, fmt.Sprintf("%d+ days: Contact us", tier.MinDays))
		case tier.Unbounded():
			lines = append(lines, fmt.Sprintf("%d+ days: €%.0f", tier.MinDays, tier.Rate))
		case tier.MinDays == tier.MaxDays:
			lines = append(lines, fmt.Sprintf("%d day: €%.0f", tier.MinDays, tier.Rate))
		default:
			lines = append(lines, fmt.Sprintf("%d-%d days: €%.0f", tier.MinDays, tier.MaxDays, tier.Rate))
		}
	}
	return lines
}

// ValidateSchedule checks that the tiers partition the positive integers
// without gaps: the first tier starts at day 1 and each tier starts where the
// previous one ended.
func (v *Vehicle) ValidateSchedule() error {
	if len(v.Pricing) == 0 {
		return fmt.Errorf("vehicle %s has no pricing tiers", v.ID)
	}
	if v.Pricing[0].MinDays != 1 {
		return fmt.Errorf("vehicle %s: first tier must start at 1 day, got %d", v.ID, v.Pricing[0].MinDays)
	}
	for i := 0; i < len(v.Pricing)-1; i++ {
		cur, next := v.Pricing[i], v.Pricing[i+1]
		if cur.Unbounded() {
			return fmt.Errorf("vehicle %s: unbounded tier %d is not last", v.ID, i)
		}
		if next.MinDays != cur.MaxDays+1 {
			return fmt.Errorf("vehicle %s: gap between tier %d (max %d) and tier %d (min %d)",
				v.ID, i, cur.MaxDays, i+1, next.MinDays)
		}
	}
	return nil
}

// Fleet is the static vehicle catalog served by the marketing site.
var Fleet = []Vehicle{
	{
		ID:           "passat-b8",
		Name:         "Passat 2.0 Alltrack 4x4",
		Category:     "Wagon",
		Year:         "2019",
		Passengers:   "3",
		Luggage:      "5",
		Transmission: "Automatic",
		Fuel:         "Diesel",
		Pricing: []PricingTier{
			{MinDays: 1, MaxDays: 5, Rate: 70},
			{MinDays: 6, MaxDays: 10, Rate: 65},
			{MinDays: 11, MaxDays: 15, Rate: 60},
			{MinDays: 16, MaxDays: MaxDaysUnbounded, Rate: 0},
		},
		Description: "Experience comfort and capability with our Passat 2.0 Alltrack 4x4. Perfect for business trips, airport transfers, or exploring Montenegro's diverse terrain in style and comfort.",
		Highlights: []string{
			"Front and rear sensors, parking camera",
			"Matrix headlights",
			"Ambient lighting",
			"5 driving modes",
			"Heated seats",
		},
		Features: []string{
			"Front and rear sensors",
			"Parking camera",
			"Matrix headlights",
			"Ambient lighting",
			"5 driving modes",
			"Heated seats",
			"Dual-zone automatic climate control",
		},
		Specifications: VehicleSpecs{
			Engine:      "2.0L",
			Power:       "190 HP",
			Consumption: "6L/100km",
		},
		Images: []string{
			"https://i.imgur.com/s8sw5N3.jpeg",
			"https://i.imgur.com/iTTjhQG.jpeg",
			"https://i.imgur.com/3nNQYBO.jpeg",
			"https://i.imgur.com/Ygkaknb.jpeg",
		},
	},
	{
		ID:           "citroen-c4",
		Name:         "Citroën C4 Spacetourer",
		Category:     "MPV",
		Year:         "2020",
		Passengers:   "7",
		Luggage:      "7",
		Transmission: "Automatic",
		Fuel:         "Diesel",
		Pricing: []PricingTier{
			{MinDays: 1, MaxDays: 5, Rate: 50},
			{MinDays: 6, MaxDays: 10, Rate: 45},
			{MinDays: 11, MaxDays: 15, Rate: 40},
			{MinDays: 16, MaxDays: MaxDaysUnbounded, Rate: 0},
		},
		Description: "Spacious and versatile family MPV perfect for group travel and exploring Montenegro. Comfortable seating for 7 passengers with diesel efficiency and modern features.",
		Highlights: []string{
			"7 seats",
			"Parking sensors",
			"Dual-zone climate control",
			"Diesel efficiency",
			"131 HP power",
		},
		Features: []string{
			"7 seats",
			"Parking sensors",
			"Dual-zone climate control",
		},
		Specifications: VehicleSpecs{
			Engine:      "1.5L Diesel",
			Power:       "131 HP",
			Consumption: "5.5L/100km",
		},
		Images: []string{
			"https://i.imgur.com/QREiT5p.jpeg",
			"https://i.imgur.com/4SyL68a.jpeg",
		},
	},
}

// VehicleByID looks a vehicle up in the static fleet.
func VehicleByID(id string) (*Vehicle, bool) {
	for i := range Fleet {
		if Fleet[i].ID == id {
			return &Fleet[i], true
		}
	}
	return nil, false
}
