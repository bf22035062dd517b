package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"spendsight/internal/models"

	"github.com/shopspring/decimal"
)

// sandboxMerchant describes one synthetic counterparty: its aggregator
// personal-finance-category labels, the legacy category hierarchy, and a
// plausible amount range.
type sandboxMerchant struct {
	Name     string
	Primary  string
	Detailed string
	Legacy   []string
	MinAmt   float64
	MaxAmt   float64
}

type sandboxDataService struct {
	merchantPool []sandboxMerchant
}

// NewSandboxDataService creates the synthetic transaction data source
func NewSandboxDataService() SandboxDataServiceInterface {
	return &sandboxDataService{
		merchantPool: initializeMerchantPool(),
	}
}

func initializeMerchantPool() []sandboxMerchant {
	return []sandboxMerchant{
		// Food and drink
		{"Starbucks", models.CategoryFoodAndDrink, "FOOD_AND_DRINK_COFFEE", []string{"Food and Drink", "Coffee Shop"}, 4.00, 14.00},
		{"Chipotle Mexican Grill", models.CategoryFoodAndDrink, "FOOD_AND_DRINK_RESTAURANT", []string{"Food and Drink", "Restaurants"}, 9.00, 35.00},
		{"Whole Foods Market", models.CategoryFoodAndDrink, "FOOD_AND_DRINK_GROCERIES", []string{"Food and Drink", "Groceries"}, 20.00, 180.00},
		{"McDonald's", models.CategoryFoodAndDrink, "FOOD_AND_DRINK_FAST_FOOD", []string{"Food and Drink", "Fast Food"}, 6.00, 25.00},
		{"Trader Joe's", models.CategoryFoodAndDrink, "FOOD_AND_DRINK_GROCERIES", []string{"Food and Drink", "Groceries"}, 15.00, 120.00},

		// Transportation
		{"Uber", models.CategoryTransportation, "TRANSPORTATION_TAXIS_AND_RIDE_SHARES", []string{"Transportation", "Ride Share"}, 8.00, 55.00},
		{"Shell", models.CategoryTransportation, "TRANSPORTATION_GAS", []string{"Transportation", "Gas Stations"}, 25.00, 80.00},
		{"Metro Transit", models.CategoryTransportation, "TRANSPORTATION_PUBLIC_TRANSIT", []string{"Transportation", "Public Transit"}, 2.50, 12.00},

		// Travel
		{"United Airlines", models.CategoryTravel, "TRAVEL_FLIGHTS", []string{"Travel", "Airlines and Aviation Services"}, 150.00, 800.00},
		{"Marriott Hotels", models.CategoryTravel, "TRAVEL_LODGING", []string{"Travel", "Lodging"}, 120.00, 450.00},

		// General merchandise
		{"Amazon.com", models.CategoryGeneralMerchandise, "GENERAL_MERCHANDISE_ONLINE_MARKETPLACES", []string{"Shops", "Digital Purchase"}, 10.00, 250.00},
		{"Target", models.CategoryGeneralMerchandise, "GENERAL_MERCHANDISE_SUPERSTORES", []string{"Shops", "Supermarkets and Groceries"}, 15.00, 200.00},
		{"Best Buy", models.CategoryGeneralMerchandise, "GENERAL_MERCHANDISE_ELECTRONICS", []string{"Shops", "Computers and Electronics"}, 30.00, 600.00},

		// Entertainment
		{"Netflix", models.CategoryEntertainment, "ENTERTAINMENT_TV_AND_MOVIES", []string{"Service", "Subscription"}, 15.49, 22.99},
		{"Spotify", models.CategoryEntertainment, "ENTERTAINMENT_MUSIC_AND_AUDIO", []string{"Service", "Subscription"}, 10.99, 16.99},
		{"AMC Theatres", models.CategoryEntertainment, "ENTERTAINMENT_TV_AND_MOVIES", []string{"Recreation", "Movie Theaters"}, 12.00, 45.00},

		// Rent and utilities
		{"Comcast Xfinity", models.CategoryRentAndUtilities, "RENT_AND_UTILITIES_INTERNET_AND_CABLE", []string{"Service", "Cable"}, 60.00, 130.00},
		{"PG&E", models.CategoryRentAndUtilities, "RENT_AND_UTILITIES_GAS_AND_ELECTRICITY", []string{"Service", "Utilities"}, 50.00, 280.00},

		// Medical
		{"CVS Pharmacy", models.CategoryMedical, "MEDICAL_PHARMACIES_AND_SUPPLEMENTS", []string{"Shops", "Pharmacies"}, 8.00, 90.00},

		// Personal care
		{"Planet Fitness", models.CategoryPersonalCare, "PERSONAL_CARE_GYMS_AND_FITNESS_CENTERS", []string{"Recreation", "Gyms and Fitness Centers"}, 10.00, 25.00},
	}
}

// GenerateRecords synthesizes aggregator-shaped raw records across the date
// window. The generator is seeded from the item ID, so the same item always
// sees the same transactions: repeated fetches behave like a real, stable
// bank account rather than reshuffling on every request.
func (s *sandboxDataService) GenerateRecords(itemID string, startDate, endDate time.Time, count int) []models.RawRecord {
	if count <= 0 || !endDate.After(startDate) {
		return []models.RawRecord{}
	}

	rng := rand.New(rand.NewSource(seedFromItemID(itemID)))
	window := endDate.Sub(startDate)

	records := make([]models.RawRecord, 0, count)
	for i := 0; i < count; i++ {
		merchant := s.merchantPool[rng.Intn(len(s.merchantPool))]
		amount := roundToCents(merchant.MinAmt + rng.Float64()*(merchant.MaxAmt-merchant.MinAmt))

		// Spread dates across the window in order, with per-slot jitter.
		offset := time.Duration(float64(window) * (float64(i) + rng.Float64()) / float64(count))
		date := startDate.Add(offset)
		authorized := date.AddDate(0, 0, -1)
		if authorized.Before(startDate) {
			authorized = date
		}

		legacy := make([]any, len(merchant.Legacy))
		for j, label := range merchant.Legacy {
			legacy[j] = label
		}

		records = append(records, models.RawRecord{
			"transaction_id":  fmt.Sprintf("txn-sandbox-%016x", rng.Int63()),
			"date":            date.Format("2006-01-02"),
			"authorized_date": authorized.Format("2006-01-02"),
			"name":            merchant.Name,
			"merchant_name":   merchant.Name,
			"amount":          amount,
			"iso_currency_code": "USD",
			"pending":         false,
			"category":        legacy,
			"personal_finance_category": map[string]any{
				"primary":  merchant.Primary,
				"detailed": merchant.Detailed,
			},
		})
	}

	return records
}

// SampleCSV renders synthetic transactions as a delimited file with the
// header shape a typical bank export uses.
func (s *sandboxDataService) SampleCSV(rows int) ([]byte, error) {
	if rows <= 0 {
		rows = 25
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, -1, 0)
	window := end.Sub(start)

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Date", "Description", "Amount", "Category"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := 0; i < rows; i++ {
		merchant := s.merchantPool[rng.Intn(len(s.merchantPool))]
		amount := decimal.NewFromFloat(merchant.MinAmt + rng.Float64()*(merchant.MaxAmt-merchant.MinAmt)).Round(2)
		date := start.Add(time.Duration(float64(window) * (float64(i) + rng.Float64()) / float64(rows)))

		row := []string{
			date.Format("2006-01-02"),
			merchant.Name,
			amount.Neg().StringFixed(2),
			merchant.Primary,
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return buf.Bytes(), nil
}

func seedFromItemID(itemID string) int64 {
	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(itemID))
	return int64(hasher.Sum64())
}

func roundToCents(amount float64) float64 {
	value, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return value
}
