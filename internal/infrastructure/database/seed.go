package database

import (
	"fmt"

	"lab-supply-ledger/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// starterCatalogue is the fixed set of laboratory supplies a fresh
// installation starts with. Prices are catalogue list prices.
var starterCatalogue = []entity.Material{
	{Description: "Gauze compresses", Unit: "pack of 50", UnitPrice: decimal.NewFromFloat(4.90)},
	{Description: "Cotton swabs", Unit: "pack of 100", UnitPrice: decimal.NewFromFloat(2.35)},
	{Description: "Disposable gloves nitrile M", Unit: "box of 100", UnitPrice: decimal.NewFromFloat(7.80)},
	{Description: "Disposable gloves nitrile L", Unit: "box of 100", UnitPrice: decimal.NewFromFloat(7.80)},
	{Description: "Surface disinfectant", Unit: "bottle 500ml", UnitPrice: decimal.NewFromFloat(6.20)},
	{Description: "Serum tubes", Unit: "rack of 50", UnitPrice: decimal.NewFromFloat(12.40)},
	{Description: "EDTA tubes", Unit: "rack of 50", UnitPrice: decimal.NewFromFloat(13.10)},
	{Description: "Butterfly needles 21G", Unit: "box of 50", UnitPrice: decimal.NewFromFloat(15.60)},
	{Description: "Urine sample cups", Unit: "pack of 100", UnitPrice: decimal.NewFromFloat(8.90)},
	{Description: "Transport bags", Unit: "roll of 250", UnitPrice: decimal.NewFromFloat(5.50)},
}

// SeedCatalogue loads the starter catalogue into an empty materials
// table. A table with any rows at all is left alone, so re-running the
// application never duplicates or resets edited entries.
func SeedCatalogue(db *gorm.DB, log *logrus.Logger) error {
	var existing int64
	if err := db.Model(&entity.Material{}).Count(&existing).Error; err != nil {
		return fmt.Errorf("failed to inspect materials table: %w", err)
	}
	if existing > 0 {
		return nil
	}

	catalogue := make([]entity.Material, len(starterCatalogue))
	copy(catalogue, starterCatalogue)
	if err := db.Create(&catalogue).Error; err != nil {
		return fmt.Errorf("failed to seed material catalogue: %w", err)
	}
	log.Infof("Seeded material catalogue with %d entries", len(starterCatalogue))
	return nil
}
