package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	catalogdomain "github.com/autoparts/catalog/internal/catalog/domain"
	searchdomain "github.com/autoparts/catalog/internal/search/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

const demoCatalogSize = 25

type sample struct {
	name       string
	partNumber string
	oemNumber  string
	priceCents int
	crossRefs  []string
}

var samples = []sample{
	{"Bosch Oil Filter", "P7079", "0986AF0709", 2500, []string{"OF-7079", "P-7079"}},
	{"Mann Filter Air Filter", "C27009", "MANN-C27009", 3200, []string{"AF-C27009"}},
	{"NGK Spark Plug", "BKR6E", "NGK-BKR6E", 1800, []string{"SP-BKR6E", "2460"}},
	{"Brembo Brake Pad Set", "P 85 020", "BREMBO-P85020", 8900, []string{"BP-P85020"}},
	{"SKF Wheel Bearing", "VKBA 3643", "SKF-VKBA3643", 15900, []string{"WB-3643"}},
}

// EnsureDemoCatalog populates a demo catalog for local development and
// search testing. It only runs against an empty products table.
func EnsureDemoCatalog(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&catalogdomain.Product{}).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}

		now := time.Now().UTC()
		count := 0
		for i := 1; count < demoCatalogSize; i++ {
			s := samples[(i-1)%len(samples)]

			partNumber := fmt.Sprintf("%s-%d", strings.ReplaceAll(s.partNumber, " ", ""), i)
			product := &catalogdomain.Product{
				ID:             node.Generate().Int64(),
				Name:           fmt.Sprintf("%s #%d", s.name, i),
				Description:    "Seed item for demo/search testing",
				PartNumber:     partNumber,
				OEMNumber:      s.oemNumber,
				PartNumberNorm: searchdomain.NormalizeCode(partNumber),
				OEMNumberNorm:  searchdomain.NormalizeCode(s.oemNumber),
				PriceCents:     s.priceCents,
				Active:         true,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if err := tx.Create(product).Error; err != nil {
				return err
			}

			for _, ref := range s.crossRefs {
				value := fmt.Sprintf("%s-%d", ref, i)
				crossRef := &catalogdomain.CrossRef{
					ID:           node.Generate().Int64(),
					ProductID:    product.ID,
					RefType:      catalogdomain.RefTypeCross,
					RefValue:     value,
					RefValueNorm: searchdomain.NormalizeCode(value),
					CreatedAt:    now,
				}
				if err := tx.Create(crossRef).Error; err != nil {
					return err
				}
			}
			count++
		}
		return nil
	})
}
