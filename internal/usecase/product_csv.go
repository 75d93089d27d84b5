package usecase

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"time"

	"rackline/internal/domain/entity"
	"rackline/internal/infrastructure/localstore"
	"rackline/internal/infrastructure/upstream"
	"rackline/pkg/errors"
	"rackline/pkg/logger"
)

// ParseProductCSV normalizes a bulk-upload CSV. Columns are located by
// header name, so their order does not matter; any column starting with
// schema_ is collected into the product's schema override map. Rows
// missing sku or name, or with an unparseable basePrice, are dropped
// and counted as skipped. redirectPermanent defaults to true unless the
// cell literally equals "false", case-insensitively.
func ParseProductCSV(r io.Reader) ([]entity.Product, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, 0, errors.BadRequest("CSV file is empty or unreadable", err)
	}

	index := make(map[string]int, len(header))
	var schemaColumns []int
	for i, col := range header {
		col = strings.TrimSpace(col)
		if strings.HasPrefix(col, "schema_") {
			schemaColumns = append(schemaColumns, i)
		}
		index[col] = i
	}
	for _, required := range []string{"sku", "name", "basePrice"} {
		if _, ok := index[required]; !ok {
			return nil, 0, errors.BadRequest("CSV header is missing the "+required+" column", nil)
		}
	}

	cell := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var products []entity.Product
	skipped := 0
	now := time.Now()

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		sku := cell(row, "sku")
		name := cell(row, "name")
		price, priceErr := strconv.ParseFloat(cell(row, "basePrice"), 64)
		if sku == "" || name == "" || priceErr != nil {
			skipped++
			continue
		}

		stockLevel, _ := strconv.Atoi(cell(row, "stockLevel"))

		attributes := map[string]string{}
		if rawAttrs := cell(row, "attributes"); rawAttrs != "" {
			if err := json.Unmarshal([]byte(rawAttrs), &attributes); err != nil {
				logger.Warn("bulk import: invalid attributes JSON for %s, ignoring", sku)
				attributes = map[string]string{}
			}
		}

		var schemaOverride map[string]string
		for _, i := range schemaColumns {
			if i >= len(row) || strings.TrimSpace(row[i]) == "" {
				continue
			}
			if schemaOverride == nil {
				schemaOverride = map[string]string{}
			}
			schemaOverride[strings.TrimPrefix(header[i], "schema_")] = strings.TrimSpace(row[i])
		}

		var tags []string
		if rawTags := cell(row, "tags"); rawTags != "" {
			for _, tag := range strings.Split(rawTags, "|") {
				if tag = strings.TrimSpace(tag); tag != "" {
					tags = append(tags, tag)
				}
			}
		}

		redirectPermanent := !strings.EqualFold(cell(row, "redirectPermanent"), "false")

		products = append(products, entity.Product{
			SKU:               sku,
			Name:              name,
			Description:       cell(row, "description"),
			Brand:             cell(row, "brand"),
			Category:          cell(row, "category"),
			Image:             cell(row, "image"),
			BasePrice:         price,
			StockStatus:       stockStatus(stockLevel),
			StockLevel:        stockLevel,
			Weight:            cell(row, "weight"),
			Dimensions:        cell(row, "dimensions"),
			Attributes:        attributes,
			Overview:          cell(row, "overview"),
			Warranty:          cell(row, "warranty"),
			Compatibility:     cell(row, "compatibility"),
			Datasheet:         cell(row, "datasheet"),
			MetaTitle:         cell(row, "metaTitle"),
			MetaDescription:   cell(row, "metaDescription"),
			Tags:              tags,
			RedirectTo:        cell(row, "redirectTo"),
			RedirectPermanent: redirectPermanent,
			SchemaOverride:    schemaOverride,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
	}

	return products, skipped, nil
}

// BulkImport parses the CSV and pushes the normalized batch upstream.
// Locally dropped rows are added to the upstream skip count. When the
// upstream push fails the batch is mirrored into the local store.
func (uc *ProductUseCase) BulkImport(ctx context.Context, r io.Reader) (*upstream.BulkResult, bool, error) {
	products, skipped, err := ParseProductCSV(r)
	if err != nil {
		return nil, false, err
	}
	if len(products) == 0 {
		return &upstream.BulkResult{Imported: 0, Skipped: skipped}, false, nil
	}

	result, err := uc.api.BulkUpsertProducts(ctx, products)
	if err != nil {
		logger.Warn("bulk import: upstream push failed, mirroring %d products locally: %v", len(products), err)
		for i := range products {
			products[i].ID = localstore.NewLocalID()
			if storeErr := uc.productRepo.Upsert(products[i]); storeErr != nil {
				return nil, false, storeErr
			}
		}
		return &upstream.BulkResult{Imported: len(products), Skipped: skipped}, true, nil
	}

	result.Skipped += skipped
	return result, false, nil
}
