package seeder

import (
	"context"
	"fmt"
	"strings"

	"github.com/atlasproject/atlas-api/internal/model"
	"github.com/atlasproject/atlas-api/internal/repository"
	"go.uber.org/zap"
)

// continentDescriptions drives the fixed continent set created before
// any country import runs.
var continentDescriptions = map[string]string{
	"Africa":     "Second largest continent, home to over 50 countries",
	"Americas":   "North and South America and the Caribbean",
	"Antarctica": "Southernmost continent, no permanent population",
	"Asia":       "Largest and most populous continent",
	"Europe":     "Continent of the western Eurasian landmass",
	"Oceania":    "Australia and the Pacific island nations",
}

// regionToContinent maps the dataset's region field onto catalog continents
var regionToContinent = map[string]string{
	"Africa":    "Africa",
	"Americas":  "Americas",
	"Antarctic": "Antarctica",
	"Asia":      "Asia",
	"Europe":    "Europe",
	"Oceania":   "Oceania",
}

// Importer populates the catalog from the external country dataset.
// Individual bad records are logged and skipped so one malformed country
// cannot abort the whole import.
type Importer struct {
	repos  *repository.Container
	client *Client
	logger *zap.Logger
}

// NewImporter creates an importer over the given repositories
func NewImporter(repos *repository.Container, client *Client, logger *zap.Logger) *Importer {
	return &Importer{repos: repos, client: client, logger: logger}
}

// Run fetches the dataset and imports it. Countries already present by
// name are left untouched, so Run is safe to repeat.
func (i *Importer) Run(ctx context.Context) error {
	records, err := i.client.FetchCountries(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch country dataset: %w", err)
	}

	continents, err := i.ensureContinents(ctx)
	if err != nil {
		return fmt.Errorf("failed to create continents: %w", err)
	}

	var imported, skipped, failed int
	for _, rec := range records {
		ok, err := i.importCountry(ctx, rec, continents)
		if err != nil {
			failed++
			i.logger.Warn("Skipping country record",
				zap.String("country", rec.Name),
				zap.Error(err),
			)
			continue
		}
		if ok {
			imported++
		} else {
			skipped++
		}
	}

	i.logger.Info("Catalog import finished",
		zap.Int("imported", imported),
		zap.Int("skipped", skipped),
		zap.Int("failed", failed),
	)
	return nil
}

// ensureContinents creates the fixed continent set and returns name -> id
func (i *Importer) ensureContinents(ctx context.Context) (map[string]int, error) {
	ids := make(map[string]int, len(continentDescriptions))
	for name, desc := range continentDescriptions {
		existing, err := i.repos.Continent.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			ids[name] = existing.ID
			continue
		}
		description := desc
		continent := &model.Continent{Name: name, Description: &description}
		if err := i.repos.Continent.Create(ctx, continent); err != nil {
			return nil, err
		}
		ids[name] = continent.ID
	}
	return ids, nil
}

// importCountry imports one record. Returns false when the country was
// already present.
func (i *Importer) importCountry(ctx context.Context, rec CountryRecord, continents map[string]int) (bool, error) {
	existing, err := i.repos.Country.GetByName(ctx, rec.Name)
	if err != nil {
		return false, fmt.Errorf("lookup failed: %w", err)
	}
	if existing != nil {
		return false, nil
	}

	continentName, ok := regionToContinent[rec.Region]
	if !ok {
		return false, fmt.Errorf("unknown region %q", rec.Region)
	}
	continentID, ok := continents[continentName]
	if !ok {
		return false, fmt.Errorf("continent %q missing from catalog", continentName)
	}

	country := &model.Country{
		Name:        rec.Name,
		NativeName:  rec.NativeName,
		Population:  rec.Population,
		ContinentID: continentID,
		FlagURL:     rec.FlagURL,
	}
	if err := i.repos.Country.Create(ctx, country); err != nil {
		return false, fmt.Errorf("create failed: %w", err)
	}

	for _, langName := range rec.Languages {
		lang, err := i.ensureLanguage(ctx, langName)
		if err != nil {
			i.logger.Warn("Skipping language",
				zap.String("country", rec.Name),
				zap.String("language", langName),
				zap.Error(err),
			)
			continue
		}
		if err := i.repos.Country.AttachLanguage(ctx, country.ID, lang.ID); err != nil {
			i.logger.Warn("Failed to attach language",
				zap.String("country", rec.Name),
				zap.String("language", langName),
				zap.Error(err),
			)
		}
	}

	for _, cr := range rec.Currencies {
		cur, err := i.ensureCurrency(ctx, cr)
		if err != nil {
			i.logger.Warn("Skipping currency",
				zap.String("country", rec.Name),
				zap.String("currency", cr.Name),
				zap.Error(err),
			)
			continue
		}
		if err := i.repos.Country.AttachCurrency(ctx, country.ID, cur.ID); err != nil {
			i.logger.Warn("Failed to attach currency",
				zap.String("country", rec.Name),
				zap.String("currency", cr.Name),
				zap.Error(err),
			)
		}
	}

	if rec.Capital != nil {
		if err := i.createCapital(ctx, country, *rec.Capital); err != nil {
			i.logger.Warn("Failed to create capital",
				zap.String("country", rec.Name),
				zap.String("capital", *rec.Capital),
				zap.Error(err),
			)
		}
	}

	return true, nil
}

// createCapital records the capital city and points the country at it.
// The dataset carries no coordinates or population for capitals.
func (i *Importer) createCapital(ctx context.Context, country *model.Country, name string) error {
	city := &model.City{
		Name:      name,
		CountryID: country.ID,
	}
	if err := i.repos.City.Create(ctx, city); err != nil {
		return err
	}
	country.CapitalID = &city.ID
	return i.repos.Country.Update(ctx, country)
}

func (i *Importer) ensureLanguage(ctx context.Context, name string) (*model.Language, error) {
	existing, err := i.repos.Language.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	lang := &model.Language{Name: name, Code: deriveCode(name)}
	if err := i.repos.Language.Create(ctx, lang); err != nil {
		return nil, err
	}
	return lang, nil
}

func (i *Importer) ensureCurrency(ctx context.Context, rec CurrencyRecord) (*model.Currency, error) {
	existing, err := i.repos.Currency.GetByName(ctx, rec.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	cur := &model.Currency{Name: rec.Name, Code: strings.ToUpper(rec.Code), Symbol: rec.Symbol}
	if err := i.repos.Currency.Create(ctx, cur); err != nil {
		return nil, err
	}
	return cur, nil
}

// deriveCode makes a short lowercase code from a language name.
// The dataset publishes language names only.
func deriveCode(name string) string {
	runes := []rune(strings.ToLower(name))
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return string(runes)
}
