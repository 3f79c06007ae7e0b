// Package jsonld maps site content onto the schema.org Restaurant vocabulary.
package jsonld

import (
	"encoding/json"
	"strings"

	"github.com/1129kyoto/sitecontent/internal/config"
	"github.com/1129kyoto/sitecontent/internal/entities"
	"github.com/1129kyoto/sitecontent/internal/utils"
)

const (
	schemaContext = "https://schema.org"
	currencyJPY   = "JPY"
	priceRange    = "¥1,000〜¥3,000"
	opens         = "11:00"
	closes        = "17:00"
	countryJP     = "JP"
)

var everyDay = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var (
	restaurantName    = entities.Text{JA: "祇園だいきち牧場", EN: "Gion Daikichi Ranch"}
	locality          = entities.Text{JA: "京都市東山区", EN: "Higashiyama-ku, Kyoto"}
	region            = entities.Text{JA: "京都府", EN: "Kyoto"}
	cuisine           = entities.Text{JA: "和牛料理", EN: "Wagyu Cuisine"}
	menuName          = entities.Text{JA: "メニュー", EN: "Menu"}
	recommendedName   = entities.Text{JA: "おすすめメニュー", EN: "Recommended Menu"}
	collaborationName = entities.Text{JA: "コラボメニュー", EN: "Collaboration Menu"}
)

type Restaurant struct {
	Context                   string                      `json:"@context"`
	Type                      string                      `json:"@type"`
	Name                      string                      `json:"name"`
	Description               string                      `json:"description"`
	URL                       string                      `json:"url"`
	Telephone                 string                      `json:"telephone"`
	Image                     string                      `json:"image,omitempty"`
	Address                   PostalAddress               `json:"address"`
	OpeningHoursSpecification []OpeningHoursSpecification `json:"openingHoursSpecification"`
	ServesCuisine             string                      `json:"servesCuisine"`
	PriceRange                string                      `json:"priceRange"`
	HasMenu                   Menu                        `json:"hasMenu"`
	SameAs                    []string                    `json:"sameAs"`
}

type PostalAddress struct {
	Type            string `json:"@type"`
	PostalCode      string `json:"postalCode"`
	StreetAddress   string `json:"streetAddress"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion"`
	AddressCountry  string `json:"addressCountry"`
}

type OpeningHoursSpecification struct {
	Type      string   `json:"@type"`
	DayOfWeek []string `json:"dayOfWeek"`
	Opens     string   `json:"opens"`
	Closes    string   `json:"closes"`
}

type Menu struct {
	Type           string        `json:"@type"`
	Name           string        `json:"name"`
	HasMenuSection []MenuSection `json:"hasMenuSection"`
}

type MenuSection struct {
	Type        string     `json:"@type"`
	Name        string     `json:"name"`
	HasMenuItem []MenuItem `json:"hasMenuItem"`
}

type MenuItem struct {
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Offers      Offer  `json:"offers"`
	Image       string `json:"image,omitempty"`
}

type Offer struct {
	Type               string                 `json:"@type"`
	Price              int                    `json:"price"`
	PriceCurrency      string                 `json:"priceCurrency"`
	PriceSpecification UnitPriceSpecification `json:"priceSpecification"`
}

type UnitPriceSpecification struct {
	Type                  string `json:"@type"`
	Price                 int    `json:"price"`
	PriceCurrency         string `json:"priceCurrency"`
	ValueAddedTaxIncluded bool   `json:"valueAddedTaxIncluded"`
}

// Builder renders Restaurant descriptions for one public site.
type Builder struct {
	SiteURL string
}

func NewBuilder(siteURL string) *Builder {
	if siteURL == "" {
		siteURL = config.DefaultSiteURL
	}
	return &Builder{SiteURL: strings.TrimSuffix(siteURL, "/")}
}

// BuildRestaurant uses the production site URL.
func BuildRestaurant(site *entities.SiteData, recommended, collaboration []entities.MenuItem, lang entities.Lang) Restaurant {
	return NewBuilder(config.DefaultSiteURL).Build(site, recommended, collaboration, lang)
}

// Build maps the aggregate record and both menu lists. A menu section is
// present only when its list is non-empty.
func (b *Builder) Build(site *entities.SiteData, recommended, collaboration []entities.MenuItem, lang entities.Lang) Restaurant {
	if site == nil {
		site = &entities.SiteData{}
	}

	sections := make([]MenuSection, 0, 2)
	if len(recommended) > 0 {
		sections = append(sections, menuSection(recommendedName.In(lang), recommended, lang))
	}
	if len(collaboration) > 0 {
		sections = append(sections, menuSection(collaborationName.In(lang), collaboration, lang))
	}

	snsURLs := make([]string, 0, len(site.SNSLinks))
	for _, link := range site.SNSLinks {
		snsURLs = append(snsURLs, link.URL)
	}

	return Restaurant{
		Context:     schemaContext,
		Type:        "Restaurant",
		Name:        restaurantName.In(lang),
		Description: entities.Localized(site, "description", lang),
		URL:         b.homeURL(lang),
		Telephone:   site.Tel,
		Image:       entities.ImageURL(site.OGImage),
		Address: PostalAddress{
			Type:            "PostalAddress",
			PostalCode:      site.PostalCode,
			StreetAddress:   entities.Localized(site, "address", lang),
			AddressLocality: locality.In(lang),
			AddressRegion:   region.In(lang),
			AddressCountry:  countryJP,
		},
		OpeningHoursSpecification: []OpeningHoursSpecification{{
			Type:      "OpeningHoursSpecification",
			DayOfWeek: everyDay,
			Opens:     opens,
			Closes:    closes,
		}},
		ServesCuisine: cuisine.In(lang),
		PriceRange:    priceRange,
		HasMenu: Menu{
			Type:           "Menu",
			Name:           menuName.In(lang),
			HasMenuSection: sections,
		},
		SameAs: utils.FilterSafeURLs(snsURLs),
	}
}

// Marshal renders the description as a JSON-LD document.
func (b *Builder) Marshal(site *entities.SiteData, recommended, collaboration []entities.MenuItem, lang entities.Lang) ([]byte, error) {
	return json.MarshalIndent(b.Build(site, recommended, collaboration, lang), "", "  ")
}

func (b *Builder) homeURL(lang entities.Lang) string {
	if lang == entities.LangEN {
		return b.SiteURL + "/en/"
	}
	return b.SiteURL + "/"
}

func menuSection(name string, items []entities.MenuItem, lang entities.Lang) MenuSection {
	menuItems := make([]MenuItem, 0, len(items))
	for _, item := range items {
		menuItems = append(menuItems, MenuItem{
			Type:        "MenuItem",
			Name:        entities.Localized(item, "name", lang),
			Description: entities.Localized(item, "description", lang),
			Offers: Offer{
				Type:          "Offer",
				Price:         item.Price,
				PriceCurrency: currencyJPY,
				PriceSpecification: UnitPriceSpecification{
					Type:                  "UnitPriceSpecification",
					Price:                 item.Price,
					PriceCurrency:         currencyJPY,
					ValueAddedTaxIncluded: true,
				},
			},
			Image: entities.ImageURL(item.Image),
		})
	}
	return MenuSection{Type: "MenuSection", Name: name, HasMenuItem: menuItems}
}
