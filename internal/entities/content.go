package entities

import (
	"time"
	"unicode"
)

// Image is the reference the content store returns for an uploaded asset.
type Image struct {
	URL    string `json:"url"`
	Height int    `json:"height,omitempty"`
	Width  int    `json:"width,omitempty"`
}

// ImageURL tolerates a missing image.
func ImageURL(img *Image) string {
	if img == nil {
		return ""
	}
	return img.URL
}

type SiteMeta struct {
	TitleJA       string `json:"title_ja"`
	TitleEN       string `json:"title_en"`
	DescriptionJA string `json:"description_ja"`
	DescriptionEN string `json:"description_en"`
	OGImage       *Image `json:"ogImage,omitempty"`
}

func (m SiteMeta) LocalizedFields() map[string]Text {
	return map[string]Text{
		"title":       {JA: m.TitleJA, EN: m.TitleEN},
		"description": {JA: m.DescriptionJA, EN: m.DescriptionEN},
	}
}

type HeroSlide struct {
	Image *Image `json:"image,omitempty"`
	AltJA string `json:"alt_ja"`
	AltEN string `json:"alt_en"`
}

func (s HeroSlide) LocalizedFields() map[string]Text {
	return map[string]Text{"alt": {JA: s.AltJA, EN: s.AltEN}}
}

type Hero struct {
	Slides []HeroSlide `json:"slides"`
}

type Catchcopy struct {
	MainCopyJA string `json:"mainCopy_ja"`
	MainCopyEN string `json:"mainCopy_en"`
	SubCopyJA  string `json:"subCopy_ja"`
	SubCopyEN  string `json:"subCopy_en"`
}

func (c Catchcopy) LocalizedFields() map[string]Text {
	return map[string]Text{
		"mainCopy": {JA: c.MainCopyJA, EN: c.MainCopyEN},
		"subCopy":  {JA: c.SubCopyJA, EN: c.SubCopyEN},
	}
}

type AboutLink struct {
	LabelJA string `json:"label_ja"`
	LabelEN string `json:"label_en"`
	URLJA   string `json:"url_ja"`
	URLEN   string `json:"url_en"`
}

func (l AboutLink) LocalizedFields() map[string]Text {
	return map[string]Text{
		"label": {JA: l.LabelJA, EN: l.LabelEN},
		"url":   {JA: l.URLJA, EN: l.URLEN},
	}
}

type About struct {
	Image      *Image      `json:"image,omitempty"`
	ImageAltJA string      `json:"imageAlt_ja"`
	ImageAltEN string      `json:"imageAlt_en"`
	HeadingJA  string      `json:"heading_ja"`
	HeadingEN  string      `json:"heading_en"`
	BodyJA     string      `json:"body_ja"`
	BodyEN     string      `json:"body_en"`
	Links      []AboutLink `json:"links"`
}

func (a About) LocalizedFields() map[string]Text {
	return map[string]Text{
		"imageAlt": {JA: a.ImageAltJA, EN: a.ImageAltEN},
		"heading":  {JA: a.HeadingJA, EN: a.HeadingEN},
		"body":     {JA: a.BodyJA, EN: a.BodyEN},
	}
}

type InteriorImage struct {
	Image *Image `json:"image,omitempty"`
	AltJA string `json:"alt_ja"`
	AltEN string `json:"alt_en"`
}

func (i InteriorImage) LocalizedFields() map[string]Text {
	return map[string]Text{"alt": {JA: i.AltJA, EN: i.AltEN}}
}

type StoreInfo struct {
	InteriorImages []InteriorImage `json:"interiorImages"`
	AddressJA      string          `json:"address_ja"`
	AddressEN      string          `json:"address_en"`
	PostalCode     string          `json:"postalCode"`
	Tel            string          `json:"tel"`
	HoursJA        string          `json:"hours_ja"`
	HoursEN        string          `json:"hours_en"`
	ClosedDayJA    string          `json:"closedDay_ja"`
	ClosedDayEN    string          `json:"closedDay_en"`
	PaymentJA      string          `json:"payment_ja,omitempty"` // still being confirmed with the shop
	PaymentEN      string          `json:"payment_en,omitempty"`
	ReservationJA  string          `json:"reservation_ja"`
	ReservationEN  string          `json:"reservation_en"`
	MapEmbedURL    string          `json:"mapEmbedUrl"`
	AffiliatedURL  string          `json:"affiliatedUrl,omitempty"`
}

func (s StoreInfo) LocalizedFields() map[string]Text {
	return map[string]Text{
		"address":     {JA: s.AddressJA, EN: s.AddressEN},
		"hours":       {JA: s.HoursJA, EN: s.HoursEN},
		"closedDay":   {JA: s.ClosedDayJA, EN: s.ClosedDayEN},
		"payment":     {JA: s.PaymentJA, EN: s.PaymentEN},
		"reservation": {JA: s.ReservationJA, EN: s.ReservationEN},
	}
}

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
)

type SNSLink struct {
	Platform []Platform `json:"platform"`
	URL      string     `json:"url"`
}

// Label is the capitalized first platform tag ("Instagram"), or "SNS".
func (l SNSLink) Label() string {
	if len(l.Platform) == 0 || l.Platform[0] == "" {
		return "SNS"
	}
	p := []rune(string(l.Platform[0]))
	return string(unicode.ToUpper(p[0])) + string(p[1:])
}

type Footer struct {
	SNSLinks     []SNSLink `json:"snsLinks"`
	OtherMenuURL string    `json:"otherMenuUrl,omitempty"`
}

// SiteData is the consolidated site-data record: every singleton
// collection flattened into one object.
type SiteData struct {
	SiteMeta
	Hero
	Catchcopy
	About
	StoreInfo
	Footer
}

func (d SiteData) LocalizedFields() map[string]Text {
	fields := make(map[string]Text)
	for _, section := range []Localizable{d.SiteMeta, d.Catchcopy, d.About, d.StoreInfo} {
		for name, text := range section.LocalizedFields() {
			fields[name] = text
		}
	}
	return fields
}

type Category string

const (
	CategoryRecommended   Category = "recommended"
	CategoryCollaboration Category = "collaboration"
)

// MenuItem is one record of the menu-items list collection.
type MenuItem struct {
	ID               string     `json:"id"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	PublishedAt      time.Time  `json:"publishedAt"`
	RevisedAt        time.Time  `json:"revisedAt"`
	Image            *Image     `json:"image,omitempty"`
	NameJA           string     `json:"name_ja"`
	NameEN           string     `json:"name_en"`
	Price            int        `json:"price"`
	DescriptionJA    string     `json:"description_ja"`
	DescriptionEN    string     `json:"description_en"`
	MovieURL         string     `json:"movieUrl,omitempty"`
	Category         []Category `json:"category"`
	CollabLabelJA    string     `json:"collabLabel_ja,omitempty"`
	CollabLabelEN    string     `json:"collabLabel_en,omitempty"`
	CollaborationURL string     `json:"collaborationUrl,omitempty"`
	SortOrder        int        `json:"sortOrder"`
}

func (m MenuItem) LocalizedFields() map[string]Text {
	return map[string]Text{
		"name":        {JA: m.NameJA, EN: m.NameEN},
		"description": {JA: m.DescriptionJA, EN: m.DescriptionEN},
		"collabLabel": {JA: m.CollabLabelJA, EN: m.CollabLabelEN},
	}
}

// Content is everything the render side needs: the aggregate record and
// both category lists, already ordered by sortOrder.
type Content struct {
	Site          *SiteData
	Recommended   []MenuItem
	Collaboration []MenuItem
}
