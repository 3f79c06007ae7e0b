package content

import "github.com/1129kyoto/sitecontent/internal/entities"

type SiteMetaPayload struct {
	TitleJA       string `json:"title_ja"`
	TitleEN       string `json:"title_en"`
	DescriptionJA string `json:"description_ja"`
	DescriptionEN string `json:"description_en"`
	OGImage       string `json:"ogImage"`
}

type HeroSlidePayload struct {
	Image string `json:"image"`
	AltJA string `json:"alt_ja"`
	AltEN string `json:"alt_en"`
}

type HeroPayload struct {
	Slides []HeroSlidePayload `json:"slides"`
}

type CatchcopyPayload struct {
	MainCopyJA string `json:"mainCopy_ja"`
	MainCopyEN string `json:"mainCopy_en"`
	SubCopyJA  string `json:"subCopy_ja"`
	SubCopyEN  string `json:"subCopy_en"`
}

type AboutPayload struct {
	Image      string               `json:"image"`
	ImageAltJA string               `json:"imageAlt_ja"`
	ImageAltEN string               `json:"imageAlt_en"`
	HeadingJA  string               `json:"heading_ja"`
	HeadingEN  string               `json:"heading_en"`
	BodyJA     string               `json:"body_ja"`
	BodyEN     string               `json:"body_en"`
	Links      []entities.AboutLink `json:"links"`
}

// MenuItemPayload is written with PUT menu-items/{ID}; ID is the record key
// and not part of the body.
type MenuItemPayload struct {
	ID               string              `json:"-"`
	Image            string              `json:"image"`
	NameJA           string              `json:"name_ja"`
	NameEN           string              `json:"name_en"`
	Price            int                 `json:"price"`
	DescriptionJA    string              `json:"description_ja"`
	DescriptionEN    string              `json:"description_en"`
	MovieURL         *string             `json:"movieUrl"`
	Category         []entities.Category `json:"category"`
	CollabLabelJA    string              `json:"collabLabel_ja,omitempty"`
	CollabLabelEN    string              `json:"collabLabel_en,omitempty"`
	CollaborationURL string              `json:"collaborationUrl,omitempty"`
	SortOrder        int                 `json:"sortOrder"`
}

type InteriorImagePayload struct {
	Image string `json:"image"`
	AltJA string `json:"alt_ja"`
	AltEN string `json:"alt_en"`
}

type StoreInfoPayload struct {
	InteriorImages []InteriorImagePayload `json:"interiorImages"`
	AddressJA      string                 `json:"address_ja"`
	AddressEN      string                 `json:"address_en"`
	PostalCode     string                 `json:"postalCode"`
	Tel            string                 `json:"tel"`
	HoursJA        string                 `json:"hours_ja"`
	HoursEN        string                 `json:"hours_en"`
	ClosedDayJA    string                 `json:"closedDay_ja"`
	ClosedDayEN    string                 `json:"closedDay_en"`
	PaymentJA      string                 `json:"payment_ja,omitempty"`
	PaymentEN      string                 `json:"payment_en,omitempty"`
	ReservationJA  string                 `json:"reservation_ja"`
	ReservationEN  string                 `json:"reservation_en"`
	MapEmbedURL    string                 `json:"mapEmbedUrl"`
	AffiliatedURL  string                 `json:"affiliatedUrl,omitempty"`
}

type FooterPayload struct {
	SNSLinks     []entities.SNSLink `json:"snsLinks"`
	OtherMenuURL *string            `json:"otherMenuUrl"`
}

func BuildSiteMeta(images ImageMap) SiteMetaPayload {
	return SiteMetaPayload{
		TitleJA:       "祇園だいきち牧場 | 祇園で味わうA5近江牛",
		TitleEN:       "Gion Daikichi Ranch | A5 Omi Beef in Gion, Kyoto",
		DescriptionJA: "祇園だいきち牧場は、自社牧場で育てたA5ランク近江牛を祇園で楽しめるお店です。名物ひつまぶしやステーキ重、すき焼き御膳など、こだわりのメニューをご用意しています。",
		DescriptionEN: "Gion Daikichi Ranch is a restaurant where you can enjoy A5-grade Omi beef raised on our own satoyama ranch. Enjoy our signature hitsumabushi, steak bowls, sukiyaki set meals, and more.",
		OGImage:       images.URL("hero.webp"),
	}
}

func BuildHero(images ImageMap) HeroPayload {
	return HeroPayload{
		Slides: []HeroSlidePayload{
			{Image: images.URL("hero.webp"), AltJA: "近江だいきち牛 ステーキ重", AltEN: "Omi Daikichi Beef Steak Bowl"},
			{Image: images.URL("hitsumabushi-hero.webp"), AltJA: "近江だいきち牛 ひつまぶし", AltEN: "Omi Daikichi Beef Hitsumabushi"},
			{Image: images.URL("cow.webp"), AltJA: "近江だいきち牛", AltEN: "Omi Daikichi Beef Cattle"},
			{Image: images.URL("farm.webp"), AltJA: "だいきち牧場", AltEN: "Daikichi Ranch"},
		},
	}
}

func BuildCatchcopy() CatchcopyPayload {
	return CatchcopyPayload{
		MainCopyJA: "祇園で味わう、里山育ちのA5近江牛",
		MainCopyEN: "A5 Omi Beef Raised in the Satoyama, Savored in Gion",
		SubCopyJA:  "自社牧場で育てた近江だいきち牛を、名物ひつまぶしから夜のコースまで",
		SubCopyEN:  "From our signature hitsumabushi to evening course menus, enjoy Omi Daikichi Beef raised on our own ranch.",
	}
}

func BuildAbout(images ImageMap) AboutPayload {
	return AboutPayload{
		Image:      images.URL("exterior.webp"),
		ImageAltJA: "祇園だいきち牧場 外観",
		ImageAltEN: "Gion Daikichi Ranch Exterior",
		HeadingJA:  "祇園だいきち牧場について",
		HeadingEN:  "Gion Daikichi Ranch",
		BodyJA:     "祇園だいきち牧場は、里山の自社牧場で育てたA5ランク近江牛を楽しめるお店です。創業1896年から4代続く大吉商店の「近江だいきち牛」を使い、名物ひつまぶしやステーキ重、すき焼き重・すき焼き御膳などのオリジナルメニューをご用意。夜は近江牛の魅力をコース仕立てでお楽しみいただけます。さらに、創業1969年「京のカレーうどん 味味香」とコラボした、限定オリジナル3種の近江牛カレーうどんもご用意しています。",
		BodyEN:     "Gion Daikichi Ranch is a restaurant where you can enjoy A5-grade Omi beef raised on our own satoyama ranch. We serve \"Omi Daikichi Beef\" from Daikichi Shoten—a family business founded in 1896 and carried on for four generations—in original dishes such as our signature hitsumabushi, steak bowls, and sukiyaki bowls and set meals. In the evening, you can experience the full appeal of Omi beef through carefully crafted course menus. We also offer three limited-edition Omi beef curry udon dishes, created in collaboration with Aji-Aji-Ka (Kyoto Curry Udon), established in 1969.",
		Links: []entities.AboutLink{
			{
				LabelJA: "大吉商店株式会社について",
				LabelEN: "Daikichi Shoten Co., Ltd.",
				URLJA:   "http://1129.co.jp/company/",
				URLEN:   "http://www.omibeef.asia/strongpoint/",
			},
			{
				LabelJA: "近江だいきち牛について",
				LabelEN: "Omi Daikichi Beef",
				URLJA:   "https://daikichibeef.jp/farm",
				URLEN:   "http://www.omibeef.asia/premium/",
			},
		},
	}
}

// BuildMenuItems returns one payload per menu record, each keyed by ID.
// SortOrder is unique within a category.
func BuildMenuItems(images ImageMap) []MenuItemPayload {
	return []MenuItemPayload{
		{
			ID:            "hitsumabushi",
			Image:         images.URL("hitsumabushi.webp"),
			NameJA:        "近江だいきち牛 ひつまぶし（ロース1.5倍）",
			NameEN:        "Omi Daikichi Beef Hitsumabushi — 1.5 Times Loin",
			Price:         5455,
			DescriptionJA: "だいきち近江牛を焼き上げた名物ひつまぶしで、ご飯の中に近江牛のコンビーフが入っています。3種の味と京出汁、またはピリ辛チゲで味の変化を楽しみながらお召し上がりください。",
			DescriptionEN: "Our signature hitsumabushi features grilled Daikichi Omi beef, with Omi beef corned beef tucked inside the rice. Enjoy it as the flavors change—three seasonings plus Kyoto dashi, or a spicy chige broth—served in stages.",
			MovieURL:      stringPtr("https://www.instagram.com/reel/DRn6065jwec/?hl=ja"),
			Category:      []entities.Category{entities.CategoryRecommended},
			SortOrder:     1,
		},
		{
			ID:            "steak-ju",
			Image:         images.URL("steak-ju.webp"),
			NameJA:        "近江だいきち牛 ステーキ重（ロース1.5倍）",
			NameEN:        "Omi Daikichi Beef Steak Rice Bowl — 1.5 Times Loin",
			Price:         5318,
			DescriptionJA: "近江の地で作られた天然醸造仕込みの濃口醤油を使用したオリジナル特製たれで焼き上げた贅沢な銘品です。ロースはとろけるような舌触りと独自のコクを味わって頂けます。赤身はお肉本来の食感と旨みを堪能して頂けます。",
			DescriptionEN: "This luxurious signature dish is grilled with our original special sauce made with naturally brewed dark soy sauce crafted in Omi. The loin offers a melt-in-your-mouth texture and a distinctive richness, while the lean cut lets you savor the beef's natural bite and deep umami.",
			MovieURL:      stringPtr("https://www.instagram.com/reel/DRqlHRSj6wS/?hl=ja"),
			Category:      []entities.Category{entities.CategoryRecommended},
			SortOrder:     2,
		},
		{
			ID:            "suki-gozen",
			Image:         images.URL("suki-gozen.webp"),
			NameJA:        "近江だいきち牛 すき御膳（ロース）",
			NameEN:        "Omi Daikichi Beef Sukiyaki Set — Loin",
			Price:         4091,
			DescriptionJA: "自家製割下でお客様ご自身が炊き上げるすき焼きです。多彩な具材と自社牧場産だいきち近江牛をお楽しみください。",
			DescriptionEN: "This is sukiyaki simmered at your table in our house-made warishita sauce. Enjoy a variety of ingredients together with Daikichi Omi beef from our own ranch.",
			MovieURL:      stringPtr("https://www.instagram.com/reel/DR_h0R4D3rv/?hl=ja"),
			Category:      []entities.Category{entities.CategoryRecommended},
			SortOrder:     3,
		},
		{
			ID:               "sukiyaki-curry-udon",
			Image:            images.URL("sukiyaki-udon.webp"),
			NameJA:           "近江だいきち牛すきやきカレーうどん",
			NameEN:           "Omi Daikichi Beef Sukiyaki Curry Udon",
			Price:            2500,
			DescriptionJA:    "昆布と鰹の旨味を引き出した「旨みだし」に厳選された11種類のスパイスを加え、あんかけに仕上げたのが「京のカレーうどん」です。自社牧場産の“近江だいきち牛”のロース肉を自家製割下で味付けした、「和牛すき焼き」の甘くて濃厚な食感と、厚切りのあげと九条ねぎで、祇園味味香オリジナルカレーうどんの旨味と食感をご賞味ください。",
			DescriptionEN:    "“Kyoto Curry Udon” is finished as a thick, glossy sauce by blending our umami dashi—crafted to bring out the richness of kombu kelp and bonito—with 11 carefully selected spices. Enjoy the sweet, rich taste of wagyu sukiyaki, made with loin from our own-ranch Omi Daikichi Beef seasoned in our house-made warishita, together with thick-cut fried tofu and Kujo green onions—bringing out the signature depth and texture of Gion Mimiko’s original curry udon.",
			Category:         []entities.Category{entities.CategoryCollaboration},
			CollabLabelJA:    "祇園味味香",
			CollabLabelEN:    "Gion Mimiko",
			CollaborationURL: "https://mimikou.jp/kyoto-curry-udon-flavor/",
			SortOrder:        1,
		},
	}
}

func BuildStoreInfo(images ImageMap) StoreInfoPayload {
	return StoreInfoPayload{
		InteriorImages: []InteriorImagePayload{
			{Image: images.URL("interior-1f.webp"), AltJA: "祇園だいきち牧場 内観1F", AltEN: "Gion Daikichi Ranch Interior 1F"},
			{Image: images.URL("interior-2f.webp"), AltJA: "祇園だいきち牧場 内観2F", AltEN: "Gion Daikichi Ranch Interior 2F"},
		},
		AddressJA:   "京都府京都市東山区祇園町南側528番地6",
		AddressEN:   "528-6 Gionmachi Minamigawa, Higashiyama-ku, Kyoto-shi, Kyoto 605-0074, Japan",
		PostalCode:  "605-0074",
		Tel:         "075-746-4129",
		HoursJA:     "11:00〜15:00、17:00〜20:00",
		HoursEN:     "11:00 – 15:00, 17:00 – 20:00",
		ClosedDayJA: "日曜日",
		ClosedDayEN: "Sundays",
		// Payment methods are still being confirmed with the shop.
		PaymentJA:     "※確認中",
		PaymentEN:     "TBD",
		ReservationJA: "承っておりません",
		ReservationEN: "Unavailable",
		MapEmbedURL:   "https://www.google.com/maps?q=528-6+Gionmachi+Minamigawa,+Higashiyama-ku,+Kyoto&output=embed",
		AffiliatedURL: "https://daikichibeef.jp/shop",
	}
}

func BuildFooter() FooterPayload {
	return FooterPayload{
		SNSLinks: []entities.SNSLink{
			{
				Platform: []entities.Platform{entities.PlatformInstagram},
				URL:      "https://www.instagram.com/gion.daikichibeef?igsh=a2FzNGtiY210aHhk",
			},
			{
				Platform: []entities.Platform{entities.PlatformTikTok},
				URL:      "https://www.tiktok.com/@gion.daikichibeef?_r=1&_t=ZS-93UkS1kX9HR",
			},
			{
				Platform: []entities.Platform{entities.PlatformYouTube},
				URL:      "https://youtube.com/channel/UCylR4wY3H3f3yQqHagrWZjQ?si=tIQ2c3DS_SpcBdck",
			},
		},
		OtherMenuURL: nil,
	}
}

func stringPtr(s string) *string {
	return &s
}
