// Package content holds the fixed site content pushed by the migration and
// the builders that turn it into write payloads for each collection.
package content

import (
	"fmt"
	"sort"
)

// Collection endpoints in write order.
const (
	CollectionSiteMeta  = "site-meta"
	CollectionHero      = "hero"
	CollectionCatchcopy = "catchcopy"
	CollectionAbout     = "about"
	CollectionMenuItems = "menu-items"
	CollectionStoreInfo = "store-info"
	CollectionFooter    = "footer"

	// CollectionSiteData is the consolidated read-side record.
	CollectionSiteData = "site-data"
)

var Collections = []string{
	CollectionSiteMeta,
	CollectionHero,
	CollectionCatchcopy,
	CollectionAbout,
	CollectionMenuItems,
	CollectionStoreInfo,
	CollectionFooter,
}

// ImageFiles are uploaded in this order before any collection is written.
var ImageFiles = []string{
	"hero.webp",
	"hitsumabushi-hero.webp",
	"cow.webp",
	"farm.webp",
	"exterior.webp",
	"hitsumabushi.webp",
	"steak-ju.webp",
	"suki-gozen.webp",
	"sukiyaki-udon.webp",
	"interior-1f.webp",
	"interior-2f.webp",
}

// ImageMap maps a source file name to the URL returned by the media upload.
type ImageMap map[string]string

// URL panics when name was never uploaded: the builders and ImageFiles are
// maintained together, so a miss is a programming error.
func (m ImageMap) URL(name string) string {
	u, ok := m[name]
	if !ok {
		panic(fmt.Sprintf("content: image %q has not been uploaded", name))
	}
	return u
}

// Missing lists the names in ImageFiles that m does not resolve.
func (m ImageMap) Missing() []string {
	var missing []string
	for _, name := range ImageFiles {
		if _, ok := m[name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// PlaceholderImages resolves every declared file to a local placeholder,
// for dry runs that never touch the media endpoint.
func PlaceholderImages() ImageMap {
	images := make(ImageMap, len(ImageFiles))
	for _, name := range ImageFiles {
		images[name] = "file://images/" + name
	}
	return images
}

// Document is one write: a singleton collection (ID empty) or one record
// of a list collection.
type Document struct {
	Collection string
	ID         string
	Body       any
}

// Documents builds every write of the migration in declared order.
func Documents(images ImageMap) []Document {
	docs := []Document{
		{Collection: CollectionSiteMeta, Body: BuildSiteMeta(images)},
		{Collection: CollectionHero, Body: BuildHero(images)},
		{Collection: CollectionCatchcopy, Body: BuildCatchcopy()},
		{Collection: CollectionAbout, Body: BuildAbout(images)},
	}
	for _, item := range BuildMenuItems(images) {
		docs = append(docs, Document{Collection: CollectionMenuItems, ID: item.ID, Body: item})
	}
	docs = append(docs,
		Document{Collection: CollectionStoreInfo, Body: BuildStoreInfo(images)},
		Document{Collection: CollectionFooter, Body: BuildFooter()},
	)
	return docs
}
