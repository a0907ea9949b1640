package authors

// ItemGroup collects the items attributed to a single author.
type ItemGroup[Item any] struct {
	Author Author
	Items  []Item
}

// GroupAuthoredItems groups items by author permalink. Authors without a
// permalink have no page and are skipped. When two authors share a
// permalink the first one found wins, and an item listing the same author
// twice appears once in the group.
func GroupAuthoredItems[Item comparable](
	items []Item,
	getAuthors func(Item) []Author,
) map[string]*ItemGroup[Item] {
	groups := make(map[string]*ItemGroup[Item])

	for _, item := range items {
		for _, author := range getAuthors(item) {
			if author.Permalink == "" {
				continue
			}
			group, ok := groups[author.Permalink]
			if !ok {
				group = &ItemGroup[Item]{Author: author}
				groups[author.Permalink] = group
			}
			group.Items = append(group.Items, item)
		}
	}

	for _, group := range groups {
		group.Items = dedupe(group.Items)
	}

	return groups
}

// Visibility describes how an author or tag page lists its items.
type Visibility[Item any] struct {
	Unlisted    bool
	ListedItems []Item
}

// GetVisibility computes the listing state of a group. A group whose items
// are all unlisted stays reachable with its full item list but is marked
// unlisted; otherwise unlisted items are dropped from the listing.
func GetVisibility[Item any](items []Item, isUnlisted func(Item) bool) Visibility[Item] {
	listed := make([]Item, 0, len(items))
	for _, item := range items {
		if !isUnlisted(item) {
			listed = append(listed, item)
		}
	}

	if len(listed) == 0 {
		return Visibility[Item]{Unlisted: true, ListedItems: items}
	}
	return Visibility[Item]{Unlisted: false, ListedItems: listed}
}

func dedupe[Item comparable](items []Item) []Item {
	seen := make(map[Item]struct{}, len(items))
	out := items[:0]
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
