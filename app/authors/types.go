// Package authors loads author declarations and resolves post author lists.
package authors

// Author is a fully resolved blog post author. Key and Page are only set for
// authors declared in the authors map.
type Author struct {
	Key         string         `json:"key,omitempty"`
	Name        string         `json:"name,omitempty"`
	Title       string         `json:"title,omitempty"`
	URL         string         `json:"url,omitempty"`
	ImageURL    string         `json:"imageURL,omitempty"`
	Email       string         `json:"email,omitempty"`
	Page        bool           `json:"-"`
	Permalink   string         `json:"permalink,omitempty"`
	Description string         `json:"description,omitempty"`
	Socials     map[string]any `json:"socials,omitempty"`
	Extra       map[string]any `json:"-"`
}

// Clone returns a deep enough copy that callers can override fields without
// mutating the shared authors map entry.
func (a Author) Clone() Author {
	out := a
	if a.Socials != nil {
		out.Socials = make(map[string]any, len(a.Socials))
		for k, v := range a.Socials {
			out.Socials[k] = v
		}
	}
	if a.Extra != nil {
		out.Extra = make(map[string]any, len(a.Extra))
		for k, v := range a.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

// Map holds the author templates declared in the authors map file, keyed by
// author key.
type Map map[string]Author
