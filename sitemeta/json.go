package sitemeta

import "encoding/json"

type jsonMetadata struct {
	BaseURL         string   `json:"base_url"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Keywords        []string `json:"keywords"`
	PreviewImageURL string   `json:"preview_image_url"`
}

// MarshalJSON encodes the five public bindings.
func (m Metadata) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonMetadata{
		BaseURL:         m.baseURL,
		Title:           m.title,
		Description:     m.description,
		Keywords:        m.Keywords(),
		PreviewImageURL: m.PreviewImageURL(),
	})
}
