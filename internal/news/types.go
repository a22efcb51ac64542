package news

// Item is one raw news entry as returned by the news API
type Item struct {
	ID          string `json:"id,omitempty"`
	CTime       string `json:"ctime,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source,omitempty"`
	PicURL      string `json:"picUrl,omitempty"`
	URL         string `json:"url,omitempty"`
	RawContent  string `json:"raw_content,omitempty"`
}
