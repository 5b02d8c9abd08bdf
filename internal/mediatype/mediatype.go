// Package mediatype derives a categorical media label from the boolean
// content flags stored alongside each post.
package mediatype

// Flags are the media booleans recorded by the crawlers for a post.
type Flags struct {
	Text  bool
	Image bool
	Video bool
	Link  bool
}

// Labels for the derived media categories, matching the values the dashboard
// charts group by.
const (
	TextOnly  = "Text Only"
	ImageOnly = "Image Only"
	VideoOnly = "Video Only"
	TextImage = "Text + Image"
	TextVideo = "Text + Video"
	Link      = "Link"
)

type rule struct {
	label   string
	matches func(Flags) bool
}

// The rules are evaluated in order and the first match wins. The ordering is
// a policy choice: overlapping flag combinations (e.g. text+image+video)
// resolve to the earliest matching label, so do not reorder.
var rules = []rule{
	{TextOnly, func(f Flags) bool { return f.Text && !f.Image && !f.Video }},
	{ImageOnly, func(f Flags) bool { return f.Image && !f.Video && !f.Text }},
	{VideoOnly, func(f Flags) bool { return f.Video && !f.Text }},
	{TextImage, func(f Flags) bool { return f.Image && f.Text }},
	{TextVideo, func(f Flags) bool { return f.Video && f.Text }},
	{Link, func(f Flags) bool { return f.Link }},
}

// Classify returns the derived media label for f. The second return value is
// false when no rule matches; such rows are excluded from aggregation.
func Classify(f Flags) (string, bool) {
	for _, r := range rules {
		if r.matches(f) {
			return r.label, true
		}
	}
	return "", false
}
