package wrapped

// topicMeta carries the display icon and accent color for a topic
// category.
type topicMeta struct {
	Icon  string
	Color string
}

var topicMetaByName = map[string]topicMeta{
	"Coding & Debugging":  {Icon: "💻", Color: "#00f0ff"},
	"Creative Writing":    {Icon: "✍️", Color: "#ff00a8"},
	"Research & Learning": {Icon: "🔬", Color: "#8b00ff"},
	"Work & Productivity": {Icon: "⚡", Color: "#ffee00"},
	"Advice & Decisions":  {Icon: "🤔", Color: "#00ff88"},
	"Fun & Casual":        {Icon: "🎮", Color: "#ff6b00"},
	"Data & Analytics":    {Icon: "📊", Color: "#4285f4"},
	"Finance & Business":  {Icon: "💰", Color: "#00c853"},
	"Health & Wellness":   {Icon: "🏃", Color: "#e91e63"},
	"Travel & Lifestyle":  {Icon: "✈️", Color: "#ff9800"},
	"General Exploration": {Icon: "🌌", Color: "#1fb8cd"},
}

func metaFor(name string) topicMeta {
	if m, ok := topicMetaByName[name]; ok {
		return m
	}
	return topicMeta{Icon: "💬", Color: "#ffffff"}
}
