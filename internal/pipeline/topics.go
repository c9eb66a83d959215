package pipeline

import "regexp"

// Topic category names. The classifier always returns one of these.
const (
	TopicCoding      = "Coding & Debugging"
	TopicCreative    = "Creative Writing"
	TopicResearch    = "Research & Learning"
	TopicWork        = "Work & Productivity"
	TopicAdvice      = "Advice & Decisions"
	TopicFun         = "Fun & Casual"
	TopicData        = "Data & Analytics"
	TopicFinance     = "Finance & Business"
	TopicHealth      = "Health & Wellness"
	TopicTravel      = "Travel & Lifestyle"
	TopicExploration = "General Exploration"
)

// topicRule pairs a category with its keyword pattern. Rules are
// evaluated in order against the lower-cased title and the first match
// wins, so ambiguous titles resolve identically across runs.
type topicRule struct {
	name    string
	pattern *regexp.Regexp
}

var topicRules = []topicRule{
	{TopicCoding, regexp.MustCompile(`(?i)code|debug|error|bug|function|api|programming|javascript|python|react|css|html|sql|database|server|deploy|git|npm|node|typescript|java|c\+\+|rust|golang|docker|kubernetes|aws|azure|linux|terminal|script|algorithm|regex|json|xml|yaml|backend|frontend|fullstack|devops|ci/cd|webpack|vite|nextjs|express|django|flask|mongodb|postgres|mysql|redis`)},
	{TopicCreative, regexp.MustCompile(`(?i)write|story|creative|poem|essay|blog|content|article|novel|fiction|narrative|plot|character|dialogue|script|screenplay|copywriting|headline|tagline|slogan|caption|social media post|tweet|instagram`)},
	{TopicResearch, regexp.MustCompile(`(?i)research|explain|what is|how does|learn|study|understand|definition|meaning|history|science|math|physics|chemistry|biology|psychology|philosophy|economics|statistics|analysis|theory|concept|principle|thesis|dissertation|academic`)},
	{TopicWork, regexp.MustCompile(`(?i)email|work|project|task|plan|schedule|productivity|meeting|presentation|report|proposal|deadline|team|manager|client|business|strategy|goal|objective|kpi|okr|agile|scrum|sprint|roadmap|milestone|workflow|process|procedure|policy|document|spreadsheet|excel|powerpoint|slides`)},
	{TopicAdvice, regexp.MustCompile(`(?i)help|advice|should i|recommend|suggest|best|compare|choose|decide|option|alternative|pros and cons|review|opinion|feedback|evaluate|assess`)},
	{TopicFun, regexp.MustCompile(`(?i)fun|joke|game|play|chat|trivia|quiz|riddle|puzzle|entertainment|movie|music|song|book|tv|show|series|anime|manga|comic|meme|funny|humor|laugh`)},
	{TopicData, regexp.MustCompile(`(?i)data|analytics|dashboard|visualization|chart|graph|report|metric|insight|trend|forecast|predict|model|machine learning|ai|ml|deep learning|neural|nlp|gpt|llm|openai|chatgpt`)},
	{TopicFinance, regexp.MustCompile(`(?i)money|finance|investment|stock|crypto|bitcoin|trading|budget|expense|income|tax|accounting|invoice|payment|price|cost|revenue|profit|startup|entrepreneur|business plan|pitch|funding|vc|investor`)},
	{TopicHealth, regexp.MustCompile(`(?i)health|fitness|workout|exercise|diet|nutrition|weight|sleep|stress|anxiety|mental health|therapy|meditation|yoga|wellness|doctor|symptom|medicine|treatment`)},
	{TopicTravel, regexp.MustCompile(`(?i)travel|trip|vacation|flight|hotel|destination|itinerary|restaurant|food|recipe|cooking|shopping|fashion|style|home|decor|diy|garden`)},
}

// ClassifyTitle assigns a conversation title to exactly one topic
// category. Titles matching no rule land in General Exploration, never
// an empty category.
func ClassifyTitle(title string) string {
	for _, rule := range topicRules {
		if rule.pattern.MatchString(title) {
			return rule.name
		}
	}
	return TopicExploration
}

// AllTopics lists every category in classifier priority order, with
// the catch-all last.
func AllTopics() []string {
	names := make([]string, 0, len(topicRules)+1)
	for _, rule := range topicRules {
		names = append(names, rule.name)
	}
	return append(names, TopicExploration)
}
