// Package lexicon holds the fixed vocabularies the analyzer matches against.
// Tables are plain data, built once and shared read-only.
package lexicon

// CatchAll is the category that receives tokens no vocabulary claims
const CatchAll = "Lifestyle"

// Category is a named theme bound to its keyword vocabulary
type Category struct {
	Name     string
	Keywords []string
}

// Intent identifies a content-focus framing
type Intent string

const (
	IntentCommercial    Intent = "commercial"
	IntentEducational   Intent = "educational"
	IntentReview        Intent = "review"
	IntentInspirational Intent = "inspirational"
)

// IntentVocabulary binds an intent to the words that signal it
type IntentVocabulary struct {
	Intent Intent
	Words  []string
}

// RuneRange is an inclusive code point range
type RuneRange struct {
	Lo, Hi rune
}

// Contains reports whether r falls inside the range
func (rr RuneRange) Contains(r rune) bool {
	return r >= rr.Lo && r <= rr.Hi
}

// Domain pairs a content-type keyword with its narrative wording
type Domain struct {
	Key      string // matched as a substring of lower-cased labels
	Sentence string
	Account  string
}

// Lexicon is the complete set of vocabularies used by one analyzer.
// A Lexicon must not be modified after construction.
type Lexicon struct {
	StopWords  map[string]struct{}
	Categories []Category

	Positive []string
	Negative []string

	// Intents are evaluated in slice order, first match wins
	Intents []IntentVocabulary

	EngagementWords []string // weighted double
	EmotionalWords  []string
	EmojiRanges     []RuneRange

	InsightEmotional []string
	InsightEducation []string
	InsightCommunity []string
	InsightTrend     []string

	// Domains are matched in slice order, first match wins
	Domains         []Domain
	FallbackAccount string

	index map[string][]int
}

// New builds a lexicon and its token index
func New(l Lexicon) *Lexicon {
	l.index = make(map[string][]int)
	for i, c := range l.Categories {
		for _, kw := range c.Keywords {
			l.index[kw] = append(l.index[kw], i)
		}
	}
	return &l
}

// IsStopWord reports whether token is in the stop-word set
func (l *Lexicon) IsStopWord(token string) bool {
	_, ok := l.StopWords[token]
	return ok
}

// CategoriesFor returns the positions of every category whose vocabulary
// contains token, in category order
func (l *Lexicon) CategoriesFor(token string) []int {
	return l.index[token]
}

// CategoryIndex returns the position of the named category or -1
func (l *Lexicon) CategoryIndex(name string) int {
	for i, c := range l.Categories {
		if c.Name == name {
			return i
		}
	}
	return -1
}

var defaultLexicon = New(Lexicon{
	StopWords:  toSet(stopWords),
	Categories: categories,

	Positive: []string{"amazing", "beautiful", "love", "great", "awesome", "perfect", "excellent", "wonderful", "fantastic", "happy"},
	Negative: []string{"bad", "terrible", "awful", "hate", "worst", "horrible", "disappointing", "poor"},

	Intents: []IntentVocabulary{
		{Intent: IntentCommercial, Words: []string{"sale", "buy", "price", "sell", "purchase", "deal", "contact", "dm", "inquir"}},
		{Intent: IntentEducational, Words: []string{"tutorial", "guide", "tips", "howto", "learn", "teach", "step", "instruction"}},
		{Intent: IntentReview, Words: []string{"review", "recommend", "best", "top", "favorite", "love", "hate", "opinion", "rating"}},
		{Intent: IntentInspirational, Words: []string{"inspiration", "motivat", "goal", "dream", "achieve", "success", "transform"}},
	},

	EngagementWords: []string{"sale", "dm", "call", "contact", "buy", "price", "inquir"},
	EmotionalWords:  []string{"beautiful", "amazing", "stunning", "love", "perfect", "incredible"},

	EmojiRanges: []RuneRange{
		{Lo: 0x1F600, Hi: 0x1F64F}, // emoticons
		{Lo: 0x1F300, Hi: 0x1F5FF}, // symbols and pictographs
		{Lo: 0x1F680, Hi: 0x1F6FF}, // transport and map
		{Lo: 0x1F1E0, Hi: 0x1F1FF}, // regional indicators
	},

	InsightEmotional: []string{"amazing", "beautiful", "stunning", "love", "perfect", "incredible", "gorgeous", "awesome", "wonderful", "fantastic"},
	InsightEducation: []string{"tutorial", "guide", "tips"},
	InsightCommunity: []string{"community", "follow", "share"},
	InsightTrend:     []string{"trend", "viral", "popular"},

	Domains:         domains,
	FallbackAccount: "lifestyle account",
})

// Default returns the shared built-in lexicon
func Default() *Lexicon {
	return defaultLexicon
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

var stopWords = []string{
	"this", "that", "with", "have", "from", "they", "will", "would", "should", "could",
	"there", "their", "what", "when", "where", "which", "while", "about", "been", "were",
	"your", "into", "more", "some", "than", "then", "them", "these", "those", "just",
	"also", "very", "only", "over", "such", "here", "each", "much", "many", "most",
	"other", "after", "before", "because", "being", "does", "doing", "during", "same", "both",
	"until", "again", "further", "once", "ours", "yours", "itself", "through", "above", "below",
	"between", "under",
}

var categories = []Category{
	{Name: "Beauty & Cosmetics", Keywords: []string{
		"beauty", "makeup", "skincare", "cosmetics", "lipstick", "mascara", "foundation", "eyeliner",
		"eyeshadow", "blush", "serum", "moisturizer", "glow", "nails", "manicure", "haircare",
		"hairstyle", "salon", "facial", "lashes", "brows", "concealer", "highlighter", "palette",
		"fragrance", "perfume",
	}},
	{Name: "Fitness & Health", Keywords: []string{
		"fitness", "workout", "yoga", "training", "exercise", "health", "healthy", "wellness",
		"cardio", "muscle", "muscles", "running", "gains", "pilates", "crossfit", "protein",
		"nutrition", "weightloss", "athlete", "squat", "squats", "stretching", "meditation",
		"marathon", "bodybuilding", "fitfam", "strength",
	}},
	{Name: "Travel & Places", Keywords: []string{
		"travel", "traveling", "travelling", "vacation", "holiday", "beach", "mountain", "mountains",
		"adventure", "explore", "wanderlust", "journey", "destination", "trip", "hotel", "resort",
		"island", "city", "flight", "passport", "sunset", "hiking", "roadtrip", "backpacking",
		"tourism", "landscape", "nature",
	}},
	{Name: "Food & Cooking", Keywords: []string{
		"food", "foodie", "recipe", "recipes", "cooking", "baking", "delicious", "dinner", "lunch",
		"breakfast", "brunch", "dessert", "pizza", "pasta", "coffee", "chef", "kitchen", "homemade",
		"vegan", "tasty", "yummy", "restaurant", "meal", "snack", "cake", "sushi", "burger",
	}},
	{Name: "Books & Reading", Keywords: []string{
		"books", "book", "reading", "read", "novel", "novels", "author", "bookstagram", "library",
		"chapter", "fiction", "nonfiction", "literature", "poetry", "bookworm", "booklover",
		"paperback", "kindle", "bestseller", "bookclub", "writer", "writing",
	}},
	{Name: "Automotive", Keywords: []string{
		"automotive", "cars", "vehicle", "vehicles", "engine", "motor", "motors", "drive", "driving",
		"wheels", "tires", "turbo", "horsepower", "mileage", "sedan", "coupe", "convertible",
		"supercar", "supercars", "racing", "garage", "dealer", "dealership", "sale", "price",
		"listing", "mercedes", "porsche", "ferrari", "tesla", "toyota", "honda", "audi",
		"lamborghini", "exhaust", "carsofinstagram",
	}},
	{Name: "Fashion & Style", Keywords: []string{
		"fashion", "style", "outfit", "outfits", "ootd", "clothing", "clothes", "dress", "shoes",
		"sneakers", "streetwear", "designer", "vintage", "accessories", "jewelry", "handbag",
		"trendy", "wardrobe", "denim", "jacket", "model", "runway", "stylish", "lookbook",
	}},
	{Name: "Technology", Keywords: []string{
		"technology", "tech", "gadget", "gadgets", "smartphone", "iphone", "android", "software",
		"coding", "programming", "developer", "computer", "laptop", "innovation", "digital",
		"robot", "robotics", "artificial", "intelligence", "data", "cloud", "cyber", "apps",
		"setup", "electronics",
	}},
	{Name: "Business & Finance", Keywords: []string{
		"business", "entrepreneur", "entrepreneurship", "money", "finance", "financial",
		"investing", "investment", "invest", "startup", "marketing", "brand", "branding", "hustle",
		"income", "profit", "stocks", "crypto", "bitcoin", "wealth", "budget", "sales", "career",
		"leadership",
	}},
	{Name: "Art & Culture", Keywords: []string{
		"art", "artist", "artwork", "painting", "drawing", "sketch", "gallery", "museum", "culture",
		"creative", "illustration", "design", "photography", "photo", "photographer", "sculpture",
		"exhibition", "history", "heritage", "architecture",
	}},
	{Name: "Lifestyle", Keywords: []string{
		"lifestyle", "life", "daily", "home", "family", "friends", "weekend", "morning", "vibes",
		"mood", "selfcare", "routine", "cozy", "living", "blessed", "memories", "moments",
	}},
	{Name: "Education", Keywords: []string{
		"education", "learning", "learn", "study", "studying", "student", "students", "school",
		"university", "college", "teacher", "lesson", "lessons", "course", "knowledge", "science",
		"math", "tutorial", "tutorials", "guide", "tips", "skills", "classroom", "exam",
	}},
	{Name: "Entertainment", Keywords: []string{
		"entertainment", "movie", "movies", "film", "music", "song", "songs", "concert", "festival",
		"party", "funny", "comedy", "memes", "meme", "gaming", "games", "game", "netflix", "series",
		"show", "celebrity", "dance", "dancing", "podcast", "live",
	}},
}

var domains = []Domain{
	{Key: "beauty", Sentence: "Posts highlight beauty products and makeup looks for cosmetics enthusiasts.", Account: "beauty and cosmetics account"},
	{Key: "fitness", Sentence: "Posts revolve around training routines and healthy living.", Account: "fitness and wellness account"},
	{Key: "travel", Sentence: "Posts capture destinations and travel experiences that invite followers to explore.", Account: "travel account"},
	{Key: "books", Sentence: "Posts share reading recommendations and bookish moments with fellow readers.", Account: "book review account"},
	{Key: "food", Sentence: "Posts feature dishes and recipes that appeal to food lovers.", Account: "food and cooking account"},
	{Key: "automotive", Sentence: "Posts showcase vehicles and automotive details for car enthusiasts.", Account: "automotive account"},
	{Key: "fashion", Sentence: "Posts present outfits and style inspiration.", Account: "fashion account"},
	{Key: "technology", Sentence: "Posts cover gadgets and technology news.", Account: "technology account"},
	{Key: "business", Sentence: "Posts discuss business and money topics for an entrepreneurial audience.", Account: "business account"},
	{Key: "art", Sentence: "Posts display creative work and cultural interests.", Account: "art and culture account"},
	{Key: "commercial", Sentence: "Posts are oriented toward selling, with direct calls to action.", Account: "commercial account"},
	{Key: "educational", Sentence: "Posts aim to teach the audience something practical.", Account: "educational account"},
	{Key: "review", Sentence: "Posts offer opinions and recommendations that guide followers' choices.", Account: "review account"},
	{Key: "inspirational", Sentence: "Posts aim to motivate followers toward their goals.", Account: "inspirational account"},
}
