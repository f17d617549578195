package quiz

const (
	QuestionGender           = "gender"
	QuestionDailyActivities  = "daily_activities"
	QuestionStyleElements    = "style_elements"
	QuestionColorPreferences = "color_preferences"
	QuestionFitPreference    = "fit_preference"
	QuestionShoppingPriority = "shopping_priority"
	QuestionStyleInspiration = "style_inspiration"
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Question struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Category string   `json:"category"`
	Options  []Option `json:"options"`
	Multi    bool     `json:"multi,omitempty"`
}

func opts(values ...string) []Option {
	out := make([]Option, 0, len(values))
	for _, v := range values {
		out = append(out, Option{Value: v, Label: v})
	}
	return out
}

var defaultQuestions = []Question{
	{
		ID:       QuestionGender,
		Text:     "Which collections do you usually shop from?",
		Category: "basics",
		Options:  opts("Female", "Male", "Non-binary"),
	},
	{
		ID:       QuestionDailyActivities,
		Text:     "What does a typical day look like for you?",
		Category: "lifestyle",
		Options: opts(
			"Office work and meetings",
			"Creative work and design",
			"Active and outdoor",
			"Social events and nightlife",
			"Work from home",
			"Travel frequently",
		),
	},
	{
		ID:       QuestionStyleElements,
		Text:     "Which pieces are you drawn to first?",
		Category: "style",
		Options: opts(
			"Classic and timeless pieces",
			"Bold statement pieces",
			"Clean minimal lines",
			"Trendy and experimental",
			"Comfortable and relaxed",
			"Luxury fabrics and tailoring",
		),
	},
	{
		ID:       QuestionColorPreferences,
		Text:     "Which colors feel most like you?",
		Category: "color",
		Options: opts(
			"Neutrals and earth tones",
			"Bold and bright colors",
			"Monochrome black and white",
			"Pastels and soft tones",
			"Jewel tones",
		),
	},
	{
		ID:       QuestionFitPreference,
		Text:     "How do you like your clothes to fit?",
		Category: "fit",
		Options: opts(
			"Tailored and structured",
			"Relaxed and oversized",
			"Fitted and body-conscious",
			"Mix of fits",
		),
	},
	{
		ID:       QuestionShoppingPriority,
		Text:     "What matters most when you shop?",
		Category: "shopping",
		Options: opts(
			"Quality over quantity",
			"Latest trends",
			"Versatility",
			"Sustainability",
			"Value for money",
		),
	},
	{
		ID:       QuestionStyleInspiration,
		Text:     "Where do you find style inspiration?",
		Category: "inspiration",
		Options: opts(
			"Timeless icons",
			"Street style",
			"Runway and designers",
			"Minimalist Scandinavian",
			"Global cultures",
		),
	},
}

// DefaultQuestions is served when the backend question bank is unreachable.
func DefaultQuestions() []Question {
	out := make([]Question, len(defaultQuestions))
	for i, q := range defaultQuestions {
		q.Options = append([]Option(nil), q.Options...)
		out[i] = q
	}
	return out
}
