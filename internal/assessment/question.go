package assessment

// QuestionType distinguishes the two supported answer formats.
type QuestionType string

const (
	QuestionTypeLikert QuestionType = "LIKERT"
	QuestionTypeChoice QuestionType = "CHOICE"
)

// Question is immutable reference data, loaded once per session.
type Question struct {
	ID      string       `json:"id"`
	Text    string       `json:"text"`
	Type    QuestionType `json:"type"`
	Options []string     `json:"options,omitempty"` // custom options when not standard Likert
}

// LikertOption is one point on the standard agreement scale.
type LikertOption struct {
	Value int
	Label string
}

// LikertOptions is the standard six-point scale. Values run 1..6 where 6 is
// strongly agree.
var LikertOptions = []LikertOption{
	{Value: 1, Label: "Strongly disagree"},
	{Value: 2, Label: "Disagree"},
	{Value: 3, Label: "Somewhat disagree"},
	{Value: 4, Label: "Somewhat agree"},
	{Value: 5, Label: "Agree"},
	{Value: 6, Label: "Strongly agree"},
}
