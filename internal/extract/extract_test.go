package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabeledField(t *testing.T) {
	text := "Here is what I found:\n" +
		"Description: A cloud infrastructure company.\n" +
		"Industry: Technology\n" +
		"Size: about 500 employees\n" +
		"Website: https://example.com\n"

	assert.Equal(t, "A cloud infrastructure company.", LabeledField(text, "description"))
	assert.Equal(t, "Technology", LabeledField(text, "industry"))
	assert.Equal(t, "about 500 employees", LabeledField(text, "size"))
	assert.Equal(t, "https://example.com", LabeledField(text, "website"))
}

func TestLabeledField_AbsentLabel(t *testing.T) {
	assert.Empty(t, LabeledField("nothing relevant here", "industry"))
	assert.Empty(t, LabeledField("", "industry"))
}

func TestLabeledField_FirstMatchWins(t *testing.T) {
	text := "Industry: Fintech\nIndustry: Healthcare"
	assert.Equal(t, "Fintech", LabeledField(text, "industry"))
}

func TestLabeledField_LabelWithoutColonIgnored(t *testing.T) {
	text := "the industry is growing\nIndustry: Robotics"
	assert.Equal(t, "Robotics", LabeledField(text, "industry"))
}

func TestQuestions_StripsMarkersAndCaps(t *testing.T) {
	text := strings.Join([]string{
		"Here are some questions:",
		"1. What are your long-term career goals?",
		"2. Which industries interest you the most?",
		"- What would your colleagues say is your biggest strength?",
		"* What kind of work environment do you thrive in?",
		"Q: What accomplishment are you most proud of?",
		"Question: What skills would you like to develop next year?",
		"no question mark on this line",
	}, "\n")

	questions := Questions(text)
	require.Len(t, questions, MaxQuestions)
	assert.Equal(t, "What are your long-term career goals?", questions[0])
	assert.Equal(t, "Which industries interest you the most?", questions[1])
	assert.Equal(t, "What accomplishment are you most proud of?", questions[4])
}

func TestQuestions_Properties(t *testing.T) {
	inputs := []string{
		"",
		"Why?",
		"1. Ok?\n2. No?\n3. Too short?",
		strings.Repeat("What is your favorite programming language?\n", 20),
		"text with no questions at all\nstill nothing",
	}

	for _, input := range inputs {
		questions := Questions(input)
		assert.LessOrEqual(t, len(questions), MaxQuestions)
		for _, q := range questions {
			assert.GreaterOrEqual(t, len(q), 11)
			assert.Contains(t, q, "?")
		}
	}
}

func TestQuestions_ShortCandidatesDiscarded(t *testing.T) {
	assert.Empty(t, Questions("- Why?\n* How so?"))
}

func TestSplitSubjectBody_WithMarkers(t *testing.T) {
	subject, body := SplitSubjectBody("Subject: Hello\nBody: Hi there\nGood luck")
	assert.Equal(t, "Hello", subject)
	assert.Equal(t, "Hi there\nGood luck", body)
}

func TestSplitSubjectBody_NoMarkers(t *testing.T) {
	subject, body := SplitSubjectBody("Just a line\nNo markers here")
	assert.Equal(t, "Just a line", subject)
	assert.Equal(t, "No markers here", body)
}

func TestSplitSubjectBody_EmptyBodyMarkerLine(t *testing.T) {
	subject, body := SplitSubjectBody("Subject: Quick question\nBody:\nFirst line\n\nSecond line\n")
	assert.Equal(t, "Quick question", subject)
	assert.Equal(t, "First line\n\nSecond line", body)
}

func TestSplitSubjectBody_FallbackSubject(t *testing.T) {
	subject, body := SplitSubjectBody("To whom it may concern: I am writing about the role")
	assert.Equal(t, FallbackSubject, subject)
	assert.NotEmpty(t, body)
}

func TestSplitSubjectBody_CaseInsensitiveMarkers(t *testing.T) {
	subject, body := SplitSubjectBody("SUBJECT: Loud subject\nBODY: loud body")
	assert.Equal(t, "Loud subject", subject)
	assert.Equal(t, "loud body", body)
}

func TestProfileDelta_InterestTrigger(t *testing.T) {
	delta := ProfileDelta("I'm really passionate about climate tech")
	require.Len(t, delta.Interests, 1)
	assert.Equal(t, "I'm really passionate about climate tech", delta.Interests[0])
	assert.Empty(t, delta.CareerGoalNotes)
}

func TestProfileDelta_GoalTrigger(t *testing.T) {
	delta := ProfileDelta("my goal is to move into product management")
	assert.Empty(t, delta.Interests)
	assert.Equal(t, "my goal is to move into product management", delta.CareerGoalNotes)
}

func TestProfileDelta_BothTriggers(t *testing.T) {
	delta := ProfileDelta("I want to work on things I find interesting")
	assert.NotEmpty(t, delta.Interests)
	assert.NotEmpty(t, delta.CareerGoalNotes)
}

func TestProfileDelta_NoTrigger(t *testing.T) {
	delta := ProfileDelta("The weather is nice today")
	assert.True(t, delta.IsEmpty())
}

func TestProfileDelta_Bounded(t *testing.T) {
	long := "my goal and interest: " + strings.Repeat("x", 500)
	delta := ProfileDelta(long)
	require.Len(t, delta.Interests, 1)
	assert.Len(t, delta.Interests[0], maxInterestChars)
	assert.Len(t, delta.CareerGoalNotes, maxGoalChars)
}

func TestKeyPeople_DanglingRecordDropped(t *testing.T) {
	text := "Name: Jane Doe\nTitle: CTO\nLinkedIn: example.com/jane\nName: John\n"

	people := KeyPeople(text, 5)
	require.Len(t, people, 1)
	assert.Equal(t, "Jane Doe", people[0].Name)
	assert.Equal(t, "CTO", people[0].Title)
	assert.Equal(t, "example.com/jane", people[0].LinkedInURL)
}

func TestKeyPeople_RoleAliasAndCap(t *testing.T) {
	var sb strings.Builder
	names := []string{"Ada", "Grace", "Alan", "Edsger", "Barbara", "Donald", "Ken"}
	for _, name := range names {
		sb.WriteString("Name: " + name + "\nRole: Engineer\n")
	}

	people := KeyPeople(sb.String(), 5)
	require.Len(t, people, 5)
	assert.Equal(t, "Ada", people[0].Name)
	assert.Equal(t, "Engineer", people[0].Title)
	assert.Equal(t, "Barbara", people[4].Name)
}

func TestKeyPeople_NoRecords(t *testing.T) {
	assert.Empty(t, KeyPeople("nobody mentioned here", 5))
	assert.Empty(t, KeyPeople("", 5))
}
