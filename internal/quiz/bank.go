package quiz

import (
	"github.com/Quadmor009/Design-Gym/internal/models"
)

// FoxQuote is the pangram rendered in both typefaces on font questions.
const FoxQuote = "The quick brown fox jumps over the lazy dog."

// Bank is an immutable collection of questions partitioned by level.
type Bank struct {
	byLevel map[models.Level][]models.Question
	byID    map[int]models.Question
}

// NewBank builds a bank from a question list.
func NewBank(questions []models.Question) *Bank {
	b := &Bank{
		byLevel: make(map[models.Level][]models.Question),
		byID:    make(map[int]models.Question),
	}
	for _, q := range questions {
		b.byLevel[q.Level] = append(b.byLevel[q.Level], q)
		b.byID[q.ID] = q
	}
	return b
}

// QuestionsForLevel returns all questions of the given level.
func (b *Bank) QuestionsForLevel(level models.Level) []models.Question {
	return b.byLevel[level]
}

// QuestionByID looks up a question by its identifier.
func (b *Bank) QuestionByID(id int) (models.Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// SeededBank returns the static question bank.
func SeededBank() *Bank {
	return NewBank(seededQuestions())
}

func seededQuestions() []models.Question {
	return []models.Question{
		// Beginner — fundamentals of contrast, alignment, spacing, hierarchy
		{
			ID: 1, Level: models.LevelBeginner, Category: models.CategoryInterfaceComparison,
			Question:      "Which button design has better visual contrast?",
			PromptContext: "A user needs to identify the primary action on a form.",
			LeftImage:     "https://picsum.photos/seed/beginner-01-left/400/300",
			RightImage:    "https://picsum.photos/seed/beginner-01-right/400/300",
			CorrectAnswer: models.SideRight,
			PrinciplesTested: []string{"contrast", "visual hierarchy"},
			Explanation:   "The right option uses higher contrast between the button and background, making it easier to distinguish as the primary action. Strong contrast is essential for accessibility and visual clarity.",
		},
		{
			ID: 2, Level: models.LevelBeginner, Category: models.CategoryInterfaceComparison,
			Question:      "Which layout has better text alignment?",
			PromptContext: "Comparing two text-heavy interfaces for readability.",
			LeftImage:     "https://picsum.photos/seed/beginner-02-left/400/300",
			RightImage:    "https://picsum.photos/seed/beginner-02-right/400/300",
			CorrectAnswer: models.SideLeft,
			PrinciplesTested: []string{"alignment", "readability"},
			Explanation:   "The left option shows consistent alignment with text properly left-aligned and elements aligned to a grid. Poor alignment creates visual chaos and reduces readability.",
		},
		{
			ID: 3, Level: models.LevelBeginner, Category: models.CategoryInterfaceComparison,
			Question:      "Which interface uses spacing more effectively?",
			PromptContext: "Evaluating white space usage in a dashboard layout.",
			LeftImage:     "https://picsum.photos/seed/beginner-03-left/400/300",
			RightImage:    "https://picsum.photos/seed/beginner-03-right/400/300",
			CorrectAnswer: models.SideRight,
			PrinciplesTested: []string{"spacing", "visual hierarchy"},
			Explanation:   "The right option provides adequate spacing between elements, making the interface easier to scan and reducing visual clutter. Proper spacing is fundamental to good design.",
		},
		{
			ID: 4, Level: models.LevelBeginner, Category: models.CategoryFontIdentification,
			Question:      "Which typeface belongs to the serif family?",
			LeftFont:      "'Arial', sans-serif",
			RightFont:     "'Times New Roman', serif",
			CorrectAnswer: models.SideRight,
			PrinciplesTested: []string{"typography fundamentals"},
			Explanation:   "Times New Roman is a serif typeface, characterized by small decorative strokes (serifs) at the ends of letters. Arial is a sans-serif typeface without these decorative elements.",
		},
		{
			ID: 5, Level: models.LevelBeginner, Category: models.CategoryInterfaceComparison,
			Question:      "Which design has clearer visual hierarchy?",
			PromptContext: "A landing page needs to guide users to the main call-to-action.",
			LeftImage:     "https://picsum.photos/seed/beginner-05-left/400/300",
			RightImage:    "https://picsum.photos/seed/beginner-05-right/400/300",
			CorrectAnswer: models.SideRight,
			PrinciplesTested: []string{"visual hierarchy", "readability"},
			Explanation:   "The right option establishes clear hierarchy through size, weight, and positioning. The most important element is most prominent, guiding the user's attention effectively.",
		},
		{
			ID: 6, Level: models.LevelBeginner, Category: models.CategoryInterfaceComparison,
			Question:      "Which interface distinguishes primary from secondary actions better?",
			PromptContext: "A form with multiple action buttons.",
			LeftImage:     "https://picsum.photos/seed/beginner-06-left/400/300",
			RightImage:    "https://picsum.photos/seed/beginner-06-right/400/300",
			CorrectAnswer: models.SideRight,
			PrinciplesTested: []string{"primary vs secondary actions", "visual hierarchy"},
			Explanation:   "The right option clearly differentiates the primary action through size, color, and styling, while secondary actions are visually de-emphasized. This prevents user confusion.",
		},
		{
			ID: 7, Level: models.LevelBeginner, Category: models.CategoryInterfaceComparison,
			Question:      "Which text has better readability?",
			PromptContext: "Body text in a blog post interface.",
			LeftImage:     "https://picsum.photos/seed/beginner-07-left/400/300",
			RightImage:    "https://picsum.photos/seed/beginner-07-right/400/300",
			CorrectAnswer: models.SideLeft,
			PrinciplesTested: []string{"readability", "contrast"},
			Explanation:   "The left option uses appropriate font size, line height, and contrast for body text. The text is easy to read and doesn't strain the eyes, which is essential for content consumption.",
		},
		{
			ID: 8, Level: models.LevelBeginner, Category: models.CategoryFontIdentification,
			Question:      "Which typeface is Poppins?",
			LeftFont:      "'Helvetica', sans-serif",
			RightFont:     "'Poppins', sans-serif",
			CorrectAnswer: models.SideRight,
			PrinciplesTested: []string{"typography fundamentals"},
			Explanation:   "Poppins is a geometric sans-serif typeface designed by Indian Type Foundry. It features rounded letterforms and is widely used in modern web design.",
		},
		{
			ID: 9, Level: models.LevelBeginner, Category: models.CategoryInterfaceComparison,
			Question:      "Which layout has better element alignment?",
			PromptContext: "A card-based interface showing product information.",
			LeftImage:     "https://picsum.photos/seed/beginner-09-left/400/300",
			RightImage:    "https://picsum.photos/seed/beginner-09-right/400/300",
			CorrectAnswer: models.SideLeft,
			PrinciplesTested: []string{"alignment", "consistency"},
			Explanation:   "The left option aligns card contents to a consistent grid so the eye can scan rows and columns without friction. Misaligned elements force the reader to re-orient on every card.",
		},
		{
			ID: 10, Level: models.LevelBeginner, Category: models.CategoryInterfaceComparison,
			Question:      "Which interface makes its interactive elements more obvious?",
			PromptContext: "A settings page mixing labels, values, and controls.",
			LeftImage:     "https://picsum.photos/seed/beginner-10-left/400/300",
			RightImage:    "https://picsum.photos/seed/beginner-10-right/400/300",
			CorrectAnswer: models.SideRight,
			PrinciplesTested: []string{"affordance", "contrast"},
			Explanation:   "The right option styles interactive controls distinctly from static text, signaling what can be clicked. Weak affordances make users guess which elements respond to input.",
		},

		// Mid — density, progressive disclosure, cognitive load
		{
			ID: 11, Level: models.LevelMid, Category: models.CategoryInterfaceComparison,
			Question:      "Which interface better supports a returning user completing a task quickly?",
			PromptContext: "A dashboard used daily by experienced users who need efficiency.",
			LeftImage:     "https://picsum.photos/seed/mid-01-left/400/300",
			RightImage:    "https://picsum.photos/seed/mid-01-right/400/300",
			CorrectAnswer: models.SideLeft,
			PrinciplesTested: []string{"information density", "cognitive load", "contextual hierarchy"},
			Explanation:   "The left option provides more information density and shortcuts that experienced users need. While it may seem cluttered to beginners, it reduces clicks for power users who have learned the interface.",
		},
		{
			ID: 12, Level: models.LevelMid, Category: models.CategoryInterfaceComparison,
			Question:      "Which design better handles progressive disclosure for a complex feature?",
			PromptContext: "A settings panel with many configuration options.",
			LeftImage:     "https://picsum.photos/seed/mid-02-left/400/300",
			RightImage:    "https://picsum.photos/seed/mid-02-right/400/300",
			CorrectAnswer: models.SideRight,
			PrinciplesTested: []string{"progressive disclosure", "cognitive load", "information architecture"},
			Explanation:   "The right option uses progressive disclosure to show only relevant options initially, with expandable sections for advanced settings. This reduces initial cognitive load while still providing access to all features.",
		},
		{
			ID: 13, Level: models.LevelMid, Category: models.CategoryInterfaceComparison,
			Question:      "Which interface handles an empty state more helpfully?",
			PromptContext: "A project list shown to a brand-new user with no data yet.",
			LeftImage:     "https://picsum.photos/seed/mid-03-left/400/300",
			RightImage:    "https://picsum.photos/seed/mid-03-right/400/300",
			CorrectAnswer: models.SideRight,
			PrinciplesTested: []string{"empty states", "onboarding", "affordance"},
			Explanation:   "The right option turns the empty state into guidance, explaining what belongs here and offering the next action. A blank region leaves new users without a path forward.",
		},
		{
			ID: 14, Level: models.LevelMid, Category: models.CategoryInterfaceComparison,
			Question:      "Which notification approach balances consistency and emphasis better?",
			PromptContext: "A notification system that must be consistent but also draw attention when needed.",
			LeftImage:     "https://picsum.photos/seed/mid-04-left/400/300",
			RightImage:    "https://picsum.photos/seed/mid-04-right/400/300",
			CorrectAnswer: models.SideLeft,
			PrinciplesTested: []string{"consistency vs emphasis", "contextual hierarchy"},
			Explanation:   "The left option maintains visual consistency while using strategic emphasis only when truly important. Consistency helps users learn patterns, but selective emphasis ensures critical information isn't missed.",
		},
		{
			ID: 15, Level: models.LevelMid, Category: models.CategoryFontIdentification,
			Question:      "Which typeface belongs to the serif family?",
			LeftFont:      "'Verdana', sans-serif",
			RightFont:     "'Georgia', serif",
			CorrectAnswer: models.SideRight,
			PrinciplesTested: []string{"typography fundamentals"},
			Explanation:   "Georgia is a serif typeface designed specifically for screen readability, featuring serifs on its letterforms. Verdana is a sans-serif typeface without serifs.",
		},
		{
			ID: 16, Level: models.LevelMid, Category: models.CategoryInterfaceComparison,
			Question:      "Which layout better manages cognitive load for a multi-step process?",
			PromptContext: "A checkout flow with multiple steps that must feel manageable.",
			LeftImage:     "https://picsum.photos/seed/mid-06-left/400/300",
			RightImage:    "https://picsum.photos/seed/mid-06-right/400/300",
			CorrectAnswer: models.SideRight,
			PrinciplesTested: []string{"cognitive load", "progressive disclosure", "information architecture"},
			Explanation:   "The right option breaks the process into clear, manageable steps with visual progress indicators. This reduces cognitive load by letting users focus on one step at a time rather than overwhelming them with all information upfront.",
		},
		{
			ID: 17, Level: models.LevelMid, Category: models.CategoryInterfaceComparison,
			Question:      "Which error presentation helps the user recover faster?",
			PromptContext: "A form submission that failed validation on two fields.",
			LeftImage:     "https://picsum.photos/seed/mid-07-left/400/300",
			RightImage:    "https://picsum.photos/seed/mid-07-right/400/300",
			CorrectAnswer: models.SideLeft,
			PrinciplesTested: []string{"error handling", "proximity", "readability"},
			Explanation:   "The left option places each error message next to the field it concerns and states how to fix it. A single generic banner forces the user to hunt for the offending fields.",
		},
		{
			ID: 18, Level: models.LevelMid, Category: models.CategoryFontIdentification,
			Question:      "Which typeface is a monospaced design?",
			LeftFont:      "'JetBrains Mono', monospace",
			RightFont:     "'Inter', sans-serif",
			CorrectAnswer: models.SideLeft,
			PrinciplesTested: []string{"typography fundamentals"},
			Explanation:   "JetBrains Mono gives every glyph the same advance width, which keeps columns of code aligned. Inter is a proportional sans-serif tuned for interface text, not tabular alignment.",
		},
		{
			ID: 19, Level: models.LevelMid, Category: models.CategoryInterfaceComparison,
			Question:      "Which navigation better communicates where the user currently is?",
			PromptContext: "A multi-section application with deep navigation.",
			LeftImage:     "https://picsum.photos/seed/mid-09-left/400/300",
			RightImage:    "https://picsum.photos/seed/mid-09-right/400/300",
			CorrectAnswer: models.SideRight,
			PrinciplesTested: []string{"wayfinding", "contextual hierarchy", "consistency"},
			Explanation:   "The right option marks the active section and shows the path that led there, so users always know their location. Navigation without a current-state indicator forces users to reconstruct context from memory.",
		},
		{
			ID: 20, Level: models.LevelMid, Category: models.CategoryInterfaceComparison,
			Question:      "Which design better balances simplicity with necessary functionality?",
			PromptContext: "An interface that must be simple but also powerful for advanced use cases.",
			LeftImage:     "https://picsum.photos/seed/mid-10-left/400/300",
			RightImage:    "https://picsum.photos/seed/mid-10-right/400/300",
			CorrectAnswer: models.SideLeft,
			PrinciplesTested: []string{"progressive disclosure", "consistency vs emphasis", "usability"},
			Explanation:   "The left option maintains a simple default interface while providing access to advanced features through progressive disclosure. This approach serves both beginners and power users better than trying to show everything at once or hiding functionality.",
		},
	}
}
