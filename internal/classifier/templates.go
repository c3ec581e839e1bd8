// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package classifier

// answerTemplates maps each category to its canned answer. Static
// templates, not generated text.
var answerTemplates = map[string]string{
	"coding": "Let's break this down step by step. First, check the error message and " +
		"isolate the smallest piece of code that reproduces the problem. Add a print or " +
		"breakpoint before the failing line, confirm your inputs are what you expect, " +
		"then work outward until the behavior matches your mental model.",
	"writing": "Start with a one-sentence summary of what you want the reader to take " +
		"away. Draft freely without editing, then cut anything that does not serve that " +
		"sentence. Read the result aloud — awkward rhythm usually marks unclear thinking.",
	"marketing": "Define the single audience this is for and the one action you want " +
		"them to take. Lead with the benefit, not the feature, and close with a clear " +
		"call to action. Measure one metric per campaign so you know what moved it.",
	"business": "Frame the decision as a question with two or three concrete options. " +
		"For each, note the cost, the upside, and the reversibility. Pick the cheapest " +
		"reversible experiment that gives you real information.",
	"creative": "Begin by listing ten ideas without judging any of them — the first " +
		"few are usually obvious, and the interesting ones show up after. Combine two " +
		"unrelated entries from the list and see what the collision suggests.",
	"education": "Explain the concept as if to someone smart but unfamiliar with the " +
		"field. Start from something they already know, build one step at a time, and " +
		"finish with a small exercise that tests whether the idea actually landed.",
}

// defaultTemplate is used when a category has no canned answer.
const defaultTemplate = "Here's a structured approach: clarify what you're actually " +
	"asking, gather what you already know, identify the gap, and take the smallest " +
	"step that closes it. Revisit and refine once you've seen the first result."

// AnswerTemplate returns the canned answer for a category, falling back
// to the default template for unmatched categories.
func AnswerTemplate(category string) string {
	if t, ok := answerTemplates[category]; ok {
		return t
	}
	return defaultTemplate
}
