package training

// Static training catalog driving the client-side practice UI. Content
// only; all session state lives with the caller.
var catalog = []Module{
	{
		ID:          "sourcing-basics",
		Title:       "Sourcing Basics",
		Description: "Reading profiles quickly and deciding who is worth a conversation.",
		Difficulty:  "beginner",
		Scenarios: []Scenario{
			{
				ID:       "sb-1",
				Question: "A candidate lists 8 years of backend experience but their last two roles were 6 months each. What is the best first step?",
				Options: []string{
					"Reject immediately, short stints are a red flag",
					"Look at the context: contract work, layoffs and startups failing are common",
					"Ask them to explain themselves in the first outreach message",
					"Ignore tenure entirely",
				},
				CorrectAnswer: 1,
				Feedback:      "Short tenure has many benign explanations. Judge the pattern with context before judging the person.",
				Tips:          []string{"Check whether the short roles were contracts", "Layoff waves cluster by year"},
			},
			{
				ID:       "sb-2",
				Question: "Which profile signal best predicts fit for a senior platform role?",
				Options: []string{
					"Prestigious university",
					"Number of programming languages listed",
					"Evidence of owning systems end to end across releases",
					"An active blog",
				},
				CorrectAnswer: 2,
				Feedback:      "Ownership across the lifecycle is the strongest signal of seniority; credentials and breadth lists are weak proxies.",
				TimeLimitSec:  60,
			},
			{
				ID:       "sb-3",
				Question: "You have 30 profiles and 30 minutes. What do you do?",
				Options: []string{
					"Deep-read each one for one minute",
					"Two-pass triage: fast yes/no/maybe sweep, then deep-read the maybes",
					"Read them alphabetically until time runs out",
					"Outsource the decision to keyword search",
				},
				CorrectAnswer: 1,
				Feedback:      "A fast sweep spends your deep attention only where the decision is genuinely uncertain.",
				Hint:          "Think about where extra reading changes the outcome.",
			},
		},
	},
	{
		ID:          "interview-technique",
		Title:       "Interview Technique",
		Description: "Running structured interviews that produce comparable evidence.",
		Difficulty:  "intermediate",
		Scenarios: []Scenario{
			{
				ID:       "it-1",
				Question: "A candidate gives a vague answer about 'improving performance by a lot'. What is the best follow-up?",
				Options: []string{
					"Move on, not every answer needs detail",
					"Ask for the baseline, the measurement and their specific contribution",
					"Tell them the answer was vague",
					"Switch to a different topic to keep rapport",
				},
				CorrectAnswer: 1,
				Feedback:      "Behavioral probes need anchors: before/after numbers and the candidate's own role in the change.",
				Tips:          []string{"STAR works when you insist on the R"},
			},
			{
				ID:       "it-2",
				Question: "When should you share your hiring-decision rubric with the interview panel?",
				Options: []string{
					"After the debrief, to avoid biasing anyone",
					"Before the interviews, so everyone gathers evidence against the same criteria",
					"Never, rubrics constrain judgment",
					"Only with the most senior interviewer",
				},
				CorrectAnswer: 1,
				Feedback:      "Structured interviews outperform unstructured ones precisely because criteria are fixed in advance.",
				TimeLimitSec:  45,
			},
			{
				ID:       "it-3",
				Question: "A panel member says 'I just didn't click with them'. How do you treat this in the debrief?",
				Options: []string{
					"Weight it heavily, chemistry matters",
					"Ask them to translate it into observed evidence or set it aside",
					"Overrule them publicly",
					"Average it with the other scores",
				},
				CorrectAnswer: 1,
				Feedback:      "Unanchored gut feel is where bias hides. Evidence or it does not count.",
			},
			{
				ID:       "it-4",
				Question: "The candidate freezes on a whiteboard question. Best response?",
				Options: []string{
					"Wait silently until the clock runs out",
					"Offer a small hint and note how they use it",
					"End the interview early",
					"Switch to trivia questions",
				},
				CorrectAnswer: 1,
				Feedback:      "How a candidate incorporates help is itself signal; a frozen interview yields none.",
				Hint:          "You are measuring problem-solving, not stress tolerance.",
			},
		},
	},
	{
		ID:          "offer-negotiation",
		Title:       "Offer & Negotiation",
		Description: "Closing candidates without burning trust or budget.",
		Difficulty:  "advanced",
		Scenarios: []Scenario{
			{
				ID:       "on-1",
				Question: "Your top candidate has a competing offer 15% above your range. First move?",
				Options: []string{
					"Match it immediately",
					"Understand what they actually value before talking numbers",
					"Withdraw the offer to avoid a bidding war",
					"Tell them the competitor is a bad company",
				},
				CorrectAnswer: 1,
				Feedback:      "Compensation is one axis among several. Scope, growth and flexibility often close gaps money alone cannot.",
				Tips:          []string{"Never disparage a competitor", "Ask what would make this an easy yes"},
			},
			{
				ID:       "on-2",
				Question: "When do you send the written offer?",
				Options: []string{
					"Before any verbal discussion, to look decisive",
					"After a verbal alignment on the package, so the letter confirms rather than negotiates",
					"Only after the candidate resigns from their current job",
					"On the application deadline",
				},
				CorrectAnswer: 1,
				Feedback:      "A written offer that surprises the candidate restarts the negotiation in the worst medium.",
				TimeLimitSec:  45,
			},
			{
				ID:       "on-3",
				Question: "A candidate goes silent for a week after receiving the offer. You should:",
				Options: []string{
					"Rescind the offer for disrespect",
					"Check in once with a clear, friendly deadline and keep your pipeline warm",
					"Email them daily",
					"Assume acceptance",
				},
				CorrectAnswer: 1,
				Feedback:      "Silence usually means deliberation, not rejection. One nudge plus a deadline respects both sides.",
			},
		},
	},
}
