package ml

import "github.com/Wasim1024/spamDetectionApp/internal/core"

// Sample is one labeled training text
type Sample struct {
	Text  string
	Label core.Label
}

// Corpus returns the built-in labeled training set
func Corpus() []Sample {
	out := make([]Sample, 0, len(spamTexts)+len(hamTexts))
	for _, t := range spamTexts {
		out = append(out, Sample{Text: t, Label: core.LabelSpam})
	}
	for _, t := range hamTexts {
		out = append(out, Sample{Text: t, Label: core.LabelHam})
	}
	return out
}

var spamTexts = []string{
	"URGENT! You have won $1000000! Click here now to claim your prize!",
	"LIMITED TIME OFFER! Buy now and get 90% discount! No credit check required!",
	"FREE MONEY! Click this link immediately! Act now before it expires!",
	"CONGRATULATIONS! You are the 1000th visitor! Claim your iPhone now!",
	"MAKE $5000 WEEKLY! Work from home! No experience needed!",
	"URGENT: Your account will be suspended! Click here to verify immediately!",
	"WIN BIG! Casino online! 200% bonus! Play now!",
	"WEIGHT LOSS MIRACLE! Lose 30 pounds in 10 days! Order now!",
	"CHEAP VIAGRA! CIALIS! No prescription needed! Buy online now!",
	"DEBT CONSOLIDATION! Reduce payments by 80%! Call now!",
	"GET RICH QUICK! Investment opportunity! 500% returns guaranteed!",
	"HOT SINGLES in your area want to meet you! Click here!",
	"AMAZING DEAL! Designer watches 95% off! Limited stock!",
	"CREDIT REPAIR! Bad credit? No problem! Instant approval!",
	"MILLION DOLLAR LOTTERY! You won! Send details to claim!",
	"FREE GIFT CARD! $500 Amazon voucher! Claim now!",
	"URGENT SECURITY ALERT! Click to secure your account!",
	"LOSE WEIGHT FAST! No diet, no exercise! Buy pills now!",
	"WORK FROM HOME! $200 per hour! No experience! Start today!",
	"CLICK HERE TO CLAIM YOUR PRIZE! Limited time offer!",
}

var hamTexts = []string{
	"Hi there! Hope you're having a great day. Would you like to grab coffee this weekend?",
	"Thank you for your email. I'll get back to you by tomorrow morning.",
	"The meeting has been rescheduled to 3 PM. Please confirm your attendance.",
	"Happy birthday! Hope you have a wonderful celebration today.",
	"Could you please send me the report when you have a moment?",
	"The weather is beautiful today. Perfect for a walk in the park.",
	"I really enjoyed our conversation yesterday. Let's continue it soon.",
	"The new restaurant downtown has excellent reviews. Want to try it?",
	"Please remember to submit your timesheet by Friday.",
	"Thank you for the recommendation. I'll definitely check it out.",
	"The project deadline has been extended by one week.",
	"I hope you feel better soon. Take care of yourself.",
	"The book you mentioned sounds interesting. I'll look for it.",
	"Thanks for helping me with the presentation yesterday.",
	"The traffic was terrible this morning. I barely made it on time.",
	"Would you like to join us for lunch at 12:30?",
	"The conference was very informative. I learned a lot.",
	"Please let me know if you need any assistance with the project.",
	"I appreciate your patience while we resolve this issue.",
	"The team meeting went well. We made good progress.",
	"How was your vacation? I'd love to hear about it.",
	"The quarterly report is due next Monday.",
	"I'll be out of office tomorrow for a doctor's appointment.",
	"Could we reschedule our call to next week?",
	"The presentation slides look great. Well done!",
}
