// internal/content/replies.go
package content

// KeywordLinks maps reply keywords to their reference videos. Keywords work
// from any program state and never change recipient state.
var KeywordLinks = map[string]string{
	"weigh":       "https://player.vimeo.com/video/1089266849?h=7446194ba0",
	"zones":       "https://player.vimeo.com/video/1089266852?h=0c16902790",
	"medications": "https://player.vimeo.com/video/1089266845?h=448e530dc7",
	"diet":        "https://player.vimeo.com/video/1089266841?h=e4970fec34",
	"easy":        "https://player.vimeo.com/video/1085926835?h=512000206a",
	"moderate":    "https://player.vimeo.com/video/1085926902?h=3933a7db91",
	"hard":        "https://player.vimeo.com/video/1085926858?h=a644fe78de",

	"dailycheckup":   "https://vimeo.com/1085788283/cb810c1e89?ts=0&share=copy",
	"symptomtracker": "https://vimeo.com/1085787644/a6a0850eba?ts=0&share=copy",
}

const (
	// WelcomeMessage and TermsMessage are the two-part sequence sent when a
	// coaching recipient is enrolled.
	WelcomeMessage = "Welcome to Luxe Home Health's Heart Health Messaging Program! Your dedication to your health is inspiring! We look forward to assisting you with managing your Heart Health."
	TermsMessage   = "Agree and continue message - Please review our terms and conditions: https://hfmessages.luxehh.com/terms Reply YES to Accept and Agree to our terms and conditions or STOP to opt out."

	// CompletionPrompt goes out once, with the day-30 evening message.
	CompletionPrompt = "🎉 Congratulations on completing your 30-day journey with Luxe Home Health!\nWould you like to continue? Please reply YES or NO."

	// ClosingMessage is the implicit-No message sent by the timeout sweep.
	ClosingMessage = "Thank you for participating in our 30-day heart health program. We've concluded your program as we haven't heard back from you. If you'd like to restart at any time, please contact Luxe Home Health. Take care! ❤️"

	// RestartAck confirms a YES reply to the completion prompt.
	RestartAck = "Great! Your 30-day program has been restarted from Day 1. You'll receive your first message shortly."

	// UnsubscribeAck answers NO and STOP replies.
	UnsubscribeAck = "No problem! You've been unsubscribed from further messages."

	// NotRecognized answers inbound texts from unknown numbers.
	NotRecognized = "Sorry, you're not recognized in our system."

	// KeywordMenu answers unrecognized coaching replies.
	KeywordMenu = "You've entered a keyword that isn't recognized.\n\nPlease use one of the following valid keywords to access easy-to-follow videos on important Heart Health topics:\n- Weigh\n- Zones\n- Medications\n- Exercise\n  1. Easy\n  2. Moderate\n  3. Hard\n- Diet\n\nTry sending one of these keywords to begin!"

	// NewsletterWelcome is sent when a newsletter recipient is enrolled.
	NewsletterWelcome = "Congratulations, {first_name}! You've successfully subscribed to the Luxe Home Health newsletter. 🎉"

	// NewsletterBodyTemplate wraps each monthly newsletter link.
	NewsletterBodyTemplate = "Hello {first_name}! 📰\n\nHere's your Newsletter #{order_number} from Luxe Home Health.\n\n{template_link}\n\nStay healthy and informed! 💙"

	// ResubscriptionPrompt goes out in the 13th month, renewals are handled
	// by the newsletter reply webhook.
	ResubscriptionPrompt = "Hello {first_name}!\n\nYou've completed all 12 newsletters from Luxe Home Health.\n\nWould you like to continue receiving our monthly newsletters?\n\nReply to this message:\nYES - To renew and receive 12 more newsletters.\nNO - To cancel your subscription.\n\nYour subscription will be automatically cancelled if we don't hear from you.\n\nThank you for being with us!"

	// RenewalAck and CancelAck answer newsletter YES/NO replies.
	RenewalAck = "Welcome back, {first_name}! Your newsletter subscription has been renewed for 12 more months. 🎉"
	CancelAck  = "Your newsletter subscription has been cancelled. Thank you for being with us, {first_name}!"

	// RenewCancelMenu answers unrecognized newsletter replies.
	RenewCancelMenu = "Reply YES to renew your Luxe Home Health newsletter subscription or NO to cancel it."
)

// OnboardingSequence is the multi-part burst sent when an inactive coaching
// recipient replies YES. {start_date} is filled in by the reply router; the
// parts are spaced by a fixed delay and sent asynchronously.
var OnboardingSequence = []string{
	"Great your 30 day Messaging program has been started. You will receive your messages from {start_date}. You can opt out at anytime by texting the word STOP.",
	"Watch this short introduction video: https://player.vimeo.com/video/1089266834?h=b766e29cbb",
	"Luxe Home Health Teams – Contact Us:\n\nIllinois:\n📞 (847) 588-2111\n📧 info@luxehh.com\n\nIndiana:\n📞 (219) 837-0401\n📧 info.in@luxehh.com\n\nMissouri/Kansas:\n📞 (816) 653-5003\n📧 info.mo@luxehh.com",
	"This program is designed to provide you with education and information on how to manage heart health.\n\nThese are the keywords you can use anytime to learn a bit more about managing your Heart Health. It will give you easy-to-follow videos on topics important for a Healthy Heart:\n- Weigh\n- Zones\n- Medications\n- Diet\n For Exercise:\n  • Easy\n  • Moderate\n  • Hard",
}
