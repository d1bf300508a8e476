package notify

import (
	"fmt"
	"strings"
)

type emailTemplate struct {
	Subject string
	Body    string
}

// templates are keyed by notification message key. Placeholders use the
// message params plus {{link}}.
var templates = map[string]emailTemplate{
	"adminNewProject": {
		Subject: "New project awaiting approval",
		Body:    "A homeowner submitted a new project. Review it at {{link}}",
	},
	"installerNewLead": {
		Subject: "New lead in {{city}}",
		Body:    "A new solar project in {{city}} is open for quotes: {{link}}",
	},
	"installerContactShared": {
		Subject: "{{homeownerName}} shared their contact details",
		Body:    "{{homeownerName}} would like to hear from you. Their details are at {{link}}",
	},
	"homeownerNewQuote": {
		Subject: "New quote from {{installerName}}",
		Body:    "{{installerName}} sent you a quote. Compare it at {{link}}",
	},
	"homeownerQuoteRevised": {
		Subject: "{{installerName}} revised their quote",
		Body:    "{{installerName}} updated their quote. See the new figures at {{link}}",
	},
	"adminDealSigned": {
		Subject: "Deal signed with {{installerName}}",
		Body:    "{{installerName}} signed a deal for {{finalPrice}}. Commission is pending at {{link}}",
	},
	"installerDealWon": {
		Subject: "You won the deal with {{homeownerName}}",
		Body:    "Congratulations, {{homeownerName}} signed with you. Details at {{link}}",
	},
	"installerNewReview": {
		Subject: "{{homeownerName}} left you a review",
		Body:    "{{homeownerName}} reviewed your work. Read it at {{link}}",
	},
}

var fallbackTemplate = emailTemplate{
	Subject: "You have a new notification",
	Body:    "Open {{link}} to see it.",
}

func render(tmpl string, data map[string]any) string {
	result := tmpl
	for k, v := range data {
		value := ""
		switch tv := v.(type) {
		case string:
			value = tv
		case float64:
			value = fmt.Sprintf("$%.2f", tv)
		case nil:
		default:
			value = fmt.Sprintf("%v", tv)
		}
		result = strings.ReplaceAll(result, "{{"+k+"}}", value)
	}

	// unknown placeholders render as empty
	for {
		start := strings.Index(result, "{{")
		if start == -1 {
			break
		}
		end := strings.Index(result[start:], "}}")
		if end == -1 {
			break
		}
		result = result[:start] + result[start+end+2:]
	}
	return result
}
