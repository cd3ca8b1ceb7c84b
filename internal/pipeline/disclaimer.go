package pipeline

import (
	"github.com/sanchika-app/sanchika/internal/analysis"
	"github.com/sanchika-app/sanchika/internal/rules"
)

// Disclaimer wordings by dominant risk reason. Health claims outrank
// political content outrank rumors when several reasons are present.
const (
	healthDisclaimer    = "గమనిక: ఇది ఆరోగ్య సలహా కాదు. ఏదైనా చికిత్స లేదా ఆరోగ్య నిర్ణయానికి ముందు తప్పనిసరిగా వైద్యుడిని సంప్రదించండి."
	politicalDisclaimer = "గమనిక: ఇది రాజకీయ పరిణామాలపై వార్తా కథనం మాత్రమే. ఇందులో వ్యక్తమైన అభిప్రాయాలు ఏ పార్టీకో మద్దతుగా కాదు."
	rumorDisclaimer     = "గమనిక: ఈ సమాచారం ఇంకా అధికారికంగా ధృవీకరించబడలేదు. పూర్తి నిర్ధారణ వచ్చే వరకు వేచి చూడాలి."
)

// disclaimerFor picks the disclaimer text for an analyzed item. Empty when
// neither the risk reasons nor the category call for one.
func disclaimerFor(result *analysis.ContentAnalysis) string {
	for _, reason := range result.RiskReasons {
		if reason == analysis.ReasonHealth {
			return healthDisclaimer
		}
	}
	for _, reason := range result.RiskReasons {
		if reason == analysis.ReasonPolitical {
			return politicalDisclaimer
		}
	}
	for _, reason := range result.RiskReasons {
		if reason == analysis.ReasonRumor || reason == analysis.ReasonSensitive {
			return rumorDisclaimer
		}
	}

	if rules.Rules(result.Category).RequireDisclaimer {
		switch result.Category {
		case analysis.CategoryHealth:
			return healthDisclaimer
		case analysis.CategoryPolitics:
			return politicalDisclaimer
		default:
			return rumorDisclaimer
		}
	}

	return ""
}

// applyDisclaimer appends the disclaimer paragraph when one applies.
func applyDisclaimer(body string, result *analysis.ContentAnalysis) string {
	d := disclaimerFor(result)
	if d == "" {
		return body
	}
	return body + "\n\n" + d
}
