package analysis

// Curated detection tables. The numeric weights and thresholds are policy
// constants surfaced through Policy so they can be tuned via configuration
// without touching control flow.

type entityPattern struct {
	phrase string
	name   string
	typ    EntityType
}

// First match wins; more specific phrases precede generic ones.
var entityPatterns = []entityPattern{
	{"pawan kalyan", "Pawan Kalyan", EntityCelebrity},
	{"పవన్ కల్యాణ్", "Pawan Kalyan", EntityCelebrity},
	{"mahesh babu", "Mahesh Babu", EntityCelebrity},
	{"మహేష్ బాబు", "Mahesh Babu", EntityCelebrity},
	{"allu arjun", "Allu Arjun", EntityCelebrity},
	{"అల్లు అర్జున్", "Allu Arjun", EntityCelebrity},
	{"ram charan", "Ram Charan", EntityCelebrity},
	{"రామ్ చరణ్", "Ram Charan", EntityCelebrity},
	{"jr ntr", "Jr NTR", EntityCelebrity},
	{"prabhas", "Prabhas", EntityCelebrity},
	{"ప్రభాస్", "Prabhas", EntityCelebrity},
	{"chiranjeevi", "Chiranjeevi", EntityCelebrity},
	{"చిరంజీవి", "Chiranjeevi", EntityCelebrity},
	{"balakrishna", "Balakrishna", EntityCelebrity},
	{"samantha", "Samantha", EntityCelebrity},
	{"సమంత", "Samantha", EntityCelebrity},
	{"rashmika", "Rashmika Mandanna", EntityCelebrity},
	{"vijay deverakonda", "Vijay Deverakonda", EntityCelebrity},
	{"nani", "Nani", EntityCelebrity},

	{"chandrababu", "Chandrababu Naidu", EntityPolitician},
	{"చంద్రబాబు", "Chandrababu Naidu", EntityPolitician},
	{"jagan", "YS Jagan", EntityPolitician},
	{"జగన్", "YS Jagan", EntityPolitician},
	{"revanth reddy", "Revanth Reddy", EntityPolitician},
	{"kcr", "KCR", EntityPolitician},
	{"ktr", "KTR", EntityPolitician},
	{"modi", "Narendra Modi", EntityPolitician},

	{"pushpa", "Pushpa", EntityMovie},
	{"kalki", "Kalki 2898 AD", EntityMovie},
	{"salaar", "Salaar", EntityMovie},
	{"devara", "Devara", EntityMovie},
	{"rrr", "RRR", EntityMovie},
	{"game changer", "Game Changer", EntityMovie},

	{"ipl", "IPL", EntityEvent},
	{"world cup", "World Cup", EntityEvent},
}

// DefaultEntity is returned when no curated pattern matches.
var DefaultEntity = Entity{Name: "general", Type: EntityTopic, Confidence: 0.5}

var riskPatterns = map[RiskReason][]string{
	ReasonPolitical: {
		"election", "ballot", "political party", "government scam",
		"assembly", "parliament", "minister resign", "vote",
		"ఎన్నికల", "ఓటింగ్", "అసెంబ్లీ", "మంత్రి రాజీనామా",
	},
	ReasonHealth: {
		"miracle cure", "guaranteed cure", "home remedy", "cures cancer",
		"weight loss secret", "doctors hate", "no side effects",
		"శాశ్వతంగా నయం", "పూర్తిగా నయం", "ఇంటి చిట్కా", "అద్భుత ఔషధం",
		"మందులు అవసరం లేద",
	},
	ReasonSensitive: {
		"suicide", "death", "passed away", "accident", "arrest",
		"divorce", "assault", "violence",
		"ఆత్మహత్య", "మరణించ", "మృతి", "ప్రమాదంలో గాయ", "అరెస్ట్", "విడాకుల",
	},
	ReasonRumor: {
		"rumor", "rumour", "allegedly", "sources say", "reportedly",
		"viral claim", "unconfirmed",
		"పుకార్", "వదంతి", "ధృవీకరించని సమాచారం",
	},
}

// riskReasonOrder fixes iteration order so classification stays deterministic.
var riskReasonOrder = []RiskReason{
	ReasonPolitical,
	ReasonHealth,
	ReasonSensitive,
	ReasonRumor,
}

var sentimentPatterns = map[Sentiment][]string{
	SentimentSensitive: {
		"suicide", "death", "passed away", "tragedy", "accident", "arrest",
		"ఆత్మహత్య", "మరణించ", "మృతి", "విషాద",
	},
	SentimentNegative: {
		"flop", "failure", "loss", "criticiz", "controversy", "backlash",
		"disaster", "trouble",
		"వివాదం", "విమర్శ", "ఫ్లాప్", "నష్టం", "బెదిరింప",
	},
	SentimentPositive: {
		"wins", "award", "success", "blockbuster", "hit", "record",
		"celebrat", "milestone", "achievement",
		"విజయ", "అవార్డు", "సంతోష", "శుభాకాంక్షలు", "ప్రశంస", "రికార్డు",
	},
}

// categoryAngles maps each category to its default writing angle.
// High risk overrides every entry to AngleNews.
var categoryAngles = map[Category]Angle{
	CategoryEntertainment: AngleGossip,
	CategoryMovies:        AngleGossip,
	CategoryPolitics:      AngleNews,
	CategorySports:        AngleNews,
	CategoryHealth:        AngleInformative,
	CategoryHumanInterest: AngleEmotional,
	CategoryGeneral:       AngleInformative,
}

var categoryIntents = map[Category]Intent{
	CategoryEntertainment: IntentEntertainment,
	CategoryMovies:        IntentEntertainment,
	CategoryPolitics:      IntentInformation,
	CategorySports:        IntentInformation,
	CategoryHealth:        IntentInformation,
	CategoryHumanInterest: IntentEmotion,
	CategoryGeneral:       IntentInformation,
}

type wordCountKey struct {
	angle Angle
	risk  Risk
}

// Recommended word counts by (angle, risk). Riskier content gets shorter,
// more factual treatment.
var wordCounts = map[wordCountKey]int{
	{AngleNews, RiskLow}:     300,
	{AngleNews, RiskMedium}:  250,
	{AngleNews, RiskHigh}:    200,
	{AngleGossip, RiskLow}:   250,
	{AngleGossip, RiskMedium}: 220,
	{AngleGossip, RiskHigh}:  200,
	{AngleEmotional, RiskLow}:    350,
	{AngleEmotional, RiskMedium}: 300,
	{AngleEmotional, RiskHigh}:   220,
	{AngleNostalgic, RiskLow}:    400,
	{AngleNostalgic, RiskMedium}: 320,
	{AngleNostalgic, RiskHigh}:   250,
	{AngleInformative, RiskLow}:    450,
	{AngleInformative, RiskMedium}: 350,
	{AngleInformative, RiskHigh}:   280,
	{AngleInspirational, RiskLow}:    350,
	{AngleInspirational, RiskMedium}: 300,
	{AngleInspirational, RiskHigh}:   240,
}

const defaultWordCount = 300

var categorySections = map[Category][]SectionType{
	CategoryEntertainment: {SectionHook, SectionContext, SectionEmotion, SectionClosing},
	CategoryMovies:        {SectionHook, SectionContext, SectionDetail, SectionClosing},
	CategoryPolitics:      {SectionContext, SectionDetail, SectionClosing},
	CategorySports:        {SectionHook, SectionDetail, SectionEmotion, SectionClosing},
	CategoryHealth:        {SectionContext, SectionDetail, SectionClosing},
	CategoryHumanInterest: {SectionHook, SectionEmotion, SectionClosing},
	CategoryGeneral:       {SectionHook, SectionContext, SectionClosing},
}

var relatedTopicsByCategory = map[Category][]string{
	CategoryEntertainment: {"tollywood", "celebrity news", "movie updates"},
	CategoryMovies:        {"tollywood", "box office", "reviews"},
	CategoryPolitics:      {"andhra pradesh", "telangana", "elections"},
	CategorySports:        {"cricket", "ipl", "team india"},
	CategoryHealth:        {"wellness", "lifestyle", "fitness"},
	CategoryHumanInterest: {"inspiring stories", "viral", "community"},
	CategoryGeneral:       {"trending", "telugu news"},
}

var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true, "from": true,
	"is": true, "are": true, "was": true, "were": true, "been": true,
	"has": true, "have": true, "had": true, "this": true, "that": true,
	"these": true, "those": true, "it": true, "its": true, "as": true,
	"be": true, "will": true, "would": true, "can": true, "could": true,
	"about": true, "into": true, "over": true, "after": true, "before": true,
}

// Policy bundles the risk-scoring weights and thresholds.
// Defaults are the canonical values; configuration may override them.
type Policy struct {
	PoliticalWeight int
	HealthWeight    int
	SensitiveWeight int
	RumorWeight     int
	HighThreshold   int
	MediumThreshold int
	MaxKeywords     int
	MinKeywordLen   int
}

// DefaultPolicy returns the canonical risk-scoring policy.
func DefaultPolicy() Policy {
	return Policy{
		PoliticalWeight: 2,
		HealthWeight:    2,
		SensitiveWeight: 3,
		RumorWeight:     1,
		HighThreshold:   4,
		MediumThreshold: 2,
		MaxKeywords:     10,
		MinKeywordLen:   4,
	}
}

func (p Policy) weight(reason RiskReason) int {
	switch reason {
	case ReasonPolitical:
		return p.PoliticalWeight
	case ReasonHealth:
		return p.HealthWeight
	case ReasonSensitive:
		return p.SensitiveWeight
	case ReasonRumor:
		return p.RumorWeight
	}
	return 0
}
