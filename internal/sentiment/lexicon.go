package sentiment

// Valence lexicon on the standard -4..+4 intensity scale, trimmed to the
// vocabulary that shows up in political and social media text. Values follow
// the published VADER ratings where a word appears there.
var valenceLexicon = map[string]float64{
	// strong positive
	"love": 3.2, "loved": 2.9, "loves": 2.7, "excellent": 2.7, "amazing": 2.8,
	"awesome": 3.1, "fantastic": 2.6, "wonderful": 2.7, "great": 3.1,
	"best": 3.2, "perfect": 2.7, "brilliant": 2.8, "outstanding": 2.6,
	"thrilled": 2.7, "delighted": 2.9, "inspiring": 2.3, "triumph": 2.6,

	// positive
	"good": 1.9, "nice": 1.8, "happy": 2.7, "glad": 2.0, "hope": 1.9,
	"hopeful": 2.0, "support": 1.7, "supports": 1.7, "supported": 1.7,
	"win": 2.8, "wins": 2.7, "winning": 2.4, "won": 2.7, "success": 2.7,
	"successful": 2.2, "strong": 2.3, "stronger": 2.2, "improve": 1.9,
	"improved": 2.1, "improving": 1.9, "progress": 1.8, "growth": 1.4,
	"benefit": 1.9, "benefits": 1.6, "fair": 1.7, "honest": 2.2,
	"trust": 2.2, "trusted": 2.1, "safe": 1.8, "safer": 1.9, "secure": 1.5,
	"proud": 2.1, "respect": 1.9, "care": 2.2, "cares": 2.2, "help": 1.7,
	"helps": 1.6, "helped": 1.8, "helping": 1.2, "promise": 1.3,
	"promising": 1.6, "freedom": 2.3, "justice": 2.4, "peace": 2.5,
	"prosperity": 2.5, "unity": 1.8, "agree": 1.5, "agreed": 1.4,
	"approval": 1.8, "approve": 1.7, "approves": 1.6, "better": 1.9,
	"boost": 1.7, "relief": 1.6, "recovery": 1.6, "rally": 1.1,
	"celebrate": 2.2, "victory": 2.9, "welcome": 1.9, "thank": 1.9,
	"thanks": 1.9, "grateful": 2.3, "effective": 1.8, "smart": 1.8,

	// strong negative
	"terrible": -2.1, "horrible": -2.5, "awful": -2.0, "disaster": -3.1,
	"disastrous": -2.9, "catastrophe": -2.2, "hate": -2.7, "hated": -3.2,
	"hates": -1.9, "worst": -3.1, "corrupt": -2.7, "corruption": -2.4,
	"fraud": -2.8, "scandal": -2.0, "crisis": -3.1, "disgrace": -2.2,
	"disgraceful": -2.2, "shameful": -2.1, "outrage": -1.8, "outrageous": -2.3,
	"evil": -3.4, "criminal": -2.6, "lie": -1.8, "lies": -1.8, "liar": -2.4,
	"lying": -2.2,

	// negative
	"bad": -2.5, "sad": -2.1, "angry": -2.3, "anger": -2.7, "fear": -2.2,
	"afraid": -2.2, "worried": -1.8, "worry": -1.9, "worse": -2.1,
	"fail": -2.5, "failed": -2.3, "failing": -2.2, "failure": -2.6,
	"lose": -1.9, "losing": -2.0, "lost": -1.3, "loss": -1.3,
	"unfair": -1.7, "wrong": -2.1, "broken": -1.6, "weak": -1.9,
	"weaker": -1.7, "poor": -2.1, "poverty": -2.3, "unemployed": -1.9,
	"unemployment": -1.6, "debt": -1.5, "deficit": -1.3, "cut": -1.1,
	"cuts": -1.1, "attack": -2.1, "attacks": -1.9, "attacked": -2.0,
	"threat": -1.9, "threats": -1.8, "danger": -2.4, "dangerous": -2.1,
	"violence": -3.1, "violent": -2.9, "war": -2.9, "conflict": -1.6,
	"chaos": -2.4, "mess": -1.5, "problem": -1.7, "problems": -1.7,
	"blame": -1.4, "blamed": -1.6, "reject": -1.5, "rejected": -1.4,
	"oppose": -1.2, "opposed": -1.0, "against": -0.9, "deny": -1.2,
	"denied": -1.3, "ban": -1.8, "banned": -1.8, "illegal": -1.8,
	"disappointed": -1.8, "disappointing": -1.9, "concern": -1.2,
	"concerns": -1.2, "doubt": -1.5, "doubts": -1.2, "ignore": -1.4,
	"ignored": -1.6, "waste": -1.8, "wasted": -1.9, "struggle": -1.7,
	"struggling": -1.8, "suffer": -2.0, "suffering": -2.1, "hurt": -2.4,
	"hurts": -1.9, "damage": -1.7, "damaged": -1.7, "decline": -1.4,
	"declining": -1.3, "collapse": -2.1, "crash": -1.9, "scared": -2.2,
	"panic": -2.5, "protest": -0.8, "protests": -0.8, "divided": -1.2,
	"division": -1.0, "hostile": -2.0, "toxic": -2.4, "racist": -3.0,
	"racism": -2.8, "discrimination": -2.3, "inequality": -1.6,
}

// Booster words raise or dampen the intensity of the following sentiment word.
const (
	boostIncr = 0.293
	boostDecr = -0.293
)

var boosterWords = map[string]float64{
	"absolutely": boostIncr, "amazingly": boostIncr, "completely": boostIncr,
	"considerably": boostIncr, "decidedly": boostIncr, "deeply": boostIncr,
	"enormously": boostIncr, "entirely": boostIncr, "especially": boostIncr,
	"exceptionally": boostIncr, "extremely": boostIncr, "fully": boostIncr,
	"greatly": boostIncr, "highly": boostIncr, "hugely": boostIncr,
	"incredibly": boostIncr, "intensely": boostIncr, "majorly": boostIncr,
	"more": boostIncr, "most": boostIncr, "particularly": boostIncr,
	"purely": boostIncr, "quite": boostIncr, "really": boostIncr,
	"remarkably": boostIncr, "so": boostIncr, "substantially": boostIncr,
	"thoroughly": boostIncr, "totally": boostIncr, "tremendously": boostIncr,
	"unbelievably": boostIncr, "unusually": boostIncr, "utterly": boostIncr,
	"very": boostIncr,
	"almost": boostDecr, "barely": boostDecr, "hardly": boostDecr,
	"kinda": boostDecr, "less": boostDecr, "little": boostDecr,
	"marginally": boostDecr, "occasionally": boostDecr, "partly": boostDecr,
	"scarcely": boostDecr, "slightly": boostDecr, "somewhat": boostDecr,
	"sorta": boostDecr,
}

var negationWords = map[string]struct{}{
	"aint": {}, "arent": {}, "cannot": {}, "cant": {}, "couldnt": {},
	"didnt": {}, "doesnt": {}, "dont": {}, "hadnt": {}, "hasnt": {},
	"havent": {}, "isnt": {}, "mightnt": {}, "mustnt": {}, "neither": {},
	"neednt": {}, "never": {}, "none": {}, "nope": {}, "nor": {}, "not": {},
	"nothing": {}, "nowhere": {}, "shant": {}, "shouldnt": {}, "wasnt": {},
	"werent": {}, "without": {}, "wont": {}, "wouldnt": {}, "rarely": {},
	"seldom": {}, "despite": {},
	"ain't": {}, "aren't": {}, "can't": {}, "couldn't": {}, "didn't": {},
	"doesn't": {}, "don't": {}, "hadn't": {}, "hasn't": {}, "haven't": {},
	"isn't": {}, "mightn't": {}, "mustn't": {}, "needn't": {}, "shan't": {},
	"shouldn't": {}, "wasn't": {}, "weren't": {}, "won't": {}, "wouldn't": {},
}
