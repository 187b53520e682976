package voice

import "fmt"

// templateSet holds every reply template for one command locale. Fixed
// strings cover the control intents and "not found" messages; funcs wrap
// extracted document data. The composer only applies a wrapping func when
// the anti-mixing rule allows it.
type templateSet struct {
	stop            string
	help            string
	unknown         string
	nothingToRepeat string
	download        string
	share           string

	summary   func(string) string
	noSummary string

	deadlines   func(int, string) string
	noDeadlines string

	keyInfo   func(string) string
	noKeyInfo string

	docType   func(string) string
	noDocType string

	actions   func(string) string
	noActions string

	amount   func(string) string
	noAmount string

	warnings   func(string) string
	noWarnings string

	translate func(string) string

	fullText   func(string) string
	noFullText string
}

// templatesByLocale is the per-locale reply table. Locales without an entry
// fall back to English.
var templatesByLocale = map[Locale]*templateSet{
	LocaleEnglish: {
		stop:            "Okay, stopping.",
		help:            "You can say: summary, deadlines, key information, document type, actions, amount, warnings, translate, repeat, download, share, or stop.",
		unknown:         "Sorry, I didn't catch that. Say help to hear what I can do.",
		nothingToRepeat: "There is nothing to repeat yet.",
		download:        "Okay, preparing your document for download.",
		share:           "Okay, opening the share options.",

		summary:   func(s string) string { return "Here is the summary. " + s },
		noSummary: "No summary is available for this document yet.",

		deadlines: func(n int, joined string) string {
			word := "deadlines"
			if n == 1 {
				word = "deadline"
			}
			return fmt.Sprintf("I found %d %s in this document. %s", n, word, joined)
		},
		noDeadlines: "I did not find any deadlines in this document.",

		keyInfo:   func(s string) string { return "Here is the key information. " + s },
		noKeyInfo: "I could not find key information in this document.",

		docType:   func(s string) string { return "This document is a " + s + "." },
		noDocType: "I am not sure what type of document this is.",

		actions:   func(s string) string { return "Here is what you should do. " + s },
		noActions: "No suggested actions were found for this document.",

		amount:   func(s string) string { return "The amount mentioned in this document is " + s + "." },
		noAmount: "I could not find an amount in this document.",

		warnings:   func(s string) string { return "Please note these warnings. " + s },
		noWarnings: "Good news, I found no warnings in this document.",

		translate: func(lang string) string { return "Okay, translating this document to " + lang + "." },

		fullText:   func(s string) string { return "Reading the full document. " + s },
		noFullText: "There is no extracted text to read for this document.",
	},

	LocaleHindi: {
		stop:            "ठीक है, रोक रहा हूँ।",
		help:            "आप कह सकते हैं: सारांश, समय सीमा, मुख्य जानकारी, अनुवाद, दोहराओ, या रुको।",
		unknown:         "माफ़ कीजिए, मैं समझ नहीं पाया। मदद के लिए मदद कहिए।",
		nothingToRepeat: "दोहराने के लिए अभी कुछ नहीं है।",
		download:        "ठीक है, डाउनलोड तैयार कर रहा हूँ।",
		share:           "ठीक है, शेयर विकल्प खोल रहा हूँ।",

		summary:   func(s string) string { return "यह रहा सारांश। " + s },
		noSummary: "इस दस्तावेज़ का सारांश अभी उपलब्ध नहीं है।",

		deadlines: func(n int, joined string) string {
			return fmt.Sprintf("इस दस्तावेज़ में %d समय सीमाएँ मिलीं। %s", n, joined)
		},
		noDeadlines: "इस दस्तावेज़ में कोई समय सीमा नहीं मिली।",

		keyInfo:   func(s string) string { return "मुख्य जानकारी यह है। " + s },
		noKeyInfo: "मुख्य जानकारी नहीं मिली।",

		docType:   func(s string) string { return "यह दस्तावेज़ " + s + " है।" },
		noDocType: "दस्तावेज़ का प्रकार पता नहीं चला।",

		actions:   func(s string) string { return "आपको यह करना चाहिए। " + s },
		noActions: "कोई सुझाई गई कार्रवाई नहीं मिली।",

		amount:   func(s string) string { return "इस दस्तावेज़ में राशि " + s + " है।" },
		noAmount: "कोई राशि नहीं मिली।",

		warnings:   func(s string) string { return "इन चेतावनियों पर ध्यान दीजिए। " + s },
		noWarnings: "कोई चेतावनी नहीं मिली।",

		translate: func(lang string) string { return "ठीक है, दस्तावेज़ का " + lang + " में अनुवाद कर रहा हूँ।" },

		fullText:   func(s string) string { return "पूरा दस्तावेज़ पढ़ रहा हूँ। " + s },
		noFullText: "पढ़ने के लिए पूरा पाठ उपलब्ध नहीं है।",
	},

	LocaleTelugu: {
		stop:            "సరే, ఆపుతున్నాను.",
		help:            "మీరు చెప్పవచ్చు: సారాంశం, గడువు, ముఖ్య సమాచారం, అనువాదం, మళ్ళీ, లేదా ఆపు.",
		unknown:         "క్షమించండి, నాకు అర్థం కాలేదు. సహాయం కోసం సహాయం అనండి.",
		nothingToRepeat: "మళ్ళీ చెప్పడానికి ఇంకా ఏమీ లేదు.",
		download:        "సరే, డౌన్లోడ్ సిద్ధం చేస్తున్నాను.",
		share:           "సరే, షేర్ ఎంపికలు తెరుస్తున్నాను.",

		summary:   func(s string) string { return "ఇదిగో సారాంశం. " + s },
		noSummary: "ఈ పత్రానికి సారాంశం ఇంకా లేదు.",

		deadlines: func(n int, joined string) string {
			return fmt.Sprintf("ఈ పత్రంలో %d గడువులు ఉన్నాయి. %s", n, joined)
		},
		noDeadlines: "ఈ పత్రంలో గడువులు ఏవీ కనబడలేదు.",

		keyInfo:   func(s string) string { return "ముఖ్య సమాచారం ఇదిగో. " + s },
		noKeyInfo: "ముఖ్య సమాచారం కనబడలేదు.",

		docType:   func(s string) string { return "ఈ పత్రం " + s + "." },
		noDocType: "ఈ పత్రం ఏ రకమో తెలియలేదు.",

		actions:   func(s string) string { return "మీరు చేయవలసినవి. " + s },
		noActions: "సూచించిన చర్యలు ఏవీ లేవు.",

		amount:   func(s string) string { return "ఈ పత్రంలో మొత్తం " + s + "." },
		noAmount: "మొత్తం కనబడలేదు.",

		warnings:   func(s string) string { return "ఈ హెచ్చరికలను గమనించండి. " + s },
		noWarnings: "హెచ్చరికలు ఏవీ లేవు.",

		translate: func(lang string) string { return "సరే, ఈ పత్రాన్ని " + lang + "లోకి అనువదిస్తున్నాను." },

		fullText:   func(s string) string { return "పూర్తి పత్రం చదువుతున్నాను. " + s },
		noFullText: "చదవడానికి పూర్తి పాఠ్యం లేదు.",
	},

	LocaleTamil: {
		stop:            "சரி, நிறுத்துகிறேன்.",
		help:            "நீங்கள் சொல்லலாம்: சுருக்கம், காலக்கெடு, முக்கிய தகவல், மொழிபெயர், மீண்டும், அல்லது நிறுத்து.",
		unknown:         "மன்னிக்கவும், புரியவில்லை. உதவிக்கு உதவி என்று சொல்லுங்கள்.",
		nothingToRepeat: "மீண்டும் சொல்ல இன்னும் எதுவும் இல்லை.",
		download:        "சரி, பதிவிறக்கம் தயார் செய்கிறேன்.",
		share:           "சரி, பகிர்வு விருப்பங்களை திறக்கிறேன்.",

		summary:   func(s string) string { return "இதோ சுருக்கம். " + s },
		noSummary: "இந்த ஆவணத்திற்கு இன்னும் சுருக்கம் இல்லை.",

		deadlines: func(n int, joined string) string {
			return fmt.Sprintf("இந்த ஆவணத்தில் %d காலக்கெடுகள் உள்ளன. %s", n, joined)
		},
		noDeadlines: "இந்த ஆவணத்தில் காலக்கெடு எதுவும் இல்லை.",

		keyInfo:   func(s string) string { return "முக்கிய தகவல் இதோ. " + s },
		noKeyInfo: "முக்கிய தகவல் கிடைக்கவில்லை.",

		docType:   func(s string) string { return "இந்த ஆவணம் " + s + "." },
		noDocType: "இந்த ஆவணத்தின் வகை தெரியவில்லை.",

		actions:   func(s string) string { return "நீங்கள் செய்ய வேண்டியவை. " + s },
		noActions: "பரிந்துரைக்கப்பட்ட நடவடிக்கைகள் இல்லை.",

		amount:   func(s string) string { return "இந்த ஆவணத்தில் தொகை " + s + "." },
		noAmount: "தொகை எதுவும் இல்லை.",

		warnings:   func(s string) string { return "இந்த எச்சரிக்கைகளை கவனியுங்கள். " + s },
		noWarnings: "எச்சரிக்கைகள் இல்லை.",

		translate: func(lang string) string { return "சரி, இந்த ஆவணத்தை " + lang + " மொழியில் மொழிபெயர்க்கிறேன்." },

		fullText:   func(s string) string { return "முழு ஆவணத்தையும் படிக்கிறேன். " + s },
		noFullText: "படிக்க முழு உரை இல்லை.",
	},
}
