package minimaxspeech

// Speech models
const (
	// ModelSpeech02HD is speech-02-hd, excellent rhythm, stability and cloning similarity.
	ModelSpeech02HD = "speech-02-hd"

	// ModelSpeech02Turbo is speech-02-turbo, enhanced multilingual capabilities.
	ModelSpeech02Turbo = "speech-02-turbo"

	// ModelSpeech01HD is speech-01-hd, high-definition synthesis.
	ModelSpeech01HD = "speech-01-hd"

	// ModelSpeech01Turbo is speech-01-turbo, low-latency synthesis.
	ModelSpeech01Turbo = "speech-01-turbo"
)

// ValidModels lists every model identifier the request types accept.
var ValidModels = []string{
	ModelSpeech02HD,
	ModelSpeech02Turbo,
	ModelSpeech01HD,
	ModelSpeech01Turbo,
}

// SynthesisModels lists the models accepted by Speech.Synthesize.
// Narrower than ValidModels: the service rejects speech-02-turbo for direct
// synthesis even though voice-clone previews accept it.
var SynthesisModels = []string{
	ModelSpeech02HD,
	ModelSpeech01Turbo,
	ModelSpeech01HD,
}

// System voice IDs
const (
	// VoiceWiseWoman is the default synthesis voice.
	VoiceWiseWoman = "Wise_Woman"

	VoiceFriendlyPerson    = "Friendly_Person"
	VoiceInspirationalGirl = "Inspirational_girl"
	VoiceDeepVoiceMan      = "Deep_Voice_Man"
	VoiceCalmWoman         = "Calm_Woman"
	VoiceCasualGuy         = "Casual_Guy"
	VoiceLivelyGirl        = "Lively_Girl"
	VoicePatientMan        = "Patient_Man"
	VoiceYoungKnight       = "Young_Knight"
	VoiceDeterminedMan     = "Determined_Man"
	VoiceLovelyGirl        = "Lovely_Girl"
	VoiceDecentBoy         = "Decent_Boy"
	VoiceImposingManner    = "Imposing_Manner"
	VoiceElegantMan        = "Elegant_Man"
	VoiceAbbess            = "Abbess"
	VoiceSweetGirl2        = "Sweet_Girl_2"
	VoiceExuberantGirl     = "Exuberant_Girl"
)

// SystemVoiceIDs lists the built-in voice identifiers.
var SystemVoiceIDs = []string{
	VoiceWiseWoman,
	VoiceFriendlyPerson,
	VoiceInspirationalGirl,
	VoiceDeepVoiceMan,
	VoiceCalmWoman,
	VoiceCasualGuy,
	VoiceLivelyGirl,
	VoicePatientMan,
	VoiceYoungKnight,
	VoiceDeterminedMan,
	VoiceLovelyGirl,
	VoiceDecentBoy,
	VoiceImposingManner,
	VoiceElegantMan,
	VoiceAbbess,
	VoiceSweetGirl2,
	VoiceExuberantGirl,
}

// Language boost options
const (
	LanguageChinese    = "Chinese"
	LanguageChineseYue = "Chinese,Yue" // Cantonese
	LanguageEnglish    = "English"
	LanguageArabic     = "Arabic"
	LanguageRussian    = "Russian"
	LanguageSpanish    = "Spanish"
	LanguageFrench     = "French"
	LanguagePortuguese = "Portuguese"
	LanguageGerman     = "German"
	LanguageTurkish    = "Turkish"
	LanguageDutch      = "Dutch"
	LanguageUkrainian  = "Ukrainian"
	LanguageVietnamese = "Vietnamese"
	LanguageIndonesian = "Indonesian"
	LanguageJapanese   = "Japanese"
	LanguageItalian    = "Italian"
	LanguageKorean     = "Korean"
	LanguageThai       = "Thai"
	LanguagePolish     = "Polish"
	LanguageRomanian   = "Romanian"
	LanguageGreek      = "Greek"
	LanguageCzech      = "Czech"
	LanguageFinnish    = "Finnish"
	LanguageHindi      = "Hindi"
	LanguageAuto       = "auto"
)

// Languages lists the supported language_boost values.
var Languages = []string{
	LanguageChinese,
	LanguageChineseYue,
	LanguageEnglish,
	LanguageArabic,
	LanguageRussian,
	LanguageSpanish,
	LanguageFrench,
	LanguagePortuguese,
	LanguageGerman,
	LanguageTurkish,
	LanguageDutch,
	LanguageUkrainian,
	LanguageVietnamese,
	LanguageIndonesian,
	LanguageJapanese,
	LanguageItalian,
	LanguageKorean,
	LanguageThai,
	LanguagePolish,
	LanguageRomanian,
	LanguageGreek,
	LanguageCzech,
	LanguageFinnish,
	LanguageHindi,
	LanguageAuto,
}

// Emotion options
const (
	EmotionHappy     = "happy"
	EmotionSad       = "sad"
	EmotionAngry     = "angry"
	EmotionFearful   = "fearful"
	EmotionDisgusted = "disgusted"
	EmotionSurprised = "surprised"
	EmotionNeutral   = "neutral"
)

var validEmotions = []string{
	EmotionHappy,
	EmotionSad,
	EmotionAngry,
	EmotionFearful,
	EmotionDisgusted,
	EmotionSurprised,
	EmotionNeutral,
}

// Valid audio parameter values.
var (
	validSampleRates = []int{8000, 16000, 22050, 24000, 32000, 44100}
	validBitrates    = []int{32000, 64000, 128000, 256000}
	validFormats     = []AudioFormat{AudioFormatMP3, AudioFormatPCM, AudioFormatFLAC}
)
