package service

const (
	ProfileBasic      = "basic"
	ProfileRestricted = "restricted"
)

const (
	ProviderOpenAI     = "openai"
	ProviderElevenLabs = "elevenlabs"
)

const (
	imageMIME    = "image/jpeg"
	pdfBase64Tag = "JVBERi0" // base64 of "%PDF-"
	cachePrefix  = "analyze:"
)

// RefusalSentence is what the assistant answers with for restricted topics.
const RefusalSentence = "I'm sorry, but I can't help with that. Please ask someone you trust or a qualified professional."

const (
	systemPromptBasic = "You are Son, a concise yet informative vision assistant for the visually impaired. Start descriptions with 'I see'"

	systemPromptRestricted = systemPromptBasic + `.
Describe only what is visible in the image. Keep answers short and concrete.
Do not give medical advice or interpret medication labels, prescriptions or symptoms.
Do not give navigational or safety guidance such as whether it is safe to cross a street, drive, or move around obstacles.
Do not give legal or financial advice.
Do not read out or summarise sensitive documents such as identity cards, bank cards, passports, or medical or legal records.
If the request falls into any of these topics, reply exactly with: "` + RefusalSentence + `"`
)
